// Package state remembers display preferences between runs in a small
// sqlite database.
package state

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName    = "periodic"
	dbFileName = "periodic.db"

	// cursorDelay coalesces cursor writes while the user is moving.
	cursorDelay = 500 * time.Millisecond
)

// Manager is the sqlite-backed preferences store.
type Manager struct {
	db *sql.DB

	mu     sync.Mutex
	timer  *time.Timer
	cursor int // pending cursor element, 0 when nothing is queued
}

// Open opens the preferences database under the XDG data directory.
func Open() (*Manager, error) {
	path, err := xdg.DataFile(filepath.Join(appName, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	return OpenPath(path)
}

// OpenPath opens the database at path, creating it and its directory
// when missing.
func OpenPath(path string) (*Manager, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &Manager{db: db}, nil
}

// Close writes any queued cursor position and closes the database.
func (m *Manager) Close() error {
	m.mu.Lock()
	if m.timer != nil {
		m.timer.Stop()
	}
	m.mu.Unlock()

	m.flush()
	return m.db.Close()
}

func (m *Manager) GetPreferences() (*Preferences, error) {
	return getPreferences(m.db)
}

func (m *Manager) SaveTheme(theme string) error {
	return saveTheme(m.db, theme)
}

// SaveCursor queues the element under the cursor. Only the last position
// of a burst of moves is written.
func (m *Manager) SaveCursor(number int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cursor = number
	if m.timer != nil {
		m.timer.Stop()
	}
	m.timer = time.AfterFunc(cursorDelay, m.flush)
}

// flush writes the queued cursor, if any.
func (m *Manager) flush() {
	m.mu.Lock()
	number := m.cursor
	m.cursor = 0
	m.mu.Unlock()

	if number > 0 {
		_ = saveCursor(m.db, number)
	}
}
