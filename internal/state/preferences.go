package state

import (
	"database/sql"
	"errors"

	dbutil "github.com/llehouerou/periodic/internal/db"
)

// Preferences are the display settings remembered between runs.
// Filter selections are deliberately not part of it.
type Preferences struct {
	Theme         string // "" when never chosen
	CursorElement int    // atomic number, 0 when never saved
}

func getPreferences(db *sql.DB) (*Preferences, error) {
	row := db.QueryRow(`SELECT theme, cursor_element FROM preferences WHERE id = 1`)

	var (
		theme  sql.Null[string]
		cursor sql.Null[int]
	)
	err := row.Scan(&theme, &cursor)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	return &Preferences{
		Theme:         dbutil.Value(theme),
		CursorElement: dbutil.Value(cursor),
	}, nil
}

func saveTheme(db *sql.DB, theme string) error {
	_, err := db.Exec(`
		INSERT INTO preferences (id, theme) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET theme = excluded.theme
	`, theme)
	return err
}

func saveCursor(db *sql.DB, number int) error {
	_, err := db.Exec(`
		INSERT INTO preferences (id, cursor_element) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET cursor_element = excluded.cursor_element
	`, number)
	return err
}
