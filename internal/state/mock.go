package state

// Mock is an in-memory Interface for tests.
type Mock struct {
	Prefs     Preferences
	Saved     bool
	SaveErr   error
	ThemeSets int
	Closed    bool
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)

// NewMock returns an empty mock state manager.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) GetPreferences() (*Preferences, error) {
	if !m.Saved {
		return nil, nil //nolint:nilnil // mirrors a first run
	}
	p := m.Prefs
	return &p, nil
}

func (m *Mock) SaveTheme(theme string) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Prefs.Theme = theme
	m.Saved = true
	m.ThemeSets++
	return nil
}

func (m *Mock) SaveCursor(number int) {
	m.Prefs.CursorElement = number
	m.Saved = true
}

func (m *Mock) Close() error {
	m.Closed = true
	return nil
}
