package state

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	GetPreferences() (*Preferences, error)
	SaveTheme(theme string) error
	SaveCursor(number int)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
