package styles

import "github.com/charmbracelet/lipgloss"

// Theme names accepted by SetTheme and the configuration.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	Name string

	// Brand/accent colors
	Primary   lipgloss.Color // Purple - cursor, active badges
	Secondary lipgloss.Color // Pink - title gradient end

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Primary text (bright)
	FgMuted  lipgloss.Color // Secondary text (dimmed)
	FgSubtle lipgloss.Color // Tertiary text (very dim)

	// Backgrounds
	BgBase   lipgloss.Color // Screen background, target of dimming
	BgCursor lipgloss.Color // Selected badge background

	// Borders
	Border      lipgloss.Color // Unfocused panel borders
	BorderFocus lipgloss.Color // Focused panel borders

	// Status colors
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	// Categories maps each category to its cell colors.
	Categories map[string]Palette
	// Fallback colors cells whose category has no entry.
	Fallback Palette

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style // Default text
	Muted   lipgloss.Style // Dimmed text
	Subtle  lipgloss.Style // Very dim text
	Title   lipgloss.Style // Bold, bright
	Active  lipgloss.Style // Selected badge / active filter
	Cursor  lipgloss.Style // Cursor background highlight
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

var darkTheme = Theme{
	Name: ThemeDark,

	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f472b6"),

	FgBase:   lipgloss.Color("#e5e5e5"),
	FgMuted:  lipgloss.Color("#a3a3a3"),
	FgSubtle: lipgloss.Color("#585858"),

	BgBase:   lipgloss.Color("#1a1a1a"),
	BgCursor: lipgloss.Color("#303030"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),

	Categories: darkCategories,
	Fallback:   Palette{Bg: "#1f2937", Fg: "#f3f4f6", Accent: "#6b7280"},
}

var lightTheme = Theme{
	Name: ThemeLight,

	Primary:   lipgloss.Color("#7c3aed"),
	Secondary: lipgloss.Color("#db2777"),

	FgBase:   lipgloss.Color("#1f1f1f"),
	FgMuted:  lipgloss.Color("#525252"),
	FgSubtle: lipgloss.Color("#a3a3a3"),

	BgBase:   lipgloss.Color("#faf5ff"),
	BgCursor: lipgloss.Color("#ede9fe"),

	Border:      lipgloss.Color("#c4b5fd"),
	BorderFocus: lipgloss.Color("#7c3aed"),

	Success: lipgloss.Color("#15803d"),
	Error:   lipgloss.Color("#dc2626"),
	Warning: lipgloss.Color("#b45309"),

	Categories: lightCategories,
	Fallback:   Palette{Bg: "#f3f4f6", Fg: "#111827", Accent: "#6b7280"},
}

var current = &darkTheme

// T returns the active theme.
func T() *Theme {
	return current
}

// SetTheme activates the named theme. Unknown names select the dark theme
// and report false.
func SetTheme(name string) bool {
	switch name {
	case ThemeLight:
		current = &lightTheme
		return true
	case ThemeDark:
		current = &darkTheme
		return true
	default:
		current = &darkTheme
		return false
	}
}

// Toggle switches between the dark and light themes and returns the new name.
func Toggle() string {
	if current.Name == ThemeDark {
		SetTheme(ThemeLight)
	} else {
		SetTheme(ThemeDark)
	}
	return current.Name
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Active: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}
