package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Search   string
	Filter   string
	Dark     string
	Light    string
	Selected string
	Solid    string
	Liquid   string
	Gas      string
}

var (
	nerdIcons = Icons{
		Search:   "\uf002 ", // nf-fa-search
		Filter:   "\uf0b0 ", // nf-fa-filter
		Dark:     "\uf186",  // nf-fa-moon_o
		Light:    "\uf185",  // nf-fa-sun_o
		Selected: "\uf00c ", // nf-fa-check
		Solid:    "\uf1b2",  // nf-fa-cube
		Liquid:   "\uf043",  // nf-fa-tint
		Gas:      "\uf0c2",  // nf-fa-cloud
	}

	unicodeIcons = Icons{
		Search:   "🔍 ",
		Filter:   "⚗ ",
		Dark:     "☾",
		Light:    "☀",
		Selected: "✓ ",
		Solid:    "■",
		Liquid:   "💧",
		Gas:      "☁",
	}

	noneIcons = Icons{
		Search:   "/ ",
		Filter:   "",
		Dark:     "[dark]",
		Light:    "[light]",
		Selected: "* ",
		Solid:    "",
		Liquid:   "",
		Gas:      "",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = noneIcons
	}
}

// Search returns the prefix shown before the search field.
func Search() string {
	return current.Search
}

// Selected returns the marker placed before the active badge.
func Selected() string {
	return current.Selected
}

// FormatFilter formats a section or drawer title with the filter icon.
func FormatFilter(title string) string {
	return current.Filter + title
}

// Theme returns the indicator for the named theme.
func Theme(name string) string {
	if name == "light" {
		return current.Light
	}
	return current.Dark
}

// FormatState prefixes a state of matter with its icon, if the style has one.
func FormatState(state string) string {
	var icon string
	switch state {
	case "Solid":
		icon = current.Solid
	case "Liquid":
		icon = current.Liquid
	case "Gas":
		icon = current.Gas
	}
	if icon == "" {
		return state
	}
	return icon + " " + state
}
