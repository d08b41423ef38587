package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// DimAmount is how far a non-highlighted cell is blended toward the background.
const DimAmount = 0.8

// Palette colors one category: cell background, text and accent (border).
type Palette struct {
	Bg     lipgloss.Color
	Fg     lipgloss.Color
	Accent lipgloss.Color
}

// Dark palettes use the 950 shade as background and the 100 shade as text.
var darkCategories = map[string]Palette{
	"Alkali Metal":          {Bg: "#450a0a", Fg: "#fee2e2", Accent: "#ef4444"},
	"Alkaline Earth Metal":  {Bg: "#431407", Fg: "#ffedd5", Accent: "#f97316"},
	"Transition Metal":      {Bg: "#422006", Fg: "#fef9c3", Accent: "#eab308"},
	"Post-Transition Metal": {Bg: "#052e16", Fg: "#dcfce7", Accent: "#22c55e"},
	"Metalloid":             {Bg: "#042f2e", Fg: "#ccfbf1", Accent: "#14b8a6"},
	"Nonmetal":              {Bg: "#172554", Fg: "#dbeafe", Accent: "#3b82f6"},
	"Halogen":               {Bg: "#1e1b4b", Fg: "#e0e7ff", Accent: "#6366f1"},
	"Noble Gas":             {Bg: "#3b0764", Fg: "#f3e8ff", Accent: "#a855f7"},
	"Lanthanide":            {Bg: "#500724", Fg: "#fce7f3", Accent: "#ec4899"},
	"Actinide":              {Bg: "#4c0519", Fg: "#ffe4e6", Accent: "#f43f5e"},
}

// Light palettes invert that: 100 shade background, 900 shade text.
var lightCategories = map[string]Palette{
	"Alkali Metal":          {Bg: "#fee2e2", Fg: "#7f1d1d", Accent: "#ef4444"},
	"Alkaline Earth Metal":  {Bg: "#ffedd5", Fg: "#7c2d12", Accent: "#f97316"},
	"Transition Metal":      {Bg: "#fef9c3", Fg: "#713f12", Accent: "#eab308"},
	"Post-Transition Metal": {Bg: "#dcfce7", Fg: "#14532d", Accent: "#22c55e"},
	"Metalloid":             {Bg: "#ccfbf1", Fg: "#134e4a", Accent: "#14b8a6"},
	"Nonmetal":              {Bg: "#dbeafe", Fg: "#1e3a8a", Accent: "#3b82f6"},
	"Halogen":               {Bg: "#e0e7ff", Fg: "#312e81", Accent: "#6366f1"},
	"Noble Gas":             {Bg: "#f3e8ff", Fg: "#581c87", Accent: "#a855f7"},
	"Lanthanide":            {Bg: "#fce7f3", Fg: "#831843", Accent: "#ec4899"},
	"Actinide":              {Bg: "#ffe4e6", Fg: "#881337", Accent: "#f43f5e"},
}

// Category returns the palette for a category name.
func (t *Theme) Category(name string) Palette {
	if p, ok := t.Categories[name]; ok {
		return p
	}
	return t.Fallback
}

// Dimmed returns the palette faded toward the theme background.
func (t *Theme) Dimmed(p Palette) Palette {
	return Palette{
		Bg:     Blend(p.Bg, t.BgBase, DimAmount),
		Fg:     Blend(p.Fg, t.BgBase, DimAmount),
		Accent: Blend(p.Accent, t.BgBase, DimAmount),
	}
}

// Cell returns the style of a table cell for a category.
func (t *Theme) Cell(category string, highlighted bool) lipgloss.Style {
	p := t.Category(category)
	if !highlighted {
		p = t.Dimmed(p)
	}
	return lipgloss.NewStyle().Background(p.Bg).Foreground(p.Fg)
}

// Badge returns the style of a category badge in the legend.
func (t *Theme) Badge(category string) lipgloss.Style {
	p := t.Category(category)
	return lipgloss.NewStyle().
		Background(p.Bg).
		Foreground(p.Fg).
		Padding(0, 1)
}

// Blend mixes from toward to by amount (0 keeps from, 1 yields to).
// Non-hex colors are returned unchanged.
func Blend(from, to lipgloss.Color, amount float64) lipgloss.Color {
	c1, err := colorful.Hex(string(from))
	if err != nil {
		return from
	}
	c2, err := colorful.Hex(string(to))
	if err != nil {
		return from
	}
	return lipgloss.Color(c1.BlendRgb(c2, amount).Clamped().Hex())
}
