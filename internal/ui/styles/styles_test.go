package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme(ThemeDark) })

	assert.True(t, SetTheme(ThemeLight))
	assert.Equal(t, ThemeLight, T().Name)

	assert.False(t, SetTheme("solarized"))
	assert.Equal(t, ThemeDark, T().Name)
}

func TestToggle(t *testing.T) {
	t.Cleanup(func() { SetTheme(ThemeDark) })

	SetTheme(ThemeDark)
	assert.Equal(t, ThemeLight, Toggle())
	assert.Equal(t, ThemeDark, Toggle())
}

func TestStylesCachedPerTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme(ThemeDark) })

	SetTheme(ThemeDark)
	dark := T().S()
	assert.Same(t, dark, T().S())

	SetTheme(ThemeLight)
	assert.NotSame(t, dark, T().S())
}

func TestBlend(t *testing.T) {
	tests := []struct {
		name     string
		from, to lipgloss.Color
		amount   float64
		expected lipgloss.Color
	}{
		{"zero keeps source", "#ffffff", "#000000", 0, "#ffffff"},
		{"one yields target", "#ffffff", "#000000", 1, "#000000"},
		{"eighty percent toward black", "#ffffff", "#000000", 0.8, "#333333"},
		{"ansi color untouched", "39", "#000000", 0.8, "39"},
		{"ansi target untouched", "#ffffff", "240", 0.8, "#ffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Blend(tt.from, tt.to, tt.amount))
		})
	}
}

func TestCategoryPalettes(t *testing.T) {
	categories := []string{
		"Alkali Metal", "Alkaline Earth Metal", "Transition Metal",
		"Post-Transition Metal", "Metalloid", "Nonmetal", "Halogen",
		"Noble Gas", "Lanthanide", "Actinide",
	}
	for _, th := range []*Theme{&darkTheme, &lightTheme} {
		for _, c := range categories {
			p := th.Category(c)
			assert.NotEqual(t, th.Fallback, p, "%s/%s uses fallback", th.Name, c)
		}
		assert.Equal(t, th.Fallback, th.Category("Unknown"))
	}

	// Light and dark share accents but swap background and text weight.
	assert.Equal(t, darkTheme.Category("Halogen").Accent, lightTheme.Category("Halogen").Accent)
	assert.NotEqual(t, darkTheme.Category("Halogen").Bg, lightTheme.Category("Halogen").Bg)
}

func TestDimmed(t *testing.T) {
	th := &darkTheme
	p := th.Category("Noble Gas")
	d := th.Dimmed(p)

	assert.Equal(t, Blend(p.Bg, th.BgBase, DimAmount), d.Bg)
	assert.Equal(t, Blend(p.Fg, th.BgBase, DimAmount), d.Fg)
	assert.NotEqual(t, p.Fg, d.Fg)
}

func TestTitleKeepsText(t *testing.T) {
	assert.Equal(t, "Periodic Table", ansi.Strip(Title("Periodic Table")))
	assert.Empty(t, ApplyGradient("", "#000000", "#ffffff"))
	assert.Equal(t, "H", ansi.Strip(ApplyGradient("H", "#000000", "#ffffff")))
}
