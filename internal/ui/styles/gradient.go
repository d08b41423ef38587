package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Title renders the application title bold, shading from the theme's
// primary to its secondary colour.
func Title(text string) string {
	t := T()
	return gradient(text, lipgloss.NewStyle().Bold(true), t.Primary, t.Secondary)
}

// ApplyGradient shades text from one colour to another, one grapheme at a time.
func ApplyGradient(text string, from, to lipgloss.Color) string {
	return gradient(text, lipgloss.NewStyle(), from, to)
}

func gradient(text string, base lipgloss.Style, from, to lipgloss.Color) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return base.Foreground(from).Render(text)
	}

	c1, err1 := colorful.Hex(string(from))
	c2, err2 := colorful.Hex(string(to))
	if err1 != nil || err2 != nil {
		// ANSI palette colours cannot be interpolated.
		return base.Foreground(from).Render(text)
	}

	var b strings.Builder
	last := float64(len(clusters) - 1)
	for i, cluster := range clusters {
		c := c1.BlendHcl(c2, float64(i)/last).Clamped()
		b.WriteString(base.Foreground(lipgloss.Color(c.Hex())).Render(cluster))
	}
	return b.String()
}
