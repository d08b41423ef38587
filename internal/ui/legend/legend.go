// Package legend renders the row of category badges shown above the table
// in wide mode.
package legend

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/periodic/internal/filter"
	"github.com/llehouerou/periodic/internal/icons"
	"github.com/llehouerou/periodic/internal/ui/styles"
)

// Height is the fixed height of the legend.
const Height = 1

// Render draws one badge per category, marking the selected one.
// Badges of other categories are dimmed while a category is selected.
// The "All" option is skipped.
func Render(categories []string, selected string, width int) string {
	t := styles.T()
	badges := make([]string, 0, len(categories))
	for _, c := range categories {
		if c == filter.All {
			continue
		}
		style := t.Badge(c)
		label := c
		switch {
		case c == selected:
			label = icons.Selected() + c
			style = style.Bold(true).Underline(true)
		case selected != "" && selected != filter.All:
			p := t.Dimmed(t.Category(c))
			style = style.Background(p.Bg).Foreground(p.Fg)
		}
		badges = append(badges, style.Render(label))
	}
	return ansi.Truncate(strings.Join(badges, " "), width, "…")
}
