// Package card renders the element detail card shown next to the cursor.
package card

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/periodic/internal/element"
	"github.com/llehouerou/periodic/internal/filter"
	"github.com/llehouerou/periodic/internal/icons"
	"github.com/llehouerou/periodic/internal/ui/popup"
	"github.com/llehouerou/periodic/internal/ui/render"
	"github.com/llehouerou/periodic/internal/ui/styles"
)

// Width is the outer width of the card, border included.
const Width = 40

const labelWidth = 12

// Visible reports whether the card may be shown for e. While a filter is
// active, elements it dims get no card.
func Visible(e *element.Element, sel filter.Selection) bool {
	return e != nil && filter.Highlighted(e, sel)
}

// Render draws the card for e at the given outer width.
func Render(e *element.Element, width int) string {
	inner := width - 4 // border + padding
	t := styles.T()
	label := t.S().Muted
	accent := lipgloss.NewStyle().Foreground(t.Category(string(e.Category)).Accent).Bold(true)

	row := func(name, value string) string {
		return label.Render(render.Pad(name, labelWidth)) +
			t.S().Base.Render(render.Truncate(value, inner-labelWidth))
	}

	lines := []string{
		row("Number", strconv.Itoa(e.Number)),
		row("Mass", Mass(e.AtomicMass)),
		row("Group", e.Group),
		row("Period", humanize.Ordinal(e.Period)),
		label.Render(render.Pad("Category", labelWidth)) +
			accent.Render(render.Truncate(string(e.Category), inner-labelWidth)),
		row("State", icons.FormatState(e.State)),
		row("Electrons", e.ElectronConfig),
	}
	if summary := render.Wrap(e.Summary, inner); len(summary) > 0 {
		lines = append(lines, "")
		for _, l := range summary {
			lines = append(lines, t.S().Subtle.Render(l))
		}
	}

	title := fmt.Sprintf("%s  %s", accent.Render(e.Symbol), e.Name)
	return popup.Box(title, strings.Join(lines, "\n"), width)
}

// Mass formats an atomic mass in unified atomic mass units, trimming
// trailing zeros. Unknown masses render as "unknown".
func Mass(mass float64) string {
	if mass <= 0 {
		return "unknown"
	}
	return humanize.FtoaWithDigits(mass, 3) + " u"
}

// Place returns where to draw a card of size cardW x cardH next to a cell
// at (cellX, cellY) of width cellW, inside an area of areaW x areaH. The
// card goes right of the cell when it fits, otherwise left, and is clamped
// to the area.
func Place(cellX, cellY, cellW, cardW, cardH, areaW, areaH int) (x, y int) {
	x = cellX + cellW + 1
	if x+cardW > areaW {
		x = cellX - cardW - 1
	}
	x = clamp(x, 0, areaW-cardW)
	y = clamp(cellY, 0, areaH-cardH)
	return x, y
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
