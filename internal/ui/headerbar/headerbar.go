// Package headerbar renders the top line: title, search field and status badges.
package headerbar

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/periodic/internal/icons"
	"github.com/llehouerou/periodic/internal/ui/render"
	"github.com/llehouerou/periodic/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// Title is the application title shown on the left.
const Title = "Periodic Table"

// Info is what the header displays besides the title.
type Info struct {
	Search        string // rendered search field
	FiltersActive bool
	Matches       int
	Total         int
	Theme         string
}

// Render returns the header bar string for the given width.
func Render(info Info, width int) string {
	if width < 20 {
		return ""
	}
	s := styles.T().S()

	left := styles.Title(Title)
	if info.Search != "" {
		left += "  " + info.Search
	}

	right := s.Muted.Render(fmt.Sprintf("%d/%d", info.Matches, info.Total))
	if info.FiltersActive {
		right = s.Warning.Render("r reset") + s.Subtle.Render(" · ") + right
	}
	right += " " + s.Base.Render(icons.Theme(info.Theme))

	room := width - lipgloss.Width(right) - 1
	if lipgloss.Width(left) > room {
		left = ansi.Truncate(left, max(room, 0), "…")
	}
	return render.Row(left, right, width)
}
