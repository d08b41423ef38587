package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/periodic/internal/filter"
	"github.com/llehouerou/periodic/internal/keymap"
	"github.com/llehouerou/periodic/internal/ui/card"
	"github.com/llehouerou/periodic/internal/ui/headerbar"
	"github.com/llehouerou/periodic/internal/ui/layout"
	"github.com/llehouerou/periodic/internal/ui/legend"
	"github.com/llehouerou/periodic/internal/ui/popup"
	"github.com/llehouerou/periodic/internal/ui/render"
	"github.com/llehouerou/periodic/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	// Can't render before we know terminal size
	if m.width == 0 || m.height == 0 {
		return ""
	}

	theme := styles.T()
	sections := []string{headerbar.Render(headerbar.Info{
		Search:        m.search.View(),
		FiltersActive: m.selection.Active(),
		Matches:       m.matches(),
		Total:         len(m.elements),
		Theme:         theme.Name,
	}, m.width)}

	narrow := m.table.Narrow()
	if !narrow {
		sections = append(sections, legend.Render(m.options.Categories, m.selection.Category, m.width))
	}

	content := m.renderTable()
	if m.drawerOpen {
		if m.drawer.Side() == layout.SideLeft {
			content = lipgloss.JoinHorizontal(lipgloss.Top, m.drawer.View(), content)
		} else {
			content += "\n" + m.drawer.View()
		}
	}
	sections = append(sections, enforceHeight(content, m.contentHeight()), m.renderStatus())

	view := strings.Join(sections, "\n")
	if m.showHelp {
		box := popup.RenderBordered(m.help.View(), m.width, m.height, popup.SizeAuto)
		view = popup.Compose(view, box, m.width, m.height)
	}
	return enforceHeight(view, m.height)
}

// renderTable draws the table in its area with the detail card on top.
func (m Model) renderTable() string {
	w, h := m.table.Size()
	view := enforceHeight(m.table.View(), h)

	e := m.table.Selected()
	if !m.showCard || !card.Visible(e, m.selection) {
		return padLines(view, w)
	}

	c := card.Render(e, card.Width)
	cellW, _ := layout.CellSize(m.table.Narrow())
	cx, cy := m.table.CellOrigin(m.table.Cursor())
	x, y := card.Place(cx, cy, cellW, card.Width, lipgloss.Height(c), w, h)
	return popup.ComposeAt(padLines(view, w), c, x, y, w)
}

// renderStatus describes the element under the cursor, or shows a notice.
func (m Model) renderStatus() string {
	s := styles.T().S()
	if m.notice != "" {
		return s.Error.Render(render.Truncate(m.notice, m.width))
	}

	e := m.table.Selected()
	if e == nil {
		return s.Subtle.Render("no elements · " + m.hint(keymap.ActionHelp, "help"))
	}
	text := fmt.Sprintf("%d %s %s · %s", e.Number, e.Symbol, e.Name, e.Category)
	if m.selection.Active() && !filter.IsMatch(e, m.selection) {
		text += " · filtered out"
	}
	hint := m.hint(keymap.ActionHelp, "help")
	return render.Row(s.Base.Render(render.Truncate(text, m.width-len(hint)-2)), s.Subtle.Render(hint), m.width)
}

// hint names the first key bound to a, e.g. "? help".
func (m Model) hint(a keymap.Action, label string) string {
	keys := m.keys.KeysFor(a)
	if len(keys) == 0 {
		return label
	}
	return keys[0] + " " + label
}

// enforceHeight pads or cuts view to exactly height lines.
func enforceHeight(view string, height int) string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// padLines pads every line to width so overlays and joins line up.
func padLines(view string, width int) string {
	lines := strings.Split(view, "\n")
	for i, l := range lines {
		if w := ansi.StringWidth(l); w < width {
			lines[i] = l + strings.Repeat(" ", width-w)
		}
	}
	return strings.Join(lines, "\n")
}
