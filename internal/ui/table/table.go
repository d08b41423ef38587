// Package table renders the periodic table with the highlight overlay and
// owns the cursor that moves between occupied cells.
package table

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/periodic/internal/element"
	"github.com/llehouerou/periodic/internal/filter"
	"github.com/llehouerou/periodic/internal/periodic"
	"github.com/llehouerou/periodic/internal/ui"
	"github.com/llehouerou/periodic/internal/ui/layout"
	"github.com/llehouerou/periodic/internal/ui/render"
	"github.com/llehouerou/periodic/internal/ui/styles"
)

// Markers linking the empty group 3 cells to the f-block rows.
const (
	lanthanideMark = "*"
	actinideMark   = "**"
)

// Model is the table view.
type Model struct {
	ui.Base
	grid      *periodic.Grid
	cursor    periodic.Position
	selection filter.Selection
	narrow    bool
	noCursor  bool
}

// New creates a table over grid with the cursor on the first element.
func New(grid *periodic.Grid) Model {
	m := Model{grid: grid, selection: filter.Default()}
	if p, ok := grid.First(); ok {
		m.cursor = p
	}
	return m
}

// SetNarrow switches between 3-line and 1-line cells.
func (m *Model) SetNarrow(narrow bool) {
	m.narrow = narrow
}

// SetCursorVisible controls whether the cursor cell is drawn in the cursor
// style. A hidden cursor still moves; its cell is dimmed like any other.
func (m *Model) SetCursorVisible(visible bool) {
	m.noCursor = !visible
}

// Narrow reports whether one-line cells are drawn.
func (m Model) Narrow() bool {
	return m.narrow
}

// SetSelection sets the filter that decides which cells are dimmed.
func (m *Model) SetSelection(s filter.Selection) {
	m.selection = s
}

// Cursor returns the cursor position.
func (m Model) Cursor() periodic.Position {
	return m.cursor
}

// Selected returns the element under the cursor, or nil on an empty table.
func (m Model) Selected() *element.Element {
	return m.grid.At(m.cursor)
}

// SetCursor moves the cursor to the element with the given atomic number.
func (m *Model) SetCursor(number int) bool {
	p, ok := m.grid.Locate(number)
	if ok {
		m.cursor = p
	}
	return ok
}

// Move steps the cursor and reports whether it moved.
func (m *Model) Move(d periodic.Direction) bool {
	next := m.grid.Step(m.cursor, d)
	moved := next != m.cursor
	m.cursor = next
	return moved
}

// JumpStart moves the cursor to hydrogen's cell (the first occupied one).
func (m *Model) JumpStart() {
	if p, ok := m.grid.First(); ok {
		m.cursor = p
	}
}

// JumpEnd moves the cursor to the highest atomic number.
func (m *Model) JumpEnd() {
	if p, ok := m.grid.Last(); ok {
		m.cursor = p
	}
}

// CellOrigin returns the column and line where a cell is drawn in View.
func (m Model) CellOrigin(p periodic.Position) (x, y int) {
	cw, ch := layout.CellSize(m.narrow)
	x = layout.LabelWidth + p.Col*cw
	y = layout.GroupHeaderHeight + p.Row*ch
	if p.Row >= periodic.LanthanideRow {
		y += layout.FBlockGap
	}
	return x, y
}

// View renders the table. Lines are clipped to the component width when set.
func (m Model) View() string {
	cw, ch := layout.CellSize(m.narrow)
	lines := make([]string, 0, layout.GroupHeaderHeight+periodic.DisplayRows*ch+layout.FBlockGap)

	lines = append(lines, m.groupHeader(cw))
	for row := range periodic.DisplayRows {
		if row == periodic.LanthanideRow {
			lines = append(lines, "")
		}
		lines = append(lines, m.renderRow(row, cw, ch)...)
	}

	if w := m.Width(); w > 0 {
		for i, l := range lines {
			lines[i] = ansi.Truncate(l, w, "")
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) groupHeader(cw int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", layout.LabelWidth))
	for col := range periodic.DisplayColumns {
		b.WriteString(render.Center(strconv.Itoa(col+1), cw))
	}
	return styles.T().S().Subtle.Render(b.String())
}

func (m Model) renderRow(row, cw, ch int) []string {
	subtle := styles.T().S().Subtle
	lines := make([]string, ch)
	for i := range lines {
		label := ""
		if i == 0 {
			label = rowLabel(row)
		}
		lines[i] = subtle.Render(render.Fit(label, layout.LabelWidth))
	}

	for col := range periodic.DisplayColumns {
		p := periodic.Position{Row: row, Col: col}
		cell := m.renderCell(p, cw, ch)
		for i := range lines {
			lines[i] += cell[i]
		}
	}
	return lines
}

func rowLabel(row int) string {
	switch row {
	case periodic.LanthanideRow:
		return lanthanideMark
	case periodic.ActinideRow:
		return actinideMark
	default:
		return strconv.Itoa(row + 1)
	}
}

// renderCell returns the lines of one cell, each exactly cw wide.
// Wide cells show number, symbol and name; narrow cells only the symbol.
func (m Model) renderCell(p periodic.Position, cw, ch int) []string {
	e := m.grid.At(p)
	if e == nil {
		return m.emptyCell(p, cw, ch)
	}

	t := styles.T()
	style := t.Cell(string(e.Category), filter.Highlighted(e, m.selection))
	if p == m.cursor && !m.noCursor {
		style = lipgloss.NewStyle().Background(t.Primary).Foreground(t.BgBase)
	}

	if ch == 1 {
		return []string{style.Bold(true).Render(render.Center(e.Symbol, cw))}
	}

	return []string{
		style.Render(render.Fit(strconv.Itoa(e.Number), cw)),
		style.Bold(true).Render(render.Center(e.Symbol, cw)),
		style.Render(render.Fit(e.Name, cw)),
	}
}

// emptyCell draws blank space, or the f-block marker in the group 3 gaps.
func (m Model) emptyCell(p periodic.Position, cw, ch int) []string {
	out := make([]string, ch)
	for i := range out {
		out[i] = strings.Repeat(" ", cw)
	}
	if p.Col != periodic.FBlockOffset {
		return out
	}

	var mark, span string
	switch p.Row {
	case periodic.LanthanideRow - 2: // period 6
		mark, span = lanthanideMark, "57-71"
	case periodic.LanthanideRow - 1: // period 7
		mark, span = actinideMark, "89-103"
	default:
		return out
	}

	subtle := styles.T().S().Subtle
	if ch == 1 {
		out[0] = subtle.Render(render.Center(mark, cw))
		return out
	}
	out[0] = subtle.Render(render.Center(mark, cw))
	out[1] = subtle.Render(render.Center(span, cw))
	return out
}
