// Package filterpanel implements the filter drawer: one section of option
// badges per enumerated filter field.
package filterpanel

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/periodic/internal/filter"
	"github.com/llehouerou/periodic/internal/icons"
	"github.com/llehouerou/periodic/internal/keymap"
	"github.com/llehouerou/periodic/internal/ui"
	"github.com/llehouerou/periodic/internal/ui/layout"
	"github.com/llehouerou/periodic/internal/ui/popup"
	"github.com/llehouerou/periodic/internal/ui/render"
	"github.com/llehouerou/periodic/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

var sectionTitles = map[filter.Field]string{
	filter.FieldGroup:    "Group",
	filter.FieldState:    "State",
	filter.FieldCategory: "Category",
}

const footer = "enter apply · esc close"

// Model holds the drawer state.
type Model struct {
	ui.Base
	options   filter.Options
	selection filter.Selection
	side      layout.Side
	section   int                  // index into filter.Fields
	cursors   map[filter.Field]int // option cursor per section
	keys      *keymap.Resolver
}

// New creates a drawer over the given options.
func New(options filter.Options) *Model {
	m := &Model{
		options:   options,
		selection: filter.Default(),
		cursors:   make(map[filter.Field]int, len(filter.Fields)),
		keys:      keymap.NewResolver(keymap.All),
	}
	m.syncCursors()
	return m
}

// SetSide sets where the drawer is drawn, which decides its arrangement.
func (m *Model) SetSide(side layout.Side) {
	m.side = side
}

// Side returns where the drawer is drawn.
func (m *Model) Side() layout.Side {
	return m.side
}

// SetSelection shows s as the current filter and moves each section's
// cursor onto its selected option.
func (m *Model) SetSelection(s filter.Selection) {
	m.selection = s
	m.syncCursors()
}

// Field returns the focused section.
func (m *Model) Field() filter.Field {
	return filter.Fields[m.section]
}

// Highlighted returns the option under the cursor of the focused section.
func (m *Model) Highlighted() string {
	opts := m.options.For(m.Field())
	if len(opts) == 0 {
		return ""
	}
	return opts[m.cursors[m.Field()]]
}

func (m *Model) syncCursors() {
	for _, f := range filter.Fields {
		m.cursors[f] = 0
		for i, v := range m.options.For(f) {
			if v == m.selection.Get(f) {
				m.cursors[f] = i
				break
			}
		}
	}
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	field := m.Field()
	count := len(m.options.For(field))

	switch m.keys.Resolve(keymap.ContextFilters, key.String()) {
	case keymap.ActionMoveUp:
		if m.cursors[field] > 0 {
			m.cursors[field]--
		}
	case keymap.ActionMoveDown:
		if m.cursors[field] < count-1 {
			m.cursors[field]++
		}
	case keymap.ActionNextSection:
		m.section = (m.section + 1) % len(filter.Fields)
	case keymap.ActionPrevSection:
		m.section = (m.section + len(filter.Fields) - 1) % len(filter.Fields)
	case keymap.ActionSelect:
		if count == 0 {
			return m, nil
		}
		value := m.Highlighted()
		m.selection.Set(field, value)
		return m, func() tea.Msg { return ActionMsg(Selected{Field: field, Value: value}) }
	case keymap.ActionClose:
		return m, func() tea.Msg { return ActionMsg(Close{}) }
	}
	return m, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	width, height := m.Size()
	if width < 10 || height < 3 {
		return ""
	}
	t := styles.T()
	inner := width - 2 // border

	var body string
	if m.side == layout.SideBottom {
		colWidth := inner / len(filter.Fields)
		cols := make([]string, len(filter.Fields))
		for i, f := range filter.Fields {
			cols[i] = lipgloss.NewStyle().Width(colWidth).Render(m.renderSection(i, f, colWidth-1))
		}
		body = lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	} else {
		parts := make([]string, len(filter.Fields))
		for i, f := range filter.Fields {
			parts[i] = m.renderSection(i, f, inner)
		}
		body = strings.Join(parts, "\n\n")
	}

	lines := append(
		[]string{t.S().Title.Render(icons.FormatFilter("Filters")), ""},
		strings.Split(body, "\n")...)
	room := height - 2 - 2 // border, footer
	if len(lines) > room {
		lines = lines[:max(room, 0)]
	}
	lines = append(lines, "", t.S().Subtle.Render(render.Truncate(footer, inner)))
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, inner, "")
	}

	return styles.PanelStyle(true).
		Width(inner).
		Height(height - 2).
		Render(strings.Join(lines, "\n"))
}

// renderSection renders the title and wrapped badges of one section.
func (m *Model) renderSection(index int, f filter.Field, width int) string {
	t := styles.T()
	focused := index == m.section

	title := sectionTitles[f]
	if focused {
		title = t.S().Active.Render(title)
	} else {
		title = t.S().Muted.Render(title)
	}

	var lines []string
	var line strings.Builder
	lineWidth := 0
	for i, opt := range m.options.For(f) {
		badge := m.badge(f, opt, focused && i == m.cursors[f])
		w := lipgloss.Width(badge)
		if lineWidth > 0 && lineWidth+1+w > width {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		if lineWidth > 0 {
			line.WriteByte(' ')
			lineWidth++
		}
		line.WriteString(badge)
		lineWidth += w
	}
	if lineWidth > 0 {
		lines = append(lines, line.String())
	}
	return title + "\n" + strings.Join(lines, "\n")
}

func (m *Model) badge(f filter.Field, opt string, underCursor bool) string {
	t := styles.T()
	label := opt
	if m.selection.Get(f) == opt || (opt == filter.All && m.selection.Get(f) == "") {
		label = icons.Selected() + opt
	}

	var style lipgloss.Style
	switch {
	case underCursor:
		style = lipgloss.NewStyle().Background(t.Primary).Foreground(t.BgBase).Padding(0, 1)
	case f == filter.FieldCategory && opt != filter.All:
		style = t.Badge(opt)
	default:
		style = lipgloss.NewStyle().Background(t.BgCursor).Foreground(t.FgBase).Padding(0, 1)
	}
	return style.Render(label)
}
