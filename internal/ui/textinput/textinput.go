// Package textinput provides the header search field.
package textinput

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/periodic/internal/icons"
	"github.com/llehouerou/periodic/internal/ui"
	"github.com/llehouerou/periodic/internal/ui/styles"
)

const (
	charLimit = 32
	// MinWidth is the narrowest the field gets, prompt excluded.
	MinWidth = 12
)

// Model is the search field shown in the header.
type Model struct {
	ui.Base
	input textinput.Model
}

// New creates an unfocused, empty search field.
func New() Model {
	ti := textinput.New()
	ti.Placeholder = "Search by name or symbol..."
	ti.CharLimit = charLimit
	ti.Width = MinWidth
	ti.Cursor.SetMode(cursor.CursorStatic)
	return Model{input: ti}
}

// Value returns the current query.
func (m Model) Value() string {
	return m.input.Value()
}

// SetValue replaces the query without emitting an action.
func (m *Model) SetValue(s string) {
	m.input.SetValue(s)
}

// Focus starts editing.
func (m *Model) Focus() tea.Cmd {
	m.SetFocused(true)
	return m.input.Focus()
}

// Blur stops editing.
func (m *Model) Blur() {
	m.SetFocused(false)
	m.input.Blur()
}

// SetSize sets the width available to the field including its prompt.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.input.Width = max(width-lipgloss.Width(icons.Search())-1, MinWidth)
}

// Update handles keys while focused. Enter keeps the query, Escape clears it;
// both end editing. Every other key edits the query and reports the new text.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.IsFocused() {
		return m, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			m.Blur()
			text := m.Value()
			return m, func() tea.Msg { return ActionMsg(Done{Text: text}) }
		case "esc":
			m.Blur()
			m.input.SetValue("")
			return m, tea.Batch(
				func() tea.Msg { return ActionMsg(QueryChanged{}) },
				func() tea.Msg { return ActionMsg(Done{Canceled: true}) },
			)
		}
	}

	before := m.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.Value(); after != before {
		changed := func() tea.Msg { return ActionMsg(QueryChanged{Text: after}) }
		return m, tea.Batch(cmd, changed)
	}
	return m, cmd
}

// View renders the prompt icon and the field.
func (m Model) View() string {
	t := styles.T()
	m.input.PromptStyle = lipgloss.NewStyle().Foreground(t.Primary)
	m.input.TextStyle = t.S().Base
	m.input.PlaceholderStyle = t.S().Subtle
	m.input.Prompt = icons.Search()
	return m.input.View()
}
