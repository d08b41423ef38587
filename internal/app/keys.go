package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/periodic/internal/app/handler"
	"github.com/llehouerou/periodic/internal/keymap"
	"github.com/llehouerou/periodic/internal/periodic"
)

// moves maps navigation actions to table directions.
var moves = map[keymap.Action]periodic.Direction{
	keymap.ActionMoveUp:    periodic.Up,
	keymap.ActionMoveDown:  periodic.Down,
	keymap.ActionMoveLeft:  periodic.Left,
	keymap.ActionMoveRight: periodic.Right,
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	context := keymap.ContextTable
	if m.focus == FocusFilters {
		context = keymap.ContextFilters
	}
	a := m.keys.Resolve(context, msg.String())

	r := handler.Chain(
		func() handler.Result { return m.helpKey(msg) },
		func() handler.Result { return m.searchKey(msg) },
		func() handler.Result { return m.globalAction(a) },
		func() handler.Result { return m.drawerKey(msg) },
		func() handler.Result { return m.tableAction(a) },
	)
	return m, r.Cmd
}

// helpKey sends every key to the help popup while it is open.
func (m *Model) helpKey(msg tea.KeyMsg) handler.Result {
	if !m.showHelp {
		return handler.Pass
	}
	_, cmd := m.help.Update(msg)
	return handler.Done(cmd)
}

// searchKey gives the search field every key but ctrl+c.
func (m *Model) searchKey(msg tea.KeyMsg) handler.Result {
	if m.focus != FocusSearch {
		return handler.Pass
	}
	if msg.String() == "ctrl+c" {
		return handler.Done(tea.Quit)
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return handler.Done(cmd)
}

// globalAction handles actions available whatever has focus.
func (m *Model) globalAction(a keymap.Action) handler.Result {
	switch a {
	case keymap.ActionQuit:
		m.logger.Debug("quit")
		return handler.Done(tea.Quit)
	case keymap.ActionHelp:
		m.showHelp = true
	case keymap.ActionSearch:
		m.focus = FocusSearch
		return handler.Done(m.search.Focus())
	case keymap.ActionFilters:
		m.openDrawer()
	case keymap.ActionReset:
		m.resetFilters()
	case keymap.ActionToggleTheme:
		return handler.Done(m.toggleTheme())
	default:
		return handler.Pass
	}
	return handler.Consumed
}

func (m *Model) drawerKey(msg tea.KeyMsg) handler.Result {
	if m.focus != FocusFilters {
		return handler.Pass
	}
	_, cmd := m.drawer.Update(msg)
	return handler.Done(cmd)
}

func (m *Model) tableAction(a keymap.Action) handler.Result {
	if d, ok := moves[a]; ok {
		if m.table.Move(d) {
			m.saveCursor()
		}
		return handler.Consumed
	}

	switch a {
	case keymap.ActionJumpStart:
		m.table.JumpStart()
		m.saveCursor()
	case keymap.ActionJumpEnd:
		m.table.JumpEnd()
		m.saveCursor()
	case keymap.ActionToggleCard:
		m.showCard = !m.showCard
	case keymap.ActionCycleCategory:
		m.cycle(m.options.Categories, &m.selection.Category)
	case keymap.ActionCycleState:
		m.cycle(m.options.States, &m.selection.State)
	default:
		return handler.Pass
	}
	return handler.Consumed
}

func (m *Model) openDrawer() {
	m.drawerOpen = true
	m.focus = FocusFilters
	m.drawer.SetSelection(m.selection)
	m.resize()
	m.logger.Debug("filter drawer opened", zap.Stringer("side", m.drawer.Side()))
}

func (m *Model) closeDrawer() {
	m.drawerOpen = false
	m.focus = FocusTable
	m.resize()
}

// cycle advances field to the next option, wrapping back to All.
func (m *Model) cycle(options []string, field *string) {
	if len(options) == 0 {
		return
	}
	next := options[0]
	for i, v := range options {
		if v == *field {
			next = options[(i+1)%len(options)]
			break
		}
	}
	*field = next
	m.applySelection()
}
