package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/periodic/internal/ui/action"
	"github.com/llehouerou/periodic/internal/ui/filterpanel"
	"github.com/llehouerou/periodic/internal/ui/helpbindings"
	"github.com/llehouerou/periodic/internal/ui/textinput"
)

// handleUIAction routes action messages to component-specific handlers.
func (m Model) handleUIAction(msg action.Msg) (tea.Model, tea.Cmd) {
	m.logger.Debug("ui action", zapAction(msg))
	switch msg.Source {
	case textinput.Source:
		return m.handleSearchAction(msg.Action)
	case filterpanel.Source:
		return m.handleDrawerAction(msg.Action)
	case helpbindings.Source:
		if _, ok := msg.Action.(helpbindings.Close); ok {
			m.showHelp = false
		}
	}
	return m, nil
}

func (m Model) handleSearchAction(a action.Action) (tea.Model, tea.Cmd) {
	switch act := a.(type) {
	case textinput.QueryChanged:
		m.selection.Search = act.Text
		m.applySelection()
	case textinput.Done:
		m.focus = FocusTable
		if m.drawerOpen {
			m.focus = FocusFilters
		}
	}
	return m, nil
}

func (m Model) handleDrawerAction(a action.Action) (tea.Model, tea.Cmd) {
	switch act := a.(type) {
	case filterpanel.Selected:
		m.selection.Set(act.Field, act.Value)
		m.applySelection()
	case filterpanel.Close:
		m.closeDrawer()
	}
	return m, nil
}

func zapAction(msg action.Msg) zap.Field {
	return zap.String("action", msg.Source+":"+msg.Action.ActionType())
}
