package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/periodic/internal/errmsg"
	"github.com/llehouerou/periodic/internal/state"
	"github.com/llehouerou/periodic/internal/ui/styles"
)

// loadPreferences returns the saved preferences, or nil when there are none
// or they cannot be read.
func (m *Model) loadPreferences() *state.Preferences {
	if m.stateMgr == nil {
		return nil
	}
	prefs, err := m.stateMgr.GetPreferences()
	if err != nil {
		m.logger.Warn("read preferences", zap.Error(err))
		m.notice = errmsg.Format(errmsg.OpStateLoad, err)
		return nil
	}
	return prefs
}

// saveCursor records the element under the cursor (debounced by the store).
func (m *Model) saveCursor() {
	if m.stateMgr == nil {
		return
	}
	if e := m.table.Selected(); e != nil {
		m.stateMgr.SaveCursor(e.Number)
	}
}

// toggleTheme switches palettes and remembers the choice.
func (m *Model) toggleTheme() tea.Cmd {
	name := styles.Toggle()
	m.logger.Info("theme changed", zap.String("theme", name))
	if m.stateMgr == nil {
		return nil
	}
	if err := m.stateMgr.SaveTheme(name); err != nil {
		m.logger.Warn("save theme", zap.Error(err))
		return m.showNotice(errmsg.Format(errmsg.OpThemeSave, err))
	}
	return nil
}
