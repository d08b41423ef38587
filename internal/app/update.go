package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/periodic/internal/ui/action"
	"github.com/llehouerou/periodic/internal/ui/headerbar"
	"github.com/llehouerou/periodic/internal/ui/layout"
	"github.com/llehouerou/periodic/internal/ui/legend"
)

// statusHeight is the single status line under the table.
const statusHeight = 1

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case action.Msg:
		return m.handleUIAction(msg)

	case NoticeClearMsg:
		if msg.ID == m.noticeID {
			m.notice = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	narrow := layout.IsNarrowMode(m.width, m.threshold)
	if narrow != m.table.Narrow() {
		m.logger.Debug("layout changed", zap.Bool("narrow", narrow))
	}
	m.table.SetNarrow(narrow)
	m.resize()
	return m, nil
}

// resize propagates the window size to the components.
func (m *Model) resize() {
	narrow := m.table.Narrow()
	contentHeight := m.contentHeight()
	d := layout.DrawerFor(m.width, contentHeight, narrow)
	m.drawer.SetSide(d.Side)
	m.drawer.SetSize(d.Width, d.Height)

	tw, th := layout.TableArea(m.width, contentHeight, d, m.drawerOpen)
	m.table.SetSize(tw, th)
	m.search.SetSize(max(m.width/3, 20), 1)
	m.help.SetSize(m.width, m.height)
}

func (m Model) contentHeight() int {
	opts := layout.ContentOpts{HeaderHeight: headerbar.Height, StatusHeight: statusHeight}
	if !m.table.Narrow() {
		opts.LegendHeight = legend.Height
	}
	return layout.ContentHeight(m.height, opts)
}
