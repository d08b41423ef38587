package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup is a component drawn over the table that takes keys while open,
// such as the help screen or the filter drawer. View returns the content
// only; the caller frames and places it.
type Popup interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Popup, tea.Cmd)
	View() string
	SetSize(width, height int)
}
