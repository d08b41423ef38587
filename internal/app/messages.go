package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// NoticeDuration is how long an error notice stays on the status line.
const NoticeDuration = 5 * time.Second

// NoticeClearMsg clears the notice with the given ID, if still shown.
type NoticeClearMsg struct {
	ID int64
}

// NoticeClearCmd returns a command that clears the notice after a delay.
func NoticeClearCmd(id int64) tea.Cmd {
	return tea.Tick(NoticeDuration, func(time.Time) tea.Msg {
		return NoticeClearMsg{ID: id}
	})
}

// showNotice sets the status line notice and schedules its removal.
func (m *Model) showNotice(text string) tea.Cmd {
	m.noticeID++
	m.notice = text
	return NoticeClearCmd(m.noticeID)
}
