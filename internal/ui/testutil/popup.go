package testutil

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/periodic/internal/ui/popup"
)

// PopupHarness drives a popup with key presses and records the commands
// it returns, including the one from Init.
type PopupHarness struct {
	popup popup.Popup
	cmds  []tea.Cmd
}

func NewPopupHarness(p popup.Popup) *PopupHarness {
	h := &PopupHarness{popup: p}
	h.record(p.Init())
	return h
}

func (h *PopupHarness) Popup() popup.Popup { return h.popup }

func (h *PopupHarness) SetSize(width, height int) { h.popup.SetSize(width, height) }

func (h *PopupHarness) View() string { return h.popup.View() }

// ViewContains reports whether the view, without styling, contains substr.
func (h *PopupHarness) ViewContains(substr string) bool {
	return strings.Contains(StripANSI(h.View()), substr)
}

// SendKey presses one key, named as for Key, and returns the command.
func (h *PopupHarness) SendKey(name string) tea.Cmd {
	var cmd tea.Cmd
	h.popup, cmd = h.popup.Update(Key(name))
	h.record(cmd)
	return cmd
}

// SendKeys presses keys in order and returns the last command.
func (h *PopupHarness) SendKeys(names ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, n := range names {
		cmd = h.SendKey(n)
	}
	return cmd
}

func (h *PopupHarness) SendEnter() tea.Cmd { return h.SendKey("enter") }

// LastCommand returns the most recent non-nil command.
func (h *PopupHarness) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

func (h *PopupHarness) ClearCommands() { h.cmds = nil }

func (h *PopupHarness) record(cmd tea.Cmd) {
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
}

// ExecuteCmd runs cmd and returns its message; nil commands yield nil.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
