package textinput

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/periodic/internal/ui/action"
	"github.com/llehouerou/periodic/internal/ui/testutil"
)

// collect runs cmd, flattening batches, and returns the textinput actions.
func collect(t *testing.T, cmd tea.Cmd) []action.Action {
	t.Helper()
	var out []action.Action
	var walk func(tea.Cmd)
	walk = func(c tea.Cmd) {
		if c == nil {
			return
		}
		switch msg := c().(type) {
		case tea.BatchMsg:
			for _, inner := range msg {
				walk(inner)
			}
		case action.Msg:
			if msg.Source == "textinput" {
				out = append(out, msg.Action)
			}
		}
	}
	walk(cmd)
	return out
}

func focused() Model {
	m := New()
	m.Focus()
	return m
}

func TestUpdate_IgnoredWhenBlurred(t *testing.T) {
	m := New()
	m, cmd := m.Update(testutil.Key("a"))
	assert.Nil(t, cmd)
	assert.Empty(t, m.Value())
}

func TestUpdate_TypingReportsQuery(t *testing.T) {
	m := focused()

	var cmd tea.Cmd
	m, _ = m.Update(testutil.Key("i"))
	m, cmd = m.Update(testutil.Key("r"))

	assert.Equal(t, "ir", m.Value())
	assert.Contains(t, collect(t, cmd), QueryChanged{Text: "ir"})
}

func TestUpdate_BackspaceReportsQuery(t *testing.T) {
	m := focused()
	m.SetValue("fe")

	m, cmd := m.Update(testutil.Key("backspace"))
	assert.Equal(t, "f", m.Value())
	assert.Contains(t, collect(t, cmd), QueryChanged{Text: "f"})
}

func TestUpdate_EnterKeepsQuery(t *testing.T) {
	m := focused()
	m.SetValue("gold")

	m, cmd := m.Update(testutil.Key("enter"))
	assert.False(t, m.IsFocused())
	assert.Equal(t, "gold", m.Value())
	assert.Equal(t, []action.Action{Done{Text: "gold"}}, collect(t, cmd))
}

func TestUpdate_EscapeClearsQuery(t *testing.T) {
	m := focused()
	m.SetValue("gold")

	m, cmd := m.Update(testutil.Key("esc"))
	assert.False(t, m.IsFocused())
	assert.Empty(t, m.Value())

	actions := collect(t, cmd)
	require.Len(t, actions, 2)
	assert.Contains(t, actions, QueryChanged{})
	assert.Contains(t, actions, Done{Canceled: true})
}

func TestView_ShowsQuery(t *testing.T) {
	m := New()
	m.SetSize(40, 1)
	m.SetValue("Neon")
	assert.Contains(t, testutil.StripANSI(m.View()), "Neon")
}
