package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestStripANSI(t *testing.T) {
	assert.Equal(t, "Fe", StripANSI("\x1b[38;2;255;0;0mFe\x1b[0m"))
	assert.Equal(t, "plain", StripANSI("plain"))
}

func TestMeasureWidth(t *testing.T) {
	assert.Equal(t, 2, MeasureWidth("\x1b[1mHe\x1b[0m"))
}

func TestFindLine(t *testing.T) {
	out := "H            He\nLi Be\n\x1b[2mNa\x1b[0m Mg"
	assert.Equal(t, "Na Mg", FindLine(out, "Na"))
	assert.Empty(t, FindLine(out, "Xx"))
	assert.True(t, ContainsLine(out, "Be"))
	assert.False(t, ContainsLine(out, "Ca"))
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "", "b"}, SplitLines("a\n\nb\n\n  \n"))
}

func TestKey(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"enter", "enter"},
		{"esc", "esc"},
		{"shift+tab", "shift+tab"},
		{"ctrl+c", "ctrl+c"},
		{"q", "q"},
		{"/", "/"},
		{" ", " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Key(tt.name).String())
		})
	}
	assert.Equal(t, tea.KeyUp, Key("up").Type)
}
