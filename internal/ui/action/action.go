// Package action carries component events up to the app model.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is an event emitted by a component. ActionType names it in logs.
type Action interface {
	ActionType() string
}

// Msg tags an Action with the component that emitted it, e.g. "filterpanel"
// or "textinput". The app routes on Source.
type Msg struct {
	Source string
	Action Action
}

var _ tea.Msg = Msg{}
