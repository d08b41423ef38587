// Package handler chains key handlers: each one either claims a key press
// or passes it on to the next.
package handler

import tea "github.com/charmbracelet/bubbletea"

// Result is what a handler did with a key.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// Pass lets the next handler see the key.
var Pass = Result{}

// Consumed claims the key without producing a command.
var Consumed = Result{Handled: true}

// Done claims the key and returns cmd to the runtime.
func Done(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// Func handles a single key press.
type Func func() Result

// Chain runs handlers in order and stops at the first that claims the key.
// It returns Pass when none does.
func Chain(handlers ...Func) Result {
	for _, h := range handlers {
		if r := h(); r.Handled {
			return r
		}
	}
	return Pass
}
