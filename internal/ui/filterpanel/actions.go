package filterpanel

import (
	"github.com/llehouerou/periodic/internal/filter"
	"github.com/llehouerou/periodic/internal/ui/action"
)

// Source tags messages emitted by the drawer.
const Source = "filterpanel"

// Selected reports that an option badge was picked.
type Selected struct {
	Field filter.Field
	Value string
}

// ActionType implements action.Action.
func (a Selected) ActionType() string { return "filterpanel.selected" }

// Close signals the drawer should close.
type Close struct{}

// ActionType implements action.Action.
func (a Close) ActionType() string { return "filterpanel.close" }

// ActionMsg creates an action.Msg for a filterpanel action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: Source, Action: a}
}
