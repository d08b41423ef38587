package textinput

import "github.com/llehouerou/periodic/internal/ui/action"

// Source tags messages emitted by the search field.
const Source = "textinput"

// QueryChanged is emitted on every edit so the table filters live.
type QueryChanged struct {
	Text string
}

func (QueryChanged) ActionType() string { return Source + ".query_changed" }

// Done is emitted when the field gives up focus. Canceled is set by esc,
// which also clears the query.
type Done struct {
	Text     string
	Canceled bool
}

func (Done) ActionType() string { return Source + ".done" }

// ActionMsg wraps a for the app.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: Source, Action: a}
}
