package helpbindings

import "github.com/llehouerou/periodic/internal/ui/action"

// Source tags messages emitted by the help popup.
const Source = "helpbindings"

// Close asks the app to hide the help popup.
type Close struct{}

func (Close) ActionType() string { return Source + ".close" }

// ActionMsg wraps a for the app.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: Source, Action: a}
}
