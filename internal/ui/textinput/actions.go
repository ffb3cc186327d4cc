package textinput

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/timetable/internal/ui/action"
)

// Result is emitted when the prompt closes.
type Result struct {
	Text     string
	Context  any
	Canceled bool // esc was pressed
}

// ActionType implements action.Action.
func (a Result) ActionType() string { return "textinput.result" }

// ActionCmd returns a command emitting a as a textinput action.
func ActionCmd(a action.Action) tea.Cmd {
	return action.Cmd("textinput", a)
}
