// Package textinput provides a single-line prompt popup built on the bubbles
// text input.
package textinput

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/timetable/internal/ui"
	"github.com/llehouerou/timetable/internal/ui/popup"
	"github.com/llehouerou/timetable/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

// Model is a prompt popup.
type Model struct {
	ui.Base
	title   string
	hint    string
	input   textinput.Model
	context any // passed through to Result
}

// New creates a prompt.
func New() Model {
	in := textinput.New()
	in.Prompt = "> "
	in.CharLimit = 32
	return Model{input: in}
}

// Start opens the prompt with a title, a placeholder and optional initial
// text. context is returned unchanged in the Result.
func (m *Model) Start(title, placeholder, initial string, context any) {
	m.title = title
	m.hint = "enter confirm · esc cancel"
	m.context = context
	m.input.Placeholder = placeholder
	m.input.SetValue(initial)
	m.input.CursorEnd()
	m.input.Focus()
}

// Value returns the current text.
func (m *Model) Value() string {
	return m.input.Value()
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.input.Blur()
			return m, ActionCmd(Result{Canceled: true, Context: m.context})
		case "enter":
			m.input.Blur()
			return m, ActionCmd(Result{Text: m.input.Value(), Context: m.context})
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// SetSize implements popup.Popup.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.input.Width = max(width-4, 8)
}

// View implements popup.Popup.
func (m *Model) View() string {
	s := styles.T().S()
	return s.Title.Render(m.title) + "\n\n" + m.input.View() + "\n\n" + s.Subtle.Render(m.hint)
}
