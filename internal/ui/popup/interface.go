package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup is a modal component drawn over the timetable.
type Popup interface {
	// Init returns the initial command, typically cursor blinking.
	Init() tea.Cmd

	// Update handles a message while the popup is open.
	Update(msg tea.Msg) (Popup, tea.Cmd)

	// View renders the popup body without its border.
	View() string

	// SetSize sets the space available to the popup body.
	SetSize(width, height int)
}
