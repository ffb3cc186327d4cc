package testutil

import tea "github.com/charmbracelet/bubbletea"

// Component is a bubbletea sub-model that returns its own type from Update.
type Component[M any] interface {
	Update(msg tea.Msg) (M, tea.Cmd)
	View() string
}

// Harness drives a component with messages and collects its commands.
type Harness[M Component[M]] struct {
	Model M
	cmds  []tea.Cmd
}

// NewHarness wraps model.
func NewHarness[M Component[M]](model M) *Harness[M] {
	return &Harness[M]{Model: model}
}

// Send delivers msg and returns the resulting command.
func (h *Harness[M]) Send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.Model, cmd = h.Model.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// SendKey simulates typing key.
func (h *Harness[M]) SendKey(key string) tea.Cmd {
	return h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendSpecialKey sends a non-rune key such as tea.KeyLeft.
func (h *Harness[M]) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.Send(tea.KeyMsg{Type: keyType})
}

// Resize sends a window size message.
func (h *Harness[M]) Resize(width, height int) tea.Cmd {
	return h.Send(tea.WindowSizeMsg{Width: width, Height: height})
}

// View renders the component.
func (h *Harness[M]) View() string {
	return h.Model.View()
}

// Commands returns the commands collected so far.
func (h *Harness[M]) Commands() []tea.Cmd {
	return h.cmds
}

// ClearCommands forgets the collected commands.
func (h *Harness[M]) ClearCommands() {
	h.cmds = nil
}

// RunUntilIdle executes cmd and feeds resulting messages back, following the
// chain for at most limit messages. Batches are expanded depth first.
func (h *Harness[M]) RunUntilIdle(cmd tea.Cmd, limit int) int {
	queue := []tea.Cmd{cmd}
	delivered := 0
	for len(queue) > 0 && delivered < limit {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		msg := next()
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append([]tea.Cmd(batch), queue...)
			continue
		}
		if msg == nil {
			continue
		}
		delivered++
		if follow := h.Send(msg); follow != nil {
			queue = append(queue, follow)
		}
	}
	return delivered
}
