// Package helpbindings provides a scrollable popup listing the key bindings.
package helpbindings

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/timetable/internal/keymap"
	"github.com/llehouerou/timetable/internal/ui"
	"github.com/llehouerou/timetable/internal/ui/action"
	"github.com/llehouerou/timetable/internal/ui/popup"
	"github.com/llehouerou/timetable/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

var contextLabels = map[string]string{
	"global":    "Global",
	"timetable": "Timetable",
}

// chrome is the title, blank lines and footer around the list.
const chrome = 4

// Model holds the state for the help popup.
type Model struct {
	ui.Base
	lines        []string
	scrollOffset int
}

// New creates a help popup listing every context.
func New() Model {
	return Model{lines: buildLines(keymap.Contexts)}
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, action.Cmd("helpbindings", Close{})
	case "j", "down":
		m.scrollOffset = min(m.scrollOffset+1, m.maxScroll())
	case "k", "up":
		m.scrollOffset = max(m.scrollOffset-1, 0)
	}
	return m, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	start := min(m.scrollOffset, len(m.lines))
	end := min(start+m.visibleHeight(), len(m.lines))

	s := styles.T().S()
	footer := "?/esc close"
	if m.maxScroll() > 0 {
		footer = "j/k scroll · " + footer
	}
	return s.Title.Render("Help") + "\n\n" +
		strings.Join(m.lines[start:end], "\n") + "\n\n" +
		s.Subtle.Render(footer)
}

func (m Model) visibleHeight() int {
	return max(m.Height()-chrome, 3)
}

func (m Model) maxScroll() int {
	return max(len(m.lines)-m.visibleHeight(), 0)
}

func buildLines(contexts []string) []string {
	t := styles.T()
	keyStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	headerStyle := lipgloss.NewStyle().Foreground(t.Secondary).Bold(true)

	keyWidth := 0
	for _, b := range keymap.All {
		keyWidth = max(keyWidth, len(strings.Join(b.Keys, ", ")))
	}

	var lines []string
	for i, ctx := range contexts {
		bindings := keymap.ByContext(ctx)
		if len(bindings) == 0 {
			continue
		}
		if i > 0 {
			lines = append(lines, "")
		}
		label := contextLabels[ctx]
		if label == "" {
			label = ctx
		}
		lines = append(lines,
			headerStyle.Render(label),
			t.S().Separator.Render(strings.Repeat("─", keyWidth+20)))
		for _, b := range bindings {
			keys := strings.Join(b.Keys, ", ")
			lines = append(lines,
				keyStyle.Render(keys+strings.Repeat(" ", keyWidth-len(keys)))+"  "+t.S().Base.Render(b.Description))
		}
	}
	return lines
}
