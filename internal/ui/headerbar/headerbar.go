// Package headerbar renders the top line: the visible month and the range
// mode tabs.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/timetable/internal/ui/styles"
)

// Height is the fixed height of the header bar.
const Height = 1

// Modes lists the range modes in tab order.
var Modes = []string{"days", "week", "fixed"}

var modeLabels = map[string]string{
	"days":  "Days",
	"week":  "Week",
	"fixed": "Fixed",
}

// Render returns the header bar for the given width: title on the left,
// range tabs on the right. It returns "" when width is too small for both.
func Render(title, currentMode string, width int) string {
	t := styles.T()
	active := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	inactive := t.S().Muted
	sep := t.S().Separator.Render(" │ ")

	tabs := make([]string, 0, len(Modes))
	for _, mode := range Modes {
		style := inactive
		if mode == currentMode {
			style = active
		}
		tabs = append(tabs, style.Render(modeLabels[mode]))
	}
	right := strings.Join(tabs, sep)
	left := t.S().Header.Render(title)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return ""
	}
	return left + strings.Repeat(" ", gap) + right
}
