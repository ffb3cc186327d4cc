package app

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/timetable/internal/ui/headerbar"
	"github.com/llehouerou/timetable/internal/ui/layout"
	"github.com/llehouerou/timetable/internal/ui/popup"
	"github.com/llehouerou/timetable/internal/ui/render"
	"github.com/llehouerou/timetable/internal/ui/styles"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}
	s := styles.T().S()

	sections := make([]string, 0, 5)
	sections = append(sections, render.Fit(headerbar.Render(m.view.Title(), rangeKind(m.dates.Value().VisibleRange()), m.Width), m.Width))
	sections = append(sections, m.body())
	if m.ErrorMsg != "" {
		sections = append(sections, render.Fit(s.Error.Render(m.ErrorMsg), m.Width))
	}
	sections = append(sections, render.Fit(m.statusBar(), m.Width))

	m.help.Width = m.Width
	sections = append(sections, render.Fit(m.help.View(m.helpMap), m.Width))

	base := strings.Join(sections, "\n")
	if m.popup == nil {
		return base
	}
	size := popup.SizeLarge
	if m.popupType == PopupGoto {
		size = popup.SizeAuto
	}
	return popup.Compose(base, popup.RenderBordered(m.popup.View(), m.Width, m.Height, size), m.Width)
}

// body renders the timetable and pads it to the content height.
func (m Model) body() string {
	height := layout.ContentHeight(m.Height, m.contentOpts())
	if height <= 0 {
		return ""
	}
	lines := strings.Split(m.view.View(), "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, render.EmptyLine(m.Width))
	}
	return strings.Join(lines, "\n")
}

func (m Model) statusBar() string {
	s := styles.T().S()
	v := m.dates.Value()

	days := "day"
	if v.VisibleDayCount() != 1 {
		days = "days"
	}
	left := fmt.Sprintf("%s · %d %s", m.dates.FocusedDate().Format("Mon 2 Jan 2006"), v.VisibleDayCount(), days)

	right := ""
	if m.next != nil {
		right = fmt.Sprintf("next: %s %s",
			render.Sanitize(m.next.Title),
			humanize.RelTime(m.next.Start, m.clock(), "ago", "from now"))
	}
	return s.Status.Render(render.Row(left, right, m.Width))
}
