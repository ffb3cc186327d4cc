package multidayview

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/llehouerou/timetable/internal/paging"
	"github.com/llehouerou/timetable/internal/ui"
	"github.com/llehouerou/timetable/internal/ui/render"
	"github.com/llehouerou/timetable/internal/ui/styles"
)

// View renders the day header, its separator and the body rows. Columns
// are laid out on a strip starting at the first visible page and cut at the
// fractional offset of the current page.
func (m Model) View() string {
	width := m.Width()
	if width <= 0 || m.Height() < ui.HeaderHeight {
		return ""
	}
	v := m.dates.Value()
	count := v.VisibleDayCount()
	first := v.FirstVisiblePage()
	dayWidth := paging.DayWidth(float64(width), count)
	offset := int(math.Round((v.Page() - float64(first)) * dayWidth))
	body := m.BodyHeight()

	// bounds[k] is the strip column where day first+k starts.
	bounds := make([]int, count+2)
	for k := range bounds {
		bounds[k] = int(math.Round(float64(k) * dayWidth))
	}

	lines := make([]string, ui.HeaderHeight+body)
	var sb strings.Builder
	for row := range lines {
		sb.Reset()
		for k := 0; k <= count; k++ {
			sb.WriteString(m.cell(first+k, row, bounds[k+1]-bounds[k], body))
		}
		lines[row] = render.Fit(render.CutColumns(sb.String(), offset, offset+width), width)
	}

	if m.painter != nil {
		if ind, ok := m.painter.Paint(v, float64(width), float64(body)); ok {
			row := ui.HeaderHeight + min(int(ind.Y), body-1)
			left := max(int(math.Round(ind.Left))+ui.ColumnGap, 0)
			right := min(int(math.Round(ind.Right)), width)
			lines[row] = overlay(lines[row], left, right, width)
		}
	}
	return strings.Join(lines, "\n")
}

// Title returns the month label of the leftmost fully visible day.
func (m Model) Title() string {
	v := m.dates.Value()
	from := paging.DateForPage(int(math.Ceil(v.Page())))
	to := paging.DateForPage(int(math.Ceil(v.Page())) + v.VisibleDayCount() - 1)
	if from.Month() == to.Month() && from.Year() == to.Year() {
		return from.Format("January 2006")
	}
	if from.Year() == to.Year() {
		return fmt.Sprintf("%s – %s", from.Format("Jan"), to.Format("Jan 2006"))
	}
	return fmt.Sprintf("%s – %s", from.Format("Jan 2006"), to.Format("Jan 2006"))
}

// cell renders one row of day as a separator column followed by content.
func (m Model) cell(day, row, width, body int) string {
	if width <= 0 {
		return ""
	}
	s := styles.T().S()
	inner := width - ui.ColumnGap
	switch row {
	case 0:
		return s.Separator.Render("│") + m.header(paging.DateForPage(day), inner)
	case 1:
		return s.Separator.Render("┼" + strings.Repeat("─", inner))
	}

	i := row - ui.HeaderHeight
	content := m.layout.days[day]
	line := ""
	switch {
	case len(content) > body && i == body-1:
		line = s.Muted.Render(fmt.Sprintf("+%d more", len(content)-body+1))
	case i < len(content):
		line = content[i]
	}
	return s.Separator.Render("│") + render.Fit(line, inner)
}

func (m Model) header(date time.Time, width int) string {
	label := dayLabel(date, width)
	s := styles.T().S()
	switch {
	case sameDay(date, m.now):
		t := styles.T()
		return render.Fit(styles.ApplyGradient(label, t.Primary, t.Secondary), width)
	case date.Weekday() == time.Saturday || date.Weekday() == time.Sunday:
		return s.Weekend.Render(render.Pad(label, width))
	default:
		return s.Header.Render(render.Pad(label, width))
	}
}

func dayLabel(date time.Time, width int) string {
	switch {
	case width >= 10:
		return date.Format("Mon 2 Jan")
	case width >= 6:
		return date.Format("Mon 2")
	default:
		return render.Truncate(date.Format("2"), width)
	}
}

func sameDay(date, now time.Time) bool {
	return paging.PageForDate(date) == paging.PageForDate(now)
}

// overlay draws the now line over columns [left, right) of line.
func overlay(line string, left, right, width int) string {
	if right <= left {
		return line
	}
	return render.CutColumns(line, 0, left) +
		styles.T().S().Now.Render(strings.Repeat("─", right-left)) +
		render.CutColumns(line, right, width)
}
