package multidayview

import (
	"time"

	"github.com/llehouerou/timetable/internal/agenda"
	"github.com/llehouerou/timetable/internal/paging"
	"github.com/llehouerou/timetable/internal/ui/render"
	"github.com/llehouerou/timetable/internal/ui/styles"
)

// DayBuilder renders the content of one day as lines of at most width
// cells. The number of lines is the measured height of the day.
type DayBuilder func(date time.Time, width int) []string

// EventSource returns the events of a day, keyed by page.
type EventSource func(day int) []agenda.Event

// AgendaBuilder renders one line per event: all-day events first, then
// timed events with their start time. Events continuing from an earlier day
// show "…" instead of a time.
func AgendaBuilder(events EventSource) DayBuilder {
	return func(date time.Time, width int) []string {
		day := paging.PageForDate(date)
		list := events(day)
		if len(list) == 0 {
			return nil
		}

		t := styles.T()
		lines := make([]string, 0, len(list))
		for _, e := range list {
			if e.AllDay {
				lines = append(lines, t.EventStyle(e.Color).Render(render.TruncateAndPad(render.Sanitize(e.Title), width)))
			}
		}
		for _, e := range list {
			if e.AllDay {
				continue
			}
			label := timeLabel(e, day)
			title := render.Sanitize(e.Title)
			if width < timeLabelWidth+2 {
				lines = append(lines, t.EventStyle(e.Color).Render(render.TruncateAndPad(title, width)))
				continue
			}
			lines = append(lines,
				t.S().EventTime.Render(label)+
					t.EventStyle(e.Color).Render(" "+render.TruncateAndPad(title, width-timeLabelWidth-1)))
		}
		return lines
	}
}

// timeLabelWidth is the width of "15:04".
const timeLabelWidth = 5

func timeLabel(e agenda.Event, day int) string {
	if paging.PageForDate(e.Start) < day {
		return "  …  "
	}
	return e.Start.Format("15:04")
}
