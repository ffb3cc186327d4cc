// Package nowindicator places and refreshes the "current time" marker of a
// multi-day view.
package nowindicator

import (
	"time"

	"github.com/llehouerou/timetable/internal/paging"
)

// Indicator is the marker position in viewport coordinates.
type Indicator struct {
	Day   int     // page index of today
	Left  float64 // left edge of today's column, may be negative
	Right float64 // right edge of today's column, may exceed the width
	Y     float64 // vertical offset of now within the day
}

// Geometry locates now in a viewport of width x height showing v. It returns
// false when today's column lies entirely outside the viewport.
func Geometry(v paging.Value, now time.Time, width, height float64) (Indicator, bool) {
	if width <= 0 || height <= 0 {
		return Indicator{}, false
	}
	day := paging.PageForDate(now)
	dayWidth := paging.DayWidth(width, v.VisibleDayCount())
	left := paging.PageDeltaToPixelDelta(float64(day)-v.Page(), width, v.VisibleDayCount())
	right := left + dayWidth
	if right <= 0 || left >= width {
		return Indicator{}, false
	}

	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	progress := float64(now.Sub(midnight)) / float64(24*time.Hour)
	return Indicator{
		Day:   day,
		Left:  left,
		Right: right,
		Y:     progress * height,
	}, true
}
