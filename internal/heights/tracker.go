// Package heights tracks the measured height of each rendered day and
// derives the shrink-wrapped height of a multi-day view.
package heights

import (
	"fmt"
	"math"

	"github.com/llehouerou/timetable/internal/datecontroller"
	"github.com/llehouerou/timetable/internal/paging"
)

// PruneMargin is the number of days kept on either side of the visible
// window.
const PruneMargin = 5

// Tracker caches day heights keyed by page index. A missing entry counts as
// height zero.
type Tracker struct {
	heights   map[int]float64
	scheduler Scheduler
}

// NewTracker returns an empty tracker. scheduler may be nil.
func NewTracker(scheduler Scheduler) *Tracker {
	return &Tracker{
		heights:   make(map[int]float64),
		scheduler: scheduler,
	}
}

// Report records the measured height of day. A changed height requests a
// layout pass and returns true.
func (t *Tracker) Report(day int, height float64) bool {
	if old, ok := t.heights[day]; ok && old == height {
		return false
	}
	t.heights[day] = height
	if t.scheduler != nil {
		t.scheduler.MarkNeedsLayout()
	}
	return true
}

// Height returns the recorded height of day.
func (t *Tracker) Height(day int) (float64, bool) {
	h, ok := t.heights[day]
	return h, ok
}

// Len returns the number of cached entries.
func (t *Tracker) Len() int {
	return len(t.heights)
}

// Prune drops entries farther than PruneMargin days from the window of v.
func (t *Tracker) Prune(v paging.Value) {
	first := v.FirstVisiblePage() - PruneMargin
	last := v.FirstVisiblePage() + v.VisibleDayCount() + PruneMargin
	for day := range t.heights {
		if day < first || day > last {
			delete(t.heights, day)
		}
	}
}

// Query returns the tallest height across the visible window, linearly
// interpolated between the windows starting at floor(page) and ceil(page).
func (t *Tracker) Query(v paging.Value) float64 {
	count := v.VisibleDayCount()
	if count < 1 {
		panic(fmt.Sprintf("heights: query needs a visible day, got %d", count))
	}
	page := v.Page()
	floorPage := math.Floor(page)
	ceilPage := math.Ceil(page)

	lower := t.maxHeight(int(floorPage), count)
	if floorPage == ceilPage {
		return lower
	}
	upper := t.maxHeight(int(ceilPage), count)
	progress := page - floorPage
	return lower + (upper-lower)*progress
}

// Bind prunes the tracker on every change of dates and returns a function
// removing the subscription.
func (t *Tracker) Bind(dates *datecontroller.Controller) (unbind func()) {
	t.Prune(dates.Value())
	return dates.Subscribe(t.Prune)
}

func (t *Tracker) maxHeight(start, count int) float64 {
	var highest float64
	for day := start; day < start+count; day++ {
		highest = max(highest, t.heights[day])
	}
	return highest
}
