package app

import (
	"github.com/llehouerou/timetable/internal/agenda"
	"github.com/llehouerou/timetable/internal/paging"
)

// loadAhead is the number of days loaded on each side of the visible range.
const loadAhead = 14

// eventCache holds the events of one contiguous window of days. It is shared
// by copies of the model and read by the day builder.
type eventCache struct {
	byDay  map[int][]agenda.Event
	first  int
	last   int
	loaded bool

	pending      bool
	pendingFirst int
	pendingLast  int
}

func (c *eventCache) forDay(day int) []agenda.Event {
	return c.byDay[day]
}

func (c *eventCache) covers(first, last int) bool {
	return c.loaded && first >= c.first && last <= c.last
}

func (c *eventCache) pendingCovers(first, last int) bool {
	return c.pending && first >= c.pendingFirst && last <= c.pendingLast
}

func (c *eventCache) store(first, last int, byDay map[int][]agenda.Event) {
	if byDay == nil {
		byDay = make(map[int][]agenda.Event)
	}
	c.byDay = byDay
	c.first, c.last = first, last
	c.loaded = true
}

// window returns the days to load around the visible range of v.
func window(v paging.Value) (first, last int) {
	first = max(v.FirstVisiblePage()-loadAhead, paging.MinPage)
	last = min(v.LastVisiblePage()+loadAhead, paging.MaxPage)
	return first, last
}
