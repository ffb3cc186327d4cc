package datecontroller

import "github.com/llehouerou/timetable/internal/paging"

// CanScroll reports whether the current range allows scrolling.
func (c *Controller) CanScroll() bool {
	return c.value.CanScroll()
}

// VisibleDayCount returns the current number of side-by-side days.
func (c *Controller) VisibleDayCount() int {
	return c.value.VisibleDayCount()
}

// OnCanScroll calls fn whenever CanScroll changes.
func (c *Controller) OnCanScroll(fn func(bool)) (unsubscribe func()) {
	return subscribeProjection(c, paging.Value.CanScroll, fn)
}

// OnVisibleDayCount calls fn whenever VisibleDayCount changes.
func (c *Controller) OnVisibleDayCount(fn func(int)) (unsubscribe func()) {
	return subscribeProjection(c, paging.Value.VisibleDayCount, fn)
}

func subscribeProjection[T comparable](c *Controller, project func(paging.Value) T, fn func(T)) func() {
	last := project(c.value)
	return c.Subscribe(func(v paging.Value) {
		next := project(v)
		if next == last {
			return
		}
		last = next
		fn(next)
	})
}
