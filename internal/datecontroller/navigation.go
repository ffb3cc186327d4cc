package datecontroller

import (
	"time"

	"github.com/llehouerou/timetable/internal/paging"
)

// JumpToDate moves so that date is the settle target of the range.
func (c *Controller) JumpToDate(date time.Time) {
	r := c.value.VisibleRange()
	c.SetPage(r.TargetPage(float64(paging.PageForDate(date))))
}

// Today jumps to the day of now.
func (c *Controller) Today(now time.Time) {
	c.JumpToDate(now)
}

// Next moves forward by one screen of days.
func (c *Controller) Next() {
	c.moveBy(c.VisibleDayCount())
}

// Previous moves back by one screen of days.
func (c *Controller) Previous() {
	c.moveBy(-c.VisibleDayCount())
}

func (c *Controller) moveBy(days int) {
	if !c.CanScroll() {
		return
	}
	r := c.value.VisibleRange()
	c.SetPage(r.TargetPage(c.value.Page() + float64(days)))
}

// FocusedDate returns the leftmost visible day.
func (c *Controller) FocusedDate() time.Time {
	return paging.DateForFractionalPage(c.value.Page())
}
