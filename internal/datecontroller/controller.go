// Package datecontroller holds the paging value shared by multi-day views
// and broadcasts its changes.
package datecontroller

import (
	"time"

	"github.com/llehouerou/timetable/internal/paging"
)

// Listener receives the new value after every change.
type Listener func(paging.Value)

type subscriber struct {
	id int
	fn Listener
}

// Controller is an observable paging value. It is not safe for concurrent
// use; it belongs to the UI goroutine.
type Controller struct {
	value  paging.Value
	subs   []subscriber
	nextID int
}

// New creates a controller starting at value.
func New(value paging.Value) *Controller {
	return &Controller{value: value}
}

// NewAt creates a controller showing date with the given range.
func NewAt(date time.Time, r paging.VisibleRange) *Controller {
	page := r.TargetPage(float64(paging.PageForDate(date)))
	return New(paging.NewValue(page, r))
}

// Value returns the current value.
func (c *Controller) Value() paging.Value {
	return c.value
}

// SetValue replaces the current value and notifies listeners if it changed.
func (c *Controller) SetValue(v paging.Value) {
	if v.Equal(c.value) {
		return
	}
	c.value = v
	c.notify()
}

// SetPage moves to page, keeping the visible range.
func (c *Controller) SetPage(page float64) {
	c.SetValue(c.value.WithPage(page))
}

// SetVisibleRange switches the range and settles the page on its target.
func (c *Controller) SetVisibleRange(r paging.VisibleRange) {
	v := c.value.WithRange(r)
	c.SetValue(v.WithPage(r.TargetPage(v.Page())))
}

// Subscribe registers fn and returns a function removing it. Listeners run
// synchronously in subscription order.
func (c *Controller) Subscribe(fn Listener) (unsubscribe func()) {
	c.nextID++
	id := c.nextID
	c.subs = append(c.subs, subscriber{id: id, fn: fn})
	return func() { c.remove(id) }
}

// ListenerCount returns the number of registered listeners.
func (c *Controller) ListenerCount() int {
	return len(c.subs)
}

func (c *Controller) remove(id int) {
	for i, s := range c.subs {
		if s.id == id {
			// Copy so an in-flight notify loop keeps its snapshot.
			subs := make([]subscriber, 0, len(c.subs)-1)
			subs = append(subs, c.subs[:i]...)
			c.subs = append(subs, c.subs[i+1:]...)
			return
		}
	}
}

func (c *Controller) notify() {
	snapshot := c.subs
	for _, s := range snapshot {
		if !c.subscribed(s.id) {
			continue
		}
		s.fn(c.value)
	}
}

func (c *Controller) subscribed(id int) bool {
	for _, s := range c.subs {
		if s.id == id {
			return true
		}
	}
	return false
}
