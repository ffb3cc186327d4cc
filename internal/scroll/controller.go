package scroll

import (
	"github.com/llehouerou/timetable/internal/datecontroller"
	"github.com/llehouerou/timetable/internal/paging"
)

// Controller binds one date controller to at most one PagingPosition.
//
// Value changes flow in two directions: external changes are forced onto
// the position, user changes of the position are published to the date
// controller. A publish never loops back into a forced adoption.
type Controller struct {
	dates       *datecontroller.Controller
	physics     Physics
	position    *PagingPosition
	unsubscribe func()
	publishing  bool
	disposed    bool
}

// NewController subscribes to dates. Call Dispose to release it.
func NewController(dates *datecontroller.Controller, physics Physics) *Controller {
	c := &Controller{dates: dates, physics: physics}
	c.unsubscribe = dates.Subscribe(c.onValueChanged)
	return c
}

// Dates returns the bound date controller.
func (c *Controller) Dates() *datecontroller.Controller { return c.dates }

// Value implements Target.
func (c *Controller) Value() paging.Value { return c.dates.Value() }

// SetPage implements Target; it publishes a page produced by the position.
func (c *Controller) SetPage(page float64) {
	c.publishing = true
	defer func() { c.publishing = false }()
	c.dates.SetPage(page)
}

// CreatePosition returns a position owned by c, seeded with the current
// page of the date controller.
func (c *Controller) CreatePosition() *PagingPosition {
	c.mustBeLive()
	pp := newPagingPosition(c, c.physics, c.dates.Value().Page())
	pp.owner = c
	return pp
}

// Attach binds pp, which must come from CreatePosition. Attaching a second
// position panics.
func (c *Controller) Attach(pp *PagingPosition) {
	c.mustBeLive()
	if pp.owner != c {
		panic("scroll: attaching a position created by another controller")
	}
	if c.position != nil && c.position != pp {
		panic("scroll: controller already has a position attached")
	}
	c.position = pp
	pp.Attach()
}

// Detach releases pp and ends its lifecycle.
func (c *Controller) Detach(pp *PagingPosition) {
	if c.position != pp {
		panic("scroll: detaching a position that is not attached")
	}
	pp.Detach()
	c.position = nil
}

// HasClients reports whether a position is attached.
func (c *Controller) HasClients() bool { return c.position != nil }

// Position returns the attached position, or nil.
func (c *Controller) Position() *PagingPosition { return c.position }

// Page returns the page of the attached position, falling back to the date
// controller while nothing is laid out.
func (c *Controller) Page() float64 {
	if c.position == nil || c.position.State() != Active {
		return c.dates.Value().Page()
	}
	return c.position.Page()
}

// Dispose unsubscribes from the date controller and detaches the position.
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.unsubscribe()
	if c.position != nil {
		c.position.Detach()
		c.position = nil
	}
}

func (c *Controller) onValueChanged(v paging.Value) {
	if c.publishing || c.position == nil {
		return
	}
	c.position.ForcePage(v.Page())
}

func (c *Controller) mustBeLive() {
	if c.disposed {
		panic("scroll: controller used after Dispose")
	}
}
