package scroll

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/timetable/internal/datecontroller"
	"github.com/llehouerou/timetable/internal/paging"
)

func TestController_ExternalChangeForcesPosition(t *testing.T) {
	f := newFixture(t, 100, paging.NewDays(3), 300)
	notified := 0
	f.position.AddListener(func() { notified++ })

	f.dates.SetPage(250.5)

	assert.Equal(t, 1, notified)
	assert.InDelta(t, 250.5, f.position.Page(), paging.Tolerance)
	assert.InDelta(t, 250.5, f.controller.Page(), paging.Tolerance)
	assert.Equal(t, Idle, f.position.Direction())
}

func TestController_PublishDoesNotLoopBack(t *testing.T) {
	f := newFixture(t, 100, paging.NewDays(1), 300)
	forced := 0
	f.position.AddListener(func() { forced++ })
	published := 0
	f.dates.Subscribe(func(paging.Value) { published++ })

	f.position.Drag(75)

	// One listener call from the drag itself, none from a forced adoption.
	assert.Equal(t, 1, forced)
	assert.Equal(t, 1, published)
	assert.InDelta(t, 100.25, f.dates.Value().Page(), 1e-9)
}

func TestController_VisibleDayCountChangeKeepsPage(t *testing.T) {
	f := newFixture(t, 40.5, paging.NewDays(1), 120)
	f.dates.SetValue(f.dates.Value().WithRange(paging.NewDays(4)))

	assert.InDelta(t, 40.5, f.position.Page(), 1e-9)
	assert.InDelta(t, paging.PageToPixels(40.5, 120, 4), f.position.Pixels(), 1e-6)
}

func TestController_PageFallsBackBeforeLayout(t *testing.T) {
	f := newFixture(t, 8, paging.NewDays(1), 0)
	assert.InDelta(t, 8.0, f.controller.Page(), 0)
	f.dates.SetPage(9)
	assert.InDelta(t, 9.0, f.controller.Page(), 0)
}

func TestController_SecondAttachPanics(t *testing.T) {
	f := newFixture(t, 0, paging.NewDays(1), 100)
	other := f.controller.CreatePosition()
	assert.Panics(t, func() { f.controller.Attach(other) })

	// Re-attaching the same position is harmless.
	assert.NotPanics(t, func() { f.controller.Attach(f.position) })
}

func TestController_ForeignPositionPanics(t *testing.T) {
	dates := datecontroller.New(paging.NewValue(0, paging.NewDays(1)))
	a := NewController(dates, nil)
	b := NewController(dates, nil)
	defer a.Dispose()
	defer b.Dispose()

	assert.Panics(t, func() { a.Attach(b.CreatePosition()) })
	assert.Panics(t, func() { a.Attach(NewPagingPosition(a, nil, 0)) })
}

func TestController_Dispose(t *testing.T) {
	dates := datecontroller.New(paging.NewValue(0, paging.NewDays(1)))
	c := NewController(dates, nil)
	pp := c.CreatePosition()
	c.Attach(pp)
	pp.ApplyViewportDimension(100)
	assert.Equal(t, 1, dates.ListenerCount())

	c.Dispose()
	c.Dispose()

	assert.Equal(t, 0, dates.ListenerCount())
	assert.Equal(t, Detached, pp.State())
	assert.False(t, c.HasClients())
	assert.Panics(t, func() { c.CreatePosition() })

	dates.SetPage(5)
	assert.InDelta(t, paging.PageToPixels(0, 100, 1), pp.Pixels(), 0)
}

func TestController_DetachUnknownPanics(t *testing.T) {
	f := newFixture(t, 0, paging.NewDays(1), 100)
	assert.Panics(t, func() { f.controller.Detach(f.controller.CreatePosition()) })
}
