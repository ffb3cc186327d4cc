package scroll

import (
	"fmt"
	"math"
	"time"

	"github.com/llehouerou/timetable/internal/paging"
)

// State is the lifecycle state of a PagingPosition.
type State int

const (
	Unattached State = iota
	LayingOut
	Active
	Detached
)

func (s State) String() string {
	switch s {
	case Unattached:
		return "unattached"
	case LayingOut:
		return "laying-out"
	case Active:
		return "active"
	case Detached:
		return "detached"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Target is the paging value a position reads from and publishes to.
type Target interface {
	Value() paging.Value
	SetPage(page float64)
}

// PagingPosition maps a pixel offset to pages of a paging value.
type PagingPosition struct {
	pos    *Position
	target Target
	owner  *Controller

	state             State
	initialPage       float64
	cachedPage        *float64
	viewportDimension float64
	suppressBallistic bool
}

func newPagingPosition(target Target, physics Physics, initialPage float64) *PagingPosition {
	pp := &PagingPosition{
		target:      target,
		initialPage: initialPage,
	}
	pp.pos = NewPosition(physics, Hooks{
		AfterChange: pp.publish,
		Metrics:     pp.metrics,
	})
	return pp
}

// NewPagingPosition creates a standalone position publishing to target.
func NewPagingPosition(target Target, physics Physics, initialPage float64) *PagingPosition {
	return newPagingPosition(target, physics, initialPage)
}

// State returns the lifecycle state.
func (pp *PagingPosition) State() State { return pp.state }

// Pixels returns the raw offset.
func (pp *PagingPosition) Pixels() float64 { return pp.pos.Pixels() }

// ViewportDimension returns the last accepted viewport width.
func (pp *PagingPosition) ViewportDimension() float64 { return pp.viewportDimension }

// Direction returns the user scroll direction.
func (pp *PagingPosition) Direction() Direction { return pp.pos.Direction() }

// IsScrolling reports whether ballistic motion is running.
func (pp *PagingPosition) IsScrolling() bool { return pp.pos.IsScrolling() }

// AddListener registers fn to run after every pixel change.
func (pp *PagingPosition) AddListener(fn func()) (remove func()) {
	return pp.pos.AddListener(fn)
}

// Page returns the page derived from the pixel offset. Before the first
// layout it returns the page that layout will adopt.
func (pp *PagingPosition) Page() float64 {
	if pp.state != Active {
		return pp.pendingPage()
	}
	return pp.PixelsToPage(pp.pos.Pixels())
}

// PixelsToPage converts pixels using the current viewport and day count.
// It must only be called while Active.
func (pp *PagingPosition) PixelsToPage(pixels float64) float64 {
	return paging.PixelsToPage(pixels, pp.viewportDimension, pp.dayCount())
}

// PageToPixels converts page using the current viewport and day count.
// It must only be called while Active.
func (pp *PagingPosition) PageToPixels(page float64) float64 {
	return paging.PageToPixels(page, pp.viewportDimension, pp.dayCount())
}

// Attach moves an unattached position into layout.
func (pp *PagingPosition) Attach() {
	if pp.state == Unattached {
		pp.state = LayingOut
	}
}

// ApplyViewportDimension accepts a new viewport width. The first valid
// dimension adopts the initial page; later ones keep the current page. Both
// jump without animation and suppress the next ballistic start. It returns
// true when the offset was corrected.
func (pp *PagingPosition) ApplyViewportDimension(dimension float64) (corrected bool) {
	switch pp.state {
	case Unattached, Detached:
		return false
	}
	if dimension <= 0 {
		if pp.state == Active {
			page := pp.Page()
			pp.cachedPage = &page
			pp.pos.GoIdle()
		}
		pp.viewportDimension = 0
		pp.state = LayingOut
		return false
	}
	if pp.state == Active && dimension == pp.viewportDimension {
		return false
	}

	var page float64
	if pp.state == Active {
		page = pp.Page()
	} else {
		page = pp.pendingPage()
	}

	pp.viewportDimension = dimension
	pp.state = Active
	pp.cachedPage = nil
	pp.updateExtents()

	pixels := pp.PageToPixels(page)
	old, had := pp.pos.Pixels(), pp.pos.HasPixels()
	pp.pos.GoIdle()
	pp.pos.CorrectPixels(pixels)
	pp.suppressBallistic = true
	return !had || old != pixels
}

// ForcePage jumps to page. It never reports overscroll and never publishes;
// it mirrors external value changes onto the offset.
func (pp *PagingPosition) ForcePage(page float64) {
	if pp.state != Active {
		pp.initialPage = page
		pp.cachedPage = nil
		return
	}
	pp.updateExtents()
	pp.pos.ForcePixels(pp.PageToPixels(page))
}

// SetPixels applies a user-driven offset and publishes the resulting page.
func (pp *PagingPosition) SetPixels(pixels float64) (overscroll float64) {
	if pp.state != Active {
		return 0
	}
	return pp.pos.SetPixels(pixels)
}

// Drag moves by delta pixels as a user gesture would.
func (pp *PagingPosition) Drag(delta float64) (overscroll float64) {
	if pp.state != Active || !pp.target.Value().CanScroll() {
		return 0
	}
	pp.suppressBallistic = false
	return pp.pos.Drag(delta)
}

// Fling releases the drag at velocity pixels per second. Right after a
// dimension correction the release is treated as having no motion at all.
func (pp *PagingPosition) Fling(velocity float64) bool {
	if pp.state != Active {
		return false
	}
	if pp.suppressBallistic {
		pp.suppressBallistic = false
		pp.pos.GoIdle()
		return false
	}
	return pp.pos.GoBallistic(velocity)
}

// Stop ends any motion where it is, leaving the page fractional.
func (pp *PagingPosition) Stop() {
	pp.pos.GoIdle()
}

// Settle runs the physics without any velocity.
func (pp *PagingPosition) Settle() bool {
	return pp.Fling(0)
}

// AnimateToPage settles on the page the visible range picks for page,
// approaching it with the stiffness and dead zone of physics. It returns
// false when the range cannot scroll or the target is already reached.
func (pp *PagingPosition) AnimateToPage(page float64, physics PagingPhysics) bool {
	if pp.state != Active || !pp.target.Value().CanScroll() {
		return false
	}
	pp.suppressBallistic = false
	pp.updateExtents()
	minExtent, maxExtent := pp.pos.Extents()
	target := pp.target.Value().VisibleRange().TargetPage(page)
	targetPixels := clamp(pp.PageToPixels(target), minExtent, maxExtent)
	if math.Abs(targetPixels-pp.pos.Pixels()) <= physics.DeadZone {
		return false
	}
	pp.pos.Animate(&SettleSimulation{
		Start:     pp.pos.Pixels(),
		Target:    targetPixels,
		Stiffness: physics.Stiffness,
		DeadZone:  physics.DeadZone,
	})
	return true
}

// Tick advances ballistic motion by dt.
func (pp *PagingPosition) Tick(dt time.Duration) bool {
	if pp.state != Active {
		return false
	}
	return pp.pos.Tick(dt)
}

// Detach ends the lifecycle; later calls are ignored.
func (pp *PagingPosition) Detach() {
	pp.state = Detached
	pp.pos.Dispose()
}

func (pp *PagingPosition) pendingPage() float64 {
	if pp.cachedPage != nil {
		return *pp.cachedPage
	}
	return pp.initialPage
}

func (pp *PagingPosition) dayCount() int {
	return pp.target.Value().VisibleDayCount()
}

func (pp *PagingPosition) updateExtents() {
	r := pp.target.Value().VisibleRange()
	minExtent := pp.PageToPixels(r.ClampPage(paging.MinPage))
	maxExtent := pp.PageToPixels(r.ClampPage(paging.MaxPage))
	pp.pos.SetExtents(minExtent, maxExtent)
}

func (pp *PagingPosition) publish() {
	pp.target.SetPage(pp.Page())
}

func (pp *PagingPosition) metrics() Metrics {
	minExtent, maxExtent := pp.pos.Extents()
	return Metrics{
		Pixels:            pp.pos.Pixels(),
		MinExtent:         minExtent,
		MaxExtent:         maxExtent,
		ViewportDimension: pp.viewportDimension,
		Value:             pp.target.Value(),
	}
}
