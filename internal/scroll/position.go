// Package scroll implements the horizontal paging scroll of a multi-day view.
//
// Position is the generic scroll capability: it owns a pixel offset, reports
// overscroll and runs ballistic simulations. PagingPosition builds the
// page-based state machine on top of it, and Controller binds a single
// PagingPosition to a date controller.
package scroll

import "time"

// Direction is the user scroll direction of the latest pixel change.
type Direction int

const (
	Idle Direction = iota
	Forward
	Reverse
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	default:
		return "idle"
	}
}

// Hooks let the owner of a Position observe accepted user changes.
type Hooks struct {
	// AfterChange runs after pixels changed through SetPixels, before
	// listeners are notified.
	AfterChange func()
	// Metrics returns the snapshot given to the physics policy.
	Metrics func() Metrics
}

type listener struct {
	id int
	fn func()
}

// Position owns a pixel offset bounded by scroll extents.
type Position struct {
	pixels    float64
	hasPixels bool
	minExtent float64
	maxExtent float64

	direction Direction
	physics   Physics
	hooks     Hooks

	sim     Simulation
	elapsed time.Duration

	listeners []listener
	nextID    int
}

// NewPosition creates a position without pixels.
func NewPosition(physics Physics, hooks Hooks) *Position {
	return &Position{physics: physics, hooks: hooks}
}

// Pixels returns the current offset.
func (p *Position) Pixels() float64 { return p.pixels }

// HasPixels reports whether an offset has been established.
func (p *Position) HasPixels() bool { return p.hasPixels }

// Direction returns the direction of the latest user change.
func (p *Position) Direction() Direction { return p.direction }

// Extents returns the scroll bounds.
func (p *Position) Extents() (minExtent, maxExtent float64) {
	return p.minExtent, p.maxExtent
}

// SetExtents updates the scroll bounds. The offset is not moved.
func (p *Position) SetExtents(minExtent, maxExtent float64) {
	p.minExtent = minExtent
	p.maxExtent = max(minExtent, maxExtent)
}

// IsScrolling reports whether a ballistic simulation is running.
func (p *Position) IsScrolling() bool { return p.sim != nil }

// AddListener registers fn to run after every offset change and returns a
// function removing it.
func (p *Position) AddListener(fn func()) (remove func()) {
	p.nextID++
	id := p.nextID
	p.listeners = append(p.listeners, listener{id: id, fn: fn})
	return func() {
		for i, l := range p.listeners {
			if l.id == id {
				p.listeners = append(p.listeners[:i:i], p.listeners[i+1:]...)
				return
			}
		}
	}
}

// SetPixels applies a user-driven offset. The value is clamped to the
// extents and the clamped-away part is returned as overscroll. An unchanged
// offset notifies nobody and reports zero overscroll.
func (p *Position) SetPixels(value float64) (overscroll float64) {
	if p.hasPixels && value == p.pixels {
		return 0
	}
	clamped := clamp(value, p.minExtent, p.maxExtent)
	overscroll = value - clamped
	if p.hasPixels && clamped == p.pixels {
		return overscroll
	}

	switch {
	case !p.hasPixels:
	case clamped > p.pixels:
		p.direction = Forward
	default:
		p.direction = Reverse
	}
	p.pixels = clamped
	p.hasPixels = true

	if p.hooks.AfterChange != nil {
		p.hooks.AfterChange()
	}
	p.notify()
	return overscroll
}

// ForcePixels jumps to value without direction updates, overscroll
// reporting or the AfterChange hook. Listeners fire only if it changed.
func (p *Position) ForcePixels(value float64) {
	if p.hasPixels && value == p.pixels {
		return
	}
	p.stopSimulation()
	p.pixels = value
	p.hasPixels = true
	p.notify()
}

// CorrectPixels adopts value silently; used during layout.
func (p *Position) CorrectPixels(value float64) {
	p.pixels = value
	p.hasPixels = true
}

// Drag moves the offset by delta pixels, cancelling any ballistic motion.
func (p *Position) Drag(delta float64) (overscroll float64) {
	p.stopSimulation()
	return p.SetPixels(p.pixels + delta)
}

// GoBallistic starts the physics simulation for a release at velocity.
// It returns false when the position went idle instead.
func (p *Position) GoBallistic(velocity float64) bool {
	p.stopSimulation()
	if p.physics == nil || p.hooks.Metrics == nil {
		p.GoIdle()
		return false
	}
	sim := p.physics.CreateBallistic(p.hooks.Metrics(), velocity)
	if sim == nil {
		p.GoIdle()
		return false
	}
	p.sim = sim
	return true
}

// Animate runs sim from now on, replacing any motion. Unlike GoBallistic it
// does not consult the physics.
func (p *Position) Animate(sim Simulation) {
	p.stopSimulation()
	p.sim = sim
}

// Tick advances the running simulation by dt and reports whether it is
// still running afterwards.
func (p *Position) Tick(dt time.Duration) bool {
	if p.sim == nil {
		return false
	}
	p.elapsed += dt
	sim, elapsed := p.sim, p.elapsed
	overscroll := p.SetPixels(sim.X(elapsed))
	if p.sim != sim {
		// A hook or listener replaced or stopped the simulation.
		return p.sim != nil
	}
	if overscroll != 0 || sim.IsDone(elapsed) {
		p.GoIdle()
		return false
	}
	return true
}

// GoIdle stops any motion and resets the direction.
func (p *Position) GoIdle() {
	p.stopSimulation()
	p.direction = Idle
}

// Dispose drops all listeners and motion.
func (p *Position) Dispose() {
	p.stopSimulation()
	p.listeners = nil
}

func (p *Position) stopSimulation() {
	p.sim = nil
	p.elapsed = 0
}

func (p *Position) notify() {
	for _, l := range append([]listener(nil), p.listeners...) {
		l.fn()
	}
}
