package nowindicator

import (
	"sync"
	"time"

	"github.com/llehouerou/timetable/internal/paging"
)

// DefaultResolution is the tick interval when none is configured.
const DefaultResolution = time.Minute

// Options configure a Painter. Zero values select defaults.
type Options struct {
	Clock      func() time.Time
	Resolution time.Duration
	AfterFunc  AfterFunc
}

// Painter computes the indicator and keeps subscribers informed about the
// passing time. The refresh timer only runs while somebody subscribes.
type Painter struct {
	mu         sync.Mutex
	clock      func() time.Time
	resolution time.Duration
	task       *Task
	subs       map[*Subscription]struct{}
	closed     bool
}

// NewPainter creates a painter without subscribers.
func NewPainter(opts Options) *Painter {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Resolution <= 0 {
		opts.Resolution = DefaultResolution
	}
	return &Painter{
		clock:      opts.Clock,
		resolution: opts.Resolution,
		task:       NewTask(opts.AfterFunc),
		subs:       make(map[*Subscription]struct{}),
	}
}

// Subscribe registers a new observer. The first observer arms the timer.
func (p *Painter) Subscribe() *Subscription {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := newSubscription()
	if p.closed {
		s.close()
		return s
	}
	p.subs[s] = struct{}{}
	if len(p.subs) == 1 {
		p.armLocked()
	}
	return s
}

// Unsubscribe removes s. Removing the last observer cancels the timer.
func (p *Painter) Unsubscribe(s *Subscription) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.subs[s]; !ok {
		return
	}
	delete(p.subs, s)
	s.close()
	if len(p.subs) == 0 {
		p.task.Cancel()
	}
}

// Observers returns the number of subscribers.
func (p *Painter) Observers() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.subs)
}

// TaskState exposes the refresh timer state.
func (p *Painter) TaskState() TaskState {
	return p.task.State()
}

// Now returns the painter's clock reading.
func (p *Painter) Now() time.Time {
	return p.clock()
}

// Paint returns the indicator for v in a width x height viewport and re-arms
// the refresh timer so exactly one tick is pending.
func (p *Painter) Paint(v paging.Value, width, height float64) (Indicator, bool) {
	p.mu.Lock()
	if !p.closed && len(p.subs) > 0 {
		p.armLocked()
	}
	p.mu.Unlock()
	return Geometry(v, p.clock(), width, height)
}

// Close cancels the timer and ends all subscriptions.
func (p *Painter) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	p.task.Cancel()
	for s := range p.subs {
		s.close()
	}
	clear(p.subs)
}

// NextDelay returns the time from now until the next resolution boundary.
func (p *Painter) NextDelay(now time.Time) time.Duration {
	next := now.Truncate(p.resolution).Add(p.resolution)
	return next.Sub(now)
}

func (p *Painter) armLocked() {
	p.task.Schedule(p.NextDelay(p.clock()), p.fire)
}

func (p *Painter) fire() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || len(p.subs) == 0 {
		return
	}
	now := p.clock()
	for s := range p.subs {
		s.send(now)
	}
	p.armLocked()
}
