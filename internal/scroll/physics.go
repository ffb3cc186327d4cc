package scroll

import (
	"math"
	"time"

	"github.com/llehouerou/timetable/internal/paging"
)

// Simulation describes ballistic motion over elapsed time.
type Simulation interface {
	X(t time.Duration) float64
	Dx(t time.Duration) float64
	IsDone(t time.Duration) bool
}

// Metrics is the position snapshot handed to a Physics policy.
type Metrics struct {
	Pixels            float64
	MinExtent         float64
	MaxExtent         float64
	ViewportDimension float64
	Value             paging.Value
}

// Physics decides what happens when the user lets go of a scroll.
type Physics interface {
	// CreateBallistic returns the motion for a release at velocity
	// (pixels per second), or nil when the position should go idle.
	CreateBallistic(m Metrics, velocity float64) Simulation
}

// PagingPhysics settles on the page chosen by the visible range after
// projecting the fling with Drag.
type PagingPhysics struct {
	Drag      float64 // 1/s, velocity decay used to predict the resting point
	Stiffness float64 // 1/s, approach rate toward the target
	DeadZone  float64 // pixels, snap-to-target distance
}

// DefaultPagingPhysics returns the physics used when nothing is configured.
func DefaultPagingPhysics() PagingPhysics {
	return PagingPhysics{Drag: 4, Stiffness: 12, DeadZone: 0.05}
}

func (p PagingPhysics) CreateBallistic(m Metrics, velocity float64) Simulation {
	if m.ViewportDimension <= 0 {
		return nil
	}
	count := m.Value.VisibleDayCount()
	projected := m.Pixels
	if p.Drag > 0 {
		projected += velocity / p.Drag
	}
	projected = clamp(projected, m.MinExtent, m.MaxExtent)

	page := paging.PixelsToPage(projected, m.ViewportDimension, count)
	target := m.Value.VisibleRange().TargetPage(page)
	targetPixels := clamp(paging.PageToPixels(target, m.ViewportDimension, count), m.MinExtent, m.MaxExtent)

	if math.Abs(targetPixels-m.Pixels) <= p.DeadZone {
		return nil
	}
	return &SettleSimulation{
		Start:     m.Pixels,
		Target:    targetPixels,
		Stiffness: p.Stiffness,
		DeadZone:  p.DeadZone,
	}
}

// FreePhysics lets flings coast with friction and stops anywhere.
type FreePhysics struct {
	Drag        float64 // 1/s
	MinVelocity float64 // pixels per second below which motion stops
}

func (p FreePhysics) CreateBallistic(m Metrics, velocity float64) Simulation {
	if math.Abs(velocity) <= p.MinVelocity || p.Drag <= 0 {
		return nil
	}
	return &FrictionSimulation{
		Start:       m.Pixels,
		Velocity:    velocity,
		Drag:        p.Drag,
		MinVelocity: p.MinVelocity,
	}
}

// SettleSimulation approaches Target exponentially.
type SettleSimulation struct {
	Start     float64
	Target    float64
	Stiffness float64
	DeadZone  float64
}

func (s *SettleSimulation) X(t time.Duration) float64 {
	x := s.Target + (s.Start-s.Target)*math.Exp(-s.Stiffness*t.Seconds())
	if math.Abs(x-s.Target) <= s.DeadZone {
		return s.Target
	}
	return x
}

func (s *SettleSimulation) Dx(t time.Duration) float64 {
	return -s.Stiffness * (s.Start - s.Target) * math.Exp(-s.Stiffness*t.Seconds())
}

func (s *SettleSimulation) IsDone(t time.Duration) bool {
	return s.X(t) == s.Target
}

// FrictionSimulation decelerates an initial velocity.
type FrictionSimulation struct {
	Start       float64
	Velocity    float64
	Drag        float64
	MinVelocity float64
}

func (s *FrictionSimulation) X(t time.Duration) float64 {
	return s.Start + s.Velocity/s.Drag*(1-math.Exp(-s.Drag*t.Seconds()))
}

func (s *FrictionSimulation) Dx(t time.Duration) float64 {
	return s.Velocity * math.Exp(-s.Drag*t.Seconds())
}

func (s *FrictionSimulation) IsDone(t time.Duration) bool {
	return math.Abs(s.Dx(t)) <= s.MinVelocity
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
