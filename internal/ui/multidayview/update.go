package multidayview

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/timetable/internal/keymap"
	"github.com/llehouerou/timetable/internal/paging"
	"github.com/llehouerou/timetable/internal/ui/layout"
)

// maxFrameStep caps the simulated time of one frame after a stall.
const maxFrameStep = 100 * time.Millisecond

type animation struct {
	running    bool
	generation int // frames of older animations are dropped
	last       time.Time
	target     float64 // page requested by keys, valid while keyed
	keyed      bool
}

type dragState struct {
	active   bool
	lastX    int
	lastAt   time.Time
	velocity float64 // columns per second, positive moves forward
}

// Update handles input and animation messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	case tea.MouseMsg:
		cmd = m.handleMouse(msg)
	case frameMsg:
		cmd = m.handleFrame(msg)
	case wheelSettleMsg:
		if msg.generation == m.wheel && m.position.Settle() {
			cmd = m.startAnimation(false, 0)
		}
	case NowMsg:
		m.now = msg.At
		cmd = waitForNow(m.sub)
	}
	m.measure()
	return m, cmd
}

// HandleAction runs a timetable key action and lays out the days it brings
// into view. It returns false for actions the view does not own.
func (m *Model) HandleAction(a keymap.Action) (tea.Cmd, bool) {
	cmd, ok := m.runAction(a)
	if ok {
		m.measure()
	}
	return cmd, ok
}

func (m *Model) runAction(a keymap.Action) (tea.Cmd, bool) {
	v := m.dates.Value()
	switch a {
	case keymap.ActionScrollLeft:
		return m.animateBy(-1), true
	case keymap.ActionScrollRight:
		return m.animateBy(1), true
	case keymap.ActionPrevPage:
		return m.animateBy(-float64(v.VisibleDayCount())), true
	case keymap.ActionNextPage:
		return m.animateBy(float64(v.VisibleDayCount())), true
	case keymap.ActionToday:
		m.stop()
		m.dates.Today(m.clock())
		return nil, true
	case keymap.ActionMoreDays:
		m.resizeRange(1)
		return nil, true
	case keymap.ActionFewerDays:
		m.resizeRange(-1)
		return nil, true
	case keymap.ActionCycleRange:
		m.cycleRange()
		return nil, true
	}
	return nil, false
}

// JumpTo shows date without animation.
func (m *Model) JumpTo(date time.Time) {
	m.stop()
	m.dates.JumpToDate(date)
	m.measure()
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	cmd, _ := m.HandleAction(m.keys.Resolve(msg.String()))
	return cmd
}

func (m *Model) animateBy(days float64) tea.Cmd {
	base := m.position.Page()
	if m.anim.running && m.anim.keyed {
		base = m.anim.target
	}
	target := m.dates.Value().VisibleRange().TargetPage(base + days)
	if !m.position.AnimateToPage(target, m.physics) {
		return nil
	}
	return m.startAnimation(true, target)
}

func (m *Model) startAnimation(keyed bool, target float64) tea.Cmd {
	m.anim.keyed = keyed
	m.anim.target = target
	if m.anim.running {
		return nil
	}
	m.anim.running = true
	m.frames++
	m.anim.generation = m.frames
	m.anim.last = m.clock()
	return frameCmd(m.anim.generation)
}

func (m *Model) stop() {
	m.position.Stop()
	m.anim = animation{}
	m.drag = dragState{}
	m.wheel++
}

func (m *Model) handleFrame(msg frameMsg) tea.Cmd {
	if !m.anim.running || msg.generation != m.anim.generation {
		return nil
	}
	dt := min(max(msg.at.Sub(m.anim.last), 0), maxFrameStep)
	m.anim.last = msg.at
	if m.position.Tick(dt) {
		return frameCmd(m.anim.generation)
	}
	m.anim = animation{}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		return m.wheelBy(-m.wheelStep)
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		return m.wheelBy(m.wheelStep)
	}

	now := m.clock()
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		m.anim = animation{}
		m.drag = dragState{active: true, lastX: msg.X, lastAt: now}
		m.position.Stop()
	case tea.MouseActionMotion:
		if !m.drag.active {
			return nil
		}
		delta := float64(m.drag.lastX - msg.X)
		if dt := now.Sub(m.drag.lastAt).Seconds(); dt > 0 {
			m.drag.velocity = 0.5*m.drag.velocity + 0.5*delta/dt
		}
		m.drag.lastX, m.drag.lastAt = msg.X, now
		m.position.Drag(delta)
	case tea.MouseActionRelease:
		if !m.drag.active {
			return nil
		}
		velocity := m.drag.velocity
		if now.Sub(m.drag.lastAt) > maxFrameStep {
			velocity = 0
		}
		m.drag = dragState{}
		if m.position.Fling(velocity) {
			m.logger.Debug("fling", zap.Float64("velocity", velocity))
			return m.startAnimation(false, 0)
		}
	}
	return nil
}

func (m *Model) wheelBy(delta float64) tea.Cmd {
	if !m.dates.CanScroll() {
		return nil
	}
	m.anim = animation{}
	m.position.Drag(delta)
	m.wheel++
	return wheelSettleCmd(m.wheel)
}

// resizeRange changes the day count of a days or fixed range by delta,
// bounded by what fits the width.
func (m *Model) resizeRange(delta int) {
	v := m.dates.Value()
	count := v.VisibleDayCount() + delta
	if count < 1 || (delta > 0 && m.Width() > 0 && count > layout.MaxVisibleDays(m.Width())) {
		return
	}
	switch r := v.VisibleRange().(type) {
	case paging.Days:
		r.Count = count
		m.setRange(r)
	case paging.Fixed:
		r.Count = count
		m.setRange(r)
	}
}

// cycleRange switches days -> week -> fixed -> days, keeping the focused day.
func (m *Model) cycleRange() {
	v := m.dates.Value()
	switch r := v.VisibleRange().(type) {
	case paging.Days:
		m.setRange(paging.Week{FirstWeekday: m.firstWeekday})
	case paging.Week:
		m.setRange(paging.Fixed{Start: v.FirstVisiblePage(), Count: r.VisibleDayCount()})
	default:
		m.setRange(paging.NewDays(v.VisibleDayCount()))
	}
}

func (m *Model) setRange(r paging.VisibleRange) {
	m.stop()
	m.dates.SetVisibleRange(r)
	m.logger.Debug("visible range changed",
		zap.String("value", m.dates.Value().String()))
}
