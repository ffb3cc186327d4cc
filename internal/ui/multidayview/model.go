// Package multidayview renders a horizontally paging strip of day columns.
//
// The view owns the scroll position of a date controller: keys, mouse drags
// and wheel notches move the position, which publishes fractional pages back
// to the controller. The height of the view follows the tallest visible day,
// interpolated while a scroll is between two pages.
package multidayview

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/timetable/internal/datecontroller"
	"github.com/llehouerou/timetable/internal/heights"
	"github.com/llehouerou/timetable/internal/keymap"
	"github.com/llehouerou/timetable/internal/nowindicator"
	"github.com/llehouerou/timetable/internal/paging"
	"github.com/llehouerou/timetable/internal/scroll"
	"github.com/llehouerou/timetable/internal/ui"
)

// Options configure a Model. Dates is required.
type Options struct {
	Dates        *datecontroller.Controller
	Physics      scroll.PagingPhysics // zero value selects scroll.DefaultPagingPhysics
	WheelStep    float64              // columns per wheel notch, 0 selects DefaultWheelStep
	FirstWeekday time.Weekday         // used when cycling to the week range
	Builder      DayBuilder           // nil renders empty days
	Painter      *nowindicator.Painter
	Clock        func() time.Time
	Logger       *zap.Logger
}

// DefaultWheelStep is the wheel scroll distance in columns.
const DefaultWheelStep = 4

// Model is the multi-day timetable view.
type Model struct {
	ui.Base

	dates    *datecontroller.Controller
	scroller *scroll.Controller
	position *scroll.PagingPosition
	heights  *heights.Tracker
	frame    *heights.FrameScheduler
	painter  *nowindicator.Painter
	sub      *nowindicator.Subscription
	keys     *keymap.Resolver

	physics      scroll.PagingPhysics
	wheelStep    float64
	firstWeekday time.Weekday
	clock        func() time.Time
	logger       *zap.Logger

	layout *layoutState
	now    time.Time
	anim   animation
	drag   dragState
	wheel  int // generation of the pending wheel settle
	frames int // animations started so far
}

// layoutState is shared between copies of the model.
type layoutState struct {
	builder      DayBuilder
	days         map[int][]string // built content by page
	contentWidth int
	bodyHeight   int // ceil of the tracked height, refreshed by the frame scheduler
	release      []func()
}

// New creates the view and attaches its scroll position to opts.Dates.
func New(opts Options) Model {
	if opts.Dates == nil {
		panic("multidayview: Options.Dates is required")
	}
	if opts.Physics == (scroll.PagingPhysics{}) {
		opts.Physics = scroll.DefaultPagingPhysics()
	}
	if opts.WheelStep <= 0 {
		opts.WheelStep = DefaultWheelStep
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Builder == nil {
		opts.Builder = func(time.Time, int) []string { return nil }
	}

	m := Model{
		dates:        opts.Dates,
		scroller:     scroll.NewController(opts.Dates, opts.Physics),
		painter:      opts.Painter,
		keys:         keymap.Default(),
		physics:      opts.Physics,
		wheelStep:    opts.WheelStep,
		firstWeekday: opts.FirstWeekday,
		clock:        opts.Clock,
		logger:       opts.Logger.Named("multidayview"),
		layout: &layoutState{
			builder: opts.Builder,
			days:    make(map[int][]string),
		},
		now: opts.Clock(),
	}
	m.position = m.scroller.CreatePosition()
	m.scroller.Attach(m.position)

	l := m.layout
	dates := m.dates
	var tracker *heights.Tracker
	frame := heights.NewFrameScheduler(func() {
		l.bodyHeight = int(math.Ceil(tracker.Query(dates.Value())))
	})
	tracker = heights.NewTracker(frame)
	m.frame, m.heights = frame, tracker
	l.release = append(l.release,
		m.heights.Bind(m.dates),
		m.dates.Subscribe(func(paging.Value) { frame.MarkNeedsLayout() }),
	)
	if m.painter != nil {
		m.sub = m.painter.Subscribe()
	}
	return m
}

// Init starts listening for now-indicator ticks.
func (m Model) Init() tea.Cmd {
	return waitForNow(m.sub)
}

// SetSize lays the view out for width x height cells. The width is the
// viewport dimension of the scroll position.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	if m.position.ApplyViewportDimension(float64(width)) {
		m.logger.Debug("viewport corrected",
			zap.Int("width", width),
			zap.Float64("page", m.position.Page()))
		m.resumeSettle()
	}
	m.frame.MarkNeedsLayout()
	m.measure()
}

// resumeSettle restarts a settle cut short by a viewport correction so the
// view still comes to rest on a page. Momentum is not carried over.
func (m *Model) resumeSettle() {
	if !m.anim.running {
		return
	}
	target := m.anim.target
	if !m.anim.keyed {
		target = m.dates.Value().VisibleRange().TargetPage(m.position.Page())
	}
	if m.position.AnimateToPage(target, m.physics) {
		return
	}
	m.anim = animation{}
	m.dates.SetPage(m.dates.Value().VisibleRange().TargetPage(target))
}

// SetBuilder replaces the day content builder and rebuilds every day.
func (m *Model) SetBuilder(b DayBuilder) {
	m.layout.builder = b
	m.Invalidate()
}

// Invalidate drops the built content so every visible day is rebuilt and
// measured again.
func (m *Model) Invalidate() {
	clear(m.layout.days)
	m.measure()
}

// Dates returns the date controller driven by the view.
func (m Model) Dates() *datecontroller.Controller { return m.dates }

// Position returns the scroll position of the view.
func (m Model) Position() *scroll.PagingPosition { return m.position }

// Heights returns the day height tracker.
func (m Model) Heights() *heights.Tracker { return m.heights }

// Page returns the current fractional page.
func (m Model) Page() float64 { return m.scroller.Page() }

// BodyHeight returns the number of body rows the view renders.
func (m Model) BodyHeight() int {
	return min(max(m.layout.bodyHeight, 1), m.Base.BodyHeight(ui.HeaderHeight))
}

// Animating reports whether a settle or fling is running.
func (m Model) Animating() bool { return m.anim.running }

// Close releases the scroll position and the indicator subscription.
func (m *Model) Close() {
	for _, release := range m.layout.release {
		release()
	}
	m.layout.release = nil
	if m.painter != nil && m.sub != nil {
		m.painter.Unsubscribe(m.sub)
		m.sub = nil
	}
	m.scroller.Dispose()
}

// measure builds the content of every visible day that is not cached yet,
// reports its height and runs the pending layout.
func (m *Model) measure() {
	if m.Width() <= 0 {
		return
	}
	v := m.dates.Value()
	l := m.layout
	cw := contentWidth(m.Width(), v.VisibleDayCount())
	if cw != l.contentWidth {
		clear(l.days)
		l.contentWidth = cw
	}

	first, last := v.FirstVisiblePage(), v.LastVisiblePage()
	for day := first; day <= last; day++ {
		if _, ok := l.days[day]; ok {
			continue
		}
		lines := l.builder(paging.DateForPage(day), cw)
		l.days[day] = lines
		m.heights.Report(day, float64(len(lines)))
	}
	for day := range l.days {
		if day < first-heights.PruneMargin || day > last+heights.PruneMargin {
			delete(l.days, day)
		}
	}
	m.frame.Flush()
}

func contentWidth(width, count int) int {
	return max(int(paging.DayWidth(float64(width), count))-ui.ColumnGap, 1)
}
