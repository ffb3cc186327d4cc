package multidayview

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/timetable/internal/nowindicator"
	"github.com/llehouerou/timetable/internal/paging"
	"github.com/llehouerou/timetable/internal/ui/testutil"
)

type fakeTimer struct {
	fn      func()
	stopped bool
}

func (f *fakeTimer) Stop() bool {
	was := !f.stopped
	f.stopped = true
	return was
}

type fakeTimers struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (f *fakeTimers) afterFunc(_ time.Duration, fn func()) nowindicator.Timer {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := &fakeTimer{fn: fn}
	f.timers = append(f.timers, t)
	return t
}

func (f *fakeTimers) last() *fakeTimer {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.timers[len(f.timers)-1]
}

func newTestPainter(t *testing.T) (*nowindicator.Painter, *fakeTimers) {
	t.Helper()
	timers := &fakeTimers{}
	p := nowindicator.NewPainter(nowindicator.Options{
		Clock:     clock,
		AfterFunc: timers.afterFunc,
	})
	t.Cleanup(p.Close)
	return p, timers
}

func TestView_DrawsNowLineInTodaysColumn(t *testing.T) {
	painter, _ := newTestPainter(t)
	m := newView(t, float64(today-1), paging.NewDays(3), map[int]int{today: 4}, painter)
	m.SetSize(30, 20)

	lines := testutil.SplitLines(m.View())
	require.Len(t, lines, 2+4)

	// 14:30 is 60% into the day: row 2 of 4 body rows.
	row := []rune(lines[4])
	assert.Equal(t, "─────────", string(row[11:20]))
	assert.Equal(t, '│', row[10])
	assert.NotContains(t, lines[3], "─")
}

func TestView_NowLineOffscreen(t *testing.T) {
	painter, _ := newTestPainter(t)
	m := newView(t, float64(today+5), paging.NewDays(3), map[int]int{today + 5: 3}, painter)
	m.SetSize(30, 20)

	for _, line := range testutil.SplitLines(m.View())[2:] {
		assert.NotContains(t, line, "─")
	}
	assert.Equal(t, nowindicator.TaskScheduled, painter.TaskState())
}

func TestModel_SubscriptionDrivesTimer(t *testing.T) {
	painter, timers := newTestPainter(t)
	m := newView(t, float64(today), paging.NewDays(3), nil, painter)

	assert.Equal(t, 1, painter.Observers())
	assert.Equal(t, nowindicator.TaskScheduled, painter.TaskState())

	cmd := m.Init()
	require.NotNil(t, cmd)
	timers.last().fn()
	msg := cmd()
	assert.Equal(t, NowMsg{At: testNow}, msg)

	m, next := m.Update(msg)
	assert.NotNil(t, next)
	assert.Equal(t, testNow, m.now)

	m.Close()
	assert.Equal(t, 0, painter.Observers())
	assert.Equal(t, nowindicator.TaskCancelled, painter.TaskState())
	assert.Nil(t, next(), "closed subscription ends the wait")
}

func TestModel_WithoutPainter(t *testing.T) {
	m := newView(t, float64(today), paging.NewDays(3), nil, nil)
	assert.Nil(t, m.Init())
}
