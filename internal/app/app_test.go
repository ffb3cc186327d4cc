package app

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/timetable/internal/agenda"
	"github.com/llehouerou/timetable/internal/config"
	"github.com/llehouerou/timetable/internal/paging"
	"github.com/llehouerou/timetable/internal/state"
	"github.com/llehouerou/timetable/internal/ui/action"
	"github.com/llehouerou/timetable/internal/ui/testutil"
	"github.com/llehouerou/timetable/internal/ui/textinput"
)

// Wednesday.
var testNow = time.Date(2024, 3, 13, 8, 0, 0, 0, time.UTC)

var today = paging.PageForDate(testNow)

type pageRange struct{ first, last int }

type fakeStore struct {
	events map[int][]agenda.Event
	next   *agenda.Event
	err    error
	loads  []pageRange
}

func (s *fakeStore) ForPages(first, last int) (map[int][]agenda.Event, error) {
	s.loads = append(s.loads, pageRange{first, last})
	if s.err != nil {
		return nil, s.err
	}
	out := make(map[int][]agenda.Event)
	for day, list := range s.events {
		if day >= first && day <= last {
			out[day] = list
		}
	}
	return out, nil
}

func (s *fakeStore) Next(time.Time) (*agenda.Event, error) {
	return s.next, nil
}

func newApp(t *testing.T, mgr *state.Mock, store *fakeStore) Model {
	t.Helper()
	m := New(Deps{
		Config:   &config.Config{StartDate: "2024-03-13", VisibleDays: 3},
		State:    mgr,
		Events:   store,
		Clock:    func() time.Time { return testNow },
		Location: time.UTC,
	})
	t.Cleanup(m.Close)
	return m
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// collect runs cmd and returns its messages with batches expanded.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func findMsg[T tea.Msg](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if m, ok := msg.(T); ok {
			return m, true
		}
	}
	var zero T
	return zero, false
}

func TestNew_UsesConfiguredStart(t *testing.T) {
	m := newApp(t, state.NewMock(), &fakeStore{})

	v := m.Dates().Value()
	assert.InDelta(t, float64(today), v.Page(), 1e-9)
	assert.Equal(t, 3, v.VisibleDayCount())
	assert.Empty(t, m.ErrorMsg)
}

func TestNew_RestoresSavedView(t *testing.T) {
	mgr := state.NewMock()
	mgr.View = &state.ViewState{Page: float64(today) + 10, VisibleDays: 5, RangeKind: "days"}

	m := newApp(t, mgr, &fakeStore{})

	v := m.Dates().Value()
	assert.InDelta(t, float64(today)+10, v.Page(), 1e-9)
	assert.Equal(t, 5, v.VisibleDayCount())
}

func TestNew_RestoresWeekRange(t *testing.T) {
	mgr := state.NewMock()
	mgr.View = &state.ViewState{Page: float64(today - 2), VisibleDays: 7, RangeKind: "week"}

	m := newApp(t, mgr, &fakeStore{})

	v := m.Dates().Value()
	assert.Equal(t, "week", rangeKind(v.VisibleRange()))
	assert.Equal(t, 7, v.VisibleDayCount())
}

func TestPageChangesAreSaved(t *testing.T) {
	mgr := state.NewMock()
	m := newApp(t, mgr, &fakeStore{})

	m.Dates().SetPage(float64(today + 4))

	require.NotNil(t, mgr.View)
	assert.InDelta(t, float64(today+4), mgr.View.Page, 1e-9)
	assert.Equal(t, 3, mgr.View.VisibleDays)
	assert.Equal(t, "days", mgr.View.RangeKind)
}

func TestClose_StopsSaving(t *testing.T) {
	mgr := state.NewMock()
	m := newApp(t, mgr, &fakeStore{})
	m.Close()
	saves := mgr.Saves

	m.Dates().SetPage(float64(today + 1))

	assert.Equal(t, saves, mgr.Saves)
}

func TestEnsureEvents_LoadsWindowOnce(t *testing.T) {
	store := &fakeStore{}
	m := newApp(t, state.NewMock(), store)

	cmd := m.ensureEvents()
	require.NotNil(t, cmd)
	assert.Nil(t, m.ensureEvents(), "a pending load covers the visible range")

	msg, ok := cmd().(EventsLoadedMsg)
	require.True(t, ok)
	require.Len(t, store.loads, 1)
	assert.Equal(t, today-loadAhead, msg.First)
	assert.LessOrEqual(t, today+2+loadAhead, msg.Last)

	m, _ = send(t, m, msg)
	assert.Nil(t, m.ensureEvents())
}

func TestEventsLoaded_ShownInView(t *testing.T) {
	store := &fakeStore{events: map[int][]agenda.Event{
		today: {{
			Title: "Standup",
			Start: time.Date(2024, 3, 13, 9, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 3, 13, 9, 15, 0, 0, time.UTC),
		}},
	}}
	m := newApp(t, state.NewMock(), store)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 90, Height: 20})

	msg := loadEventsCmd(store, today-loadAhead, today+loadAhead)()
	m, _ = send(t, m, msg)

	view := testutil.StripANSI(m.View())
	assert.Contains(t, view, "09:00 Standup")
	assert.Contains(t, view, "March 2024")
}

func TestEventsLoadError_ShowsMessageUntilKey(t *testing.T) {
	store := &fakeStore{err: errors.New("disk gone")}
	m := newApp(t, state.NewMock(), store)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 90, Height: 20})

	m, _ = send(t, m, loadEventsCmd(store, today-loadAhead, today+loadAhead)())
	assert.Equal(t, "Failed to load events: disk gone", m.ErrorMsg)
	assert.Contains(t, testutil.StripANSI(m.View()), "disk gone")
	assert.Nil(t, m.ensureEvents(), "a failed window is not retried in place")

	m, _ = send(t, m, keyMsg("l"))
	assert.Empty(t, m.ErrorMsg)
}

func TestStatusBar_ShowsNextEvent(t *testing.T) {
	m := newApp(t, state.NewMock(), &fakeStore{})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 90, Height: 20})

	m, _ = send(t, m, NextEventMsg{Event: &agenda.Event{
		Title: "Review",
		Start: testNow.Add(2 * time.Hour),
		End:   testNow.Add(3 * time.Hour),
	}})

	lines := testutil.SplitLines(testutil.StripANSI(m.View()))
	status := lines[len(lines)-2]
	assert.Contains(t, status, "Wed 13 Mar 2024 · 3 days")
	assert.Contains(t, status, "next: Review 2 hours from now")
}

func TestView_FillsWindow(t *testing.T) {
	m := newApp(t, state.NewMock(), &fakeStore{})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 60, Height: 15})

	lines := strings.Split(m.View(), "\n")
	assert.Len(t, lines, 15)
	for i, line := range lines {
		assert.LessOrEqual(t, testutil.MeasureWidth(line), 60, "line %d", i)
	}
}

func TestGoto_JumpsToDate(t *testing.T) {
	m := newApp(t, state.NewMock(), &fakeStore{})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 90, Height: 20})

	m, _ = send(t, m, keyMsg("g"))
	require.Equal(t, PopupGoto, m.popupType)
	assert.Contains(t, testutil.StripANSI(m.View()), "Go to date")

	m, _ = send(t, m, keyMsg("2024-05-01"))
	_, cmd := send(t, m, keyMsg("enter"))
	result, ok := findMsg[action.Msg](collect(cmd))
	require.True(t, ok)

	m, _ = send(t, m, result)
	assert.Equal(t, PopupNone, m.popupType)
	assert.Equal(t, paging.PageForDate(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)), m.Dates().Value().FirstVisiblePage())
	assert.Empty(t, m.ErrorMsg)
}

func TestGoto_Today(t *testing.T) {
	m := newApp(t, state.NewMock(), &fakeStore{})
	m.Dates().SetPage(float64(today + 40))

	m, _ = send(t, m, action.Msg{Source: "textinput", Action: textinput.Result{Text: "today", Context: PopupGoto}})

	assert.Equal(t, today, m.Dates().Value().FirstVisiblePage())
}

func TestGoto_InvalidDate(t *testing.T) {
	m := newApp(t, state.NewMock(), &fakeStore{})
	before := m.Dates().Value().Page()

	m, _ = send(t, m, action.Msg{Source: "textinput", Action: textinput.Result{Text: "soon", Context: PopupGoto}})

	assert.Equal(t, "Failed to go to date 'soon': want YYYY-MM-DD or today", m.ErrorMsg)
	assert.InDelta(t, before, m.Dates().Value().Page(), 1e-9)
}

func TestGoto_CanceledKeepsPage(t *testing.T) {
	m := newApp(t, state.NewMock(), &fakeStore{})
	m, _ = send(t, m, keyMsg("g"))
	before := m.Dates().Value().Page()

	_, cmd := send(t, m, keyMsg("esc"))
	result, ok := findMsg[action.Msg](collect(cmd))
	require.True(t, ok)
	m, _ = send(t, m, result)

	assert.Equal(t, PopupNone, m.popupType)
	assert.InDelta(t, before, m.Dates().Value().Page(), 1e-9)
}

func TestHelpPopup_OpensAndCloses(t *testing.T) {
	m := newApp(t, state.NewMock(), &fakeStore{})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 90, Height: 30})

	m, _ = send(t, m, keyMsg("?"))
	require.Equal(t, PopupHelp, m.popupType)
	view := testutil.StripANSI(m.View())
	assert.Contains(t, view, "Help")
	assert.Contains(t, view, "Go to date")

	// Keys go to the popup while it is open.
	before := m.Dates().Value().Page()
	m, _ = send(t, m, keyMsg("l"))
	assert.InDelta(t, before, m.Dates().Value().Page(), 1e-9)

	_, cmd := send(t, m, keyMsg("esc"))
	closeMsg, ok := findMsg[action.Msg](collect(cmd))
	require.True(t, ok)
	m, _ = send(t, m, closeMsg)
	assert.Equal(t, PopupNone, m.popupType)
}

func TestQuit(t *testing.T) {
	m := newApp(t, state.NewMock(), &fakeStore{})

	_, cmd := send(t, m, keyMsg("q"))

	_, ok := findMsg[tea.QuitMsg](collect(cmd))
	assert.True(t, ok)
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("2024-12-31", testNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), got)

	got, err = parseDate("Today", testNow)
	require.NoError(t, err)
	assert.Equal(t, testNow, got)

	_, err = parseDate("31/12/2024", testNow)
	assert.ErrorIs(t, err, errInvalidDate)
}

func TestGoto_InsideLoadedWindowShowsEventsAtOnce(t *testing.T) {
	store := &fakeStore{events: map[int][]agenda.Event{
		today + 5: {{
			Title: "Dentist",
			Start: time.Date(2024, 3, 18, 10, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 3, 18, 11, 0, 0, 0, time.UTC),
		}},
	}}
	m := newApp(t, state.NewMock(), store)
	m, cmd := send(t, m, tea.WindowSizeMsg{Width: 90, Height: 20})
	loaded, ok := findMsg[EventsLoadedMsg](collect(cmd))
	require.True(t, ok)
	m, _ = send(t, m, loaded)
	require.Len(t, store.loads, 1)

	m, cmd = send(t, m, action.Msg{Source: "textinput", Action: textinput.Result{Text: "2024-03-18", Context: PopupGoto}})

	assert.Nil(t, cmd, "the target stays inside the loaded window")
	assert.Len(t, store.loads, 1)
	assert.Equal(t, today+5, m.Dates().Value().FirstVisiblePage())
	assert.Contains(t, testutil.StripANSI(m.View()), "10:00 Dentist")
}
