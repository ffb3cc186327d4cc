package app

import (
	"math"
	"time"

	"github.com/llehouerou/timetable/internal/config"
	"github.com/llehouerou/timetable/internal/paging"
	"github.com/llehouerou/timetable/internal/state"
)

// saveView persists the visible page and range.
func saveView(mgr state.Interface, v paging.Value) {
	mgr.SaveView(viewState(v))
}

// initialValue builds the configured range around the configured start.
func initialValue(cfg *config.Config, now time.Time) paging.Value {
	start := paging.PageForDate(cfg.GetStartDate(now))
	r := rangeFor(cfg.GetRange(), cfg.GetVisibleDays(), start, cfg.GetFirstWeekday())
	return paging.NewValue(r.TargetPage(float64(start)), r)
}

func restoredValue(saved state.ViewState, cfg *config.Config) paging.Value {
	count := saved.VisibleDays
	if count < 1 {
		count = cfg.GetVisibleDays()
	}
	page := saved.Page
	if math.IsNaN(page) || math.IsInf(page, 0) {
		page = 0
	}
	r := rangeFor(saved.RangeKind, count, int(math.Floor(page)), cfg.GetFirstWeekday())
	return paging.NewValue(page, r)
}

func rangeFor(kind string, count, start int, firstWeekday time.Weekday) paging.VisibleRange {
	switch kind {
	case "week":
		return paging.Week{FirstWeekday: firstWeekday}
	case "fixed":
		return paging.Fixed{Start: start, Count: count}
	default:
		return paging.NewDays(count)
	}
}

func rangeKind(r paging.VisibleRange) string {
	switch r.(type) {
	case paging.Week:
		return "week"
	case paging.Fixed:
		return "fixed"
	default:
		return "days"
	}
}

func viewState(v paging.Value) state.ViewState {
	return state.ViewState{
		Page:        v.Page(),
		VisibleDays: v.VisibleDayCount(),
		RangeKind:   rangeKind(v.VisibleRange()),
	}
}
