package paging

import (
	"math"
	"time"
)

// VisibleRange describes how many days are shown and how scrolling settles.
type VisibleRange interface {
	// VisibleDayCount returns the number of days shown side by side.
	VisibleDayCount() int
	// CanScroll reports whether the user may move away from the current
	// position.
	CanScroll() bool
	// TargetPage returns the page a settle starting near page should end on.
	TargetPage(page float64) float64
	// ClampPage limits page to the range bounds.
	ClampPage(page float64) float64
}

// Days shows Count days and settles on whole days. When HasBounds is set,
// Min and Max bound the first visible page.
type Days struct {
	Count     int
	HasBounds bool
	Min       int
	Max       int
}

// NewDays returns an unbounded Days range.
func NewDays(count int) Days {
	return Days{Count: count}
}

// Bounded returns a copy of d limited to [minPage, maxPage].
func (d Days) Bounded(minPage, maxPage int) Days {
	d.HasBounds = true
	d.Min = minPage
	d.Max = maxPage
	return d
}

func (d Days) VisibleDayCount() int { return d.Count }

func (d Days) CanScroll() bool {
	if !d.HasBounds {
		return true
	}
	return d.Max > d.Min
}

func (d Days) TargetPage(page float64) float64 {
	return d.ClampPage(math.Round(page))
}

func (d Days) ClampPage(page float64) float64 {
	if d.HasBounds {
		page = math.Min(math.Max(page, float64(d.Min)), float64(d.Max))
	}
	return clampPage(page)
}

// Week shows seven days and settles on the first day of a week.
type Week struct {
	FirstWeekday time.Weekday
}

func (w Week) VisibleDayCount() int { return 7 }

func (Week) CanScroll() bool { return true }

func (w Week) TargetPage(page float64) float64 {
	rounded := int(math.Round(page))
	// 1970-01-01 was a Thursday.
	weekday := (int(time.Thursday) + mod(rounded, 7)) % 7
	back := mod(weekday-int(w.FirstWeekday), 7)
	start := rounded - back
	if back > 3 {
		start += 7
	}
	return clampPage(float64(start))
}

func (Week) ClampPage(page float64) float64 { return clampPage(page) }

// Fixed always shows the same Count days starting at Start.
type Fixed struct {
	Start int
	Count int
}

func (f Fixed) VisibleDayCount() int { return f.Count }

func (Fixed) CanScroll() bool { return false }

func (f Fixed) TargetPage(float64) float64 { return float64(f.Start) }

func (f Fixed) ClampPage(float64) float64 { return float64(f.Start) }

func mod(a, b int) int {
	return ((a % b) + b) % b
}
