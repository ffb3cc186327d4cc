package paging

import (
	"fmt"
	"math"
)

// Value is the immutable paging state shared by a date controller and the
// views attached to it. Use WithPage and WithRange to derive new values.
type Value struct {
	page         float64
	visibleRange VisibleRange
}

// NewValue returns a value at page for the given range. It panics when the
// range shows no days or page is not finite.
func NewValue(page float64, visibleRange VisibleRange) Value {
	if visibleRange == nil {
		panic("paging: nil visible range")
	}
	if n := visibleRange.VisibleDayCount(); n < 1 {
		panic(fmt.Sprintf("paging: visible day count must be at least 1, got %d", n))
	}
	if math.IsNaN(page) || math.IsInf(page, 0) {
		panic(fmt.Sprintf("paging: page must be finite, got %v", page))
	}
	return Value{page: visibleRange.ClampPage(page), visibleRange: visibleRange}
}

// Page returns the continuous page coordinate.
func (v Value) Page() float64 { return v.page }

// VisibleDayCount returns how many days are shown side by side.
func (v Value) VisibleDayCount() int { return v.visibleRange.VisibleDayCount() }

// VisibleRange returns the range capability.
func (v Value) VisibleRange() VisibleRange { return v.visibleRange }

// CanScroll reports whether the range allows scrolling.
func (v Value) CanScroll() bool { return v.visibleRange.CanScroll() }

// WithPage returns a copy of v at page.
func (v Value) WithPage(page float64) Value {
	return NewValue(page, v.visibleRange)
}

// WithRange returns a copy of v using r, keeping the page where r allows it.
func (v Value) WithRange(r VisibleRange) Value {
	return NewValue(v.page, r)
}

// FirstVisiblePage returns the leftmost, possibly partially visible, day.
func (v Value) FirstVisiblePage() int {
	return int(math.Floor(v.page))
}

// LastVisiblePage returns the rightmost, possibly partially visible, day.
func (v Value) LastVisiblePage() int {
	return v.FirstVisiblePage() + v.VisibleDayCount()
}

// Equal reports whether both values describe the same position and range.
func (v Value) Equal(other Value) bool {
	return v.page == other.page && v.visibleRange == other.visibleRange
}

func (v Value) String() string {
	return fmt.Sprintf("paging.Value{page: %g, days: %d}", v.page, v.VisibleDayCount())
}
