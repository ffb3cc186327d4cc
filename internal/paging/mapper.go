package paging

import "math"

// Tolerance is the distance under which a page value snaps to the nearest
// integer or half-integer.
const Tolerance = 1e-5

// Snap returns the nearest multiple of 0.5 when v lies within Tolerance of
// it, and v unchanged otherwise.
func Snap(v float64) float64 {
	nearest := math.Round(v*2) / 2
	if math.Abs(v-nearest) <= Tolerance {
		return nearest
	}
	return v
}

// PixelDeltaToPageDelta converts a pixel distance to a page distance.
// viewportDimension must be positive.
func PixelDeltaToPageDelta(pixels, viewportDimension float64, visibleDayCount int) float64 {
	return Snap(pixels * float64(visibleDayCount) / viewportDimension)
}

// PageDeltaToPixelDelta converts a page distance to a pixel distance.
func PageDeltaToPixelDelta(pages, viewportDimension float64, visibleDayCount int) float64 {
	return pages * viewportDimension / float64(visibleDayCount)
}

// PixelsToPage converts an absolute scroll offset to a page.
func PixelsToPage(pixels, viewportDimension float64, visibleDayCount int) float64 {
	return MinPage + PixelDeltaToPageDelta(pixels, viewportDimension, visibleDayCount)
}

// PageToPixels converts a page to an absolute scroll offset.
func PageToPixels(page, viewportDimension float64, visibleDayCount int) float64 {
	return PageDeltaToPixelDelta(page-MinPage, viewportDimension, visibleDayCount)
}

// DayWidth returns the width of a single day column.
func DayWidth(viewportDimension float64, visibleDayCount int) float64 {
	return viewportDimension / float64(visibleDayCount)
}
