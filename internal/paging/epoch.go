package paging

import (
	"math"
	"time"
)

const secondsPerDay = 24 * 60 * 60

var unixEpoch = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// MinPage is the page of 0001-01-01, the zero time.Time date.
const MinPage = -719162

// MaxPage is the page of 9999-12-31.
const MaxPage = 2932896

// PageForDate returns the page of the civil day of t in t's own location.
func PageForDate(t time.Time) int {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(day.Unix() / secondsPerDay)
}

// DateForPage returns midnight UTC of the day indexed by page.
func DateForPage(page int) time.Time {
	return unixEpoch.AddDate(0, 0, page)
}

// DateForFractionalPage returns the day containing the fractional page.
func DateForFractionalPage(page float64) time.Time {
	return DateForPage(int(math.Floor(page)))
}

// clampPage keeps page inside the representable epoch window.
func clampPage(page float64) float64 {
	return math.Min(math.Max(page, MinPage), MaxPage)
}
