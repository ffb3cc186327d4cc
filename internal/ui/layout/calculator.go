// Package layout provides pure functions for screen dimension calculations.
package layout

import "github.com/llehouerou/timetable/internal/ui"

// ContentOpts describes the rows taken by chrome around the timetable.
type ContentOpts struct {
	HeaderBarHeight int // month/range header bar
	StatusHeight    int
	HelpHeight      int // 0 when the help line is hidden
	ErrorCount      int // queued error messages
}

// ContentHeight is the height available to the timetable view.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	height := windowHeight
	height -= opts.HeaderBarHeight
	height -= opts.StatusHeight
	height -= opts.HelpHeight
	height -= ErrorHeight(opts.ErrorCount)
	return max(height, 0)
}

// ErrorHeight returns the rows used by count error lines, one each.
func ErrorHeight(count int) int {
	return max(count, 0)
}

// MaxVisibleDays is the largest day count whose columns keep at least
// ui.MinDayWidth cells in a viewport of width columns. It is never below 1.
func MaxVisibleDays(width int) int {
	return max(width/ui.MinDayWidth, 1)
}
