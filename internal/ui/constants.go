// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for the timetable screen.
const (
	// HeaderHeight is the day header row plus its separator.
	HeaderHeight = 2

	// StatusHeight is the status bar at the bottom of the screen.
	StatusHeight = 1

	// HelpHeight is the short help line under the status bar.
	HelpHeight = 1

	// ColumnGap is the separator column drawn at the left edge of each day.
	ColumnGap = 1

	// MinDayWidth is the narrowest day column that still shows a time prefix.
	MinDayWidth = 8
)
