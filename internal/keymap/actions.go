// Package keymap defines key bindings and action dispatch for the timetable.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Scrolling by columns (animated, settles on a page boundary)
	ActionScrollLeft  Action = "scroll_left"
	ActionScrollRight Action = "scroll_right"

	// Paging by a full visible range
	ActionPrevPage Action = "prev_page"
	ActionNextPage Action = "next_page"

	// Jumps
	ActionToday Action = "today"
	ActionGoto  Action = "goto" // opens the date prompt

	// Visible range
	ActionMoreDays   Action = "more_days"
	ActionFewerDays  Action = "fewer_days"
	ActionCycleRange Action = "cycle_range" // days -> week -> fixed
)
