package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "timetable"
}

// All contains every key binding, in help order.
var All = []Binding{
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},

	{ActionScrollLeft, []string{"h", "left"}, "Previous day", "timetable"},
	{ActionScrollRight, []string{"l", "right"}, "Next day", "timetable"},
	{ActionPrevPage, []string{"H", "pgup", "shift+left"}, "Previous range", "timetable"},
	{ActionNextPage, []string{"L", "pgdown", "shift+right"}, "Next range", "timetable"},
	{ActionToday, []string{"t", "home"}, "Today", "timetable"},
	{ActionGoto, []string{"g"}, "Go to date", "timetable"},
	{ActionMoreDays, []string{"+", "="}, "Show more days", "timetable"},
	{ActionFewerDays, []string{"-"}, "Show fewer days", "timetable"},
	{ActionCycleRange, []string{"r"}, "Cycle days/week/fixed", "timetable"},
}

// Contexts lists binding contexts in display order.
var Contexts = []string{"global", "timetable"}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
