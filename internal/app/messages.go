package app

import "github.com/llehouerou/timetable/internal/agenda"

// EventsLoadedMsg carries the events of the days [First, Last].
type EventsLoadedMsg struct {
	First  int
	Last   int
	Events map[int][]agenda.Event
	Err    error
}

// NextEventMsg carries the next upcoming event, nil when there is none.
type NextEventMsg struct {
	Event *agenda.Event
	Err   error
}
