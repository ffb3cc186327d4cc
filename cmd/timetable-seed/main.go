// Command timetable-seed fills the timetable database with a week of demo
// events around today.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/llehouerou/timetable/internal/agenda"
	"github.com/llehouerou/timetable/internal/state"
)

type slot struct {
	weekday time.Weekday
	hour    int
	minute  int
	length  time.Duration
	title   string
	color   string
}

var weekly = []slot{
	{time.Monday, 9, 0, 15 * time.Minute, "Standup", ""},
	{time.Monday, 14, 0, time.Hour, "Planning", "#3b4261"},
	{time.Tuesday, 9, 0, 15 * time.Minute, "Standup", ""},
	{time.Tuesday, 12, 30, time.Hour, "Lunch with Sam", "#2f3b2f"},
	{time.Wednesday, 9, 0, 15 * time.Minute, "Standup", ""},
	{time.Wednesday, 16, 0, 90 * time.Minute, "Design review", "#3b4261"},
	{time.Thursday, 9, 0, 15 * time.Minute, "Standup", ""},
	{time.Thursday, 18, 30, 2 * time.Hour, "Climbing", "#2f3b2f"},
	{time.Friday, 9, 0, 15 * time.Minute, "Standup", ""},
	{time.Friday, 15, 0, 45 * time.Minute, "Retro", ""},
	{time.Saturday, 10, 0, 3 * time.Hour, "Market", ""},
}

func main() {
	dbPath := flag.String("db", "", "database path (default: XDG data dir)")
	weeks := flag.Int("weeks", 2, "weeks seeded on each side of the current one")
	flag.Parse()

	stateMgr, err := state.Open(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer stateMgr.Close()

	store, err := agenda.New(stateMgr.DB(), time.Local)
	if err != nil {
		log.Fatalf("Failed to prepare agenda: %v", err)
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	monday := today.AddDate(0, 0, -int((today.Weekday()+6)%7))

	var events []agenda.Event
	for w := -*weeks; w <= *weeks; w++ {
		weekStart := monday.AddDate(0, 0, 7*w)
		events = append(events, weekEvents(weekStart)...)
		events = append(events, agenda.Event{
			Title:  "On call",
			Start:  weekStart.AddDate(0, 0, 5),
			End:    weekStart.AddDate(0, 0, 7),
			AllDay: true,
			Color:  "#4a2f2f",
		})
	}

	ids, err := store.AddAll(events)
	if err != nil {
		log.Fatalf("Failed to add events: %v", err)
	}
	log.Printf("Added %d events", len(ids))
}

func weekEvents(monday time.Time) []agenda.Event {
	events := make([]agenda.Event, 0, len(weekly))
	for _, s := range weekly {
		day := monday.AddDate(0, 0, int((s.weekday+6)%7))
		start := time.Date(day.Year(), day.Month(), day.Day(), s.hour, s.minute, 0, 0, time.Local)
		events = append(events, agenda.Event{
			Title: s.title,
			Start: start,
			End:   start.Add(s.length),
			Color: s.color,
		})
	}
	return events
}
