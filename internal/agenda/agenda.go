// Package agenda stores the events shown in the timetable.
package agenda

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	dbutil "github.com/llehouerou/timetable/internal/db"
	"github.com/llehouerou/timetable/internal/paging"
)

// ErrInvalidEvent is returned for events that cannot be stored.
var ErrInvalidEvent = errors.New("invalid event")

// Event is a single timetable entry.
type Event struct {
	ID     int64
	Title  string
	Start  time.Time
	End    time.Time
	AllDay bool
	Color  string // lipgloss color, empty for the theme default
}

// Duration returns End - Start.
func (e Event) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

func (e Event) validate() error {
	if e.Title == "" {
		return fmt.Errorf("%w: empty title", ErrInvalidEvent)
	}
	if !e.End.After(e.Start) {
		return fmt.Errorf("%w: %q ends before it starts", ErrInvalidEvent, e.Title)
	}
	return nil
}

// Store reads and writes events. Day boundaries are computed in loc.
type Store struct {
	db  *sql.DB
	loc *time.Location
}

// New prepares the events schema on db. A nil loc uses time.Local.
func New(db *sql.DB, loc *time.Location) (*Store, error) {
	if loc == nil {
		loc = time.Local
	}
	if err := initSchema(db); err != nil {
		return nil, fmt.Errorf("init agenda schema: %w", err)
	}
	return &Store{db: db, loc: loc}, nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			starts_at INTEGER NOT NULL,
			ends_at INTEGER NOT NULL,
			all_day INTEGER NOT NULL DEFAULT 0,
			color TEXT
		);

		CREATE INDEX IF NOT EXISTS idx_events_starts_at ON events(starts_at);
		CREATE INDEX IF NOT EXISTS idx_events_ends_at ON events(ends_at);
	`)
	return err
}

// Add stores e and returns its ID.
func (s *Store) Add(e Event) (int64, error) {
	ids, err := s.AddAll([]Event{e})
	if err != nil {
		return 0, err
	}
	return ids[0], nil
}

// AddAll stores events in a single transaction.
func (s *Store) AddAll(events []Event) ([]int64, error) {
	for _, e := range events {
		if err := e.validate(); err != nil {
			return nil, err
		}
	}
	ids := make([]int64, 0, len(events))
	err := dbutil.WithTx(s.db, func(tx *sql.Tx) error {
		for _, e := range events {
			res, err := tx.Exec(`
				INSERT INTO events (title, starts_at, ends_at, all_day, color)
				VALUES (?, ?, ?, ?, ?)
			`, e.Title, e.Start.Unix(), e.End.Unix(), e.AllDay, nullString(e.Color))
			if err != nil {
				return err
			}
			id, err := res.LastInsertId()
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Delete removes the event with id.
func (s *Store) Delete(id int64) error {
	res, err := s.db.Exec(`DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("event %d: %w", id, sql.ErrNoRows)
	}
	return nil
}

// ForDay returns the events overlapping the civil day of date, ordered by
// start.
func (s *Store) ForDay(date time.Time) ([]Event, error) {
	from := s.midnight(date)
	return s.overlapping(from, from.AddDate(0, 0, 1))
}

// ForPages returns the events of each day in [first, last], keyed by page.
// An event spanning several days appears under each of them.
func (s *Store) ForPages(first, last int) (map[int][]Event, error) {
	from := s.midnight(paging.DateForPage(first))
	to := s.midnight(paging.DateForPage(last)).AddDate(0, 0, 1)
	events, err := s.overlapping(from, to)
	if err != nil {
		return nil, err
	}

	byDay := make(map[int][]Event)
	for _, e := range events {
		firstDay := max(paging.PageForDate(e.Start.In(s.loc)), first)
		// End is exclusive.
		lastDay := min(paging.PageForDate(e.End.Add(-time.Second).In(s.loc)), last)
		for day := firstDay; day <= lastDay; day++ {
			byDay[day] = append(byDay[day], e)
		}
	}
	return byDay, nil
}

// Next returns the first event starting after now, or nil.
func (s *Store) Next(now time.Time) (*Event, error) {
	row := s.db.QueryRow(`
		SELECT id, title, starts_at, ends_at, all_day, color
		FROM events WHERE starts_at > ? ORDER BY starts_at, id LIMIT 1
	`, now.Unix())
	e, err := s.scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no upcoming event is not an error
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Store) overlapping(from, to time.Time) ([]Event, error) {
	rows, err := s.db.Query(`
		SELECT id, title, starts_at, ends_at, all_day, color
		FROM events
		WHERE starts_at < ? AND ends_at > ?
		ORDER BY starts_at, id
	`, to.Unix(), from.Unix())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		e, err := s.scan(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func (s *Store) scan(row scanner) (Event, error) {
	var e Event
	var start, end int64
	var color sql.NullString
	if err := row.Scan(&e.ID, &e.Title, &start, &end, &e.AllDay, &color); err != nil {
		return Event{}, err
	}
	e.Start = time.Unix(start, 0).In(s.loc)
	e.End = time.Unix(end, 0).In(s.loc)
	e.Color = dbutil.NullStringValue(color)
	return e, nil
}

func (s *Store) midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.loc)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
