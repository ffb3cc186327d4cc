package state

import (
	"database/sql"
	"errors"
	"time"
)

// ViewState is the persisted position of the timetable.
type ViewState struct {
	Page        float64
	VisibleDays int
	RangeKind   string // "days", "week" or "fixed"
}

func getView(db *sql.DB) (*ViewState, error) {
	row := db.QueryRow(`SELECT page, visible_days, range_kind FROM view_state WHERE id = 1`)

	var v ViewState
	err := row.Scan(&v.Page, &v.VisibleDays, &v.RangeKind)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func saveView(db *sql.DB, v ViewState) error {
	_, err := db.Exec(`
		INSERT INTO view_state (id, page, visible_days, range_kind, updated_at)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			page = excluded.page,
			visible_days = excluded.visible_days,
			range_kind = excluded.range_kind,
			updated_at = excluded.updated_at
	`, v.Page, v.VisibleDays, v.RangeKind, time.Now().Unix())
	return err
}
