package state

import "database/sql"

// Interface is the state manager contract used by the app.
type Interface interface {
	DB() *sql.DB
	GetView() (*ViewState, error)
	SaveView(v ViewState)
	Close() error
}

var _ Interface = (*Manager)(nil)
