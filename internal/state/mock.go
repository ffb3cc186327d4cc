package state

import "database/sql"

// Mock records saved views in memory.
type Mock struct {
	View   *ViewState
	Saves  int
	Closed bool
}

// NewMock returns an empty mock.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) DB() *sql.DB { return nil }

func (m *Mock) GetView() (*ViewState, error) {
	return m.View, nil
}

func (m *Mock) SaveView(v ViewState) {
	m.View = &v
	m.Saves++
}

func (m *Mock) Close() error {
	m.Closed = true
	return nil
}

var _ Interface = (*Mock)(nil)
