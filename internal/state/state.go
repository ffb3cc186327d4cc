// Package state persists the timetable view between sessions.
package state

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"go.uber.org/zap"

	dbutil "github.com/llehouerou/timetable/internal/db"
)

const (
	appName      = "timetable"
	dbFileName   = "timetable.db"
	saveDebounce = 500 * time.Millisecond
)

// Manager owns the sqlite database and saves the view with a debounce, so a
// fling publishing many pages writes once.
type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *ViewState
	logger    *zap.Logger
}

// Open opens the database at path, or the XDG data location when path is
// empty.
func Open(path string) (*Manager, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}

	conn, err := dbutil.Open(path)
	if err != nil {
		return nil, err
	}
	if err := initSchema(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("init state schema: %w", err)
	}
	return &Manager{db: conn, logger: zap.NewNop()}, nil
}

// SetLogger sets the logger receiving failed background saves. A nil logger
// discards them.
func (m *Manager) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	m.saveMu.Lock()
	m.logger = logger
	m.saveMu.Unlock()
}

// DefaultPath returns the XDG data path of the database.
func DefaultPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}

// DB exposes the connection for other stores sharing the file.
func (m *Manager) DB() *sql.DB {
	return m.db
}

// GetView returns the saved view, or nil on first run.
func (m *Manager) GetView() (*ViewState, error) {
	return getView(m.db)
}

// SaveView schedules v to be written after the debounce delay. Only the
// latest pending view is written.
func (m *Manager) SaveView(v ViewState) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &v
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	m.saveTimer = time.AfterFunc(saveDebounce, m.flush)
}

// Close writes any pending view and closes the database.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	m.saveMu.Unlock()

	if err := m.flushErr(); err != nil {
		m.db.Close()
		return err
	}
	return m.db.Close()
}

func (m *Manager) flush() {
	if err := m.flushErr(); err != nil {
		m.saveMu.Lock()
		logger := m.logger
		m.saveMu.Unlock()
		logger.Error("save view", zap.Error(err))
	}
}

func (m *Manager) flushErr() error {
	m.saveMu.Lock()
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	if pending == nil {
		return nil
	}
	return saveView(m.db, *pending)
}
