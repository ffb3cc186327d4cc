// Package app is the root bubbletea model of the timetable.
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/timetable/internal/agenda"
	"github.com/llehouerou/timetable/internal/config"
	"github.com/llehouerou/timetable/internal/datecontroller"
	"github.com/llehouerou/timetable/internal/errmsg"
	"github.com/llehouerou/timetable/internal/keymap"
	"github.com/llehouerou/timetable/internal/nowindicator"
	"github.com/llehouerou/timetable/internal/paging"
	"github.com/llehouerou/timetable/internal/scroll"
	"github.com/llehouerou/timetable/internal/state"
	"github.com/llehouerou/timetable/internal/ui/helpbindings"
	"github.com/llehouerou/timetable/internal/ui/multidayview"
	"github.com/llehouerou/timetable/internal/ui/popup"
	"github.com/llehouerou/timetable/internal/ui/textinput"
)

// EventStore is the part of the agenda the app reads.
type EventStore interface {
	ForPages(first, last int) (map[int][]agenda.Event, error)
	Next(now time.Time) (*agenda.Event, error)
}

var _ EventStore = (*agenda.Store)(nil)

// Deps are the collaborators of the app. Painter may be nil.
type Deps struct {
	Config   *config.Config
	State    state.Interface
	Events   EventStore
	Painter  *nowindicator.Painter
	Logger   *zap.Logger
	Clock    func() time.Time
	Location *time.Location
}

// PopupType identifies the open popup.
type PopupType int

const (
	PopupNone PopupType = iota
	PopupHelp
	PopupGoto
)

// Model is the root application model.
type Model struct {
	view     multidayview.Model
	dates    *datecontroller.Controller
	keys     *keymap.Resolver
	help     help.Model
	helpMap  keymap.HelpMap
	events   *eventCache
	store    EventStore
	logger   *zap.Logger
	clock    func() time.Time
	loc      *time.Location
	release  func()

	popupType PopupType
	popup     popup.Popup

	next     *agenda.Event
	ErrorMsg string
	Width    int
	Height   int
}

// New restores the last view, or builds the configured one, and wires the
// timetable view to the event store.
func New(deps Deps) Model {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	if deps.Location == nil {
		deps.Location = time.Local
	}
	cfg := deps.Config
	if cfg == nil {
		cfg = &config.Config{}
	}

	var errorMsg string
	value := initialValue(cfg, deps.Clock().In(deps.Location))
	saved, err := deps.State.GetView()
	switch {
	case err != nil:
		errorMsg = errmsg.Format(errmsg.OpViewLoad, err)
		deps.Logger.Warn("restore view", zap.Error(err))
	case saved != nil:
		value = restoredValue(*saved, cfg)
	}
	dates := datecontroller.New(value)

	events := &eventCache{byDay: make(map[int][]agenda.Event)}
	physics := cfg.GetPhysicsConfig()
	view := multidayview.New(multidayview.Options{
		Dates: dates,
		Physics: scroll.PagingPhysics{
			Drag:      physics.Drag,
			Stiffness: physics.Stiffness,
			DeadZone:  physics.DeadZone,
		},
		WheelStep:    physics.WheelStep,
		FirstWeekday: cfg.GetFirstWeekday(),
		Builder:      multidayview.AgendaBuilder(events.forDay),
		Painter:      deps.Painter,
		Clock:        deps.Clock,
		Logger:       deps.Logger,
	})

	stateMgr := deps.State
	release := dates.Subscribe(func(v paging.Value) {
		saveView(stateMgr, v)
	})

	return Model{
		view:     view,
		dates:    dates,
		keys:     keymap.Default(),
		help:     help.New(),
		helpMap:  keymap.NewHelpMap(keymap.ActionScrollLeft, keymap.ActionScrollRight, keymap.ActionToday, keymap.ActionGoto, keymap.ActionCycleRange, keymap.ActionHelp, keymap.ActionQuit),
		events:   events,
		store:    deps.Events,
		logger:   deps.Logger,
		clock:    deps.Clock,
		loc:      deps.Location,
		release:  release,
		ErrorMsg: errorMsg,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.view.Init(), m.ensureEvents(), m.loadNext())
}

// Dates returns the controller holding the visible page.
func (m Model) Dates() *datecontroller.Controller { return m.dates }

// Close stops the view and releases the state subscription. The state
// manager is closed by its owner.
func (m *Model) Close() {
	if m.release != nil {
		m.release()
		m.release = nil
	}
	m.view.Close()
}

func (m *Model) openHelp() {
	h := helpbindings.New()
	m.popup = &h
	m.popupType = PopupHelp
	m.resizePopup()
}

func (m *Model) openGoto() tea.Cmd {
	in := textinput.New()
	in.Start("Go to date", "YYYY-MM-DD or today", "", PopupGoto)
	m.popup = &in
	m.popupType = PopupGoto
	m.resizePopup()
	return in.Init()
}

func (m *Model) closePopup() {
	m.popup = nil
	m.popupType = PopupNone
}
