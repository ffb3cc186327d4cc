package app

import (
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/timetable/internal/app/handler"
	"github.com/llehouerou/timetable/internal/errmsg"
	"github.com/llehouerou/timetable/internal/keymap"
	"github.com/llehouerou/timetable/internal/ui"
	"github.com/llehouerou/timetable/internal/ui/action"
	"github.com/llehouerou/timetable/internal/ui/headerbar"
	"github.com/llehouerou/timetable/internal/ui/helpbindings"
	"github.com/llehouerou/timetable/internal/ui/layout"
	"github.com/llehouerou/timetable/internal/ui/multidayview"
	"github.com/llehouerou/timetable/internal/ui/popup"
	"github.com/llehouerou/timetable/internal/ui/textinput"
)

var errInvalidDate = errors.New("want YYYY-MM-DD or today")

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.layoutView()
		m.resizePopup()

	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg))

	case tea.MouseMsg:
		if m.popup == nil {
			cmds = append(cmds, m.updateView(msg))
		}

	case action.Msg:
		cmds = append(cmds, m.handleAction(msg))

	case EventsLoadedMsg:
		m.handleEventsLoaded(msg)

	case NextEventMsg:
		if msg.Err != nil {
			m.logger.Warn("next event", zap.Error(msg.Err))
			break
		}
		m.next = msg.Event

	case multidayview.NowMsg:
		cmds = append(cmds, m.updateView(msg), m.loadNext())

	default:
		if m.popup != nil {
			var cmd tea.Cmd
			m.popup, cmd = m.popup.Update(msg)
			cmds = append(cmds, cmd)
		}
		cmds = append(cmds, m.updateView(msg))
	}

	cmds = append(cmds, m.ensureEvents())
	return m, tea.Batch(cmds...)
}

func (m *Model) updateView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.popup != nil {
		var cmd tea.Cmd
		m.popup, cmd = m.popup.Update(msg)
		return cmd
	}

	if m.ErrorMsg != "" {
		m.ErrorMsg = ""
		m.layoutView()
	}

	a := m.keys.Resolve(msg.String())
	result := handler.Chain(
		func() handler.Result { return m.handleGlobal(a) },
		func() handler.Result { return handler.Handled(m.updateView(msg)) },
	)
	return result.Cmd
}

func (m *Model) handleGlobal(a keymap.Action) handler.Result {
	switch a {
	case keymap.ActionQuit:
		return handler.Handled(tea.Quit)
	case keymap.ActionHelp:
		m.openHelp()
		return handler.HandledNoCmd
	case keymap.ActionGoto:
		return handler.Handled(m.openGoto())
	}
	return handler.NotHandled
}

func (m *Model) handleAction(msg action.Msg) tea.Cmd {
	switch a := msg.Action.(type) {
	case helpbindings.Close:
		m.closePopup()
	case textinput.Result:
		m.closePopup()
		if a.Canceled || a.Context != PopupGoto {
			return nil
		}
		m.gotoDate(a.Text)
	default:
		m.logger.Debug("unhandled action",
			zap.String("source", msg.Source),
			zap.String("type", a.ActionType()))
	}
	return nil
}

// gotoDate moves the view to text, a YYYY-MM-DD date or "today".
func (m *Model) gotoDate(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	date, err := parseDate(text, m.clock().In(m.loc))
	if err != nil {
		m.ErrorMsg = errmsg.FormatWith(errmsg.OpGotoDate, text, err)
		m.layoutView()
		return
	}
	m.view.JumpTo(date)
}

func parseDate(text string, now time.Time) (time.Time, error) {
	if strings.EqualFold(text, "today") {
		return now, nil
	}
	date, err := time.ParseInLocation(time.DateOnly, text, now.Location())
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	return date, nil
}

func (m *Model) handleEventsLoaded(msg EventsLoadedMsg) {
	if msg.First == m.events.pendingFirst && msg.Last == m.events.pendingLast {
		m.events.pending = false
	}
	if msg.Err != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpEventsLoad, msg.Err)
		m.logger.Error("load events",
			zap.Int("first", msg.First),
			zap.Int("last", msg.Last),
			zap.Error(msg.Err))
		m.layoutView()
		// Remember the window as empty so it is not retried until the
		// view leaves it.
		m.events.store(msg.First, msg.Last, nil)
		m.view.Invalidate()
		return
	}
	m.events.store(msg.First, msg.Last, msg.Events)
	m.view.Invalidate()
}

func (m *Model) contentOpts() layout.ContentOpts {
	opts := layout.ContentOpts{
		HeaderBarHeight: headerbar.Height,
		StatusHeight:    ui.StatusHeight,
		HelpHeight:      ui.HelpHeight,
	}
	if m.ErrorMsg != "" {
		opts.ErrorCount = 1
	}
	return opts
}

func (m *Model) layoutView() {
	if m.Width <= 0 {
		return
	}
	m.view.SetSize(m.Width, layout.ContentHeight(m.Height, m.contentOpts()))
}

func (m *Model) resizePopup() {
	if m.popup == nil || m.Width <= 0 {
		return
	}
	w, h := m.Width*popup.SizeLarge.WidthPct/100, m.Height*popup.SizeLarge.HeightPct/100
	if m.popupType == PopupGoto {
		w, h = min(popup.SizeAuto.MaxWidth, m.Width-4), 5
	}
	m.popup.SetSize(max(w-4, 1), max(h-2, 1))
}
