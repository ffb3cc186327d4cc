package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func loadEventsCmd(store EventStore, first, last int) tea.Cmd {
	return func() tea.Msg {
		events, err := store.ForPages(first, last)
		return EventsLoadedMsg{First: first, Last: last, Events: events, Err: err}
	}
}

func loadNextEventCmd(store EventStore, now time.Time) tea.Cmd {
	return func() tea.Msg {
		next, err := store.Next(now)
		return NextEventMsg{Event: next, Err: err}
	}
}

// ensureEvents starts loading the window around the visible range unless it
// is loaded or already on its way.
func (m *Model) ensureEvents() tea.Cmd {
	if m.store == nil {
		return nil
	}
	v := m.dates.Value()
	visibleFirst, visibleLast := v.FirstVisiblePage(), v.LastVisiblePage()
	if m.events.covers(visibleFirst, visibleLast) || m.events.pendingCovers(visibleFirst, visibleLast) {
		return nil
	}
	first, last := window(v)
	m.events.pending = true
	m.events.pendingFirst, m.events.pendingLast = first, last
	return loadEventsCmd(m.store, first, last)
}

func (m *Model) loadNext() tea.Cmd {
	if m.store == nil {
		return nil
	}
	return loadNextEventCmd(m.store, m.clock())
}
