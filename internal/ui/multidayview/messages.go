package multidayview

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/timetable/internal/nowindicator"
)

// frameInterval paces settle and fling animations.
const frameInterval = time.Second / 60

// wheelSettleDelay is how long the wheel must rest before the view settles
// on a whole page.
const wheelSettleDelay = 150 * time.Millisecond

// NowMsg carries a tick of the now indicator.
type NowMsg struct {
	At time.Time
}

type frameMsg struct {
	at         time.Time
	generation int
}

type wheelSettleMsg struct {
	generation int
}

func frameCmd(generation int) tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg{at: t, generation: generation}
	})
}

func wheelSettleCmd(generation int) tea.Cmd {
	return tea.Tick(wheelSettleDelay, func(time.Time) tea.Msg {
		return wheelSettleMsg{generation: generation}
	})
}

// waitForNow blocks until the painter delivers a tick or ends the
// subscription.
func waitForNow(sub *nowindicator.Subscription) tea.Cmd {
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case t := <-sub.C:
			return NowMsg{At: t}
		case <-sub.Done:
			return nil
		}
	}
}
