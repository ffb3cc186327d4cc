package nowindicator

import "time"

// Subscription delivers ticks of the current time. Only the latest tick is
// kept when the reader falls behind.
type Subscription struct {
	C    <-chan time.Time
	Done <-chan struct{}

	ch     chan time.Time
	doneCh chan struct{}
}

func newSubscription() *Subscription {
	s := &Subscription{
		ch:     make(chan time.Time, 1),
		doneCh: make(chan struct{}),
	}
	s.C = s.ch
	s.Done = s.doneCh
	return s
}

// send delivers t without blocking, replacing a stale pending tick.
func (s *Subscription) send(t time.Time) {
	select {
	case s.ch <- t:
		return
	default:
	}
	select {
	case <-s.ch:
	default:
	}
	select {
	case s.ch <- t:
	default:
	}
}

func (s *Subscription) close() {
	close(s.doneCh)
}
