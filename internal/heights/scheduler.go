package heights

// Scheduler receives layout requests from a Tracker.
type Scheduler interface {
	MarkNeedsLayout()
}

// FrameScheduler coalesces layout requests until the next Flush.
type FrameScheduler struct {
	layout  func()
	pending bool
}

// NewFrameScheduler returns a scheduler running layout at most once per
// Flush.
func NewFrameScheduler(layout func()) *FrameScheduler {
	return &FrameScheduler{layout: layout}
}

// MarkNeedsLayout requests a layout pass for the current frame.
func (s *FrameScheduler) MarkNeedsLayout() {
	s.pending = true
}

// Pending reports whether a layout pass is requested.
func (s *FrameScheduler) Pending() bool {
	return s.pending
}

// Flush runs the pending layout pass, if any, and reports whether it ran.
func (s *FrameScheduler) Flush() bool {
	if !s.pending {
		return false
	}
	s.pending = false
	if s.layout != nil {
		s.layout()
	}
	return true
}
