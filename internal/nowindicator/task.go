package nowindicator

import (
	"sync"
	"time"
)

// TaskState is the state of a Task.
type TaskState int

const (
	TaskIdle TaskState = iota
	TaskScheduled
	TaskCancelled
)

func (s TaskState) String() string {
	switch s {
	case TaskScheduled:
		return "scheduled"
	case TaskCancelled:
		return "cancelled"
	default:
		return "idle"
	}
}

// Timer is the part of *time.Timer a Task needs.
type Timer interface {
	Stop() bool
}

// AfterFunc starts a timer calling fn after d.
type AfterFunc func(d time.Duration, fn func()) Timer

func realAfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// Task runs at most one pending callback. Scheduling again replaces the
// pending callback.
type Task struct {
	mu         sync.Mutex
	afterFunc  AfterFunc
	timer      Timer
	state      TaskState
	generation uint64
}

// NewTask returns an idle task. A nil afterFunc uses time.AfterFunc.
func NewTask(afterFunc AfterFunc) *Task {
	if afterFunc == nil {
		afterFunc = realAfterFunc
	}
	return &Task{afterFunc: afterFunc}
}

// State returns the current state.
func (t *Task) State() TaskState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Schedule cancels any pending callback and arms fn to run after delay.
func (t *Task) Schedule(delay time.Duration, fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
	t.generation++
	gen := t.generation
	t.state = TaskScheduled
	t.timer = t.afterFunc(delay, func() {
		t.mu.Lock()
		if t.generation != gen || t.state != TaskScheduled {
			t.mu.Unlock()
			return
		}
		t.state = TaskIdle
		t.timer = nil
		t.mu.Unlock()
		fn()
	})
}

// Cancel drops the pending callback, if any.
func (t *Task) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != TaskScheduled {
		return
	}
	t.stopLocked()
	t.generation++
	t.state = TaskCancelled
}

func (t *Task) stopLocked() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
