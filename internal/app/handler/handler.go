// Package handler chains key handlers until one claims the key.
package handler

import tea "github.com/charmbracelet/bubbletea"

// Result is the outcome of a key handler.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled passes the key to the next handler.
var NotHandled = Result{}

// HandledNoCmd claims the key without a command.
var HandledNoCmd = Result{Handled: true}

// Handled claims the key and returns cmd.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// Handler attempts to handle the current key.
type Handler func() Result

// Chain runs handlers in order and returns the first handled result, or
// NotHandled.
func Chain(handlers ...Handler) Result {
	for _, h := range handlers {
		if r := h(); r.Handled {
			return r
		}
	}
	return NotHandled
}
