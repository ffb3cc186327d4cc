// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

const (
	// Agenda
	OpEventsLoad   Op = "load events"
	OpEventAdd     Op = "add event"
	OpEventDelete  Op = "delete event"
	OpNextEventGet Op = "find next event"

	// View state
	OpViewLoad Op = "restore view"
	OpViewSave Op = "save view"
	OpGotoDate Op = "go to date"

	// Startup
	OpConfigLoad Op = "load configuration"
	OpStateOpen  Op = "open database"
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message naming the subject of op.
func FormatWith(op Op, subject string, err error) string {
	if err == nil {
		return ""
	}
	if subject == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, subject, err)
}
