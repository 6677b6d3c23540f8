package domain

import "time"

// Severity classifies a user-facing status message.
type Severity string

const (
	SeverityInfo    Severity = "INFO"
	SeveritySuccess Severity = "SUCCESS"
	SeverityDanger  Severity = "DANGER"
)

// Notification is the single-slot, auto-expiring status message shared by
// all workflows. At most one live instance exists system-wide.
type Notification struct {
	Message  string
	Severity Severity
	Expiry   time.Time
}

// Notifier is the port through which workflows surface status messages.
// Setting a new message replaces any currently visible one.
type Notifier interface {
	Set(message string, severity Severity)
}
