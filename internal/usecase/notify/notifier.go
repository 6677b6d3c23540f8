// Package notify owns the single user-facing status slot.
package notify

import (
	"sync"
	"time"

	"github.com/ombank/teller/internal/domain"
)

// DefaultTTL is how long a notification stays visible before auto-clearing.
const DefaultTTL = 5 * time.Second

// Notifier holds at most one live notification. Setting a new message
// cancels the pending auto-clear timer and re-arms it, so a superseded
// message can never clear its successor.
type Notifier struct {
	mu      sync.Mutex
	ttl     time.Duration
	current *domain.Notification
	timer   *time.Timer
}

// NewNotifier creates a Notifier with the given time-to-live. A
// non-positive ttl falls back to DefaultTTL.
func NewNotifier(ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Notifier{ttl: ttl}
}

// Set replaces the current notification and re-arms the auto-clear timer.
func (n *Notifier) Set(message string, severity domain.Severity) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
	}

	notification := &domain.Notification{
		Message:  message,
		Severity: severity,
		Expiry:   time.Now().Add(n.ttl),
	}
	n.current = notification
	n.timer = time.AfterFunc(n.ttl, func() { n.expire(notification) })
}

// expire clears the slot only if the given notification is still the one
// on display; a timer that lost the race to a newer Set is a no-op.
func (n *Notifier) expire(notification *domain.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current == notification {
		n.current = nil
		n.timer = nil
	}
}

// Current returns a copy of the visible notification, or false when the
// slot is empty.
func (n *Notifier) Current() (domain.Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current == nil {
		return domain.Notification{}, false
	}
	return *n.current, true
}

// Clear cancels any pending timer and empties the slot. The owning screen
// calls this on teardown so no orphaned callback mutates state afterwards.
func (n *Notifier) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.current = nil
}

// Close releases the notifier's timer on process teardown.
func (n *Notifier) Close() {
	n.Clear()
}
