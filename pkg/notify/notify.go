// Package notify implements the single-slot status message ("toast") shown
// after every operation. Exactly one message is visible at a time; a new one
// replaces the current message and restarts the dismissal timer. This is a
// presentation primitive, not a log.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shivabank/console/pkg/eventbus"
)

// Kind controls presentation of a toast, nothing else.
type Kind int

const (
	// Success styles the toast as a confirmation.
	Success Kind = iota
	// Error styles the toast as a failure.
	Error
)

const (
	// EventToastShown fires when a toast becomes visible.
	EventToastShown = "notify.toast.shown"
	// EventToastDismissed fires when the visible toast times out.
	EventToastDismissed = "notify.toast.dismissed"
)

// Toast is one visible status message.
type Toast struct {
	ID      uuid.UUID
	Message string
	Kind    Kind
}

// ToastShown announces a newly visible toast.
type ToastShown struct{ Toast Toast }

// Type implements eventbus.Event.
func (ToastShown) Type() string { return EventToastShown }

// ToastDismissed announces that the visible toast timed out. Replacement does
// not dismiss; it shows.
type ToastDismissed struct{ ID uuid.UUID }

// Type implements eventbus.Event.
func (ToastDismissed) Type() string { return EventToastDismissed }

// Notifier holds the single toast slot.
type Notifier struct {
	mu       sync.Mutex
	current  *Toast
	timer    *time.Timer
	duration time.Duration
	bus      eventbus.Bus
}

// New creates a notifier with the given default display duration.
func New(duration time.Duration, bus eventbus.Bus) *Notifier {
	return &Notifier{
		duration: duration,
		bus:      bus,
	}
}

// Notify shows a message for the default duration, replacing any current one.
func (n *Notifier) Notify(message string, kind Kind) {
	n.NotifyFor(message, kind, n.duration)
}

// NotifyFor shows a message for the given duration. The previous message's
// dismissal timer is stopped; last write wins.
func (n *Notifier) NotifyFor(message string, kind Kind, duration time.Duration) {
	n.mu.Lock()
	if n.timer != nil {
		n.timer.Stop()
	}
	t := Toast{ID: uuid.New(), Message: message, Kind: kind}
	n.current = &t
	n.timer = time.AfterFunc(duration, func() { n.dismiss(t.ID) })
	n.mu.Unlock()

	n.bus.Publish(context.Background(), ToastShown{Toast: t}) //nolint:errcheck
}

// Current returns the visible toast, or nil when none is showing.
func (n *Notifier) Current() *Toast {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return nil
	}
	t := *n.current
	return &t
}

func (n *Notifier) dismiss(id uuid.UUID) {
	n.mu.Lock()
	// A replacement may have landed between the timer firing and this lock.
	if n.current == nil || n.current.ID != id {
		n.mu.Unlock()
		return
	}
	n.current = nil
	n.mu.Unlock()

	n.bus.Publish(context.Background(), ToastDismissed{ID: id}) //nolint:errcheck
}
