// Package eventbus defines the contract views use to observe session state
// changes without being polled by the operation layer.
package eventbus

import "context"

// Event is implemented by every published event.
type Event interface {
	// Type identifies the event for subscription routing.
	Type() string
}

// HandlerFunc handles a single event delivery.
type HandlerFunc func(ctx context.Context, e Event) error

// Bus publishes events to subscribed handlers.
type Bus interface {
	// Subscribe registers a handler for a specific event type.
	Subscribe(eventType string, handler HandlerFunc)
	// Publish dispatches the event to all handlers registered for its type.
	Publish(ctx context.Context, e Event) error
}
