// Package view holds the presentational routing between the console's three
// views and the terminal rendering helpers. Nothing in this package fetches
// data; fetching belongs to the operation controllers.
package view

import (
	"context"
	"sync"

	"github.com/shivabank/console/pkg/eventbus"
)

// View is one of the console's screens.
type View int

const (
	// Dashboard is the initial view.
	Dashboard View = iota
	// Accounts hosts the open/inspect/deposit/withdraw forms.
	Accounts
	// Transactions hosts the transfer form and the history table.
	Transactions
)

// String returns the navigation label of the view.
func (v View) String() string {
	switch v {
	case Accounts:
		return "Accounts"
	case Transactions:
		return "Transfers & History"
	default:
		return "Overview"
	}
}

// EventViewChanged fires when the active view changes.
const EventViewChanged = "view.changed"

// ViewChanged announces a navigation.
type ViewChanged struct {
	From View
	To   View
}

// Type implements eventbus.Event.
func (ViewChanged) Type() string { return EventViewChanged }

// Navigator selects exactly one active view at a time. Switching views never
// triggers a fetch by itself.
type Navigator struct {
	mu     sync.Mutex
	active View
	bus    eventbus.Bus
}

// NewNavigator creates a navigator starting on the Dashboard view.
func NewNavigator(bus eventbus.Bus) *Navigator {
	return &Navigator{active: Dashboard, bus: bus}
}

// Go activates the given view.
func (n *Navigator) Go(ctx context.Context, v View) {
	n.mu.Lock()
	from := n.active
	n.active = v
	n.mu.Unlock()

	if from != v {
		n.bus.Publish(ctx, ViewChanged{From: from, To: v}) //nolint:errcheck
	}
}

// Active returns the currently active view.
func (n *Navigator) Active() View {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.active
}
