package session

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/shivabank/console/pkg/domain"
	"github.com/shivabank/console/pkg/eventbus"
)

// Session is the explicit, owned state object of the view-state layer. It
// wraps the snapshot store, the advisory busy flag, and the event bus that
// fans snapshot changes out to views.
type Session struct {
	store *Store
	bus   eventbus.Bus
	busy  atomic.Bool
}

// New creates a session publishing snapshot changes on bus.
func New(bus eventbus.Bus) *Session {
	return &Session{
		store: NewStore(),
		bus:   bus,
	}
}

// Begin marks an operation as in flight. The flag is advisory: it disables
// resubmission in the UI but is not a lock, so two operations started before
// it takes visible effect can still interleave.
func (s *Session) Begin() {
	s.busy.Store(true)
}

// End clears the busy flag. It runs on success and failure alike.
func (s *Session) End() {
	s.busy.Store(false)
}

// Busy reports whether an operation is in flight.
func (s *Session) Busy() bool {
	return s.busy.Load()
}

// ReplaceAccounts installs a full account snapshot and notifies subscribers.
func (s *Session) ReplaceAccounts(ctx context.Context, accounts []domain.Account) {
	s.store.ReplaceAccounts(accounts)
	s.bus.Publish(ctx, AccountsReplaced{Count: len(accounts), At: s.store.LastRefreshed()}) //nolint:errcheck
}

// ReplaceTransactions installs a transaction snapshot and notifies subscribers.
func (s *Session) ReplaceTransactions(ctx context.Context, accountID int64, txs []domain.Transaction) {
	s.store.ReplaceTransactions(accountID, txs)
	s.bus.Publish(ctx, TransactionsReplaced{AccountID: accountID, Count: len(txs)}) //nolint:errcheck
}

// Accounts returns a copy of the current account snapshot.
func (s *Session) Accounts() []domain.Account {
	return s.store.Accounts()
}

// Transactions returns a copy of the current transaction snapshot and its account id.
func (s *Session) Transactions() ([]domain.Transaction, int64) {
	return s.store.Transactions()
}

// LastRefreshed reports when the account snapshot was last replaced.
func (s *Session) LastRefreshed() time.Time {
	return s.store.LastRefreshed()
}
