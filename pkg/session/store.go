// Package session owns the client's mutable state for one user session: the
// account and transaction snapshots, the advisory busy flag, and the events
// views subscribe to. Nothing here survives the process; durable state lives
// on the ledger service.
package session

import (
	"sync"
	"time"

	"github.com/shivabank/console/pkg/domain"
)

// Store holds at most one authoritative account list and at most one
// transaction list (for whichever account was last queried). Every successful
// fetch fully replaces the previous list; overlapping replaces resolve by
// last-write-wins in call-completion order.
type Store struct {
	mu            sync.RWMutex
	accounts      []domain.Account
	transactions  []domain.Transaction
	txAccountID   int64
	lastRefreshed time.Time
}

// NewStore creates an empty snapshot store.
func NewStore() *Store {
	return &Store{}
}

// ReplaceAccounts installs a full account snapshot, discarding the previous one.
func (s *Store) ReplaceAccounts(accounts []domain.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = append([]domain.Account{}, accounts...)
	s.lastRefreshed = time.Now()
}

// ReplaceTransactions installs the transaction snapshot for accountID,
// discarding whatever account's history was held before.
func (s *Store) ReplaceTransactions(accountID int64, txs []domain.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append([]domain.Transaction{}, txs...)
	s.txAccountID = accountID
}

// Accounts returns a copy of the current account snapshot.
func (s *Store) Accounts() []domain.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Account{}, s.accounts...)
}

// Transactions returns a copy of the current transaction snapshot and the
// account id it belongs to. The id is zero when nothing has been fetched yet.
func (s *Store) Transactions() ([]domain.Transaction, int64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Transaction{}, s.transactions...), s.txAccountID
}

// LastRefreshed reports when the account snapshot was last replaced.
// Zero when no fetch has succeeded yet.
func (s *Store) LastRefreshed() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastRefreshed
}
