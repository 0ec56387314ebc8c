package session

import "time"

const (
	// EventAccountsReplaced fires after a new account snapshot is installed.
	EventAccountsReplaced = "session.accounts.replaced"
	// EventTransactionsReplaced fires after a new transaction snapshot is installed.
	EventTransactionsReplaced = "session.transactions.replaced"
)

// AccountsReplaced announces a fresh account snapshot.
type AccountsReplaced struct {
	Count int
	At    time.Time
}

// Type implements eventbus.Event.
func (AccountsReplaced) Type() string { return EventAccountsReplaced }

// TransactionsReplaced announces a fresh transaction snapshot.
type TransactionsReplaced struct {
	AccountID int64
	Count     int
}

// Type implements eventbus.Event.
func (TransactionsReplaced) Type() string { return EventTransactionsReplaced }
