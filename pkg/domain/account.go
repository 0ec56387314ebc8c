// Package domain holds the client-side model of the ledger service's accounts
// and transactions. The ledger service is authoritative for ids, balances and
// transaction records; this layer only mirrors what the server returned last.
package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrAmountMustBePositive is returned when a deposit, withdrawal or transfer
// amount is zero or negative.
var ErrAmountMustBePositive = errors.New("amount must be positive")

// Account mirrors one ledger account as last reported by the server.
// The id is server-assigned and immutable; the balance is a server-computed
// snapshot and is never derived locally.
type Account struct {
	ID                int64           `json:"id"`
	AccountHolderName string          `json:"accountHolderName"`
	Balance           decimal.Decimal `json:"balance"`
}

// Transaction mirrors one ledger transaction. Transactions are immutable once
// fetched; the client never constructs them. TransactionType is an opaque
// server label (DEPOSIT, WITHDRAW, TRANSFER) and Timestamp is displayed
// verbatim, never parsed.
type Transaction struct {
	ID              int64           `json:"id"`
	AccountID       int64           `json:"accountId"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionType string          `json:"transactionType"`
	Timestamp       string          `json:"timestamp"`
}
