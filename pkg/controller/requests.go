package controller

import "github.com/shopspring/decimal"

// OpenAccountRequest opens a new account. The opening balance is sent as
// entered; the server is authoritative for what it accepts.
type OpenAccountRequest struct {
	Name    string `validate:"required"`
	Balance decimal.Decimal
}

// GetAccountRequest looks up one account.
type GetAccountRequest struct {
	AccountID int64 `validate:"gt=0"`
}

// DepositRequest adds funds to an account.
type DepositRequest struct {
	AccountID int64 `validate:"gt=0"`
	Amount    decimal.Decimal
}

// WithdrawRequest removes funds from an account.
type WithdrawRequest struct {
	AccountID int64 `validate:"gt=0"`
	Amount    decimal.Decimal
}

// TransferRequest moves funds between two accounts.
type TransferRequest struct {
	FromAccountID int64 `validate:"gt=0"`
	ToAccountID   int64 `validate:"gt=0"`
	Amount        decimal.Decimal
}

// LoadTransactionsRequest fetches one account's history.
type LoadTransactionsRequest struct {
	AccountID int64 `validate:"gt=0"`
}

// DeleteAccountRequest removes an account.
type DeleteAccountRequest struct {
	AccountID int64 `validate:"gt=0"`
}

// RawRequest is the debug console passthrough: an arbitrary request against
// the accounts resource.
type RawRequest struct {
	Method     string `validate:"required"`
	PathSuffix string
	Body       string
}
