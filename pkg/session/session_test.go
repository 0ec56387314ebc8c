package session_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infraeventbus "github.com/shivabank/console/infra/eventbus"
	"github.com/shivabank/console/pkg/domain"
	"github.com/shivabank/console/pkg/session"
)

func newSession(t *testing.T) (*session.Session, *infraeventbus.MemoryEventBus) {
	t.Helper()
	bus := infraeventbus.NewWithMemory(slog.Default())
	return session.New(bus), bus
}

func accounts(ids ...int64) []domain.Account {
	out := make([]domain.Account, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.Account{ID: id, AccountHolderName: "holder", Balance: decimal.NewFromInt(id * 10)})
	}
	return out
}

func TestReplaceAccountsIsFullReplace(t *testing.T) {
	s, _ := newSession(t)
	ctx := context.Background()

	s.ReplaceAccounts(ctx, accounts(1, 2, 3))
	s.ReplaceAccounts(ctx, accounts(4))

	got := s.Accounts()
	require.Len(t, got, 1)
	assert.Equal(t, int64(4), got[0].ID)
}

func TestReplaceTransactionsTracksAccountID(t *testing.T) {
	s, _ := newSession(t)
	ctx := context.Background()

	s.ReplaceTransactions(ctx, 7, []domain.Transaction{{ID: 1, AccountID: 7}})
	s.ReplaceTransactions(ctx, 9, []domain.Transaction{{ID: 2, AccountID: 9}, {ID: 3, AccountID: 9}})

	txs, accountID := s.Transactions()
	assert.Equal(t, int64(9), accountID)
	require.Len(t, txs, 2)
}

func TestAccountsReturnsACopy(t *testing.T) {
	s, _ := newSession(t)
	s.ReplaceAccounts(context.Background(), accounts(1))

	got := s.Accounts()
	got[0].Balance = decimal.NewFromInt(999999)

	fresh := s.Accounts()
	assert.True(t, fresh[0].Balance.Equal(decimal.NewFromInt(10)))
}

func TestReplacePublishesEvents(t *testing.T) {
	s, bus := newSession(t)
	ctx := context.Background()

	s.ReplaceAccounts(ctx, accounts(1, 2))
	s.ReplaceTransactions(ctx, 1, nil)

	published := bus.Published()
	require.Len(t, published, 2)
	ar, ok := published[0].(session.AccountsReplaced)
	require.True(t, ok)
	assert.Equal(t, 2, ar.Count)
	assert.False(t, ar.At.IsZero())

	tr, ok := published[1].(session.TransactionsReplaced)
	require.True(t, ok)
	assert.Equal(t, int64(1), tr.AccountID)
	assert.Equal(t, 0, tr.Count)
}

func TestBusyFlagIsAdvisory(t *testing.T) {
	s, _ := newSession(t)

	assert.False(t, s.Busy())
	s.Begin()
	assert.True(t, s.Busy())
	s.End()
	assert.False(t, s.Busy())
}

func TestLastRefreshedZeroBeforeFirstFetch(t *testing.T) {
	s, _ := newSession(t)
	assert.True(t, s.LastRefreshed().IsZero())

	s.ReplaceAccounts(context.Background(), accounts(1))
	assert.False(t, s.LastRefreshed().IsZero())
}
