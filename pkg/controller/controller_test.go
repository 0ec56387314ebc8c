package controller_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infraeventbus "github.com/shivabank/console/infra/eventbus"
	"github.com/shivabank/console/internal/ledgertest"
	"github.com/shivabank/console/pkg/config"
	"github.com/shivabank/console/pkg/controller"
	"github.com/shivabank/console/pkg/ledger"
	"github.com/shivabank/console/pkg/notify"
	"github.com/shivabank/console/pkg/session"
)

type fixture struct {
	server   *ledgertest.Server
	bus      *infraeventbus.MemoryEventBus
	session  *session.Session
	notifier *notify.Notifier
	ctrl     *controller.Controllers
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	srv := ledgertest.New()
	baseURL := srv.Start(t)

	logger := slog.Default()
	bus := infraeventbus.NewWithMemory(logger)
	sess := session.New(bus)
	notifier := notify.New(time.Minute, bus)
	client := ledger.New(config.Ledger{BaseURL: baseURL, HTTPTimeout: 5 * time.Second}, logger)

	return &fixture{
		server:   srv,
		bus:      bus,
		session:  sess,
		notifier: notifier,
		ctrl:     controller.New(client, sess, notifier, logger),
	}
}

func (f *fixture) balanceOf(t *testing.T, id int64) decimal.Decimal {
	t.Helper()
	for _, a := range f.session.Accounts() {
		if a.ID == id {
			return a.Balance
		}
	}
	t.Fatalf("account %d not in snapshot", id)
	return decimal.Zero
}

func TestOpenAccountRefreshesSnapshot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out := f.ctrl.OpenAccount(ctx, controller.OpenAccountRequest{
		Name:    "Shiva Prasad",
		Balance: decimal.RequireFromString("250.75"),
	})

	require.True(t, out.OK(), "outcome: %+v", out)
	assert.Contains(t, out.Message, "opened for Shiva Prasad")
	assert.Contains(t, out.Message, "$250.75")

	accounts := f.session.Accounts()
	require.Len(t, accounts, 1)
	assert.Equal(t, int64(1), accounts[0].ID, "id is server-assigned")
	assert.Equal(t, "Shiva Prasad", accounts[0].AccountHolderName)
	assert.True(t, accounts[0].Balance.Equal(decimal.RequireFromString("250.75")))

	toast := f.notifier.Current()
	require.NotNil(t, toast)
	assert.Equal(t, "Account opened", toast.Message)
	assert.Equal(t, notify.Success, toast.Kind)

	assert.False(t, f.session.Busy(), "busy clears after success")
}

func TestOpenAccountEmptyNameIsSilentNoOp(t *testing.T) {
	f := newFixture(t)

	out := f.ctrl.OpenAccount(context.Background(), controller.OpenAccountRequest{
		Name:    "   ",
		Balance: decimal.NewFromInt(10),
	})

	assert.True(t, out.Skipped)
	assert.Empty(t, out.Message)
	assert.Nil(t, f.notifier.Current(), "validation failures do not toast")
	assert.Empty(t, f.session.Accounts(), "no request was sent")
}

func TestDepositThenWithdrawRestoresBalance(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.server.Seed("Shiva Prasad", 100)

	require.True(t, f.ctrl.RefreshAccounts(ctx).OK())
	before := f.balanceOf(t, id)

	amount := decimal.RequireFromString("33.33")
	require.True(t, f.ctrl.Deposit(ctx, controller.DepositRequest{AccountID: id, Amount: amount}).OK())
	require.True(t, f.ctrl.Withdraw(ctx, controller.WithdrawRequest{AccountID: id, Amount: amount}).OK())

	assert.True(t, f.balanceOf(t, id).Equal(before),
		"deposit then withdraw of the same amount restores the balance")
}

func TestDepositReportsNewBalance(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.server.Seed("Asha Rao", 50)

	out := f.ctrl.Deposit(ctx, controller.DepositRequest{
		AccountID: id,
		Amount:    decimal.NewFromInt(25),
	})

	require.True(t, out.OK())
	assert.Contains(t, out.Message, "Deposit of $25.00")
	assert.Contains(t, out.Message, "New balance: $75.00")
	assert.True(t, f.balanceOf(t, id).Equal(decimal.NewFromInt(75)),
		"snapshot reflects the refreshed server balance")
}

func TestTransferMovesFundsBothSides(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	from := f.server.Seed("Shiva Prasad", 100)
	to := f.server.Seed("Asha Rao", 50)

	out := f.ctrl.Transfer(ctx, controller.TransferRequest{
		FromAccountID: from,
		ToAccountID:   to,
		Amount:        decimal.NewFromInt(30),
	})

	require.True(t, out.OK(), "outcome: %+v", out)
	assert.Contains(t, out.Message, "You transferred $30.00 from Account #1 to Account #2.")
	assert.Equal(t, "Transfer Successfull", out.Detail, "plain-text server confirmation rendered verbatim")

	assert.True(t, f.balanceOf(t, from).Equal(decimal.NewFromInt(70)))
	assert.True(t, f.balanceOf(t, to).Equal(decimal.NewFromInt(80)))
}

func TestTransferValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  controller.TransferRequest
	}{
		{"missing from id", controller.TransferRequest{ToAccountID: 2, Amount: decimal.NewFromInt(5)}},
		{"missing to id", controller.TransferRequest{FromAccountID: 1, Amount: decimal.NewFromInt(5)}},
		{"zero amount", controller.TransferRequest{FromAccountID: 1, ToAccountID: 2}},
		{"negative amount", controller.TransferRequest{FromAccountID: 1, ToAccountID: 2, Amount: decimal.NewFromInt(-5)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := f.ctrl.Transfer(ctx, tt.req)
			assert.True(t, out.Skipped)
			assert.Nil(t, f.notifier.Current())
		})
	}
}

func TestFailedWithdrawLeavesStoreUntouched(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.server.Seed("Shiva Prasad", 100)
	require.True(t, f.ctrl.RefreshAccounts(ctx).OK())
	snapshotBefore := f.session.Accounts()

	out := f.ctrl.Withdraw(ctx, controller.WithdrawRequest{
		AccountID: 9999,
		Amount:    decimal.NewFromInt(10),
	})

	require.Error(t, out.Err)
	assert.Contains(t, out.Message, "Account does not exists",
		"server-reported text surfaces in the inline message")

	var serverErr *ledger.ServerError
	require.ErrorAs(t, out.Err, &serverErr)

	assert.Equal(t, snapshotBefore, f.session.Accounts(), "snapshot unchanged on failure")
	assert.True(t, f.balanceOf(t, id).Equal(decimal.NewFromInt(100)))

	toast := f.notifier.Current()
	require.NotNil(t, toast)
	assert.Equal(t, notify.Error, toast.Kind)
	assert.False(t, f.session.Busy(), "busy clears after failure")
}

func TestInsufficientFundsSurfacesServerText(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.server.Seed("Asha Rao", 20)

	out := f.ctrl.Withdraw(ctx, controller.WithdrawRequest{
		AccountID: id,
		Amount:    decimal.NewFromInt(500),
	})

	require.Error(t, out.Err)
	assert.Contains(t, out.Message, "Insufficient amount")
}

func TestLoadTransactions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.server.Seed("Shiva Prasad", 100)

	require.True(t, f.ctrl.Deposit(ctx, controller.DepositRequest{AccountID: id, Amount: decimal.NewFromInt(10)}).OK())
	require.True(t, f.ctrl.Withdraw(ctx, controller.WithdrawRequest{AccountID: id, Amount: decimal.NewFromInt(5)}).OK())

	out := f.ctrl.LoadTransactions(ctx, controller.LoadTransactionsRequest{AccountID: id})
	require.True(t, out.OK())

	txs, accountID := f.session.Transactions()
	assert.Equal(t, id, accountID)
	require.Len(t, txs, 2)
	assert.Equal(t, "DEPOSIT", txs[0].TransactionType)
	assert.Equal(t, "WITHDRAW", txs[1].TransactionType)
	assert.NotEmpty(t, txs[0].Timestamp)
}

func TestLoadTransactionsFailureKeepsPreviousSnapshot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.server.Seed("Shiva Prasad", 100)

	require.True(t, f.ctrl.Deposit(ctx, controller.DepositRequest{AccountID: id, Amount: decimal.NewFromInt(10)}).OK())
	require.True(t, f.ctrl.LoadTransactions(ctx, controller.LoadTransactionsRequest{AccountID: id}).OK())

	require.NoError(t, f.server.Stop())
	out := f.ctrl.LoadTransactions(ctx, controller.LoadTransactionsRequest{AccountID: id})
	require.Error(t, out.Err)

	txs, accountID := f.session.Transactions()
	assert.Equal(t, id, accountID)
	assert.Len(t, txs, 1)
}

func TestDeleteAccountSurfacesConfirmation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.server.Seed("Shiva Prasad", 100)

	out := f.ctrl.DeleteAccount(ctx, controller.DeleteAccountRequest{AccountID: id})
	require.True(t, out.OK())
	assert.Equal(t, "Account is deleted successfully!", out.Message)
	assert.Empty(t, f.session.Accounts(), "refresh after deletion empties the snapshot")
}

func TestSendRawRequest(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.server.Seed("Shiva Prasad", 100)

	out := f.ctrl.SendRaw(ctx, controller.RawRequest{Method: "get", PathSuffix: "/1"})
	require.True(t, out.OK(), "outcome: %+v", out)
	assert.Contains(t, out.Detail, `"accountHolderName": "Shiva Prasad"`)

	toast := f.notifier.Current()
	require.NotNil(t, toast)
	assert.Equal(t, "Request sent", toast.Message)
}

func TestSendRawRejectsInvalidJSONBody(t *testing.T) {
	f := newFixture(t)

	out := f.ctrl.SendRaw(context.Background(), controller.RawRequest{
		Method: "POST",
		Body:   "{not json",
	})

	require.Error(t, out.Err)
	toast := f.notifier.Current()
	require.NotNil(t, toast)
	assert.Equal(t, "Invalid JSON body", toast.Message)
	assert.Equal(t, notify.Error, toast.Kind)
}

func TestMutationsReplaceSnapshotViaEvents(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.server.Seed("Shiva Prasad", 100)

	f.bus.ClearPublished()
	require.True(t, f.ctrl.Deposit(ctx, controller.DepositRequest{AccountID: id, Amount: decimal.NewFromInt(1)}).OK())

	var sawAccounts bool
	for _, e := range f.bus.Published() {
		if _, ok := e.(session.AccountsReplaced); ok {
			sawAccounts = true
		}
	}
	assert.True(t, sawAccounts, "mutating operations publish a fresh snapshot")
}

func TestGetAccountDoesNotTouchSnapshot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.server.Seed("Asha Rao", 42)

	out := f.ctrl.GetAccount(ctx, controller.GetAccountRequest{AccountID: id})
	require.True(t, out.OK())
	assert.Contains(t, out.Message, "Asha Rao")
	assert.Contains(t, out.Message, "$42.00")
	assert.Empty(t, f.session.Accounts(), "lookups do not install snapshots")
}
