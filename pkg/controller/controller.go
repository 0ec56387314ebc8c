// Package controller ties each user action to its request, state update and
// notification. Every operation follows the same template: validate locally,
// mark the session busy, call the ledger, on success update the session and
// re-fetch the account list, on failure report without touching the session,
// and clear the busy flag either way.
package controller

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/shivabank/console/pkg/ledger"
	"github.com/shivabank/console/pkg/notify"
	"github.com/shivabank/console/pkg/session"
)

// Outcome is the per-operation result surfaced in that operation's own result
// area. Skipped outcomes come from local validation failures: no request was
// sent and nothing should be displayed.
type Outcome struct {
	// Message is the human-readable inline result, success or failure.
	Message string
	// Detail carries a rendered server response when the operation surfaces
	// one (transfer confirmations, raw requests).
	Detail string
	// Err is set on failure.
	Err error
	// Skipped marks a silent local-validation no-op.
	Skipped bool
}

// OK reports whether the operation succeeded.
func (o Outcome) OK() bool {
	return o.Err == nil && !o.Skipped
}

// Controllers hosts all user operations against one session.
type Controllers struct {
	ledger   *ledger.Client
	session  *session.Session
	notifier *notify.Notifier
	validate *validator.Validate
	logger   *slog.Logger
}

// New wires the controllers to their collaborators.
func New(lc *ledger.Client, s *session.Session, n *notify.Notifier, logger *slog.Logger) *Controllers {
	return &Controllers{
		ledger:   lc,
		session:  s,
		notifier: n,
		validate: validator.New(),
		logger:   logger.With("component", "controller"),
	}
}

// RefreshAccounts re-fetches the full account list and replaces the session
// snapshot. It backs the explicit refresh action and runs after every
// mutating operation so the views track server-computed balances.
func (c *Controllers) RefreshAccounts(ctx context.Context) Outcome {
	c.session.Begin()
	defer c.session.End()

	if err := c.refreshAccounts(ctx); err != nil {
		return c.fail("refresh accounts", "Unable to refresh accounts: "+err.Error(),
			"Unable to refresh accounts: "+err.Error(), err)
	}
	c.notifier.Notify("Dashboard updated", notify.Success)
	return Outcome{Message: "Dashboard updated"}
}

// refreshAccounts is the store-updating fetch shared by the mutating
// operations. Callers hold the busy flag already.
func (c *Controllers) refreshAccounts(ctx context.Context) error {
	accounts, err := c.ledger.ListAccounts(ctx)
	if err != nil {
		return err
	}
	c.session.ReplaceAccounts(ctx, accounts)
	return nil
}

// refreshAfterMutation re-fetches the account list after a successful
// mutating call. A failed refresh does not fail the operation; the stale
// snapshot is reported in the log and the next refresh will catch up.
func (c *Controllers) refreshAfterMutation(ctx context.Context, op string) {
	if err := c.refreshAccounts(ctx); err != nil {
		c.logger.Warn("account refresh after mutation failed", "op", op, "error", err)
	}
}

// fail reports a transport or server failure: an inline message for the
// operation's result area plus an error toast. The session is left untouched.
func (c *Controllers) fail(op, inline, toast string, err error) Outcome {
	c.logger.Error(op+" failed", "error", err)
	c.notifier.Notify(toast, notify.Error)
	return Outcome{Message: inline, Err: err}
}

// skip aborts an operation on local validation failure: no request, no toast.
func (c *Controllers) skip(op string, err error) Outcome {
	c.logger.Debug(op+" input rejected", "error", err)
	return Outcome{Err: err, Skipped: true}
}
