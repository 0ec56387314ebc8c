package controller

import (
	"context"
	"fmt"

	"github.com/shivabank/console/pkg/notify"
)

// LoadTransactions fetches one account's history and replaces the transaction
// snapshot. On failure the previous snapshot stays in place.
func (c *Controllers) LoadTransactions(ctx context.Context, req LoadTransactionsRequest) Outcome {
	if err := c.validate.Struct(req); err != nil {
		return c.skip("load transactions", err)
	}

	c.session.Begin()
	defer c.session.End()

	txs, err := c.ledger.ListTransactions(ctx, req.AccountID)
	if err != nil {
		return c.fail("load transactions", "Unable to load transactions: "+err.Error(),
			"Unable to load transactions", err)
	}

	c.session.ReplaceTransactions(ctx, req.AccountID, txs)
	c.notifier.Notify("Transactions loaded", notify.Success)
	return Outcome{Message: fmt.Sprintf("Loaded %d transactions for Account #%d.", len(txs), req.AccountID)}
}
