package controller

import (
	"context"
	"fmt"

	"github.com/shivabank/console/pkg/currency"
	"github.com/shivabank/console/pkg/domain"
	"github.com/shivabank/console/pkg/notify"
)

// Transfer moves funds between two accounts, then re-fetches the account list
// so both sides of the server's two-sided update land in the snapshot. The
// server's response may be a confirmation string or a structured object;
// whichever it is gets rendered into the outcome detail.
func (c *Controllers) Transfer(ctx context.Context, req TransferRequest) Outcome {
	if err := c.validate.Struct(req); err != nil {
		return c.skip("transfer", err)
	}
	if req.Amount.Sign() <= 0 {
		return c.skip("transfer", fmt.Errorf("transfer of %s: %w", req.Amount, domain.ErrAmountMustBePositive))
	}

	c.session.Begin()
	defer c.session.End()

	res, err := c.ledger.Transfer(ctx, req.FromAccountID, req.ToAccountID, req.Amount)
	if err != nil {
		return c.fail("transfer", "Transfer failed: "+err.Error(), "Transfer failed", err)
	}

	c.refreshAfterMutation(ctx, "transfer")
	c.notifier.Notify("Transfer completed", notify.Success)
	return Outcome{
		Message: fmt.Sprintf("You transferred %s from Account #%d to Account #%d.",
			currency.Format(req.Amount), req.FromAccountID, req.ToAccountID),
		Detail: res.Display(),
	}
}
