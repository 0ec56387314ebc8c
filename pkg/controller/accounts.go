package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/shivabank/console/pkg/currency"
	"github.com/shivabank/console/pkg/domain"
	"github.com/shivabank/console/pkg/notify"
)

// OpenAccount creates a new account, then re-fetches the account list so the
// dashboard shows the server-assigned id and balance.
func (c *Controllers) OpenAccount(ctx context.Context, req OpenAccountRequest) Outcome {
	req.Name = strings.TrimSpace(req.Name)
	if err := c.validate.Struct(req); err != nil {
		return c.skip("open account", err)
	}

	c.session.Begin()
	defer c.session.End()

	a, err := c.ledger.CreateAccount(ctx, req.Name, req.Balance)
	if err != nil {
		return c.fail("open account", "Unable to open account: "+err.Error(),
			"Account opening failed", err)
	}

	c.refreshAfterMutation(ctx, "open account")
	c.notifier.Notify("Account opened", notify.Success)
	return Outcome{Message: fmt.Sprintf("New account #%d opened for %s with balance %s.",
		a.ID, a.AccountHolderName, currency.Format(a.Balance))}
}

// GetAccount looks up a single account. Read-only: the snapshot is untouched.
func (c *Controllers) GetAccount(ctx context.Context, req GetAccountRequest) Outcome {
	if err := c.validate.Struct(req); err != nil {
		return c.skip("get account", err)
	}

	c.session.Begin()
	defer c.session.End()

	a, err := c.ledger.GetAccount(ctx, req.AccountID)
	if err != nil {
		return c.fail("get account", "Unable to find account: "+err.Error(),
			"Account lookup failed", err)
	}

	c.notifier.Notify("Account details loaded", notify.Success)
	return Outcome{Message: fmt.Sprintf("Account #%d — %s, Current balance: %s.",
		a.ID, a.AccountHolderName, currency.Format(a.Balance))}
}

// Deposit adds funds to an account and re-fetches the account list.
func (c *Controllers) Deposit(ctx context.Context, req DepositRequest) Outcome {
	if err := c.validate.Struct(req); err != nil {
		return c.skip("deposit", err)
	}
	if req.Amount.Sign() <= 0 {
		return c.skip("deposit", fmt.Errorf("deposit of %s: %w", req.Amount, domain.ErrAmountMustBePositive))
	}

	c.session.Begin()
	defer c.session.End()

	a, err := c.ledger.Deposit(ctx, req.AccountID, req.Amount)
	if err != nil {
		return c.fail("deposit", "Deposit failed: "+err.Error(), "Deposit failed", err)
	}

	c.refreshAfterMutation(ctx, "deposit")
	c.notifier.Notify("Deposit successful", notify.Success)
	return Outcome{Message: fmt.Sprintf("Deposit of %s to Account #%d successful. New balance: %s.",
		currency.Format(req.Amount), req.AccountID, currency.Format(a.Balance))}
}

// Withdraw removes funds from an account and re-fetches the account list.
// Sufficient funds are the server's call.
func (c *Controllers) Withdraw(ctx context.Context, req WithdrawRequest) Outcome {
	if err := c.validate.Struct(req); err != nil {
		return c.skip("withdraw", err)
	}
	if req.Amount.Sign() <= 0 {
		return c.skip("withdraw", fmt.Errorf("withdrawal of %s: %w", req.Amount, domain.ErrAmountMustBePositive))
	}

	c.session.Begin()
	defer c.session.End()

	a, err := c.ledger.Withdraw(ctx, req.AccountID, req.Amount)
	if err != nil {
		return c.fail("withdraw", "Withdrawal failed: "+err.Error(), "Withdrawal failed", err)
	}

	c.refreshAfterMutation(ctx, "withdraw")
	c.notifier.Notify("Withdrawal successful", notify.Success)
	return Outcome{Message: fmt.Sprintf("Withdrawal of %s from Account #%d successful. New balance: %s.",
		currency.Format(req.Amount), req.AccountID, currency.Format(a.Balance))}
}

// DeleteAccount removes an account and re-fetches the account list. The
// server's confirmation text is surfaced verbatim.
func (c *Controllers) DeleteAccount(ctx context.Context, req DeleteAccountRequest) Outcome {
	if err := c.validate.Struct(req); err != nil {
		return c.skip("delete account", err)
	}

	c.session.Begin()
	defer c.session.End()

	confirmation, err := c.ledger.DeleteAccount(ctx, req.AccountID)
	if err != nil {
		return c.fail("delete account", "Unable to delete account: "+err.Error(),
			"Account deletion failed", err)
	}

	c.refreshAfterMutation(ctx, "delete account")
	c.notifier.Notify("Account deleted", notify.Success)
	return Outcome{Message: confirmation}
}
