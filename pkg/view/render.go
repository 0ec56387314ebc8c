package view

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"github.com/shivabank/console/pkg/currency"
	"github.com/shivabank/console/pkg/dashboard"
	"github.com/shivabank/console/pkg/domain"
	"github.com/shivabank/console/pkg/notify"
)

var (
	heading    = color.New(color.FgCyan, color.Bold)
	muted      = color.New(color.Faint)
	successTag = color.New(color.FgGreen, color.Bold)
	errorTag   = color.New(color.FgRed, color.Bold)
)

// RenderSummary writes the dashboard metrics and the recent-accounts table.
func RenderSummary(w io.Writer, s dashboard.Summary, recent []domain.Account, lastRefreshed time.Time) {
	heading.Fprintln(w, "Overview")
	fmt.Fprintf(w, "Total Accounts:  %d\n", s.TotalAccounts)
	fmt.Fprintf(w, "Total Balance:   %s\n", currency.Format(s.TotalBalance))
	if lastRefreshed.IsZero() {
		fmt.Fprintln(w, "Last Updated:    just now")
	} else {
		fmt.Fprintf(w, "Last Updated:    %s\n", lastRefreshed.Format("2006-01-02 15:04:05"))
	}

	if s.TotalAccounts == 0 {
		muted.Fprintln(w, "No accounts yet. Open your first account from the Accounts view.")
		return
	}

	fmt.Fprintln(w)
	heading.Fprintln(w, "Insights")
	fmt.Fprintf(w, "Highest Balance: %s (Account #%d — %s)\n",
		currency.Format(s.Highest.Balance), s.Highest.ID, s.Highest.AccountHolderName)
	fmt.Fprintf(w, "Average Balance: %s\n", currency.Format(s.AverageBalance))
	fmt.Fprintf(w, "Customer of the moment: %s (Account #%d)\n",
		s.Highlight.AccountHolderName, s.Highlight.ID)
	fmt.Fprintf(w, "Primary Account: #%d — %s, %s\n",
		s.Primary.ID, s.Primary.AccountHolderName, currency.Format(s.Primary.Balance))

	if len(recent) > 0 {
		fmt.Fprintln(w)
		heading.Fprintln(w, "Recent Accounts")
		RenderAccounts(w, recent)
	}
}

// RenderAccounts writes the account table.
func RenderAccounts(w io.Writer, accounts []domain.Account) {
	if len(accounts) == 0 {
		muted.Fprintln(w, "No accounts found.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tHolder\tBalance")
	for _, acc := range accounts {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", acc.ID, acc.AccountHolderName, currency.Format(acc.Balance))
	}
	tw.Flush() //nolint:errcheck
}

// RenderTransactions writes the transaction history table. The timestamp is
// shown exactly as the server reported it.
func RenderTransactions(w io.Writer, accountID int64, txs []domain.Transaction) {
	if len(txs) == 0 {
		muted.Fprintln(w, "No transactions loaded. Choose an account to view its history.")
		return
	}
	heading.Fprintf(w, "Transactions for Account #%d\n", accountID)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tAmount\tType\tTimestamp")
	for _, tx := range txs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", tx.ID, currency.Format(tx.Amount), tx.TransactionType, tx.Timestamp)
	}
	tw.Flush() //nolint:errcheck
}

// RenderToast writes a status message with its kind tag.
func RenderToast(w io.Writer, t notify.Toast) {
	if t.Kind == notify.Error {
		errorTag.Fprint(w, "✗ ")
	} else {
		successTag.Fprint(w, "✓ ")
	}
	fmt.Fprintln(w, t.Message)
}
