// Command console is the Shiva Bank terminal client. It hosts the view-state
// layer: every command maps to one operation controller, and the views
// re-render from session snapshots as change events arrive.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/charmbracelet/log"
	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/shivabank/console/infra/initializer"
	"github.com/shivabank/console/pkg/config"
	"github.com/shivabank/console/pkg/controller"
	"github.com/shivabank/console/pkg/currency"
	"github.com/shivabank/console/pkg/dashboard"
	"github.com/shivabank/console/pkg/eventbus"
	"github.com/shivabank/console/pkg/notify"
	"github.com/shivabank/console/pkg/session"
	"github.com/shivabank/console/pkg/view"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}

	app := &consoleApp{cfg: cfg, deps: deps}
	app.subscribe()

	ctx := context.Background()

	fmt.Println("Shiva Bank Online — secure, simple banking for your everyday life.")
	fmt.Println(`Type "help" for commands.`)

	// Prime the dashboard before the first prompt.
	app.show(deps.Controllers.RefreshAccounts(ctx))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("shivabank> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		if deps.Session.Busy() {
			fmt.Println("Working...")
			continue
		}
		app.dispatch(ctx, line)
	}
	return scanner.Err()
}

type consoleApp struct {
	cfg  *config.App
	deps *initializer.Deps
}

// subscribe wires the views to session changes: any fresh snapshot or
// navigation re-renders the active view, and toasts print as they appear.
func (a *consoleApp) subscribe() {
	rerender := func(ctx context.Context, e eventbus.Event) error {
		a.render()
		return nil
	}
	a.deps.Bus.Subscribe(session.EventAccountsReplaced, rerender)
	a.deps.Bus.Subscribe(session.EventTransactionsReplaced, rerender)
	a.deps.Bus.Subscribe(view.EventViewChanged, rerender)
	a.deps.Bus.Subscribe(notify.EventToastShown, func(ctx context.Context, e eventbus.Event) error {
		if shown, ok := e.(notify.ToastShown); ok {
			view.RenderToast(os.Stdout, shown.Toast)
		}
		return nil
	})
}

// nav switches to the target view. The change event triggers the render; a
// re-selection of the active view just redraws it.
func (a *consoleApp) nav(ctx context.Context, v view.View) {
	if a.deps.Navigator.Active() == v {
		a.render()
		return
	}
	a.deps.Navigator.Go(ctx, v)
}

func (a *consoleApp) render() {
	fmt.Println()
	switch a.deps.Navigator.Active() {
	case view.Accounts:
		view.RenderAccounts(os.Stdout, a.deps.Session.Accounts())
	case view.Transactions:
		txs, accountID := a.deps.Session.Transactions()
		view.RenderTransactions(os.Stdout, accountID, txs)
	default:
		accounts := a.deps.Session.Accounts()
		summary := a.deps.Aggregator.Summarize(accounts)
		view.RenderSummary(os.Stdout, summary,
			dashboard.Recent(accounts, a.cfg.UI.DashboardRecent), a.deps.Session.LastRefreshed())
	}
}

// show prints an operation outcome. Skipped outcomes stay silent: the input
// never left the terminal, so there is nothing to report.
func (a *consoleApp) show(out controller.Outcome) {
	if out.Skipped {
		return
	}
	if out.Message != "" {
		fmt.Println(out.Message)
	}
	if out.Detail != "" {
		fmt.Println(out.Detail)
	}
}

func (a *consoleApp) dispatch(ctx context.Context, line string) {
	args := strings.Fields(line)
	cmd, args := args[0], args[1:]
	ctrl := a.deps.Controllers

	switch cmd {
	case "help":
		printHelp()
	case "overview", "dashboard":
		a.nav(ctx, view.Dashboard)
	case "accounts":
		a.nav(ctx, view.Accounts)
	case "transfers", "transactions":
		a.nav(ctx, view.Transactions)
	case "refresh":
		a.show(ctrl.RefreshAccounts(ctx))
	case "open":
		if len(args) < 2 {
			fmt.Println("Usage: open <holder name> <initial balance>")
			return
		}
		balance, err := currency.Parse(args[len(args)-1])
		if err != nil {
			fmt.Println(err)
			return
		}
		a.show(ctrl.OpenAccount(ctx, controller.OpenAccountRequest{
			Name:    strings.Join(args[:len(args)-1], " "),
			Balance: balance,
		}))
	case "account":
		id, ok := parseID(args, 0, "Usage: account <id>")
		if !ok {
			return
		}
		a.show(ctrl.GetAccount(ctx, controller.GetAccountRequest{AccountID: id}))
	case "deposit", "withdraw":
		id, ok := parseID(args, 0, "Usage: "+cmd+" <id> <amount>")
		if !ok {
			return
		}
		if len(args) < 2 {
			fmt.Println("Usage: " + cmd + " <id> <amount>")
			return
		}
		amount, err := currency.Parse(args[1])
		if err != nil {
			fmt.Println(err)
			return
		}
		if cmd == "deposit" {
			a.show(ctrl.Deposit(ctx, controller.DepositRequest{AccountID: id, Amount: amount}))
		} else {
			a.show(ctrl.Withdraw(ctx, controller.WithdrawRequest{AccountID: id, Amount: amount}))
		}
	case "transfer":
		if len(args) < 3 {
			fmt.Println("Usage: transfer <from id> <to id> <amount>")
			return
		}
		from, ok := parseID(args, 0, "")
		if !ok {
			return
		}
		to, ok := parseID(args, 1, "")
		if !ok {
			return
		}
		amount, err := currency.Parse(args[2])
		if err != nil {
			fmt.Println(err)
			return
		}
		a.show(ctrl.Transfer(ctx, controller.TransferRequest{
			FromAccountID: from,
			ToAccountID:   to,
			Amount:        amount,
		}))
	case "history":
		id, ok := parseID(args, 0, "Usage: history <id>")
		if !ok {
			return
		}
		a.show(ctrl.LoadTransactions(ctx, controller.LoadTransactionsRequest{AccountID: id}))
	case "delete":
		id, ok := parseID(args, 0, "Usage: delete <id>")
		if !ok {
			return
		}
		a.show(ctrl.DeleteAccount(ctx, controller.DeleteAccountRequest{AccountID: id}))
	case "raw":
		if len(args) < 1 {
			fmt.Println("Usage: raw <method> [path] [json body]")
			return
		}
		req := controller.RawRequest{Method: args[0]}
		if len(args) > 1 {
			req.PathSuffix = args[1]
		}
		if len(args) > 2 {
			req.Body = strings.Join(args[2:], " ")
		}
		a.show(ctrl.SendRaw(ctx, req))
	default:
		fmt.Printf("Unknown command: %s\n", cmd)
	}
}

func parseID(args []string, i int, usage string) (int64, bool) {
	if i >= len(args) {
		if usage != "" {
			fmt.Println(usage)
		}
		return 0, false
	}
	id, err := strconv.ParseInt(args[i], 10, 64)
	if err != nil {
		fmt.Printf("Invalid account id %q\n", args[i])
		return 0, false
	}
	return id, true
}

func printHelp() {
	fmt.Println(`Commands:
  overview                          show the dashboard
  accounts                          show the accounts view
  transfers                         show the transfers & history view
  refresh                           re-fetch accounts from the ledger
  open <holder name> <balance>      open a new account
  account <id>                      view one account's details
  deposit <id> <amount>             deposit into an account
  withdraw <id> <amount>            withdraw from an account
  transfer <from> <to> <amount>     transfer between accounts
  history <id>                      load an account's transactions
  delete <id>                       delete an account
  raw <method> [path] [json body]   send a raw request (debug console)
  quit`)
}
