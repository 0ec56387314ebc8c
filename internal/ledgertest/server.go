// Package ledgertest provides an in-process stand-in for the ledger service,
// matching its endpoints, wire shapes and error texts. It exists for tests
// only; the real client session never embeds a server.
package ledgertest

import (
	"fmt"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	msgAccountNotFound   = "Account does not exists"
	msgInsufficientFunds = "Insufficient amount"
	msgTransferOK        = "Transfer Successfull"
	msgAccountDeleted    = "Account is deleted successfully!"
)

type account struct {
	ID                int64   `json:"id"`
	AccountHolderName string  `json:"accountHolderName"`
	Balance           float64 `json:"balance"`
}

type transaction struct {
	ID              int64   `json:"id"`
	AccountID       int64   `json:"accountId"`
	Amount          float64 `json:"amount"`
	TransactionType string  `json:"transactionType"`
	Timestamp       string  `json:"timestamp"`
}

// Server is the fake ledger. All state is in memory and guarded by one mutex;
// ids are assigned in creation order, as the ledger service's database does.
type Server struct {
	app *fiber.App

	mu           sync.Mutex
	accounts     map[int64]*account
	order        []int64
	transactions map[int64][]transaction
	nextAccount  int64
	nextTx       int64
}

// New creates a fake ledger with its routes registered under /api/accounts.
func New() *Server {
	s := &Server{
		accounts:     make(map[int64]*account),
		transactions: make(map[int64][]transaction),
		nextAccount:  1,
		nextTx:       1,
	}
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	api := app.Group("/api/accounts")
	api.Get("/", s.listAccounts)
	api.Post("/", s.createAccount)
	api.Post("/transfer", s.transfer)
	api.Get("/:id/transactions", s.listTransactions)
	api.Put("/:id/deposit", s.deposit)
	api.Put("/:id/withdraw", s.withdraw)
	api.Get("/:id", s.getAccount)
	api.Delete("/:id", s.deleteAccount)

	s.app = app
	return s
}

// Start serves the fake ledger on a random local port and returns the
// accounts resource base URL. Shutdown is registered on the test's cleanup.
func (s *Server) Start(t *testing.T) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	go func() {
		if err := s.app.Listener(ln); err != nil {
			t.Logf("fake ledger stopped: %v", err)
		}
	}()
	t.Cleanup(func() {
		_ = s.app.Shutdown()
	})

	return fmt.Sprintf("http://%s/api/accounts", ln.Addr().String())
}

// Stop shuts the fake ledger down early, before the test's cleanup runs.
// Useful for exercising transport-failure paths mid-test.
func (s *Server) Stop() error {
	return s.app.Shutdown()
}

// Seed creates an account directly, bypassing HTTP, and returns its id.
func (s *Server) Seed(holderName string, balance float64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextAccount
	s.nextAccount++
	s.accounts[id] = &account{ID: id, AccountHolderName: holderName, Balance: balance}
	s.order = append(s.order, id)
	return id
}

// Balance returns an account's current balance for assertions.
func (s *Server) Balance(id int64) (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok {
		return 0, false
	}
	return a.Balance, true
}

func (s *Server) record(accountID int64, amount float64, txType string) {
	tx := transaction{
		ID:              s.nextTx,
		AccountID:       accountID,
		Amount:          amount,
		TransactionType: txType,
		Timestamp:       time.Now().Format("2006-01-02T15:04:05"),
	}
	s.nextTx++
	s.transactions[accountID] = append(s.transactions[accountID], tx)
}

func (s *Server) listAccounts(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]account, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.accounts[id])
	}
	return c.JSON(out)
}

func (s *Server) createAccount(c *fiber.Ctx) error {
	var req struct {
		AccountHolderName string  `json:"accountHolderName"`
		Balance           float64 `json:"balance"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextAccount
	s.nextAccount++
	a := &account{ID: id, AccountHolderName: req.AccountHolderName, Balance: req.Balance}
	s.accounts[id] = a
	s.order = append(s.order, id)
	return c.Status(fiber.StatusCreated).JSON(a)
}

func (s *Server) getAccount(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[int64(id)]
	if !ok {
		return c.Status(fiber.StatusNotFound).SendString(msgAccountNotFound)
	}
	return c.JSON(a)
}

func (s *Server) deposit(c *fiber.Ctx) error {
	return s.applyAmount(c, func(a *account, amount float64) error {
		a.Balance += amount
		s.record(a.ID, amount, "DEPOSIT")
		return nil
	})
}

func (s *Server) withdraw(c *fiber.Ctx) error {
	return s.applyAmount(c, func(a *account, amount float64) error {
		if a.Balance < amount {
			return fmt.Errorf("%s", msgInsufficientFunds)
		}
		a.Balance -= amount
		s.record(a.ID, amount, "WITHDRAW")
		return nil
	})
}

func (s *Server) applyAmount(c *fiber.Ctx, apply func(*account, float64) error) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	var req struct {
		Amount float64 `json:"amount"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[int64(id)]
	if !ok {
		return c.Status(fiber.StatusNotFound).SendString(msgAccountNotFound)
	}
	if err := apply(a, req.Amount); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	return c.JSON(a)
}

func (s *Server) transfer(c *fiber.Ctx) error {
	var req struct {
		FromAccountID int64   `json:"fromAccountId"`
		ToAccountID   int64   `json:"toAccountId"`
		Amount        float64 `json:"amount"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	from, ok := s.accounts[req.FromAccountID]
	if !ok {
		return c.Status(fiber.StatusNotFound).SendString(msgAccountNotFound)
	}
	if from.Balance < req.Amount {
		return c.Status(fiber.StatusBadRequest).SendString(msgInsufficientFunds)
	}
	to, ok := s.accounts[req.ToAccountID]
	if !ok {
		return c.Status(fiber.StatusNotFound).SendString(msgAccountNotFound)
	}
	from.Balance -= req.Amount
	to.Balance += req.Amount
	s.record(from.ID, req.Amount, "TRANSFER")
	// Transfer confirms with a plain-text body, not JSON.
	return c.SendString(msgTransferOK)
}

func (s *Server) listTransactions(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	txs := s.transactions[int64(id)]
	if txs == nil {
		txs = []transaction{}
	}
	return c.JSON(txs)
}

func (s *Server) deleteAccount(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[int64(id)]; !ok {
		return c.Status(fiber.StatusNotFound).SendString(msgAccountNotFound)
	}
	delete(s.accounts, int64(id))
	for i, aid := range s.order {
		if aid == int64(id) {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return c.SendString(msgAccountDeleted)
}
