// Package ledger implements the HTTP client for the ledger service, the
// system of record for accounts and transactions. The client never re-derives
// balances or ids; it forwards requests and normalizes responses.
package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shivabank/console/pkg/config"
	"github.com/shivabank/console/pkg/domain"
)

// Client issues requests against the ledger service's accounts resource.
// No retries, no caching; the only timeout is the HTTP client's own.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a ledger client from config.
func New(cfg config.Ledger, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		logger: logger.With("component", "ledger"),
	}
}

// Do issues one request against the accounts resource. pathSuffix is appended
// to the base URL ("" for the collection itself). A non-nil payload is sent as
// a JSON body. Non-2xx responses become a *ServerError carrying the literal
// body text, or "HTTP <status>" when the body is empty; 2xx responses are
// tagged JSON or plain text by their declared content type.
func (c *Client) Do(ctx context.Context, method, pathSuffix string, payload any) (Result, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return Result{}, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+pathSuffix, body)
	if err != nil {
		return Result{}, fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	c.logger.Debug("ledger request", "method", method, "path", pathSuffix, "request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("ledger request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg := strings.TrimSpace(string(b))
		if msg == "" {
			msg = fmt.Sprintf("HTTP %d", resp.StatusCode)
		}
		c.logger.Warn("ledger rejected request",
			"method", method, "path", pathSuffix, "status", resp.StatusCode, "request_id", requestID)
		return Result{}, &ServerError{Status: resp.StatusCode, Message: msg}
	}

	if strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		return Result{Kind: ResultJSON, Raw: b}, nil
	}
	return Result{Kind: ResultText, Text: string(b)}, nil
}

type createAccountRequest struct {
	ID                *int64      `json:"id"`
	AccountHolderName string      `json:"accountHolderName"`
	Balance           json.Number `json:"balance"`
}

type amountRequest struct {
	Amount json.Number `json:"amount"`
}

type transferRequest struct {
	FromAccountID int64       `json:"fromAccountId"`
	ToAccountID   int64       `json:"toAccountId"`
	Amount        json.Number `json:"amount"`
}

// ListAccounts fetches the full account collection.
func (c *Client) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	res, err := c.Do(ctx, http.MethodGet, "", nil)
	if err != nil {
		return nil, err
	}
	var accounts []domain.Account
	if err := res.Decode(&accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// CreateAccount opens a new account; the server assigns the id.
func (c *Client) CreateAccount(ctx context.Context, holderName string, balance decimal.Decimal) (*domain.Account, error) {
	res, err := c.Do(ctx, http.MethodPost, "", createAccountRequest{
		AccountHolderName: holderName,
		Balance:           number(balance),
	})
	if err != nil {
		return nil, err
	}
	var a domain.Account
	if err := res.Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

// GetAccount fetches a single account by id.
func (c *Client) GetAccount(ctx context.Context, id int64) (*domain.Account, error) {
	res, err := c.Do(ctx, http.MethodGet, fmt.Sprintf("/%d", id), nil)
	if err != nil {
		return nil, err
	}
	var a domain.Account
	if err := res.Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Deposit adds funds to an account and returns the updated account.
func (c *Client) Deposit(ctx context.Context, id int64, amount decimal.Decimal) (*domain.Account, error) {
	return c.putAmount(ctx, fmt.Sprintf("/%d/deposit", id), amount)
}

// Withdraw removes funds from an account and returns the updated account.
// Sufficient funds are the server's call; the client does not pre-check.
func (c *Client) Withdraw(ctx context.Context, id int64, amount decimal.Decimal) (*domain.Account, error) {
	return c.putAmount(ctx, fmt.Sprintf("/%d/withdraw", id), amount)
}

func (c *Client) putAmount(ctx context.Context, pathSuffix string, amount decimal.Decimal) (*domain.Account, error) {
	res, err := c.Do(ctx, http.MethodPut, pathSuffix, amountRequest{Amount: number(amount)})
	if err != nil {
		return nil, err
	}
	var a domain.Account
	if err := res.Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Transfer moves funds between two accounts. The server may answer with a
// bare confirmation string or a structured result, so the raw Result is
// returned for the caller to render.
func (c *Client) Transfer(ctx context.Context, fromID, toID int64, amount decimal.Decimal) (Result, error) {
	return c.Do(ctx, http.MethodPost, "/transfer", transferRequest{
		FromAccountID: fromID,
		ToAccountID:   toID,
		Amount:        number(amount),
	})
}

// ListTransactions fetches the transaction history of one account.
func (c *Client) ListTransactions(ctx context.Context, accountID int64) ([]domain.Transaction, error) {
	res, err := c.Do(ctx, http.MethodGet, fmt.Sprintf("/%d/transactions", accountID), nil)
	if err != nil {
		return nil, err
	}
	var txs []domain.Transaction
	if err := res.Decode(&txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// DeleteAccount removes an account and returns the server's confirmation text.
func (c *Client) DeleteAccount(ctx context.Context, id int64) (string, error) {
	res, err := c.Do(ctx, http.MethodDelete, fmt.Sprintf("/%d", id), nil)
	if err != nil {
		return "", err
	}
	return res.Display(), nil
}

// number renders a decimal as a bare JSON number, preserving the digits the
// user entered.
func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}
