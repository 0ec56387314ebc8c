// Package dashboard derives the overview metrics from the current account
// snapshot. Nothing here is stored; every call recomputes from scratch.
package dashboard

import (
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shivabank/console/pkg/domain"
)

// Summary holds the dashboard metrics for one account snapshot. On an empty
// snapshot the counters are zero and the account-valued fields are nil.
type Summary struct {
	TotalAccounts  int
	TotalBalance   decimal.Decimal
	AverageBalance decimal.Decimal
	// Highest is the account with the maximum balance; first encountered wins ties.
	Highest *domain.Account
	// Highlight is one account chosen uniformly at random, the "customer of
	// the moment". It is the only field that may differ between two calls over
	// the same snapshot.
	Highlight *domain.Account
	// Primary is the first account of the snapshot.
	Primary *domain.Account
}

// Aggregator computes summaries. It carries only the random source used for
// the highlight pick.
type Aggregator struct {
	rng *rand.Rand
}

// New creates an aggregator with a time-seeded random source.
func New() *Aggregator {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand creates an aggregator with the given random source. Tests use
// this to make the highlight pick deterministic.
func NewWithRand(rng *rand.Rand) *Aggregator {
	return &Aggregator{rng: rng}
}

// Summarize computes all metrics over the given snapshot.
func (a *Aggregator) Summarize(accounts []domain.Account) Summary {
	s := Summary{
		TotalAccounts:  len(accounts),
		TotalBalance:   decimal.Zero,
		AverageBalance: decimal.Zero,
	}
	if len(accounts) == 0 {
		return s
	}

	highest := accounts[0]
	for _, acc := range accounts {
		s.TotalBalance = s.TotalBalance.Add(acc.Balance)
		if acc.Balance.GreaterThan(highest.Balance) {
			highest = acc
		}
	}
	s.Highest = &highest
	s.AverageBalance = s.TotalBalance.Div(decimal.NewFromInt(int64(len(accounts))))

	highlight := accounts[a.rng.Intn(len(accounts))]
	s.Highlight = &highlight

	primary := accounts[0]
	s.Primary = &primary

	return s
}

// Recent returns the newest n accounts of the snapshot, oldest first. The
// server appends new accounts at the end of the collection, so the tail is
// the most recent.
func Recent(accounts []domain.Account, n int) []domain.Account {
	if n <= 0 || len(accounts) == 0 {
		return nil
	}
	if len(accounts) <= n {
		return append([]domain.Account{}, accounts...)
	}
	return append([]domain.Account{}, accounts[len(accounts)-n:]...)
}
