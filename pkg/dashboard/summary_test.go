package dashboard

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shivabank/console/pkg/domain"
)

func acc(id int64, name string, balance string) domain.Account {
	return domain.Account{ID: id, AccountHolderName: name, Balance: decimal.RequireFromString(balance)}
}

func TestSummarizeEmptySnapshot(t *testing.T) {
	s := New().Summarize(nil)

	assert.Equal(t, 0, s.TotalAccounts)
	assert.True(t, s.TotalBalance.IsZero())
	assert.True(t, s.AverageBalance.IsZero())
	assert.Nil(t, s.Highest)
	assert.Nil(t, s.Highlight)
	assert.Nil(t, s.Primary)
}

func TestSummarizeTotalsAndAverage(t *testing.T) {
	accounts := []domain.Account{
		acc(1, "Shiva Prasad", "100"),
		acc(2, "Asha Rao", "50.50"),
		acc(3, "Kiran Nair", "49.50"),
	}

	s := New().Summarize(accounts)

	assert.Equal(t, 3, s.TotalAccounts)
	assert.True(t, s.TotalBalance.Equal(decimal.RequireFromString("200")),
		"total %s", s.TotalBalance)

	// Total must equal the arithmetic sum of the individual balances.
	sum := decimal.Zero
	for _, a := range accounts {
		sum = sum.Add(a.Balance)
	}
	assert.True(t, s.TotalBalance.Equal(sum))

	assert.True(t, s.AverageBalance.Equal(decimal.RequireFromString("66.6666666666666667")),
		"average %s", s.AverageBalance)
}

func TestSummarizeHighestFirstWinsOnTie(t *testing.T) {
	accounts := []domain.Account{
		acc(1, "Shiva Prasad", "75"),
		acc(2, "Asha Rao", "80"),
		acc(3, "Kiran Nair", "80"),
	}

	s := New().Summarize(accounts)

	require.NotNil(t, s.Highest)
	assert.Equal(t, int64(2), s.Highest.ID)
}

func TestSummarizePrimaryIsFirstAccount(t *testing.T) {
	accounts := []domain.Account{
		acc(7, "Shiva Prasad", "10"),
		acc(8, "Asha Rao", "90"),
	}

	s := New().Summarize(accounts)

	require.NotNil(t, s.Primary)
	assert.Equal(t, int64(7), s.Primary.ID)
}

func TestSummarizeHighlightComesFromSnapshot(t *testing.T) {
	accounts := []domain.Account{
		acc(1, "Shiva Prasad", "10"),
		acc(2, "Asha Rao", "20"),
		acc(3, "Kiran Nair", "30"),
	}

	agg := NewWithRand(rand.New(rand.NewSource(42)))
	for i := 0; i < 20; i++ {
		s := agg.Summarize(accounts)
		require.NotNil(t, s.Highlight)
		assert.Contains(t, []int64{1, 2, 3}, s.Highlight.ID)
	}
}

func TestSummarizeRecomputationIsIdempotent(t *testing.T) {
	accounts := []domain.Account{
		acc(1, "Shiva Prasad", "100"),
		acc(2, "Asha Rao", "50"),
	}
	agg := New()

	first := agg.Summarize(accounts)
	second := agg.Summarize(accounts)

	// Identical except possibly the random highlight.
	assert.Equal(t, first.TotalAccounts, second.TotalAccounts)
	assert.True(t, first.TotalBalance.Equal(second.TotalBalance))
	assert.True(t, first.AverageBalance.Equal(second.AverageBalance))
	assert.Equal(t, first.Highest.ID, second.Highest.ID)
	assert.Equal(t, first.Primary.ID, second.Primary.ID)
}

func TestRecent(t *testing.T) {
	accounts := []domain.Account{
		acc(1, "a", "1"), acc(2, "b", "2"), acc(3, "c", "3"),
		acc(4, "d", "4"), acc(5, "e", "5"), acc(6, "f", "6"),
	}

	recent := Recent(accounts, 5)
	require.Len(t, recent, 5)
	assert.Equal(t, int64(2), recent[0].ID)
	assert.Equal(t, int64(6), recent[4].ID)

	assert.Len(t, Recent(accounts, 10), 6)
	assert.Nil(t, Recent(accounts, 0))
	assert.Nil(t, Recent(nil, 5))
}
