package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneta-dev/moneta/internal/card"
	"github.com/moneta-dev/moneta/internal/date"
	"github.com/moneta-dev/moneta/internal/debt"
	"github.com/moneta-dev/moneta/internal/goal"
	"github.com/moneta-dev/moneta/internal/investment"
	"github.com/moneta-dev/moneta/internal/kv"
	"github.com/moneta-dev/moneta/internal/money"
	"github.com/moneta-dev/moneta/internal/report"
	"github.com/moneta-dev/moneta/internal/storage"
	"github.com/moneta-dev/moneta/internal/transaction"
)

func TestService_Summarize(t *testing.T) {
	ctx := context.Background()
	store := storage.New(kv.NewMemory())

	now := time.Now()
	thisMonth := func(day int) date.Date {
		return date.New(now.Year(), now.Month(), day)
	}

	require.NoError(t, store.SaveCards(ctx, []card.Card{
		{ID: 1, Nickname: "Everyday"},
		{ID: 2, Nickname: "Savings"},
	}))
	require.NoError(t, store.SaveTransactions(ctx, []transaction.Transaction{
		{ID: 1, CardID: 1, Type: transaction.TypeDeposit, Amount: money.FromInt(100), Date: thisMonth(10), Note: "Salary"},
		{ID: 2, CardID: 1, Type: transaction.TypeWithdrawal, Amount: money.FromInt(40), Date: thisMonth(12), Note: "Groceries"},
		{ID: 3, CardID: 2, Type: transaction.TypeDeposit, Amount: money.FromInt(50), Date: date.New(2024, time.January, 15)},
		{ID: 4, CardID: 2, Type: transaction.TypeWithdrawal, Amount: money.FromInt(10), Date: date.New(2024, time.February, 2)},
		// Card 99 was deleted; its flow must not count toward the total.
		{ID: 5, CardID: 99, Type: transaction.TypeDeposit, Amount: money.FromInt(999), Date: date.New(2024, time.March, 3), Note: "Ghost"},
	}))

	halfSaved := money.FromInt(50)
	require.NoError(t, store.SaveGoals(ctx, []goal.Goal{
		{ID: 10, Name: "Vacation", TargetAmount: money.FromInt(100), SavedAmount: &halfSaved},
		{ID: 11, Name: "Overfull", TargetAmount: money.FromInt(100), CurrentAmount: money.FromInt(200)},
	}))
	require.NoError(t, store.SaveDebts(ctx, []debt.Debt{
		{ID: 20, Name: "Car loan", TotalAmount: money.FromInt(200), PaidAmount: money.FromInt(50)},
	}))
	require.NoError(t, store.SaveInvestments(ctx, []investment.Investment{
		{ID: 30, Name: "Index fund", Amount: money.FromInt(1000)},
		{ID: 31, Name: "Bonds", Amount: money.FromFloat(234.5)},
	}))

	svc := report.NewService(store)

	summary, err := svc.Summarize(ctx)
	require.NoError(t, err)

	assert.True(t, summary.TotalBalance.Equal(money.FromInt(100)), "got %s", summary.TotalBalance)
	assert.True(t, summary.MonthlyIncome.Equal(money.FromInt(100)), "got %s", summary.MonthlyIncome)
	assert.True(t, summary.MonthlyExpenses.Equal(money.FromInt(40)), "got %s", summary.MonthlyExpenses)
	assert.True(t, summary.InvestmentTotal.Equal(money.FromFloat(1234.5)), "got %s", summary.InvestmentTotal)

	// (50/100 + min(1, 200/100)) / 2 = 0.75
	assert.Equal(t, 75, summary.GoalCompletion)
	assert.Equal(t, 25, summary.DebtRepayment)

	require.Len(t, summary.SpendingCategories, 2)
	assert.Equal(t, "Groceries", summary.SpendingCategories[0].Name)
	assert.True(t, summary.SpendingCategories[0].Value.Equal(money.FromInt(40)))
	assert.Equal(t, "Other", summary.SpendingCategories[1].Name)
	assert.True(t, summary.SpendingCategories[1].Value.Equal(money.FromInt(10)))

	require.Len(t, summary.RecentTransactions, 5)
	assert.Equal(t, int64(2), summary.RecentTransactions[0].ID)
	assert.Equal(t, int64(1), summary.RecentTransactions[1].ID)
	assert.Equal(t, int64(5), summary.RecentTransactions[2].ID)
}

func TestService_Summarize_Empty(t *testing.T) {
	ctx := context.Background()
	svc := report.NewService(storage.New(kv.NewMemory()))

	summary, err := svc.Summarize(ctx)
	require.NoError(t, err)

	assert.True(t, summary.TotalBalance.Equal(money.Zero()))
	assert.Equal(t, 0, summary.GoalCompletion)
	assert.Equal(t, 0, summary.DebtRepayment)
	assert.Empty(t, summary.SpendingCategories)
	assert.Empty(t, summary.RecentTransactions)
}

func TestService_Summarize_RecentCapsAtFive(t *testing.T) {
	ctx := context.Background()
	store := storage.New(kv.NewMemory())

	var txs []transaction.Transaction
	for i := 0; i < 8; i++ {
		txs = append(txs, transaction.Transaction{
			ID:     int64(i + 1),
			CardID: 1,
			Type:   transaction.TypeDeposit,
			Amount: money.FromInt(1),
			Date:   date.New(2025, time.June, i+1),
		})
	}

	require.NoError(t, store.SaveTransactions(ctx, txs))

	svc := report.NewService(store)

	summary, err := svc.Summarize(ctx)
	require.NoError(t, err)

	require.Len(t, summary.RecentTransactions, 5)
	assert.Equal(t, int64(8), summary.RecentTransactions[0].ID)
	assert.Equal(t, int64(4), summary.RecentTransactions[4].ID)
}
