package budget_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneta-dev/moneta/internal/budget"
	"github.com/moneta-dev/moneta/internal/date"
	"github.com/moneta-dev/moneta/internal/kv"
	"github.com/moneta-dev/moneta/internal/money"
	"github.com/moneta-dev/moneta/internal/storage"
	"github.com/moneta-dev/moneta/internal/transaction"
)

func TestService_ListWithSpending(t *testing.T) {
	ctx := context.Background()
	store := storage.New(kv.NewMemory())
	svc := budget.NewService(store)

	now := time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC)

	require.NoError(t, store.SaveBudgets(ctx, []budget.Budget{
		{ID: 1, Category: "Groceries", Amount: money.FromInt(300)},
		{ID: 2, Category: "Transport", Amount: money.FromInt(100)},
	}))
	require.NoError(t, store.SaveTransactions(ctx, []transaction.Transaction{
		{ID: 1, CardID: 1, Type: transaction.TypeWithdrawal, Amount: money.FromInt(40), Date: date.New(2025, time.July, 3), Note: "Groceries"},
		{ID: 2, CardID: 1, Type: transaction.TypeWithdrawal, Amount: money.FromInt(25), Date: date.New(2025, time.July, 9), Note: "Groceries"},
		// Deposits never count as spend, whatever the note says.
		{ID: 3, CardID: 1, Type: transaction.TypeDeposit, Amount: money.FromInt(500), Date: date.New(2025, time.July, 1), Note: "Groceries"},
		// Wrong month.
		{ID: 4, CardID: 1, Type: transaction.TypeWithdrawal, Amount: money.FromInt(99), Date: date.New(2025, time.June, 30), Note: "Groceries"},
		// Note must equal the category exactly.
		{ID: 5, CardID: 1, Type: transaction.TypeWithdrawal, Amount: money.FromInt(10), Date: date.New(2025, time.July, 5), Note: "groceries"},
	}))

	budgets, err := svc.ListWithSpending(ctx, now)
	require.NoError(t, err)
	require.Len(t, budgets, 2)

	assert.True(t, budgets[0].Spent.Equal(money.FromInt(65)), "got %s", budgets[0].Spent)
	assert.True(t, budgets[1].Spent.Equal(money.Zero()))
}

func TestService_CreateAndUpdate(t *testing.T) {
	ctx := context.Background()
	store := storage.New(kv.NewMemory())
	svc := budget.NewService(store)

	b, err := svc.Create(ctx, budget.CreateParams{Category: "Rent", Amount: "850.50"})
	require.NoError(t, err)
	assert.NotZero(t, b.ID)
	assert.True(t, b.Amount.Equal(money.FromFloat(850.50)))

	updated, err := svc.Update(ctx, b.ID, budget.CreateParams{Category: "Housing", Amount: "900"})
	require.NoError(t, err)
	assert.Equal(t, "Housing", updated.Category)

	_, err = svc.Update(ctx, 999, budget.CreateParams{Category: "X", Amount: "1"})
	assert.ErrorIs(t, err, budget.ErrNotFound)
}
