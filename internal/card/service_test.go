package card_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneta-dev/moneta/internal/card"
	"github.com/moneta-dev/moneta/internal/date"
	"github.com/moneta-dev/moneta/internal/kv"
	"github.com/moneta-dev/moneta/internal/money"
	"github.com/moneta-dev/moneta/internal/storage"
	"github.com/moneta-dev/moneta/internal/transaction"
)

func newService(t *testing.T) (*card.Service, *storage.Store) {
	t.Helper()

	store := storage.New(kv.NewMemory())

	return card.NewService(store), store
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	c, err := svc.Create(ctx, card.CreateParams{
		Number:        "4111111111111111",
		Nickname:      "Everyday",
		MonthlyBudget: "250",
	})
	require.NoError(t, err)

	assert.Equal(t, card.NetworkVisa, c.Type)
	assert.Equal(t, "**** **** **** 1111", c.Number)
	require.NotNil(t, c.MonthlyBudget)
	assert.True(t, c.MonthlyBudget.Equal(money.FromInt(250)))

	// The raw number must not survive anywhere in the stored record.
	assert.NotContains(t, c.Number, "4111111111111111")
}

func TestService_Create_Rejected(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t)

	_, err := svc.Create(ctx, card.CreateParams{Number: "1234", Nickname: "Bad"})

	var ve *card.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, card.KindInvalidCardNumber, ve.Kind)

	cards, err := store.LoadCards(ctx)
	require.NoError(t, err)
	assert.Empty(t, cards, "rejected card must not be stored")
}

func TestService_AddMoney(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t)

	c, err := svc.Create(ctx, card.CreateParams{Number: "4111111111111111", Nickname: "Everyday"})
	require.NoError(t, err)

	tx, err := svc.AddMoney(ctx, c.ID, "75.25", "")
	require.NoError(t, err)

	assert.Equal(t, transaction.TypeDeposit, tx.Type)
	assert.True(t, tx.Amount.Equal(money.FromFloat(75.25)))
	assert.Equal(t, "Manual deposit", tx.Note)
	assert.Equal(t, c.ID, tx.CardID)

	// The balance field is untouched; deposits live in the transaction log.
	stored, err := svc.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, stored.Balance.Equal(money.Zero()))

	txs, err := store.LoadTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, txs, 1)
}

func TestService_AddMoney_Invalid(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	c, err := svc.Create(ctx, card.CreateParams{Number: "4111111111111111", Nickname: "Everyday"})
	require.NoError(t, err)

	tests := []struct {
		name   string
		amount string
	}{
		{name: "zero", amount: "0"},
		{name: "negative", amount: "-5"},
		{name: "garbage", amount: "abc"},
		{name: "empty", amount: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddMoney(ctx, c.ID, tt.amount, "x")
			assert.ErrorIs(t, err, transaction.ErrInvalidAmount)
		})
	}

	_, err = svc.AddMoney(ctx, 999, "10", "x")
	assert.ErrorIs(t, err, card.ErrNotFound)
}

func TestService_ListWithSpending(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t)

	now := time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC)

	budget := money.FromInt(50)
	require.NoError(t, store.SaveCards(ctx, []card.Card{
		{ID: 1, Nickname: "Everyday", MonthlyBudget: &budget},
		{ID: 2, Nickname: "Unbudgeted"},
	}))
	require.NoError(t, store.SaveTransactions(ctx, []transaction.Transaction{
		{ID: 1, CardID: 1, Type: transaction.TypeWithdrawal, Amount: money.FromInt(60), Date: date.New(2025, time.July, 2)},
		{ID: 2, CardID: 1, Type: transaction.TypeWithdrawal, Amount: money.FromInt(30), Date: date.New(2025, time.June, 2)},
		{ID: 3, CardID: 1, Type: transaction.TypeDeposit, Amount: money.FromInt(100), Date: date.New(2025, time.July, 3)},
		{ID: 4, CardID: 2, Type: transaction.TypeWithdrawal, Amount: money.FromInt(500), Date: date.New(2025, time.July, 4)},
	}))

	cards, err := svc.ListWithSpending(ctx, now)
	require.NoError(t, err)
	require.Len(t, cards, 2)

	assert.True(t, cards[0].SpentThisMonth.Equal(money.FromInt(60)), "got %s", cards[0].SpentThisMonth)
	assert.True(t, cards[0].OverBudget)

	// No budget set means never over, regardless of spend.
	assert.True(t, cards[1].SpentThisMonth.Equal(money.FromInt(500)))
	assert.False(t, cards[1].OverBudget)
}

func TestService_Delete_NoCascade(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t)

	c, err := svc.Create(ctx, card.CreateParams{Number: "4111111111111111", Nickname: "Everyday"})
	require.NoError(t, err)

	_, err = svc.AddMoney(ctx, c.ID, "10", "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, c.ID))

	cards, err := store.LoadCards(ctx)
	require.NoError(t, err)
	assert.Empty(t, cards)

	txs, err := store.LoadTransactions(ctx)
	require.NoError(t, err)
	assert.Len(t, txs, 1, "transactions keep their dangling card reference")
}
