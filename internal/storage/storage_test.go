package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneta-dev/moneta/internal/card"
	"github.com/moneta-dev/moneta/internal/kv"
	"github.com/moneta-dev/moneta/internal/money"
	"github.com/moneta-dev/moneta/internal/storage"
)

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := storage.New(kv.NewMemory())

	cards, err := store.LoadCards(ctx)
	require.NoError(t, err)
	assert.Empty(t, cards, "missing collection reads as empty")

	budget := money.FromInt(500)
	in := []card.Card{{
		ID:            1,
		Type:          card.NetworkVisa,
		Number:        "**** **** **** 2345",
		Nickname:      "Travel",
		MonthlyBudget: &budget,
		Balance:       money.FromInt(100),
	}}

	require.NoError(t, store.SaveCards(ctx, in))

	out, err := store.LoadCards(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Travel", out[0].Nickname)
	assert.True(t, out[0].Balance.Equal(money.FromInt(100)))
	require.NotNil(t, out[0].MonthlyBudget)
	assert.True(t, out[0].MonthlyBudget.Equal(budget))
}

func TestStore_MalformedBlobReadsEmpty(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	store := storage.New(mem)

	require.NoError(t, mem.Set(ctx, "cards", []byte(`{"oops": true`)))

	cards, err := store.LoadCards(ctx)
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestStore_MalformedAmountReadsZero(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	store := storage.New(mem)

	require.NoError(t, mem.Set(ctx, "cards",
		[]byte(`[{"id":1,"type":"Visa","nickname":"A","balance":"corrupted"}]`)))

	cards, err := store.LoadCards(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.True(t, cards[0].Balance.IsZero())
}

func TestStore_ProfileSingleton(t *testing.T) {
	ctx := context.Background()
	store := storage.New(kv.NewMemory())

	p, err := store.LoadProfile(ctx)
	require.NoError(t, err)
	assert.Empty(t, p.Name)

	p.Name = "Sara"
	p.MonthlyIncome = money.FromInt(3000)
	require.NoError(t, store.SaveProfile(ctx, p))

	got, err := store.LoadProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Sara", got.Name)
	assert.True(t, got.MonthlyIncome.Equal(money.FromInt(3000)))
}
