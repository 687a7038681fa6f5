// Package storage exposes one typed accessor pair per persisted collection,
// backed by any kv.Store. It satisfies every domain Repository interface, so
// services receive exactly the slice of it they need.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/moneta-dev/moneta/internal/budget"
	"github.com/moneta-dev/moneta/internal/card"
	"github.com/moneta-dev/moneta/internal/debt"
	"github.com/moneta-dev/moneta/internal/goal"
	"github.com/moneta-dev/moneta/internal/investment"
	"github.com/moneta-dev/moneta/internal/kv"
	"github.com/moneta-dev/moneta/internal/ledger"
	"github.com/moneta-dev/moneta/internal/profile"
	"github.com/moneta-dev/moneta/internal/transaction"
)

// Fixed collection keys.
const (
	keyCards        = "cards"
	keyTransactions = "transactions"
	keyGoals        = "goals"
	keyGoalHistory  = "goalHistory"
	keyDebts        = "debts"
	keyDebtHistory  = "debtHistory"
	keyInvestments  = "investments"
	keyBudgets      = "budgets"
	keyActivity     = "recentActivity"
	keyProfile      = "userProfile"
)

type Store struct {
	kv kv.Store
}

func New(kv kv.Store) *Store {
	return &Store{kv: kv}
}

// loadSlice reads a whole collection. A missing key is an empty collection,
// and so is a blob that no longer parses; the read path never fails on data.
func loadSlice[T any](ctx context.Context, s *Store, key string) ([]T, error) {
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("loading %s: %w", key, err)
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, nil
	}

	return items, nil
}

func saveSlice[T any](ctx context.Context, s *Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}

	if err := s.kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}

	return nil
}

func (s *Store) LoadCards(ctx context.Context) ([]card.Card, error) {
	return loadSlice[card.Card](ctx, s, keyCards)
}

func (s *Store) SaveCards(ctx context.Context, cards []card.Card) error {
	return saveSlice(ctx, s, keyCards, cards)
}

func (s *Store) LoadTransactions(ctx context.Context) ([]transaction.Transaction, error) {
	return loadSlice[transaction.Transaction](ctx, s, keyTransactions)
}

func (s *Store) SaveTransactions(ctx context.Context, txs []transaction.Transaction) error {
	return saveSlice(ctx, s, keyTransactions, txs)
}

func (s *Store) LoadGoals(ctx context.Context) ([]goal.Goal, error) {
	return loadSlice[goal.Goal](ctx, s, keyGoals)
}

func (s *Store) SaveGoals(ctx context.Context, goals []goal.Goal) error {
	return saveSlice(ctx, s, keyGoals, goals)
}

func (s *Store) LoadGoalHistory(ctx context.Context) ([]ledger.GoalHistoryEntry, error) {
	return loadSlice[ledger.GoalHistoryEntry](ctx, s, keyGoalHistory)
}

func (s *Store) SaveGoalHistory(ctx context.Context, entries []ledger.GoalHistoryEntry) error {
	return saveSlice(ctx, s, keyGoalHistory, entries)
}

func (s *Store) LoadDebts(ctx context.Context) ([]debt.Debt, error) {
	return loadSlice[debt.Debt](ctx, s, keyDebts)
}

func (s *Store) SaveDebts(ctx context.Context, debts []debt.Debt) error {
	return saveSlice(ctx, s, keyDebts, debts)
}

func (s *Store) LoadDebtHistory(ctx context.Context) ([]ledger.DebtHistoryEntry, error) {
	return loadSlice[ledger.DebtHistoryEntry](ctx, s, keyDebtHistory)
}

func (s *Store) SaveDebtHistory(ctx context.Context, entries []ledger.DebtHistoryEntry) error {
	return saveSlice(ctx, s, keyDebtHistory, entries)
}

func (s *Store) LoadInvestments(ctx context.Context) ([]investment.Investment, error) {
	return loadSlice[investment.Investment](ctx, s, keyInvestments)
}

func (s *Store) SaveInvestments(ctx context.Context, investments []investment.Investment) error {
	return saveSlice(ctx, s, keyInvestments, investments)
}

func (s *Store) LoadBudgets(ctx context.Context) ([]budget.Budget, error) {
	return loadSlice[budget.Budget](ctx, s, keyBudgets)
}

func (s *Store) SaveBudgets(ctx context.Context, budgets []budget.Budget) error {
	return saveSlice(ctx, s, keyBudgets, budgets)
}

func (s *Store) LoadActivity(ctx context.Context) ([]ledger.Activity, error) {
	return loadSlice[ledger.Activity](ctx, s, keyActivity)
}

func (s *Store) SaveActivity(ctx context.Context, activity []ledger.Activity) error {
	return saveSlice(ctx, s, keyActivity, activity)
}

func (s *Store) LoadProfile(ctx context.Context) (profile.Profile, error) {
	raw, err := s.kv.Get(ctx, keyProfile)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return profile.Profile{}, nil
		}

		return profile.Profile{}, fmt.Errorf("loading %s: %w", keyProfile, err)
	}

	var p profile.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return profile.Profile{}, nil
	}

	return p, nil
}

func (s *Store) SaveProfile(ctx context.Context, p profile.Profile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", keyProfile, err)
	}

	if err := s.kv.Set(ctx, keyProfile, raw); err != nil {
		return fmt.Errorf("saving %s: %w", keyProfile, err)
	}

	return nil
}
