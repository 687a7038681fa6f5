package budget

import (
	"context"
	"time"

	"github.com/moneta-dev/moneta/internal/id"
	"github.com/moneta-dev/moneta/internal/money"
	"github.com/moneta-dev/moneta/internal/transaction"
)

type Repository interface {
	LoadBudgets(ctx context.Context) ([]Budget, error)
	SaveBudgets(ctx context.Context, budgets []Budget) error
	LoadTransactions(ctx context.Context) ([]transaction.Transaction, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Category string
	Amount   string
}

func (s *Service) Create(ctx context.Context, p CreateParams) (*Budget, error) {
	budgets, err := s.repo.LoadBudgets(ctx)
	if err != nil {
		return nil, err
	}

	amount, _ := money.Parse(p.Amount)

	b := Budget{ID: id.Next(), Category: p.Category, Amount: amount}

	budgets = append(budgets, b)
	if err := s.repo.SaveBudgets(ctx, budgets); err != nil {
		return nil, err
	}

	return &b, nil
}

func (s *Service) Update(ctx context.Context, budgetID int64, p CreateParams) (*Budget, error) {
	budgets, err := s.repo.LoadBudgets(ctx)
	if err != nil {
		return nil, err
	}

	for i := range budgets {
		if budgets[i].ID != budgetID {
			continue
		}

		amount, _ := money.Parse(p.Amount)
		budgets[i].Category = p.Category
		budgets[i].Amount = amount

		if err := s.repo.SaveBudgets(ctx, budgets); err != nil {
			return nil, err
		}

		return &budgets[i], nil
	}

	return nil, ErrNotFound
}

func (s *Service) Delete(ctx context.Context, budgetID int64) error {
	budgets, err := s.repo.LoadBudgets(ctx)
	if err != nil {
		return err
	}

	kept := budgets[:0]

	for _, b := range budgets {
		if b.ID != budgetID {
			kept = append(kept, b)
		}
	}

	return s.repo.SaveBudgets(ctx, kept)
}

// WithSpending pairs a budget with the derived current-month spend: the sum
// of this month's withdrawals whose note equals the category.
type WithSpending struct {
	Budget
	Spent money.Amount
}

func (s *Service) ListWithSpending(ctx context.Context, now time.Time) ([]WithSpending, error) {
	budgets, err := s.repo.LoadBudgets(ctx)
	if err != nil {
		return nil, err
	}

	txs, err := s.repo.LoadTransactions(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]WithSpending, 0, len(budgets))

	for _, b := range budgets {
		spent := money.Zero()

		for _, tx := range txs {
			if tx.Type == transaction.TypeWithdrawal && tx.Note == b.Category && tx.Date.SameMonth(now) {
				spent = spent.Add(tx.Amount)
			}
		}

		out = append(out, WithSpending{Budget: b, Spent: spent})
	}

	return out, nil
}
