package investment

import (
	"context"

	"github.com/moneta-dev/moneta/internal/date"
	"github.com/moneta-dev/moneta/internal/id"
	"github.com/moneta-dev/moneta/internal/money"
)

type Repository interface {
	LoadInvestments(ctx context.Context) ([]Investment, error)
	SaveInvestments(ctx context.Context, investments []Investment) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name          string
	Amount        string
	InterestRate  string
	MonthlyIncome string
	MaturityDate  string
	Note          string
}

func fromParams(p CreateParams) Investment {
	amount, _ := money.Parse(p.Amount)
	rate, _ := money.Parse(p.InterestRate)
	income, _ := money.Parse(p.MonthlyIncome)
	maturity, _ := date.Parse(p.MaturityDate)

	return Investment{
		Name:          p.Name,
		Amount:        amount,
		InterestRate:  rate,
		MonthlyIncome: income,
		MaturityDate:  maturity,
		Note:          p.Note,
	}
}

func (s *Service) Create(ctx context.Context, p CreateParams) (*Investment, error) {
	investments, err := s.repo.LoadInvestments(ctx)
	if err != nil {
		return nil, err
	}

	inv := fromParams(p)
	inv.ID = id.Next()

	investments = append(investments, inv)
	if err := s.repo.SaveInvestments(ctx, investments); err != nil {
		return nil, err
	}

	return &inv, nil
}

func (s *Service) Update(ctx context.Context, invID int64, p CreateParams) (*Investment, error) {
	investments, err := s.repo.LoadInvestments(ctx)
	if err != nil {
		return nil, err
	}

	for i := range investments {
		if investments[i].ID != invID {
			continue
		}

		updated := fromParams(p)
		updated.ID = invID
		investments[i] = updated

		if err := s.repo.SaveInvestments(ctx, investments); err != nil {
			return nil, err
		}

		return &investments[i], nil
	}

	return nil, ErrNotFound
}

func (s *Service) Delete(ctx context.Context, invID int64) error {
	investments, err := s.repo.LoadInvestments(ctx)
	if err != nil {
		return err
	}

	kept := investments[:0]

	for _, inv := range investments {
		if inv.ID != invID {
			kept = append(kept, inv)
		}
	}

	return s.repo.SaveInvestments(ctx, kept)
}

func (s *Service) List(ctx context.Context) ([]Investment, error) {
	return s.repo.LoadInvestments(ctx)
}
