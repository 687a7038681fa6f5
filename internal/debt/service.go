package debt

import (
	"context"
	"strconv"

	"github.com/moneta-dev/moneta/internal/date"
	"github.com/moneta-dev/moneta/internal/id"
	"github.com/moneta-dev/moneta/internal/money"
)

type Repository interface {
	LoadDebts(ctx context.Context) ([]Debt, error)
	SaveDebts(ctx context.Context, debts []Debt) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name         string
	TotalAmount  string
	PaidAmount   string
	DueDate      string
	Creditor     string
	CreditorCard string
	Note         string
}

func fromParams(p CreateParams) Debt {
	total, _ := money.Parse(p.TotalAmount)
	paid, _ := money.Parse(p.PaidAmount)
	due, _ := date.Parse(p.DueDate)

	d := Debt{
		Name:        p.Name,
		TotalAmount: total,
		PaidAmount:  paid,
		DueDate:     due,
		Creditor:    p.Creditor,
		Note:        p.Note,
	}

	if cardID, err := strconv.ParseInt(p.CreditorCard, 10, 64); err == nil {
		d.CreditorCard = &cardID
	}

	return d
}

func (s *Service) Create(ctx context.Context, p CreateParams) (*Debt, error) {
	debts, err := s.repo.LoadDebts(ctx)
	if err != nil {
		return nil, err
	}

	d := fromParams(p)
	d.ID = id.Next()

	debts = append(debts, d)
	if err := s.repo.SaveDebts(ctx, debts); err != nil {
		return nil, err
	}

	return &d, nil
}

func (s *Service) Update(ctx context.Context, debtID int64, p CreateParams) (*Debt, error) {
	debts, err := s.repo.LoadDebts(ctx)
	if err != nil {
		return nil, err
	}

	for i := range debts {
		if debts[i].ID != debtID {
			continue
		}

		updated := fromParams(p)
		updated.ID = debtID
		debts[i] = updated

		if err := s.repo.SaveDebts(ctx, debts); err != nil {
			return nil, err
		}

		return &debts[i], nil
	}

	return nil, ErrNotFound
}

func (s *Service) Delete(ctx context.Context, debtID int64) error {
	debts, err := s.repo.LoadDebts(ctx)
	if err != nil {
		return err
	}

	kept := debts[:0]

	for _, d := range debts {
		if d.ID != debtID {
			kept = append(kept, d)
		}
	}

	return s.repo.SaveDebts(ctx, kept)
}

func (s *Service) List(ctx context.Context) ([]Debt, error) {
	return s.repo.LoadDebts(ctx)
}

func (s *Service) Get(ctx context.Context, debtID int64) (*Debt, error) {
	debts, err := s.repo.LoadDebts(ctx)
	if err != nil {
		return nil, err
	}

	for i := range debts {
		if debts[i].ID == debtID {
			return &debts[i], nil
		}
	}

	return nil, ErrNotFound
}
