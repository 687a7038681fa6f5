// Package profile holds the singleton user profile.
package profile

import (
	"context"

	"github.com/moneta-dev/moneta/internal/money"
)

type Profile struct {
	Name          string       `json:"name"`
	Email         string       `json:"email"`
	Avatar        string       `json:"avatar"`
	MonthlyIncome money.Amount `json:"monthlyIncome"`
}

type Repository interface {
	LoadProfile(ctx context.Context) (Profile, error)
	SaveProfile(ctx context.Context, p Profile) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context) (Profile, error) {
	return s.repo.LoadProfile(ctx)
}

type SaveParams struct {
	Name          string
	Email         string
	Avatar        string
	MonthlyIncome string
}

// Save stores the profile. A blank or unparsable income reads as zero.
func (s *Service) Save(ctx context.Context, p SaveParams) (Profile, error) {
	income, _ := money.Parse(p.MonthlyIncome)

	prof := Profile{
		Name:          p.Name,
		Email:         p.Email,
		Avatar:        p.Avatar,
		MonthlyIncome: income,
	}

	if err := s.repo.SaveProfile(ctx, prof); err != nil {
		return Profile{}, err
	}

	return prof, nil
}
