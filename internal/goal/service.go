package goal

import (
	"context"

	"github.com/moneta-dev/moneta/internal/date"
	"github.com/moneta-dev/moneta/internal/id"
	"github.com/moneta-dev/moneta/internal/money"
)

type Repository interface {
	LoadGoals(ctx context.Context) ([]Goal, error)
	SaveGoals(ctx context.Context, goals []Goal) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateParams carries raw form values; amounts are parsed leniently so a
// blank starting amount reads as zero.
type CreateParams struct {
	Name          string
	TargetAmount  string
	CurrentAmount string
	Deadline      string
	Note          string
}

func fromParams(p CreateParams) Goal {
	target, _ := money.Parse(p.TargetAmount)
	current, _ := money.Parse(p.CurrentAmount)
	deadline, _ := date.Parse(p.Deadline)

	return Goal{
		Name:          p.Name,
		TargetAmount:  target,
		CurrentAmount: current,
		Deadline:      deadline,
		Note:          p.Note,
	}
}

func (s *Service) Create(ctx context.Context, p CreateParams) (*Goal, error) {
	goals, err := s.repo.LoadGoals(ctx)
	if err != nil {
		return nil, err
	}

	g := fromParams(p)
	g.ID = id.Next()

	goals = append(goals, g)
	if err := s.repo.SaveGoals(ctx, goals); err != nil {
		return nil, err
	}

	return &g, nil
}

func (s *Service) Update(ctx context.Context, goalID int64, p CreateParams) (*Goal, error) {
	goals, err := s.repo.LoadGoals(ctx)
	if err != nil {
		return nil, err
	}

	for i := range goals {
		if goals[i].ID != goalID {
			continue
		}

		updated := fromParams(p)
		updated.ID = goalID
		updated.SavedAmount = goals[i].SavedAmount
		goals[i] = updated

		if err := s.repo.SaveGoals(ctx, goals); err != nil {
			return nil, err
		}

		return &goals[i], nil
	}

	return nil, ErrNotFound
}

func (s *Service) Delete(ctx context.Context, goalID int64) error {
	goals, err := s.repo.LoadGoals(ctx)
	if err != nil {
		return err
	}

	kept := goals[:0]

	for _, g := range goals {
		if g.ID != goalID {
			kept = append(kept, g)
		}
	}

	return s.repo.SaveGoals(ctx, kept)
}

func (s *Service) List(ctx context.Context) ([]Goal, error) {
	return s.repo.LoadGoals(ctx)
}

func (s *Service) Get(ctx context.Context, goalID int64) (*Goal, error) {
	goals, err := s.repo.LoadGoals(ctx)
	if err != nil {
		return nil, err
	}

	for i := range goals {
		if goals[i].ID == goalID {
			return &goals[i], nil
		}
	}

	return nil, ErrNotFound
}
