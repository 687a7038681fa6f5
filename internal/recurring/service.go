package recurring

import (
	"context"

	"github.com/moneta-dev/moneta/internal/card"
	"github.com/moneta-dev/moneta/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=recurring
type Repository interface {
	LoadTransactions(ctx context.Context) ([]transaction.Transaction, error)
	LoadCards(ctx context.Context) ([]card.Card, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Detected is a pattern with its card reference resolved for display. A
// deleted card shows as "Unknown" rather than failing the lookup.
type Detected struct {
	Pattern
	CardName string `json:"cardName"`
}

func (s *Service) Detect(ctx context.Context) ([]Detected, error) {
	txs, err := s.repo.LoadTransactions(ctx)
	if err != nil {
		return nil, err
	}

	cards, err := s.repo.LoadCards(ctx)
	if err != nil {
		return nil, err
	}

	nicknames := make(map[int64]string, len(cards))
	for _, c := range cards {
		nicknames[c.ID] = c.Nickname
	}

	patterns := Detect(txs)
	out := make([]Detected, 0, len(patterns))

	for _, p := range patterns {
		name, ok := nicknames[p.CardID]
		if !ok || name == "" {
			name = "Unknown"
		}

		out = append(out, Detected{Pattern: p, CardName: name})
	}

	return out, nil
}
