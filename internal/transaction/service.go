package transaction

import (
	"context"
	"strconv"

	"github.com/moneta-dev/moneta/internal/date"
	"github.com/moneta-dev/moneta/internal/id"
	"github.com/moneta-dev/moneta/internal/money"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	LoadTransactions(ctx context.Context) ([]Transaction, error)
	SaveTransactions(ctx context.Context, txs []Transaction) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateParams carries raw form values; the service owns parsing and
// validation rather than trusting numeric types from the caller.
type CreateParams struct {
	CardID string
	Type   string
	Amount string
	Date   string
	Note   string
}

type parsed struct {
	cardID int64
	typ    Type
	amount money.Amount
	date   date.Date
}

func parseParams(p CreateParams) (*parsed, error) {
	amount, err := money.Parse(p.Amount)
	if err != nil || !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	typ := Type(p.Type)
	if typ != TypeDeposit && typ != TypeWithdrawal {
		return nil, ErrInvalidType
	}

	d, err := date.Parse(p.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	// The referenced card is not required to exist; a dangling reference
	// resolves to "Unknown" at display time.
	cardID, err := strconv.ParseInt(p.CardID, 10, 64)
	if err != nil {
		return nil, ErrInvalidCard
	}

	return &parsed{cardID: cardID, typ: typ, amount: amount, date: d}, nil
}

func (s *Service) Create(ctx context.Context, p CreateParams) (*Transaction, error) {
	parsed, err := parseParams(p)
	if err != nil {
		return nil, err
	}

	txs, err := s.repo.LoadTransactions(ctx)
	if err != nil {
		return nil, err
	}

	tx := Transaction{
		ID:     id.Next(),
		CardID: parsed.cardID,
		Type:   parsed.typ,
		Amount: parsed.amount,
		Date:   parsed.date,
		Note:   p.Note,
	}

	txs = append(txs, tx)
	if err := s.repo.SaveTransactions(ctx, txs); err != nil {
		return nil, err
	}

	return &tx, nil
}

func (s *Service) Update(ctx context.Context, txID int64, p CreateParams) (*Transaction, error) {
	parsed, err := parseParams(p)
	if err != nil {
		return nil, err
	}

	txs, err := s.repo.LoadTransactions(ctx)
	if err != nil {
		return nil, err
	}

	for i := range txs {
		if txs[i].ID != txID {
			continue
		}

		txs[i].CardID = parsed.cardID
		txs[i].Type = parsed.typ
		txs[i].Amount = parsed.amount
		txs[i].Date = parsed.date
		txs[i].Note = p.Note

		if err := s.repo.SaveTransactions(ctx, txs); err != nil {
			return nil, err
		}

		return &txs[i], nil
	}

	return nil, ErrNotFound
}

func (s *Service) Delete(ctx context.Context, txID int64) error {
	txs, err := s.repo.LoadTransactions(ctx)
	if err != nil {
		return err
	}

	kept := txs[:0]

	for _, tx := range txs {
		if tx.ID != txID {
			kept = append(kept, tx)
		}
	}

	return s.repo.SaveTransactions(ctx, kept)
}

type ListFilter struct {
	CardID *int64
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Transaction, error) {
	txs, err := s.repo.LoadTransactions(ctx)
	if err != nil {
		return nil, err
	}

	if filter.CardID == nil {
		return txs, nil
	}

	var out []Transaction

	for _, tx := range txs {
		if tx.CardID == *filter.CardID {
			out = append(out, tx)
		}
	}

	return out, nil
}
