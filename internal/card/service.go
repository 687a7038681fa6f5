package card

import (
	"context"
	"time"

	"github.com/moneta-dev/moneta/internal/date"
	"github.com/moneta-dev/moneta/internal/id"
	"github.com/moneta-dev/moneta/internal/money"
	"github.com/moneta-dev/moneta/internal/transaction"
)

type Repository interface {
	LoadCards(ctx context.Context) ([]Card, error)
	SaveCards(ctx context.Context, cards []Card) error
	LoadTransactions(ctx context.Context) ([]transaction.Transaction, error)
	SaveTransactions(ctx context.Context, txs []transaction.Transaction) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateParams carries the raw form values for a new or edited card.
type CreateParams struct {
	Number        string
	Nickname      string
	MonthlyBudget string
}

func (s *Service) Create(ctx context.Context, p CreateParams) (*Card, error) {
	v, err := Validate(p.Number, p.MonthlyBudget)
	if err != nil {
		return nil, err
	}

	cards, err := s.repo.LoadCards(ctx)
	if err != nil {
		return nil, err
	}

	c := Card{
		ID:            id.Next(),
		Type:          v.Network,
		Number:        v.MaskedNumber,
		Nickname:      p.Nickname,
		MonthlyBudget: v.MonthlyBudget,
	}

	cards = append(cards, c)
	if err := s.repo.SaveCards(ctx, cards); err != nil {
		return nil, err
	}

	return &c, nil
}

// Update re-runs full validation; editing requires the raw number again so the
// network label and mask are fixed from the same gate as creation.
func (s *Service) Update(ctx context.Context, cardID int64, p CreateParams) (*Card, error) {
	v, err := Validate(p.Number, p.MonthlyBudget)
	if err != nil {
		return nil, err
	}

	cards, err := s.repo.LoadCards(ctx)
	if err != nil {
		return nil, err
	}

	for i := range cards {
		if cards[i].ID != cardID {
			continue
		}

		cards[i].Type = v.Network
		cards[i].Number = v.MaskedNumber
		cards[i].Nickname = p.Nickname
		cards[i].MonthlyBudget = v.MonthlyBudget

		if err := s.repo.SaveCards(ctx, cards); err != nil {
			return nil, err
		}

		return &cards[i], nil
	}

	return nil, ErrNotFound
}

// Delete removes the card only. Transactions and debts keeping its id resolve
// to "Unknown" at display time; there is no cascade.
func (s *Service) Delete(ctx context.Context, cardID int64) error {
	cards, err := s.repo.LoadCards(ctx)
	if err != nil {
		return err
	}

	kept := cards[:0]

	for _, c := range cards {
		if c.ID != cardID {
			kept = append(kept, c)
		}
	}

	return s.repo.SaveCards(ctx, kept)
}

func (s *Service) List(ctx context.Context) ([]Card, error) {
	return s.repo.LoadCards(ctx)
}

func (s *Service) Get(ctx context.Context, cardID int64) (*Card, error) {
	cards, err := s.repo.LoadCards(ctx)
	if err != nil {
		return nil, err
	}

	for i := range cards {
		if cards[i].ID == cardID {
			return &cards[i], nil
		}
	}

	return nil, ErrNotFound
}

// AddMoney records a deposit transaction against the card. It does not touch
// the card's balance field; deposits live in the transaction ledger.
func (s *Service) AddMoney(ctx context.Context, cardID int64, amount, note string) (*transaction.Transaction, error) {
	amt, err := money.Parse(amount)
	if err != nil || !amt.IsPositive() {
		return nil, transaction.ErrInvalidAmount
	}

	if _, err := s.Get(ctx, cardID); err != nil {
		return nil, err
	}

	if note == "" {
		note = "Manual deposit"
	}

	txs, err := s.repo.LoadTransactions(ctx)
	if err != nil {
		return nil, err
	}

	tx := transaction.Transaction{
		ID:     id.Next(),
		CardID: cardID,
		Type:   transaction.TypeDeposit,
		Amount: amt,
		Date:   date.Today(),
		Note:   note,
	}

	txs = append(txs, tx)
	if err := s.repo.SaveTransactions(ctx, txs); err != nil {
		return nil, err
	}

	return &tx, nil
}

// MonthlySpending sums the card's withdrawals for the month containing now.
func (s *Service) MonthlySpending(ctx context.Context, cardID int64, now time.Time) (money.Amount, error) {
	txs, err := s.repo.LoadTransactions(ctx)
	if err != nil {
		return money.Zero(), err
	}

	return monthlySpend(txs, cardID, now), nil
}

// WithSpending pairs a card with its current-month spending for budget bars.
type WithSpending struct {
	Card
	SpentThisMonth money.Amount
	OverBudget     bool
}

func (s *Service) ListWithSpending(ctx context.Context, now time.Time) ([]WithSpending, error) {
	cards, err := s.repo.LoadCards(ctx)
	if err != nil {
		return nil, err
	}

	txs, err := s.repo.LoadTransactions(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]WithSpending, 0, len(cards))

	for _, c := range cards {
		spent := monthlySpend(txs, c.ID, now)

		over := c.MonthlyBudget != nil && c.MonthlyBudget.IsPositive() && spent.GreaterThan(*c.MonthlyBudget)
		out = append(out, WithSpending{Card: c, SpentThisMonth: spent, OverBudget: over})
	}

	return out, nil
}

func monthlySpend(txs []transaction.Transaction, cardID int64, now time.Time) money.Amount {
	total := money.Zero()

	for _, tx := range txs {
		if tx.CardID == cardID && tx.Type == transaction.TypeWithdrawal && tx.Date.SameMonth(now) {
			total = total.Add(tx.Amount)
		}
	}

	return total
}
