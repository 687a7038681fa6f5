package ledger

import (
	"context"
	"strconv"
	"time"

	"github.com/moneta-dev/moneta/internal/card"
	"github.com/moneta-dev/moneta/internal/date"
	"github.com/moneta-dev/moneta/internal/debt"
	"github.com/moneta-dev/moneta/internal/goal"
	"github.com/moneta-dev/moneta/internal/id"
	"github.com/moneta-dev/moneta/internal/money"
)

// Repository is the snapshot the engine operates on: whole collections loaded,
// mutated in memory and written back whole.
type Repository interface {
	LoadCards(ctx context.Context) ([]card.Card, error)
	SaveCards(ctx context.Context, cards []card.Card) error
	LoadGoals(ctx context.Context) ([]goal.Goal, error)
	SaveGoals(ctx context.Context, goals []goal.Goal) error
	LoadDebts(ctx context.Context) ([]debt.Debt, error)
	SaveDebts(ctx context.Context, debts []debt.Debt) error
	LoadGoalHistory(ctx context.Context) ([]GoalHistoryEntry, error)
	SaveGoalHistory(ctx context.Context, entries []GoalHistoryEntry) error
	LoadDebtHistory(ctx context.Context) ([]DebtHistoryEntry, error)
	SaveDebtHistory(ctx context.Context, entries []DebtHistoryEntry) error
	LoadActivity(ctx context.Context) ([]Activity, error)
	SaveActivity(ctx context.Context, activity []Activity) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// TransferParams are the raw form values of a transfer. CardID is the
// selected card's id as a string; empty means no card was selected.
type TransferParams struct {
	Amount string
	CardID string
	Note   string
}

type GoalTransferResult struct {
	Card card.Card
	Goal goal.Goal
}

type DebtTransferResult struct {
	Card card.Card
	Debt debt.Debt
}

// DepositToGoal moves money from a card onto a goal.
func (s *Service) DepositToGoal(ctx context.Context, goalID int64, p TransferParams) (*GoalTransferResult, error) {
	return s.goalTransfer(ctx, goalID, p, OpDeposit)
}

// WithdrawFromGoal draws the goal's saved amount down. Note the paying card
// is debited here as well, not credited.
func (s *Service) WithdrawFromGoal(ctx context.Context, goalID int64, p TransferParams) (*GoalTransferResult, error) {
	return s.goalTransfer(ctx, goalID, p, OpWithdraw)
}

func (s *Service) goalTransfer(ctx context.Context, goalID int64, p TransferParams, op string) (*GoalTransferResult, error) {
	goals, err := s.repo.LoadGoals(ctx)
	if err != nil {
		return nil, err
	}

	goalIdx := -1

	for i := range goals {
		if goals[i].ID == goalID {
			goalIdx = i
			break
		}
	}

	if goalIdx == -1 {
		return nil, goal.ErrNotFound
	}

	cards, err := s.repo.LoadCards(ctx)
	if err != nil {
		return nil, err
	}

	fail := func(kind Kind, note string, amt money.Amount) (*GoalTransferResult, error) {
		entry := GoalHistoryEntry{
			ID:     id.Next(),
			GoalID: goalID,
			Type:   op,
			Amount: amt,
			Note:   note,
			Date:   date.Today(),
			Status: StatusFailed,
		}

		if err := s.appendGoalHistory(ctx, entry); err != nil {
			return nil, err
		}

		return nil, &Failure{Kind: kind}
	}

	amt, parseErr := money.Parse(p.Amount)
	if parseErr != nil || !amt.IsPositive() {
		// The failed record still names the selected card when there is one.
		note := p.Note
		if p.CardID != "" {
			note += fromSuffix(cardNickname(cards, p.CardID))
		}

		return fail(KindInvalidAmount, note, amt)
	}

	if p.CardID == "" {
		return fail(KindNoCardSelected, p.Note, amt)
	}

	cardIdx := findCard(cards, p.CardID)
	if cardIdx == -1 {
		return fail(KindCardNotFound, p.Note, amt)
	}

	paying := &cards[cardIdx]
	noted := p.Note + fromSuffix(paying.Nickname)

	if amt.GreaterThan(paying.Balance) {
		return fail(KindInsufficientFunds, noted, amt)
	}

	g := &goals[goalIdx]

	if op == OpWithdraw && amt.GreaterThan(g.Saved()) {
		return fail(KindExceedsSaved, noted, amt)
	}

	paying.Balance = paying.Balance.Sub(amt)

	saved := g.Saved()
	if op == OpDeposit {
		saved = saved.Add(amt)
	} else {
		saved = saved.Sub(amt)
	}

	g.SavedAmount = &saved

	if err := s.repo.SaveCards(ctx, cards); err != nil {
		return nil, err
	}

	if err := s.repo.SaveGoals(ctx, goals); err != nil {
		return nil, err
	}

	entry := GoalHistoryEntry{
		ID:     id.Next(),
		GoalID: goalID,
		Type:   op,
		Amount: amt,
		Note:   noted,
		Date:   date.Today(),
		Status: StatusSuccess,
	}
	if err := s.appendGoalHistory(ctx, entry); err != nil {
		return nil, err
	}

	activityType := ActivityGoalDeposit
	if op == OpWithdraw {
		activityType = ActivityGoalWithdraw
	}

	err = s.pushActivity(ctx, Activity{
		Type:   activityType,
		Amount: amt,
		Note:   p.Note,
		Date:   time.Now(),
		Name:   g.Name,
		Card:   paying.Nickname,
	})
	if err != nil {
		return nil, err
	}

	return &GoalTransferResult{Card: *paying, Goal: *g}, nil
}

// RepayDebt moves money from a card onto a debt's paid amount. The amount may
// not exceed the remaining balance regardless of card funds.
func (s *Service) RepayDebt(ctx context.Context, debtID int64, p TransferParams) (*DebtTransferResult, error) {
	debts, err := s.repo.LoadDebts(ctx)
	if err != nil {
		return nil, err
	}

	debtIdx := -1

	for i := range debts {
		if debts[i].ID == debtID {
			debtIdx = i
			break
		}
	}

	if debtIdx == -1 {
		return nil, debt.ErrNotFound
	}

	cards, err := s.repo.LoadCards(ctx)
	if err != nil {
		return nil, err
	}

	fail := func(kind Kind, note string, amt money.Amount) (*DebtTransferResult, error) {
		entry := DebtHistoryEntry{
			ID:     id.Next(),
			DebtID: debtID,
			Amount: amt,
			Note:   note,
			Date:   date.Today(),
			Status: StatusFailed,
		}

		if err := s.appendDebtHistory(ctx, entry); err != nil {
			return nil, err
		}

		return nil, &Failure{Kind: kind}
	}

	amt, parseErr := money.Parse(p.Amount)
	if parseErr != nil || !amt.IsPositive() {
		note := p.Note
		if p.CardID != "" {
			note += fromSuffix(cardNickname(cards, p.CardID))
		}

		return fail(KindInvalidAmount, note, amt)
	}

	if p.CardID == "" {
		return fail(KindNoCardSelected, p.Note, amt)
	}

	cardIdx := findCard(cards, p.CardID)
	if cardIdx == -1 {
		return fail(KindCardNotFound, p.Note, amt)
	}

	paying := &cards[cardIdx]
	noted := p.Note + fromSuffix(paying.Nickname)

	if amt.GreaterThan(paying.Balance) {
		return fail(KindInsufficientFunds, noted, amt)
	}

	d := &debts[debtIdx]

	if amt.GreaterThan(d.Remaining()) {
		return fail(KindExceedsRemaining, noted, amt)
	}

	paying.Balance = paying.Balance.Sub(amt)
	d.PaidAmount = d.PaidAmount.Add(amt)

	if err := s.repo.SaveCards(ctx, cards); err != nil {
		return nil, err
	}

	if err := s.repo.SaveDebts(ctx, debts); err != nil {
		return nil, err
	}

	entry := DebtHistoryEntry{
		ID:     id.Next(),
		DebtID: debtID,
		Amount: amt,
		Note:   noted,
		Date:   date.Today(),
		Status: StatusSuccess,
	}
	if err := s.appendDebtHistory(ctx, entry); err != nil {
		return nil, err
	}

	err = s.pushActivity(ctx, Activity{
		Type:   ActivityDebtRepayment,
		Amount: amt,
		Note:   p.Note,
		Date:   time.Now(),
		Name:   d.Name,
		Card:   paying.Nickname,
	})
	if err != nil {
		return nil, err
	}

	return &DebtTransferResult{Card: *paying, Debt: *d}, nil
}

// GoalHistory returns the goal's attempts, newest first.
func (s *Service) GoalHistory(ctx context.Context, goalID int64) ([]GoalHistoryEntry, error) {
	entries, err := s.repo.LoadGoalHistory(ctx)
	if err != nil {
		return nil, err
	}

	var out []GoalHistoryEntry

	for _, e := range entries {
		if e.GoalID == goalID {
			out = append(out, e)
		}
	}

	return out, nil
}

// DebtHistory returns the debt's attempts, newest first.
func (s *Service) DebtHistory(ctx context.Context, debtID int64) ([]DebtHistoryEntry, error) {
	entries, err := s.repo.LoadDebtHistory(ctx)
	if err != nil {
		return nil, err
	}

	var out []DebtHistoryEntry

	for _, e := range entries {
		if e.DebtID == debtID {
			out = append(out, e)
		}
	}

	return out, nil
}

// RecentActivity returns the global log, newest first, at most 20 entries.
func (s *Service) RecentActivity(ctx context.Context) ([]Activity, error) {
	return s.repo.LoadActivity(ctx)
}

func (s *Service) appendGoalHistory(ctx context.Context, entry GoalHistoryEntry) error {
	entries, err := s.repo.LoadGoalHistory(ctx)
	if err != nil {
		return err
	}

	entries = append([]GoalHistoryEntry{entry}, entries...)

	return s.repo.SaveGoalHistory(ctx, entries)
}

func (s *Service) appendDebtHistory(ctx context.Context, entry DebtHistoryEntry) error {
	entries, err := s.repo.LoadDebtHistory(ctx)
	if err != nil {
		return err
	}

	entries = append([]DebtHistoryEntry{entry}, entries...)

	return s.repo.SaveDebtHistory(ctx, entries)
}

func (s *Service) pushActivity(ctx context.Context, a Activity) error {
	activity, err := s.repo.LoadActivity(ctx)
	if err != nil {
		return err
	}

	activity = append([]Activity{a}, activity...)
	if len(activity) > activityLimit {
		activity = activity[:activityLimit]
	}

	return s.repo.SaveActivity(ctx, activity)
}

// findCard matches the raw selected id against the card set. Matching is by
// string form, so a non-numeric selection simply finds nothing.
func findCard(cards []card.Card, rawID string) int {
	for i := range cards {
		if strconv.FormatInt(cards[i].ID, 10) == rawID {
			return i
		}
	}

	return -1
}

func cardNickname(cards []card.Card, rawID string) string {
	if i := findCard(cards, rawID); i != -1 {
		return cards[i].Nickname
	}

	return ""
}

func fromSuffix(nickname string) string {
	return " (from " + nickname + ")"
}
