package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneta-dev/moneta/internal/card"
	"github.com/moneta-dev/moneta/internal/debt"
	"github.com/moneta-dev/moneta/internal/goal"
	"github.com/moneta-dev/moneta/internal/investment"
	"github.com/moneta-dev/moneta/internal/money"
	"github.com/moneta-dev/moneta/internal/transaction"
)

type Repository interface {
	LoadCards(ctx context.Context) ([]card.Card, error)
	LoadTransactions(ctx context.Context) ([]transaction.Transaction, error)
	LoadGoals(ctx context.Context) ([]goal.Goal, error)
	LoadDebts(ctx context.Context) ([]debt.Debt, error)
	LoadInvestments(ctx context.Context) ([]investment.Investment, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CategorySpend is one slice of the all-time spending breakdown. Withdrawals
// without a note fall into "Other".
type CategorySpend struct {
	Name  string       `json:"name"`
	Value money.Amount `json:"value"`
}

type Summary struct {
	TotalBalance       money.Amount              `json:"totalBalance"`
	MonthlyIncome      money.Amount              `json:"monthlyIncome"`
	MonthlyExpenses    money.Amount              `json:"monthlyExpenses"`
	InvestmentTotal    money.Amount              `json:"investmentTotal"`
	GoalCompletion     int                       `json:"goalCompletion"`
	DebtRepayment      int                       `json:"debtRepayment"`
	SpendingCategories []CategorySpend           `json:"spendingCategories"`
	RecentTransactions []transaction.Transaction `json:"recentTransactions"`
}

// Summarize computes every dashboard aggregate from the current collections.
// Nothing here is persisted; the numbers are re-derived on every call.
func (s *Service) Summarize(ctx context.Context) (Summary, error) {
	cards, err := s.repo.LoadCards(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("load cards: %w", err)
	}

	txs, err := s.repo.LoadTransactions(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("load transactions: %w", err)
	}

	goals, err := s.repo.LoadGoals(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("load goals: %w", err)
	}

	debts, err := s.repo.LoadDebts(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("load debts: %w", err)
	}

	investments, err := s.repo.LoadInvestments(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("load investments: %w", err)
	}

	income, expenses := monthlyFlows(txs, time.Now())

	return Summary{
		TotalBalance:       totalBalance(cards, txs),
		MonthlyIncome:      income,
		MonthlyExpenses:    expenses,
		InvestmentTotal:    investmentTotal(investments),
		GoalCompletion:     goalCompletion(goals),
		DebtRepayment:      debtRepayment(debts),
		SpendingCategories: spendingCategories(txs),
		RecentTransactions: recentTransactions(txs),
	}, nil
}

// totalBalance sums each existing card's transaction flow. Transactions that
// reference a deleted card contribute nothing.
func totalBalance(cards []card.Card, txs []transaction.Transaction) money.Amount {
	total := money.Zero()

	for _, c := range cards {
		for _, tx := range txs {
			if tx.CardID != c.ID {
				continue
			}

			switch tx.Type {
			case transaction.TypeDeposit:
				total = total.Add(tx.Amount)
			case transaction.TypeWithdrawal:
				total = total.Sub(tx.Amount)
			}
		}
	}

	return total
}

func monthlyFlows(txs []transaction.Transaction, now time.Time) (income, expenses money.Amount) {
	income = money.Zero()
	expenses = money.Zero()

	for _, tx := range txs {
		if !tx.Date.SameMonth(now) {
			continue
		}

		switch tx.Type {
		case transaction.TypeDeposit:
			income = income.Add(tx.Amount)
		case transaction.TypeWithdrawal:
			expenses = expenses.Add(tx.Amount)
		}
	}

	return income, expenses
}

func investmentTotal(investments []investment.Investment) money.Amount {
	total := money.Zero()
	for _, inv := range investments {
		total = total.Add(inv.Amount)
	}

	return total
}

// goalCompletion is the mean per-goal completion ratio, each capped at 100%.
// A goal with a non-positive target contributes zero rather than dividing by it.
func goalCompletion(goals []goal.Goal) int {
	if len(goals) == 0 {
		return 0
	}

	one := decimal.NewFromInt(1)
	sum := decimal.Zero

	for _, g := range goals {
		if !g.TargetAmount.IsPositive() {
			continue
		}

		ratio := g.Saved().Div(g.TargetAmount.Decimal)
		if ratio.GreaterThan(one) {
			ratio = one
		}

		sum = sum.Add(ratio)
	}

	return meanPercent(sum, len(goals))
}

func debtRepayment(debts []debt.Debt) int {
	if len(debts) == 0 {
		return 0
	}

	one := decimal.NewFromInt(1)
	sum := decimal.Zero

	for _, d := range debts {
		if !d.TotalAmount.IsPositive() {
			continue
		}

		ratio := d.PaidAmount.Div(d.TotalAmount.Decimal)
		if ratio.GreaterThan(one) {
			ratio = one
		}

		sum = sum.Add(ratio)
	}

	return meanPercent(sum, len(debts))
}

func meanPercent(sum decimal.Decimal, n int) int {
	mean := sum.Div(decimal.NewFromInt(int64(n))).Mul(decimal.NewFromInt(100))

	return int(mean.Round(0).IntPart())
}

// spendingCategories groups all-time withdrawals by note, in first-seen order.
func spendingCategories(txs []transaction.Transaction) []CategorySpend {
	totals := make(map[string]money.Amount)

	var order []string

	for _, tx := range txs {
		if tx.Type != transaction.TypeWithdrawal {
			continue
		}

		name := tx.Note
		if name == "" {
			name = "Other"
		}

		if _, seen := totals[name]; !seen {
			order = append(order, name)
		}

		totals[name] = totals[name].Add(tx.Amount)
	}

	out := make([]CategorySpend, 0, len(order))
	for _, name := range order {
		out = append(out, CategorySpend{Name: name, Value: totals[name]})
	}

	return out
}

func recentTransactions(txs []transaction.Transaction) []transaction.Transaction {
	sorted := make([]transaction.Transaction, len(txs))
	copy(sorted, txs)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[j].Date.Before(sorted[i].Date)
	})

	if len(sorted) > 5 {
		sorted = sorted[:5]
	}

	return sorted
}
