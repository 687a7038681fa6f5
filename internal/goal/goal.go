package goal

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/moneta-dev/moneta/internal/date"
	"github.com/moneta-dev/moneta/internal/money"
)

var hundred = decimal.NewFromInt(100)

// Goal is a savings goal. Older records carried the running total in
// currentAmount; transfers write savedAmount. Saved resolves the two.
type Goal struct {
	ID            int64         `json:"id"`
	Name          string        `json:"name"`
	TargetAmount  money.Amount  `json:"targetAmount"`
	SavedAmount   *money.Amount `json:"savedAmount,omitempty"`
	CurrentAmount money.Amount  `json:"currentAmount"`
	Deadline      date.Date     `json:"deadline"`
	Note          string        `json:"note"`
}

var ErrNotFound = errors.New("goal not found")

func (g Goal) Saved() money.Amount {
	if g.SavedAmount != nil {
		return *g.SavedAmount
	}

	return g.CurrentAmount
}

func (g Goal) Remaining() money.Amount {
	r := g.TargetAmount.Sub(g.Saved())
	if r.IsNegative() {
		return money.Zero()
	}

	return r
}

// Percent is the completion percentage, clamped to 100.
func (g Goal) Percent() int {
	if !g.TargetAmount.IsPositive() {
		return 0
	}

	p := int(g.Saved().Div(g.TargetAmount.Decimal).Mul(hundred).Round(0).IntPart())
	if p > 100 {
		return 100
	}

	return p
}
