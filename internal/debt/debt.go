package debt

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/moneta-dev/moneta/internal/date"
	"github.com/moneta-dev/moneta/internal/money"
)

var hundred = decimal.NewFromInt(100)

// Debt is money owed to a creditor. CreditorCard optionally references a
// stored card; the reference may dangle after a card delete.
type Debt struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	TotalAmount  money.Amount `json:"totalAmount"`
	PaidAmount   money.Amount `json:"paidAmount"`
	DueDate      date.Date    `json:"dueDate"`
	Creditor     string       `json:"creditor"`
	CreditorCard *int64       `json:"creditorCard,omitempty"`
	Note         string       `json:"note"`
}

var ErrNotFound = errors.New("debt not found")

// Remaining is the unpaid balance, floored at zero.
func (d Debt) Remaining() money.Amount {
	r := d.TotalAmount.Sub(d.PaidAmount)
	if r.IsNegative() {
		return money.Zero()
	}

	return r
}

func (d Debt) Percent() int {
	if !d.TotalAmount.IsPositive() {
		return 0
	}

	return int(d.PaidAmount.Div(d.TotalAmount.Decimal).Mul(hundred).Round(0).IntPart())
}
