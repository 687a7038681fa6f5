package investment

import (
	"errors"

	"github.com/moneta-dev/moneta/internal/date"
	"github.com/moneta-dev/moneta/internal/money"
)

type Investment struct {
	ID            int64        `json:"id"`
	Name          string       `json:"name"`
	Amount        money.Amount `json:"amount"`
	InterestRate  money.Amount `json:"interestRate"`
	MonthlyIncome money.Amount `json:"monthlyIncome"`
	MaturityDate  date.Date    `json:"maturityDate"`
	Note          string       `json:"note"`
}

var ErrNotFound = errors.New("investment not found")
