package budget

import (
	"errors"

	"github.com/moneta-dev/moneta/internal/money"
)

// Budget is a monthly spending limit for a category. Spend against it is
// derived from withdrawal transactions whose note matches the category.
type Budget struct {
	ID       int64        `json:"id"`
	Category string       `json:"category"`
	Amount   money.Amount `json:"amount"`
}

var ErrNotFound = errors.New("budget not found")
