package transaction

import (
	"errors"

	"github.com/moneta-dev/moneta/internal/date"
	"github.com/moneta-dev/moneta/internal/money"
)

// Type represents the direction of a card transaction.
type Type string

const (
	TypeDeposit    Type = "Deposit"
	TypeWithdrawal Type = "Withdrawal"
)

// Transaction is a single card movement. Note doubles as the spending
// category label for withdrawals.
type Transaction struct {
	ID     int64        `json:"id"`
	CardID int64        `json:"cardId"`
	Type   Type         `json:"type"`
	Amount money.Amount `json:"amount"`
	Date   date.Date    `json:"date"`
	Note   string       `json:"note"`
}

var (
	ErrNotFound      = errors.New("transaction not found")
	ErrInvalidAmount = errors.New("amount must be a positive number")
	ErrInvalidType   = errors.New("type must be Deposit or Withdrawal")
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidCard   = errors.New("invalid card reference")
)
