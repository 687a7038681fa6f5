package card

import (
	"errors"

	"github.com/moneta-dev/moneta/internal/money"
)

// Network identifies the card scheme a number belongs to.
type Network string

const (
	NetworkVisa       Network = "Visa"
	NetworkMasterCard Network = "MasterCard"
	NetworkAmex       Network = "American Express"
	NetworkDiscover   Network = "Discover"
	NetworkJCB        Network = "JCB"
	NetworkMeza       Network = "MEZA"
	NetworkUnknown    Network = "Unknown"
)

// Card is a stored prepaid card. Number holds only the masked form; the raw
// number is used transiently for classification and never persisted.
type Card struct {
	ID            int64         `json:"id"`
	Type          Network       `json:"type"`
	Number        string        `json:"number"`
	Nickname      string        `json:"nickname"`
	MonthlyBudget *money.Amount `json:"monthlyBudget,omitempty"`
	Balance       money.Amount  `json:"balance"`
}

var ErrNotFound = errors.New("card not found")
