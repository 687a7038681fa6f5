package debt

import (
	"github.com/moneta-dev/moneta/internal/card"
	"github.com/moneta-dev/moneta/internal/debt"
	"github.com/moneta-dev/moneta/internal/money"
)

type debtResponse struct {
	debt.Debt

	Remaining money.Amount `json:"remaining"`
	Percent   int          `json:"percent"`
}

type repayResponse struct {
	Card card.Card    `json:"card"`
	Debt debtResponse `json:"debt"`
}

func toResponse(d debt.Debt) debtResponse {
	return debtResponse{
		Debt:      d,
		Remaining: d.Remaining(),
		Percent:   d.Percent(),
	}
}

func toResponseList(debts []debt.Debt) []debtResponse {
	resp := make([]debtResponse, len(debts))
	for i, d := range debts {
		resp[i] = toResponse(d)
	}

	return resp
}
