package card

import (
	"github.com/moneta-dev/moneta/internal/card"
	"github.com/moneta-dev/moneta/internal/money"
)

type cardResponse struct {
	card.Card

	SpentThisMonth money.Amount `json:"spentThisMonth"`
	OverBudget     bool         `json:"overBudget"`
}

func toResponseList(cards []card.WithSpending) []cardResponse {
	resp := make([]cardResponse, len(cards))
	for i, c := range cards {
		resp[i] = cardResponse{
			Card:           c.Card,
			SpentThisMonth: c.SpentThisMonth,
			OverBudget:     c.OverBudget,
		}
	}

	return resp
}
