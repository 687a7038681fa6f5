package goal

import (
	"github.com/moneta-dev/moneta/internal/card"
	"github.com/moneta-dev/moneta/internal/goal"
	"github.com/moneta-dev/moneta/internal/money"
)

type goalResponse struct {
	goal.Goal

	Saved     money.Amount `json:"saved"`
	Remaining money.Amount `json:"remaining"`
	Percent   int          `json:"percent"`
}

type transferResponse struct {
	Card card.Card    `json:"card"`
	Goal goalResponse `json:"goal"`
}

func toResponse(g goal.Goal) goalResponse {
	return goalResponse{
		Goal:      g,
		Saved:     g.Saved(),
		Remaining: g.Remaining(),
		Percent:   g.Percent(),
	}
}

func toResponseList(goals []goal.Goal) []goalResponse {
	resp := make([]goalResponse, len(goals))
	for i, g := range goals {
		resp[i] = toResponse(g)
	}

	return resp
}
