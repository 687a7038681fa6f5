package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/moneta-dev/moneta/internal/http/budget"
	"github.com/moneta-dev/moneta/internal/http/card"
	"github.com/moneta-dev/moneta/internal/http/dashboard"
	"github.com/moneta-dev/moneta/internal/http/debt"
	"github.com/moneta-dev/moneta/internal/http/goal"
	"github.com/moneta-dev/moneta/internal/http/investment"
	"github.com/moneta-dev/moneta/internal/http/profile"
	"github.com/moneta-dev/moneta/internal/http/recurring"
	"github.com/moneta-dev/moneta/internal/http/transaction"
)

func New(
	cardsV1 *card.Handler,
	transactionsV1 *transaction.Handler,
	goalsV1 *goal.Handler,
	debtsV1 *debt.Handler,
	budgetsV1 *budget.Handler,
	investmentsV1 *investment.Handler,
	profileV1 *profile.Handler,
	dashboardV1 *dashboard.Handler,
	recurringV1 *recurring.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/cards", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			cardsV1.Routes(r)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
		})

		r.Route("/goals", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			goalsV1.Routes(r)
		})

		r.Route("/debts", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			debtsV1.Routes(r)
		})

		r.Route("/budgets", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			budgetsV1.Routes(r)
		})

		r.Route("/investments", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			investmentsV1.Routes(r)
		})

		r.Route("/profile", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			profileV1.Routes(r)
		})

		r.Route("/dashboard", dashboardV1.Routes)

		r.Route("/recurring", recurringV1.Routes)
	})

	return router
}
