package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dmarques/financo/internal/http/account"
	"github.com/dmarques/financo/internal/http/analytics"
	"github.com/dmarques/financo/internal/http/budget"
	"github.com/dmarques/financo/internal/http/creditcard"
	"github.com/dmarques/financo/internal/http/goal"
	"github.com/dmarques/financo/internal/http/importcsv"
	"github.com/dmarques/financo/internal/http/rules"
	"github.com/dmarques/financo/internal/http/transaction"
)

func New(
	accountsV1 *account.Handler,
	transactionsV1 *transaction.Handler,
	cardsV1 *creditcard.Handler,
	budgetsV1 *budget.Handler,
	goalsV1 *goal.Handler,
	rulesV1 *rules.Handler,
	analyticsV1 *analytics.Handler,
	importV1 *importcsv.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		jsonOnly := middleware.AllowContentType("application/json")

		r.Route("/accounts", func(r chi.Router) {
			r.Use(jsonOnly)
			accountsV1.Routes(r)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Use(jsonOnly)
			transactionsV1.Routes(r)
		})

		r.Route("/credit-cards", func(r chi.Router) {
			r.Use(jsonOnly)
			cardsV1.Routes(r)
		})

		r.Route("/budgets", func(r chi.Router) {
			r.Use(jsonOnly)
			budgetsV1.Routes(r)
		})

		r.Route("/goals", func(r chi.Router) {
			r.Use(jsonOnly)
			goalsV1.Routes(r)
		})

		r.Route("/rules", func(r chi.Router) {
			r.Use(jsonOnly)
			rulesV1.Routes(r)
		})

		r.Route("/analytics", analyticsV1.Routes)

		r.Route("/import", importV1.Routes)
	})

	return router
}
