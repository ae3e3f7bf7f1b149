// Package analytics serves the computed views: spending patterns, monthly
// series, budget and goal projections, the financial score, outliers and
// insights. Responses are memoized in a bounded TTL cache keyed by
// endpoint and parameters; every write elsewhere purges it.
package analytics

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dmarques/financo/internal/analytics"
	"github.com/dmarques/financo/internal/cache"
	"github.com/dmarques/financo/internal/insight"
	"github.com/dmarques/financo/internal/snapshot"
	"github.com/dmarques/financo/internal/transaction"
)

const defaultMonths = 6

type Handler struct {
	loader *snapshot.Loader
	cache  *cache.Cache
}

func NewHandler(loader *snapshot.Loader, cache *cache.Cache) *Handler {
	return &Handler{loader: loader, cache: cache}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/patterns", h.patterns)
	r.Get("/monthly", h.monthly)
	r.Get("/budgets", h.budgets)
	r.Get("/goals", h.goals)
	r.Get("/score", h.score)
	r.Get("/outliers", h.outliers)
	r.Get("/insights", h.insights)
}

// serve answers from the cache when possible, otherwise loads a fresh
// snapshot and computes through fn.
func (h *Handler) serve(w http.ResponseWriter, r *http.Request, key string, fn func(e *analytics.Engine) any) {
	if v, ok := h.cache.Get(key); ok {
		writeJSON(w, v)
		return
	}

	snap, err := h.loader.Load(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	v := fn(analytics.New(snap))
	h.cache.Set(key, v)

	writeJSON(w, v)
}

func (h *Handler) patterns(w http.ResponseWriter, r *http.Request) {
	period := analytics.Period(r.URL.Query().Get("period"))
	switch period {
	case analytics.PeriodMonth, analytics.PeriodQuarter, analytics.PeriodYear, analytics.PeriodAll:
	case "":
		period = analytics.PeriodMonth
	default:
		http.Error(w, "invalid period", http.StatusBadRequest)
		return
	}

	h.serve(w, r, "patterns:"+string(period), func(e *analytics.Engine) any {
		return toPatternList(e.SpendingPatterns(period))
	})
}

func (h *Handler) monthly(w http.ResponseWriter, r *http.Request) {
	months := defaultMonths

	if s := r.URL.Query().Get("months"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			http.Error(w, "invalid months", http.StatusBadRequest)
			return
		}

		months = n
	}

	h.serve(w, r, "monthly:"+strconv.Itoa(months), func(e *analytics.Engine) any {
		return toMonthlyList(e.MonthlyAnalysis(months))
	})
}

func (h *Handler) budgets(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "budgets", func(e *analytics.Engine) any {
		return toBudgetList(e.BudgetAnalysis())
	})
}

func (h *Handler) goals(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "goals", func(e *analytics.Engine) any {
		return toGoalList(e.GoalAnalysis())
	})
}

func (h *Handler) score(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "score", func(e *analytics.Engine) any {
		return toScoreResponse(e.FinancialScore())
	})
}

func (h *Handler) outliers(w http.ResponseWriter, r *http.Request) {
	txType := transaction.Type(r.URL.Query().Get("type"))
	if txType == "" {
		txType = transaction.TypeExpense
	}

	if txType != transaction.TypeIncome && txType != transaction.TypeExpense {
		http.Error(w, "invalid type", http.StatusBadRequest)
		return
	}

	h.serve(w, r, "outliers:"+string(txType), func(e *analytics.Engine) any {
		return toOutlierList(e.Outliers(txType))
	})
}

func (h *Handler) insights(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "insights", func(e *analytics.Engine) any {
		return toInsightList(insight.Generate(e))
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
