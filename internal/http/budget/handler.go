package budget

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmarques/financo/internal/budget"
	"github.com/dmarques/financo/internal/cache"
)

type Handler struct {
	svc      *budget.Service
	analytic *cache.Cache
}

func NewHandler(svc *budget.Service, analytic *cache.Cache) *Handler {
	return &Handler{svc: svc, analytic: analytic}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type budgetResponse struct {
	ID        uuid.UUID     `json:"id"`
	Category  string        `json:"category"`
	Limit     int64         `json:"limit"`
	Period    budget.Period `json:"period"`
	Color     string        `json:"color,omitempty"`
	Alerts    bool          `json:"alerts"`
	CreatedAt time.Time     `json:"created_at"`
}

func toResponse(b *budget.Budget) budgetResponse {
	return budgetResponse{
		ID:        b.ID,
		Category:  b.Category,
		Limit:     b.LimitCents,
		Period:    b.Period,
		Color:     b.Color,
		Alerts:    b.Alerts,
		CreatedAt: b.CreatedAt,
	}
}

type createBudgetRequest struct {
	Category string        `json:"category"`
	Limit    int64         `json:"limit"`
	Period   budget.Period `json:"period"`
	Color    string        `json:"color"`
	Alerts   bool          `json:"alerts"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	b, err := h.svc.Create(r.Context(), budget.CreateParams{
		Category:   req.Category,
		LimitCents: req.Limit,
		Period:     req.Period,
		Color:      req.Color,
		Alerts:     req.Alerts,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.analytic.Purge()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(b)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	budgets, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]budgetResponse, len(budgets))
	for i, b := range budgets {
		resp[i] = toResponse(b)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	b, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, budget.ErrNotFound) {
			http.Error(w, "budget not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(b)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateBudgetRequest struct {
	Category *string        `json:"category,omitempty"`
	Limit    *int64         `json:"limit,omitempty"`
	Period   *budget.Period `json:"period,omitempty"`
	Color    *string        `json:"color,omitempty"`
	Alerts   *bool          `json:"alerts,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	b, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, budget.ErrNotFound) {
			http.Error(w, "budget not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Category != nil {
		b.Category = *req.Category
	}

	if req.Limit != nil {
		b.LimitCents = *req.Limit
	}

	if req.Period != nil {
		b.Period = *req.Period
	}

	if req.Color != nil {
		b.Color = *req.Color
	}

	if req.Alerts != nil {
		b.Alerts = *req.Alerts
	}

	if err := h.svc.Update(r.Context(), b); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.analytic.Purge()

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(b)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.analytic.Purge()

	w.WriteHeader(http.StatusNoContent)
}
