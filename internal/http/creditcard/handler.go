package creditcard

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmarques/financo/internal/creditcard"
)

type Handler struct {
	svc *creditcard.Service
}

func NewHandler(svc *creditcard.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type cardResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Bank       string    `json:"bank,omitempty"`
	Limit      int64     `json:"limit"`
	Balance    int64     `json:"balance"`
	Available  int64     `json:"available"`
	DueDay     int       `json:"due_day"`
	ClosingDay int       `json:"closing_day"`
	Color      string    `json:"color,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func toResponse(c *creditcard.Card) cardResponse {
	return cardResponse{
		ID:         c.ID,
		Name:       c.Name,
		Bank:       c.Bank,
		Limit:      c.LimitCents,
		Balance:    c.CurrentBalanceCents,
		Available:  c.AvailableCents(),
		DueDay:     c.DueDay,
		ClosingDay: c.ClosingDay,
		Color:      c.Color,
		CreatedAt:  c.CreatedAt,
	}
}

type createCardRequest struct {
	Name       string `json:"name"`
	Bank       string `json:"bank"`
	Limit      int64  `json:"limit"`
	Balance    int64  `json:"balance"`
	DueDay     int    `json:"due_day"`
	ClosingDay int    `json:"closing_day"`
	Color      string `json:"color"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.Create(r.Context(), creditcard.CreateParams{
		Name:                req.Name,
		Bank:                req.Bank,
		LimitCents:          req.Limit,
		CurrentBalanceCents: req.Balance,
		DueDay:              req.DueDay,
		ClosingDay:          req.ClosingDay,
		Color:               req.Color,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	cards, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]cardResponse, len(cards))
	for i, c := range cards {
		resp[i] = toResponse(c)
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

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, creditcard.ErrNotFound) {
			http.Error(w, "credit card not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateCardRequest struct {
	Name       *string `json:"name,omitempty"`
	Bank       *string `json:"bank,omitempty"`
	Limit      *int64  `json:"limit,omitempty"`
	Balance    *int64  `json:"balance,omitempty"`
	DueDay     *int    `json:"due_day,omitempty"`
	ClosingDay *int    `json:"closing_day,omitempty"`
	Color      *string `json:"color,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, creditcard.ErrNotFound) {
			http.Error(w, "credit card not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Name != nil {
		c.Name = *req.Name
	}

	if req.Bank != nil {
		c.Bank = *req.Bank
	}

	if req.Limit != nil {
		c.LimitCents = *req.Limit
	}

	if req.Balance != nil {
		c.CurrentBalanceCents = *req.Balance
	}

	if req.DueDay != nil {
		c.DueDay = *req.DueDay
	}

	if req.ClosingDay != nil {
		c.ClosingDay = *req.ClosingDay
	}

	if req.Color != nil {
		c.Color = *req.Color
	}

	if err := h.svc.Update(r.Context(), c); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
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

	w.WriteHeader(http.StatusNoContent)
}
