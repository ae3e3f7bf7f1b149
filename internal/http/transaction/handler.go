package transaction

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmarques/financo/internal/cache"
	"github.com/dmarques/financo/internal/category"
	"github.com/dmarques/financo/internal/similarity"
	"github.com/dmarques/financo/internal/transaction"
)

type Handler struct {
	svc      *transaction.Service
	engine   *category.Engine
	analytic *cache.Cache
}

func NewHandler(svc *transaction.Service, engine *category.Engine, analytic *cache.Cache) *Handler {
	return &Handler{svc: svc, engine: engine, analytic: analytic}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/suggestions", h.suggestions)
	r.Get("/similar", h.similar)
	r.Post("/categorize", h.categorize)
	r.Get("/{id}", h.get)
	r.Patch("/{id}/category", h.applyCategory)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createTransactionRequest struct {
	Description string           `json:"description"`
	Amount      int64            `json:"amount"`
	Type        transaction.Type `json:"type"`
	Category    string           `json:"category"`
	AccountID   uuid.UUID        `json:"account_id"`
	Date        time.Time        `json:"date"`
	Recurring   bool             `json:"recurring"`
	Tags        []string         `json:"tags"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := transaction.CreateParams{
		Description: req.Description,
		AmountCents: req.Amount,
		Type:        req.Type,
		Category:    req.Category,
		AccountID:   req.AccountID,
		Date:        req.Date,
		Recurring:   req.Recurring,
		Tags:        req.Tags,
	}

	// An uncategorized transaction gets an initial category from the
	// engine; the caller can always override it afterwards.
	if params.Category == "" {
		history, err := h.svc.List(r.Context(), transaction.ListFilter{})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		probe := &transaction.Transaction{
			Description: params.Description,
			AmountCents: params.AmountCents,
			Type:        params.Type,
		}
		params.Category = h.engine.Categorize(probe, history).Category
	}

	tx, err := h.svc.Create(r.Context(), params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.analytic.Purge()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := transaction.ListFilter{}

	if s := r.URL.Query().Get("type"); s != "" {
		typ := transaction.Type(s)
		filter.Type = &typ
	}

	if s := r.URL.Query().Get("category"); s != "" {
		filter.Category = &s
	}

	if s := r.URL.Query().Get("account_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.AccountID = &id
		}
	}

	if s := r.URL.Query().Get("start_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.StartDate = &t
		}
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.EndDate = &t
		}
	}

	txs, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(txs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	tx, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, transaction.ErrNotFound) {
			http.Error(w, "transaction not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateTransactionRequest struct {
	Description *string           `json:"description,omitempty"`
	Amount      *int64            `json:"amount,omitempty"`
	Type        *transaction.Type `json:"type,omitempty"`
	AccountID   *uuid.UUID        `json:"account_id,omitempty"`
	Date        *time.Time        `json:"date,omitempty"`
	Recurring   *bool             `json:"recurring,omitempty"`
	Tags        *[]string         `json:"tags,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, transaction.ErrNotFound) {
			http.Error(w, "transaction not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Description != nil {
		tx.Description = *req.Description
	}

	if req.Amount != nil {
		tx.AmountCents = *req.Amount
	}

	if req.Type != nil {
		tx.Type = *req.Type
	}

	if req.AccountID != nil {
		tx.AccountID = *req.AccountID
	}

	if req.Date != nil {
		tx.Date = *req.Date
	}

	if req.Recurring != nil {
		tx.Recurring = *req.Recurring
	}

	if req.Tags != nil {
		tx.Tags = *req.Tags
	}

	if err := h.svc.Update(r.Context(), tx); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.analytic.Purge()

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type applyCategoryRequest struct {
	Category string `json:"category"`
}

// applyCategory is the confirmation step for a categorization suggestion;
// nothing else ever rewrites a stored category.
func (h *Handler) applyCategory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req applyCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.ApplyCategory(r.Context(), id, req.Category); err != nil {
		if errors.Is(err, transaction.ErrNotFound) {
			http.Error(w, "transaction not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	h.analytic.Purge()

	w.WriteHeader(http.StatusNoContent)
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

type categorizeRequest struct {
	Description string           `json:"description"`
	Amount      int64            `json:"amount"`
	Type        transaction.Type `json:"type"`
}

// categorize previews what the engine would decide for a hypothetical
// transaction without persisting anything.
func (h *Handler) categorize(w http.ResponseWriter, r *http.Request) {
	var req categorizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	history, err := h.svc.List(r.Context(), transaction.ListFilter{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	probe := &transaction.Transaction{
		Description: req.Description,
		AmountCents: req.Amount,
		Type:        req.Type,
	}
	res := h.engine.Categorize(probe, history)

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toCategorizeResponse(res)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// suggestions re-runs the engine over every stored transaction and
// returns only the proposals confident enough to surface.
func (h *Handler) suggestions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.svc.List(r.Context(), transaction.ListFilter{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	suggestions := h.engine.BatchCategorize(txs)

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toSuggestionList(suggestions)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// similar proposes converging transactions onto the category most of
// their lookalike peers already use.
func (h *Handler) similar(w http.ResponseWriter, r *http.Request) {
	txs, err := h.svc.List(r.Context(), transaction.ListFilter{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	suggestions := similarity.CategorySuggestions(txs)

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toSimilarList(suggestions)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
