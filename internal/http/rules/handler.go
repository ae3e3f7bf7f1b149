// Package rules exposes the custom categorization rules: callers can add,
// remove, export and re-import them. Built-in rules never leave the
// binary.
package rules

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmarques/financo/internal/category"
)

type ruleStore interface {
	SaveRule(ctx context.Context, rule category.Rule) error
	DeleteRule(ctx context.Context, id string) error
}

type Handler struct {
	catalog *category.Catalog
	store   ruleStore
}

func NewHandler(catalog *category.Catalog, store ruleStore) *Handler {
	return &Handler{catalog: catalog, store: store}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.export)
	r.Post("/", h.add)
	r.Post("/import", h.importRules)
	r.Delete("/{id}", h.remove)
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	rules := h.catalog.ExportRules()
	if rules == nil {
		rules = []category.Rule{}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(rules); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) add(w http.ResponseWriter, r *http.Request) {
	var rule category.Rule
	if err := json.NewDecoder(r.Body).Decode(&rule); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if rule.ID == "" || rule.Category == "" {
		http.Error(w, "rule id and category are required", http.StatusBadRequest)
		return
	}

	if err := h.catalog.AddCustomRule(rule); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.store.SaveRule(r.Context(), rule); err != nil {
		// The rule must not outlive the failed save, or it would match
		// until restart and then vanish.
		if rbErr := h.catalog.RemoveRule(rule.ID); rbErr != nil {
			slog.Error("failed to roll back rule", "id", rule.ID, "error", rbErr)
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusCreated)
}

// importRules restores an exported backup. The catalog rejects the whole
// batch if any rule fails to compile, so persistence only happens after a
// clean import.
func (h *Handler) importRules(w http.ResponseWriter, r *http.Request) {
	var rules []category.Rule
	if err := json.NewDecoder(r.Body).Decode(&rules); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.catalog.ImportRules(rules); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	for i, rule := range rules {
		if err := h.store.SaveRule(r.Context(), rule); err != nil {
			h.rollbackImport(r.Context(), rules, i)
			http.Error(w, err.Error(), http.StatusInternalServerError)

			return
		}
	}

	w.WriteHeader(http.StatusCreated)
}

// rollbackImport undoes a partially persisted import: the whole batch
// leaves the catalog and the rules saved before the failure leave the
// store, so a failed import is all-or-nothing.
func (h *Handler) rollbackImport(ctx context.Context, rules []category.Rule, saved int) {
	for i, rule := range rules {
		if err := h.catalog.RemoveRule(rule.ID); err != nil {
			slog.Error("failed to roll back rule", "id", rule.ID, "error", err)
		}

		if i >= saved {
			continue
		}

		if err := h.store.DeleteRule(ctx, rule.ID); err != nil {
			slog.Error("failed to roll back saved rule", "id", rule.ID, "error", err)
		}
	}
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.catalog.RemoveRule(id); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	if err := h.store.DeleteRule(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
