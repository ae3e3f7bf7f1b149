package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmarques/financo/internal/cache"
	"github.com/dmarques/financo/internal/category"
	"github.com/dmarques/financo/internal/importer"
	"github.com/dmarques/financo/internal/transaction"
)

type Handler struct {
	parser   *importer.Parser
	txSvc    *transaction.Service
	engine   *category.Engine
	analytic *cache.Cache
}

func NewHandler(parser *importer.Parser, txSvc *transaction.Service, engine *category.Engine, analytic *cache.Cache) *Handler {
	return &Handler{
		parser:   parser,
		txSvc:    txSvc,
		engine:   engine,
		analytic: analytic,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

type importedTransaction struct {
	ID          uuid.UUID        `json:"id"`
	Description string           `json:"description"`
	Amount      int64            `json:"amount"`
	Type        transaction.Type `json:"type"`
	Category    string           `json:"category"`
	Date        time.Time        `json:"date"`
}

type importResponse struct {
	Imported     int                   `json:"imported"`
	Transactions []importedTransaction `json:"transactions"`
}

// importCSV parses an uploaded bank CSV, runs every row through the
// categorization engine and persists the batch against the given account.
func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	accountID, err := uuid.Parse(r.FormValue("account_id"))
	if err != nil {
		http.Error(w, "account_id field is required", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	params, err := h.parser.Parse(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	history, err := h.txSvc.List(r.Context(), transaction.ListFilter{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	for i := range params {
		params[i].AccountID = accountID

		probe := &transaction.Transaction{
			Description: params[i].Description,
			AmountCents: params[i].AmountCents,
			Type:        params[i].Type,
		}
		params[i].Category = h.engine.Categorize(probe, history).Category
	}

	txs, err := h.txSvc.CreateBatch(r.Context(), params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.analytic.Purge()

	resp := importResponse{
		Imported:     len(txs),
		Transactions: make([]importedTransaction, 0, len(txs)),
	}
	for _, tx := range txs {
		resp.Transactions = append(resp.Transactions, importedTransaction{
			ID:          tx.ID,
			Description: tx.Description,
			Amount:      tx.AmountCents,
			Type:        tx.Type,
			Category:    tx.Category,
			Date:        tx.Date,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
