package transaction

import (
	"time"

	"github.com/google/uuid"

	"github.com/dmarques/financo/internal/category"
	"github.com/dmarques/financo/internal/similarity"
	"github.com/dmarques/financo/internal/transaction"
)

type transactionResponse struct {
	ID          uuid.UUID        `json:"id"`
	Description string           `json:"description"`
	Amount      int64            `json:"amount"`
	Type        transaction.Type `json:"type"`
	Category    string           `json:"category"`
	AccountID   uuid.UUID        `json:"account_id"`
	Date        time.Time        `json:"date"`
	Recurring   bool             `json:"recurring"`
	Tags        []string         `json:"tags,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   *time.Time       `json:"updated_at,omitempty"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:          tx.ID,
		Description: tx.Description,
		Amount:      tx.AmountCents,
		Type:        tx.Type,
		Category:    tx.Category,
		AccountID:   tx.AccountID,
		Date:        tx.Date,
		Recurring:   tx.Recurring,
		Tags:        tx.Tags,
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
	}
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}

type categorizeResponse struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason"`
}

func toCategorizeResponse(res category.Result) categorizeResponse {
	return categorizeResponse{
		Category:   res.Category,
		Confidence: res.Confidence,
		Reason:     string(res.Reason),
	}
}

type suggestionResponse struct {
	TransactionID uuid.UUID `json:"transaction_id"`
	Description   string    `json:"description"`
	OldCategory   string    `json:"old_category"`
	NewCategory   string    `json:"new_category"`
	Confidence    float64   `json:"confidence"`
	Reason        string    `json:"reason"`
}

func toSuggestionList(suggestions []category.Suggestion) []suggestionResponse {
	resp := make([]suggestionResponse, len(suggestions))
	for i, s := range suggestions {
		resp[i] = suggestionResponse{
			TransactionID: s.Transaction.ID,
			Description:   s.Transaction.Description,
			OldCategory:   s.OldCategory,
			NewCategory:   s.NewCategory,
			Confidence:    s.Confidence,
			Reason:        string(s.Reason),
		}
	}

	return resp
}

func toSimilarList(suggestions []similarity.Suggestion) []suggestionResponse {
	resp := make([]suggestionResponse, len(suggestions))
	for i, s := range suggestions {
		resp[i] = suggestionResponse{
			TransactionID: s.Transaction.ID,
			Description:   s.Transaction.Description,
			OldCategory:   s.Transaction.Category,
			NewCategory:   s.Category,
			Confidence:    s.Confidence,
			Reason:        s.Reason,
		}
	}

	return resp
}
