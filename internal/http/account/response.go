package account

import (
	"time"

	"github.com/google/uuid"

	"github.com/dmarques/financo/internal/account"
)

type accountResponse struct {
	ID        uuid.UUID    `json:"id"`
	Name      string       `json:"name"`
	Bank      string       `json:"bank,omitempty"`
	Type      account.Type `json:"type"`
	Balance   int64        `json:"balance"`
	Color     string       `json:"color,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

func toResponse(acc *account.Account) accountResponse {
	return accountResponse{
		ID:        acc.ID,
		Name:      acc.Name,
		Bank:      acc.Bank,
		Type:      acc.Type,
		Balance:   acc.BalanceCents,
		Color:     acc.Color,
		CreatedAt: acc.CreatedAt,
	}
}

func toResponseList(accounts []*account.Account) []accountResponse {
	resp := make([]accountResponse, len(accounts))
	for i, acc := range accounts {
		resp[i] = toResponse(acc)
	}

	return resp
}
