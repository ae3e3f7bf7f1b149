package transaction

import (
	"time"

	"github.com/google/uuid"
)

// Type represents the type of transaction (income or expense).
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Transaction represents a financial transaction.
type Transaction struct {
	ID          uuid.UUID
	Description string
	AmountCents int64 // Always positive; Type carries the sign.
	Type        Type
	Category    string
	AccountID   uuid.UUID
	Date        time.Time
	Recurring   bool
	Tags        []string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
}

// SignedAmountCents returns the amount as it applies to an account
// balance: positive for income, negative for expense.
func (t *Transaction) SignedAmountCents() int64 {
	if t.Type == TypeExpense {
		return -t.AmountCents
	}

	return t.AmountCents
}
