package account

import (
	"time"

	"github.com/google/uuid"
)

// Type represents the kind of account.
type Type string

const (
	TypeChecking   Type = "checking"
	TypeSavings    Type = "savings"
	TypeInvestment Type = "investment"
)

// Account represents a bank account. BalanceCents is a derived-but-cached
// quantity: the opening balance plus the signed sum of every transaction
// referencing the account, maintained incrementally on transaction
// add/delete rather than recomputed on read.
type Account struct {
	ID           uuid.UUID
	Name         string
	Bank         string
	Type         Type
	BalanceCents int64
	Color        string
	CreatedAt    time.Time
}
