package goal

import (
	"time"

	"github.com/google/uuid"
)

// Category classifies what the goal is saving towards.
type Category string

const (
	CategorySavings    Category = "savings"
	CategoryInvestment Category = "investment"
	CategoryPurchase   Category = "purchase"
	CategoryDebt       Category = "debt"
	CategoryEmergency  Category = "emergency"
)

// Goal is a savings target with a deadline.
type Goal struct {
	ID           uuid.UUID
	Title        string
	Description  string
	TargetCents  int64
	CurrentCents int64
	Deadline     time.Time
	Category     Category
	Color        string
	CreatedAt    time.Time
}

// Completed is derived: a goal is done once the saved amount reaches the
// target.
func (g *Goal) Completed() bool {
	return g.CurrentCents >= g.TargetCents
}
