package creditcard

import (
	"time"

	"github.com/google/uuid"
)

// Card represents a credit card. DueDay and ClosingDay are days of the
// month (1-31) and must differ; CurrentBalanceCents is what is owed and
// may not exceed LimitCents. Both constraints are checked at the service
// boundary, not re-validated downstream.
type Card struct {
	ID                  uuid.UUID
	Name                string
	Bank                string
	LimitCents          int64
	CurrentBalanceCents int64
	DueDay              int
	ClosingDay          int
	Color               string
	CreatedAt           time.Time
}

// AvailableCents is the remaining credit on the card.
func (c *Card) AvailableCents() int64 {
	return c.LimitCents - c.CurrentBalanceCents
}
