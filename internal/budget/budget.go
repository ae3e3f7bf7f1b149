package budget

import (
	"time"

	"github.com/google/uuid"
)

// Period is the budgeting window.
type Period string

const (
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

// Budget caps spending for one category. The spent amount is always
// derived from transactions by the analytics engine, never persisted.
type Budget struct {
	ID         uuid.UUID
	Category   string
	LimitCents int64
	Period     Period
	Color      string
	Alerts     bool
	CreatedAt  time.Time
}
