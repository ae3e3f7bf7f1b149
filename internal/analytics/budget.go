package analytics

import (
	"time"

	"github.com/dmarques/financo/internal/transaction"
)

// BudgetStatus buckets budget utilization.
type BudgetStatus string

const (
	BudgetSafe     BudgetStatus = "safe"     // ≤ 60%
	BudgetWarning  BudgetStatus = "warning"  // ≤ 80%
	BudgetCritical BudgetStatus = "critical" // ≤ 100%
	BudgetExceeded BudgetStatus = "exceeded" // > 100%
)

// BudgetReport evaluates one budget against the current calendar month.
type BudgetReport struct {
	Category             string
	BudgetedCents        int64
	SpentCents           int64
	RemainingCents       int64
	UtilizationPct       float64
	Status               BudgetStatus
	ProjectedOverrun     *int64 // Cents; set only when the current pace overruns the limit.
	DaysRemaining        int
	DailyBudgetCents     float64
	AverageDailySpending float64
}

// BudgetAnalysis computes utilization of every budget against this
// month's expense transactions in the budget's category. Pace-based
// projection uses days elapsed so far; a projected overrun is reported
// only while days remain and the average daily spend exceeds the daily
// budget.
func (e *Engine) BudgetAnalysis() []BudgetReport {
	start := monthStart(e.now)
	daysInMonth := start.AddDate(0, 1, -1).Day()
	daysElapsed := e.now.Day()
	daysRemaining := daysInMonth - daysElapsed

	spentByCategory := make(map[string]int64)

	for _, tx := range e.snap.Transactions {
		if tx.Type != transaction.TypeExpense || !sameMonth(tx.Date, e.now) {
			continue
		}

		spentByCategory[tx.Category] += tx.AmountCents
	}

	reports := make([]BudgetReport, 0, len(e.snap.Budgets))

	for _, b := range e.snap.Budgets {
		spent := spentByCategory[b.Category]

		r := BudgetReport{
			Category:       b.Category,
			BudgetedCents:  b.LimitCents,
			SpentCents:     spent,
			RemainingCents: b.LimitCents - spent,
			DaysRemaining:  daysRemaining,
		}

		if b.LimitCents > 0 {
			r.UtilizationPct = float64(spent) / float64(b.LimitCents) * 100
			r.DailyBudgetCents = float64(b.LimitCents) / float64(daysInMonth)
		}

		r.Status = budgetStatus(r.UtilizationPct)

		if daysElapsed > 0 {
			r.AverageDailySpending = float64(spent) / float64(daysElapsed)
		}

		if daysRemaining > 0 && r.AverageDailySpending > r.DailyBudgetCents {
			projected := int64(r.AverageDailySpending*float64(daysInMonth)) - b.LimitCents
			r.ProjectedOverrun = &projected
		}

		reports = append(reports, r)
	}

	return reports
}

func budgetStatus(utilizationPct float64) BudgetStatus {
	switch {
	case utilizationPct <= 60:
		return BudgetSafe
	case utilizationPct <= 80:
		return BudgetWarning
	case utilizationPct <= 100:
		return BudgetCritical
	default:
		return BudgetExceeded
	}
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
