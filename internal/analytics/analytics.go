// Package analytics computes spending patterns, monthly series, budget and
// goal projections and a composite financial score over an in-memory
// snapshot. Every method is a pure function of the snapshot and the
// engine's clock; inputs are never mutated.
package analytics

import (
	"sort"
	"time"

	"github.com/dmarques/financo/internal/account"
	"github.com/dmarques/financo/internal/budget"
	"github.com/dmarques/financo/internal/goal"
	"github.com/dmarques/financo/internal/transaction"
)

// Snapshot is the full data set the engine computes over, loaded by the
// caller in one shot.
type Snapshot struct {
	Transactions []*transaction.Transaction
	Accounts     []*account.Account
	Budgets      []*budget.Budget
	Goals        []*goal.Goal
}

// Engine evaluates analytics over one snapshot. The reference time is
// fixed at construction so repeated calls over the same snapshot agree.
type Engine struct {
	snap Snapshot
	now  time.Time
}

func New(snap Snapshot) *Engine {
	return NewAt(snap, time.Now())
}

// NewAt pins the engine's clock, which the tests use.
func NewAt(snap Snapshot, now time.Time) *Engine {
	return &Engine{snap: snap, now: now}
}

// Period selects the spending-pattern window.
type Period string

const (
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
	PeriodAll     Period = "all"
)

// Trend classifies a category's movement against the previous period.
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

// stableBandPct is the |Δ%| below which a trend counts as stable.
const stableBandPct = 5.0

// SpendingPattern summarizes one expense category over the selected
// period.
type SpendingPattern struct {
	Category          string
	TotalCents        int64
	TransactionCount  int
	AverageCents      int64
	PercentageOfTotal float64
	Trend             Trend
	TrendPercentage   float64
}

// SpendingPatterns aggregates expense transactions per category over the
// period ending now, compares each total with the immediately preceding
// period of equal length, and sorts by total descending. PeriodAll has no
// preceding window, so every trend reports stable.
func (e *Engine) SpendingPatterns(period Period) []SpendingPattern {
	currentStart, previousStart := e.periodBounds(period)

	type bucket struct {
		total    int64
		count    int
		previous int64
	}

	buckets := make(map[string]*bucket)

	var order []string

	var grandTotal int64

	for _, tx := range e.snap.Transactions {
		if tx.Type != transaction.TypeExpense || tx.Date.After(e.now) {
			continue
		}

		inCurrent := !tx.Date.Before(currentStart)
		inPrevious := period != PeriodAll && !inCurrent && !tx.Date.Before(previousStart)

		if !inCurrent && !inPrevious {
			continue
		}

		b, ok := buckets[tx.Category]
		if !ok {
			b = &bucket{}
			buckets[tx.Category] = b
			order = append(order, tx.Category)
		}

		if inCurrent {
			b.total += tx.AmountCents
			b.count++
			grandTotal += tx.AmountCents
		} else {
			b.previous += tx.AmountCents
		}
	}

	patterns := make([]SpendingPattern, 0, len(buckets))

	for _, cat := range order {
		b := buckets[cat]
		if b.count == 0 && b.previous == 0 {
			continue
		}

		p := SpendingPattern{
			Category:         cat,
			TotalCents:       b.total,
			TransactionCount: b.count,
		}

		if b.count > 0 {
			p.AverageCents = b.total / int64(b.count)
		}

		if grandTotal > 0 {
			p.PercentageOfTotal = float64(b.total) / float64(grandTotal) * 100
		}

		p.Trend, p.TrendPercentage = classifyTrend(b.total, b.previous)

		patterns = append(patterns, p)
	}

	sort.SliceStable(patterns, func(i, j int) bool {
		return patterns[i].TotalCents > patterns[j].TotalCents
	})

	return patterns
}

// classifyTrend computes the signed percentage change against the previous
// total. A previous of zero with spending now counts as +100%; both zero
// is 0%. Changes inside the stable band report stable.
func classifyTrend(current, previous int64) (Trend, float64) {
	var changePct float64

	switch {
	case previous == 0 && current == 0:
		changePct = 0
	case previous == 0:
		changePct = 100
	default:
		changePct = (float64(current) - float64(previous)) / float64(previous) * 100
	}

	abs := changePct
	if abs < 0 {
		abs = -abs
	}

	if abs < stableBandPct {
		return TrendStable, changePct
	}

	if changePct > 0 {
		return TrendIncreasing, changePct
	}

	return TrendDecreasing, changePct
}

// periodBounds returns the start of the current window and the start of
// the equal-length window before it. PeriodAll opens the window to the
// beginning of time.
func (e *Engine) periodBounds(period Period) (time.Time, time.Time) {
	switch period {
	case PeriodMonth:
		return e.now.AddDate(0, -1, 0), e.now.AddDate(0, -2, 0)
	case PeriodQuarter:
		return e.now.AddDate(0, -3, 0), e.now.AddDate(0, -6, 0)
	case PeriodYear:
		return e.now.AddDate(-1, 0, 0), e.now.AddDate(-2, 0, 0)
	default:
		return time.Time{}, time.Time{}
	}
}
