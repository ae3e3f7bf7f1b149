package analytics

import (
	"sort"
	"time"

	"github.com/dmarques/financo/internal/transaction"
)

// CategoryTotal pairs a category with its expense total for a month.
type CategoryTotal struct {
	Category   string
	TotalCents int64
}

// MonthlySummary aggregates one calendar month.
type MonthlySummary struct {
	Month            time.Time // First day of the month.
	IncomeCents      int64
	ExpenseCents     int64
	BalanceCents     int64
	TransactionCount int
	TopCategories    []CategoryTotal // Top five expense categories.
	SavingsRate      float64         // (income - expenses) / income × 100, 0 when no income.
}

const topCategoriesPerMonth = 5

// MonthlyAnalysis returns one summary per calendar month for the last
// `months` months, oldest first. Months without transactions still get a
// zeroed entry so chart series stay continuous.
func (e *Engine) MonthlyAnalysis(months int) []MonthlySummary {
	if months <= 0 {
		return nil
	}

	firstMonth := monthStart(e.now).AddDate(0, -(months - 1), 0)

	summaries := make([]MonthlySummary, months)
	categories := make([]map[string]int64, months)

	for i := range summaries {
		summaries[i].Month = firstMonth.AddDate(0, i, 0)
		categories[i] = make(map[string]int64)
	}

	for _, tx := range e.snap.Transactions {
		idx := monthsBetween(firstMonth, monthStart(tx.Date))
		if idx < 0 || idx >= months {
			continue
		}

		s := &summaries[idx]
		s.TransactionCount++

		if tx.Type == transaction.TypeIncome {
			s.IncomeCents += tx.AmountCents
			continue
		}

		s.ExpenseCents += tx.AmountCents
		categories[idx][tx.Category] += tx.AmountCents
	}

	for i := range summaries {
		s := &summaries[i]
		s.BalanceCents = s.IncomeCents - s.ExpenseCents

		if s.IncomeCents > 0 {
			s.SavingsRate = float64(s.BalanceCents) / float64(s.IncomeCents) * 100
		}

		s.TopCategories = topCategories(categories[i], topCategoriesPerMonth)
	}

	return summaries
}

func topCategories(totals map[string]int64, n int) []CategoryTotal {
	list := make([]CategoryTotal, 0, len(totals))
	for cat, total := range totals {
		list = append(list, CategoryTotal{Category: cat, TotalCents: total})
	}

	sort.Slice(list, func(i, j int) bool {
		if list[i].TotalCents != list[j].TotalCents {
			return list[i].TotalCents > list[j].TotalCents
		}

		return list[i].Category < list[j].Category
	})

	if len(list) > n {
		list = list[:n]
	}

	return list
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// monthsBetween counts whole calendar months from a to b; both must be
// month starts.
func monthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}
