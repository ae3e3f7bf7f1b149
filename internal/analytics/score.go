package analytics

import "math"

// ScoreBreakdown holds the four equally-weighted sub-scores, each in
// [0, 25].
type ScoreBreakdown struct {
	SavingsRate      float64
	BudgetCompliance float64
	GoalProgress     float64
	Diversification  float64
}

// Score is the composite financial health score.
type Score struct {
	Total     int // 0..100, sum of the breakdown rounded to nearest.
	Breakdown ScoreBreakdown
}

const (
	subScoreMax = 25.0

	// fullSavingsRatePct is the savings rate that earns the full
	// sub-score.
	fullSavingsRatePct = 20.0

	// defaultSubScore is awarded when there is nothing to measure
	// (no budgets, no goals).
	defaultSubScore = 20.0

	// pointsPerAccountType rewards spreading money across account
	// kinds.
	pointsPerAccountType = 8.0
)

// FinancialScore grades the snapshot on this month's savings rate, budget
// compliance, goal progress and account-type diversification.
func (e *Engine) FinancialScore() Score {
	b := ScoreBreakdown{
		SavingsRate:      e.savingsRateScore(),
		BudgetCompliance: e.budgetComplianceScore(),
		GoalProgress:     e.goalProgressScore(),
		Diversification:  e.diversificationScore(),
	}

	total := int(math.Round(b.SavingsRate + b.BudgetCompliance + b.GoalProgress + b.Diversification))

	return Score{Total: total, Breakdown: b}
}

func (e *Engine) savingsRateScore() float64 {
	months := e.MonthlyAnalysis(1)
	if len(months) == 0 {
		return 0
	}

	rate := months[len(months)-1].SavingsRate

	return clampSubScore(rate / fullSavingsRatePct * subScoreMax)
}

func (e *Engine) budgetComplianceScore() float64 {
	reports := e.BudgetAnalysis()
	if len(reports) == 0 {
		return defaultSubScore
	}

	healthy := 0

	for _, r := range reports {
		if r.Status == BudgetSafe || r.Status == BudgetWarning {
			healthy++
		}
	}

	return float64(healthy) / float64(len(reports)) * subScoreMax
}

func (e *Engine) goalProgressScore() float64 {
	if len(e.snap.Goals) == 0 {
		return defaultSubScore
	}

	var sum float64

	for _, g := range e.snap.Goals {
		progress := 0.0
		if g.TargetCents > 0 {
			progress = float64(g.CurrentCents) / float64(g.TargetCents) * 100
		}

		sum += math.Min(100, progress)
	}

	avg := sum / float64(len(e.snap.Goals))

	return avg / 100 * subScoreMax
}

func (e *Engine) diversificationScore() float64 {
	types := make(map[string]struct{})
	for _, acc := range e.snap.Accounts {
		types[string(acc.Type)] = struct{}{}
	}

	return clampSubScore(float64(len(types)) * pointsPerAccountType)
}

func clampSubScore(v float64) float64 {
	return math.Min(subScoreMax, math.Max(0, v))
}
