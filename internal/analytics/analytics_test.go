package analytics_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmarques/financo/internal/account"
	"github.com/dmarques/financo/internal/analytics"
	"github.com/dmarques/financo/internal/budget"
	"github.com/dmarques/financo/internal/goal"
	"github.com/dmarques/financo/internal/transaction"
)

// now is the pinned clock for every test: 2026-08-15, a 31-day month with
// 15 days elapsed.
var now = time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

func expense(category string, cents int64, date time.Time) *transaction.Transaction {
	return &transaction.Transaction{
		ID:          uuid.New(),
		Description: category,
		AmountCents: cents,
		Type:        transaction.TypeExpense,
		Category:    category,
		Date:        date,
	}
}

func income(cents int64, date time.Time) *transaction.Transaction {
	return &transaction.Transaction{
		ID:          uuid.New(),
		Description: "Salário",
		AmountCents: cents,
		Type:        transaction.TypeIncome,
		Category:    "Salário",
		Date:        date,
	}
}

func TestSpendingPatterns(t *testing.T) {
	snap := analytics.Snapshot{
		Transactions: []*transaction.Transaction{
			// Current month window (last 30 days).
			expense("Alimentação", 60_000, now.AddDate(0, 0, -5)),
			expense("Alimentação", 40_000, now.AddDate(0, 0, -10)),
			expense("Transporte", 20_000, now.AddDate(0, 0, -3)),
			// Previous window.
			expense("Alimentação", 50_000, now.AddDate(0, 0, -40)),
			expense("Transporte", 20_500, now.AddDate(0, 0, -35)),
		},
	}

	patterns := analytics.NewAt(snap, now).SpendingPatterns(analytics.PeriodMonth)
	require.Len(t, patterns, 2)

	food := patterns[0]
	assert.Equal(t, "Alimentação", food.Category)
	assert.Equal(t, int64(100_000), food.TotalCents)
	assert.Equal(t, 2, food.TransactionCount)
	assert.Equal(t, int64(50_000), food.AverageCents)
	assert.InDelta(t, 100_000.0/120_000.0*100, food.PercentageOfTotal, 1e-9)
	assert.Equal(t, analytics.TrendIncreasing, food.Trend)
	assert.InDelta(t, 100, food.TrendPercentage, 1e-9)

	transport := patterns[1]
	assert.Equal(t, analytics.TrendStable, transport.Trend)
	assert.InDelta(t, -2.44, transport.TrendPercentage, 0.01)
}

func TestSpendingPatterns_NewCategoryIsFullIncrease(t *testing.T) {
	snap := analytics.Snapshot{
		Transactions: []*transaction.Transaction{
			expense("Lazer", 10_000, now.AddDate(0, 0, -2)),
		},
	}

	patterns := analytics.NewAt(snap, now).SpendingPatterns(analytics.PeriodMonth)
	require.Len(t, patterns, 1)
	assert.Equal(t, analytics.TrendIncreasing, patterns[0].Trend)
	assert.InDelta(t, 100, patterns[0].TrendPercentage, 1e-9)
}

func TestSpendingPatterns_Empty(t *testing.T) {
	assert.Empty(t, analytics.NewAt(analytics.Snapshot{}, now).SpendingPatterns(analytics.PeriodAll))
}

func TestMonthlyAnalysis(t *testing.T) {
	snap := analytics.Snapshot{
		Transactions: []*transaction.Transaction{
			income(500_000, now),
			expense("Alimentação", 150_000, now.AddDate(0, 0, -1)),
			expense("Transporte", 50_000, now.AddDate(0, 0, -2)),
			income(480_000, now.AddDate(0, -1, 0)),
			expense("Alimentação", 200_000, now.AddDate(0, -1, 0)),
		},
	}

	months := analytics.NewAt(snap, now).MonthlyAnalysis(3)
	require.Len(t, months, 3)

	// Oldest first; the first month has no transactions.
	assert.Equal(t, time.June, months[0].Month.Month())
	assert.Zero(t, months[0].TransactionCount)
	assert.Zero(t, months[0].SavingsRate)

	july := months[1]
	assert.Equal(t, int64(480_000), july.IncomeCents)
	assert.Equal(t, int64(200_000), july.ExpenseCents)
	assert.Equal(t, int64(280_000), july.BalanceCents)

	august := months[2]
	assert.Equal(t, int64(500_000), august.IncomeCents)
	assert.Equal(t, int64(200_000), august.ExpenseCents)
	assert.Equal(t, 3, august.TransactionCount)
	assert.InDelta(t, 60, august.SavingsRate, 1e-9)
	require.Len(t, august.TopCategories, 2)
	assert.Equal(t, "Alimentação", august.TopCategories[0].Category)
}

func TestMonthlyAnalysis_ZeroIncome(t *testing.T) {
	snap := analytics.Snapshot{
		Transactions: []*transaction.Transaction{
			expense("Alimentação", 10_000, now),
		},
	}

	months := analytics.NewAt(snap, now).MonthlyAnalysis(1)
	require.Len(t, months, 1)
	assert.Zero(t, months[0].SavingsRate)
	assert.Equal(t, int64(-10_000), months[0].BalanceCents)
}

func TestBudgetAnalysis_MidMonthProjection(t *testing.T) {
	// Budget of 500.00 with 450.00 spent this month: 90% utilization,
	// critical.
	snap := analytics.Snapshot{
		Transactions: []*transaction.Transaction{
			expense("Alimentação", 45_000, now.AddDate(0, 0, -1)),
		},
		Budgets: []*budget.Budget{
			{ID: uuid.New(), Category: "Alimentação", LimitCents: 50_000, Period: budget.PeriodMonthly},
		},
	}

	reports := analytics.NewAt(snap, now).BudgetAnalysis()
	require.Len(t, reports, 1)

	r := reports[0]
	assert.InDelta(t, 90, r.UtilizationPct, 1e-9)
	assert.Equal(t, analytics.BudgetCritical, r.Status)
	assert.Equal(t, int64(5_000), r.RemainingCents)
	assert.Equal(t, 16, r.DaysRemaining)
	assert.InDelta(t, 50_000.0/31.0, r.DailyBudgetCents, 1e-9)
	assert.InDelta(t, 45_000.0/15.0, r.AverageDailySpending, 1e-9)

	// 3000/day against a ~1613/day budget projects an overrun.
	require.NotNil(t, r.ProjectedOverrun)
	assert.Equal(t, int64(43_000), *r.ProjectedOverrun)
}

func TestBudgetAnalysis_StatusBoundaries(t *testing.T) {
	type testCase struct {
		name       string
		spentCents int64
		want       analytics.BudgetStatus
	}

	// Limit is 100.00 so spent cents read directly as percent.
	tests := []testCase{
		{name: "ZeroIsSafe", spentCents: 0, want: analytics.BudgetSafe},
		{name: "SixtyExactIsSafe", spentCents: 6_000, want: analytics.BudgetSafe},
		{name: "JustOverSixtyIsWarning", spentCents: 6_001, want: analytics.BudgetWarning},
		{name: "EightyExactIsWarning", spentCents: 8_000, want: analytics.BudgetWarning},
		{name: "JustOverEightyIsCritical", spentCents: 8_001, want: analytics.BudgetCritical},
		{name: "HundredExactIsCritical", spentCents: 10_000, want: analytics.BudgetCritical},
		{name: "OverHundredIsExceeded", spentCents: 10_001, want: analytics.BudgetExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := analytics.Snapshot{
				Budgets: []*budget.Budget{
					{ID: uuid.New(), Category: "Lazer", LimitCents: 10_000},
				},
			}
			if tt.spentCents > 0 {
				snap.Transactions = []*transaction.Transaction{expense("Lazer", tt.spentCents, now)}
			}

			reports := analytics.NewAt(snap, now).BudgetAnalysis()
			require.Len(t, reports, 1)
			assert.Equal(t, tt.want, reports[0].Status)
			assert.InDelta(t, float64(tt.spentCents)/100, reports[0].UtilizationPct, 1e-9)
		})
	}
}

func TestGoalAnalysis_Completed(t *testing.T) {
	snap := analytics.Snapshot{
		Goals: []*goal.Goal{{
			ID:           uuid.New(),
			Title:        "Reserva de emergência",
			TargetCents:  1_000_000,
			CurrentCents: 1_000_000,
			CreatedAt:    now.AddDate(-1, 0, 0),
			Deadline:     now.AddDate(0, 6, 0),
		}},
	}

	reports := analytics.NewAt(snap, now).GoalAnalysis()
	require.Len(t, reports, 1)

	r := reports[0]
	assert.InDelta(t, 100, r.ProgressPct, 1e-9)
	assert.Equal(t, analytics.GoalCompleted, r.Status)
	assert.Nil(t, r.EstimatedCompletion)
	assert.Zero(t, r.RequiredMonthlyCents)
}

func TestGoalAnalysis_Trajectory(t *testing.T) {
	type testCase struct {
		name         string
		currentCents int64
		deadline     time.Time
		want         analytics.GoalStatus
	}

	createdAt := now.AddDate(0, -6, 0)
	deadline := now.AddDate(0, 6, 0)

	// Halfway through the window, expected progress is ~50%.
	tests := []testCase{
		{name: "Behind", currentCents: 200_000, deadline: deadline, want: analytics.GoalBehind},
		{name: "OnTrack", currentCents: 500_000, deadline: deadline, want: analytics.GoalOnTrack},
		{name: "Ahead", currentCents: 700_000, deadline: deadline, want: analytics.GoalAhead},
		{name: "AtRiskPastDeadline", currentCents: 500_000, deadline: now.AddDate(0, 0, -1), want: analytics.GoalAtRisk},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := analytics.Snapshot{
				Goals: []*goal.Goal{{
					ID:           uuid.New(),
					Title:        "Meta",
					TargetCents:  1_000_000,
					CurrentCents: tt.currentCents,
					CreatedAt:    createdAt,
					Deadline:     tt.deadline,
				}},
			}

			reports := analytics.NewAt(snap, now).GoalAnalysis()
			require.Len(t, reports, 1)
			assert.Equal(t, tt.want, reports[0].Status)
		})
	}
}

func TestGoalAnalysis_RequiredMonthlySaving(t *testing.T) {
	g := &goal.Goal{
		ID:           uuid.New(),
		TargetCents:  1_000_000,
		CurrentCents: 400_000,
		CreatedAt:    now.AddDate(0, -2, 0),
		Deadline:     now.AddDate(0, 0, 183), // ~6 months of 30.44 days
	}

	reports := analytics.NewAt(analytics.Snapshot{Goals: []*goal.Goal{g}}, now).GoalAnalysis()
	require.Len(t, reports, 1)

	r := reports[0]
	assert.Equal(t, 6, r.MonthsToComplete)
	assert.Equal(t, int64(100_000), r.RequiredMonthlyCents)
}

func TestGoalAnalysis_OverdueNeedsFullRemainder(t *testing.T) {
	g := &goal.Goal{
		ID:           uuid.New(),
		TargetCents:  1_000_000,
		CurrentCents: 400_000,
		CreatedAt:    now.AddDate(-1, 0, 0),
		Deadline:     now.AddDate(0, 0, -10),
	}

	reports := analytics.NewAt(analytics.Snapshot{Goals: []*goal.Goal{g}}, now).GoalAnalysis()
	require.Len(t, reports, 1)

	r := reports[0]
	assert.Zero(t, r.MonthsToComplete)
	assert.Equal(t, int64(600_000), r.RequiredMonthlyCents)
	assert.Equal(t, analytics.GoalAtRisk, r.Status)
}

func TestFinancialScore(t *testing.T) {
	snap := analytics.Snapshot{
		Transactions: []*transaction.Transaction{
			income(500_000, now),
			expense("Alimentação", 400_000, now), // 20% savings rate
		},
		Accounts: []*account.Account{
			{ID: uuid.New(), Type: account.TypeChecking},
			{ID: uuid.New(), Type: account.TypeSavings},
		},
		Budgets: []*budget.Budget{
			{ID: uuid.New(), Category: "Alimentação", LimitCents: 1_000_000}, // 40% safe
			{ID: uuid.New(), Category: "Lazer", LimitCents: 100_000},         // 0% safe
		},
		Goals: []*goal.Goal{
			{ID: uuid.New(), TargetCents: 100_000, CurrentCents: 50_000, CreatedAt: now.AddDate(0, -1, 0), Deadline: now.AddDate(0, 1, 0)},
		},
	}

	score := analytics.NewAt(snap, now).FinancialScore()

	assert.InDelta(t, 25, score.Breakdown.SavingsRate, 1e-9)      // 20% rate = full marks
	assert.InDelta(t, 25, score.Breakdown.BudgetCompliance, 1e-9) // both budgets healthy
	assert.InDelta(t, 12.5, score.Breakdown.GoalProgress, 1e-9)   // 50% progress
	assert.InDelta(t, 16, score.Breakdown.Diversification, 1e-9)  // two account types
	assert.Equal(t, 79, score.Total)
}

func TestFinancialScore_EmptySnapshotDefaults(t *testing.T) {
	score := analytics.NewAt(analytics.Snapshot{}, now).FinancialScore()

	b := score.Breakdown
	assert.Zero(t, b.SavingsRate)
	assert.InDelta(t, 20, b.BudgetCompliance, 1e-9)
	assert.InDelta(t, 20, b.GoalProgress, 1e-9)
	assert.Zero(t, b.Diversification)
	assert.Equal(t, 40, score.Total)

	for _, sub := range []float64{b.SavingsRate, b.BudgetCompliance, b.GoalProgress, b.Diversification} {
		assert.GreaterOrEqual(t, sub, 0.0)
		assert.LessOrEqual(t, sub, 25.0)
	}
}

func TestOutliers(t *testing.T) {
	txs := []*transaction.Transaction{
		expense("Alimentação", 5_000, now),
		expense("Alimentação", 5_200, now),
		expense("Alimentação", 4_800, now),
		expense("Alimentação", 5_100, now),
		expense("Alimentação", 4_900, now),
		expense("Eletrônicos", 90_000, now),
	}

	outliers := analytics.NewAt(analytics.Snapshot{Transactions: txs}, now).Outliers(transaction.TypeExpense)
	require.Len(t, outliers, 1)
	assert.Equal(t, "Eletrônicos", outliers[0].Transaction.Category)
	assert.Greater(t, outliers[0].ZScore, 2.0)
}

func TestOutliers_UniformAmounts(t *testing.T) {
	txs := []*transaction.Transaction{
		expense("A", 5_000, now),
		expense("B", 5_000, now),
		expense("C", 5_000, now),
	}

	assert.Empty(t, analytics.NewAt(analytics.Snapshot{Transactions: txs}, now).Outliers(transaction.TypeExpense))
}
