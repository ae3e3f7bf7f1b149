package insight_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmarques/financo/internal/analytics"
	"github.com/dmarques/financo/internal/budget"
	"github.com/dmarques/financo/internal/goal"
	"github.com/dmarques/financo/internal/insight"
	"github.com/dmarques/financo/internal/transaction"
)

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

func TestGenerate_EmptySnapshot(t *testing.T) {
	// An empty snapshot has no income, so the only finding is the
	// low-savings warning.
	insights := insight.Generate(analytics.NewAt(analytics.Snapshot{}, now))

	require.Len(t, insights, 1)
	assert.Equal(t, "savings", insights[0].Domain)
	assert.Equal(t, insight.TypeWarning, insights[0].Type)
}

func TestGenerate_ExceededBudgetIsCriticalFirst(t *testing.T) {
	snap := analytics.Snapshot{
		Transactions: []*transaction.Transaction{
			expense("Lazer", 30_000, now.AddDate(0, 0, -1)),
			{
				ID:          uuid.New(),
				AmountCents: 500_000,
				Type:        transaction.TypeIncome,
				Category:    "Salário",
				Date:        now,
			},
		},
		Budgets: []*budget.Budget{
			{ID: uuid.New(), Category: "Lazer", LimitCents: 20_000},
		},
	}

	insights := insight.Generate(analytics.NewAt(snap, now))
	require.NotEmpty(t, insights)

	first := insights[0]
	assert.Equal(t, insight.TypeCritical, first.Type)
	assert.Equal(t, "budget", first.Domain)
	assert.Equal(t, insight.PriorityHigh, first.Priority)
	assert.NotEmpty(t, first.Recommendation)

	// Sorted ascending by priority throughout.
	for i := 1; i < len(insights); i++ {
		assert.GreaterOrEqual(t, insights[i].Priority, insights[i-1].Priority)
	}
}

func TestGenerate_GoalAtRiskCarriesRequiredSaving(t *testing.T) {
	snap := analytics.Snapshot{
		Goals: []*goal.Goal{{
			ID:           uuid.New(),
			Title:        "Viagem",
			TargetCents:  1_000_000,
			CurrentCents: 300_000,
			CreatedAt:    now.AddDate(-1, 0, 0),
			Deadline:     now.AddDate(0, 0, -5),
		}},
	}

	insights := insight.Generate(analytics.NewAt(snap, now))
	require.NotEmpty(t, insights)

	var atRisk *insight.Insight

	for i := range insights {
		if insights[i].Domain == "goal" {
			atRisk = &insights[i]
			break
		}
	}

	require.NotNil(t, atRisk)
	assert.Equal(t, insight.TypeCritical, atRisk.Type)
	assert.Contains(t, atRisk.Recommendation, "R$ 7000,00")
	require.NotNil(t, atRisk.ValueCents)
	assert.Equal(t, int64(700_000), *atRisk.ValueCents)
}

func TestGenerate_HighSavingsRateIsSuccess(t *testing.T) {
	snap := analytics.Snapshot{
		Transactions: []*transaction.Transaction{
			{
				ID:          uuid.New(),
				AmountCents: 500_000,
				Type:        transaction.TypeIncome,
				Category:    "Salário",
				Date:        now,
			},
			expense("Alimentação", 100_000, now.AddDate(0, -2, 0)),
		},
	}

	insights := insight.Generate(analytics.NewAt(snap, now))

	var savings *insight.Insight

	for i := range insights {
		if insights[i].Domain == "savings" {
			savings = &insights[i]
			break
		}
	}

	require.NotNil(t, savings)
	assert.Equal(t, insight.TypeSuccess, savings.Type)
	assert.Equal(t, insight.PriorityLow, savings.Priority)
}
