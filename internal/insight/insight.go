// Package insight turns analytics outputs into prioritized, human-readable
// records for the presentation layer.
package insight

import (
	"fmt"
	"sort"

	"github.com/dmarques/financo/internal/analytics"
)

// Type is the tone of an insight.
type Type string

const (
	TypeWarning  Type = "warning"
	TypeSuccess  Type = "success"
	TypeInfo     Type = "info"
	TypeCritical Type = "critical"
)

// Priorities; 1 is the most urgent.
const (
	PriorityHigh   = 1
	PriorityMedium = 2
	PriorityLow    = 3
)

// Insight is one finding, ready for rendering.
type Insight struct {
	Type           Type
	Domain         string // spending | budget | goal | savings
	Title          string
	Description    string
	Recommendation string
	ValueCents     *int64
	TrendDirection analytics.Trend
	Priority       int
}

// Savings-rate trigger thresholds, in percent.
const (
	lowSavingsRatePct  = 10.0
	highSavingsRatePct = 30.0
)

// Generate evaluates every insight rule against the engine's outputs and
// returns the findings sorted by priority, most urgent first. Ties keep
// insertion order.
func Generate(e *analytics.Engine) []Insight {
	var insights []Insight

	insights = append(insights, spendingInsights(e.SpendingPatterns(analytics.PeriodMonth))...)
	insights = append(insights, budgetInsights(e.BudgetAnalysis())...)
	insights = append(insights, goalInsights(e.GoalAnalysis())...)
	insights = append(insights, savingsInsights(e.MonthlyAnalysis(1))...)

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Priority < insights[j].Priority
	})

	return insights
}

// spendingInsights warns when the top spending category is still growing.
func spendingInsights(patterns []analytics.SpendingPattern) []Insight {
	if len(patterns) == 0 {
		return nil
	}

	top := patterns[0]
	if top.Trend != analytics.TrendIncreasing {
		return nil
	}

	total := top.TotalCents

	return []Insight{{
		Type:           TypeWarning,
		Domain:         "spending",
		Title:          fmt.Sprintf("Gastos crescendo em %s", top.Category),
		Description:    fmt.Sprintf("Sua maior categoria de gastos subiu %.0f%% em relação ao período anterior.", top.TrendPercentage),
		Recommendation: fmt.Sprintf("Revise os lançamentos de %s deste período.", top.Category),
		ValueCents:     &total,
		TrendDirection: top.Trend,
		Priority:       PriorityMedium,
	}}
}

func budgetInsights(reports []analytics.BudgetReport) []Insight {
	var insights []Insight

	for _, r := range reports {
		switch r.Status {
		case analytics.BudgetCritical:
			spent := r.SpentCents
			insights = append(insights, Insight{
				Type:           TypeWarning,
				Domain:         "budget",
				Title:          fmt.Sprintf("Orçamento de %s quase no limite", r.Category),
				Description:    fmt.Sprintf("Você já usou %.0f%% do orçamento de %s.", r.UtilizationPct, r.Category),
				Recommendation: fmt.Sprintf("Restam %s para o mês; segure os gastos nessa categoria.", formatCents(r.RemainingCents)),
				ValueCents:     &spent,
				Priority:       PriorityMedium,
			})
		case analytics.BudgetExceeded:
			spent := r.SpentCents
			recommendation := fmt.Sprintf("O orçamento de %s foi estourado; reveja os lançamentos da categoria.", r.Category)

			if r.ProjectedOverrun != nil {
				recommendation = fmt.Sprintf("No ritmo atual o estouro chega a %s até o fim do mês.", formatCents(*r.ProjectedOverrun))
			}

			insights = append(insights, Insight{
				Type:           TypeCritical,
				Domain:         "budget",
				Title:          fmt.Sprintf("Orçamento de %s estourado", r.Category),
				Description:    fmt.Sprintf("Gastos de %s contra um limite de %s.", formatCents(r.SpentCents), formatCents(r.BudgetedCents)),
				Recommendation: recommendation,
				ValueCents:     &spent,
				Priority:       PriorityHigh,
			})
		}
	}

	return insights
}

func goalInsights(reports []analytics.GoalReport) []Insight {
	var insights []Insight

	for _, r := range reports {
		switch r.Status {
		case analytics.GoalBehind:
			insights = append(insights, Insight{
				Type:        TypeWarning,
				Domain:      "goal",
				Title:       fmt.Sprintf("Meta \"%s\" atrasada", r.Title),
				Description: fmt.Sprintf("O progresso está em %.0f%%, abaixo do esperado para a data.", r.ProgressPct),
				Recommendation: fmt.Sprintf("Guarde %s por mês para terminar no prazo.",
					formatCents(r.RequiredMonthlyCents)),
				Priority: PriorityMedium,
			})
		case analytics.GoalAtRisk:
			required := r.RequiredMonthlyCents
			insights = append(insights, Insight{
				Type:        TypeCritical,
				Domain:      "goal",
				Title:       fmt.Sprintf("Meta \"%s\" em risco", r.Title),
				Description: "O prazo passou e a meta ainda não foi concluída.",
				Recommendation: fmt.Sprintf("Faltam %s; ajuste o prazo ou reforce o aporte.",
					formatCents(required)),
				ValueCents: &required,
				Priority:   PriorityHigh,
			})
		}
	}

	return insights
}

func savingsInsights(months []analytics.MonthlySummary) []Insight {
	if len(months) == 0 {
		return nil
	}

	current := months[len(months)-1]

	switch {
	case current.SavingsRate < lowSavingsRatePct:
		return []Insight{{
			Type:           TypeWarning,
			Domain:         "savings",
			Title:          "Taxa de poupança baixa",
			Description:    fmt.Sprintf("Você poupou %.1f%% da renda este mês.", current.SavingsRate),
			Recommendation: "Tente reservar ao menos 10% da renda mensal.",
			Priority:       PriorityMedium,
		}}
	case current.SavingsRate > highSavingsRatePct:
		return []Insight{{
			Type:        TypeSuccess,
			Domain:      "savings",
			Title:       "Ótima taxa de poupança",
			Description: fmt.Sprintf("Você poupou %.1f%% da renda este mês.", current.SavingsRate),
			Priority:    PriorityLow,
		}}
	}

	return nil
}

func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	return fmt.Sprintf("%sR$ %d,%02d", sign, cents/100, cents%100)
}
