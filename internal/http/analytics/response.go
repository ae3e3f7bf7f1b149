package analytics

import (
	"time"

	"github.com/google/uuid"

	"github.com/dmarques/financo/internal/analytics"
	"github.com/dmarques/financo/internal/insight"
)

type patternResponse struct {
	Category          string  `json:"category"`
	Total             int64   `json:"total"`
	TransactionCount  int     `json:"transaction_count"`
	Average           int64   `json:"average"`
	PercentageOfTotal float64 `json:"percentage_of_total"`
	Trend             string  `json:"trend"`
	TrendPercentage   float64 `json:"trend_percentage"`
}

func toPatternList(patterns []analytics.SpendingPattern) []patternResponse {
	resp := make([]patternResponse, len(patterns))
	for i, p := range patterns {
		resp[i] = patternResponse{
			Category:          p.Category,
			Total:             p.TotalCents,
			TransactionCount:  p.TransactionCount,
			Average:           p.AverageCents,
			PercentageOfTotal: p.PercentageOfTotal,
			Trend:             string(p.Trend),
			TrendPercentage:   p.TrendPercentage,
		}
	}

	return resp
}

type categoryTotalResponse struct {
	Category string `json:"category"`
	Total    int64  `json:"total"`
}

type monthlyResponse struct {
	Month            time.Time               `json:"month"`
	Income           int64                   `json:"income"`
	Expenses         int64                   `json:"expenses"`
	Balance          int64                   `json:"balance"`
	TransactionCount int                     `json:"transaction_count"`
	TopCategories    []categoryTotalResponse `json:"top_categories"`
	SavingsRate      float64                 `json:"savings_rate"`
}

func toMonthlyList(months []analytics.MonthlySummary) []monthlyResponse {
	resp := make([]monthlyResponse, len(months))

	for i, m := range months {
		top := make([]categoryTotalResponse, len(m.TopCategories))
		for j, c := range m.TopCategories {
			top[j] = categoryTotalResponse{Category: c.Category, Total: c.TotalCents}
		}

		resp[i] = monthlyResponse{
			Month:            m.Month,
			Income:           m.IncomeCents,
			Expenses:         m.ExpenseCents,
			Balance:          m.BalanceCents,
			TransactionCount: m.TransactionCount,
			TopCategories:    top,
			SavingsRate:      m.SavingsRate,
		}
	}

	return resp
}

type budgetReportResponse struct {
	Category             string  `json:"category"`
	Budgeted             int64   `json:"budgeted"`
	Spent                int64   `json:"spent"`
	Remaining            int64   `json:"remaining"`
	Utilization          float64 `json:"utilization"`
	Status               string  `json:"status"`
	ProjectedOverrun     *int64  `json:"projected_overrun,omitempty"`
	DaysRemaining        int     `json:"days_remaining"`
	DailyBudget          float64 `json:"daily_budget"`
	AverageDailySpending float64 `json:"average_daily_spending"`
}

func toBudgetList(reports []analytics.BudgetReport) []budgetReportResponse {
	resp := make([]budgetReportResponse, len(reports))
	for i, r := range reports {
		resp[i] = budgetReportResponse{
			Category:             r.Category,
			Budgeted:             r.BudgetedCents,
			Spent:                r.SpentCents,
			Remaining:            r.RemainingCents,
			Utilization:          r.UtilizationPct,
			Status:               string(r.Status),
			ProjectedOverrun:     r.ProjectedOverrun,
			DaysRemaining:        r.DaysRemaining,
			DailyBudget:          r.DailyBudgetCents,
			AverageDailySpending: r.AverageDailySpending,
		}
	}

	return resp
}

type goalReportResponse struct {
	GoalID              uuid.UUID  `json:"goal_id"`
	Title               string     `json:"title"`
	Progress            float64    `json:"progress"`
	MonthsToComplete    int        `json:"months_to_complete"`
	RequiredMonthly     int64      `json:"required_monthly"`
	IsOnTrack           bool       `json:"is_on_track"`
	EstimatedCompletion *time.Time `json:"estimated_completion,omitempty"`
	Status              string     `json:"status"`
}

func toGoalList(reports []analytics.GoalReport) []goalReportResponse {
	resp := make([]goalReportResponse, len(reports))
	for i, r := range reports {
		resp[i] = goalReportResponse{
			GoalID:              r.GoalID,
			Title:               r.Title,
			Progress:            r.ProgressPct,
			MonthsToComplete:    r.MonthsToComplete,
			RequiredMonthly:     r.RequiredMonthlyCents,
			IsOnTrack:           r.IsOnTrack,
			EstimatedCompletion: r.EstimatedCompletion,
			Status:              string(r.Status),
		}
	}

	return resp
}

type scoreResponse struct {
	Total     int `json:"total"`
	Breakdown struct {
		SavingsRate      float64 `json:"savings_rate"`
		BudgetCompliance float64 `json:"budget_compliance"`
		GoalProgress     float64 `json:"goal_progress"`
		Diversification  float64 `json:"diversification"`
	} `json:"breakdown"`
}

func toScoreResponse(s analytics.Score) scoreResponse {
	var resp scoreResponse
	resp.Total = s.Total
	resp.Breakdown.SavingsRate = s.Breakdown.SavingsRate
	resp.Breakdown.BudgetCompliance = s.Breakdown.BudgetCompliance
	resp.Breakdown.GoalProgress = s.Breakdown.GoalProgress
	resp.Breakdown.Diversification = s.Breakdown.Diversification

	return resp
}

type outlierResponse struct {
	TransactionID uuid.UUID `json:"transaction_id"`
	Description   string    `json:"description"`
	Amount        int64     `json:"amount"`
	Date          time.Time `json:"date"`
	ZScore        float64   `json:"z_score"`
}

func toOutlierList(outliers []analytics.Outlier) []outlierResponse {
	resp := make([]outlierResponse, len(outliers))
	for i, o := range outliers {
		resp[i] = outlierResponse{
			TransactionID: o.Transaction.ID,
			Description:   o.Transaction.Description,
			Amount:        o.Transaction.AmountCents,
			Date:          o.Transaction.Date,
			ZScore:        o.ZScore,
		}
	}

	return resp
}

type insightResponse struct {
	Type           string `json:"type"`
	Domain         string `json:"domain"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation,omitempty"`
	Value          *int64 `json:"value,omitempty"`
	TrendDirection string `json:"trend_direction,omitempty"`
	Priority       int    `json:"priority"`
}

func toInsightList(insights []insight.Insight) []insightResponse {
	resp := make([]insightResponse, len(insights))
	for i, in := range insights {
		resp[i] = insightResponse{
			Type:           string(in.Type),
			Domain:         in.Domain,
			Title:          in.Title,
			Description:    in.Description,
			Recommendation: in.Recommendation,
			Value:          in.ValueCents,
			TrendDirection: string(in.TrendDirection),
			Priority:       in.Priority,
		}
	}

	return resp
}
