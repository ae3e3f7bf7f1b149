package analytics

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// GoalStatus classifies a goal's trajectory.
type GoalStatus string

const (
	GoalCompleted GoalStatus = "completed"
	GoalAtRisk    GoalStatus = "at-risk"
	GoalBehind    GoalStatus = "behind"
	GoalAhead     GoalStatus = "ahead"
	GoalOnTrack   GoalStatus = "on-track"
)

// avgDaysPerMonth converts day spans into month counts.
const avgDaysPerMonth = 30.44

// GoalReport projects one goal's trajectory.
type GoalReport struct {
	GoalID               uuid.UUID
	Title                string
	ProgressPct          float64
	MonthsToComplete     int
	RequiredMonthlyCents int64
	IsOnTrack            bool
	EstimatedCompletion  *time.Time // Unset once completed or when there is no saving pace yet.
	Status               GoalStatus
}

// GoalAnalysis projects every goal: progress, months left until the
// deadline, the monthly saving needed to finish on time, and a status
// from comparing actual progress with a straight-line interpolation
// between creation date and deadline.
func (e *Engine) GoalAnalysis() []GoalReport {
	reports := make([]GoalReport, 0, len(e.snap.Goals))

	for _, g := range e.snap.Goals {
		r := GoalReport{GoalID: g.ID, Title: g.Title}

		if g.TargetCents > 0 {
			r.ProgressPct = float64(g.CurrentCents) / float64(g.TargetCents) * 100
		}

		r.MonthsToComplete = monthsUntil(e.now, g.Deadline)

		remaining := g.TargetCents - g.CurrentCents
		if remaining < 0 {
			remaining = 0
		}

		if r.MonthsToComplete > 0 {
			r.RequiredMonthlyCents = remaining / int64(r.MonthsToComplete)
		} else {
			// Due now or overdue: the whole remainder is needed.
			r.RequiredMonthlyCents = remaining
		}

		expected := expectedProgress(e.now, g.CreatedAt, g.Deadline)
		r.IsOnTrack = r.ProgressPct >= expected*0.9
		r.Status = goalStatus(r.ProgressPct, expected, e.now, g.Deadline)

		if r.Status != GoalCompleted {
			r.EstimatedCompletion = estimateCompletion(e.now, g.CreatedAt, g.CurrentCents, remaining)
		}

		reports = append(reports, r)
	}

	return reports
}

func monthsUntil(now, deadline time.Time) int {
	days := deadline.Sub(now).Hours() / 24
	months := int(math.Floor(days / avgDaysPerMonth))

	if months < 0 {
		return 0
	}

	return months
}

// expectedProgress interpolates linearly between creation and deadline,
// clamped to [0, 100] so clock skew or imported historical goals cannot
// push it out of range.
func expectedProgress(now, createdAt, deadline time.Time) float64 {
	total := deadline.Sub(createdAt)
	if total <= 0 {
		return 100
	}

	pct := float64(now.Sub(createdAt)) / float64(total) * 100

	return math.Min(100, math.Max(0, pct))
}

func goalStatus(progress, expected float64, now, deadline time.Time) GoalStatus {
	switch {
	case progress >= 100:
		return GoalCompleted
	case now.After(deadline):
		return GoalAtRisk
	case progress < expected*0.7:
		return GoalBehind
	case progress > expected*1.1:
		return GoalAhead
	default:
		return GoalOnTrack
	}
}

// estimateCompletion projects when the goal finishes at the saving pace
// shown since creation. Without pace there is no estimate.
func estimateCompletion(now, createdAt time.Time, currentCents, remainingCents int64) *time.Time {
	monthsElapsed := now.Sub(createdAt).Hours() / 24 / avgDaysPerMonth
	if monthsElapsed <= 0 || currentCents <= 0 {
		return nil
	}

	pace := float64(currentCents) / monthsElapsed
	monthsLeft := float64(remainingCents) / pace

	done := now.Add(time.Duration(monthsLeft * avgDaysPerMonth * 24 * float64(time.Hour)))

	return &done
}
