package score

import (
	"math"
	"time"

	"github.com/Zoh007/WealthScore/models"
)

// ProgressStatus classifies savings progress toward a goal.
type ProgressStatus string

const (
	OnTrack        ProgressStatus = "on-track"
	NeedsAttention ProgressStatus = "needs-attention"
	AtRisk         ProgressStatus = "at-risk"
	Overdue        ProgressStatus = "overdue"
)

// attentionRatio is the fraction of the needed savings rate below which a
// goal flips from needs-attention to at-risk.
const attentionRatio = 0.7

// Classify maps net savings per period against the amount needed per period.
// Total over its inputs: exactly one status comes back for any combination.
func Classify(net, needed float64, periodsRemaining int) ProgressStatus {
	if periodsRemaining <= 0 {
		return Overdue
	}
	switch {
	case net >= needed:
		return OnTrack
	case net >= attentionRatio*needed:
		return NeedsAttention
	default:
		return AtRisk
	}
}

// MonthsUntil counts whole calendar months from now to target (year and month
// deltas only, days ignored).
func MonthsUntil(now, target time.Time) int {
	return (target.Year()-now.Year())*12 + int(target.Month()) - int(now.Month())
}

// WeeksUntil counts whole weeks from now to target, rounding partial weeks up.
func WeeksUntil(now, target time.Time) int {
	days := target.Sub(now).Hours() / 24
	if days <= 0 {
		return 0
	}
	return int(math.Ceil(days / 7))
}

// EvaluateGoal classifies one goal against a monthly savings figure. A target
// date that does not parse counts as already overdue.
func EvaluateGoal(goal models.Goal, monthlySavings float64, now time.Time) models.GoalProgress {
	progress := models.GoalProgress{
		Goal:           goal,
		MonthlySavings: monthlySavings,
		Status:         string(Overdue),
	}

	target, err := time.Parse("2006-01-02", goal.TargetDate)
	if err != nil {
		return progress
	}

	months := MonthsUntil(now, target)
	progress.MonthsRemaining = months
	if monthlySavings > 0 {
		progress.ProjectedMonths = goal.Amount / monthlySavings
	}

	var needed float64
	if months > 0 {
		needed = goal.Amount / float64(months)
	}
	progress.NeededPerMonth = needed
	progress.Status = string(Classify(monthlySavings, needed, months))
	return progress
}

// EvaluateGoals applies the planning page's savings model: monthly savings is
// the income times the chosen savings rate (percent).
func EvaluateGoals(goals []models.Goal, monthlyIncome, savingsRate float64, now time.Time) []models.GoalProgress {
	monthlySavings := monthlyIncome * savingsRate / 100
	results := make([]models.GoalProgress, 0, len(goals))
	for _, g := range goals {
		results = append(results, EvaluateGoal(g, monthlySavings, now))
	}
	return results
}
