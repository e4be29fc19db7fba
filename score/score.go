// Package score computes the composite wealth score and classifies goal
// progress. Everything here is a pure function over the current snapshot;
// nothing is retained between evaluations.
package score

import (
	"math"

	"github.com/Zoh007/WealthScore/models"
)

// Weighting: balance 40%, deposit frequency 30%, spending control 20%,
// account diversity 10%.
const (
	balanceSaturation = 10000 // dollars at which the balance term maxes out
	depositUnitPoints = 15    // points per deposit before weighting
)

// Result is the score with its weighted sub-terms.
type Result struct {
	Score     int
	Breakdown models.ScoreBreakdown
}

// Calculate derives the 0-100 wealth score from the fetched datasets. An
// empty account set means no data and scores 0.
func Calculate(accounts []models.Account, deposits, purchases []models.Transaction) Result {
	if len(accounts) == 0 {
		return Result{}
	}

	var totalBalance, totalDeposits, totalSpent float64
	for _, a := range accounts {
		totalBalance += a.Balance
	}
	for _, d := range deposits {
		totalDeposits += d.Amount
	}
	for _, p := range purchases {
		totalSpent += p.Amount
	}

	balanceScore := math.Min(totalBalance/balanceSaturation, 1) * 40
	depositScore := math.Min(float64(len(deposits)*depositUnitPoints), 100) * 0.30

	spendingScore := 50 * 0.20
	if totalSpent > 0 {
		if totalDeposits == 0 {
			// Spending with no recorded deposits: worst case, not neutral.
			spendingScore = 0
		} else {
			spendingScore = math.Min(100-totalSpent/totalDeposits*100, 100) * 0.20
		}
	}

	diversityScore := float64(len(accounts)) * 5
	if len(accounts) >= 2 {
		diversityScore = 10
	}

	total := balanceScore + depositScore + spendingScore + diversityScore
	scored := int(math.Round(math.Max(0, math.Min(total, 100))))

	return Result{
		Score: scored,
		Breakdown: models.ScoreBreakdown{
			Balance:   balanceScore,
			Deposit:   depositScore,
			Spending:  spendingScore,
			Diversity: diversityScore,
		},
	}
}

// Status maps a score onto its dashboard label.
func Status(score int) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Fair"
	default:
		return "Needs Attention"
	}
}

// Trend is a coarse delta derived from the score band; no score history is
// kept to diff against.
func Trend(score int) int {
	switch {
	case score >= 70:
		return 5
	case score >= 50:
		return 2
	default:
		return -2
	}
}
