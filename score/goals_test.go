package score

import (
	"testing"
	"time"

	"github.com/Zoh007/WealthScore/models"
)

func TestClassifyDecisionTable(t *testing.T) {
	cases := []struct {
		name    string
		net     float64
		needed  float64
		periods int
		want    ProgressStatus
	}{
		{"meets needed exactly", 500, 500, 6, OnTrack},
		{"exceeds needed", 800, 500, 6, OnTrack},
		{"at attention threshold", 350, 500, 6, NeedsAttention},
		{"between thresholds", 400, 500, 6, NeedsAttention},
		{"below attention threshold", 349, 500, 6, AtRisk},
		{"no savings at all", 0, 500, 6, AtRisk},
		{"zero periods remaining", 1000, 0, 0, Overdue},
		{"negative periods", 1000, 0, -3, Overdue},
		{"zero needed", 0, 0, 6, OnTrack},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.net, tc.needed, tc.periods); got != tc.want {
				t.Errorf("Classify(%v, %v, %d) = %q, want %q",
					tc.net, tc.needed, tc.periods, got, tc.want)
			}
		})
	}
}

func TestClassifyIsTotal(t *testing.T) {
	// Exactly one status for any non-negative input combination.
	for _, net := range []float64{0, 1, 100, 1e6} {
		for _, needed := range []float64{0, 1, 100, 1e6} {
			for _, periods := range []int{0, 1, 12, 120} {
				got := Classify(net, needed, periods)
				switch got {
				case OnTrack, NeedsAttention, AtRisk, Overdue:
				default:
					t.Fatalf("Classify(%v, %v, %d) returned unknown status %q",
						net, needed, periods, got)
				}
			}
		}
	}
}

func TestMonthsUntil(t *testing.T) {
	now := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)

	if got := MonthsUntil(now, time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)); got != 6 {
		t.Errorf("MonthsUntil = %d, want 6", got)
	}
	if got := MonthsUntil(now, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)); got != -3 {
		t.Errorf("MonthsUntil past date = %d, want -3", got)
	}
}

func TestWeeksUntil(t *testing.T) {
	now := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)

	if got := WeeksUntil(now, now.AddDate(0, 0, 14)); got != 2 {
		t.Errorf("WeeksUntil 14 days = %d, want 2", got)
	}
	// Partial weeks round up.
	if got := WeeksUntil(now, now.AddDate(0, 0, 10)); got != 2 {
		t.Errorf("WeeksUntil 10 days = %d, want 2", got)
	}
	if got := WeeksUntil(now, now.AddDate(0, 0, -7)); got != 0 {
		t.Errorf("WeeksUntil past date = %d, want 0", got)
	}
}

func TestEvaluateGoal(t *testing.T) {
	now := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
	goal := models.Goal{Name: "Vacation to Italy", Amount: 5000, TargetDate: "2026-05-10"}

	// 8 months remaining, needed 625/month.
	progress := EvaluateGoal(goal, 700, now)
	if progress.Status != string(OnTrack) {
		t.Errorf("status = %q, want on-track", progress.Status)
	}
	if progress.MonthsRemaining != 8 {
		t.Errorf("months remaining = %d, want 8", progress.MonthsRemaining)
	}

	progress = EvaluateGoal(goal, 500, now)
	if progress.Status != string(NeedsAttention) {
		t.Errorf("status at 500/month = %q, want needs-attention", progress.Status)
	}

	progress = EvaluateGoal(goal, 100, now)
	if progress.Status != string(AtRisk) {
		t.Errorf("status at 100/month = %q, want at-risk", progress.Status)
	}

	past := models.Goal{Name: "Old", Amount: 1000, TargetDate: "2024-01-01"}
	if progress = EvaluateGoal(past, 1000, now); progress.Status != string(Overdue) {
		t.Errorf("past goal status = %q, want overdue", progress.Status)
	}

	malformed := models.Goal{Name: "Bad", Amount: 1000, TargetDate: "soon"}
	if progress = EvaluateGoal(malformed, 1000, now); progress.Status != string(Overdue) {
		t.Errorf("unparseable target date status = %q, want overdue", progress.Status)
	}
}

func TestEvaluateGoalsSavingsModel(t *testing.T) {
	now := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
	goals := []models.Goal{
		{Name: "A", Amount: 1200, TargetDate: "2026-09-01"},
		{Name: "B", Amount: 50000, TargetDate: "2026-09-01"},
	}

	// 5000 * 20% = 1000/month.
	results := EvaluateGoals(goals, 5000, 20, now)
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].MonthlySavings != 1000 {
		t.Errorf("monthly savings = %v, want 1000", results[0].MonthlySavings)
	}
	if results[0].Status != string(OnTrack) {
		t.Errorf("goal A status = %q, want on-track", results[0].Status)
	}
	if results[1].Status != string(AtRisk) {
		t.Errorf("goal B status = %q, want at-risk", results[1].Status)
	}
}
