// Package fallback holds the deterministic offline approximations used when
// the ML service is unreachable. Pure functions, no I/O.
package fallback

import (
	"context"

	"astropredict/internal/domain/models"
	domsvc "astropredict/internal/domain/service"
)

// Stress level boundaries on the clamped 0-10 score.
const (
	stressLowMax      = 3
	stressModerateMax = 6
)

var stressRecommendations = []string{
	"Schedule short breaks between long work blocks and protect your sleep window.",
	"Aim for at least 30 minutes of light exercise to offset desk time.",
}

// StressCalculator scores stress offline with fixed coefficients.
type StressCalculator struct{}

// NewStressCalculator creates the offline stress analyzer.
func NewStressCalculator() *StressCalculator {
	return &StressCalculator{}
}

// AnalyzeStress starts at a baseline of 5 and applies weighted deviations of
// each metric from its neutral value, clamping the result to [0,10].
func (s *StressCalculator) AnalyzeStress(_ context.Context, in domsvc.StressInput) (*models.StressResult, error) {
	score := 5.0
	score += 0.5 * (in.WorkHours - 8)
	score += -0.3 * (in.SleepHours - 7)
	score += -0.5 * (in.ExerciseMinutes / 30)
	score += -0.2 * (in.MoodScore - 5)
	score += 0.4 * (in.StressScore - 5)

	if score < 0 {
		score = 0
	}
	if score > 10 {
		score = 10
	}

	recs := make([]string, 0, 3)
	recs = append(recs, stressRecommendations...)
	if score > 5 {
		recs = append(recs, "Your load is trending high; consider deferring non-urgent commitments this week.")
	} else {
		recs = append(recs, "Current balance looks sustainable; keep your present routine.")
	}

	return &models.StressResult{
		Score:           score,
		Level:           stressLevel(score),
		Source:          "fallback",
		Recommendations: recs,
	}, nil
}

func stressLevel(score float64) string {
	switch {
	case score <= stressLowMax:
		return "low"
	case score <= stressModerateMax:
		return "moderate"
	default:
		return "high"
	}
}

var _ domsvc.StressAnalyzer = (*StressCalculator)(nil)
