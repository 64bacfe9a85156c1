package fallback

import (
	"context"
	"testing"

	domsvc "astropredict/internal/domain/service"

	"github.com/stretchr/testify/require"
)

func TestAnalyzeStressNeutralBaseline(t *testing.T) {
	calc := NewStressCalculator()
	got, err := calc.AnalyzeStress(context.Background(), domsvc.StressInput{
		WorkHours:   8,
		SleepHours:  7,
		MoodScore:   5,
		StressScore: 5,
	})
	require.NoError(t, err)
	require.InDelta(t, 5.0, got.Score, 1e-9)
	require.Equal(t, "moderate", got.Level)
	require.Equal(t, "fallback", got.Source)
	require.Len(t, got.Recommendations, 3)
}

func TestAnalyzeStressCoefficients(t *testing.T) {
	calc := NewStressCalculator()
	got, err := calc.AnalyzeStress(context.Background(), domsvc.StressInput{
		WorkHours:       10, // +1.0
		SleepHours:      5,  // +0.6
		ExerciseMinutes: 30, // -0.5
		MoodScore:       3,  // +0.4
		StressScore:     7,  // +0.8
	})
	require.NoError(t, err)
	require.InDelta(t, 7.3, got.Score, 1e-9)
	require.Equal(t, "high", got.Level)
}

func TestAnalyzeStressClampsExtremes(t *testing.T) {
	calc := NewStressCalculator()

	high, err := calc.AnalyzeStress(context.Background(), domsvc.StressInput{
		WorkHours:   1000,
		StressScore: 10,
	})
	require.NoError(t, err)
	require.Equal(t, 10.0, high.Score)
	require.Equal(t, "high", high.Level)

	low, err := calc.AnalyzeStress(context.Background(), domsvc.StressInput{
		SleepHours:      12,
		ExerciseMinutes: 600,
		MoodScore:       10,
	})
	require.NoError(t, err)
	require.Equal(t, 0.0, low.Score)
	require.Equal(t, "low", low.Level)
}

func TestAnalyzeStressLevels(t *testing.T) {
	require.Equal(t, "low", stressLevel(3))
	require.Equal(t, "moderate", stressLevel(3.01))
	require.Equal(t, "moderate", stressLevel(6))
	require.Equal(t, "high", stressLevel(6.01))
}

func TestAnalyzeStressThirdRecommendation(t *testing.T) {
	calc := NewStressCalculator()

	relaxed, err := calc.AnalyzeStress(context.Background(), domsvc.StressInput{
		WorkHours: 6, SleepHours: 8, MoodScore: 8, StressScore: 3,
	})
	require.NoError(t, err)
	require.Contains(t, relaxed.Recommendations[2], "sustainable")

	strained, err := calc.AnalyzeStress(context.Background(), domsvc.StressInput{
		WorkHours: 12, SleepHours: 5, MoodScore: 3, StressScore: 8,
	})
	require.NoError(t, err)
	require.Contains(t, strained.Recommendations[2], "trending high")
}
