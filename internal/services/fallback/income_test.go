package fallback

import (
	"context"
	"math"
	"testing"

	"astropredict/pkg/util"

	"github.com/stretchr/testify/require"
)

func TestForecastIncomeShape(t *testing.T) {
	calc := NewIncomeCalculator(util.NewLockedRand(1))
	got, err := calc.ForecastIncome(context.Background(), []float64{40000, 50000, 60000}, 6)
	require.NoError(t, err)
	require.Equal(t, "moving_average", got.Model)
	require.Equal(t, "stable", got.Trend)
	require.Len(t, got.Forecast, 6)
	require.Len(t, got.Confidences, 6)
}

func TestForecastIncomeNoiseBand(t *testing.T) {
	calc := NewIncomeCalculator(util.NewLockedRand(7))
	avg := 50000.0
	got, err := calc.ForecastIncome(context.Background(), []float64{avg}, 12)
	require.NoError(t, err)

	for i, v := range got.Forecast {
		expected := avg + incomeGrowthRate*avg*float64(i+1)
		band := incomeNoiseFraction * avg
		require.LessOrEqual(t, math.Abs(v-expected), band,
			"period %d outside noise band: got %v want %v±%v", i+1, v, expected, band)
	}
}

func TestForecastIncomeMeanConverges(t *testing.T) {
	// Averaged over many runs the noise cancels and each period converges to
	// avg * (1 + 0.02*i).
	const runs = 2000
	avg := 50000.0
	periods := 3

	sums := make([]float64, periods)
	for seed := int64(0); seed < runs; seed++ {
		calc := NewIncomeCalculator(util.NewLockedRand(seed))
		got, err := calc.ForecastIncome(context.Background(), []float64{avg}, periods)
		require.NoError(t, err)
		for i, v := range got.Forecast {
			sums[i] += v
		}
	}

	for i := 0; i < periods; i++ {
		mean := sums[i] / runs
		expected := avg * (1 + incomeGrowthRate*float64(i+1))
		require.InDelta(t, expected, mean, avg*0.005,
			"period %d mean drifted: got %v want %v", i+1, mean, expected)
	}
}

func TestForecastIncomeConfidenceDecay(t *testing.T) {
	calc := NewIncomeCalculator(util.NewLockedRand(1))
	got, err := calc.ForecastIncome(context.Background(), nil, 40)
	require.NoError(t, err)

	require.InDelta(t, 0.75, got.Confidences[0], 1e-9)
	require.InDelta(t, 0.73, got.Confidences[1], 1e-9)
	// decays to the floor, never negative
	require.Equal(t, 0.0, got.Confidences[39])
	for _, c := range got.Confidences {
		require.GreaterOrEqual(t, c, 0.0)
	}
}

func TestForecastIncomeDefaultBaseline(t *testing.T) {
	calc := NewIncomeCalculator(util.NewLockedRand(1))
	got, err := calc.ForecastIncome(context.Background(), nil, 1)
	require.NoError(t, err)

	expected := defaultIncome * (1 + incomeGrowthRate)
	band := incomeNoiseFraction * defaultIncome
	require.LessOrEqual(t, math.Abs(got.Forecast[0]-expected), band)
}
