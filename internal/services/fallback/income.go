package fallback

import (
	"context"

	"astropredict/internal/domain/models"
	domsvc "astropredict/internal/domain/service"
	"astropredict/pkg/util"
)

const (
	defaultIncome       = 50000.0
	incomeNoiseFraction = 0.05 // uniform noise band, ±5% of the average
	incomeGrowthRate    = 0.02 // linear growth per period
	baseConfidence      = 0.75
	confidenceDecay     = 0.02 // per period
)

// IncomeCalculator projects income offline from the historical average.
type IncomeCalculator struct {
	rng util.Rand
}

// NewIncomeCalculator creates the offline income forecaster. The random
// source is injected so tests can fix the noise.
func NewIncomeCalculator(rng util.Rand) *IncomeCalculator {
	return &IncomeCalculator{rng: rng}
}

// ForecastIncome emits, for each requested period i (1-based), the historical
// average plus uniform noise within ±5% and 2% linear growth per period.
// Confidence decays linearly from 0.75; the trend is always "stable".
func (f *IncomeCalculator) ForecastIncome(_ context.Context, history []float64, periods int) (*models.IncomeForecast, error) {
	avg := defaultIncome
	if len(history) > 0 {
		sum := 0.0
		for _, v := range history {
			sum += v
		}
		avg = sum / float64(len(history))
	}

	forecast := make([]float64, 0, periods)
	confidences := make([]float64, 0, periods)
	for i := 1; i <= periods; i++ {
		noise := (f.rng.Float64()*2 - 1) * incomeNoiseFraction * avg
		growth := incomeGrowthRate * avg * float64(i)
		forecast = append(forecast, avg+noise+growth)

		conf := baseConfidence - confidenceDecay*float64(i-1)
		if conf < 0 {
			conf = 0
		}
		confidences = append(confidences, conf)
	}

	return &models.IncomeForecast{
		Model:       "moving_average",
		Forecast:    forecast,
		Confidences: confidences,
		Trend:       "stable",
	}, nil
}

var _ domsvc.IncomeForecaster = (*IncomeCalculator)(nil)
