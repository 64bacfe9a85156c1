// Package usecase holds the application services that tie stores, ML clients,
// and fallbacks together behind the HTTP handlers.
package usecase

import (
	"context"
	"fmt"
	"time"

	"astropredict/internal/domain/models"
	domrepo "astropredict/internal/domain/repository"
	domsvc "astropredict/internal/domain/service"
	applogger "astropredict/pkg/logger"
	"astropredict/pkg/metrics"

	"github.com/google/uuid"
)

const (
	defaultForecastPeriods = 6
	maxForecastPeriods     = 24
)

// WellnessService runs stress analyses and income forecasts, degrading to the
// offline calculators when the ML service is unreachable.
type WellnessService struct {
	metricsRepo    domrepo.MetricStore
	stress         domsvc.StressAnalyzer
	stressFallback domsvc.StressAnalyzer
	income         domsvc.IncomeForecaster
	incomeFallback domsvc.IncomeForecaster
	recorder       *metrics.Recorder
	logger         *applogger.Logger
	now            func() time.Time
}

// NewWellnessService wires the wellness flows. The second analyzer and
// forecaster are the offline fallbacks.
func NewWellnessService(
	metricsRepo domrepo.MetricStore,
	stress domsvc.StressAnalyzer,
	stressFallback domsvc.StressAnalyzer,
	income domsvc.IncomeForecaster,
	incomeFallback domsvc.IncomeForecaster,
	recorder *metrics.Recorder,
	logger *applogger.Logger,
) *WellnessService {
	return &WellnessService{
		metricsRepo:    metricsRepo,
		stress:         stress,
		stressFallback: stressFallback,
		income:         income,
		incomeFallback: incomeFallback,
		recorder:       recorder,
		logger:         logger,
		now:            time.Now,
	}
}

// WithClock overrides the time source. Tests only.
func (s *WellnessService) WithClock(now func() time.Time) *WellnessService {
	s.now = now
	return s
}

// AnalyzeStress scores the submitted lifestyle metrics and appends the result
// as a stress observation so it feeds future predictions.
func (s *WellnessService) AnalyzeStress(ctx context.Context, userID uuid.UUID, in domsvc.StressInput) (*models.StressResult, error) {
	result, err := s.stress.AnalyzeStress(ctx, in)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("stress analysis unavailable, using offline calculator", applogger.Error(err))
		}
		if s.recorder != nil {
			s.recorder.FallbackUsed("stress")
		}
		result, err = s.stressFallback.AnalyzeStress(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("stress fallback: %w", err)
		}
	}

	row := &models.UserMetric{
		ID:         uuid.New(),
		UserID:     userID,
		MetricType: models.MetricStress,
		Value:      result.Score,
		RecordedAt: s.now().UTC(),
	}
	if err := s.metricsRepo.Append(ctx, row); err != nil {
		return nil, fmt.Errorf("record stress observation: %w", err)
	}
	return result, nil
}

// ForecastIncome projects income over the requested number of monthly
// periods from the user's recorded income history.
func (s *WellnessService) ForecastIncome(ctx context.Context, userID uuid.UUID, periods int) (*models.IncomeForecast, error) {
	if periods <= 0 {
		periods = defaultForecastPeriods
	}
	if periods > maxForecastPeriods {
		periods = maxForecastPeriods
	}

	rows, err := s.metricsRepo.ListRecent(ctx, userID, models.MetricIncome, metricWindow)
	if err != nil {
		return nil, fmt.Errorf("read income history: %w", err)
	}
	// oldest first for the forecaster
	history := make([]float64, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		history = append(history, rows[i].Value)
	}

	forecast, err := s.income.ForecastIncome(ctx, history, periods)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("income forecast unavailable, using offline calculator", applogger.Error(err))
		}
		if s.recorder != nil {
			s.recorder.FallbackUsed("income")
		}
		forecast, err = s.incomeFallback.ForecastIncome(ctx, history, periods)
		if err != nil {
			return nil, fmt.Errorf("income fallback: %w", err)
		}
	}
	return forecast, nil
}
