package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"astropredict/internal/domain/models"
	domrepo "astropredict/internal/domain/repository"
	domsvc "astropredict/internal/domain/service"
	applogger "astropredict/pkg/logger"
	"astropredict/pkg/metrics"
	"astropredict/pkg/util"

	"github.com/google/uuid"
)

// metricWindow caps how many recent observation rows feed a prediction.
const metricWindow = 30

// Predictor orchestrates prediction generation: it gathers the user's birth
// chart and recent metrics, calls the ML sources that apply, and assembles
// a persisted record. ML failures degrade to "source absent"; store failures
// surface to the caller.
type Predictor struct {
	predictions domrepo.PredictionStore
	charts      domrepo.ChartStore
	metricsRepo domrepo.MetricStore
	astrology   domsvc.AstrologyService
	income      domsvc.IncomeForecaster
	stress      domsvc.StressAnalyzer
	rng         util.Rand
	recorder    *metrics.Recorder
	logger      *applogger.Logger
	now         func() time.Time
}

// NewPredictor wires the orchestrator. The random source is injected so tests
// can pin the canned-text selection and window lengths.
func NewPredictor(
	predictions domrepo.PredictionStore,
	charts domrepo.ChartStore,
	metricsRepo domrepo.MetricStore,
	astrology domsvc.AstrologyService,
	income domsvc.IncomeForecaster,
	stress domsvc.StressAnalyzer,
	rng util.Rand,
	recorder *metrics.Recorder,
	logger *applogger.Logger,
) *Predictor {
	return &Predictor{
		predictions: predictions,
		charts:      charts,
		metricsRepo: metricsRepo,
		astrology:   astrology,
		income:      income,
		stress:      stress,
		rng:         rng,
		recorder:    recorder,
		logger:      logger,
		now:         time.Now,
	}
}

// WithClock overrides the time source. Tests only.
func (p *Predictor) WithClock(now func() time.Time) *Predictor {
	p.now = now
	return p
}

// Generate produces and persists one prediction for the user.
func (p *Predictor) Generate(ctx context.Context, userID uuid.UUID, category, timeframe string) (*models.Prediction, error) {
	chart, err := p.charts.GetByUser(ctx, userID)
	if err != nil && !errors.Is(err, domrepo.ErrNotFound) {
		return nil, fmt.Errorf("read birth chart: %w", err)
	}

	recent, err := p.metricsRepo.ListRecent(ctx, userID, "", metricWindow)
	if err != nil {
		return nil, fmt.Errorf("read metrics: %w", err)
	}

	astroRaw := p.astrologySubPrediction(ctx, chart, category, timeframe)
	behaviorRaw := p.behaviorSubPrediction(ctx, recent, category, timeframe)

	astroConf, behaviorConf, overall := confidenceScores(astroRaw != nil, behaviorRaw != nil)
	predType := predictionType(astroRaw != nil, behaviorRaw != nil)

	now := p.now().UTC()
	months := models.TimeframeMonths(timeframe)
	periodEnd := now.AddDate(0, months, 0)

	combined, err := json.Marshal(p.buildCombined(category, months, now))
	if err != nil {
		return nil, fmt.Errorf("marshal combined prediction: %w", err)
	}

	record := &models.Prediction{
		ID:                  uuid.New(),
		UserID:              userID,
		Category:            category,
		PredictionType:      predType,
		Timeframe:           timeframe,
		PeriodStart:         now,
		PeriodEnd:           periodEnd,
		AstrologyPrediction: astroRaw,
		BehaviorPrediction:  behaviorRaw,
		CombinedPrediction:  combined,
		AstrologyConfidence: astroConf,
		BehaviorConfidence:  behaviorConf,
		OverallConfidence:   overall,
		ExpiresAt:           periodEnd,
		CreatedAt:           now,
	}

	if err := p.predictions.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("persist prediction: %w", err)
	}

	if p.recorder != nil {
		p.recorder.PredictionGenerated(predType, category)
	}

	return record, nil
}

// Get retrieves one prediction scoped to the owning user.
func (p *Predictor) Get(ctx context.Context, userID, id uuid.UUID) (*models.Prediction, error) {
	return p.predictions.GetByID(ctx, userID, id)
}

// List retrieves the user's predictions, newest first.
func (p *Predictor) List(ctx context.Context, userID uuid.UUID, category string, limit int) ([]models.Prediction, error) {
	return p.predictions.ListByUser(ctx, userID, category, limit)
}

// AttachFeedback records the user's accuracy label on their own prediction.
func (p *Predictor) AttachFeedback(ctx context.Context, userID, id uuid.UUID, feedback string) error {
	return p.predictions.AttachFeedback(ctx, userID, id, feedback)
}

// astrologySubPrediction returns the raw astrology payload, or nil when the
// user has no chart or the call failed.
func (p *Predictor) astrologySubPrediction(ctx context.Context, chart *models.BirthChart, category, timeframe string) json.RawMessage {
	if chart == nil {
		return nil
	}
	raw, err := p.astrology.Predict(ctx, domsvc.BirthInput{
		BirthDate:     chart.BirthDate,
		BirthTime:     chart.BirthTime,
		BirthLocation: chart.BirthLocation,
		Latitude:      chart.Latitude,
		Longitude:     chart.Longitude,
	}, category, timeframe)
	if err != nil {
		if p.logger != nil {
			p.logger.Warn("astrology source unavailable", applogger.Error(err))
		}
		return nil
	}
	return raw
}

// behaviorSubPrediction routes finance/career to the income forecaster and
// health to the stress analyzer; other categories get no behavior source.
// Returns nil when there are no metrics or the call failed.
func (p *Predictor) behaviorSubPrediction(ctx context.Context, recent []models.UserMetric, category, timeframe string) json.RawMessage {
	if len(recent) == 0 {
		return nil
	}

	switch category {
	case models.CategoryFinance, models.CategoryCareer:
		history := incomeHistory(recent)
		forecast, err := p.income.ForecastIncome(ctx, history, models.TimeframeMonths(timeframe))
		if err != nil {
			if p.logger != nil {
				p.logger.Warn("income source unavailable", applogger.Error(err))
			}
			return nil
		}
		raw, err := json.Marshal(forecast)
		if err != nil {
			return nil
		}
		return raw
	case models.CategoryHealth:
		result, err := p.stress.AnalyzeStress(ctx, stressInputFromMetrics(recent))
		if err != nil {
			if p.logger != nil {
				p.logger.Warn("stress source unavailable", applogger.Error(err))
			}
			return nil
		}
		raw, err := json.Marshal(result)
		if err != nil {
			return nil
		}
		return raw
	default:
		return nil
	}
}

// confidenceScores returns the fixed per-source scores and the overall value:
// the average when both sources are present, the single score when one is,
// and the default when neither.
func confidenceScores(astro, behavior bool) (astroConf, behaviorConf, overall float64) {
	if astro {
		astroConf = models.AstrologyConfidence
	}
	if behavior {
		behaviorConf = models.BehaviorConfidence
	}
	switch {
	case astro && behavior:
		overall = (astroConf + behaviorConf) / 2
	case astro:
		overall = astroConf
	case behavior:
		overall = behaviorConf
	default:
		overall = models.DefaultConfidence
	}
	return astroConf, behaviorConf, overall
}

// predictionType tags the record by which sources succeeded. The explicit
// "none" variant replaces an accidental fallthrough in the original chain.
func predictionType(astro, behavior bool) string {
	switch {
	case astro && behavior:
		return models.TypeHybrid
	case astro:
		return models.TypeAstrology
	case behavior:
		return models.TypeBehavior
	default:
		return models.TypeNone
	}
}

// incomeHistory extracts income observations oldest first.
func incomeHistory(recent []models.UserMetric) []float64 {
	history := make([]float64, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		if recent[i].MetricType == models.MetricIncome {
			history = append(history, recent[i].Value)
		}
	}
	return history
}

// stressInputFromMetrics takes the newest observation of each lifestyle
// metric, falling back to neutral values for missing types.
func stressInputFromMetrics(recent []models.UserMetric) domsvc.StressInput {
	in := domsvc.StressInput{
		WorkHours:   8,
		SleepHours:  7,
		MoodScore:   5,
		StressScore: 5,
	}
	seen := map[string]bool{}
	for _, m := range recent { // newest first
		if seen[m.MetricType] {
			continue
		}
		seen[m.MetricType] = true
		switch m.MetricType {
		case models.MetricWork:
			in.WorkHours = m.Value
		case models.MetricSleep:
			in.SleepHours = m.Value
		case models.MetricExercise:
			in.ExerciseMinutes = m.Value
		case models.MetricMood:
			in.MoodScore = m.Value
		case models.MetricStress:
			in.StressScore = m.Value
		}
	}
	return in
}
