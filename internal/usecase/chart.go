package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"astropredict/internal/domain/models"
	domrepo "astropredict/internal/domain/repository"
	domsvc "astropredict/internal/domain/service"
	"astropredict/internal/services/fallback"
	xhttp "astropredict/pkg/http"
	applogger "astropredict/pkg/logger"
	"astropredict/pkg/metrics"
	"astropredict/pkg/util"

	"github.com/google/uuid"
)

// ErrNoBirthData is returned when chart calculation is requested before the
// user has stored any birth data. It carries a 400 status so the handler can
// hand it straight to AppErrorResponse.
var ErrNoBirthData = xhttp.BadRequestError("no birth data on file; save birth details first")

// ChartService calculates and stores birth charts. The ML service computes
// the full chart; when it is unreachable an offline approximation is stored
// instead so the user always ends up with a chart.
type ChartService struct {
	charts    domrepo.ChartStore
	astrology domsvc.AstrologyService
	offline   *fallback.ChartCalculator
	recorder  *metrics.Recorder
	logger    *applogger.Logger
	now       func() time.Time
}

// NewChartService wires the chart calculator.
func NewChartService(
	charts domrepo.ChartStore,
	astrology domsvc.AstrologyService,
	offline *fallback.ChartCalculator,
	recorder *metrics.Recorder,
	logger *applogger.Logger,
) *ChartService {
	return &ChartService{
		charts:    charts,
		astrology: astrology,
		offline:   offline,
		recorder:  recorder,
		logger:    logger,
		now:       time.Now,
	}
}

// WithClock overrides the time source. Tests only.
func (s *ChartService) WithClock(now func() time.Time) *ChartService {
	s.now = now
	return s
}

// Get returns the user's stored chart.
func (s *ChartService) Get(ctx context.Context, userID uuid.UUID) (*models.BirthChart, error) {
	return s.charts.GetByUser(ctx, userID)
}

// Calculate computes the chart from the user's stored birth data and persists
// the result with a verification timestamp.
func (s *ChartService) Calculate(ctx context.Context, userID uuid.UUID) (*models.BirthChart, error) {
	chart, err := s.charts.GetByUser(ctx, userID)
	if errors.Is(err, domrepo.ErrNotFound) {
		return nil, ErrNoBirthData
	}
	if err != nil {
		return nil, fmt.Errorf("read birth chart: %w", err)
	}

	data, err := s.astrology.CalculateChart(ctx, domsvc.BirthInput{
		BirthDate:     chart.BirthDate,
		BirthTime:     chart.BirthTime,
		BirthLocation: chart.BirthLocation,
		Latitude:      chart.Latitude,
		Longitude:     chart.Longitude,
	})
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("chart calculation unavailable, using offline approximation", applogger.Error(err))
		}
		if s.recorder != nil {
			s.recorder.FallbackUsed("birth_chart")
		}
		birthDate, ok := util.ParseDate(chart.BirthDate)
		if !ok {
			return nil, fmt.Errorf("stored birth date %q is not YYYY-MM-DD", chart.BirthDate)
		}
		data = s.offline.Approximate(birthDate)
	}

	verifiedAt := s.now().UTC()
	chart.SunSign = data.SunSign
	chart.MoonSign = data.MoonSign
	chart.Ascendant = data.Ascendant
	chart.Planets = data.Planets
	chart.Houses = data.Houses
	chart.DashaPeriod = data.DashaPeriod
	chart.Yogas = data.Yogas
	chart.Doshas = data.Doshas
	chart.VerifiedAt = &verifiedAt

	if err := s.charts.Upsert(ctx, chart); err != nil {
		return nil, fmt.Errorf("persist birth chart: %w", err)
	}
	return chart, nil
}
