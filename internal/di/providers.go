// Package di wires the application graph with google/wire. Providers return
// interfaces where the consumer accepts one; construction errors propagate
// out of InitializeApp.
package di

import (
	"fmt"

	domrepo "astropredict/internal/domain/repository"
	domsvc "astropredict/internal/domain/service"
	"astropredict/internal/handler/api"
	mid "astropredict/internal/middleware"
	internalrepo "astropredict/internal/repository"
	"astropredict/internal/services/fallback"
	"astropredict/internal/services/geocode"
	"astropredict/internal/services/identity"
	"astropredict/internal/services/mlservice"
	"astropredict/internal/usecase"
	"astropredict/pkg/cache"
	"astropredict/pkg/config"
	applogger "astropredict/pkg/logger"
	"astropredict/pkg/metrics"
	"astropredict/pkg/server"
	"astropredict/pkg/util"

	"github.com/labstack/echo/v4"
)

// ProvideLogger creates the application logger. Production gets JSON output,
// everything else console.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	format := "console"
	level := "debug"
	if cfg.Environment == "production" {
		format = "json"
		level = "info"
	}
	l, err := applogger.New(&applogger.Config{Level: level, Format: format, Output: "stdout"})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates the Prometheus metrics recorder.
func ProvideMetrics() *metrics.Recorder {
	return metrics.New()
}

// ProvideDatabase connects to Postgres and migrates the schema.
func ProvideDatabase(cfg *config.Config) (*internalrepo.Database, error) {
	return internalrepo.Connect(cfg)
}

// ProvidePinger exposes the database for health checks.
func ProvidePinger(db *internalrepo.Database) domrepo.Pinger {
	return db
}

// ProvideCache creates the cache layer: Redis-backed when enabled, in-memory
// otherwise.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	if !cfg.Redis.Enabled {
		return cache.NewMemoryCache(cache.WithMemoryMaxSize(1024)), nil
	}
	rc, err := cache.NewRedisCache(
		cache.WithRedisHost(cfg.Redis.Host),
		cache.WithRedisPort(cfg.Redis.Port),
		cache.WithRedisPassword(cfg.Redis.Password),
		cache.WithRedisDB(cfg.Redis.DB),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	return cache.NewLayeredCache(rc, 1024), nil
}

// ProvideRand creates the shared random source.
func ProvideRand() util.Rand {
	return util.NewTimeSeededRand()
}

// ProvidePredictionStore creates the prediction repository.
func ProvidePredictionStore(db *internalrepo.Database) domrepo.PredictionStore {
	return internalrepo.NewPredictionStore(db.DB())
}

// ProvideChartStore creates the birth chart repository.
func ProvideChartStore(db *internalrepo.Database) domrepo.ChartStore {
	return internalrepo.NewChartStore(db.DB())
}

// ProvideMetricStore creates the user metric repository.
func ProvideMetricStore(db *internalrepo.Database) domrepo.MetricStore {
	return internalrepo.NewMetricStore(db.DB())
}

// ProvideProfileStore creates the user profile repository.
func ProvideProfileStore(db *internalrepo.Database) domrepo.ProfileStore {
	return internalrepo.NewProfileStore(db.DB())
}

// ProvideAstrologyService creates the ML astrology client.
func ProvideAstrologyService(cfg *config.Config, rec *metrics.Recorder) domsvc.AstrologyService {
	return mlservice.NewHTTPAstrologyService(cfg, rec)
}

// ProvideTokenVerifier creates the identity provider client.
func ProvideTokenVerifier(cfg *config.Config) domsvc.TokenVerifier {
	return identity.New(cfg)
}

// ProvideGeocoder creates the caching geocode client.
func ProvideGeocoder(cfg *config.Config, c cache.Service, l *applogger.Logger) domsvc.Geocoder {
	return geocode.New(cfg, c, l)
}

// ProvideAuthMiddleware creates the bearer token gate, which also mirrors
// authenticated identities into user_profiles.
func ProvideAuthMiddleware(verifier domsvc.TokenVerifier, profiles domrepo.ProfileStore, rec *metrics.Recorder, l *applogger.Logger) echo.MiddlewareFunc {
	return mid.Auth(verifier, profiles, rec, l)
}

// ProvidePredictor creates the prediction orchestrator. The orchestrator's
// sub-prediction sources are the ML clients only; their failures are
// swallowed, not replaced by fallbacks.
func ProvidePredictor(
	cfg *config.Config,
	predictions domrepo.PredictionStore,
	charts domrepo.ChartStore,
	metricsRepo domrepo.MetricStore,
	astrology domsvc.AstrologyService,
	rng util.Rand,
	rec *metrics.Recorder,
	l *applogger.Logger,
) *usecase.Predictor {
	return usecase.NewPredictor(
		predictions,
		charts,
		metricsRepo,
		astrology,
		mlservice.NewHTTPIncomeForecaster(cfg, rec),
		mlservice.NewHTTPStressAnalyzer(cfg, rec),
		rng,
		rec,
		l,
	)
}

// ProvideChartService creates the chart calculation use case.
func ProvideChartService(
	charts domrepo.ChartStore,
	astrology domsvc.AstrologyService,
	rng util.Rand,
	rec *metrics.Recorder,
	l *applogger.Logger,
) *usecase.ChartService {
	return usecase.NewChartService(charts, astrology, fallback.NewChartCalculator(rng), rec, l)
}

// ProvideWellnessService creates the stress/income use case with its ML
// primaries and offline fallbacks.
func ProvideWellnessService(
	cfg *config.Config,
	metricsRepo domrepo.MetricStore,
	rng util.Rand,
	rec *metrics.Recorder,
	l *applogger.Logger,
) *usecase.WellnessService {
	return usecase.NewWellnessService(
		metricsRepo,
		mlservice.NewHTTPStressAnalyzer(cfg, rec),
		fallback.NewStressCalculator(),
		mlservice.NewHTTPIncomeForecaster(cfg, rec),
		fallback.NewIncomeCalculator(rng),
		rec,
		l,
	)
}

// ProvideRouter assembles the HTTP routing table.
func ProvideRouter(
	auth echo.MiddlewareFunc,
	l *applogger.Logger,
	db domrepo.Pinger,
	predictor *usecase.Predictor,
	charts *usecase.ChartService,
	wellness *usecase.WellnessService,
	geocoder domsvc.Geocoder,
) *api.Router {
	return &api.Router{
		Auth:        auth,
		Health:      api.NewHealthHandler(l, db),
		Predictions: api.NewPredictionsHandler(l, predictor),
		Charts:      api.NewChartsHandler(l, charts),
		Wellness:    api.NewWellnessHandler(l, wellness),
		Geocode:     api.NewGeocodeHandler(l, geocoder),
	}
}

// ProvideApp creates the application.
func ProvideApp(
	cfg *config.Config,
	l *applogger.Logger,
	router *api.Router,
	db *internalrepo.Database,
	c cache.Service,
) *server.App {
	return server.New(cfg, l, router, db, c)
}
