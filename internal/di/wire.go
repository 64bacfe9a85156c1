//go:build wireinject
// +build wireinject

package di

import (
	"astropredict/pkg/config"
	"astropredict/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire generates the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure clients
		ProvideDatabase,
		ProvidePinger,
		ProvideCache,
		ProvideRand,

		// Repositories
		ProvidePredictionStore,
		ProvideChartStore,
		ProvideMetricStore,
		ProvideProfileStore,

		// External services
		ProvideAstrologyService,
		ProvideTokenVerifier,
		ProvideGeocoder,
		ProvideAuthMiddleware,

		// Use cases
		ProvidePredictor,
		ProvideChartService,
		ProvideWellnessService,

		// HTTP surface
		ProvideRouter,
		ProvideApp,
	)
	return &server.App{}, nil
}
