// Package server owns the application lifecycle: start the HTTP server,
// wait for a signal, shut everything down in order.
package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"astropredict/internal/handler/api"
	"astropredict/internal/repository"
	"astropredict/pkg/cache"
	"astropredict/pkg/config"
	xhttp "astropredict/pkg/http"
	httpmw "astropredict/pkg/http/middleware"
	applogger "astropredict/pkg/logger"
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	logger     *applogger.Logger
	router     *api.Router
	db         *repository.Database
	cache      cache.Service
	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	logger *applogger.Logger,
	router *api.Router,
	db *repository.Database,
	c cache.Service,
) *App {
	return &App{
		cfg:    cfg,
		logger: logger,
		router: router,
		db:     db,
		cache:  c,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	a.httpServer = xhttp.NewServer(a.router,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithMetricsPath(a.cfg.Metrics.Path),
		xhttp.WithRequestMetrics(httpmw.Metrics(a.logger, time.Second)),
	)

	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}
	a.logger.Info("server started",
		applogger.Int("port", a.cfg.Server.Port),
		applogger.String("environment", a.cfg.Environment),
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown()
}

// shutdown gracefully stops the server and closes infrastructure clients.
func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(ctx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Warn("cache close error", applogger.Error(err))
		}
	}

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn("database close error", applogger.Error(err))
		}
	}

	a.logger.Info("shutdown complete")
	return nil
}
