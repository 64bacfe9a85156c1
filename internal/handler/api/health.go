package api

import (
	"net/http"

	domrepo "astropredict/internal/domain/repository"
	xhttp "astropredict/pkg/http"
	xlogger "astropredict/pkg/logger"

	"github.com/labstack/echo/v4"
)

// HealthHandler serves the unauthenticated liveness probe.
type HealthHandler struct {
	logger *xlogger.Logger
	db     domrepo.Pinger
}

func NewHealthHandler(logger *xlogger.Logger, db domrepo.Pinger) *HealthHandler {
	return &HealthHandler{logger: logger, db: db}
}

func (h *HealthHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
}

func (h *HealthHandler) Healthz(c echo.Context) error {
	if err := h.db.Ping(c.Request().Context()); err != nil {
		h.logger.Error("db ping failed", xlogger.Error(err))
		return xhttp.ErrorResponse(c, http.StatusServiceUnavailable, "database unreachable")
	}
	return xhttp.SuccessResponse(c, map[string]string{"status": "ok"})
}
