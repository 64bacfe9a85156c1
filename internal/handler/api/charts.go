package api

import (
	"errors"

	domrepo "astropredict/internal/domain/repository"
	appmw "astropredict/internal/middleware"
	"astropredict/internal/usecase"
	xhttp "astropredict/pkg/http"
	xlogger "astropredict/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ChartsHandler serves the birth chart endpoints.
type ChartsHandler struct {
	logger *xlogger.Logger
	charts *usecase.ChartService
}

func NewChartsHandler(logger *xlogger.Logger, charts *usecase.ChartService) *ChartsHandler {
	return &ChartsHandler{logger: logger, charts: charts}
}

func (h *ChartsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/birth-chart", h.Get)
	g.POST("/birth-chart/calculate", h.Calculate)
}

func (h *ChartsHandler) Get(c echo.Context) error {
	userID, ok := appmw.UserID(c)
	if !ok {
		return xhttp.UnauthorizedResponse(c, "not authenticated")
	}

	chart, err := h.charts.Get(c.Request().Context(), userID)
	if errors.Is(err, domrepo.ErrNotFound) {
		return xhttp.NotFoundResponse(c, "no birth chart on file")
	}
	if err != nil {
		h.logger.Error("get birth chart failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, chart)
}

func (h *ChartsHandler) Calculate(c echo.Context) error {
	userID, ok := appmw.UserID(c)
	if !ok {
		return xhttp.UnauthorizedResponse(c, "not authenticated")
	}

	chart, err := h.charts.Calculate(c.Request().Context(), userID)
	if err != nil {
		if !errors.Is(err, usecase.ErrNoBirthData) {
			h.logger.Error("calculate birth chart failed", xlogger.Error(err))
		}
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, chart)
}
