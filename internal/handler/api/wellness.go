package api

import (
	"astropredict/internal/domain/models"
	domsvc "astropredict/internal/domain/service"
	appmw "astropredict/internal/middleware"
	"astropredict/internal/usecase"
	xhttp "astropredict/pkg/http"
	xlogger "astropredict/pkg/logger"

	"github.com/labstack/echo/v4"
)

// WellnessHandler serves the stress analysis and income forecast endpoints.
type WellnessHandler struct {
	logger   *xlogger.Logger
	wellness *usecase.WellnessService
}

func NewWellnessHandler(logger *xlogger.Logger, wellness *usecase.WellnessService) *WellnessHandler {
	return &WellnessHandler{logger: logger, wellness: wellness}
}

func (h *WellnessHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/health/analyze-stress", h.AnalyzeStress)
	g.GET("/income/forecast", h.IncomeForecast)
}

func (h *WellnessHandler) AnalyzeStress(c echo.Context) error {
	userID, ok := appmw.UserID(c)
	if !ok {
		return xhttp.UnauthorizedResponse(c, "not authenticated")
	}
	req := &models.StressAnalysisRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	result, err := h.wellness.AnalyzeStress(c.Request().Context(), userID, domsvc.StressInput{
		WorkHours:       req.WorkHours,
		SleepHours:      req.SleepHours,
		ExerciseMinutes: req.ExerciseMinutes,
		MoodScore:       req.MoodScore,
		StressScore:     req.StressScore,
	})
	if err != nil {
		h.logger.Error("stress analysis failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, result)
}

func (h *WellnessHandler) IncomeForecast(c echo.Context) error {
	userID, ok := appmw.UserID(c)
	if !ok {
		return xhttp.UnauthorizedResponse(c, "not authenticated")
	}
	req := &models.IncomeForecastQuery{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	forecast, err := h.wellness.ForecastIncome(c.Request().Context(), userID, req.Period)
	if err != nil {
		h.logger.Error("income forecast failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, forecast)
}
