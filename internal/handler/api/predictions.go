// Package api holds the Echo HTTP handlers. Handlers bind and validate the
// request, delegate to a use case, and translate errors into the response
// envelope; no business logic lives here.
package api

import (
	"errors"

	"astropredict/internal/domain/models"
	domrepo "astropredict/internal/domain/repository"
	appmw "astropredict/internal/middleware"
	"astropredict/internal/usecase"
	xhttp "astropredict/pkg/http"
	xlogger "astropredict/pkg/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// PredictionsHandler serves the prediction endpoints.
type PredictionsHandler struct {
	logger    *xlogger.Logger
	predictor *usecase.Predictor
}

func NewPredictionsHandler(logger *xlogger.Logger, predictor *usecase.Predictor) *PredictionsHandler {
	return &PredictionsHandler{logger: logger, predictor: predictor}
}

func (h *PredictionsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/predictions", h.List)
	g.GET("/predictions/:id", h.Get)
	g.POST("/predictions/generate", h.Generate)
	g.POST("/predictions/:id/feedback", h.Feedback)
}

func (h *PredictionsHandler) List(c echo.Context) error {
	userID, ok := appmw.UserID(c)
	if !ok {
		return xhttp.UnauthorizedResponse(c, "not authenticated")
	}
	req := &models.ListPredictionsQuery{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	rows, err := h.predictor.List(c.Request().Context(), userID, req.Category, req.Limit)
	if err != nil {
		h.logger.Error("list predictions failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, rows)
}

func (h *PredictionsHandler) Get(c echo.Context) error {
	userID, ok := appmw.UserID(c)
	if !ok {
		return xhttp.UnauthorizedResponse(c, "not authenticated")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return xhttp.BadRequestResponse(c, "invalid prediction id")
	}

	p, err := h.predictor.Get(c.Request().Context(), userID, id)
	if errors.Is(err, domrepo.ErrNotFound) {
		return xhttp.NotFoundResponse(c, "prediction not found")
	}
	if err != nil {
		h.logger.Error("get prediction failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, p)
}

func (h *PredictionsHandler) Generate(c echo.Context) error {
	userID, ok := appmw.UserID(c)
	if !ok {
		return xhttp.UnauthorizedResponse(c, "not authenticated")
	}
	req := &models.GeneratePredictionRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	p, err := h.predictor.Generate(c.Request().Context(), userID, req.Category, req.Timeframe)
	if err != nil {
		h.logger.Error("generate prediction failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.CreatedResponse(c, p)
}

func (h *PredictionsHandler) Feedback(c echo.Context) error {
	userID, ok := appmw.UserID(c)
	if !ok {
		return xhttp.UnauthorizedResponse(c, "not authenticated")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return xhttp.BadRequestResponse(c, "invalid prediction id")
	}
	req := &models.FeedbackRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	err = h.predictor.AttachFeedback(c.Request().Context(), userID, id, req.Feedback)
	if errors.Is(err, domrepo.ErrNotFound) {
		return xhttp.NotFoundResponse(c, "prediction not found")
	}
	if err != nil {
		h.logger.Error("attach feedback failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, map[string]string{"feedback": req.Feedback})
}
