package api

import (
	"errors"
	"net/http"

	"astropredict/internal/domain/models"
	domsvc "astropredict/internal/domain/service"
	"astropredict/internal/services/geocode"
	xhttp "astropredict/pkg/http"
	xlogger "astropredict/pkg/logger"

	"github.com/labstack/echo/v4"
)

// GeocodeHandler proxies location search through the configured provider.
type GeocodeHandler struct {
	logger   *xlogger.Logger
	geocoder domsvc.Geocoder
}

func NewGeocodeHandler(logger *xlogger.Logger, geocoder domsvc.Geocoder) *GeocodeHandler {
	return &GeocodeHandler{logger: logger, geocoder: geocoder}
}

func (h *GeocodeHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/geocode/search", h.Search)
}

func (h *GeocodeHandler) Search(c echo.Context) error {
	if !h.geocoder.Enabled() {
		return xhttp.ServiceUnavailableResponse(c, "geocoding is not configured")
	}
	req := &models.GeocodeQuery{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	places, err := h.geocoder.Search(c.Request().Context(), req.Query)
	if errors.Is(err, geocode.ErrRateLimited) {
		return xhttp.ErrorResponse(c, http.StatusTooManyRequests, "too many geocoding requests")
	}
	if err != nil {
		h.logger.Error("geocode search failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, places)
}
