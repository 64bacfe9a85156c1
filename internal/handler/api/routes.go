package api

import (
	"github.com/labstack/echo/v4"
)

// Router registers every HTTP route: the unauthenticated probe plus the
// bearer-gated /api group.
type Router struct {
	Auth        echo.MiddlewareFunc
	Health      *HealthHandler
	Predictions *PredictionsHandler
	Charts      *ChartsHandler
	Wellness    *WellnessHandler
	Geocode     *GeocodeHandler
}

// RegisterRoutes mounts all handlers on the Echo instance.
func (r *Router) RegisterRoutes(e *echo.Echo) {
	r.Health.RegisterRoutes(e)

	g := e.Group("/api", r.Auth)
	r.Predictions.RegisterRoutes(g)
	r.Charts.RegisterRoutes(g)
	r.Wellness.RegisterRoutes(g)
	r.Geocode.RegisterRoutes(g)
}
