package middleware

import (
	"strings"
	"sync"

	"astropredict/internal/domain/models"
	domrepo "astropredict/internal/domain/repository"
	domsvc "astropredict/internal/domain/service"
	xhttp "astropredict/pkg/http"
	applogger "astropredict/pkg/logger"
	"astropredict/pkg/metrics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys set by the auth gate.
const (
	ContextUserID = "auth.user_id"
	ContextEmail  = "auth.email"
)

// Auth validates the bearer token and attaches the resolved identity to the
// request context. Rejection happens before any handler logic runs. Each
// accepted identity is mirrored into user_profiles once per process so the
// row exists before the first domain write; a failed mirror is logged and
// retried on the user's next request, never blocking the request itself.
func Auth(verifier domsvc.TokenVerifier, profiles domrepo.ProfileStore, rec *metrics.Recorder, l *applogger.Logger) echo.MiddlewareFunc {
	var mirrored sync.Map // uuid.UUID -> struct{}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := bearerToken(header)
			if !ok {
				if rec != nil {
					rec.AuthFailure()
				}
				return xhttp.UnauthorizedResponse(c, "missing bearer token")
			}

			ident, err := verifier.Verify(c.Request().Context(), token)
			if err != nil {
				if rec != nil {
					rec.AuthFailure()
				}
				if l != nil {
					l.Debug("token rejected", applogger.Error(err))
				}
				return xhttp.UnauthorizedResponse(c, "invalid or expired token")
			}

			if profiles != nil {
				if _, done := mirrored.Load(ident.UserID); !done {
					mirrorErr := profiles.Upsert(c.Request().Context(), &models.UserProfile{
						ID:    ident.UserID,
						Email: ident.Email,
					})
					if mirrorErr != nil {
						if l != nil {
							l.Warn("profile mirror failed", applogger.Error(mirrorErr))
						}
					} else {
						mirrored.Store(ident.UserID, struct{}{})
					}
				}
			}

			c.Set(ContextUserID, ident.UserID)
			c.Set(ContextEmail, ident.Email)
			return next(c)
		}
	}
}

// UserID returns the authenticated user id set by Auth.
func UserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(ContextUserID).(uuid.UUID)
	return id, ok
}

func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}
