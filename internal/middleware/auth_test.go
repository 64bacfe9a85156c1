package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"astropredict/internal/domain/models"
	domsvc "astropredict/internal/domain/service"
	xhttp "astropredict/pkg/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type fakeProfileStore struct {
	upserts []models.UserProfile
	err     error
}

func (s *fakeProfileStore) Upsert(_ context.Context, p *models.UserProfile) error {
	if s.err != nil {
		return s.err
	}
	s.upserts = append(s.upserts, *p)
	return nil
}

type staticVerifier struct {
	ident *domsvc.Identity
	err   error
}

func (v *staticVerifier) Verify(_ context.Context, _ string) (*domsvc.Identity, error) {
	return v.ident, v.err
}

func runAuth(t *testing.T, header string, v domsvc.TokenVerifier) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/predictions", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(v, nil, nil, nil)(func(c echo.Context) error {
		return xhttp.SuccessResponse(c, "ok")
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec, c
}

func TestAuthMissingHeader(t *testing.T) {
	rec, _ := runAuth(t, "", &staticVerifier{})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"success":false`) {
		t.Fatalf("expected failure envelope, got %s", rec.Body.String())
	}
}

func TestAuthMalformedHeader(t *testing.T) {
	for _, header := range []string{"Token abc", "Bearer", "Bearer   "} {
		rec, _ := runAuth(t, header, &staticVerifier{})
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, rec.Code)
		}
	}
}

func TestAuthRejectedToken(t *testing.T) {
	rec, _ := runAuth(t, "Bearer bad-token", &staticVerifier{err: errors.New("expired")})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthAcceptedToken(t *testing.T) {
	id := uuid.New()
	rec, c := runAuth(t, "Bearer good-token", &staticVerifier{
		ident: &domsvc.Identity{UserID: id, Email: "a@b.test"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	got, ok := UserID(c)
	if !ok || got != id {
		t.Fatalf("expected user id on context, got %v ok=%v", got, ok)
	}
	if c.Get(ContextEmail) != "a@b.test" {
		t.Fatalf("expected email on context")
	}
}

func TestAuthMirrorsProfileOncePerUser(t *testing.T) {
	id := uuid.New()
	store := &fakeProfileStore{}
	mw := Auth(&staticVerifier{
		ident: &domsvc.Identity{UserID: id, Email: "a@b.test"},
	}, store, nil, nil)(func(c echo.Context) error {
		return xhttp.SuccessResponse(c, "ok")
	})

	e := echo.New()
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/predictions", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer good-token")
		rec := httptest.NewRecorder()
		if err := mw(e.NewContext(req, rec)); err != nil {
			t.Fatalf("request %d: %v", i, err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, rec.Code)
		}
	}

	if len(store.upserts) != 1 {
		t.Fatalf("expected one profile upsert, got %d", len(store.upserts))
	}
	if store.upserts[0].ID != id || store.upserts[0].Email != "a@b.test" {
		t.Fatalf("unexpected profile row: %+v", store.upserts[0])
	}
}

func TestAuthProceedsWhenProfileMirrorFails(t *testing.T) {
	store := &fakeProfileStore{err: errors.New("db down")}
	mw := Auth(&staticVerifier{
		ident: &domsvc.Identity{UserID: uuid.New(), Email: "a@b.test"},
	}, store, nil, nil)(func(c echo.Context) error {
		return xhttp.SuccessResponse(c, "ok")
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/predictions", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good-token")
	rec := httptest.NewRecorder()
	if err := mw(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("mirror failure must not block the request, got %d", rec.Code)
	}
}

func TestAuthCaseInsensitiveScheme(t *testing.T) {
	rec, _ := runAuth(t, "bearer good-token", &staticVerifier{
		ident: &domsvc.Identity{UserID: uuid.New()},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for lowercase scheme, got %d", rec.Code)
	}
}
