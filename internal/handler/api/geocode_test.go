package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"astropredict/internal/domain/models"

	"github.com/labstack/echo/v4"
)

type staticGeocoder struct {
	enabled bool
	places  []models.Place
	err     error
}

func (g *staticGeocoder) Search(_ context.Context, _ string) ([]models.Place, error) {
	return g.places, g.err
}

func (g *staticGeocoder) Enabled() bool { return g.enabled }

func geocodeRequest(t *testing.T, h *GeocodeHandler, query string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/geocode/search?q="+query, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func TestGeocodeSearchDisabled(t *testing.T) {
	h := NewGeocodeHandler(nil, &staticGeocoder{enabled: false})
	rec := geocodeRequest(t, h, "paris")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 when unconfigured, got %d", rec.Code)
	}
}

func TestGeocodeSearchMissingQuery(t *testing.T) {
	h := NewGeocodeHandler(nil, &staticGeocoder{enabled: true})
	rec := geocodeRequest(t, h, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty query, got %d", rec.Code)
	}
}

func TestGeocodeSearchOK(t *testing.T) {
	h := NewGeocodeHandler(nil, &staticGeocoder{
		enabled: true,
		places:  []models.Place{{DisplayName: "Paris, France", Latitude: 48.85, Longitude: 2.35}},
	})
	rec := geocodeRequest(t, h, "paris")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"success":true`) || !strings.Contains(body, "Paris, France") {
		t.Fatalf("unexpected body %s", body)
	}
}
