package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"astropredict/internal/domain/models"
	domsvc "astropredict/internal/domain/service"
	"astropredict/internal/services/fallback"
	"astropredict/pkg/util"

	"github.com/google/uuid"
)

type fakeChartCalc struct {
	data *models.ChartData
	err  error
}

func (f *fakeChartCalc) Predict(_ context.Context, _ domsvc.BirthInput, _, _ string) (json.RawMessage, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeChartCalc) CalculateChart(_ context.Context, _ domsvc.BirthInput) (*models.ChartData, error) {
	return f.data, f.err
}

func newTestChartService(charts *fakeChartStore, astro domsvc.AstrologyService) *ChartService {
	s := NewChartService(charts, astro, fallback.NewChartCalculator(util.NewLockedRand(1)), nil, nil)
	s.WithClock(func() time.Time { return testNow })
	return s
}

func TestCalculateNoBirthData(t *testing.T) {
	s := newTestChartService(&fakeChartStore{}, &fakeChartCalc{})

	_, err := s.Calculate(context.Background(), uuid.New())
	if !errors.Is(err, ErrNoBirthData) {
		t.Fatalf("expected ErrNoBirthData, got %v", err)
	}
}

func TestCalculateFromService(t *testing.T) {
	store := &fakeChartStore{chart: someChart()}
	s := newTestChartService(store, &fakeChartCalc{data: &models.ChartData{
		SunSign:     "Aries",
		MoonSign:    "Leo",
		Ascendant:   "Gemini",
		DashaPeriod: "Venus",
	}})

	got, err := s.Calculate(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if got.SunSign != "Aries" || got.MoonSign != "Leo" || got.Ascendant != "Gemini" {
		t.Fatalf("unexpected chart %+v", got)
	}
	if got.VerifiedAt == nil || !got.VerifiedAt.Equal(testNow) {
		t.Fatalf("chart should carry a verification timestamp")
	}
	if store.chart != got {
		t.Fatalf("chart should be persisted")
	}
}

func TestCalculateFallsBackOffline(t *testing.T) {
	chart := someChart() // born 1990-04-02
	store := &fakeChartStore{chart: chart}
	s := newTestChartService(store, &fakeChartCalc{err: errors.New("timeout")})

	got, err := s.Calculate(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if got.SunSign != "Aries" {
		t.Fatalf("expected offline sun sign Aries for April 2nd, got %q", got.SunSign)
	}
	if got.MoonSign == "" {
		t.Fatalf("offline approximation should pick a moon sign")
	}
	if got.VerifiedAt == nil {
		t.Fatalf("fallback chart should still carry a verification timestamp")
	}
}
