// Package service defines the pluggable collaborator interfaces the use
// cases depend on. Concrete implementations live under internal/services;
// tests substitute fakes.
package service

import (
	"context"
	"encoding/json"

	"astropredict/internal/domain/models"

	"github.com/google/uuid"
)

// BirthInput is the birth data passed to astrology calls.
type BirthInput struct {
	BirthDate     string  `json:"birth_date"` // YYYY-MM-DD
	BirthTime     string  `json:"birth_time"` // HH:MM:SS
	BirthLocation string  `json:"birth_location_name"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
}

// AstrologyService produces astrology-sourced results from the ML service.
type AstrologyService interface {
	// Predict returns the raw astrology sub-prediction payload.
	Predict(ctx context.Context, birth BirthInput, category, timeframe string) (json.RawMessage, error)
	// CalculateChart computes a full birth chart.
	CalculateChart(ctx context.Context, birth BirthInput) (*models.ChartData, error)
}

// IncomeForecaster projects income over the requested number of periods.
type IncomeForecaster interface {
	ForecastIncome(ctx context.Context, history []float64, periods int) (*models.IncomeForecast, error)
}

// StressInput carries the lifestyle metrics for a stress analysis.
type StressInput struct {
	WorkHours       float64 `json:"work_hours"`
	SleepHours      float64 `json:"sleep_hours"`
	ExerciseMinutes float64 `json:"exercise_minutes"`
	MoodScore       float64 `json:"mood_score"`
	StressScore     float64 `json:"stress_score"`
}

// StressAnalyzer scores stress from lifestyle metrics.
type StressAnalyzer interface {
	AnalyzeStress(ctx context.Context, in StressInput) (*models.StressResult, error)
}

// Geocoder resolves free-form location queries.
type Geocoder interface {
	Search(ctx context.Context, query string) ([]models.Place, error)
	// Enabled reports whether a provider key is configured.
	Enabled() bool
}

// Identity is a resolved bearer token.
type Identity struct {
	UserID uuid.UUID
	Email  string
}

// TokenVerifier validates a bearer token against the identity provider.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}
