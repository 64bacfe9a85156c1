package repository

import (
	"context"
	"errors"

	"astropredict/internal/domain/models"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a row does not exist or is not owned by the
// requesting user.
var ErrNotFound = errors.New("record not found")

// PredictionStore persists generated predictions. All reads are scoped to the
// owning user; a lookup for another user's row behaves as not found.
type PredictionStore interface {
	Create(ctx context.Context, p *models.Prediction) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Prediction, error)
	ListByUser(ctx context.Context, userID uuid.UUID, category string, limit int) ([]models.Prediction, error)
	// AttachFeedback updates the feedback label on the caller's own row.
	// Returns ErrNotFound when the row does not exist or is not owned.
	AttachFeedback(ctx context.Context, userID, id uuid.UUID, feedback string) error
}

// ChartStore persists birth charts, one per user.
type ChartStore interface {
	GetByUser(ctx context.Context, userID uuid.UUID) (*models.BirthChart, error)
	Upsert(ctx context.Context, chart *models.BirthChart) error
}

// MetricStore reads and appends user observation rows.
type MetricStore interface {
	// ListRecent returns up to limit rows for the user, newest first,
	// optionally filtered by metric type ("" matches all).
	ListRecent(ctx context.Context, userID uuid.UUID, metricType string, limit int) ([]models.UserMetric, error)
	Append(ctx context.Context, m *models.UserMetric) error
}

// ProfileStore mirrors identity-provider users into user_profiles.
type ProfileStore interface {
	// Upsert creates the profile row or refreshes its email. Display fields
	// set by the client app are left untouched.
	Upsert(ctx context.Context, p *models.UserProfile) error
}

// Pinger reports store liveness for health checks.
type Pinger interface {
	Ping(ctx context.Context) error
}
