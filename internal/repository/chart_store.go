package repository

import (
	"context"
	"errors"
	"fmt"

	"astropredict/internal/domain/models"
	domrepo "astropredict/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ChartStore handles database operations for birth charts.
type ChartStore struct {
	db *gorm.DB
}

// NewChartStore creates a new chart store.
func NewChartStore(db *gorm.DB) *ChartStore {
	return &ChartStore{db: db}
}

// GetByUser retrieves the user's birth chart. Returns ErrNotFound when the
// user has none yet.
func (s *ChartStore) GetByUser(ctx context.Context, userID uuid.UUID) (*models.BirthChart, error) {
	var chart models.BirthChart
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&chart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domrepo.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get birth chart: %w", err)
	}
	return &chart, nil
}

// Upsert creates the chart on first calculation and replaces the derived
// attributes on recalculation. One row per user.
func (s *ChartStore) Upsert(ctx context.Context, chart *models.BirthChart) error {
	if chart.ID == uuid.Nil {
		chart.ID = uuid.New()
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"birth_date", "birth_time", "birth_location", "latitude", "longitude",
				"sun_sign", "moon_sign", "ascendant", "planets", "houses",
				"dasha_period", "yogas", "doshas", "verified_at", "updated_at",
			}),
		}).
		Create(chart).Error
	if err != nil {
		return fmt.Errorf("upsert birth chart: %w", err)
	}
	return nil
}
