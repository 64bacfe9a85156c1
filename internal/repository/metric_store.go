package repository

import (
	"context"
	"fmt"
	"time"

	"astropredict/internal/domain/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MetricStore handles database operations for user metrics.
type MetricStore struct {
	db *gorm.DB
}

// NewMetricStore creates a new metric store.
func NewMetricStore(db *gorm.DB) *MetricStore {
	return &MetricStore{db: db}
}

// ListRecent returns up to limit rows for the user, newest first.
func (s *MetricStore) ListRecent(ctx context.Context, userID uuid.UUID, metricType string, limit int) ([]models.UserMetric, error) {
	var rows []models.UserMetric
	query := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("recorded_at DESC")
	if metricType != "" {
		query = query.Where("metric_type = ?", metricType)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list metrics: %w", err)
	}
	return rows, nil
}

// Append writes one observation row. Rows are never updated or deleted.
func (s *MetricStore) Append(ctx context.Context, m *models.UserMetric) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.RecordedAt.IsZero() {
		m.RecordedAt = time.Now().UTC()
	}
	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("append metric: %w", err)
	}
	return nil
}
