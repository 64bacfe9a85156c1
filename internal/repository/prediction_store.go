package repository

import (
	"context"
	"errors"
	"fmt"

	"astropredict/internal/domain/models"
	domrepo "astropredict/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PredictionStore handles database operations for predictions.
type PredictionStore struct {
	db *gorm.DB
}

// NewPredictionStore creates a new prediction store.
func NewPredictionStore(db *gorm.DB) *PredictionStore {
	return &PredictionStore{db: db}
}

// Create persists a generated prediction.
func (s *PredictionStore) Create(ctx context.Context, p *models.Prediction) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create prediction: %w", err)
	}
	return nil
}

// GetByID retrieves one prediction scoped to the owning user.
func (s *PredictionStore) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Prediction, error) {
	var p models.Prediction
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domrepo.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get prediction: %w", err)
	}
	return &p, nil
}

// ListByUser retrieves the user's predictions, newest first.
func (s *PredictionStore) ListByUser(ctx context.Context, userID uuid.UUID, category string, limit int) ([]models.Prediction, error) {
	var rows []models.Prediction
	query := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list predictions: %w", err)
	}
	return rows, nil
}

// AttachFeedback sets the feedback label on the caller's own prediction.
// The update is ownership-scoped; a foreign or missing id matches no row.
func (s *PredictionStore) AttachFeedback(ctx context.Context, userID, id uuid.UUID, feedback string) error {
	res := s.db.WithContext(ctx).
		Model(&models.Prediction{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("user_feedback", feedback)
	if res.Error != nil {
		return fmt.Errorf("attach feedback: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domrepo.ErrNotFound
	}
	return nil
}
