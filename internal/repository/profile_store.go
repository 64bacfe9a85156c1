package repository

import (
	"context"
	"fmt"

	"astropredict/internal/domain/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileStore handles database operations for user profiles.
type ProfileStore struct {
	db *gorm.DB
}

// NewProfileStore creates a new profile store.
func NewProfileStore(db *gorm.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

// Upsert creates or refreshes a profile row keyed by the identity provider id.
// Only the email is refreshed on conflict; full_name and timezone belong to
// the client app and must survive the mirror.
func (s *ProfileStore) Upsert(ctx context.Context, p *models.UserProfile) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"email", "updated_at"}),
		}).
		Create(p).Error
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}
