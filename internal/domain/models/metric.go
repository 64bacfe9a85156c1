package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Metric types recorded per observation.
const (
	MetricIncome   = "income"
	MetricMood     = "mood"
	MetricSleep    = "sleep"
	MetricStress   = "stress"
	MetricWork     = "work"
	MetricExercise = "exercise"
)

// UserMetric is a single recorded observation. Rows are append-only and
// immutable once written; the orchestrator reads them newest first.
type UserMetric struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID       `gorm:"type:uuid;index;not null" json:"user_id"`
	MetricType string          `gorm:"size:20;index;not null" json:"metric_type"`
	Value      float64         `gorm:"type:decimal(15,2);not null" json:"value"`
	Metadata   json.RawMessage `gorm:"type:jsonb" json:"metadata,omitempty"`
	RecordedAt time.Time       `gorm:"index;not null" json:"recorded_at"`
}

// TableName specifies the table name for UserMetric.
func (UserMetric) TableName() string {
	return "user_metrics"
}

// UserProfile holds identity and display attributes. The row id matches the
// identity provider's user id.
type UserProfile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"size:255;uniqueIndex" json:"email"`
	FullName  string    `gorm:"size:255" json:"full_name"`
	Timezone  string    `gorm:"size:64" json:"timezone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for UserProfile.
func (UserProfile) TableName() string {
	return "user_profiles"
}
