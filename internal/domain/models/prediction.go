package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Prediction categories.
const (
	CategoryCareer       = "career"
	CategoryFinance      = "finance"
	CategoryHealth       = "health"
	CategoryRelationship = "relationship"
)

// Prediction types, derived from which sub-prediction sources succeeded.
const (
	TypeHybrid    = "hybrid"
	TypeAstrology = "astrology"
	TypeBehavior  = "behavior"
	TypeNone      = "none"
)

// Fixed per-source confidence scores.
const (
	AstrologyConfidence = 0.75
	BehaviorConfidence  = 0.80
	DefaultConfidence   = 0.65
)

// User feedback labels.
const (
	FeedbackAccurate          = "accurate"
	FeedbackPartiallyAccurate = "partially_accurate"
	FeedbackInaccurate        = "inaccurate"
)

// timeframeMonths maps a requested timeframe to a forecast window length.
var timeframeMonths = map[string]int{
	"1_month":  1,
	"3_months": 3,
	"6_months": 6,
	"1_year":   12,
}

// TimeframeMonths returns the month count for a timeframe string.
// Unrecognized values default to 6.
func TimeframeMonths(tf string) int {
	if m, ok := timeframeMonths[tf]; ok {
		return m
	}
	return 6
}

// Prediction is a generated forecast record. Sub-predictions are stored as
// opaque JSON exactly as returned by the ML service; the combined prediction
// is assembled locally.
type Prediction struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID              uuid.UUID       `gorm:"type:uuid;index;not null" json:"user_id"`
	Category            string          `gorm:"size:20;not null" json:"category"`
	PredictionType      string          `gorm:"size:20;not null" json:"prediction_type"`
	Timeframe           string          `gorm:"size:20" json:"timeframe"`
	PeriodStart         time.Time       `gorm:"not null" json:"period_start"`
	PeriodEnd           time.Time       `gorm:"not null" json:"period_end"`
	AstrologyPrediction json.RawMessage `gorm:"type:jsonb" json:"astrology_prediction,omitempty"`
	BehaviorPrediction  json.RawMessage `gorm:"type:jsonb" json:"behavior_prediction,omitempty"`
	CombinedPrediction  json.RawMessage `gorm:"type:jsonb;not null" json:"combined_prediction"`
	AstrologyConfidence float64         `gorm:"type:decimal(4,3)" json:"astrology_confidence"`
	BehaviorConfidence  float64         `gorm:"type:decimal(4,3)" json:"behavior_confidence"`
	OverallConfidence   float64         `gorm:"type:decimal(4,3);not null" json:"overall_confidence"`
	UserFeedback        *string         `gorm:"size:30" json:"user_feedback,omitempty"`
	ExpiresAt           time.Time       `json:"expires_at"`
	CreatedAt           time.Time       `json:"created_at"`
}

// TableName specifies the table name for Prediction.
func (Prediction) TableName() string {
	return "predictions"
}

// PeriodWindow is a favorable or caution date range inside a combined
// prediction.
type PeriodWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Note  string    `json:"note,omitempty"`
}

// CombinedPrediction is the locally assembled forecast payload.
type CombinedPrediction struct {
	Recommendation   string         `json:"recommendation"`
	Summary          string         `json:"summary"`
	Insights         []string       `json:"insights"`
	FavorablePeriods []PeriodWindow `json:"favorable_periods"`
	CautionPeriods   []PeriodWindow `json:"caution_periods"`
}
