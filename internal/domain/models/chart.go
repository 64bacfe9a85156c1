package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// BirthChart holds a user's birth data and, once calculated, the derived
// astrological attributes. The derived blobs are opaque to the orchestrator.
type BirthChart struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	BirthDate     string          `gorm:"size:10;not null" json:"birth_date"` // YYYY-MM-DD
	BirthTime     string          `gorm:"size:8" json:"birth_time"`           // HH:MM:SS
	BirthLocation string          `gorm:"size:255" json:"birth_location"`
	Latitude      float64         `gorm:"type:decimal(9,6)" json:"latitude"`
	Longitude     float64         `gorm:"type:decimal(9,6)" json:"longitude"`
	SunSign       string          `gorm:"size:20" json:"sun_sign"`
	MoonSign      string          `gorm:"size:20" json:"moon_sign"`
	Ascendant     string          `gorm:"size:20" json:"ascendant"`
	Planets       json.RawMessage `gorm:"type:jsonb" json:"planets,omitempty"`
	Houses        json.RawMessage `gorm:"type:jsonb" json:"houses,omitempty"`
	DashaPeriod   string          `gorm:"size:40" json:"dasha_period"`
	Yogas         json.RawMessage `gorm:"type:jsonb" json:"yogas,omitempty"`
	Doshas        json.RawMessage `gorm:"type:jsonb" json:"doshas,omitempty"`
	VerifiedAt    *time.Time      `json:"verified_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// TableName specifies the table name for BirthChart.
func (BirthChart) TableName() string {
	return "birth_charts"
}

// ChartData is a calculated chart as returned by the ML service or the
// offline approximation.
type ChartData struct {
	SunSign     string          `json:"sun_sign"`
	MoonSign    string          `json:"moon_sign"`
	Ascendant   string          `json:"ascendant"`
	Planets     json.RawMessage `json:"planets,omitempty"`
	Houses      json.RawMessage `json:"houses,omitempty"`
	DashaPeriod string          `json:"dasha_period,omitempty"`
	Yogas       json.RawMessage `json:"yogas,omitempty"`
	Doshas      json.RawMessage `json:"doshas,omitempty"`
}
