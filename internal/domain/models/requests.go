package models

// GeneratePredictionRequest is the body of POST /api/predictions/generate.
// Timeframe is intentionally free-form; unrecognized values fall back to a
// six month window downstream.
type GeneratePredictionRequest struct {
	Category  string `json:"category" validate:"required,oneof=career finance health relationship"`
	Timeframe string `json:"timeframe" default:"6_months"`
}

// FeedbackRequest is the body of POST /api/predictions/:id/feedback.
type FeedbackRequest struct {
	Feedback string `json:"feedback" validate:"required,oneof=accurate partially_accurate inaccurate"`
}

// StressAnalysisRequest is the body of POST /api/health/analyze-stress.
// Field names follow the client contract (camelCase). Extreme values are
// accepted; the stress score is clamped downstream.
type StressAnalysisRequest struct {
	WorkHours       float64 `json:"workHours" default:"8"`
	SleepHours      float64 `json:"sleepHours" default:"7"`
	ExerciseMinutes float64 `json:"exerciseMinutes"`
	MoodScore       float64 `json:"moodScore" default:"5" validate:"gte=0,lte=10"`
	StressScore     float64 `json:"stressScore" default:"5" validate:"gte=0,lte=10"`
}

// ListPredictionsQuery holds the query parameters of GET /api/predictions.
type ListPredictionsQuery struct {
	Category string `query:"category" validate:"omitempty,oneof=career finance health relationship"`
	Limit    int    `query:"limit" default:"20" validate:"gte=1,lte=100"`
}

// IncomeForecastQuery holds the query parameters of GET /api/income/forecast.
// Period counts months; out-of-range values are clamped downstream.
type IncomeForecastQuery struct {
	Period int `query:"period" default:"6"`
}

// GeocodeQuery holds the query parameters of GET /api/geocode/search.
type GeocodeQuery struct {
	Query string `query:"q" validate:"required,min=2,max=200"`
}
