package models

// IncomeForecast is a forward income projection, either from the ML service
// or from the offline approximation.
type IncomeForecast struct {
	Model           string    `json:"model"`
	Forecast        []float64 `json:"forecast"`
	Confidences     []float64 `json:"confidences"`
	Trend           string    `json:"trend"`
	Recommendations []string  `json:"recommendations,omitempty"`
}

// StressResult is the outcome of a stress analysis.
type StressResult struct {
	Score           float64  `json:"score"`
	Level           string   `json:"level"` // low, moderate, high
	Source          string   `json:"source"`
	Recommendations []string `json:"recommendations"`
}

// Place is a geocoding search result.
type Place struct {
	DisplayName string  `json:"display_name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}
