package mlservice

import (
	"context"
	"encoding/json"
	"fmt"

	"astropredict/internal/domain/models"
	domsvc "astropredict/internal/domain/service"
	"astropredict/pkg/config"
	"astropredict/pkg/metrics"
)

// HTTPAstrologyService calls the ML service astrology endpoints.
type HTTPAstrologyService struct {
	base *HTTPServiceBase
}

// NewHTTPAstrologyService builds an astrology client from config.
func NewHTTPAstrologyService(cfg *config.Config, rec *metrics.Recorder) *HTTPAstrologyService {
	return &HTTPAstrologyService{base: NewHTTPServiceBase(cfg, rec)}
}

type astrologyPredictReq struct {
	BirthDate         string  `json:"birth_date"`
	BirthTime         string  `json:"birth_time"`
	BirthLocationName string  `json:"birth_location_name"`
	Latitude          float64 `json:"latitude"`
	Longitude         float64 `json:"longitude"`
	Category          string  `json:"category"`
	Timeframe         string  `json:"timeframe"`
}

type chartReq struct {
	BirthDate         string  `json:"birth_date"`
	BirthTime         string  `json:"birth_time"`
	BirthTimezone     string  `json:"birth_timezone"`
	Latitude          float64 `json:"latitude"`
	Longitude         float64 `json:"longitude"`
	BirthLocationName string  `json:"birth_location_name"`
}

type chartResp struct {
	Planets       json.RawMessage `json:"planets"`
	Houses        json.RawMessage `json:"houses"`
	Ascendant     string          `json:"ascendant"`
	SunSign       string          `json:"sun_sign"`
	MoonSign      string          `json:"moon_sign"`
	MoonNakshatra string          `json:"moon_nakshatra"`
	CurrentDasha  string          `json:"current_dasha"`
	Yogas         json.RawMessage `json:"yogas"`
	Doshas        json.RawMessage `json:"doshas"`
}

// Predict returns the raw astrology sub-prediction payload for the category
// and timeframe. The payload is stored verbatim on the prediction record.
func (s *HTTPAstrologyService) Predict(ctx context.Context, birth domsvc.BirthInput, category, timeframe string) (json.RawMessage, error) {
	var raw json.RawMessage
	err := s.base.PostJSON(ctx, "/astrology/predict", astrologyPredictReq{
		BirthDate:         birth.BirthDate,
		BirthTime:         birth.BirthTime,
		BirthLocationName: birth.BirthLocation,
		Latitude:          birth.Latitude,
		Longitude:         birth.Longitude,
		Category:          category,
		Timeframe:         timeframe,
	}, &raw)
	if err != nil {
		return nil, fmt.Errorf("astrology predict: %w", err)
	}
	return raw, nil
}

// CalculateChart computes a full birth chart from birth data.
func (s *HTTPAstrologyService) CalculateChart(ctx context.Context, birth domsvc.BirthInput) (*models.ChartData, error) {
	var resp chartResp
	err := s.base.PostJSON(ctx, "/astrology/birth-chart", chartReq{
		BirthDate:         birth.BirthDate,
		BirthTime:         birth.BirthTime,
		BirthTimezone:     "UTC",
		Latitude:          birth.Latitude,
		Longitude:         birth.Longitude,
		BirthLocationName: birth.BirthLocation,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("birth chart: %w", err)
	}
	return &models.ChartData{
		SunSign:     resp.SunSign,
		MoonSign:    resp.MoonSign,
		Ascendant:   resp.Ascendant,
		Planets:     resp.Planets,
		Houses:      resp.Houses,
		DashaPeriod: resp.CurrentDasha,
		Yogas:       resp.Yogas,
		Doshas:      resp.Doshas,
	}, nil
}

var _ domsvc.AstrologyService = (*HTTPAstrologyService)(nil)
