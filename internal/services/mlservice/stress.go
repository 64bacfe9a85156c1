package mlservice

import (
	"context"
	"fmt"

	"astropredict/internal/domain/models"
	domsvc "astropredict/internal/domain/service"
	"astropredict/pkg/config"
	"astropredict/pkg/metrics"
)

// HTTPStressAnalyzer calls the ML service stress analysis endpoint.
type HTTPStressAnalyzer struct {
	base *HTTPServiceBase
}

// NewHTTPStressAnalyzer builds a stress analysis client from config.
func NewHTTPStressAnalyzer(cfg *config.Config, rec *metrics.Recorder) *HTTPStressAnalyzer {
	return &HTTPStressAnalyzer{base: NewHTTPServiceBase(cfg, rec)}
}

type stressResp struct {
	Score           float64  `json:"score"`
	Level           string   `json:"level"`
	Recommendations []string `json:"recommendations"`
}

// AnalyzeStress scores stress from lifestyle metrics.
func (s *HTTPStressAnalyzer) AnalyzeStress(ctx context.Context, in domsvc.StressInput) (*models.StressResult, error) {
	var resp stressResp
	err := s.base.PostJSON(ctx, "/health/stress-analysis", in, &resp)
	if err != nil {
		return nil, fmt.Errorf("stress analysis: %w", err)
	}
	return &models.StressResult{
		Score:           resp.Score,
		Level:           resp.Level,
		Source:          "ml",
		Recommendations: resp.Recommendations,
	}, nil
}

var _ domsvc.StressAnalyzer = (*HTTPStressAnalyzer)(nil)
