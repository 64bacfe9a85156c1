// Package mlservice contains the HTTP clients for the external ML service.
// Every call is a bounded JSON POST; callers treat any error as "source
// absent" and never retry.
package mlservice

import (
	"context"
	"fmt"
	"time"

	"astropredict/pkg/config"
	xhttp "astropredict/pkg/http"
	"astropredict/pkg/metrics"
)

// HTTPServiceBase centralizes client construction and JSON POST handling for
// the ML service endpoints.
type HTTPServiceBase struct {
	baseURL  string
	client   *xhttp.Client
	recorder *metrics.Recorder
}

// NewHTTPServiceBase builds an HTTP client with timeout and base URL from config.
func NewHTTPServiceBase(cfg *config.Config, rec *metrics.Recorder) *HTTPServiceBase {
	timeout := cfg.ML.Timeout
	if timeout <= 0 {
		timeout = 12 * time.Second
	}
	return &HTTPServiceBase{
		baseURL:  cfg.ML.BaseURL,
		client:   xhttp.NewClient(xhttp.WithTimeout(timeout)),
		recorder: rec,
	}
}

// PostJSON posts the payload to `path` under baseURL and decodes JSON into
// dest. Outcome and latency are recorded per endpoint.
func (b *HTTPServiceBase) PostJSON(ctx context.Context, path string, payload interface{}, dest interface{}) error {
	if b.client == nil || b.baseURL == "" {
		return fmt.Errorf("ml http client not initialized")
	}

	start := time.Now()
	err := b.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodPost,
		URL:    b.baseURL + path,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
		Body: payload,
	}, dest)

	if b.recorder != nil {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		b.recorder.MLRequest(path, outcome, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	return nil
}
