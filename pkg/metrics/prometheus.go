package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder exposes domain metrics for the prediction pipeline.
type Recorder struct {
	predictionsGenerated *prometheus.CounterVec
	mlRequests           *prometheus.CounterVec
	mlLatency            *prometheus.HistogramVec
	fallbacksUsed        *prometheus.CounterVec
	authFailures         prometheus.Counter
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		predictionsGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "astropredict_predictions_generated_total",
				Help: "Total number of predictions generated, by type and category",
			},
			[]string{"type", "category"},
		),
		mlRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "astropredict_ml_requests_total",
				Help: "Total number of outbound ML service calls, by endpoint and outcome",
			},
			[]string{"endpoint", "outcome"},
		),
		mlLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "astropredict_ml_request_duration_seconds",
				Help:    "Outbound ML service call duration in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
			},
			[]string{"endpoint"},
		),
		fallbacksUsed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "astropredict_fallbacks_total",
				Help: "Total number of offline fallback computations, by kind",
			},
			[]string{"kind"},
		),
		authFailures: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "astropredict_auth_failures_total",
				Help: "Total number of rejected bearer tokens",
			},
		),
	}
}

// PredictionGenerated increments the prediction counter.
func (r *Recorder) PredictionGenerated(predType, category string) {
	r.predictionsGenerated.WithLabelValues(predType, category).Inc()
}

// MLRequest records an outbound ML call outcome ("ok" or "error") and latency.
func (r *Recorder) MLRequest(endpoint, outcome string, duration time.Duration) {
	r.mlRequests.WithLabelValues(endpoint, outcome).Inc()
	r.mlLatency.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// FallbackUsed increments the fallback counter for the given kind
// (stress, income, birth_chart).
func (r *Recorder) FallbackUsed(kind string) {
	r.fallbacksUsed.WithLabelValues(kind).Inc()
}

// AuthFailure increments the rejected-token counter.
func (r *Recorder) AuthFailure() {
	r.authFailures.Inc()
}
