package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusMetrics implements Recorder with Prometheus
// collectors registered on a caller-supplied registerer.
type PrometheusMetrics struct {
	checks    *prometheus.CounterVec
	durations *prometheus.HistogramVec
	runs      prometheus.Counter
}

// NewPrometheusMetrics creates the collectors and registers them
// with reg.
func NewPrometheusMetrics(
	reg prometheus.Registerer,
) (*PrometheusMetrics, error) {
	m := &PrometheusMetrics{
		checks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "matcher_checks_total",
			Help: "Number of evaluated checks by outcome.",
		}, []string{"check", "status"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "matcher_check_duration_seconds",
			Help:    "Time spent evaluating a check.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 10, 6),
		}, []string{"check"}),
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "matcher_runs_total",
			Help: "Number of verifier runs.",
		}),
	}

	for _, c := range []prometheus.Collector{m.checks, m.durations, m.runs} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
	}
	return m, nil
}

func (m *PrometheusMetrics) RecordCheck(
	check string,
	passed bool,
	duration time.Duration,
) {
	m.checks.WithLabelValues(check, statusOf(passed)).Inc()
	m.durations.WithLabelValues(check).Observe(duration.Seconds())
}

func (m *PrometheusMetrics) IncrementRunTotal() {
	m.runs.Inc()
}
