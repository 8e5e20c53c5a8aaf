package verify

import (
	"time"

	"digital.vasic.matchers/pkg/logging"
	"digital.vasic.matchers/pkg/metrics"
)

// Option configures a Verifier.
type Option func(*Verifier)

// WithLogger sets the logger used for check outcomes.
func WithLogger(logger logging.Logger) Option {
	return func(v *Verifier) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(recorder metrics.Recorder) Option {
	return func(v *Verifier) {
		if recorder != nil {
			v.metrics = recorder
		}
	}
}

// WithClock replaces time.Now, for deterministic reports.
func WithClock(now func() time.Time) Option {
	return func(v *Verifier) {
		if now != nil {
			v.now = now
		}
	}
}
