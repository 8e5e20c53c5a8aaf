// Package metrics records pass/fail counts and durations for
// verifier runs.
package metrics

import "time"

// Recorder defines the interface for recording check metrics.
type Recorder interface {
	// RecordCheck records the outcome of a single named check.
	RecordCheck(check string, passed bool, duration time.Duration)
	// IncrementRunTotal increments the total run counter.
	IncrementRunTotal()
}

// Status labels used for check outcomes.
const (
	StatusPassed = "passed"
	StatusFailed = "failed"
)

// NoopMetrics is a no-op implementation of Recorder useful for
// testing or when metrics collection is disabled.
type NoopMetrics struct{}

func (NoopMetrics) RecordCheck(_ string, _ bool, _ time.Duration) {}
func (NoopMetrics) IncrementRunTotal()                             {}

func statusOf(passed bool) string {
	if passed {
		return StatusPassed
	}
	return StatusFailed
}
