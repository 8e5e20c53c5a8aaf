// Package report provides report generation for verifier runs.
package report

import (
	"errors"
	"fmt"
	"io"
	"time"

	"digital.vasic.matchers/pkg/matcher"
)

// Reporter defines the interface for rendering reports.
type Reporter interface {
	// Render encodes the report.
	Render(r *Report) ([]byte, error)

	// Write renders the report to w.
	Write(w io.Writer, r *Report) error
}

// Outcome captures the result of a single named check.
type Outcome struct {
	// Name identifies the check.
	Name string `json:"name"`

	// Passed indicates whether the check held.
	Passed bool `json:"passed"`

	// Expected is the formatted expected message.
	Expected string `json:"expected"`

	// Actual is the formatted actual message.
	Actual string `json:"actual"`

	// Duration is the time spent evaluating the check.
	Duration time.Duration `json:"duration"`

	// Result is the Result the check produced.
	Result matcher.Result `json:"-"`
}

// Report aggregates the outcomes of a verifier run.
type Report struct {
	GeneratedAt time.Time     `json:"generated_at"`
	Total       int           `json:"total"`
	Passed      int           `json:"passed"`
	Failed      int           `json:"failed"`
	Duration    time.Duration `json:"duration"`
	Outcomes    []Outcome     `json:"outcomes"`
}

// New creates an empty report stamped with generatedAt.
func New(generatedAt time.Time) *Report {
	return &Report{
		GeneratedAt: generatedAt,
		Outcomes:    []Outcome{},
	}
}

// Add appends the outcome of a check and updates the totals.
func (r *Report) Add(
	name string,
	result matcher.Result,
	duration time.Duration,
) {
	r.Outcomes = append(r.Outcomes, Outcome{
		Name:     name,
		Passed:   result.Passed(),
		Expected: result.Expected(),
		Actual:   result.Actual(),
		Duration: duration,
		Result:   result,
	})
	r.Total++
	r.Duration += duration
	if result.Passed() {
		r.Passed++
	} else {
		r.Failed++
	}
}

// PassRate returns the fraction of checks that passed, or zero
// for an empty report.
func (r *Report) PassRate() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Passed) / float64(r.Total)
}

// Err returns nil when every check passed. Otherwise it joins one
// error per failing check; each wraps a *matcher.AssertionError.
func (r *Report) Err() error {
	var errs []error
	for _, o := range r.Outcomes {
		if o.Passed {
			continue
		}
		errs = append(errs, fmt.Errorf(
			"check %s failed:\n%w",
			o.Name,
			&matcher.AssertionError{
				Message: matcher.FailureMessage(o.Result),
				Result:  o.Result,
			},
		))
	}
	return errors.Join(errs...)
}
