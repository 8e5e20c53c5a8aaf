// Package verify runs named matcher checks outside of the
// testing package, logging failures, recording metrics, and
// collecting the outcomes into a report.
package verify

import (
	"context"
	"fmt"
	"time"

	"digital.vasic.matchers/pkg/logging"
	"digital.vasic.matchers/pkg/matcher"
	"digital.vasic.matchers/pkg/metrics"
	"digital.vasic.matchers/pkg/report"
)

// Check is a named, deferred match.
type Check struct {
	// Name identifies the check in logs, metrics and reports.
	Name string

	// Run performs the match.
	Run func() matcher.Result
}

// That creates a Check that matches actual against m.
func That[T any](name string, actual T, m matcher.Matcher[T]) Check {
	return Check{
		Name: name,
		Run: func() matcher.Result {
			return m.Match(actual)
		},
	}
}

// Verifier evaluates checks sequentially.
type Verifier struct {
	logger  logging.Logger
	metrics metrics.Recorder
	now     func() time.Time
}

// New creates a Verifier with the supplied options. Without
// options it logs nothing and records no metrics.
func New(opts ...Option) *Verifier {
	v := &Verifier{
		logger:  logging.NullLogger{},
		metrics: metrics.NoopMetrics{},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Run evaluates every check in order and returns the report. If
// ctx is done before a check starts, Run stops and returns the
// partial report together with ctx.Err(). A failing check is not
// an error; inspect the report or call its Err method.
func (v *Verifier) Run(
	ctx context.Context,
	checks ...Check,
) (*report.Report, error) {
	for i, c := range checks {
		if c.Run == nil {
			return nil, fmt.Errorf(
				"check %d (%q) has nil Run function", i, c.Name,
			)
		}
	}

	rep := report.New(v.now())
	v.metrics.IncrementRunTotal()

	for _, c := range checks {
		if err := ctx.Err(); err != nil {
			v.logger.Warn("verification interrupted",
				logging.StringField("check", c.Name),
				logging.ErrorField(err),
			)
			return rep, err
		}

		start := v.now()
		result := c.Run()
		duration := v.now().Sub(start)

		rep.Add(c.Name, result, duration)
		v.metrics.RecordCheck(c.Name, result.Passed(), duration)

		if result.Failed() {
			v.logger.Warn("check failed",
				logging.StringField("check", c.Name),
				logging.StringField("expected", result.Expected()),
				logging.StringField("actual", result.Actual()),
			)
		} else {
			v.logger.Debug("check passed",
				logging.StringField("check", c.Name),
				logging.DurationField("duration", duration),
			)
		}
	}

	v.logger.Info("verification finished",
		logging.IntField("total", rep.Total),
		logging.IntField("passed", rep.Passed),
		logging.IntField("failed", rep.Failed),
	)
	return rep, nil
}
