package matcher

import (
	"encoding/json"
	"strings"
)

// indentMarker prefixes every stored message exactly once.
const indentMarker = "\t"

// Result stores the outcome of a single match: whether it
// failed, what the expected outcome was, what a failure looks
// like, and what actually happened.
//
// Messages are written in the past tense. For example, the
// expected message could be "was empty" and the failure message
// "contained 5 elements", which renders as:
//
//	Expected that it:
//		was empty
//	but it:
//		contained 5 elements
//
// Result is a value type and is never modified after creation.
type Result struct {
	failed    bool
	expected  string
	onFailure string
	actual    string
}

// NewResult creates a Result whose actual message is onFailure
// when failed is true and expected otherwise.
func NewResult(failed bool, expected, onFailure string) Result {
	actual := expected
	if failed {
		actual = onFailure
	}
	return NewResultWithActual(failed, expected, onFailure, actual)
}

// NewResultWithActual creates a Result with an explicit actual
// message. Combinators use it to build composite messages.
func NewResultWithActual(
	failed bool,
	expected, onFailure, actual string,
) Result {
	return Result{
		failed:    failed,
		expected:  indent(expected),
		onFailure: indent(onFailure),
		actual:    indent(actual),
	}
}

// Failed reports whether the match did not hold.
func (r Result) Failed() bool {
	return r.failed
}

// Passed reports whether the match held.
func (r Result) Passed() bool {
	return !r.failed
}

// Expected returns the message describing a passing outcome.
func (r Result) Expected() string {
	return r.expected
}

// OnFailure returns the message describing a failing outcome.
func (r Result) OnFailure() string {
	return r.onFailure
}

// Actual returns the message describing what happened.
func (r Result) Actual() string {
	return r.actual
}

// resultJSON is the wire form of a Result.
type resultJSON struct {
	Failed    bool   `json:"failed"`
	Expected  string `json:"expected"`
	OnFailure string `json:"on_failure"`
	Actual    string `json:"actual"`
}

// MarshalJSON encodes the Result with its formatted messages.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON{
		Failed:    r.failed,
		Expected:  r.expected,
		OnFailure: r.onFailure,
		Actual:    r.actual,
	})
}

// indent prefixes message with a single tab unless it already
// starts with one. Applying it twice is the same as applying it
// once.
func indent(message string) string {
	if strings.HasPrefix(message, indentMarker) {
		return message
	}
	return indentMarker + message
}
