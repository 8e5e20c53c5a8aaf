package matcher

import (
	"errors"
	"strings"
)

// ErrAssertionFailed is the sentinel wrapped by every
// *AssertionError.
var ErrAssertionFailed = errors.New("assertion failed")

// TestingT is the subset of *testing.T used to report failures.
// It matches testify's require.TestingT.
type TestingT interface {
	Errorf(format string, args ...any)
	FailNow()
}

type tHelper interface {
	Helper()
}

// AssertThat matches actual against m and fails the test when
// the Result is failing. The failure message shows the expected
// and actual messages of the Result; see FailureMessage.
func AssertThat[T any](t TestingT, actual T, m Matcher[T]) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	result := m.Match(actual)
	if result.Failed() {
		t.Errorf("%s", FailureMessage(result))
		t.FailNow()
	}
}

// AssertThatWithMessage is the same as AssertThat except that it
// reports message verbatim instead of a message derived from the
// Result.
func AssertThatWithMessage[T any](
	t TestingT,
	actual T,
	m Matcher[T],
	message string,
) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	if m.Match(actual).Failed() {
		t.Errorf("%s", message)
		t.FailNow()
	}
}

// Check matches actual against m and returns an *AssertionError
// when the Result is failing, or nil when it passes. It is the
// error-returning counterpart of AssertThat for code that does
// not run under the testing package.
func Check[T any](actual T, m Matcher[T]) error {
	result := m.Match(actual)
	if result.Passed() {
		return nil
	}
	return &AssertionError{
		Message: FailureMessage(result),
		Result:  result,
	}
}

// CheckWithMessage is the same as Check except that the returned
// error carries message verbatim.
func CheckWithMessage[T any](actual T, m Matcher[T], message string) error {
	result := m.Match(actual)
	if result.Passed() {
		return nil
	}
	return &AssertionError{
		Message: message,
		Result:  result,
	}
}

// FailureMessage renders the report for a failing Result:
//
//	Expected that it:
//		<expected>
//	but it:
//		<actual>
//
// The lines are joined with single newlines and there is no
// trailing newline. The failure message of the Result is never
// shown.
func FailureMessage(result Result) string {
	var sb strings.Builder
	sb.WriteString("Expected that it:\n")
	sb.WriteString(result.Expected())
	sb.WriteString("\nbut it:\n")
	sb.WriteString(result.Actual())
	return sb.String()
}

// AssertionError is returned by Check for a failing match.
type AssertionError struct {
	// Message is the rendered failure message.
	Message string

	// Result is the failing Result that produced the error.
	Result Result
}

// Error returns the failure message.
func (e *AssertionError) Error() string {
	if e == nil {
		return ErrAssertionFailed.Error()
	}
	return e.Message
}

// Unwrap returns ErrAssertionFailed so that errors.Is works.
func (e *AssertionError) Unwrap() error {
	return ErrAssertionFailed
}
