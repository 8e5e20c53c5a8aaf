package matchers

import (
	"sync"

	"digital.vasic.matchers/pkg/matcher"
)

var (
	passed = sync.OnceValue(func() *resultStatus {
		return &resultStatus{
			result: matcher.WithMessages("passed", "failed"),
		}
	})

	failed = sync.OnceValue(func() *resultStatus {
		return &resultStatus{
			result:     matcher.WithMessages("failed", "passed"),
			wantFailed: true,
		}
	})
)

// resultStatus passes for a Result whose failed flag equals
// wantFailed.
type resultStatus struct {
	result     matcher.ResultBuilder
	wantFailed bool
}

func (m *resultStatus) Match(actual matcher.Result) matcher.Result {
	return m.result.BuildWithPassStatusOf(actual.Failed() == m.wantFailed)
}

// Passed returns a matcher that passes for a passing Result. The
// same instance is returned on every call.
func Passed() matcher.Matcher[matcher.Result] {
	return passed()
}

// Failed returns a matcher that passes for a failing Result. The
// same instance is returned on every call.
func Failed() matcher.Matcher[matcher.Result] {
	return failed()
}

// FailedWithMessage returns a matcher that passes for a failing
// Result whose actual message equals message.
func FailedWithMessage(message string) matcher.Matcher[matcher.Result] {
	expected := `was a failing Result with message "` + message + `"`
	return matcher.Func[matcher.Result](func(actual matcher.Result) matcher.Result {
		if actual.Passed() {
			return matcher.NewResult(true, expected, "was a passing Result")
		}
		return matcher.WithMessages(
			expected,
			`was a failing Result with message "`+actual.Actual()+`"`,
		).BuildWithPassStatusOf(actual.Actual() == message)
	})
}
