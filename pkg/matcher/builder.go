package matcher

// ResultBuilder makes creating a Result a two-step process: the
// messages are fixed first, and whether the Result passes is
// decided later. A builder holds no other state and can be
// reused for any number of Results.
//
//	result := matcher.WithMessages("was empty", "had 3 elements")
//	if len(actual) == 0 {
//		return result.Pass()
//	}
//	return result.Fail()
type ResultBuilder struct {
	expected  string
	onFailure string
}

// WithMessages starts a builder with the expected and failure
// messages.
func WithMessages(expected, onFailure string) ResultBuilder {
	return ResultBuilder{
		expected:  expected,
		onFailure: onFailure,
	}
}

// Pass returns a passing Result with the builder's messages.
func (b ResultBuilder) Pass() Result {
	return b.BuildWithPassStatusOf(true)
}

// Fail returns a failing Result with the builder's messages.
func (b ResultBuilder) Fail() Result {
	return b.BuildWithPassStatusOf(false)
}

// BuildWithPassStatusOf returns a Result that passes when
// didPass is true and fails otherwise.
func (b ResultBuilder) BuildWithPassStatusOf(didPass bool) Result {
	return NewResult(!didPass, b.expected, b.onFailure)
}
