// Package matchers is a collection of ready-made matchers for
// common checks: nil pointers, equality, slice membership,
// ordering, sizes, and Results themselves. Each inverse is
// derived from its base matcher with matcher.Not or
// matcher.Invert.
package matchers

import (
	"fmt"

	"digital.vasic.matchers/pkg/matcher"
)

// IsNil returns a matcher that passes when the pointer under test
// is nil.
func IsNil[T any]() matcher.Matcher[*T] {
	result := matcher.WithMessages("was nil", "wasn't nil")
	return matcher.Func[*T](func(actual *T) matcher.Result {
		return result.BuildWithPassStatusOf(actual == nil)
	})
}

// IsNotNil returns a matcher that passes when the pointer under
// test is not nil.
func IsNotNil[T any]() matcher.Matcher[*T] {
	return matcher.Not(IsNil[T]())
}

// IsEqualTo returns a matcher that passes when the value under
// test equals expected.
func IsEqualTo[T comparable](expected T) matcher.Matcher[T] {
	return equals[T]{
		expected: expected,
		message:  equaled + fmt.Sprint(expected),
	}
}

// IsNotEqualTo returns a matcher that passes when the value under
// test differs from expected.
func IsNotEqualTo[T comparable](expected T) matcher.Matcher[T] {
	return matcher.Invert(
		IsEqualTo(expected),
		"wasn't equal to "+fmt.Sprint(expected),
	)
}

const equaled = "equaled "

type equals[T comparable] struct {
	expected T
	message  string
}

func (m equals[T]) Match(actual T) matcher.Result {
	return matcher.WithMessages(m.message, equaled+fmt.Sprint(actual)).
		BuildWithPassStatusOf(m.expected == actual)
}
