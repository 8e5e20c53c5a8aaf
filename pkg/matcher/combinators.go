package matcher

import "fmt"

const (
	andSeparator = "\n"
	orSeparator  = "\t or\n"
)

// Not returns a matcher that checks the reverse of original. The
// pass/fail outcome flips and the expected and failure messages
// swap places.
//
// Not is meant for quick, inline use. The swapped messages often
// read awkwardly; a permanent inverse of a matcher should be
// built with Invert instead.
func Not[T any](original Matcher[T]) Matcher[T] {
	mustNotBeNil("Not", original)
	return simpleInverted[T]{wrapped: original}
}

// Invert is like Not, but the inverted matcher reports
// newExpected as its expected message. When the inversion fails,
// its failure message is what the original matcher expected.
//
// Invert is intended for publishing a named inverse of an
// existing matcher, such as deriving IsClosed from IsOpen:
//
//	func IsClosed() Matcher[*Door] {
//		return matcher.Invert(IsOpen(), "was closed")
//	}
func Invert[T any](original Matcher[T], newExpected string) Matcher[T] {
	mustNotBeNil("Invert", original)
	return inverted[T]{
		original:    original,
		newExpected: newExpected,
	}
}

// AllOf returns a matcher that passes only if every given matcher
// passes. All matchers are always evaluated, in order, and their
// messages are joined line by line. At least two matchers are
// required.
func AllOf[T any](
	first, second Matcher[T],
	others ...Matcher[T],
) Matcher[T] {
	return chain(Both[T], "AllOf", first, second, others)
}

// AnyOf returns a matcher that passes if any given matcher
// passes. Evaluation stops at the first passing matcher, whose
// Result is returned unchanged. At least two matchers are
// required.
func AnyOf[T any](
	first, second Matcher[T],
	others ...Matcher[T],
) Matcher[T] {
	return chain(Either[T], "AnyOf", first, second, others)
}

// Both is the binary form of AllOf.
func Both[T any](first, second Matcher[T]) Matcher[T] {
	mustNotBeNil("Both", first)
	mustNotBeNil("Both", second)
	return andChained[T]{original: first, next: second}
}

// Either is the binary form of AnyOf.
func Either[T any](first, second Matcher[T]) Matcher[T] {
	mustNotBeNil("Either", first)
	mustNotBeNil("Either", second)
	return orChained[T]{original: first, next: second}
}

// chain left-folds combine over the matchers in argument order.
func chain[T any](
	combine func(a, b Matcher[T]) Matcher[T],
	name string,
	first, second Matcher[T],
	others []Matcher[T],
) Matcher[T] {
	mustNotBeNil(name, first)
	mustNotBeNil(name, second)
	for _, m := range others {
		mustNotBeNil(name, m)
	}

	combined := combine(first, second)
	for _, next := range others {
		combined = combine(combined, next)
	}
	return combined
}

func mustNotBeNil[T any](caller string, m Matcher[T]) {
	if m == nil {
		panic(fmt.Sprintf("matcher: %s called with a nil Matcher", caller))
	}
}

type simpleInverted[T any] struct {
	wrapped Matcher[T]
}

func (m simpleInverted[T]) Match(actual T) Result {
	r := m.wrapped.Match(actual)
	return NewResult(!r.Failed(), r.OnFailure(), r.Expected())
}

type inverted[T any] struct {
	original    Matcher[T]
	newExpected string
}

func (m inverted[T]) Match(actual T) Result {
	r := m.original.Match(actual)
	return NewResult(!r.Failed(), m.newExpected, r.Expected())
}

type andChained[T any] struct {
	original Matcher[T]
	next     Matcher[T]
}

func (m andChained[T]) Match(actual T) Result {
	one := m.original.Match(actual)
	two := m.next.Match(actual)
	return NewResultWithActual(
		one.Failed() || two.Failed(),
		one.Expected()+andSeparator+two.Expected(),
		one.OnFailure()+andSeparator+two.OnFailure(),
		one.Actual()+andSeparator+two.Actual(),
	)
}

type orChained[T any] struct {
	original Matcher[T]
	next     Matcher[T]
}

func (m orChained[T]) Match(actual T) Result {
	one := m.original.Match(actual)
	if one.Passed() {
		return one
	}

	two := m.next.Match(actual)
	return NewResultWithActual(
		one.Failed() && two.Failed(),
		one.Expected()+orSeparator+two.Expected(),
		one.OnFailure()+orSeparator+two.OnFailure(),
		one.Actual()+andSeparator+two.Actual(),
	)
}
