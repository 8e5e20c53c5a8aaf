package matchers

import (
	"cmp"
	"fmt"

	"digital.vasic.matchers/pkg/matcher"
)

// IsLessThan passes when the value under test is less than other.
func IsLessThan[T cmp.Ordered](other T) matcher.Matcher[T] {
	return IsLessThanBy(other, cmp.Compare[T])
}

// IsGreaterThan passes when the value under test is greater than
// other.
func IsGreaterThan[T cmp.Ordered](other T) matcher.Matcher[T] {
	return IsGreaterThanBy(other, cmp.Compare[T])
}

// IsEquivalentTo passes when the value under test compares equal
// to other.
func IsEquivalentTo[T cmp.Ordered](other T) matcher.Matcher[T] {
	return IsEquivalentToBy(other, cmp.Compare[T])
}

// IsLessThanOrEqualTo passes when the value under test is at most
// other.
func IsLessThanOrEqualTo[T cmp.Ordered](other T) matcher.Matcher[T] {
	return IsLessThanOrEqualToBy(other, cmp.Compare[T])
}

// IsGreaterThanOrEqualTo passes when the value under test is at
// least other.
func IsGreaterThanOrEqualTo[T cmp.Ordered](other T) matcher.Matcher[T] {
	return IsGreaterThanOrEqualToBy(other, cmp.Compare[T])
}

// IsNotEquivalentTo passes when the value under test does not
// compare equal to other.
func IsNotEquivalentTo[T cmp.Ordered](other T) matcher.Matcher[T] {
	return IsNotEquivalentToBy(other, cmp.Compare[T])
}

// IsLessThanBy is IsLessThan with a caller-supplied comparison.
// compare returns a negative number, zero, or a positive number
// when a is less than, equal to, or greater than b.
func IsLessThanBy[T any](other T, compare func(a, b T) int) matcher.Matcher[T] {
	return newComparison(other, "less than", compare, func(c int) bool { return c < 0 })
}

// IsGreaterThanBy is IsGreaterThan with a caller-supplied
// comparison.
func IsGreaterThanBy[T any](other T, compare func(a, b T) int) matcher.Matcher[T] {
	return newComparison(other, "greater than", compare, func(c int) bool { return c > 0 })
}

// IsEquivalentToBy is IsEquivalentTo with a caller-supplied
// comparison.
func IsEquivalentToBy[T any](other T, compare func(a, b T) int) matcher.Matcher[T] {
	return newComparison(other, "equivalent to", compare, func(c int) bool { return c == 0 })
}

// IsLessThanOrEqualToBy is IsLessThanOrEqualTo with a
// caller-supplied comparison.
func IsLessThanOrEqualToBy[T any](other T, compare func(a, b T) int) matcher.Matcher[T] {
	return newComparison(other, "less than or equal to", compare, func(c int) bool { return c <= 0 })
}

// IsGreaterThanOrEqualToBy is IsGreaterThanOrEqualTo with a
// caller-supplied comparison.
func IsGreaterThanOrEqualToBy[T any](other T, compare func(a, b T) int) matcher.Matcher[T] {
	return newComparison(other, "greater than or equal to", compare, func(c int) bool { return c >= 0 })
}

// IsNotEquivalentToBy is IsNotEquivalentTo with a caller-supplied
// comparison.
func IsNotEquivalentToBy[T any](other T, compare func(a, b T) int) matcher.Matcher[T] {
	return newComparison(other, "not equivalent to", compare, func(c int) bool { return c != 0 })
}

// comparison checks the sign of compare(actual, other).
type comparison[T any] struct {
	other   T
	compare func(a, b T) int
	check   func(int) bool
	result  matcher.ResultBuilder
}

func newComparison[T any](
	other T,
	relation string,
	compare func(a, b T) int,
	check func(int) bool,
) comparison[T] {
	if compare == nil {
		panic("matchers: comparison matcher created with a nil compare function")
	}
	return comparison[T]{
		other:   other,
		compare: compare,
		check:   check,
		result: matcher.WithMessages(
			fmt.Sprintf("was %s %v", relation, other),
			fmt.Sprintf("was not %s %v", relation, other),
		),
	}
}

func (m comparison[T]) Match(actual T) matcher.Result {
	return m.result.BuildWithPassStatusOf(m.check(m.compare(actual, m.other)))
}
