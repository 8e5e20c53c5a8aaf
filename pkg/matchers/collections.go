package matchers

import (
	"fmt"
	"slices"

	"digital.vasic.matchers/pkg/matcher"
)

// IsEmpty returns a matcher that passes when the slice under test
// has no elements.
func IsEmpty[T any]() matcher.Matcher[[]T] {
	return matcher.Func[[]T](func(actual []T) matcher.Result {
		return matcher.WithMessages(
			"was empty",
			fmt.Sprintf("had %d elements", len(actual)),
		).BuildWithPassStatusOf(len(actual) == 0)
	})
}

// IsNotEmpty returns a matcher that passes when the slice under
// test has at least one element.
func IsNotEmpty[T any]() matcher.Matcher[[]T] {
	return matcher.Invert(IsEmpty[T](), "was not empty")
}

// Contains returns a matcher that passes when the slice under
// test contains element.
func Contains[T comparable](element T) matcher.Matcher[[]T] {
	result := matcher.WithMessages(
		fmt.Sprintf("contained %v", element),
		fmt.Sprintf("didn't contain %v", element),
	)
	return matcher.Func[[]T](func(actual []T) matcher.Result {
		return result.BuildWithPassStatusOf(slices.Contains(actual, element))
	})
}

// DoesNotContain returns a matcher that passes when the slice
// under test does not contain element.
func DoesNotContain[T comparable](element T) matcher.Matcher[[]T] {
	return matcher.Not(Contains(element))
}

// ContainsAll returns a matcher that passes when the slice under
// test contains every element of contained.
func ContainsAll[T comparable](contained []T) matcher.Matcher[[]T] {
	result := matcher.WithMessages(
		"contained all given elements",
		"didn't contain all the given elements",
	)
	return matcher.Func[[]T](func(actual []T) matcher.Result {
		return result.BuildWithPassStatusOf(containsAll(actual, contained))
	})
}

// DoesNotContainAll returns a matcher that passes when at least
// one element of contained is missing from the slice under test.
func DoesNotContainAll[T comparable](contained []T) matcher.Matcher[[]T] {
	return matcher.Not(ContainsAll(contained))
}

// ContainsOnly returns a matcher that passes when the slice under
// test contains every element of contained and nothing else.
// Duplicates are allowed.
func ContainsOnly[T comparable](contained []T) matcher.Matcher[[]T] {
	const expected = "contained only the given elements"
	return matcher.Func[[]T](func(actual []T) matcher.Result {
		if !containsAll(actual, contained) {
			return matcher.NewResult(true, expected, "didn't contain all of the elements")
		}
		if !containsAll(contained, actual) {
			return matcher.NewResult(true, expected, "contained other elements too")
		}
		return matcher.NewResult(false, expected, "didn't contain only the given elements")
	})
}

func containsAll[T comparable](haystack, needles []T) bool {
	for _, n := range needles {
		if !slices.Contains(haystack, n) {
			return false
		}
	}
	return true
}
