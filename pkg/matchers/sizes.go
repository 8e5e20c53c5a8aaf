package matchers

import (
	"iter"
	"slices"
	"strconv"

	"digital.vasic.matchers/pkg/matcher"
)

const hadSizeOf = "had size of "

// HasSizeOf returns a matcher that passes when the sequence under
// test yields exactly size elements. The sequence is consumed
// once.
func HasSizeOf[T any](size int) matcher.Matcher[iter.Seq[T]] {
	expected := hadSizeOf + strconv.Itoa(size)
	return matcher.Func[iter.Seq[T]](func(actual iter.Seq[T]) matcher.Result {
		count := 0
		for range actual {
			count++
		}
		return matcher.WithMessages(expected, hadSizeOf+strconv.Itoa(count)).
			BuildWithPassStatusOf(count == size)
	})
}

// DoesNotHaveSizeOf returns a matcher that passes when the
// sequence under test does not yield exactly size elements.
func DoesNotHaveSizeOf[T any](size int) matcher.Matcher[iter.Seq[T]] {
	return matcher.Invert(
		HasSizeOf[T](size),
		"did not have size of "+strconv.Itoa(size),
	)
}

// HasLengthOf is HasSizeOf for slices.
func HasLengthOf[T any](size int) matcher.Matcher[[]T] {
	return matcher.Map(HasSizeOf[T](size), func(s []T) iter.Seq[T] {
		return slices.Values(s)
	})
}
