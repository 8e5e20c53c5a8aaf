// Package matcher provides composable matchers for test code. A
// Matcher checks a value and returns an immutable Result that
// carries both the pass/fail outcome and the human-readable
// messages describing what was expected and what happened.
// Matchers never mutate state, so they can be shared freely and
// combined with Not, Invert, AllOf and AnyOf.
package matcher

// Matcher checks a value of type T and reports the outcome as a
// Result. Implementations must be free of mutable state; any
// configuration is captured when the matcher is created.
type Matcher[T any] interface {
	// Match checks actual and returns the corresponding Result.
	Match(actual T) Result
}

// Func adapts an ordinary function to the Matcher interface.
type Func[T any] func(actual T) Result

// Match calls f(actual).
func (f Func[T]) Match(actual T) Result {
	return f(actual)
}

// Widen lets a matcher written against any be used where a
// Matcher[T] is required. Go generics are invariant, so this is
// the explicit form of accepting a matcher over a supertype.
func Widen[T any](m Matcher[any]) Matcher[T] {
	mustNotBeNil("Widen", m)
	return Func[T](func(actual T) Result {
		return m.Match(actual)
	})
}

// Map adapts a Matcher[S] into a Matcher[T] by projecting every
// value under test through project before matching it.
func Map[T, S any](m Matcher[S], project func(T) S) Matcher[T] {
	mustNotBeNil("Map", m)
	if project == nil {
		panic("matcher: Map called with a nil projection")
	}
	return Func[T](func(actual T) Result {
		return m.Match(project(actual))
	})
}
