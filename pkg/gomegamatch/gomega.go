// Package gomegamatch converts between matchers and Gomega
// matchers, so that either can be used with the other's
// assertion style.
package gomegamatch

import (
	"fmt"
	"strings"

	"github.com/onsi/gomega/format"
	"github.com/onsi/gomega/types"

	"digital.vasic.matchers/pkg/matcher"
)

// Gomega wraps m as a Gomega matcher:
//
//	g := gomega.NewWithT(t)
//	g.Expect(items).To(gomegamatch.Gomega(matchers.IsNotEmpty[string]()))
//
// Failure messages use the "Expected that it: ... but it: ..."
// layout. Matching a value that is not a T is an error.
func Gomega[T any](m matcher.Matcher[T]) types.GomegaMatcher {
	if m == nil {
		panic("gomegamatch: Gomega called with a nil Matcher")
	}
	return &gomegaMatcher[T]{matcher: m}
}

type gomegaMatcher[T any] struct {
	matcher matcher.Matcher[T]
}

func (g *gomegaMatcher[T]) Match(actual any) (bool, error) {
	value, err := g.convert(actual)
	if err != nil {
		return false, err
	}
	return g.matcher.Match(value).Passed(), nil
}

func (g *gomegaMatcher[T]) FailureMessage(actual any) string {
	value, err := g.convert(actual)
	if err != nil {
		return err.Error()
	}
	return matcher.FailureMessage(g.matcher.Match(value))
}

func (g *gomegaMatcher[T]) NegatedFailureMessage(actual any) string {
	value, err := g.convert(actual)
	if err != nil {
		return err.Error()
	}
	return matcher.FailureMessage(matcher.Not(g.matcher).Match(value))
}

func (g *gomegaMatcher[T]) convert(actual any) (T, error) {
	value, ok := actual.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf(
			"%s",
			format.Message(actual, fmt.Sprintf("to be a %T", zero)),
		)
	}
	return value, nil
}

// FromGomega wraps a Gomega matcher as a Matcher[any]. expected
// is the past-tense description of a passing value, e.g. "was
// less than 10"; the Gomega failure message becomes the failure
// message of the Result. An error from the Gomega matcher fails
// the match.
func FromGomega(gm types.GomegaMatcher, expected string) matcher.Matcher[any] {
	if gm == nil {
		panic("gomegamatch: FromGomega called with a nil GomegaMatcher")
	}
	return matcher.Func[any](func(actual any) matcher.Result {
		success, err := gm.Match(actual)
		if err != nil {
			return matcher.WithMessages(expected, "errored: "+err.Error()).Fail()
		}
		return matcher.WithMessages(
			expected,
			strings.TrimSpace(gm.FailureMessage(actual)),
		).BuildWithPassStatusOf(success)
	})
}
