package matcher

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNot(t *testing.T) {
	r := Not(fails()).Match("")
	assert.False(t, r.Failed())
	assert.Equal(t, "\tfailed", r.Expected())
	assert.Equal(t, "\tpassed", r.OnFailure())
	assert.Equal(t, "\tfailed", r.Actual())

	r = Not(passes()).Match("")
	assert.True(t, r.Failed())
	assert.Equal(t, "\tpassed", r.Actual())
}

func TestNot_FlipsOutcome(t *testing.T) {
	for _, m := range []Matcher[string]{passes(), fails()} {
		assert.Equal(t, !m.Match("v").Failed(), Not(m).Match("v").Failed())
	}
}

func TestInvert(t *testing.T) {
	r := Invert(fails(), "was inverted").Match("")
	assert.False(t, r.Failed())
	assert.Equal(t, "\twas inverted", r.Expected())
	assert.Equal(t, "\tpassed", r.OnFailure())
	assert.Equal(t, "\twas inverted", r.Actual())

	r = Invert(passes(), "was inverted").Match("")
	assert.True(t, r.Failed())
	assert.Equal(t, "\twas inverted", r.Expected())
	assert.Equal(t, "\tpassed", r.Actual())
}

func TestInvert_EvaluatesOriginalOnce(t *testing.T) {
	m := newMockMatcher(true)
	Invert[string](m, "x").Match("value")
	m.AssertNumberOfCalls(t, "Match", 1)
	m.AssertCalled(t, "Match", "value")
}

func TestAllOf_Messages(t *testing.T) {
	tests := []struct {
		name     string
		matchers []Matcher[string]
		failed   bool
		actual   string
	}{
		{"all pass", []Matcher[string]{passes(), passes(), passes()}, false, "\tpassed\n\tpassed\n\tpassed"},
		{"first fails", []Matcher[string]{fails(), passes(), passes()}, true, "\tfailed\n\tpassed\n\tpassed"},
		{"middle fails", []Matcher[string]{passes(), fails(), passes()}, true, "\tpassed\n\tfailed\n\tpassed"},
		{"two fail", []Matcher[string]{fails(), passes(), fails()}, true, "\tfailed\n\tpassed\n\tfailed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := AllOf(tt.matchers[0], tt.matchers[1], tt.matchers[2:]...)
			r := m.Match("")
			assert.Equal(t, tt.failed, r.Failed())
			assert.Equal(t, tt.actual, r.Actual())
			assert.Equal(t, "\tpassed\n\tpassed\n\tpassed", r.Expected())
			assert.Equal(t, "\tfailed\n\tfailed\n\tfailed", r.OnFailure())
		})
	}
}

func TestAllOf_EvaluatesEveryMatcherOnce(t *testing.T) {
	for _, firstFails := range []bool{true, false} {
		t.Run(strconv.FormatBool(firstFails), func(t *testing.T) {
			a := newMockMatcher(firstFails)
			b := newMockMatcher(false)
			c := newMockMatcher(true)

			AllOf[string](a, b, c).Match("v")

			a.AssertNumberOfCalls(t, "Match", 1)
			b.AssertNumberOfCalls(t, "Match", 1)
			c.AssertNumberOfCalls(t, "Match", 1)
		})
	}
}

func TestAllOf_Law(t *testing.T) {
	for _, a := range []Matcher[string]{passes(), fails()} {
		for _, b := range []Matcher[string]{passes(), fails()} {
			want := a.Match("").Failed() || b.Match("").Failed()
			assert.Equal(t, want, AllOf(a, b).Match("").Failed())
		}
	}
}

func TestAnyOf_Messages(t *testing.T) {
	r := AnyOf(fails(), fails(), fails()).Match("")
	assert.True(t, r.Failed())
	assert.Equal(t, "\tfailed\n\tfailed\n\tfailed", r.Actual())
	assert.Equal(t, "\tpassed\t or\n\tpassed\t or\n\tpassed", r.Expected())
	assert.Equal(t, "\tfailed\t or\n\tfailed\t or\n\tfailed", r.OnFailure())

	r = AnyOf(fails(), fails(), passes()).Match("")
	assert.False(t, r.Failed())
	assert.Equal(t, "\tfailed\n\tfailed\n\tpassed", r.Actual())

	r = AnyOf(passes(), passes(), passes()).Match("")
	assert.False(t, r.Failed())
}

func TestAnyOf_FirstPassingResultReturnedUnchanged(t *testing.T) {
	r := AnyOf(passes(), fails(), fails()).Match("")
	assert.Equal(t, passes().Match(""), r)
}

func TestAnyOf_ShortCircuits(t *testing.T) {
	a := newMockMatcher(false)
	b := newMockMatcher(true)

	AnyOf[string](a, b).Match("v")

	a.AssertNumberOfCalls(t, "Match", 1)
	b.AssertNotCalled(t, "Match", mock.Anything)
}

func TestAnyOf_EvaluatesEachChildOnceWhenFirstFails(t *testing.T) {
	a := newMockMatcher(true)
	b := newMockMatcher(true)
	c := newMockMatcher(false)

	r := AnyOf[string](a, b, c).Match("v")

	assert.False(t, r.Failed())
	a.AssertNumberOfCalls(t, "Match", 1)
	b.AssertNumberOfCalls(t, "Match", 1)
	c.AssertNumberOfCalls(t, "Match", 1)
}

func TestAnyOf_Law(t *testing.T) {
	for _, a := range []Matcher[string]{passes(), fails()} {
		for _, b := range []Matcher[string]{passes(), fails()} {
			want := a.Match("").Failed() && b.Match("").Failed()
			assert.Equal(t, want, AnyOf(a, b).Match("").Failed())
		}
	}
}

func TestNaryEquivalence(t *testing.T) {
	options := []Matcher[string]{passes(), fails()}
	for _, a := range options {
		for _, b := range options {
			for _, c := range options {
				assert.Equal(t,
					AllOf(AllOf(a, b), c).Match(""),
					AllOf(a, b, c).Match(""),
				)
				assert.Equal(t,
					AnyOf(AnyOf(a, b), c).Match(""),
					AnyOf(a, b, c).Match(""),
				)
			}
		}
	}
}

func TestBothAndEither(t *testing.T) {
	assert.Equal(t, AllOf(fails(), passes()).Match(""), Both(fails(), passes()).Match(""))
	assert.Equal(t, AnyOf(fails(), fails()).Match(""), Either(fails(), fails()).Match(""))
}

func TestCombinators_PanicOnNilMatcher(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"Not", func() { Not[string](nil) }},
		{"Invert", func() { Invert[string](nil, "x") }},
		{"AllOf first", func() { AllOf(nil, passes()) }},
		{"AllOf others", func() { AllOf(passes(), passes(), nil) }},
		{"AnyOf second", func() { AnyOf(passes(), nil) }},
		{"Both", func() { Both(passes(), nil) }},
		{"Either", func() { Either(nil, passes()) }},
		{"Widen", func() { Widen[string](nil) }},
		{"Map", func() { Map[string, int](nil, func(s string) int { return len(s) }) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, tt.fn)
		})
	}
}

func TestWidenAndMap(t *testing.T) {
	isString := Func[any](func(actual any) Result {
		_, ok := actual.(string)
		return WithMessages("was a string", "was not a string").
			BuildWithPassStatusOf(ok)
	})
	assert.True(t, Widen[string](isString).Match("x").Passed())
	assert.True(t, Widen[int](isString).Match(1).Failed())

	isShort := Func[int](func(n int) Result {
		return WithMessages("was short", "was long").BuildWithPassStatusOf(n < 3)
	})
	byLength := Map(isShort, func(s string) int { return len(s) })
	assert.True(t, byLength.Match("ab").Passed())
	assert.Equal(t, isShort.Match(5), byLength.Match("abcde"))
}
