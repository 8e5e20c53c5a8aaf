package engine

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.matchers/pkg/matcher"
)

func TestNewEngine_RegistersAllBuiltins(t *testing.T) {
	e := NewEngine()

	builtins := []string{
		"not_empty", "not_mock", "equals", "contains",
		"contains_any", "matches", "min_length", "min_count",
		"exact_count", "max_latency", "min_score",
		"quality_score", "all_valid", "no_duplicates",
		TypeNot, TypeInvert, TypeAllOf, TypeAnyOf,
	}

	for _, name := range builtins {
		assert.True(t, e.HasFactory(name),
			"missing built-in matcher type: %s", name)
	}
	assert.False(t, e.HasFactory("does_not_exist"))
}

func TestDefaultEngine_Register_Success(t *testing.T) {
	e := NewEngine()

	err := e.Register("always", func(_ Definition) (matcher.Matcher[any], error) {
		return matcher.Func[any](func(any) matcher.Result {
			return matcher.WithMessages("was anything", "was nothing").Pass()
		}), nil
	})
	require.NoError(t, err)
	assert.True(t, e.HasFactory("always"))

	r, err := e.Evaluate(Definition{Type: "always"}, 1)
	require.NoError(t, err)
	assert.True(t, r.Passed())
}

func TestDefaultEngine_Register_Rejected(t *testing.T) {
	factory := func(_ Definition) (matcher.Matcher[any], error) {
		return nil, nil
	}

	tests := []struct {
		name        string
		matcherType string
		factory     Factory
		wantErr     string
	}{
		{"duplicate", "not_empty", factory, "already registered"},
		{"combinator", TypeAllOf, factory, "reserved"},
		{"nil factory", "custom", nil, "nil factory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewEngine().Register(tt.matcherType, tt.factory)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDefaultEngine_Build_UnknownType(t *testing.T) {
	_, err := NewEngine().Build(Definition{Type: "nonexistent"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownType))
	assert.Contains(t, err.Error(), `"nonexistent"`)
}

func TestDefaultEngine_Build_NilMatcherFromFactory(t *testing.T) {
	e := NewEngine()
	require.NoError(t, e.Register("broken", func(Definition) (matcher.Matcher[any], error) {
		return nil, nil
	}))

	_, err := e.Build(Definition{Type: "broken"})
	assert.ErrorIs(t, err, ErrInvalidDefinition)
}

func TestDefaultEngine_Build_LeafWithChildren(t *testing.T) {
	_, err := NewEngine().Build(Definition{
		Type:     "not_empty",
		Matchers: []Definition{{Type: "not_empty"}},
	})

	assert.ErrorIs(t, err, ErrInvalidDefinition)
}

func TestDefaultEngine_Build_CombinatorArity(t *testing.T) {
	leaf := Definition{Type: "not_empty"}

	tests := []struct {
		name string
		def  Definition
	}{
		{"not without child", Definition{Type: TypeNot}},
		{"not with two children", Definition{Type: TypeNot, Matchers: []Definition{leaf, leaf}}},
		{"invert without message", Definition{Type: TypeInvert, Matchers: []Definition{leaf}}},
		{"invert without child", Definition{Type: TypeInvert, Message: "was empty"}},
		{"all_of with one child", Definition{Type: TypeAllOf, Matchers: []Definition{leaf}}},
		{"any_of without children", Definition{Type: TypeAnyOf}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEngine().Build(tt.def)
			assert.ErrorIs(t, err, ErrInvalidDefinition)
		})
	}
}

func TestDefaultEngine_Build_NestedErrorNamesPath(t *testing.T) {
	_, err := NewEngine().Build(Definition{
		Type: TypeAllOf,
		Matchers: []Definition{
			{Type: "not_empty"},
			{Type: "contains", Value: 1},
		},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDefinition)
	assert.Contains(t, err.Error(), "all_of[1]")
	assert.Contains(t, err.Error(), "build contains")
}

func TestDefaultEngine_Build_Combinators(t *testing.T) {
	e := NewEngine()
	hello := Definition{Type: "contains", Value: "hello"}
	world := Definition{Type: "contains", Value: "world"}

	t.Run("not", func(t *testing.T) {
		r, err := e.Evaluate(Definition{
			Type:     TypeNot,
			Matchers: []Definition{hello},
		}, "hello")
		require.NoError(t, err)

		assert.True(t, r.Failed())
		assert.Equal(t, "\tdidn't contain 'hello'", r.Expected())
		assert.Equal(t, "\tcontained 'hello'", r.Actual())
	})

	t.Run("invert", func(t *testing.T) {
		r, err := e.Evaluate(Definition{
			Type:     TypeInvert,
			Message:  "was polite",
			Matchers: []Definition{{Type: "contains", Value: "rude"}},
		}, "so rude")
		require.NoError(t, err)

		assert.True(t, r.Failed())
		assert.Equal(t, "\twas polite", r.Expected())
		assert.Equal(t, "\tcontained 'rude'", r.Actual())
	})

	t.Run("all_of", func(t *testing.T) {
		def := Definition{Type: TypeAllOf, Matchers: []Definition{hello, world}}

		r, err := e.Evaluate(def, "hello world")
		require.NoError(t, err)
		assert.True(t, r.Passed())

		r, err = e.Evaluate(def, "hello there")
		require.NoError(t, err)
		assert.True(t, r.Failed())
		assert.Equal(t, "\tcontained 'hello'\n\tcontained 'world'", r.Expected())
		assert.Equal(t, "\tcontained 'hello'\n\tdidn't contain 'world'", r.Actual())
	})

	t.Run("any_of", func(t *testing.T) {
		def := Definition{
			Type:     TypeAnyOf,
			Matchers: []Definition{hello, world, {Type: "contains", Value: "!"}},
		}

		r, err := e.Evaluate(def, "world")
		require.NoError(t, err)
		assert.True(t, r.Passed())
		assert.Equal(t, "\tcontained 'hello'\t or\n\tcontained 'world'", r.Expected())

		r, err = e.Evaluate(def, "nope")
		require.NoError(t, err)
		assert.True(t, r.Failed())
		assert.Equal(t,
			"\tcontained 'hello'\t or\n\tcontained 'world'\t or\n\tcontained '!'",
			r.Expected())
	})
}

func TestDefaultEngine_Evaluate_BuildError(t *testing.T) {
	r, err := NewEngine().Evaluate(Definition{Type: "nonexistent"}, "x")

	require.Error(t, err)
	assert.Equal(t, matcher.Result{}, r)
}

func TestDefaultEngine_Checks(t *testing.T) {
	suite := &Suite{Checks: []CheckDefinition{
		{Name: "has body", Target: "body", Matcher: Definition{Type: "not_empty"}},
		{Target: "status", Matcher: Definition{Type: "equals", Value: 200}},
		{Name: "missing", Target: "latency", Matcher: Definition{Type: "max_latency", Value: 10}},
	}}

	checks, err := NewEngine().Checks(suite, map[string]any{
		"body":   "ok",
		"status": 500,
	})
	require.NoError(t, err)
	require.Len(t, checks, 3)

	assert.Equal(t, "has body", checks[0].Name)
	assert.True(t, checks[0].Run().Passed())

	assert.Equal(t, "status", checks[1].Name)
	r := checks[1].Run()
	assert.True(t, r.Failed())
	assert.Equal(t, "\tequaled 500", r.Actual())

	assert.Equal(t, "missing", checks[2].Name)
	r = checks[2].Run()
	assert.True(t, r.Failed())
	assert.Equal(t, "\thad a value for target latency", r.Expected())
	assert.Equal(t, "\thad no value for target latency", r.Actual())
}

func TestDefaultEngine_Checks_DefaultName(t *testing.T) {
	suite := &Suite{Checks: []CheckDefinition{
		{Matcher: Definition{Type: "not_empty"}},
	}}

	checks, err := NewEngine().Checks(suite, nil)
	require.NoError(t, err)
	require.Len(t, checks, 1)
	assert.Equal(t, "check-1", checks[0].Name)
}

func TestDefaultEngine_Checks_BuildError(t *testing.T) {
	suite := &Suite{Checks: []CheckDefinition{
		{Name: "bad", Target: "x", Matcher: Definition{Type: "nope"}},
	}}

	_, err := NewEngine().Checks(suite, map[string]any{"x": 1})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownType)
	assert.Contains(t, err.Error(), "check bad")
}

func TestDefaultEngine_ConcurrentUse(t *testing.T) {
	e := NewEngine()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			r, err := e.Evaluate(Definition{Type: "not_empty"}, "x")
			assert.NoError(t, err)
			assert.True(t, r.Passed())
		}()
		go func() {
			defer wg.Done()
			_ = e.HasFactory("custom")
		}()
	}
	wg.Wait()
}
