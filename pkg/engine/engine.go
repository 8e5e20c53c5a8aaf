package engine

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"

	"digital.vasic.matchers/pkg/matcher"
	"digital.vasic.matchers/pkg/verify"
)

var (
	// ErrUnknownType is returned for a type with no registered
	// factory.
	ErrUnknownType = errors.New("unknown matcher type")

	// ErrInvalidDefinition is returned for a definition whose
	// configuration cannot produce a matcher.
	ErrInvalidDefinition = errors.New("invalid matcher definition")
)

// Factory builds a leaf matcher from its definition. It should
// reject invalid configuration with an error instead of
// producing a matcher that fails at match time.
type Factory func(def Definition) (matcher.Matcher[any], error)

// Engine defines the interface for building matchers from
// definitions.
type Engine interface {
	// Build compiles a definition into a matcher.
	Build(def Definition) (matcher.Matcher[any], error)

	// Evaluate builds the definition and matches value.
	Evaluate(def Definition, value any) (matcher.Result, error)

	// Register adds a factory for the given matcher type.
	// Returns an error if the type is already registered.
	Register(matcherType string, factory Factory) error
}

// DefaultEngine is the standard Engine implementation. It is
// safe for concurrent use.
type DefaultEngine struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewEngine creates a DefaultEngine with the built-in leaf
// matcher types pre-registered.
func NewEngine() *DefaultEngine {
	e := &DefaultEngine{
		factories: make(map[string]Factory),
	}
	e.registerDefaults()
	return e
}

func (e *DefaultEngine) registerDefaults() {
	e.factories["not_empty"] = newNotEmpty
	e.factories["not_mock"] = newNotMock
	e.factories["equals"] = newEquals
	e.factories["contains"] = newContains
	e.factories["contains_any"] = newContainsAny
	e.factories["matches"] = newMatches
	e.factories["min_length"] = newMinLength
	e.factories["min_count"] = newMinCount
	e.factories["exact_count"] = newExactCount
	e.factories["max_latency"] = newMaxLatency
	e.factories["min_score"] = newMinScore
	e.factories["quality_score"] = newMinScore
	e.factories["all_valid"] = newAllValid
	e.factories["no_duplicates"] = newNoDuplicates
}

// Register adds a factory for the given matcher type. The
// combinator types cannot be overridden.
func (e *DefaultEngine) Register(
	matcherType string,
	factory Factory,
) error {
	if factory == nil {
		return errors.Errorf("nil factory for matcher type %s", matcherType)
	}
	if isCombinator(matcherType) {
		return errors.Errorf(
			"matcher type %s is reserved for a combinator",
			matcherType,
		)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.factories[matcherType]; exists {
		return errors.Errorf(
			"matcher type already registered: %s",
			matcherType,
		)
	}

	e.factories[matcherType] = factory
	return nil
}

// HasFactory returns true if the given matcher type can be
// built.
func (e *DefaultEngine) HasFactory(matcherType string) bool {
	if isCombinator(matcherType) {
		return true
	}

	e.mu.RLock()
	defer e.mu.RUnlock()
	_, exists := e.factories[matcherType]
	return exists
}

// Build compiles def and its children into a matcher.
func (e *DefaultEngine) Build(
	def Definition,
) (matcher.Matcher[any], error) {
	switch def.Type {
	case TypeNot:
		children, err := e.buildChildren(def, 1, 1)
		if err != nil {
			return nil, err
		}
		return matcher.Not(children[0]), nil

	case TypeInvert:
		if def.Message == "" {
			return nil, errors.Wrap(
				ErrInvalidDefinition,
				"invert requires a message",
			)
		}
		children, err := e.buildChildren(def, 1, 1)
		if err != nil {
			return nil, err
		}
		return matcher.Invert(children[0], def.Message), nil

	case TypeAllOf:
		children, err := e.buildChildren(def, 2, -1)
		if err != nil {
			return nil, err
		}
		return matcher.AllOf(children[0], children[1], children[2:]...), nil

	case TypeAnyOf:
		children, err := e.buildChildren(def, 2, -1)
		if err != nil {
			return nil, err
		}
		return matcher.AnyOf(children[0], children[1], children[2:]...), nil
	}

	e.mu.RLock()
	factory, exists := e.factories[def.Type]
	e.mu.RUnlock()

	if !exists {
		return nil, errors.Wrapf(ErrUnknownType, "%q", def.Type)
	}
	if len(def.Matchers) > 0 {
		return nil, errors.Wrapf(
			ErrInvalidDefinition,
			"%s does not accept nested matchers", def.Type,
		)
	}

	m, err := factory(def)
	if err != nil {
		return nil, errors.Wrapf(err, "build %s", def.Type)
	}
	if m == nil {
		return nil, errors.Wrapf(
			ErrInvalidDefinition,
			"factory for %s returned no matcher", def.Type,
		)
	}
	return m, nil
}

// Evaluate builds def and matches value against it.
func (e *DefaultEngine) Evaluate(
	def Definition,
	value any,
) (matcher.Result, error) {
	m, err := e.Build(def)
	if err != nil {
		return matcher.Result{}, err
	}
	return m.Match(value), nil
}

// Checks compiles every check in the suite against the named
// values. A check whose target is missing from values always
// fails.
func (e *DefaultEngine) Checks(
	suite *Suite,
	values map[string]any,
) ([]verify.Check, error) {
	checks := make([]verify.Check, 0, len(suite.Checks))

	for i, cd := range suite.Checks {
		name := cd.Name
		if name == "" {
			name = cd.Target
		}
		if name == "" {
			name = fmt.Sprintf("check-%d", i+1)
		}

		m, err := e.Build(cd.Matcher)
		if err != nil {
			return nil, errors.Wrapf(err, "check %s", name)
		}

		value, exists := values[cd.Target]
		if !exists {
			checks = append(checks, missingTarget(name, cd.Target))
			continue
		}
		checks = append(checks, verify.That(name, value, m))
	}

	return checks, nil
}

func (e *DefaultEngine) buildChildren(
	def Definition,
	minChildren, maxChildren int,
) ([]matcher.Matcher[any], error) {
	n := len(def.Matchers)
	if n < minChildren || (maxChildren >= 0 && n > maxChildren) {
		return nil, errors.Wrapf(
			ErrInvalidDefinition,
			"%s requires %s, got %d",
			def.Type, describeArity(minChildren, maxChildren), n,
		)
	}

	children := make([]matcher.Matcher[any], 0, n)
	for i, child := range def.Matchers {
		m, err := e.Build(child)
		if err != nil {
			return nil, errors.Wrapf(err, "%s[%d]", def.Type, i)
		}
		children = append(children, m)
	}
	return children, nil
}

func missingTarget(name, target string) verify.Check {
	result := matcher.WithMessages(
		"had a value for target "+target,
		"had no value for target "+target,
	)
	return verify.Check{
		Name: name,
		Run:  result.Fail,
	}
}

func describeArity(minChildren, maxChildren int) string {
	switch {
	case minChildren == maxChildren && minChildren == 1:
		return "exactly 1 matcher"
	case minChildren == maxChildren:
		return fmt.Sprintf("exactly %d matchers", minChildren)
	default:
		return fmt.Sprintf("at least %d matchers", minChildren)
	}
}

func isCombinator(matcherType string) bool {
	switch matcherType {
	case TypeNot, TypeInvert, TypeAllOf, TypeAnyOf:
		return true
	}
	return false
}
