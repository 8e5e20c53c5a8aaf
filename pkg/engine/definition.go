// Package engine builds matchers from declarative definitions.
// Definitions can be written in JSON or YAML, name a leaf matcher
// type registered with the engine, and nest the not, invert,
// all_of and any_of combinators.
package engine

// Combinator types understood by every Engine.
const (
	TypeNot    = "not"
	TypeInvert = "invert"
	TypeAllOf  = "all_of"
	TypeAnyOf  = "any_of"
)

// Definition describes a matcher.
type Definition struct {
	// Type is the matcher type (e.g., "contains",
	// "not_empty", "all_of").
	Type string `json:"type" yaml:"type"`

	// Value is the configuration for single-value matchers.
	Value any `json:"value,omitempty" yaml:"value,omitempty"`

	// Values holds configuration for multi-value matchers
	// (e.g., "contains_any").
	Values []any `json:"values,omitempty" yaml:"values,omitempty"`

	// Message is the new expected message for "invert".
	Message string `json:"message,omitempty" yaml:"message,omitempty"`

	// Matchers holds the children of a combinator.
	Matchers []Definition `json:"matchers,omitempty" yaml:"matchers,omitempty"`
}

// CheckDefinition names a matcher and the target value it is
// applied to.
type CheckDefinition struct {
	// Name identifies the check. It defaults to Target.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Target is the key of the value under test.
	Target string `json:"target" yaml:"target"`

	// Matcher is the definition to evaluate.
	Matcher Definition `json:"matcher" yaml:"matcher"`
}

// Suite is a collection of checks, typically loaded from a file.
type Suite struct {
	Checks []CheckDefinition `json:"checks" yaml:"checks"`
}
