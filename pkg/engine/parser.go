package engine

import "strings"

// ParseDefinition parses a compact definition of the form
// "type:value". If no colon is present the entire string is the
// type and the value is nil.
//
// Examples:
//
//	"contains:func"  -> {Type: "contains", Value: "func"}
//	"not_empty"      -> {Type: "not_empty"}
//	"min_length:100" -> {Type: "min_length", Value: "100"}
func ParseDefinition(s string) Definition {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)

	def := Definition{Type: parts[0]}
	if len(parts) > 1 {
		def.Value = parts[1]
	}
	return def
}
