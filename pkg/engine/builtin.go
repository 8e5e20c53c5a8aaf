package engine

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"digital.vasic.matchers/pkg/matcher"
)

var mockPatterns = []string{
	"lorem ipsum",
	"placeholder",
	"mock response",
	"TODO",
	"not implemented",
	"[MOCK]",
	"test response",
	"dummy",
	"sample output",
}

// newNotEmpty matches values that are non-nil and non-empty.
// Blank strings count as empty.
func newNotEmpty(_ Definition) (matcher.Matcher[any], error) {
	const expected = "was not empty"

	return matcher.Func[any](func(value any) matcher.Result {
		result := func(onFailure string) matcher.Result {
			return matcher.WithMessages(expected, onFailure).Fail()
		}

		switch v := value.(type) {
		case nil:
			return result("was nil")
		case string:
			if strings.TrimSpace(v) == "" {
				return result("was an empty string")
			}
		case []any:
			if len(v) == 0 {
				return result("was an empty array")
			}
		case map[string]any:
			if len(v) == 0 {
				return result("was an empty map")
			}
		}
		return matcher.WithMessages(expected, "was empty").Pass()
	}), nil
}

// newNotMock matches strings free of common placeholder text.
// Non-string values pass.
func newNotMock(_ Definition) (matcher.Matcher[any], error) {
	const expected = "was not a mock response"

	return matcher.Func[any](func(value any) matcher.Result {
		str, ok := value.(string)
		if !ok {
			return matcher.WithMessages(expected, "was a mock response").Pass()
		}

		lower := strings.ToLower(str)
		for _, pattern := range mockPatterns {
			if strings.Contains(lower, strings.ToLower(pattern)) {
				return matcher.WithMessages(
					expected,
					fmt.Sprintf("contained mock pattern '%s'", pattern),
				).Fail()
			}
		}
		return matcher.WithMessages(expected, "was a mock response").Pass()
	}), nil
}

// newEquals matches values whose default formatting equals the
// configured value. Numbers decoded from JSON and YAML compare
// equal to their string form.
func newEquals(def Definition) (matcher.Matcher[any], error) {
	if def.Value == nil {
		return nil, errors.Wrap(ErrInvalidDefinition, "value is required")
	}

	want := fmt.Sprint(def.Value)
	expected := "equaled " + want

	return matcher.Func[any](func(value any) matcher.Result {
		got := fmt.Sprint(value)
		return matcher.WithMessages(expected, "equaled "+got).
			BuildWithPassStatusOf(got == want)
	}), nil
}

// newContains matches strings containing the configured
// substring, ignoring case.
func newContains(def Definition) (matcher.Matcher[any], error) {
	want, ok := def.Value.(string)
	if !ok {
		return nil, errors.Wrap(ErrInvalidDefinition, "value must be a string")
	}

	expected := fmt.Sprintf("contained '%s'", want)
	lowerWant := strings.ToLower(want)

	return matcher.Func[any](func(value any) matcher.Result {
		str, ok := value.(string)
		if !ok {
			return notAString(expected)
		}
		return matcher.WithMessages(
			expected,
			fmt.Sprintf("didn't contain '%s'", want),
		).BuildWithPassStatusOf(
			strings.Contains(strings.ToLower(str), lowerWant),
		)
	}), nil
}

// newContainsAny matches strings containing at least one of the
// configured substrings, ignoring case.
func newContainsAny(def Definition) (matcher.Matcher[any], error) {
	wants := toStrings(def.Value)
	if len(wants) == 0 {
		wants = toStrings(def.Values)
	}
	if len(wants) == 0 {
		return nil, errors.Wrap(
			ErrInvalidDefinition,
			"at least one substring is required",
		)
	}

	result := matcher.WithMessages(
		fmt.Sprintf("contained any of %v", wants),
		fmt.Sprintf("didn't contain any of %v", wants),
	)

	return matcher.Func[any](func(value any) matcher.Result {
		str, ok := value.(string)
		if !ok {
			return notAString(fmt.Sprintf("contained any of %v", wants))
		}

		lower := strings.ToLower(str)
		for _, want := range wants {
			if strings.Contains(lower, strings.ToLower(want)) {
				return result.Pass()
			}
		}
		return result.Fail()
	}), nil
}

// newMatches matches strings against a regular expression
// compiled once at build time.
func newMatches(def Definition) (matcher.Matcher[any], error) {
	pattern, ok := def.Value.(string)
	if !ok {
		return nil, errors.Wrap(ErrInvalidDefinition, "pattern must be a string")
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(
			ErrInvalidDefinition,
			"pattern %q: %v", pattern, err,
		)
	}

	result := matcher.WithMessages(
		fmt.Sprintf("matched /%s/", pattern),
		fmt.Sprintf("didn't match /%s/", pattern),
	)

	return matcher.Func[any](func(value any) matcher.Result {
		str, ok := value.(string)
		if !ok {
			return notAString(fmt.Sprintf("matched /%s/", pattern))
		}
		return result.BuildWithPassStatusOf(re.MatchString(str))
	}), nil
}

// newMinLength matches strings of at least the configured
// length in bytes.
func newMinLength(def Definition) (matcher.Matcher[any], error) {
	minLength, ok := toInt(def.Value)
	if !ok {
		return nil, errors.Wrap(ErrInvalidDefinition, "value must be a number")
	}

	expected := fmt.Sprintf("had length of at least %d", minLength)

	return matcher.Func[any](func(value any) matcher.Result {
		str, ok := value.(string)
		if !ok {
			return notAString(expected)
		}
		return matcher.WithMessages(
			expected,
			fmt.Sprintf("had length of %d", len(str)),
		).BuildWithPassStatusOf(len(str) >= minLength)
	}), nil
}

// newMinCount matches countable values with a count of at least
// the configured value.
func newMinCount(def Definition) (matcher.Matcher[any], error) {
	minCount, ok := toInt(def.Value)
	if !ok {
		return nil, errors.Wrap(ErrInvalidDefinition, "value must be a number")
	}

	return countMatcher(
		fmt.Sprintf("had count of at least %d", minCount),
		func(count int) bool { return count >= minCount },
	), nil
}

// newExactCount matches countable values with exactly the
// configured count.
func newExactCount(def Definition) (matcher.Matcher[any], error) {
	want, ok := toInt(def.Value)
	if !ok {
		return nil, errors.Wrap(ErrInvalidDefinition, "value must be a number")
	}

	return countMatcher(
		fmt.Sprintf("had count of %d", want),
		func(count int) bool { return count == want },
	), nil
}

func countMatcher(
	expected string,
	accept func(count int) bool,
) matcher.Matcher[any] {
	return matcher.Func[any](func(value any) matcher.Result {
		count, ok := toCount(value)
		if !ok {
			return matcher.WithMessages(expected, "was not countable").Fail()
		}
		return matcher.WithMessages(
			expected,
			fmt.Sprintf("had count of %d", count),
		).BuildWithPassStatusOf(accept(count))
	})
}

// newMaxLatency matches latencies, in milliseconds, that do not
// exceed the configured maximum.
func newMaxLatency(def Definition) (matcher.Matcher[any], error) {
	maxLatency, ok := toInt64(def.Value)
	if !ok {
		return nil, errors.Wrap(ErrInvalidDefinition, "value must be a number")
	}

	expected := fmt.Sprintf("took at most %dms", maxLatency)

	return matcher.Func[any](func(value any) matcher.Result {
		latency, ok := toInt64(value)
		if !ok {
			return matcher.WithMessages(expected, "was not a number").Fail()
		}
		return matcher.WithMessages(
			expected,
			fmt.Sprintf("took %dms", latency),
		).BuildWithPassStatusOf(latency <= maxLatency)
	}), nil
}

// newMinScore matches numeric scores of at least the configured
// threshold.
func newMinScore(def Definition) (matcher.Matcher[any], error) {
	minScore, ok := toFloat64(def.Value)
	if !ok {
		return nil, errors.Wrap(ErrInvalidDefinition, "value must be a number")
	}

	expected := fmt.Sprintf("scored at least %.2f", minScore)

	return matcher.Func[any](func(value any) matcher.Result {
		score, ok := toFloat64(value)
		if !ok {
			return matcher.WithMessages(expected, "was not a number").Fail()
		}
		return matcher.WithMessages(
			expected,
			fmt.Sprintf("scored %.2f", score),
		).BuildWithPassStatusOf(score >= minScore)
	}), nil
}

// newAllValid matches arrays whose items are all non-nil and
// non-empty.
func newAllValid(_ Definition) (matcher.Matcher[any], error) {
	const expected = "had only valid items"

	return matcher.Func[any](func(value any) matcher.Result {
		items, ok := value.([]any)
		if !ok {
			return matcher.WithMessages(expected, "was not an array").Fail()
		}

		for i, item := range items {
			if item == nil {
				return matcher.WithMessages(
					expected, fmt.Sprintf("had nil item %d", i),
				).Fail()
			}
			if str, ok := item.(string); ok && str == "" {
				return matcher.WithMessages(
					expected, fmt.Sprintf("had empty item %d", i),
				).Fail()
			}
		}
		return matcher.WithMessages(expected, "had an invalid item").Pass()
	}), nil
}

// newNoDuplicates matches arrays without repeated items. Items
// are compared by their default formatting.
func newNoDuplicates(_ Definition) (matcher.Matcher[any], error) {
	const expected = "had no duplicates"

	return matcher.Func[any](func(value any) matcher.Result {
		items, ok := value.([]any)
		if !ok {
			return matcher.WithMessages(expected, "was not an array").Fail()
		}

		seen := make(map[string]bool, len(items))
		for _, item := range items {
			key := fmt.Sprint(item)
			if seen[key] {
				return matcher.WithMessages(
					expected, "had duplicate "+key,
				).Fail()
			}
			seen[key] = true
		}
		return matcher.WithMessages(expected, "had duplicates").Pass()
	}), nil
}

func notAString(expected string) matcher.Result {
	return matcher.WithMessages(expected, "was not a string").Fail()
}

// --- helpers ---

// toInt converts a configuration or input value to int. Strings
// are parsed so that compact definitions such as
// "min_length:100" work.
func toInt(v any) (int, bool) {
	n, ok := toInt64(v)
	return int(n), ok
}

// toInt64 converts a value to int64. NaN, infinities and values
// outside the int64 range are rejected.
func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	}

	f, ok := toFloat64(v)
	if !ok || f < -(1<<63) || f >= 1<<63 {
		return 0, false
	}
	return int64(f), true
}

// toFloat64 converts a value to a finite float64.
func toFloat64(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint64:
		f = float64(n)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// toCount extracts a count from a number, an array or a map.
func toCount(v any) (int, bool) {
	switch val := v.(type) {
	case []any:
		return len(val), true
	case []string:
		return len(val), true
	case map[string]any:
		return len(val), true
	case string:
		return 0, false
	}
	return toInt(v)
}

// toStrings flattens a comma-separated string or a list into
// trimmed, non-empty strings.
func toStrings(v any) []string {
	var raw []string
	switch val := v.(type) {
	case string:
		raw = strings.Split(val, ",")
	case []string:
		raw = val
	case []any:
		for _, item := range val {
			if s, ok := item.(string); ok {
				raw = append(raw, s)
			}
		}
	}

	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
