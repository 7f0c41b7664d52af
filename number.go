package ask

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// NumberModifier is the numeric counterpart of Modifier: either a single
// NumberModifierFunc or a NumberChain of nested modifiers. The raw answer is
// coerced to a float64 first; the flattened numeric pipeline then folds over
// that value.
type NumberModifier interface {
	flatten(dst []NumberModifierFunc) []NumberModifierFunc
}

// NumberModifierFunc transforms a numeric answer into a new number.
// Returning a non-nil error aborts the remaining pipeline; the error
// reaches the caller wrapped in a *ModifierError.
type NumberModifierFunc func(n float64) (float64, error)

func (f NumberModifierFunc) flatten(dst []NumberModifierFunc) []NumberModifierFunc {
	return append(dst, f)
}

// NumberChain is an ordered, nestable group of numeric modifiers.
type NumberChain []NumberModifier

func (c NumberChain) flatten(dst []NumberModifierFunc) []NumberModifierFunc {
	for _, m := range c {
		dst = m.flatten(dst)
	}
	return dst
}

func flattenNumberModifiers(modifiers []NumberModifier) []NumberModifierFunc {
	var flat []NumberModifierFunc
	for _, m := range modifiers {
		if m == nil {
			continue
		}
		flat = m.flatten(flat)
	}
	return flat
}

func applyNumberModifiers(input float64, pipeline []NumberModifierFunc) (float64, error) {
	result := input
	for i, fn := range pipeline {
		out, err := fn(result)
		if err != nil {
			return 0, &ModifierError{Index: i, Err: err}
		}
		result = out
	}
	return result, nil
}

// coerceNumber converts a raw answer to a float64 using lenient numeric
// coercion: surrounding whitespace is ignored, the empty string coerces to
// zero, radix-prefixed integers (0x, 0o, 0b) are accepted, and anything
// else that fails to parse coerces to NaN rather than an error. NaN flows
// through the numeric pipeline unless a modifier checks for it.
func coerceNumber(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	// The Go parsers accept digit-separator underscores and abbreviated
	// infinity spellings ("inf"); lenient coercion treats both as
	// non-numeric.
	if strings.Contains(s, "_") {
		return math.NaN()
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsInf(n, 0) && !isInfinity(s) {
			return math.NaN()
		}
		return n
	} else if errors.Is(err, strconv.ErrRange) {
		// Out-of-range magnitudes saturate to the signed infinity.
		return n
	}
	// Radix prefixes are not understood by ParseFloat.
	if i, err := strconv.ParseInt(s, 0, 64); err == nil {
		return float64(i)
	}
	return math.NaN()
}

// isInfinity reports whether s spells out infinity with an optional sign.
func isInfinity(s string) bool {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	return s == "Infinity"
}

// Clamp returns a numeric modifier that limits the answer to [min, max].
// NaN is passed through unchanged.
func Clamp(min, max float64) NumberModifier {
	return NumberModifierFunc(func(n float64) (float64, error) {
		if math.IsNaN(n) {
			return n, nil
		}
		if n < min {
			return min, nil
		}
		if n > max {
			return max, nil
		}
		return n, nil
	})
}
