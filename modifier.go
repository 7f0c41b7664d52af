package ask

import "fmt"

// Modifier is one element of a string transformation pipeline. It is either
// a single transform function (ModifierFunc) or an ordered group of further
// modifiers (Chain). Groups may nest arbitrarily; at application time the
// whole tree is flattened once, depth-first and left-to-right, into a flat
// sequence of functions that is then folded over the input.
//
// The two implementations are ModifierFunc and Chain. User code never needs
// to implement this interface directly.
type Modifier interface {
	// flatten appends the leaf functions of this modifier to dst in
	// application order.
	flatten(dst []ModifierFunc) []ModifierFunc
}

// ModifierFunc transforms a string answer into a new string. Returning a
// non-nil error aborts the remaining pipeline; the error reaches the caller
// wrapped in a *ModifierError.
//
// Example:
//
//	lower := ask.ModifierFunc(func(s string) (string, error) {
//		return strings.ToLower(s), nil
//	})
//	name, err := session.Ask("name: ").AsString(lower)
type ModifierFunc func(s string) (string, error)

func (f ModifierFunc) flatten(dst []ModifierFunc) []ModifierFunc {
	return append(dst, f)
}

// Chain is an ordered group of modifiers. A Chain is itself a Modifier, so
// chains can be nested to any depth; application order is always the
// depth-first, left-to-right order of the leaves.
//
// Example:
//
//	sanitize := ask.Chain{ask.TrimSpace(), ask.ToLower()}
//	session.Use(sanitize, ask.NonEmpty())
type Chain []Modifier

func (c Chain) flatten(dst []ModifierFunc) []ModifierFunc {
	for _, m := range c {
		dst = m.flatten(dst)
	}
	return dst
}

// ModifierError reports a transform function that returned an error. Index
// is the position of the failing function in the flattened pipeline. The
// underlying error is available through errors.Unwrap / errors.Is /
// errors.As.
type ModifierError struct {
	Index int   // position in the flattened pipeline
	Err   error // error returned by the transform
}

func (e *ModifierError) Error() string {
	return fmt.Sprintf("modifier %d failed: %v", e.Index, e.Err)
}

func (e *ModifierError) Unwrap() error {
	return e.Err
}

// flattenModifiers resolves a nested modifier tree into a flat sequence.
func flattenModifiers(modifiers []Modifier) []ModifierFunc {
	var flat []ModifierFunc
	for _, m := range modifiers {
		if m == nil {
			continue
		}
		flat = m.flatten(flat)
	}
	return flat
}

// applyModifiers folds the flattened pipeline over input. Application is
// strictly sequential: each function sees the previous function's output.
// A failing function aborts the fold.
func applyModifiers(input string, pipeline []ModifierFunc) (string, error) {
	result := input
	for i, fn := range pipeline {
		out, err := fn(result)
		if err != nil {
			return "", &ModifierError{Index: i, Err: err}
		}
		result = out
	}
	return result, nil
}
