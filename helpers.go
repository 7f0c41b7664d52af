package ask

import (
	"errors"
	"strings"
)

// ErrEmptyAnswer is returned (wrapped in a *ModifierError) by the NonEmpty
// modifier when the answer is empty after the preceding pipeline stages.
var ErrEmptyAnswer = errors.New("empty answer")

// TrimSpace returns a modifier that removes leading and trailing whitespace
// from the answer.
func TrimSpace() Modifier {
	return ModifierFunc(func(s string) (string, error) {
		return strings.TrimSpace(s), nil
	})
}

// ToLower returns a modifier that lowercases the answer.
func ToLower() Modifier {
	return ModifierFunc(func(s string) (string, error) {
		return strings.ToLower(s), nil
	})
}

// ToUpper returns a modifier that uppercases the answer.
func ToUpper() Modifier {
	return ModifierFunc(func(s string) (string, error) {
		return strings.ToUpper(s), nil
	})
}

// NonEmpty returns a modifier that fails the pipeline with ErrEmptyAnswer
// when the answer is empty. Place it after TrimSpace to also reject
// whitespace-only answers.
//
// Example:
//
//	session.Use(ask.TrimSpace(), ask.NonEmpty())
//	name, err := session.Ask("name: ").AsString()
//	if errors.Is(err, ask.ErrEmptyAnswer) {
//		// re-prompt
//	}
func NonEmpty() Modifier {
	return ModifierFunc(func(s string) (string, error) {
		if s == "" {
			return "", ErrEmptyAnswer
		}
		return s, nil
	})
}
