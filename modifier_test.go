package ask

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appendMark(mark string) Modifier {
	return ModifierFunc(func(s string) (string, error) {
		return s + mark, nil
	})
}

func TestFlattenModifiers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		modifiers []Modifier
		input     string
		expected  string
	}{
		{
			name:      "flat list applies left to right",
			modifiers: []Modifier{appendMark("a"), appendMark("b"), appendMark("c")},
			input:     "x",
			expected:  "xabc",
		},
		{
			name: "nested chain is spliced in order",
			modifiers: []Modifier{
				appendMark("a"),
				Chain{appendMark("b"), appendMark("c")},
				appendMark("d"),
			},
			input:    "x",
			expected: "xabcd",
		},
		{
			name: "deep nesting keeps depth-first order",
			modifiers: []Modifier{
				Chain{
					appendMark("a"),
					Chain{appendMark("b"), Chain{appendMark("c")}},
				},
				appendMark("d"),
			},
			input:    "x",
			expected: "xabcd",
		},
		{
			name:      "empty chain is identity",
			modifiers: nil,
			input:     "unchanged",
			expected:  "unchanged",
		},
		{
			name: "nested empty chains contribute nothing",
			modifiers: []Modifier{
				Chain{},
				Chain{Chain{}, appendMark("a")},
				Chain{Chain{Chain{}}},
			},
			input:    "x",
			expected: "xa",
		},
		{
			name:      "nil modifiers are skipped",
			modifiers: []Modifier{nil, appendMark("a"), nil},
			input:     "x",
			expected:  "xa",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := applyModifiers(tt.input, flattenModifiers(tt.modifiers))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// Flattening then folding manually must be equivalent to applying the
// nested chain directly, independent of nesting shape.
func TestFlattenFoldEquivalence(t *testing.T) {
	t.Parallel()

	shapes := [][]Modifier{
		{appendMark("1"), appendMark("2"), appendMark("3")},
		{Chain{appendMark("1")}, Chain{appendMark("2"), appendMark("3")}},
		{Chain{Chain{appendMark("1"), appendMark("2")}, appendMark("3")}},
		{Chain{appendMark("1"), Chain{appendMark("2"), Chain{appendMark("3")}}}},
	}

	for _, shape := range shapes {
		flat := flattenModifiers(shape)
		require.Len(t, flat, 3)

		folded := "x"
		for _, fn := range flat {
			out, err := fn(folded)
			require.NoError(t, err)
			folded = out
		}

		applied, err := applyModifiers("x", flattenModifiers(shape))
		require.NoError(t, err)
		assert.Equal(t, folded, applied)
		assert.Equal(t, "x123", applied)
	}
}

func TestApplyModifiersIdempotent(t *testing.T) {
	t.Parallel()

	// Every modifier here is idempotent, so re-applying the chain to its
	// own output must be a no-op.
	chain := []Modifier{TrimSpace(), ToLower()}

	once, err := applyModifiers("  MiXeD  ", flattenModifiers(chain))
	require.NoError(t, err)

	twice, err := applyModifiers(once, flattenModifiers(chain))
	require.NoError(t, err)
	assert.Equal(t, once, twice)
	assert.Equal(t, "mixed", twice)
}

func TestApplyModifiersError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	var reached bool

	mods := []Modifier{
		appendMark("a"),
		ModifierFunc(func(string) (string, error) { return "", boom }),
		ModifierFunc(func(s string) (string, error) {
			reached = true
			return s, nil
		}),
	}

	_, err := applyModifiers("x", flattenModifiers(mods))
	require.Error(t, err)

	var modErr *ModifierError
	require.ErrorAs(t, err, &modErr)
	assert.Equal(t, 1, modErr.Index)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "modifier 1")
	assert.False(t, reached, "modifiers after the failing one must not run")
}

func TestBuiltinModifiers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		modifier Modifier
		input    string
		expected string
	}{
		{name: "trim space", modifier: TrimSpace(), input: "  ada  ", expected: "ada"},
		{name: "to lower", modifier: ToLower(), input: "ADA", expected: "ada"},
		{name: "to upper", modifier: ToUpper(), input: "ada", expected: "ADA"},
		{name: "non empty passes through", modifier: NonEmpty(), input: "ada", expected: "ada"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := applyModifiers(tt.input, flattenModifiers([]Modifier{tt.modifier}))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNonEmptyRejectsEmptyAnswer(t *testing.T) {
	t.Parallel()

	_, err := applyModifiers("   ", flattenModifiers([]Modifier{TrimSpace(), NonEmpty()}))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyAnswer)

	var modErr *ModifierError
	require.ErrorAs(t, err, &modErr)
	assert.Equal(t, 1, modErr.Index)
}

func TestModifierFuncAccessToPreviousOutput(t *testing.T) {
	t.Parallel()

	// Later modifiers must see earlier outputs, never the raw input.
	mods := []Modifier{
		ToUpper(),
		ModifierFunc(func(s string) (string, error) {
			require.True(t, strings.ToUpper(s) == s, "expected already-uppercased input")
			return s + "!", nil
		}),
	}

	got, err := applyModifiers("ada", flattenModifiers(mods))
	require.NoError(t, err)
	assert.Equal(t, "ADA!", got)
}
