package ask

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{name: "integer", input: "41", expected: 41},
		{name: "float", input: "3.5", expected: 3.5},
		{name: "negative", input: "-7", expected: -7},
		{name: "surrounding whitespace", input: "  42  ", expected: 42},
		{name: "empty string coerces to zero", input: "", expected: 0},
		{name: "whitespace only coerces to zero", input: "   ", expected: 0},
		{name: "hex prefix", input: "0x10", expected: 16},
		{name: "binary prefix", input: "0b101", expected: 5},
		{name: "exponent", input: "1e3", expected: 1000},
		{name: "spelled-out infinity", input: "Infinity", expected: math.Inf(1)},
		{name: "negative infinity", input: "-Infinity", expected: math.Inf(-1)},
		{name: "overflow saturates", input: "1e999", expected: math.Inf(1)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, coerceNumber(tt.input))
		})
	}
}

func TestCoerceNumberNaN(t *testing.T) {
	t.Parallel()

	// Go parser conveniences are not numeric input: digit-separator
	// underscores and abbreviated infinity spellings coerce to NaN.
	inputs := []string{
		"abc", "12abc", "--1", "0x",
		"1_000", "0x1_0",
		"inf", "+inf", "-inf", "infinity", "INFINITY",
	}
	for _, input := range inputs {
		assert.True(t, math.IsNaN(coerceNumber(input)), "coerceNumber(%q) should be NaN", input)
	}
}

func TestApplyNumberModifiers(t *testing.T) {
	t.Parallel()

	double := NumberModifierFunc(func(n float64) (float64, error) { return n * 2, nil })
	inc := NumberModifierFunc(func(n float64) (float64, error) { return n + 1, nil })

	tests := []struct {
		name      string
		input     float64
		modifiers []NumberModifier
		expected  float64
	}{
		{
			name:      "empty pipeline is identity",
			input:     41,
			modifiers: nil,
			expected:  41,
		},
		{
			name:      "sequential fold",
			input:     20,
			modifiers: []NumberModifier{double, inc},
			expected:  41,
		},
		{
			name:      "order matters",
			input:     20,
			modifiers: []NumberModifier{inc, double},
			expected:  42,
		},
		{
			name:      "nested chain spliced in order",
			input:     10,
			modifiers: []NumberModifier{NumberChain{double, NumberChain{inc}}, inc},
			expected:  22,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := applyNumberModifiers(tt.input, flattenNumberModifiers(tt.modifiers))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestApplyNumberModifiersNaNFlowsThrough(t *testing.T) {
	t.Parallel()

	inc := NumberModifierFunc(func(n float64) (float64, error) { return n + 1, nil })

	got, err := applyNumberModifiers(coerceNumber("abc"), flattenNumberModifiers([]NumberModifier{inc}))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got), "NaN plus one is still NaN")
}

func TestApplyNumberModifiersError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	mods := []NumberModifier{
		NumberModifierFunc(func(n float64) (float64, error) { return n, nil }),
		NumberModifierFunc(func(float64) (float64, error) { return 0, boom }),
	}

	_, err := applyNumberModifiers(1, flattenNumberModifiers(mods))
	require.Error(t, err)

	var modErr *ModifierError
	require.ErrorAs(t, err, &modErr)
	assert.Equal(t, 1, modErr.Index)
	assert.ErrorIs(t, err, boom)
}

func TestClamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "below minimum", input: -5, expected: 0},
		{name: "within range", input: 50, expected: 50},
		{name: "above maximum", input: 200, expected: 130},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := applyNumberModifiers(tt.input, flattenNumberModifiers([]NumberModifier{Clamp(0, 130)}))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	t.Run("NaN passes through", func(t *testing.T) {
		t.Parallel()

		got, err := applyNumberModifiers(math.NaN(), flattenNumberModifiers([]NumberModifier{Clamp(0, 1)}))
		require.NoError(t, err)
		assert.True(t, math.IsNaN(got))
	})
}
