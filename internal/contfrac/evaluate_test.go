package contfrac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	t.Run("Known values", func(t *testing.T) {
		cases := []struct {
			name     string
			input    []float64
			expected float64
		}{
			{"empty", []float64{}, 0},
			{"zero", []float64{0}, 0},
			{"one", []float64{1}, 1},
			{"twenty", []float64{20}, 20},
			{"reciprocal", []float64{0, 20}, 1.0 / 20},
			{"negative", []float64{-20}, -20},
			{"two terms", []float64{1, 2}, 1 + 1.0/2},
			{"negative lead", []float64{-1, 2}, -1 + 1.0/2},
			{"unit", []float64{0, 1}, 1},
			{"zero chain", []float64{0, 0, 0, 1}, 1},
			{"zero chain seventeen", []float64{0, 0, 0, 17}, 1.0 / 17},
			{"three terms", []float64{1, 2, 3}, 1 + 1/(2 + 1/3.0)},
			{"four terms", []float64{1, 2, 3, 4}, 1 + 1/(2 + 1/(3 + 1/4.0))},
			{"negative inner", []float64{1, 2, -3, 4}, 1 + 1/(2 + 1/(-3 + 1/4.0))},
			{"float terms", []float64{1.1, 2, -3.34, 4}, 1.1 + 1/(2 + 1/(-3.34 + 1/4.0))},
			{"649 over 200", []float64{3, 4, 12, 4}, 649.0 / 200},
			{"415 over 93", []float64{4, 2, 6, 7}, 415.0 / 93},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				value, err := Evaluate(tc.input)
				require.NoError(t, err)
				assert.InDelta(t, tc.expected, value, 1e-6)
			})
		}
	})

	t.Run("Integer sequences", func(t *testing.T) {
		value, err := Evaluate([]int{1, 2, 3})
		require.NoError(t, err)
		assert.InDelta(t, 1.3333333333333333, value, 1e-12)

		value, err = Evaluate([]int64{3, 4, 12, 4})
		require.NoError(t, err)
		assert.InDelta(t, 3.245, value, 1e-12)
	})

	t.Run("Zero tail is undefined", func(t *testing.T) {
		cases := [][]float64{
			{1, 0},
			{1, 2, 3, 0},
			{1, 2, 3, 0, 0, 0, 0},
		}
		for _, input := range cases {
			_, err := Evaluate(input)
			assert.ErrorIs(t, err, ErrDivisionByZero, "input %v", input)
		}
	})

	t.Run("Input is not mutated", func(t *testing.T) {
		input := []float64{1, 2, 3, 4}
		_, err := Evaluate(input)
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 2, 3, 4}, input)
	})
}
