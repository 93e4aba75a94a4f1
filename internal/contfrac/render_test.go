package contfrac

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpression(t *testing.T) {
	// Expected strings are the spaced integer-literal form; the other three
	// option combinations derive from them mechanically.
	cases := []struct {
		name     string
		input    []float64
		expected string
	}{
		{"empty", []float64{}, ""},
		{"zero", []float64{0}, "0"},
		{"one", []float64{1}, "1"},
		{"twenty", []float64{20}, "20"},
		{"reciprocal", []float64{0, 20}, "0 + 1/(20)"},
		{"negative single", []float64{-20}, "-20"},
		{"two terms", []float64{1, 2}, "1 + 1/(2)"},
		{"negative lead", []float64{-1, 2}, "-1 + 1/(2)"},
		{"negative second", []float64{1, -2}, "1 + 1/(-2)"},
		{"unit", []float64{0, 1}, "0 + 1/(1)"},
		{"zero chain", []float64{0, 0, 0, 1}, "0 + 1/(0 + 1/(0 + 1/(1)))"},
		{"zero chain seventeen", []float64{0, 0, 0, 17}, "0 + 1/(0 + 1/(0 + 1/(17)))"},
		{"three terms", []float64{1, 2, 3}, "1 + 1/(2 + 1/(3))"},
		{"four terms", []float64{1, 2, 3, 4}, "1 + 1/(2 + 1/(3 + 1/(4)))"},
		{"negative inner", []float64{1, 2, -3, 4}, "1 + 1/(2 + 1/(-3 + 1/(4)))"},
		{"float terms", []float64{1.1, 2, -3.34, 4}, "1.1 + 1/(2 + 1/(-3.34 + 1/(4)))"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected,
				Expression(tc.input, ExprOptions{}))

			assert.Equal(t, strings.ReplaceAll(tc.expected, " ", ""),
				Expression(tc.input, ExprOptions{Compact: true}))

			assert.Equal(t, strings.ReplaceAll(tc.expected, "1/", "1.0/"),
				Expression(tc.input, ExprOptions{ForceFloats: true}))

			compactFloats := strings.ReplaceAll(tc.expected, " ", "")
			compactFloats = strings.ReplaceAll(compactFloats, "1/", "1.0/")
			assert.Equal(t, compactFloats,
				Expression(tc.input, ExprOptions{Compact: true, ForceFloats: true}))
		})
	}
}

func TestExpressionIntegerSequences(t *testing.T) {
	assert.Equal(t, "2 + 1/(3 + 1/(4 + 1/(5)))",
		Expression([]int{2, 3, 4, 5}, ExprOptions{}))
	assert.Equal(t, "3 + 1/(4 + 1/(12 + 1/(4)))",
		Expression([]int64{3, 4, 12, 4}, ExprOptions{}))
}
