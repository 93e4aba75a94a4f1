package contfrac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotientlabs/contfrac/internal/contfrac"
)

func TestGetValue(t *testing.T) {
	t.Run("Whole float becomes integer input", func(t *testing.T) {
		v, errMsg := getValue(map[string]interface{}{"x": 3.0}, "x")
		require.Empty(t, errMsg)
		assert.Equal(t, contfrac.Int(3), v)
	})

	t.Run("Fractional float stays float", func(t *testing.T) {
		v, errMsg := getValue(map[string]interface{}{"x": 3.245}, "x")
		require.Empty(t, errMsg)
		assert.Equal(t, contfrac.Float(3.245), v)
	})

	t.Run("Pair becomes ratio", func(t *testing.T) {
		v, errMsg := getValue(map[string]interface{}{"x": []interface{}{649.0, 200.0}}, "x")
		require.Empty(t, errMsg)
		assert.Equal(t, contfrac.Ratio(649, 200), v)
	})

	t.Run("Object becomes ratio", func(t *testing.T) {
		v, errMsg := getValue(map[string]interface{}{
			"x": map[string]interface{}{"numerator": 415.0, "denominator": -93.0},
		}, "x")
		require.Empty(t, errMsg)
		assert.Equal(t, contfrac.Ratio(415, -93), v)
	})

	t.Run("Pair with fractional element rejected", func(t *testing.T) {
		_, errMsg := getValue(map[string]interface{}{"x": []interface{}{1.5, 2.0}}, "x")
		assert.NotEmpty(t, errMsg)
	})

	t.Run("Pair with wrong arity rejected", func(t *testing.T) {
		_, errMsg := getValue(map[string]interface{}{"x": []interface{}{1.0}}, "x")
		assert.NotEmpty(t, errMsg)
	})

	t.Run("Non-numeric rejected", func(t *testing.T) {
		_, errMsg := getValue(map[string]interface{}{"x": "hello"}, "x")
		assert.NotEmpty(t, errMsg)
	})

	t.Run("Missing key reported", func(t *testing.T) {
		_, errMsg := getValue(map[string]interface{}{}, "x")
		assert.NotEmpty(t, errMsg)
	})
}

func TestGetNumbers(t *testing.T) {
	nums, ok := getNumbers(map[string]interface{}{
		"coefficients": []interface{}{1, 2.5, int64(3)},
	}, "coefficients")
	require.True(t, ok)
	assert.Equal(t, []float64{1, 2.5, 3}, nums)

	_, ok = getNumbers(map[string]interface{}{
		"coefficients": []interface{}{1.0, "two"},
	}, "coefficients")
	assert.False(t, ok)

	_, ok = getNumbers(map[string]interface{}{}, "coefficients")
	assert.False(t, ok)
}
