package contfrac

import (
	"fmt"
	"math"

	"github.com/quotientlabs/contfrac/internal/contfrac"
	"github.com/quotientlabs/contfrac/internal/types"
)

// success creates a successful result
func success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// failure creates a failed result
func failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// maxSafeInteger is the largest float64 that still identifies an integer
// unambiguously.
const maxSafeInteger = 1 << 53

// asFloat coerces a decoded JSON value to float64
func asFloat(val interface{}) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// asInt coerces a decoded JSON value to an integer, rejecting fractional
// numbers
func asInt(val interface{}) (int64, bool) {
	switch v := val.(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	default:
		f, ok := asFloat(val)
		if !ok || f != math.Trunc(f) || math.Abs(f) > maxSafeInteger {
			return 0, false
		}
		return int64(f), true
	}
}

// getValue decodes the dynamic numeric input union for key: a plain number,
// a [numerator, denominator] pair, or a {numerator, denominator} object.
// Whole numbers become exact integer inputs; anything fractional stays a
// float. The returned string is empty on success and a failure message
// otherwise.
func getValue(params map[string]interface{}, key string) (contfrac.Value, string) {
	raw, ok := params[key]
	if !ok {
		return contfrac.Value{}, fmt.Sprintf("%s parameter required", key)
	}

	switch v := raw.(type) {
	case []interface{}:
		if len(v) != 2 {
			return contfrac.Value{}, fmt.Sprintf("%s pair must have exactly two elements", key)
		}
		num, okNum := asInt(v[0])
		den, okDen := asInt(v[1])
		if !okNum || !okDen {
			return contfrac.Value{}, fmt.Sprintf("%s pair elements must be integers", key)
		}
		return contfrac.Ratio(num, den), ""
	case map[string]interface{}:
		num, okNum := asInt(v["numerator"])
		den, okDen := asInt(v["denominator"])
		if !okNum || !okDen {
			return contfrac.Value{}, fmt.Sprintf("%s ratio requires integer numerator and denominator", key)
		}
		return contfrac.Ratio(num, den), ""
	default:
		if i, ok := asInt(raw); ok {
			return contfrac.Int(i), ""
		}
		if f, ok := asFloat(raw); ok {
			return contfrac.Float(f), ""
		}
		return contfrac.Value{}, fmt.Sprintf("%s must be a number, [num,den] pair or {numerator,denominator} ratio", key)
	}
}

// getNumbers extracts an array of numbers, rejecting non-numeric elements
func getNumbers(params map[string]interface{}, key string) ([]float64, bool) {
	arr, ok := params[key].([]interface{})
	if !ok {
		return nil, false
	}

	numbers := make([]float64, 0, len(arr))
	for _, v := range arr {
		f, ok := asFloat(v)
		if !ok {
			return nil, false
		}
		numbers = append(numbers, f)
	}
	return numbers, true
}

// getInt extracts a required integer parameter
func getInt(params map[string]interface{}, key string) (int, bool) {
	raw, ok := params[key]
	if !ok {
		return 0, false
	}
	i, ok := asInt(raw)
	if !ok {
		return 0, false
	}
	return int(i), true
}

// getIntDefault extracts an optional integer parameter
func getIntDefault(params map[string]interface{}, key string, def int) (int, bool) {
	if _, present := params[key]; !present {
		return def, true
	}
	return getInt(params, key)
}

// getBoolDefault extracts an optional boolean parameter
func getBoolDefault(params map[string]interface{}, key string, def bool) bool {
	if v, ok := params[key].(bool); ok {
		return v
	}
	return def
}
