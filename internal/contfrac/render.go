package contfrac

import (
	"strconv"
	"strings"
)

// ExprOptions controls expression rendering. The zero value produces the
// spaced, integer-literal form "a + 1/(b + 1/(c))".
type ExprOptions struct {
	// Compact drops the spaces around the plus signs.
	Compact bool

	// ForceFloats renders the reciprocal literal as "1.0/(" instead of
	// "1/(" so languages with truncating integer division still evaluate
	// the string to a real number.
	ForceFloats bool
}

// Expression renders a coefficient sequence as a nested arithmetic
// expression ready to be fed to a calculator or interpreter. An empty
// sequence renders as "" and a single term as its bare string form. No
// numeric evaluation or validation happens here.
func Expression[T Coefficient](coefficients []T, opts ExprOptions) string {
	if len(coefficients) == 0 {
		return ""
	}

	parts := make([]string, len(coefficients))
	for i, c := range coefficients {
		parts[i] = formatCoefficient(c)
	}

	joiner := " + "
	if opts.Compact {
		joiner = "+"
	}
	if opts.ForceFloats {
		joiner += "1.0/("
	} else {
		joiner += "1/("
	}

	return strings.Join(parts, joiner) + strings.Repeat(")", len(coefficients)-1)
}

// formatCoefficient renders integers in full and floats in their shortest
// round-trip decimal form (1.1 stays "1.1", never "1.1000000000000001").
func formatCoefficient[T Coefficient](c T) string {
	switch v := any(c).(type) {
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return strconv.FormatFloat(float64(c), 'f', -1, 64)
	}
}
