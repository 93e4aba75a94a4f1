package contfrac

import "strconv"

type kind uint8

const (
	kindInvalid kind = iota
	kindInt
	kindFloat
	kindRatio
)

// Value is the closed set of numeric representations an expansion accepts:
// a signed integer, a floating-point number, or a ratio of two integers.
// The zero Value is invalid and rejected with ErrUnsupportedInput.
type Value struct {
	kind kind
	i    int64
	f    float64
	num  int64
	den  int64
}

// Int wraps a signed integer. Its expansion is the degenerate single-term
// sequence [v].
func Int(v int64) Value {
	return Value{kind: kindInt, i: v}
}

// Float wraps a floating-point number.
func Float(v float64) Value {
	return Value{kind: kindFloat, f: v}
}

// Ratio wraps the exact rational num/den. A denominator of zero is rejected
// at expansion time with ErrZeroDenominator.
func Ratio(num, den int64) Value {
	return Value{kind: kindRatio, num: num, den: den}
}

// Float64 returns the value as a float64, losing exactness for ratios whose
// parts exceed the float64 mantissa.
func (v Value) Float64() float64 {
	switch v.kind {
	case kindInt:
		return float64(v.i)
	case kindFloat:
		return v.f
	case kindRatio:
		return float64(v.num) / float64(v.den)
	default:
		return 0
	}
}

// String renders the value for logs and error messages.
func (v Value) String() string {
	switch v.kind {
	case kindInt:
		return strconv.FormatInt(v.i, 10)
	case kindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case kindRatio:
		return strconv.FormatInt(v.num, 10) + "/" + strconv.FormatInt(v.den, 10)
	default:
		return "<invalid>"
	}
}

func (v Value) validate() error {
	switch v.kind {
	case kindInt, kindFloat:
		return nil
	case kindRatio:
		if v.den == 0 {
			return ErrZeroDenominator
		}
		return nil
	default:
		return ErrUnsupportedInput
	}
}
