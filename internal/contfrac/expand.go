package contfrac

import (
	"gonum.org/v1/gonum/floats/scalar"
)

const (
	// DefaultMaxLen bounds an expansion when the caller has no stronger
	// requirement. Float expansions are not guaranteed to terminate on
	// their own, so the bound must always be positive.
	DefaultMaxLen = 30

	// floatDigits is the decimal precision used to extract the integer
	// part in the float branch. Rounding rule: half away from zero, then
	// truncation toward zero.
	floatDigits = 10

	// floatTol is the absolute tolerance on the fractional part that
	// terminates a float expansion.
	floatTol = 1e-10
)

// Expansion is a lazy cursor over the coefficients of a continued fraction.
// It is single-consumer and non-restartable: once Next returns false it
// stays exhausted. Obtain a fresh run by calling Expand again.
type Expansion struct {
	// exact branch
	exact    bool
	num, den int64

	// float branch
	real float64
	frac float64

	remaining int
}

// Expand begins the coefficient expansion of x, producing at most maxLen
// terms. Exact inputs terminate naturally once the Euclidean remainder
// reaches zero; float inputs stop when the fractional part falls within
// tolerance or the bound is hit.
func Expand(x Value, maxLen int) (*Expansion, error) {
	if maxLen <= 0 {
		return nil, ErrNonPositiveMaxLen
	}
	if err := x.validate(); err != nil {
		return nil, err
	}

	switch x.kind {
	case kindInt:
		// Degenerate pair (x, 1): exactly one term.
		return &Expansion{exact: true, num: x.i, den: 1, remaining: 1}, nil
	case kindRatio:
		return &Expansion{exact: true, num: x.num, den: x.den, remaining: maxLen}, nil
	default:
		// Seed the fractional part above tolerance so the first Next
		// always produces a term.
		return &Expansion{real: x.f, frac: 1, remaining: maxLen}, nil
	}
}

// Next returns the next coefficient, or false when the expansion is
// exhausted.
func (e *Expansion) Next() (int64, bool) {
	if e.remaining <= 0 {
		return 0, false
	}
	if e.exact {
		return e.nextExact()
	}
	return e.nextFloat()
}

func (e *Expansion) nextExact() (int64, bool) {
	if e.den == 0 {
		return 0, false
	}
	q := floorDiv(e.num, e.den)
	e.num -= q * e.den
	e.num, e.den = e.den, e.num
	e.remaining--
	return q, true
}

func (e *Expansion) nextFloat() (int64, bool) {
	if scalar.EqualWithinAbs(e.frac, 0, floatTol) {
		return 0, false
	}
	q := int64(scalar.Round(e.real, floatDigits))
	e.frac = e.real - float64(q)
	e.real = 1.0 / e.frac
	e.remaining--
	return q, true
}

// Coefficients materializes the expansion of x into a slice of at most
// maxLen terms.
func Coefficients(x Value, maxLen int) ([]int64, error) {
	exp, err := Expand(x, maxLen)
	if err != nil {
		return nil, err
	}
	coeffs := make([]int64, 0, min(maxLen, DefaultMaxLen))
	for {
		c, ok := exp.Next()
		if !ok {
			return coeffs, nil
		}
		coeffs = append(coeffs, c)
	}
}

// floorDiv divides truncating toward negative infinity, the convention the
// exact branch relies on to keep every coefficient after the first positive.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
