package contfrac

import "errors"

var (
	// ErrNonPositiveMaxLen reports a non-positive coefficient bound.
	ErrNonPositiveMaxLen = errors.New("contfrac: maxlen must be positive")

	// ErrUnsupportedInput reports a Value that carries none of the
	// recognized numeric representations (the zero Value).
	ErrUnsupportedInput = errors.New("contfrac: unsupported input value")

	// ErrZeroDenominator reports a Ratio with denominator zero.
	ErrZeroDenominator = errors.New("contfrac: ratio denominator is zero")

	// ErrDivisionByZero reports a zero partial sum during evaluation,
	// e.g. the undefined continued fraction [1, 0].
	ErrDivisionByZero = errors.New("contfrac: division by zero in evaluation")

	// ErrGradeOutOfRange reports a convergent grade beyond the length of a
	// naturally terminating coefficient sequence.
	ErrGradeOutOfRange = errors.New("contfrac: grade exceeds available coefficients")
)
