package contfrac

// Coefficient constrains the numeric types a coefficient sequence may carry.
type Coefficient interface {
	~int | ~int64 | ~float64
}

// Evaluate folds a finite coefficient sequence back into its value:
// c[0] + 1/(c[1] + 1/(c[2] + ...)). An empty sequence evaluates to 0 by
// convention. The input slice is never mutated.
//
// Evaluating a sequence whose tail sums to zero at any depth, such as
// [1, 0], returns ErrDivisionByZero: the continued-fraction syntax marks
// that value as undefined.
func Evaluate[T Coefficient](coefficients []T) (float64, error) {
	if len(coefficients) == 0 {
		return 0, nil
	}
	acc := 0.0
	for i := len(coefficients) - 1; i >= 1; i-- {
		d := float64(coefficients[i]) + acc
		if d == 0 {
			return 0, ErrDivisionByZero
		}
		acc = 1 / d
	}
	return float64(coefficients[0]) + acc, nil
}
