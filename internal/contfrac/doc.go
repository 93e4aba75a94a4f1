// Package contfrac computes continued-fraction representations of numbers
// and their rational approximations (convergents).
//
// A continued fraction expresses a value x as a sequence of integer
// coefficients [a0, a1, a2, ...]:
//
//	x = a0 + 1/(a1 + 1/(a2 + ...))
//
// Components:
//   - Expand / Coefficients: coefficient generation for ints, floats and ratios
//   - Evaluate: backward-recurrence evaluation of a finite coefficient sequence
//   - Expression: rendering as a nested arithmetic expression string
//   - Convergents / ConvergentAt: successive rational approximations via the
//     continuant recurrence
//
// Exact inputs (Int, Ratio) expand through the Euclidean algorithm and
// round-trip exactly through Evaluate. Float inputs expand through a
// controlled-precision iteration: rounding errors may make the coefficients
// differ from the hand-computed expansion, although the evaluated value stays
// within the iteration's stopping tolerance. Prefer Ratio for exact results.
//
// Everything in this package is a pure function over immutable inputs; values
// and cursors hold no shared state, so independent calls are safe from
// concurrent goroutines.
package contfrac
