package contfrac

// DefaultMaxGrade bounds a convergent sequence when the caller has no
// stronger requirement.
const DefaultMaxGrade = 10

// Convergent is one rational approximation of a value. Grade k is its
// zero-based index in the approximation sequence; higher grades approximate
// better.
type Convergent struct {
	Num int64 `json:"numerator"`
	Den int64 `json:"denominator"`
}

// ConvergentSeq is a lazy cursor over successive convergents, driven by the
// continuant recurrence
//
//	h(n) = a(n)*h(n-1) + h(n-2)
//	k(n) = a(n)*k(n-1) + k(n-2)
//
// over the coefficient expansion of the input. Like Expansion it is
// single-consumer and non-restartable.
type ConvergentSeq struct {
	exp        *Expansion
	num2, num1 int64
	den2, den1 int64
}

// Convergents begins the convergent sequence of x up to grade maxGrade
// inclusive, so at most maxGrade+1 pairs are produced. Exact inputs whose
// expansion terminates early produce fewer.
func Convergents(x Value, maxGrade int) (*ConvergentSeq, error) {
	exp, err := Expand(x, maxGrade+1)
	if err != nil {
		return nil, err
	}
	return &ConvergentSeq{
		exp:  exp,
		num2: 0, num1: 1,
		den2: 1, den1: 0,
	}, nil
}

// Next returns the next convergent, or false when the underlying expansion
// is exhausted.
func (s *ConvergentSeq) Next() (Convergent, bool) {
	c, ok := s.exp.Next()
	if !ok {
		return Convergent{}, false
	}
	num := c*s.num1 + s.num2
	den := c*s.den1 + s.den2
	s.num2, s.num1 = s.num1, num
	s.den2, s.den1 = s.den1, den
	return Convergent{Num: num, Den: den}, true
}

// ConvergentAt returns the single convergent of x at the given grade,
// draining the sequence up to it. A grade the coefficient expansion cannot
// reach (possible for exact inputs, whose expansions terminate) returns
// ErrGradeOutOfRange rather than a lower-grade approximation.
func ConvergentAt(x Value, grade int) (Convergent, error) {
	seq, err := Convergents(x, grade)
	if err != nil {
		return Convergent{}, err
	}
	produced := 0
	var last Convergent
	for {
		c, ok := seq.Next()
		if !ok {
			break
		}
		last = c
		produced++
	}
	if produced < grade+1 {
		return Convergent{}, ErrGradeOutOfRange
	}
	return last, nil
}
