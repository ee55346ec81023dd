package matrix

import "math"

// Complex is the small complex-number abstraction spec.md §9 calls
// for: AC stamping and the complex solver work with it instead of
// Go's built-in complex128 so division can guard against a zero
// denominator explicitly.
type Complex struct {
	Re, Im float64
}

func (a Complex) Add(b Complex) Complex {
	return Complex{a.Re + b.Re, a.Im + b.Im}
}

func (a Complex) Sub(b Complex) Complex {
	return Complex{a.Re - b.Re, a.Im - b.Im}
}

func (a Complex) Mul(b Complex) Complex {
	return Complex{
		Re: a.Re*b.Re - a.Im*b.Im,
		Im: a.Re*b.Im + a.Im*b.Re,
	}
}

// Div returns a/b. If b is (numerically) zero it returns the zero
// complex rather than Inf/NaN.
func (a Complex) Div(b Complex) Complex {
	denom := b.Re*b.Re + b.Im*b.Im
	if denom < 1e-300 {
		return Complex{}
	}
	return Complex{
		Re: (a.Re*b.Re + a.Im*b.Im) / denom,
		Im: (a.Im*b.Re - a.Re*b.Im) / denom,
	}
}

func (a Complex) Magnitude() float64 {
	return math.Hypot(a.Re, a.Im)
}

func (a Complex) Phase() float64 {
	return math.Atan2(a.Im, a.Re)
}
