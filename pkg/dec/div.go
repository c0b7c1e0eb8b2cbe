package dec

import (
	"github.com/oisee/decbig/pkg/digit"
)

var one = digit.Vec{1}

// divmod computes q = a / b and r = a mod b with 0 <= r < b. Small
// divisors take the schoolbook path; above the crossover a fixed-point
// reciprocal of b is computed by Newton iteration and division reduces
// to two big multiplies plus correction.
func divmod(a, b digit.Vec) (q, r digit.Vec) {
	if len(b) == 0 {
		panic(ErrDivisionByZero)
	}
	if digit.Cmp(a, b) < 0 {
		return nil, digit.Vec(nil).Set(a)
	}
	if len(b) == 1 {
		q, rem := digit.DivW(nil, a, b[0])
		return q, digit.Vec(nil).SetUint64(uint64(rem))
	}
	// a >= b here, so len(b) is the smaller operand length.
	if len(b) <= schoolbookThreshold {
		return digit.BasicDivMod(a, b)
	}
	return newtonDivMod(a, b)
}

// newtonDivMod divides via a fixed-point reciprocal R ~= Base^F / b
// with F = len(b) + prec. R is kept on the floor side of the true
// reciprocal, so the trial quotient never overshoots and at most two
// increment corrections are needed.
func newtonDivMod(a, b digit.Vec) (q, r digit.Vec) {
	n, m := len(a), len(b)
	prec := n - m + 2
	f := m + prec

	R := reciprocal(b, f)

	// q0 = floor(a * R / Base^F)
	t := mul(nil, a, R)
	q = digit.ShrLimbs(nil, t, f)

	// r0 = a - q0*b, then the two correction loops. The
	// decrement loop is unreachable with a floor-side reciprocal but
	// kept as a guard against a future seeding change.
	p := mul(nil, q, b)
	for digit.Cmp(p, a) > 0 {
		q = digit.Sub(q, q, one)
		p = digit.Sub(p, p, b)
	}
	r = digit.Sub(nil, a, p)
	for digit.Cmp(r, b) >= 0 {
		q = digit.Add(q, q, one)
		r = digit.Sub(r, r, b)
	}
	return q, r
}

// reciprocal returns R <= floor(Base^f / b), accurate in its top
// prec+1 limbs (f = len(b) + prec). The seed comes from a double of
// b's top three limbs (about 15 significant digits); each Newton step
//
//	R <- R * (2*Base^f - b*R) / Base^f
//
// doubles the number of valid digits, and the truncating shift keeps
// every iterate at or below the true reciprocal after the first step.
func reciprocal(b digit.Vec, f int) digit.Vec {
	m := len(b)

	// Seed: b / Base^(m-1) ~= df in [1, Base), so
	// Base^f / b ~= (Base/df) * Base^(f-m) with Base/df in (1, Base].
	df := float64(b[m-1])
	df += float64(b[m-2]) / digit.Base
	if m >= 3 {
		df += float64(b[m-3]) / (digit.Base * float64(digit.Base))
	}
	g := float64(digit.Base) / df
	seed := uint64(g * digit.Base) // two limbs of Base/df, scaled by Base
	R := digit.ShlLimbs(nil, digit.Vec(nil).SetUint64(seed), f-m-1)

	twoBF := make(digit.Vec, f+1)
	twoBF[f] = 2

	valid := 8 // seed >= Base, so its integer truncation keeps >= 9 digits
	need := (f - m + 1) * digit.DigitsPerLimb
	for valid < need {
		t := mul(nil, b, R)           // b*R <= 2*Base^f
		e := digit.Sub(nil, twoBF, t) // 2*Base^f - b*R
		R = mul(nil, R, e)
		R = digit.ShrLimbs(R, R, f)   // truncate back to scale
		valid = 2*valid - 1           // quadratic, minus truncation slack
	}
	return R
}
