package dec

import (
	"github.com/pkg/errors"

	"github.com/oisee/decbig/pkg/digit"
)

// Int is a signed arbitrary-precision decimal integer: a sign and a
// magnitude. Zero is always non-negative, so there is exactly one
// representation per value. Division truncates toward zero and the
// remainder takes the dividend's sign (C semantics).
type Int struct {
	neg bool
	abs digit.Vec
}

// NewInt returns v as an Int.
func NewInt(v int64) Int {
	if v >= 0 {
		return Int{abs: digit.Vec(nil).SetUint64(uint64(v))}
	}
	// Negate in unsigned space so MinInt64 stays exact.
	return Int{neg: true, abs: digit.Vec(nil).SetUint64(-uint64(v))}
}

// IntFromUint returns x as a non-negative Int.
func IntFromUint(x Uint) Int {
	return Int{abs: digit.Vec(nil).Set(x.abs)}
}

// ParseInt parses an optionally signed decimal string: an optional
// leading '+' or '-' followed by digits.
func ParseInt(s string) (Int, error) {
	orig := s
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	v, err := parseVec(s)
	if err != nil {
		return Int{}, errors.Wrapf(err, "parse %q", clip(orig))
	}
	if len(v) == 0 {
		neg = false // no negative zero
	}
	return Int{neg: neg, abs: v}, nil
}

// Sign returns -1, 0 or +1.
func (x Int) Sign() int {
	switch {
	case len(x.abs) == 0:
		return 0
	case x.neg:
		return -1
	}
	return 1
}

// IsZero reports whether x is zero.
func (x Int) IsZero() bool { return len(x.abs) == 0 }

// Abs returns the magnitude of x.
func (x Int) Abs() Uint {
	return Uint{abs: digit.Vec(nil).Set(x.abs)}
}

// Neg returns -x.
func (x Int) Neg() Int {
	if len(x.abs) == 0 {
		return Int{}
	}
	return Int{neg: !x.neg, abs: digit.Vec(nil).Set(x.abs)}
}

// Cmp returns -1, 0 or +1 as x is less than, equal to or greater
// than y.
func (x Int) Cmp(y Int) int {
	if x.neg != y.neg {
		if x.neg {
			return -1
		}
		return +1
	}
	c := digit.Cmp(x.abs, y.abs)
	if x.neg {
		return -c
	}
	return c
}

// Add returns x + y.
func (x Int) Add(y Int) Int {
	if x.neg == y.neg {
		return makeInt(x.neg, digit.Add(nil, x.abs, y.abs))
	}
	// Opposite signs: subtract the smaller magnitude from the larger;
	// the result takes the sign of the larger.
	switch digit.Cmp(x.abs, y.abs) {
	case 0:
		return Int{}
	case +1:
		return makeInt(x.neg, digit.Sub(nil, x.abs, y.abs))
	}
	return makeInt(y.neg, digit.Sub(nil, y.abs, x.abs))
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int {
	return x.Add(Int{neg: !y.neg && len(y.abs) > 0, abs: y.abs})
}

// Mul returns x * y.
func (x Int) Mul(y Int) Int {
	checkSize(x.abs)
	checkSize(y.abs)
	return makeInt(x.neg != y.neg, mul(nil, x.abs, y.abs))
}

// DivMod returns the quotient and remainder of x / y with truncation
// toward zero; the remainder's sign follows the dividend. Panics with
// ErrDivisionByZero when y is zero.
func (x Int) DivMod(y Int) (Int, Int) {
	checkSize(x.abs)
	checkSize(y.abs)
	qm, rm := divmod(x.abs, y.abs)
	q := makeInt(x.neg != y.neg, qm)
	r := makeInt(x.neg, rm)
	return q, r
}

// Div returns the quotient of x / y, truncated toward zero.
func (x Int) Div(y Int) Int {
	q, _ := x.DivMod(y)
	return q
}

// Mod returns the remainder of x / y; its sign follows x.
func (x Int) Mod(y Int) Int {
	_, r := x.DivMod(y)
	return r
}

// Int64 reduces x modulo 2^64 and reapplies the sign (explicit
// narrowing, exact when x fits).
func (x Int) Int64() int64 {
	v := int64(x.abs.Uint64())
	if x.neg {
		v = -v
	}
	return v
}

// String returns the decimal representation, with a leading '-' for
// negative values and no '+' ever.
func (x Int) String() string {
	return string(x.AppendText(nil))
}

// AppendText appends the decimal representation of x to dst.
func (x Int) AppendText(dst []byte) []byte {
	if x.neg {
		dst = append(dst, '-')
	}
	return appendVec(dst, x.abs)
}

// makeInt builds a canonical Int: zero magnitude forces the positive
// sign.
func makeInt(neg bool, abs digit.Vec) Int {
	if len(abs) == 0 {
		return Int{}
	}
	return Int{neg: neg, abs: abs}
}
