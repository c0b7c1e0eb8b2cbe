package dec

import (
	"math"
	"math/bits"

	"github.com/pkg/errors"

	"github.com/oisee/decbig/pkg/digit"
)

// Uint is an arbitrary-precision unsigned decimal integer. The zero
// value is the number zero and is ready to use. Operations never
// mutate their operands; results own fresh limb storage, so copies of
// a Uint stay independent.
type Uint struct {
	abs digit.Vec
}

// NewUint returns v as a Uint.
func NewUint(v uint64) Uint {
	return Uint{abs: digit.Vec(nil).SetUint64(v)}
}

// UintFromInt64 converts v, failing with ErrRange when v is negative.
func UintFromInt64(v int64) (Uint, error) {
	if v < 0 {
		return Uint{}, errors.Wrapf(ErrRange, "negative value %d", v)
	}
	return NewUint(uint64(v)), nil
}

// UintFromFloat64 returns floor(f). NaN, infinities and negative
// values fail with ErrRange. The mantissa is extracted exactly and
// scaled into limbs by powers of two, so every representable integer
// converts exactly.
func UintFromFloat64(f float64) (Uint, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Uint{}, errors.Wrap(ErrRange, "not a finite value")
	}
	if f < 0 {
		return Uint{}, errors.Wrapf(ErrRange, "negative value %g", f)
	}
	if f < 1 {
		return Uint{}, nil
	}
	mant, exp := math.Frexp(f) // f = mant * 2^exp, mant in [0.5, 1)
	m53 := uint64(mant * (1 << 53))
	e := exp - 53
	z := digit.Vec(nil).SetUint64(m53)
	for e > 0 {
		k := e
		if k > 29 { // keep the scalar below Base
			k = 29
		}
		z = digit.MulAddW(z, z, 1<<k, 0)
		e -= k
	}
	for e < 0 {
		k := -e
		if k > 29 {
			k = 29
		}
		z, _ = digit.DivW(z, z, 1<<k) // truncation is floor: z >= 0
		e += k
	}
	return Uint{abs: z}, nil
}

// ParseUint parses a decimal digit string (leading zeros accepted).
func ParseUint(s string) (Uint, error) {
	v, err := parseVec(s)
	if err != nil {
		return Uint{}, errors.Wrapf(err, "parse %q", clip(s))
	}
	return Uint{abs: v}, nil
}

func clip(s string) string {
	const max = 32
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}

// Cmp returns -1, 0 or +1 as x is less than, equal to or greater
// than y.
func (x Uint) Cmp(y Uint) int { return digit.Cmp(x.abs, y.abs) }

// IsZero reports whether x is zero.
func (x Uint) IsZero() bool { return len(x.abs) == 0 }

// Sign returns 0 when x is zero and 1 otherwise.
func (x Uint) Sign() int {
	if len(x.abs) == 0 {
		return 0
	}
	return 1
}

// Add returns x + y.
func (x Uint) Add(y Uint) Uint {
	return Uint{abs: digit.Add(nil, x.abs, y.abs)}
}

// Sub returns x - y. It panics with ErrUnderflow when x < y; the
// caller owns the precondition.
func (x Uint) Sub(y Uint) Uint {
	if digit.Cmp(x.abs, y.abs) < 0 {
		panic(ErrUnderflow)
	}
	return Uint{abs: digit.Sub(nil, x.abs, y.abs)}
}

// Mul returns x * y.
func (x Uint) Mul(y Uint) Uint {
	checkSize(x.abs)
	checkSize(y.abs)
	return Uint{abs: mul(nil, x.abs, y.abs)}
}

// DivMod returns the quotient and remainder of x / y. It panics with
// ErrDivisionByZero when y is zero.
func (x Uint) DivMod(y Uint) (Uint, Uint) {
	checkSize(x.abs)
	checkSize(y.abs)
	q, r := divmod(x.abs, y.abs)
	return Uint{abs: q}, Uint{abs: r}
}

// Div returns x / y.
func (x Uint) Div(y Uint) Uint {
	q, _ := x.DivMod(y)
	return q
}

// Mod returns x mod y.
func (x Uint) Mod(y Uint) Uint {
	_, r := x.DivMod(y)
	return r
}

// Inc adds one in place. The fresh result storage keeps copies of the
// old value independent.
func (x *Uint) Inc() {
	x.abs = digit.Add(nil, x.abs, one)
}

// Dec subtracts one in place, panicking with ErrUnderflow at zero.
func (x *Uint) Dec() {
	if len(x.abs) == 0 {
		panic(ErrUnderflow)
	}
	x.abs = digit.Sub(nil, x.abs, one)
}

// Uint64 reduces x modulo 2^64 (explicit narrowing).
func (x Uint) Uint64() uint64 { return x.abs.Uint64() }

// Uint64Exact returns x as a uint64 and whether the conversion was
// lossless.
func (x Uint) Uint64Exact() (uint64, bool) {
	// 2^64-1 is 20 digits, so three limbs can already overflow.
	if len(x.abs) > 3 {
		return 0, false
	}
	var v uint64
	for i := len(x.abs) - 1; i >= 0; i-- {
		hi, lo := bits.Mul64(v, digit.Base)
		lo, c := bits.Add64(lo, uint64(x.abs[i]), 0)
		if hi != 0 || c != 0 {
			return 0, false
		}
		v = lo
	}
	return v, true
}

// Float64 returns the nearest double to x (best effort; huge values
// saturate to +Inf).
func (x Uint) Float64() float64 {
	var f float64
	for i := len(x.abs) - 1; i >= 0; i-- {
		f = f*digit.Base + float64(x.abs[i])
	}
	return f
}

// String returns the decimal representation of x.
func (x Uint) String() string {
	return string(appendVec(nil, x.abs))
}

// AppendText appends the decimal representation of x to dst and
// returns the extended slice. This is the zero-copy emission path for
// callers that manage their own buffers.
func (x Uint) AppendText(dst []byte) []byte {
	return appendVec(dst, x.abs)
}

// NumDigits returns the number of significant decimal digits
// (zero for zero).
func (x Uint) NumDigits() int { return x.abs.Digits() }
