// Package digit implements the limb-level representation and the
// schoolbook kernels of the decimal bignum engine.
//
// A number is a little-endian slice of base-10^9 limbs: index 0 is the
// least significant limb. Each limb holds exactly nine decimal digits
// in a uint32, so a widened uint64 accumulator has room for a full
// limb product plus carry. The canonical representation of zero is the
// empty (or nil) slice; no kernel ever returns a trailing zero limb.
package digit

// Base is the limb radix. A limb holds nine decimal digits.
const (
	Base          = 1_000_000_000
	DigitsPerLimb = 9
)

// Vec is an unsigned integer
//
//	x = x[n-1]*Base^(n-1) + ... + x[1]*Base + x[0]
//
// stored least-significant limb first. Kernels may produce
// denormalized intermediates but always normalize before returning.
type Vec []uint32

// Norm strips trailing zero limbs so that either len == 0 or the top
// limb is nonzero.
func (z Vec) Norm() Vec {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[:i]
}

// Make returns a slice of length n, reusing z's storage when it is
// large enough. Fresh allocations carry a few limbs of slack so a
// slightly larger reuse does not reallocate, and at least double z's
// old capacity so repeated growth is geometric.
func (z Vec) Make(n int) Vec {
	if n <= cap(z) {
		return z[:n]
	}
	const extra = 4
	c := n + extra
	if g := 2 * cap(z); g > c {
		c = g
	}
	return make(Vec, n, c)
}

// Set copies x into z, reusing z's storage.
func (z Vec) Set(x Vec) Vec {
	z = z.Make(len(x))
	copy(z, x)
	return z
}

// SetUint64 sets z to v via repeated division by Base.
func (z Vec) SetUint64(v uint64) Vec {
	z = z[:0]
	for v > 0 {
		z = append(z, uint32(v%Base))
		v /= Base
	}
	return z
}

// Uint64 reduces x modulo 2^64.
func (x Vec) Uint64() uint64 {
	var v uint64
	for i := len(x) - 1; i >= 0; i-- {
		v = v*Base + uint64(x[i])
	}
	return v
}

// IsZero reports whether x is the canonical zero.
func (x Vec) IsZero() bool { return len(x) == 0 }

// Clear zeroes all limbs in place.
func (z Vec) Clear() {
	for i := range z {
		z[i] = 0
	}
}

// Digits returns the number of significant decimal digits of x.
// Zero has zero digits.
func (x Vec) Digits() int {
	n := len(x)
	if n == 0 {
		return 0
	}
	d := (n - 1) * DigitsPerLimb
	for top := x[n-1]; top > 0; top /= 10 {
		d++
	}
	return d
}
