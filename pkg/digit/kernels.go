package digit

// Kernels operate on canonical Vecs and return canonical Vecs. The
// result slice z may alias one of the inputs only where a method
// documents it; callers that need the inputs afterwards pass a
// distinct z.

// Cmp compares x and y, returning -1 if x < y, 0 if x == y, +1 if
// x > y. Length decides first; equal lengths scan from the most
// significant limb down.
func Cmp(x, y Vec) int {
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return +1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return +1
		}
	}
	return 0
}

// Add sets z = x + y. z may alias x or y.
func Add(z, x, y Vec) Vec {
	if len(x) < len(y) {
		x, y = y, x
	}
	n := len(x)
	z = z.Make(n + 1)
	var carry uint64
	for i := 0; i < len(y); i++ {
		s := uint64(x[i]) + uint64(y[i]) + carry
		z[i] = uint32(s % Base)
		carry = s / Base
	}
	for i := len(y); i < n; i++ {
		s := uint64(x[i]) + carry
		z[i] = uint32(s % Base)
		carry = s / Base
	}
	z[n] = uint32(carry)
	return z.Norm()
}

// Sub sets z = x - y. It panics if x < y: the caller owns the
// precondition and a violation is a contract breach, not an error
// value. z may alias x or y.
func Sub(z, x, y Vec) Vec {
	if len(x) < len(y) {
		panic("digit: subtraction underflow")
	}
	z = z.Make(len(x))
	var borrow int64
	for i := 0; i < len(y); i++ {
		d := int64(x[i]) - int64(y[i]) - borrow
		borrow = 0
		if d < 0 {
			d += Base
			borrow = 1
		}
		z[i] = uint32(d)
	}
	for i := len(y); i < len(x); i++ {
		d := int64(x[i]) - borrow
		borrow = 0
		if d < 0 {
			d += Base
			borrow = 1
		}
		z[i] = uint32(d)
	}
	if borrow != 0 {
		panic("digit: subtraction underflow")
	}
	return z.Norm()
}

// ShlLimbs sets z = x * Base^k by prepending k zero limbs.
func ShlLimbs(z, x Vec, k int) Vec {
	if len(x) == 0 {
		return z[:0]
	}
	z = z.Make(len(x) + k)
	copy(z[k:], x)
	for i := 0; i < k; i++ {
		z[i] = 0
	}
	return z
}

// ShrLimbs sets z = x / Base^k (truncating). z may alias x.
func ShrLimbs(z, x Vec, k int) Vec {
	if k >= len(x) {
		return z[:0]
	}
	z = z.Make(len(x) - k)
	copy(z, x[k:])
	return z.Norm()
}

// MulAddW sets z = x*s + r for scalars 0 <= s, r < Base. z may alias
// x.
func MulAddW(z, x Vec, s, r uint32) Vec {
	z = z.Make(len(x) + 1)
	carry := uint64(r)
	for i, xi := range x {
		p := uint64(xi)*uint64(s) + carry
		z[i] = uint32(p % Base)
		carry = p / Base
	}
	z[len(x)] = uint32(carry)
	return z.Norm()
}

// DivW sets z = x / s and returns the remainder, for 0 < s < Base.
// z may alias x.
func DivW(z, x Vec, s uint32) (Vec, uint32) {
	if s == 0 {
		panic("digit: division by zero")
	}
	z = z.Make(len(x))
	var rem uint64
	for i := len(x) - 1; i >= 0; i-- {
		cur := rem*Base + uint64(x[i])
		z[i] = uint32(cur / uint64(s))
		rem = cur % uint64(s)
	}
	return z.Norm(), uint32(rem)
}
