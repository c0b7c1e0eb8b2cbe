package digit

// BasicMul sets z = x * y using the schoolbook O(n*m) algorithm.
// z must not alias x or y.
func BasicMul(z, x, y Vec) Vec {
	if len(x) == 0 || len(y) == 0 {
		return z[:0]
	}
	z = z.Make(len(x) + len(y))
	z.Clear()
	for i, yi := range y {
		if yi == 0 {
			continue
		}
		var carry uint64
		for j, xj := range x {
			p := uint64(xj)*uint64(yi) + uint64(z[i+j]) + carry
			z[i+j] = uint32(p % Base)
			carry = p / Base
		}
		z[i+len(x)] = uint32(carry)
	}
	return z.Norm()
}

// BasicDivMod computes q = u / v and r = u mod v by classical long
// division (Knuth algorithm D, rebased from a binary word to 10^9:
// the D1 normalization is a scalar multiply instead of a bit shift,
// everything else carries over limb for limb). v must be nonzero.
func BasicDivMod(u, v Vec) (q, r Vec) {
	if len(v) == 0 {
		panic("digit: division by zero")
	}
	if Cmp(u, v) < 0 {
		return nil, Vec(nil).Set(u)
	}
	if len(v) == 1 {
		q, rem := DivW(nil, u, v[0])
		return q, Vec(nil).SetUint64(uint64(rem))
	}

	n := len(v)
	m := len(u) - n

	// D1: normalize so the divisor's top limb is >= Base/2.
	d := uint32(Base / (uint64(v[n-1]) + 1))
	un := make(Vec, len(u)+1)
	var carry uint64
	for i, ui := range u {
		p := uint64(ui)*uint64(d) + carry
		un[i] = uint32(p % Base)
		carry = p / Base
	}
	un[len(u)] = uint32(carry)
	vn := make(Vec, n)
	carry = 0
	for i, vi := range v {
		p := uint64(vi)*uint64(d) + carry
		vn[i] = uint32(p % Base)
		carry = p / Base
	}

	q = make(Vec, m+1)
	for j := m; j >= 0; j-- {
		// D3: estimate the quotient limb from the top two limbs of
		// the partial remainder, then apply the two-limb correction
		// test. After the test qhat is at most one too large.
		u2 := uint64(un[j+n])*Base + uint64(un[j+n-1])
		qhat := u2 / uint64(vn[n-1])
		rhat := u2 % uint64(vn[n-1])
		for qhat >= Base || qhat*uint64(vn[n-2]) > rhat*Base+uint64(un[j+n-2]) {
			qhat--
			rhat += uint64(vn[n-1])
			if rhat >= Base {
				break
			}
		}

		// D4: multiply and subtract in one pass. k carries both the
		// product carry and the borrow.
		var k int64
		for i := 0; i < n; i++ {
			p := qhat * uint64(vn[i])
			t := int64(un[i+j]) - k - int64(p%Base)
			k = int64(p / Base)
			for t < 0 {
				t += Base
				k++
			}
			un[i+j] = uint32(t)
		}
		t := int64(un[j+n]) - k

		// D6: add back on the rare one-too-large estimate.
		if t < 0 {
			qhat--
			var c uint64
			for i := 0; i < n; i++ {
				s := uint64(un[i+j]) + uint64(vn[i]) + c
				un[i+j] = uint32(s % Base)
				c = s / Base
			}
			t += int64(c)
		}
		un[j+n] = uint32(t)
		q[j] = uint32(qhat)
	}

	// D8: un-normalize the remainder.
	r, _ = DivW(nil, un[:n].Norm(), d)
	return q.Norm(), r
}
