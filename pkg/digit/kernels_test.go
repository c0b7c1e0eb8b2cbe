package digit

import (
	"math/big"
	"math/rand"
	"testing"
)

// toBig converts a Vec to a big.Int for oracle comparisons.
func toBig(x Vec) *big.Int {
	v := new(big.Int)
	base := big.NewInt(Base)
	for i := len(x) - 1; i >= 0; i-- {
		v.Mul(v, base)
		v.Add(v, big.NewInt(int64(x[i])))
	}
	return v
}

// randVec returns a canonical random Vec of exactly n limbs.
func randVec(rng *rand.Rand, n int) Vec {
	if n == 0 {
		return nil
	}
	v := make(Vec, n)
	for i := range v {
		v[i] = uint32(rng.Intn(Base))
	}
	for v[n-1] == 0 {
		v[n-1] = uint32(rng.Intn(Base))
	}
	return v
}

// checkCanonical fails the test if x violates the canonical-form
// invariant (no trailing zero limb, every limb below Base).
func checkCanonical(t *testing.T, x Vec) {
	t.Helper()
	if len(x) > 0 && x[len(x)-1] == 0 {
		t.Errorf("trailing zero limb in %v", x)
	}
	for i, limb := range x {
		if limb >= Base {
			t.Errorf("limb %d out of range: %d", i, limb)
		}
	}
}

func TestCmp(t *testing.T) {
	tests := []struct {
		x, y Vec
		want int
	}{
		{nil, nil, 0},
		{Vec{1}, nil, +1},
		{nil, Vec{1}, -1},
		{Vec{5}, Vec{5}, 0},
		{Vec{4}, Vec{5}, -1},
		{Vec{0, 1}, Vec{999999999}, +1},
		{Vec{1, 2}, Vec{2, 1}, +1},
		{Vec{2, 1}, Vec{1, 2}, -1},
	}
	for _, tc := range tests {
		if got := Cmp(tc.x, tc.y); got != tc.want {
			t.Errorf("Cmp(%v, %v) = %d, want %d", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		x, y, want Vec
	}{
		{nil, nil, nil},
		{Vec{1}, nil, Vec{1}},
		{Vec{1}, Vec{2}, Vec{3}},
		// carry across the limb boundary
		{Vec{999999999}, Vec{1}, Vec{0, 1}},
		// carry chain through two limbs
		{Vec{999999999, 999999999}, Vec{1}, Vec{0, 0, 1}},
		{Vec{500000000, 500000000}, Vec{500000000, 500000000}, Vec{0, 1, 1}},
	}
	for _, tc := range tests {
		got := Add(nil, tc.x, tc.y)
		checkCanonical(t, got)
		if Cmp(got, tc.want) != 0 {
			t.Errorf("Add(%v, %v) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestAddCommutes(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		x := randVec(rng, rng.Intn(20))
		y := randVec(rng, rng.Intn(20))
		xy := Add(nil, x, y)
		yx := Add(nil, y, x)
		if Cmp(xy, yx) != 0 {
			t.Fatalf("x+y != y+x for x=%v y=%v", x, y)
		}
	}
}

func TestSub(t *testing.T) {
	tests := []struct {
		x, y, want Vec
	}{
		{nil, nil, nil},
		{Vec{5}, Vec{3}, Vec{2}},
		{Vec{5}, Vec{5}, nil},
		// borrow across the limb boundary
		{Vec{0, 1}, Vec{1}, Vec{999999999}},
		{Vec{0, 0, 1}, Vec{1}, Vec{999999999, 999999999}},
	}
	for _, tc := range tests {
		got := Sub(nil, tc.x, tc.y)
		checkCanonical(t, got)
		if Cmp(got, tc.want) != 0 {
			t.Errorf("Sub(%v, %v) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestSubUnderflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Sub(small, large) did not panic")
		}
	}()
	Sub(nil, Vec{1}, Vec{2})
}

func TestSubAddRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	for i := 0; i < 200; i++ {
		x := randVec(rng, 1+rng.Intn(30))
		y := randVec(rng, 1+rng.Intn(30))
		if Cmp(x, y) < 0 {
			x, y = y, x
		}
		back := Add(nil, Sub(nil, x, y), y)
		if Cmp(back, x) != 0 {
			t.Fatalf("(x-y)+y != x for x=%v y=%v", x, y)
		}
	}
}

func TestShlLimbs(t *testing.T) {
	got := ShlLimbs(nil, Vec{7}, 2)
	if Cmp(got, Vec{0, 0, 7}) != 0 {
		t.Errorf("ShlLimbs = %v", got)
	}
	if got := ShlLimbs(nil, nil, 5); len(got) != 0 {
		t.Errorf("shifting zero produced %v", got)
	}
}

func TestShrLimbs(t *testing.T) {
	got := ShrLimbs(nil, Vec{1, 2, 3}, 1)
	if Cmp(got, Vec{2, 3}) != 0 {
		t.Errorf("ShrLimbs = %v", got)
	}
	if got := ShrLimbs(nil, Vec{1, 2}, 5); len(got) != 0 {
		t.Errorf("over-shift produced %v", got)
	}
}

func TestMulAddW(t *testing.T) {
	// 999999999 * 999999999 + 999999998 = 999999998999999999
	got := MulAddW(nil, Vec{999999999}, 999999999, 999999998)
	want := Vec{999999999, 999999998}
	if Cmp(got, want) != 0 {
		t.Errorf("MulAddW = %v, want %v", got, want)
	}
	if got := MulAddW(nil, Vec{5}, 0, 0); len(got) != 0 {
		t.Errorf("x*0 = %v, want zero", got)
	}
}

func TestDivW(t *testing.T) {
	// 1000000000 / 3 = 333333333 rem 1
	q, r := DivW(nil, Vec{0, 1}, 3)
	if Cmp(q, Vec{333333333}) != 0 || r != 1 {
		t.Errorf("DivW = %v rem %d", q, r)
	}
}

func TestDivWMulAddWRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 200; i++ {
		x := randVec(rng, 1+rng.Intn(10))
		s := uint32(1 + rng.Intn(Base-1))
		q, r := DivW(nil, x, s)
		back := MulAddW(nil, q, s, r)
		if Cmp(back, x) != 0 {
			t.Fatalf("q*s+r != x for x=%v s=%d", x, s)
		}
	}
}

func TestSetUint64(t *testing.T) {
	tests := []struct {
		v    uint64
		want Vec
	}{
		{0, nil},
		{1, Vec{1}},
		{999999999, Vec{999999999}},
		{1000000000, Vec{0, 1}},
		{18446744073709551615, Vec{709551615, 446744073, 18}},
	}
	for _, tc := range tests {
		got := Vec(nil).SetUint64(tc.v)
		checkCanonical(t, got)
		if Cmp(got, tc.want) != 0 {
			t.Errorf("SetUint64(%d) = %v, want %v", tc.v, got, tc.want)
		}
		if back := got.Uint64(); back != tc.v {
			t.Errorf("Uint64 round-trip of %d gave %d", tc.v, back)
		}
	}
}

func TestDigits(t *testing.T) {
	tests := []struct {
		x    Vec
		want int
	}{
		{nil, 0},
		{Vec{1}, 1},
		{Vec{999999999}, 9},
		{Vec{0, 1}, 10},
		{Vec{123456789, 12}, 11},
	}
	for _, tc := range tests {
		if got := tc.x.Digits(); got != tc.want {
			t.Errorf("Digits(%v) = %d, want %d", tc.x, got, tc.want)
		}
	}
}
