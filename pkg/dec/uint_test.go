package dec

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddScenarios(t *testing.T) {
	tests := []struct{ a, b, want string }{
		{
			"123456789012345678901234567890",
			"987654321098765432109876543210",
			"1111111110111111111011111111100",
		},
		{"999999999999999999", "1", "1000000000000000000"},
		{"0", "0", "0"},
		{"1", "0", "1"},
	}
	for _, tc := range tests {
		got := mustUint(t, tc.a).Add(mustUint(t, tc.b))
		assert.Equal(t, tc.want, got.String())
		// commutativity
		assert.Equal(t, tc.want, mustUint(t, tc.b).Add(mustUint(t, tc.a)).String())
	}
}

func TestSubScenario(t *testing.T) {
	got := mustUint(t, "1000000000000000000").Sub(mustUint(t, "1"))
	assert.Equal(t, "999999999999999999", got.String())
}

func TestSubUnderflowPanics(t *testing.T) {
	require.PanicsWithValue(t, ErrUnderflow, func() {
		NewUint(1).Sub(NewUint(2))
	})
}

func TestSubAddInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(61))
	for i := 0; i < 100; i++ {
		a := mustUint(t, randDigits(rng, 1+rng.Intn(300)))
		b := mustUint(t, randDigits(rng, 1+rng.Intn(300)))
		if a.Cmp(b) < 0 {
			a, b = b, a
		}
		assert.Zero(t, a.Sub(b).Add(b).Cmp(a))
	}
}

func TestNewUint(t *testing.T) {
	tests := []struct {
		v    uint64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{999999999, "999999999"},
		{1000000000, "1000000000"},
		{math.MaxUint64, "18446744073709551615"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, NewUint(tc.v).String())
	}
}

func TestUintFromInt64(t *testing.T) {
	v, err := UintFromInt64(42)
	require.NoError(t, err)
	assert.Equal(t, "42", v.String())

	_, err = UintFromInt64(-1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRange))
}

func TestUintFromFloat64(t *testing.T) {
	tests := []struct {
		f    float64
		want string
	}{
		{0, "0"},
		{0.99, "0"},
		{1, "1"},
		{3.7, "3"},
		{1e9, "1000000000"},
		// 2^100; exactly representable, floor is exact
		{math.Pow(2, 100), "1267650600228229401496703205376"},
		{9007199254740993.0, "9007199254740992"}, // rounds to 2^53 as a double
	}
	for _, tc := range tests {
		v, err := UintFromFloat64(tc.f)
		require.NoErrorf(t, err, "f=%g", tc.f)
		assert.Equalf(t, tc.want, v.String(), "f=%g", tc.f)
	}

	for _, bad := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := UintFromFloat64(bad)
		require.Errorf(t, err, "f=%g should fail", bad)
		assert.True(t, errors.Is(err, ErrRange))
	}
}

func TestUint64Conversions(t *testing.T) {
	v := mustUint(t, "18446744073709551615")
	got, ok := v.Uint64Exact()
	require.True(t, ok)
	assert.Equal(t, uint64(math.MaxUint64), got)

	over := v.Add(NewUint(1)) // 2^64
	_, ok = over.Uint64Exact()
	assert.False(t, ok)
	// modular narrowing wraps to zero
	assert.Equal(t, uint64(0), over.Uint64())

	big := over.Add(NewUint(7)) // 2^64 + 7
	assert.Equal(t, uint64(7), big.Uint64())
}

func TestIncDec(t *testing.T) {
	v := mustUint(t, "999999999999999999")
	v.Inc()
	assert.Equal(t, "1000000000000000000", v.String())
	v.Dec()
	assert.Equal(t, "999999999999999999", v.String())

	z := NewUint(0)
	require.PanicsWithValue(t, ErrUnderflow, func() { z.Dec() })
}

// TestCopiesStayIndependent is the move/aliasing property: mutating
// through one binding never changes a value previously copied from it.
func TestCopiesStayIndependent(t *testing.T) {
	a := mustUint(t, "123456789123456789")
	b := a // copy
	a.Inc()
	assert.Equal(t, "123456789123456790", a.String())
	assert.Equal(t, "123456789123456789", b.String())

	c := b.Add(NewUint(0))
	b.Inc()
	assert.Equal(t, "123456789123456789", c.String())
}

func TestCmpAndSign(t *testing.T) {
	assert.Equal(t, 0, NewUint(0).Sign())
	assert.Equal(t, 1, NewUint(5).Sign())
	assert.True(t, NewUint(0).IsZero())

	a := mustUint(t, "100000000000000000000")
	b := mustUint(t, "99999999999999999999")
	assert.Equal(t, +1, a.Cmp(b))
	assert.Equal(t, -1, b.Cmp(a))
	assert.Equal(t, 0, a.Cmp(a))
}

func TestNumDigits(t *testing.T) {
	assert.Equal(t, 0, NewUint(0).NumDigits())
	assert.Equal(t, 1, NewUint(7).NumDigits())
	assert.Equal(t, 20, mustUint(t, "12345678901234567890").NumDigits())
}

func TestAddAssociates(t *testing.T) {
	rng := rand.New(rand.NewSource(62))
	a := mustUint(t, randDigits(rng, 200))
	b := mustUint(t, randDigits(rng, 150))
	c := mustUint(t, randDigits(rng, 100))
	assert.Zero(t, a.Add(b).Add(c).Cmp(a.Add(b.Add(c))))
	assert.Zero(t, a.Add(NewUint(0)).Cmp(a))
}
