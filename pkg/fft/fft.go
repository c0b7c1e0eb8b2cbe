// Package fft implements the iterative complex FFT used by the big
// multiplier: a decimation-in-frequency forward transform paired with
// a decimation-in-time inverse. The forward pass takes natural order
// in and leaves bit-reversed order out; the inverse consumes
// bit-reversed order and restores natural order. Because the pointwise
// product of two spectra is position-independent, the two permutation
// passes cancel and no explicit bit reversal is ever performed.
package fft

import (
	"math"

	"github.com/pkg/errors"
)

// MaxLen is the hard cap on the transform length. The multiplier
// refuses convolutions that would need a longer transform.
const MaxLen = 1 << 22

// Forward computes the in-place DFT of a (Gentleman–Sande butterflies,
// natural input order, bit-reversed output order). len(a) must be a
// power of two covered by the workspace twiddle table.
func (ws *Workspace) Forward(a []complex128) {
	n := len(a)
	roots := ws.roots
	tn := ws.rootsFor
	for size := n; size >= 2; size >>= 1 {
		half := size >> 1
		step := tn / size
		for start := 0; start < n; start += size {
			for j := 0; j < half; j++ {
				w := roots[j*step]
				u := a[start+j]
				v := a[start+j+half]
				a[start+j] = u + v
				a[start+j+half] = (u - v) * w
			}
		}
	}
}

// Inverse computes the in-place inverse DFT of a (Cooley–Tukey
// butterflies with conjugated twiddles, bit-reversed input order,
// natural output order), including the 1/n scaling.
func (ws *Workspace) Inverse(a []complex128) {
	n := len(a)
	roots := ws.roots
	tn := ws.rootsFor
	for size := 2; size <= n; size <<= 1 {
		half := size >> 1
		step := tn / size
		for start := 0; start < n; start += size {
			for j := 0; j < half; j++ {
				w := complex(real(roots[j*step]), -imag(roots[j*step]))
				u := a[start+j]
				v := a[start+j+half] * w
				a[start+j] = u + v
				a[start+j+half] = u - v
			}
		}
	}
	inv := 1 / float64(n)
	for i := range a {
		a[i] = complex(real(a[i])*inv, imag(a[i])*inv)
	}
}

// Convolve computes the cyclic convolution of x and y at length n
// (a power of two, len(x) <= n, len(y) <= n, n <= MaxLen) and returns
// the real coefficient sequence. The returned slice lives in the
// workspace and is valid until the workspace's next operation; callers
// that keep the coefficients copy them out first.
//
// When x and y are the same slice the second forward transform is
// skipped (squaring).
func (ws *Workspace) Convolve(x, y []float64, n int) ([]float64, error) {
	if n > MaxLen {
		return nil, errors.Errorf("fft: transform length %d exceeds cap %d", n, MaxLen)
	}
	if n&(n-1) != 0 {
		return nil, errors.Errorf("fft: transform length %d is not a power of two", n)
	}
	ws.ensure(n)

	a := ws.a[:n]
	loadReal(a, x)
	ws.Forward(a)

	square := len(x) == len(y) && (len(x) == 0 || &x[0] == &y[0])
	b := a
	if !square {
		b = ws.b[:n]
		loadReal(b, y)
		ws.Forward(b)
	}

	for i := range a {
		a[i] *= b[i]
	}
	ws.Inverse(a)

	out := ws.c[:n]
	for i := range a {
		out[i] = real(a[i])
	}
	return out, nil
}

func loadReal(dst []complex128, src []float64) {
	for i, v := range src {
		dst[i] = complex(v, 0)
	}
	for i := len(src); i < len(dst); i++ {
		dst[i] = 0
	}
}

// SelfTest exercises the worst-case convolution at length n: both
// inputs are runs of n/2 maximum mini-limb values, so the middle output
// coefficient reaches the largest magnitude the multiplier can produce
// at this length. It returns the largest distance from an exact integer seen,
// and an error if any coefficient would round incorrectly (the
// 0.5 roundoff budget).
func SelfTest(n int, coefMax float64) (float64, error) {
	if n > MaxLen {
		return 0, errors.Errorf("fft: self-test length %d exceeds cap %d", n, MaxLen)
	}
	ws := GetWorkspace()
	defer PutWorkspace(ws)

	half := n / 2
	x := make([]float64, half)
	for i := range x {
		x[i] = coefMax
	}
	c, err := ws.Convolve(x, x, n)
	if err != nil {
		return 0, err
	}

	// The linear self-convolution of a constant run of length h is
	// triangular: coefficient k counts the pairs (i, j) with i+j = k.
	var worst float64
	for k := 0; k < n; k++ {
		pairs := 0
		if k <= 2*half-2 {
			lo := 0
			if k > half-1 {
				lo = k - half + 1
			}
			hi := k
			if hi > half-1 {
				hi = half - 1
			}
			pairs = hi - lo + 1
		}
		want := float64(pairs) * coefMax * coefMax
		diff := math.Abs(c[k] - want)
		if diff > worst {
			worst = diff
		}
		if diff >= 0.5 {
			return worst, errors.Errorf("fft: self-test coefficient %d off by %g (budget 0.5)", k, diff)
		}
	}
	return worst, nil
}
