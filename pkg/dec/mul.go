package dec

import (
	"math"

	"github.com/oisee/decbig/pkg/digit"
	"github.com/oisee/decbig/pkg/fft"
)

const (
	// schoolbookThreshold is the crossover T: below it the O(n*m)
	// kernels beat the transform setup cost.
	schoolbookThreshold = 64

	// Each base-10^9 limb splits into three base-10^3 coefficients
	// for the floating-point convolution. At the maximum transform
	// length the products stay below 2^42, leaving double precision
	// a comfortable roundoff budget.
	miniBase     = 1000
	minisPerLimb = 3

	// maxOperandLimbs bounds façade operands so that a single
	// product's convolution fits the transform cap.
	maxOperandLimbs = fft.MaxLen / (2 * minisPerLimb)
)

// mul sets z = x * y, dispatching on operand size: schoolbook below
// the crossover, FFT convolution above it. The dispatch is symmetric
// and the two paths agree exactly.
func mul(z, x, y digit.Vec) digit.Vec {
	if len(x) == 0 || len(y) == 0 {
		return z[:0]
	}
	short := len(x)
	if len(y) < short {
		short = len(y)
	}
	if short <= schoolbookThreshold {
		return digit.BasicMul(z, x, y)
	}
	return fftMul(z, x, y)
}

// fftMul multiplies via cyclic convolution of the mini-limb
// sequences. The transform length is the smallest power of two that
// covers the full linear convolution, so wraparound never occurs.
func fftMul(z, x, y digit.Vec) digit.Vec {
	nx := len(x) * minisPerLimb
	ny := len(y) * minisPerLimb
	n := 1
	for n < nx+ny {
		n <<= 1
	}
	if n > fft.MaxLen {
		panic(ErrTooLarge)
	}

	ws := fft.GetWorkspace()
	defer fft.PutWorkspace(ws)

	xs := splitMinis(make([]float64, nx), x)
	var ys []float64
	if sameVec(x, y) {
		ys = xs
	} else {
		ys = splitMinis(make([]float64, ny), y)
	}

	c, err := ws.Convolve(xs, ys, n)
	if err != nil {
		panic(ErrTooLarge)
	}

	// Round each coefficient to the nearest integer and propagate
	// carries in base 10^3, repacking three minis per limb.
	z = z.Make(len(x) + len(y))
	var carry uint64
	idx := 0
	for i := range z {
		var limb, scale uint64 = 0, 1
		for t := 0; t < minisPerLimb; t++ {
			var v uint64
			if idx < n {
				r := int64(math.Round(c[idx]))
				if r > 0 {
					v = uint64(r)
				}
			}
			idx++
			s := v + carry
			limb += (s % miniBase) * scale
			carry = s / miniBase
			scale *= miniBase
		}
		z[i] = uint32(limb)
	}
	return z.Norm()
}

func splitMinis(dst []float64, x digit.Vec) []float64 {
	for i, limb := range x {
		dst[3*i] = float64(limb % miniBase)
		dst[3*i+1] = float64(limb / miniBase % miniBase)
		dst[3*i+2] = float64(limb / (miniBase * miniBase))
	}
	return dst
}

func sameVec(x, y digit.Vec) bool {
	return len(x) == len(y) && len(x) > 0 && &x[0] == &y[0]
}
