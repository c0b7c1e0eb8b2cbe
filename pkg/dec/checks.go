package dec

import "github.com/oisee/decbig/pkg/digit"

// checkSize asserts the façade operand-length precondition when the
// decchecks build tag is on. Without the tag, an oversized operand is
// refused only if it reaches the FFT multiply's transform-length check,
// later and with work already done; the schoolbook paths accept any
// length.
func checkSize(x digit.Vec) {
	if validityChecks && len(x) > maxOperandLimbs {
		panic(ErrTooLarge)
	}
}
