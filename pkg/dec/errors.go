// Package dec is the public face of the decimal bignum engine: the
// Uint and Int value types, the schoolbook/FFT multiply dispatch, the
// Newton reciprocal divider and decimal text conversion.
package dec

import "github.com/pkg/errors"

// Sentinel errors. Contract breaches (zero divisor, subtraction
// underflow, operands past the FFT cap) panic with the corresponding
// sentinel, mirroring math/big; data errors (bad parse input, range
// overflow on checked conversions) are returned wrapped with context.
var (
	ErrSyntax         = errors.New("dec: invalid decimal syntax")
	ErrRange          = errors.New("dec: value out of range")
	ErrDivisionByZero = errors.New("dec: division by zero")
	ErrUnderflow      = errors.New("dec: subtraction underflow")
	ErrTooLarge       = errors.New("dec: operand exceeds supported size")
)
