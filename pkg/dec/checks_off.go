//go:build !decchecks

package dec

// Validity checks are compiled out by default; build with the
// decchecks tag to enable the operand-size preconditions.
const validityChecks = false
