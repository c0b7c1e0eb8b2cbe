//go:build decchecks

package dec

const validityChecks = true
