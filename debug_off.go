//go:build !fixedpoint_debug

package fixedpoint

// debugChecks enables overflow assertions in arithmetic operations.
// Build with -tags fixedpoint_debug to turn them on.
const debugChecks = false
