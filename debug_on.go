//go:build fixedpoint_debug

package fixedpoint

const debugChecks = true
