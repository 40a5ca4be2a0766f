package fixedpoint

import (
	"unsafe"

	"github.com/pkg/errors"
)

var (
	// ErrOverflow is returned when the result does not fit the representation type.
	ErrOverflow = errors.New("fixed_point overflow of underlying representation type")
	// ErrScaleOverflow is returned when the resulting scale does not fit int32.
	ErrScaleOverflow = errors.New("fixed_point scale overflow")
	// ErrDivisionByZero is returned on division by a zero representation value.
	ErrDivisionByZero = errors.New("fixed_point division by zero")
	// ErrRange is returned when a parsed value does not fit the representation type.
	ErrRange = errors.New("value out of range")
)

// Limits returns the minimum and the maximum values of R.
func Limits[R Rep]() (lo, hi R) {
	var zero R
	bits := unsafe.Sizeof(zero) * 8
	hi = R(uint64(1)<<(bits-1) - 1)
	return -hi - 1, hi
}

// RepName returns the name of R: "int32" or "int64".
func RepName[R Rep]() string {
	var zero R
	switch any(zero).(type) {
	case int32:
		return "int32"
	case int64:
		return "int64"
	default:
		return "unknown type"
	}
}

// AdditionOverflow returns true if l + r does not fit R.
func AdditionOverflow[R Rep](l, r R) bool {
	lo, hi := Limits[R]()
	if r > 0 {
		return l > hi-r
	}
	return l < lo-r
}

// SubtractionOverflow returns true if l - r does not fit R.
func SubtractionOverflow[R Rep](l, r R) bool {
	lo, hi := Limits[R]()
	if r > 0 {
		return l < lo+r
	}
	return l > hi+r
}

// DivisionOverflow returns true if l / r does not fit R,
// which happens only for min / -1. Division by zero is not reported.
func DivisionOverflow[R Rep](l, r R) bool {
	lo, _ := Limits[R]()
	return l == lo && r == -1
}

// MultiplicationOverflow returns true if l * r does not fit R.
func MultiplicationOverflow[R Rep](l, r R) bool {
	lo, hi := Limits[R]()
	switch {
	case r > 0:
		return l > hi/r || l < lo/r
	case r < -1:
		return l > lo/r || l < hi/r
	default:
		return r == -1 && l == lo
	}
}

func overflowError[R Rep](op string) error {
	return errors.Wrapf(ErrOverflow, "%s on %s", op, RepName[R]())
}

// assertNoOverflow panics in debug builds, if overflowed is true.
func assertNoOverflow[R Rep](overflowed bool, op string) {
	if debugChecks && overflowed {
		panic(overflowError[R](op))
	}
}
