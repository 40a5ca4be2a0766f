package fixedpoint

import (
	"math"

	mu "github.com/avdva/fixedpoint/internal/mathutil"
)

// shift applies a scale to v: a positive scale divides v by radix^s,
// a negative one multiplies v by radix^-s.
// The exponent is passed as int64, so that -math.MinInt32 is representable.
func shift[T Number](v T, s int64, radix Radix) T {
	switch {
	case s == 0:
		return v
	case s > 0:
		return rightShift(v, s, radix)
	default:
		return leftShift(v, -s, radix)
	}
}

// rightShift returns v / radix^n, n > 0, in the arithmetic of T.
// Integers are truncated toward zero.
func rightShift[T Number](v T, n int64, radix Radix) T {
	if isFloat[T]() {
		return T(float64(v) / math.Pow(float64(radix), float64(n)))
	}
	p, ok := mu.Pow(uint64(radix), n)
	if !ok { // radix^n is greater than any representable magnitude.
		return 0
	}
	if v < 0 {
		return T(-int64(mu.AbsInt64(int64(v)) / p))
	}
	return T(uint64(v) / p)
}

// leftShift returns v * radix^n, n > 0, in the arithmetic of T.
// Integers wrap on overflow.
func leftShift[T Number](v T, n int64, radix Radix) T {
	if isFloat[T]() {
		return T(float64(v) * math.Pow(float64(radix), float64(n)))
	}
	return v * T(mu.WrapPow(uint64(radix), n))
}

func isFloat[T Number]() bool {
	var one T = 1
	return one/2 != 0
}
