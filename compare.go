package fixedpoint

import (
	"math/bits"

	mu "github.com/avdva/fixedpoint/internal/mathutil"
)

// Cmp compares the exact values of f and other, regardless of their scales.
// Returns -1 if f < other, 0 if f == other, 1 if f > other.
func (f FixedPoint[R, X]) Cmp(other FixedPoint[R, X]) int {
	s1, s2 := f.Sign(), other.Sign()
	if s1 != s2 {
		return intCmp(s1, s2)
	}
	if s1 == 0 {
		return 0
	}
	m1, m2 := mu.AbsInt64(int64(f.value)), mu.AbsInt64(int64(other.value))
	return s1 * cmpMagnitude(m1, int64(f.scale.s), m2, int64(other.scale.s), radixOf[X]())
}

// StrictEq returns true if f and other represent exactly the same number.
// Unlike Eq, no digits are truncated.
func (f FixedPoint[R, X]) StrictEq(other FixedPoint[R, X]) bool {
	return f.Cmp(other) == 0
}

// cmpMagnitude compares m1*radix^e1 and m2*radix^e2.
func cmpMagnitude(m1 uint64, e1 int64, m2 uint64, e2 int64, radix Radix) int {
	if e1 < e2 {
		return -cmpMagnitude(m2, e2, m1, e1, radix)
	}
	if m1 == 0 || m2 == 0 || e1 == e2 {
		return uint64Cmp(m1, m2)
	}
	// e1 > e2, so m1 is multiplied by radix^(e1-e2) to get to the same scale as m2.
	p, ok := mu.Pow(uint64(radix), e1-e2)
	if !ok {
		return 1
	}
	hi, lo := bits.Mul64(m1, p)
	if hi != 0 {
		return 1
	}
	return uint64Cmp(lo, m2)
}

// Rescale returns f shifted to a new scale.
// Moving to a larger scale truncates the value toward zero,
// moving to a smaller one multiplies it, wrapping on overflow.
func (f FixedPoint[R, X]) Rescale(s Scale) FixedPoint[R, X] {
	return fromScaled[R, X](shift(f.value, int64(s.s)-int64(f.scale.s), radixOf[X]()), s)
}

// Sign returns -1 if f < 0, 0 if f == 0, 1 if f > 0.
func (f FixedPoint[R, X]) Sign() int {
	return mu.Int64Sign(int64(f.value))
}

// IsZero returns true if the value is zero at any scale.
func (f FixedPoint[R, X]) IsZero() bool {
	return f.value == 0
}

// Neg returns -f. The minimum value of R is negated to itself.
func (f FixedPoint[R, X]) Neg() FixedPoint[R, X] {
	return fromScaled[R, X](-f.value, f.scale)
}

// Abs returns the absolute value of f.
func (f FixedPoint[R, X]) Abs() FixedPoint[R, X] {
	if f.value < 0 {
		return f.Neg()
	}
	return f
}

func uint64Cmp(a, b uint64) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

func intCmp(a, b int) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}
