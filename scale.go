package fixedpoint

import "strconv"

// Scale is the signed exponent applied to the radix of a FixedPoint.
// It is a distinct type so that a plain integer (or an untyped constant)
// is never accepted where a scale is expected; use NewScale.
type Scale struct {
	s int32
}

// NewScale returns a scale for given exponent.
func NewScale(s int32) Scale {
	return Scale{s: s}
}

// Int32 returns the underlying exponent.
func (s Scale) Int32() int32 {
	return s.s
}

// Negate returns a scale with the opposite sign.
// Negating math.MinInt32 wraps, like the int32 it is built on.
func (s Scale) Negate() Scale {
	return Scale{s: -s.s}
}

func (s Scale) String() string {
	return strconv.FormatInt(int64(s.s), 10)
}
