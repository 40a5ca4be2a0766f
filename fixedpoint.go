// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package fixedpoint implements a fixed-point number type, which stores
// an integer representation value together with a runtime scale.
// The represented number is value * radix^scale, where the radix (2 or 10)
// and the representation type (int32 or int64) are compile-time parameters.
//
// Operands of a binary operation must share both the representation type and the radix,
// but may have different scales. Addition, subtraction and equality align both operands
// to the larger (coarser) scale, truncating the finer one:
//
//	1.23 (123, -2) + 2.5 (25, -1) = 3.7 (37, -1)
//
// Multiplication adds scales, division subtracts them.
// Arithmetic wraps silently on overflow of the representation type, unless the package
// is built with the fixedpoint_debug tag, which turns overflows into panics.
// See AddChecked and friends for the error-returning versions.
package fixedpoint

// FixedPoint is a fixed-point number with representation type R and radix X.
// The zero value is 0 with scale 0.
type FixedPoint[R Rep, X RadixTag] struct {
	value R
	scale Scale
}

// Common instantiations.
type (
	Decimal32 = FixedPoint[int32, Base10]
	Decimal64 = FixedPoint[int64, Base10]
	Binary32  = FixedPoint[int32, Base2]
	Binary64  = FixedPoint[int64, Base2]
)

// ScaledInteger is a representation value which is already shifted
// to its scale. It is used to build a FixedPoint without shifting.
type ScaledInteger[R Rep] struct {
	Value R
	Scale Scale
}

// NewScaledInteger returns a ScaledInteger for given value and scale.
func NewScaledInteger[R Rep](v R, s Scale) ScaledInteger[R] {
	return ScaledInteger[R]{Value: v, Scale: s}
}

// New returns a fixed-point number for given numeric value and scale.
// v is shifted by the scale in its own arithmetic (so floats are shifted as floats),
// and then truncated toward zero to R. For example, New[int32, Base10](1.23, NewScale(-2))
// has the value of 123.
// Conversion of a float which does not fit R is implementation-specific, as in Go itself.
func New[R Rep, X RadixTag, T Number](v T, s Scale) FixedPoint[R, X] {
	return FixedPoint[R, X]{
		value: R(shift(v, int64(s.s), radixOf[X]())),
		scale: s,
	}
}

// FromScaled installs the value and the scale of si as is.
func FromScaled[R Rep, X RadixTag](si ScaledInteger[R]) FixedPoint[R, X] {
	return FixedPoint[R, X]{value: si.Value, scale: si.Scale}
}

func fromScaled[R Rep, X RadixTag](v R, s Scale) FixedPoint[R, X] {
	return FromScaled[R, X](NewScaledInteger(v, s))
}

// To converts f to a number of type U.
// Floating-point types get value * radix^scale up to their precision,
// integers are truncated toward zero.
func To[U Number, R Rep, X RadixTag](f FixedPoint[R, X]) U {
	return shift(U(f.value), -int64(f.scale.s), radixOf[X]())
}

// Get returns f as a float64.
func (f FixedPoint[R, X]) Get() float64 {
	return To[float64](f)
}

// Value returns the representation value.
func (f FixedPoint[R, X]) Value() R {
	return f.value
}

// Scale returns the scale.
func (f FixedPoint[R, X]) Scale() Scale {
	return f.scale
}

// Radix returns the radix of the type.
func (f FixedPoint[R, X]) Radix() Radix {
	return radixOf[X]()
}

// ScaledInteger returns the (value, scale) pair of f.
func (f FixedPoint[R, X]) ScaledInteger() ScaledInteger[R] {
	return NewScaledInteger(f.value, f.scale)
}
