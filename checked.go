package fixedpoint

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// AddChecked returns f + other, or ErrOverflow if the aligned values overflow R.
func (f FixedPoint[R, X]) AddChecked(other FixedPoint[R, X]) (FixedPoint[R, X], error) {
	l, r, _ := align(f, other)
	if AdditionOverflow(l, r) {
		return FixedPoint[R, X]{}, overflowError[R]("addition")
	}
	return f.Add(other), nil
}

// SubChecked returns f - other, or ErrOverflow if the aligned values overflow R.
func (f FixedPoint[R, X]) SubChecked(other FixedPoint[R, X]) (FixedPoint[R, X], error) {
	l, r, _ := align(f, other)
	if SubtractionOverflow(l, r) {
		return FixedPoint[R, X]{}, overflowError[R]("subtraction")
	}
	return f.Sub(other), nil
}

// MulChecked returns f * other.
// It fails with ErrOverflow if the product of the values overflows R,
// and with ErrScaleOverflow if the sum of the scales does not fit int32.
func (f FixedPoint[R, X]) MulChecked(other FixedPoint[R, X]) (FixedPoint[R, X], error) {
	if MultiplicationOverflow(f.value, other.value) {
		return FixedPoint[R, X]{}, overflowError[R]("multiplication")
	}
	if s := int64(f.scale.s) + int64(other.scale.s); s > math.MaxInt32 || s < math.MinInt32 {
		return FixedPoint[R, X]{}, errors.Wrapf(ErrScaleOverflow, "%v + %v", f.scale, other.scale)
	}
	return f.Mul(other), nil
}

// DivChecked returns f / other.
// It fails with ErrDivisionByZero, ErrOverflow (for min / -1),
// or ErrScaleOverflow if the difference of the scales does not fit int32.
func (f FixedPoint[R, X]) DivChecked(other FixedPoint[R, X]) (FixedPoint[R, X], error) {
	if other.value == 0 {
		return FixedPoint[R, X]{}, ErrDivisionByZero
	}
	if DivisionOverflow(f.value, other.value) {
		return FixedPoint[R, X]{}, overflowError[R]("division")
	}
	if s := int64(f.scale.s) - int64(other.scale.s); s > math.MaxInt32 || s < math.MinInt32 {
		return FixedPoint[R, X]{}, errors.Wrapf(ErrScaleOverflow, "%v - %v", f.scale, other.scale)
	}
	return f.Div(other), nil
}

// MustAdd is like AddChecked, but panics on error.
func (f FixedPoint[R, X]) MustAdd(other FixedPoint[R, X]) FixedPoint[R, X] {
	result, err := f.AddChecked(other)
	mustSucceed("MustAdd", f, other, err)
	return result
}

// MustSub is like SubChecked, but panics on error.
func (f FixedPoint[R, X]) MustSub(other FixedPoint[R, X]) FixedPoint[R, X] {
	result, err := f.SubChecked(other)
	mustSucceed("MustSub", f, other, err)
	return result
}

// MustMul is like MulChecked, but panics on error.
func (f FixedPoint[R, X]) MustMul(other FixedPoint[R, X]) FixedPoint[R, X] {
	result, err := f.MulChecked(other)
	mustSucceed("MustMul", f, other, err)
	return result
}

// MustDiv is like DivChecked, but panics on error.
func (f FixedPoint[R, X]) MustDiv(other FixedPoint[R, X]) FixedPoint[R, X] {
	result, err := f.DivChecked(other)
	mustSucceed("MustDiv", f, other, err)
	return result
}

func mustSucceed[R Rep, X RadixTag](name string, a, b FixedPoint[R, X], err error) {
	if err != nil {
		panic(fmt.Sprintf("%s(%#v, %#v) failed: %v", name, a, b, err))
	}
}
