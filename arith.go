package fixedpoint

// align brings two operands to the larger of their scales
// by right-shifting the value of the finer one.
// Shifting right only divides, so alignment itself never overflows.
func align[R Rep, X RadixTag](a, b FixedPoint[R, X]) (av, bv R, s Scale) {
	av, bv = a.value, b.value
	radix := radixOf[X]()
	switch {
	case a.scale.s > b.scale.s:
		bv = shift(bv, int64(a.scale.s)-int64(b.scale.s), radix)
		s = a.scale
	case a.scale.s < b.scale.s:
		av = shift(av, int64(b.scale.s)-int64(a.scale.s), radix)
		s = b.scale
	default:
		s = a.scale
	}
	return av, bv, s
}

// Add returns f + other at the larger of both scales.
// The operand with the smaller scale loses its extra digits.
func (f FixedPoint[R, X]) Add(other FixedPoint[R, X]) FixedPoint[R, X] {
	l, r, s := align(f, other)
	assertNoOverflow[R](AdditionOverflow(l, r), "addition")
	return fromScaled[R, X](l+r, s)
}

// Sub returns f - other at the larger of both scales.
func (f FixedPoint[R, X]) Sub(other FixedPoint[R, X]) FixedPoint[R, X] {
	l, r, s := align(f, other)
	assertNoOverflow[R](SubtractionOverflow(l, r), "subtraction")
	return fromScaled[R, X](l-r, s)
}

// Mul returns f * other. The scale of the result is the sum of the scales.
func (f FixedPoint[R, X]) Mul(other FixedPoint[R, X]) FixedPoint[R, X] {
	assertNoOverflow[R](MultiplicationOverflow(f.value, other.value), "multiplication")
	return fromScaled[R, X](f.value*other.value, NewScale(f.scale.s+other.scale.s))
}

// Div returns f / other, truncated toward zero.
// The scale of the result is the difference of the scales.
// Div panics if other has a zero value.
func (f FixedPoint[R, X]) Div(other FixedPoint[R, X]) FixedPoint[R, X] {
	assertNoOverflow[R](DivisionOverflow(f.value, other.value), "division")
	return fromScaled[R, X](f.value/other.value, NewScale(f.scale.s-other.scale.s))
}

// Eq aligns both values like Add does and compares them.
// Values which differ only in the truncated digits of the finer operand are equal.
// See StrictEq for the exact comparison.
func (f FixedPoint[R, X]) Eq(other FixedPoint[R, X]) bool {
	l, r, _ := align(f, other)
	return l == r
}

// AddAssign sets f to f + other.
func (f *FixedPoint[R, X]) AddAssign(other FixedPoint[R, X]) *FixedPoint[R, X] {
	*f = f.Add(other)
	return f
}

// SubAssign sets f to f - other.
func (f *FixedPoint[R, X]) SubAssign(other FixedPoint[R, X]) *FixedPoint[R, X] {
	*f = f.Sub(other)
	return f
}

// MulAssign sets f to f * other.
func (f *FixedPoint[R, X]) MulAssign(other FixedPoint[R, X]) *FixedPoint[R, X] {
	*f = f.Mul(other)
	return f
}

// DivAssign sets f to f / other.
func (f *FixedPoint[R, X]) DivAssign(other FixedPoint[R, X]) *FixedPoint[R, X] {
	*f = f.Div(other)
	return f
}

// Inc adds one unit of the current scale, which is radix^scale, not 1.
func (f *FixedPoint[R, X]) Inc() *FixedPoint[R, X] {
	*f = f.Add(fromScaled[R, X](1, f.scale))
	return f
}
