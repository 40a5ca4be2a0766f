package fixedpoint

// Sum adds all the values left to right, starting from the first one,
// so that the result keeps the scale of the column rather than scale 0.
// Returns zero for an empty column.
func Sum[R Rep, X RadixTag](values ...FixedPoint[R, X]) (s FixedPoint[R, X]) {
	if len(values) == 0 {
		return s
	}
	s = values[0]
	for _, v := range values[1:] {
		s.AddAssign(v)
	}
	return s
}

// MaxScale returns the largest (coarsest) scale among values,
// which is the scale Sum aligns them to.
func MaxScale[R Rep, X RadixTag](values ...FixedPoint[R, X]) (s Scale, ok bool) {
	for i, v := range values {
		if i == 0 || v.scale.s > s.s {
			s = v.scale
		}
	}
	return s, len(values) > 0
}

// Rescaled returns a copy of values with each one moved to scale s.
func Rescaled[R Rep, X RadixTag](values []FixedPoint[R, X], s Scale) []FixedPoint[R, X] {
	result := make([]FixedPoint[R, X], len(values))
	for i, v := range values {
		result[i] = v.Rescale(s)
	}
	return result
}
