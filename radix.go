package fixedpoint

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// Radix is the base a scale is interpreted under.
type Radix int32

const (
	// Radix2 is a binary radix.
	Radix2 Radix = 2
	// Radix10 is a decimal radix.
	Radix10 Radix = 10
)

func (r Radix) String() string {
	switch r {
	case Radix2:
		return "BASE_2"
	case Radix10:
		return "BASE_10"
	default:
		return "Radix(" + strconv.FormatInt(int64(r), 10) + ")"
	}
}

type (
	// Base2 selects Radix2 at compile time.
	Base2 struct{}
	// Base10 selects Radix10 at compile time.
	Base10 struct{}
)

// Radix returns Radix2.
func (Base2) Radix() Radix { return Radix2 }

// Radix returns Radix10.
func (Base10) Radix() Radix { return Radix10 }

// RadixTag is satisfied by the compile-time radix selectors only.
type RadixTag interface {
	Base2 | Base10
	Radix() Radix
}

// Rep lists the supported representation types.
type Rep interface {
	int32 | int64
}

// Number is any type a FixedPoint can be built from or converted to.
type Number interface {
	constraints.Integer | constraints.Float
}

func radixOf[X RadixTag]() Radix {
	var x X
	return x.Radix()
}
