package sequence

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Unsigned is satisfied by every unsigned integer type.
type Unsigned interface {
	constraints.Unsigned
}

// Real is satisfied by every floating-point type.
type Real interface {
	constraints.Float
}

// Number is any element type the product helpers can multiply.
type Number interface {
	Unsigned | Real
}

// Range is an inclusive span [Start, End] of indices into a sequence.
// A valid Range always has Start <= End.
type Range struct {
	Start int
	End   int
}

// Len returns the number of elements covered by the range.
func (r Range) Len() int {
	return r.End - r.Start + 1
}

// Contains reports whether index i lies inside the range.
func (r Range) Contains(i int) bool {
	return i >= r.Start && i <= r.End
}

func (r Range) String() string {
	return fmt.Sprintf("[%d .. %d]", r.Start, r.End)
}

// Product multiplies seq[r.Start] through seq[r.End] from scratch.
// It panics if r is out of bounds for seq.
func Product[T Number](seq []T, r Range) T {
	prod := T(1)
	for _, v := range seq[r.Start : r.End+1] {
		prod *= v
	}
	return prod
}
