package maxprod

import (
	"github.com/davidvella/maxprod/segment"
	"github.com/davidvella/maxprod/sequence"
)

// Real returns the range of seq with the largest product. Elements must be
// non-negative and not NaN. It panics if seq is empty.
func Real[T sequence.Real](seq []T) sequence.Range {
	if len(seq) == 0 {
		panic("maxprod: empty sequence")
	}
	return Reduce(segment.Compress(seq)).Range()
}

// Reduce folds a compressed run list down to the run with the largest product
// and returns it. runs must be non-empty, as returned by segment.Compress.
func Reduce[T sequence.Real](runs segment.Runs[T]) segment.Run[T] {
	if runs.Len() == 0 {
		panic("maxprod: empty run list")
	}

	// Fold on a copy so the caller's list is left intact.
	s := runStack[T]{runs: append([]segment.Run[T](nil), runs...)}
	best := s.runs[0]

	for s.len() >= 3 {
		combined, a, c := s.fold()

		for _, r := range [...]segment.Run[T]{combined, a, c} {
			if beats(r, best) {
				best = r
			}
		}
	}

	return best
}

// beats reports whether r should replace the current best. On equal products
// the earlier start wins, then the shorter span, which is the order a
// left-to-right scan meets the ranges in.
func beats[T sequence.Real](r, best segment.Run[T]) bool {
	switch {
	case r.Product != best.Product:
		return r.Product > best.Product
	case r.Start != best.Start:
		return r.Start < best.Start
	default:
		return r.End < best.End
	}
}
