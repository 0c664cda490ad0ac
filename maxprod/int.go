package maxprod

import "github.com/davidvella/maxprod/sequence"

// Int returns the range of seq with the largest product. It panics if seq is
// empty.
func Int[T sequence.Unsigned](seq []T) sequence.Range {
	if len(seq) == 0 {
		panic("maxprod: empty sequence")
	}

	var maxProd T
	var best sequence.Range

	var current sequence.Range
	var currentProd T // zero means no active run

	for i, v := range seq {
		if v != 0 {
			if currentProd == 0 {
				currentProd = 1
				current.Start = i
			}
			currentProd *= v
			current.End = i
		} else {
			current = sequence.Range{Start: i, End: i}
			currentProd = 0
		}

		if currentProd > maxProd {
			best = current
			maxProd = currentProd
		}
	}

	return best
}
