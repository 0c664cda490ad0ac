// Package oracle holds slow, exhaustive maximal-product searches used to check
// the linear-time algorithms in tests.
package oracle

import "github.com/davidvella/maxprod/sequence"

// BruteForce recomputes the product of every subrange, O(n^3).
func BruteForce[T sequence.Number](seq []T) sequence.Range {
	var maxProd T
	var best sequence.Range

	for i := range seq {
		for j := i; j < len(seq); j++ {
			prod := T(1)
			for k := i; k <= j; k++ {
				prod *= seq[k]
			}

			if prod > maxProd {
				maxProd = prod
				best = sequence.Range{Start: i, End: j}
			}
		}
	}

	return best
}

// BruteForceImproved extends a running product per start index, O(n^2).
func BruteForceImproved[T sequence.Number](seq []T) sequence.Range {
	var maxProd T
	var best sequence.Range

	for i := range seq {
		prod := T(1)
		for j := i; j < len(seq); j++ {
			prod *= seq[j]

			if prod > maxProd {
				maxProd = prod
				best = sequence.Range{Start: i, End: j}
			}
		}
	}

	return best
}
