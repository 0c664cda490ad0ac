package segment

import (
	"fmt"
	"iter"

	"github.com/davidvella/maxprod/sequence"
)

// Run is a stretch of the sequence reduced to its product and inclusive span.
// Runs at even positions of a Runs list hold values at or above one; runs at
// odd positions are the gaps between them and have a product below one.
type Run[T sequence.Real] struct {
	Product T
	Start   int
	End     int
}

// Range returns the span covered by the run.
func (r Run[T]) Range() sequence.Range {
	return sequence.Range{Start: r.Start, End: r.End}
}

func (r Run[T]) String() string {
	return fmt.Sprintf("(%v, %d, %d)", r.Product, r.Start, r.End)
}

// Runs is an ordered list of runs whose spans are disjoint and index-adjacent.
type Runs[T sequence.Real] []Run[T]

// Len returns the number of runs.
func (rs Runs[T]) Len() int {
	return len(rs)
}

// All yields the runs from left to right.
func (rs Runs[T]) All() iter.Seq[Run[T]] {
	return func(yield func(Run[T]) bool) {
		for _, r := range rs {
			if !yield(r) {
				return
			}
		}
	}
}

// Compress partitions seq into alternating at-or-above-one and below-one runs.
// The returned list is never empty and, unless every element is below one,
// starts and ends with an at-or-above-one run. It panics if seq is empty.
func Compress[T sequence.Real](seq []T) Runs[T] {
	n := len(seq)
	if n == 0 {
		panic("segment: empty sequence")
	}

	start := 0
	var leadMax T
	leadMaxIdx := 0
	for start < n && seq[start] < 1 {
		if seq[start] > leadMax {
			leadMax = seq[start]
			leadMaxIdx = start
		}
		start++
	}

	if start == n {
		return Runs[T]{{Product: leadMax, Start: leadMaxIdx, End: leadMaxIdx}}
	}

	var runs Runs[T]
	for {
		// seq[start] opens a stretch of values at or above one. The run ends
		// at the last value strictly above one; trailing ones join the gap.
		prod, end := T(1), start
		i := start
		for ; i < n && seq[i] >= 1; i++ {
			prod *= seq[i]
			if seq[i] > 1 {
				end = i
			}
		}
		runs = append(runs, Run[T]{Product: prod, Start: start, End: end})

		for i < n && seq[i] < 1 {
			i++
		}
		if i == n {
			// A trailing gap can only lower the product.
			return runs
		}

		gap := T(1)
		for _, v := range seq[end+1 : i] {
			gap *= v
		}
		runs = append(runs, Run[T]{Product: gap, Start: end + 1, End: i - 1})
		start = i
	}
}
