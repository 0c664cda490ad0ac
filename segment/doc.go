// Package segment compresses a sequence of non-negative reals into alternating
// runs of values at or above one and the gaps of values below one between
// them.
//
// Each run is reduced to the product of its elements and the span of indices it
// covers. A maximal-product subrange that is chosen as early and as short as
// possible always starts where a stretch of values at or above one starts, and
// ends on a value strictly above one. Leading ones never lower the product and
// give an earlier start; trailing ones add nothing but length. So the search
// over O(n^2) subranges becomes a search over the much shorter run list.
//
// Compression rules:
//   - Leading elements below one are skipped. The largest of them (first
//     occurrence) is remembered, because when every element is below one the
//     best subrange is that single element.
//   - If every element is below one, Compress returns exactly one synthetic
//     run covering that element.
//   - Otherwise an at-or-above-one run starts at the first value of its
//     stretch and ends at the last value strictly above one, or at its start
//     when the stretch holds only ones.
//   - A gap run covers everything up to the next stretch: the trailing ones of
//     the previous stretch and the values below one.
//   - A trailing gap is dropped, so the list ends with an at-or-above-one run.
//
// Basic usage:
//
//	runs := segment.Compress([]float64{0.1, 0.5, 13, 2, 0.1, 4})
//	for run := range runs.All() {
//	    fmt.Println(run)
//	}
//
// Compress panics on an empty sequence.
package segment
