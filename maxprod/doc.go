// Package maxprod finds the contiguous subrange of a sequence whose element
// product is maximal, in linear time.
//
// Two entry points cover the two supported element domains:
//
//   - Int scans a sequence of unsigned integers. A zero element kills every
//     product spanning it, so the scan keeps a running product over the current
//     zero-free run and restarts after each zero.
//   - Real handles non-negative reals. The sequence is first compressed into
//     alternating below-one and at-or-above-one runs (see package segment), then
//     the run list is folded from the right three runs at a time. A below-one
//     run only survives a fold when the runs on either side of it outweigh its
//     drag; otherwise the runs to its right are pruned.
//
// Both return an inclusive sequence.Range. Among subranges with the same
// maximal product the one found first by a left-to-right strict comparison
// wins, so the result is deterministic.
//
// Basic usage:
//
//	r := maxprod.Int([]uint32{0, 1, 0, 7, 0, 3})
//	fmt.Println(r) // [3 .. 3]
//
//	r = maxprod.Real([]float64{0.1, 0.5, 13, 2, 0.1, 4, 6, 7, 8, 0.1, 0.2})
//	fmt.Println(r) // [2 .. 8]
//
// Neither function accepts an empty sequence; both panic, so callers should
// check the length first. Integer products wrap on overflow like any Go
// unsigned arithmetic.
package maxprod
