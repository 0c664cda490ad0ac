// Package sequence defines the numeric capabilities and the index range type
// shared by the maximal-product algorithms.
//
// Two capabilities are used:
//   - Unsigned: unsigned integer element types, where zero is the additive
//     identity and annihilates any product it takes part in.
//   - Real: floating-point element types. Elements are expected to be
//     non-negative and not NaN; values below one shrink a running product and
//     values above one grow it.
//
// Results are reported as a Range, an inclusive pair of indices into the input
// slice:
//
//	seq := []uint32{0, 2, 3, 4}
//	r := sequence.Range{Start: 1, End: 3}
//	fmt.Println(r, sequence.Product(seq, r)) // [1 .. 3] 24
package sequence
