package maxprod

import (
	"github.com/davidvella/maxprod/segment"
	"github.com/davidvella/maxprod/sequence"
)

// runStack is the compressed run list consumed from its right end.
type runStack[T sequence.Real] struct {
	runs []segment.Run[T]
}

func (s *runStack[T]) len() int {
	return len(s.runs)
}

// fold replaces the top three runs a (top), b, c with one run in a single
// step and returns the three runs it consumed together with their merge.
// The merge of all three is kept when it beats c on its own. Otherwise a and b
// are dropped and c stays as it was.
func (s *runStack[T]) fold() (combined, a, c segment.Run[T]) {
	n := len(s.runs)
	a, b, c := s.runs[n-1], s.runs[n-2], s.runs[n-3]

	combined = segment.Run[T]{
		Product: a.Product * b.Product * c.Product,
		Start:   c.Start,
		End:     a.End,
	}

	top := c
	if combined.Product > c.Product {
		top = combined
	}
	s.runs[n-3] = top
	s.runs = s.runs[:n-2]

	return combined, a, c
}
