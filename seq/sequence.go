package seq

import (
	"iter"

	"github.com/kbukum/fiter/capability"
	"github.com/kbukum/fiter/cursor"
)

// Sequence is a lazy, re-enumerable view. Start and End may be called any
// number of times; each call returns a fresh cursor and leaves the sequence
// unchanged.
type Sequence[T any, C cursor.Forward[T, C]] interface {
	// Start returns a cursor at the first element.
	Start() C
	// End returns the sentinel cursor one past the last element.
	End() C
	// Tier reports the traversal capability of the sequence.
	Tier() capability.Tier
}

// Pair is the element type produced by Zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// All returns an iterator over s, for use with range. It pulls from Start
// until the cursor equals End, so an unbounded sequence stays unbounded.
func All[T any, C cursor.Forward[T, C]](s Sequence[T, C]) iter.Seq[T] {
	return func(yield func(T) bool) {
		end := s.End()
		for c := s.Start(); !c.Equal(end); c = c.StepForward() {
			if !yield(c.Read()) {
				return
			}
		}
	}
}
