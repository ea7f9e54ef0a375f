package seq

import (
	"github.com/kbukum/fiter/capability"
	"github.com/kbukum/fiter/cursor"
)

// ChainSeq is every element of one sequence followed by every element of
// another.
type ChainSeq[T any, CA cursor.Forward[T, CA], CB cursor.Forward[T, CB]] struct {
	a Sequence[T, CA]
	b Sequence[T, CB]
}

// Chain concatenates a and b. The two may use different cursor types as long
// as they yield the same element type.
func Chain[T any, CA cursor.Forward[T, CA], CB cursor.Forward[T, CB]](a Sequence[T, CA], b Sequence[T, CB]) ChainSeq[T, CA, CB] {
	return ChainSeq[T, CA, CB]{a: a, b: b}
}

func (s ChainSeq[T, CA, CB]) Start() ChainCursor[T, CA, CB] {
	return ChainCursor[T, CA, CB]{a: s.a.Start(), aEnd: s.a.End(), b: s.b.Start()}
}

func (s ChainSeq[T, CA, CB]) End() ChainCursor[T, CA, CB] {
	return ChainCursor[T, CA, CB]{a: s.a.End(), aEnd: s.a.End(), b: s.b.End()}
}

func (s ChainSeq[T, CA, CB]) Tier() capability.Tier {
	return capability.Cap(capability.Min(s.a.Tier(), s.b.Tier()), capability.Forward)
}

// ChainCursor holds a position in each half. The second half does not move
// until the first is exhausted.
type ChainCursor[T any, CA cursor.Forward[T, CA], CB cursor.Forward[T, CB]] struct {
	a    CA
	aEnd CA
	b    CB
}

func (c ChainCursor[T, CA, CB]) inFirst() bool { return !c.a.Equal(c.aEnd) }

func (c ChainCursor[T, CA, CB]) Read() T {
	if c.inFirst() {
		return c.a.Read()
	}
	return c.b.Read()
}

func (c ChainCursor[T, CA, CB]) StepForward() ChainCursor[T, CA, CB] {
	if c.inFirst() {
		c.a = c.a.StepForward()
	} else {
		c.b = c.b.StepForward()
	}
	return c
}

func (c ChainCursor[T, CA, CB]) Equal(other ChainCursor[T, CA, CB]) bool {
	return c.a.Equal(other.a) && c.b.Equal(other.b)
}

// UnwrapBase returns the cursor itself; it draws from two sources.
func (c ChainCursor[T, CA, CB]) UnwrapBase() any { return c }
