package seq

import (
	"github.com/kbukum/fiter/capability"
	"github.com/kbukum/fiter/cursor"
)

// ZipSeq pairs the elements of two sequences positionally and ends with the
// shorter one.
type ZipSeq[A, B any, CA cursor.Forward[A, CA], CB cursor.Forward[B, CB]] struct {
	a Sequence[A, CA]
	b Sequence[B, CB]
}

// Zip pairs a and b element by element.
func Zip[A, B any, CA cursor.Forward[A, CA], CB cursor.Forward[B, CB]](a Sequence[A, CA], b Sequence[B, CB]) ZipSeq[A, B, CA, CB] {
	return ZipSeq[A, B, CA, CB]{a: a, b: b}
}

func (s ZipSeq[A, B, CA, CB]) Start() ZipCursor[A, B, CA, CB] {
	return ZipCursor[A, B, CA, CB]{a: s.a.Start(), b: s.b.Start()}
}

func (s ZipSeq[A, B, CA, CB]) End() ZipCursor[A, B, CA, CB] {
	return ZipCursor[A, B, CA, CB]{a: s.a.End(), b: s.b.End()}
}

func (s ZipSeq[A, B, CA, CB]) Tier() capability.Tier {
	return capability.Cap(capability.Min(s.a.Tier(), s.b.Tier()), capability.Forward)
}

// ZipCursor steps both halves together. It equals another cursor when either
// half does, which is what stops iteration at the shorter input.
type ZipCursor[A, B any, CA cursor.Forward[A, CA], CB cursor.Forward[B, CB]] struct {
	a CA
	b CB
}

func (c ZipCursor[A, B, CA, CB]) Read() Pair[A, B] {
	return Pair[A, B]{First: c.a.Read(), Second: c.b.Read()}
}

func (c ZipCursor[A, B, CA, CB]) StepForward() ZipCursor[A, B, CA, CB] {
	c.a = c.a.StepForward()
	c.b = c.b.StepForward()
	return c
}

func (c ZipCursor[A, B, CA, CB]) Equal(other ZipCursor[A, B, CA, CB]) bool {
	return c.a.Equal(other.a) || c.b.Equal(other.b)
}

// UnwrapBase returns the cursor itself; it draws from two sources.
func (c ZipCursor[A, B, CA, CB]) UnwrapBase() any { return c }
