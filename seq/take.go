package seq

import (
	"github.com/kbukum/fiter/capability"
	"github.com/kbukum/fiter/cursor"
)

// TakeSeq is at most the first n elements of a source.
type TakeSeq[T any, C cursor.Forward[T, C]] struct {
	src Sequence[T, C]
	n   int
}

// Take returns the first n elements of src, or all of them if src is
// shorter. A negative n never counts down to zero, so the result ends only
// where src does.
func Take[T any, C cursor.Forward[T, C]](src Sequence[T, C], n int) TakeSeq[T, C] {
	return TakeSeq[T, C]{src: src, n: n}
}

func (s TakeSeq[T, C]) Start() TakeCursor[T, C] {
	return TakeCursor[T, C]{cur: s.src.Start(), end: s.src.End(), remaining: s.n}
}

func (s TakeSeq[T, C]) End() TakeCursor[T, C] {
	end := s.src.End()
	return TakeCursor[T, C]{cur: end, end: end}
}

func (s TakeSeq[T, C]) Tier() capability.Tier {
	return capability.Cap(s.src.Tier(), capability.Forward)
}

// TakeCursor is a position within a TakeSeq. A cursor has ended when its
// count is spent or it holds the source end; any two ended cursors are equal.
type TakeCursor[T any, C cursor.Forward[T, C]] struct {
	cur       C
	end       C
	remaining int
}

func (c TakeCursor[T, C]) ended() bool {
	return c.remaining == 0 || c.cur.Equal(c.end)
}

// Remaining returns how many more elements the cursor may yield before the
// count runs out.
func (c TakeCursor[T, C]) Remaining() int { return c.remaining }

func (c TakeCursor[T, C]) Read() T { return c.cur.Read() }

func (c TakeCursor[T, C]) StepForward() TakeCursor[T, C] {
	c.cur = c.cur.StepForward()
	c.remaining--
	return c
}

func (c TakeCursor[T, C]) Equal(other TakeCursor[T, C]) bool {
	ce, oe := c.ended(), other.ended()
	if ce || oe {
		return ce && oe
	}
	return c.remaining == other.remaining && c.cur.Equal(other.cur)
}

func (c TakeCursor[T, C]) UnwrapBase() any { return c.cur.UnwrapBase() }
