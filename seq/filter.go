package seq

import (
	"github.com/kbukum/fiter/capability"
	"github.com/kbukum/fiter/cursor"
)

// FilterSeq keeps the elements of a source that satisfy a predicate, in
// their original order.
type FilterSeq[T any, C cursor.Forward[T, C]] struct {
	src  Sequence[T, C]
	pred func(T) bool
}

// Filter returns the elements of src for which pred is true.
func Filter[T any, C cursor.Forward[T, C]](src Sequence[T, C], pred func(T) bool) FilterSeq[T, C] {
	return FilterSeq[T, C]{src: src, pred: pred}
}

// Start returns a cursor at the first matching element, skipping any that
// precede it.
func (s FilterSeq[T, C]) Start() FilterCursor[T, C] {
	c := FilterCursor[T, C]{cur: s.src.Start(), end: s.src.End(), pred: s.pred}
	return c.skip()
}

func (s FilterSeq[T, C]) End() FilterCursor[T, C] {
	end := s.src.End()
	return FilterCursor[T, C]{cur: end, end: end, pred: s.pred}
}

func (s FilterSeq[T, C]) Tier() capability.Tier {
	return capability.Cap(s.src.Tier(), capability.Forward)
}

// FilterCursor is a position within a FilterSeq. It always rests on a
// matching element or on the source end.
type FilterCursor[T any, C cursor.Forward[T, C]] struct {
	cur  C
	end  C
	pred func(T) bool
}

// skip advances past rejected elements.
func (c FilterCursor[T, C]) skip() FilterCursor[T, C] {
	for !c.cur.Equal(c.end) && !c.pred(c.cur.Read()) {
		c.cur = c.cur.StepForward()
	}
	return c
}

func (c FilterCursor[T, C]) Read() T { return c.cur.Read() }

// StepForward moves to the next matching element. At the source end it is a
// no-op.
func (c FilterCursor[T, C]) StepForward() FilterCursor[T, C] {
	if c.cur.Equal(c.end) {
		return c
	}
	c.cur = c.cur.StepForward()
	return c.skip()
}

func (c FilterCursor[T, C]) Equal(other FilterCursor[T, C]) bool { return c.cur.Equal(other.cur) }

func (c FilterCursor[T, C]) UnwrapBase() any { return c.cur.UnwrapBase() }
