package seq

import (
	"github.com/kbukum/fiter/capability"
	"github.com/kbukum/fiter/cursor"
)

// TakeWhileSeq is the longest prefix of a source whose elements all satisfy a
// predicate.
type TakeWhileSeq[T any, C cursor.Forward[T, C]] struct {
	src  Sequence[T, C]
	pred func(T) bool
}

// TakeWhile returns the leading elements of src for which pred is true.
func TakeWhile[T any, C cursor.Forward[T, C]](src Sequence[T, C], pred func(T) bool) TakeWhileSeq[T, C] {
	return TakeWhileSeq[T, C]{src: src, pred: pred}
}

func (s TakeWhileSeq[T, C]) Start() TakeWhileCursor[T, C] {
	return TakeWhileCursor[T, C]{cur: s.src.Start(), end: s.src.End(), pred: s.pred}
}

func (s TakeWhileSeq[T, C]) End() TakeWhileCursor[T, C] {
	end := s.src.End()
	return TakeWhileCursor[T, C]{cur: end, end: end, pred: s.pred, isEnd: true}
}

func (s TakeWhileSeq[T, C]) Tier() capability.Tier {
	return capability.Cap(s.src.Tier(), capability.Forward)
}

// TakeWhileCursor is a position within a TakeWhileSeq.
//
// Equality against the end sentinel is decided by the live side: it matches
// once it holds the source end or its element fails the predicate. The rule
// applies whichever side is the sentinel, so equality is symmetric. It is
// not transitive: two exhausted cursors at different positions each equal
// the end but not each other.
type TakeWhileCursor[T any, C cursor.Forward[T, C]] struct {
	cur   C
	end   C
	pred  func(T) bool
	isEnd bool
}

// exhausted reports whether a live cursor has left the prefix. The source end
// is checked first so it is never read.
func (c TakeWhileCursor[T, C]) exhausted() bool {
	return c.cur.Equal(c.end) || !c.pred(c.cur.Read())
}

func (c TakeWhileCursor[T, C]) Read() T { return c.cur.Read() }

func (c TakeWhileCursor[T, C]) StepForward() TakeWhileCursor[T, C] {
	c.cur = c.cur.StepForward()
	return c
}

func (c TakeWhileCursor[T, C]) Equal(other TakeWhileCursor[T, C]) bool {
	switch {
	case c.isEnd && other.isEnd:
		return true
	case other.isEnd:
		return c.exhausted()
	case c.isEnd:
		return other.exhausted()
	default:
		return c.cur.Equal(other.cur)
	}
}

func (c TakeWhileCursor[T, C]) UnwrapBase() any { return c.cur.UnwrapBase() }
