package seq

import (
	"github.com/kbukum/fiter/capability"
	"github.com/kbukum/fiter/cursor"
)

// DropWhileSeq is a source with its leading run of predicate-satisfying
// elements removed.
type DropWhileSeq[T any, C cursor.Forward[T, C]] struct {
	src  Sequence[T, C]
	pred func(T) bool
}

// DropWhile returns src without the leading elements for which pred is true.
// Nothing is evaluated until Start is called.
func DropWhile[T any, C cursor.Forward[T, C]](src Sequence[T, C], pred func(T) bool) DropWhileSeq[T, C] {
	return DropWhileSeq[T, C]{src: src, pred: pred}
}

// Start skips the leading run and returns a cursor at the first element that
// fails the predicate, or at the end.
func (s DropWhileSeq[T, C]) Start() ForwardCursor[T, C] {
	cur, end := s.src.Start(), s.src.End()
	for !cur.Equal(end) && s.pred(cur.Read()) {
		cur = cur.StepForward()
	}
	return ForwardCursor[T, C]{cur: cur}
}

func (s DropWhileSeq[T, C]) End() ForwardCursor[T, C] {
	return ForwardCursor[T, C]{cur: s.src.End()}
}

func (s DropWhileSeq[T, C]) Tier() capability.Tier {
	return capability.Cap(s.src.Tier(), capability.Forward)
}
