package seq

import (
	"github.com/kbukum/fiter/capability"
	"github.com/kbukum/fiter/cursor"
)

// DropSeq is a source without its first n elements.
type DropSeq[T any, C cursor.Forward[T, C]] struct {
	src Sequence[T, C]
	n   int
}

// Drop returns src without its first n elements. A negative n drops nothing.
func Drop[T any, C cursor.Forward[T, C]](src Sequence[T, C], n int) DropSeq[T, C] {
	return DropSeq[T, C]{src: src, n: n}
}

// Start advances past up to n elements, stopping early at the source end.
func (s DropSeq[T, C]) Start() ForwardCursor[T, C] {
	cur, end := s.src.Start(), s.src.End()
	for i := 0; i < s.n && !cur.Equal(end); i++ {
		cur = cur.StepForward()
	}
	return ForwardCursor[T, C]{cur: cur}
}

func (s DropSeq[T, C]) End() ForwardCursor[T, C] {
	return ForwardCursor[T, C]{cur: s.src.End()}
}

func (s DropSeq[T, C]) Tier() capability.Tier {
	return capability.Cap(s.src.Tier(), capability.Forward)
}
