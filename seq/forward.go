package seq

import "github.com/kbukum/fiter/cursor"

// ForwardCursor passes a source cursor through unchanged while exposing only
// forward operations. Drop and DropWhile hand these out once their skip is
// done.
type ForwardCursor[T any, C cursor.Forward[T, C]] struct {
	cur C
}

func (c ForwardCursor[T, C]) Read() T { return c.cur.Read() }

func (c ForwardCursor[T, C]) StepForward() ForwardCursor[T, C] {
	c.cur = c.cur.StepForward()
	return c
}

func (c ForwardCursor[T, C]) Equal(other ForwardCursor[T, C]) bool { return c.cur.Equal(other.cur) }

func (c ForwardCursor[T, C]) UnwrapBase() any { return c.cur.UnwrapBase() }
