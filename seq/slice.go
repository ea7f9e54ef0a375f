package seq

import "github.com/kbukum/fiter/capability"

// SliceSeq is a random-access view over a slice. It never copies or
// modifies the slice.
type SliceSeq[T any] struct {
	items []T
}

// FromSlice returns a sequence over items.
func FromSlice[T any](items []T) SliceSeq[T] {
	return SliceSeq[T]{items: items}
}

// Of returns a sequence over the given values.
func Of[T any](items ...T) SliceSeq[T] {
	return SliceSeq[T]{items: items}
}

func (s SliceSeq[T]) Start() SliceCursor[T] { return SliceCursor[T]{items: s.items} }

func (s SliceSeq[T]) End() SliceCursor[T] {
	return SliceCursor[T]{items: s.items, pos: len(s.items)}
}

func (s SliceSeq[T]) Tier() capability.Tier { return capability.RandomAccess }

// Len returns the number of elements.
func (s SliceSeq[T]) Len() int { return len(s.items) }

// SliceCursor is a position within a SliceSeq. Cursors from different
// slices must not be compared.
type SliceCursor[T any] struct {
	items []T
	pos   int
}

func (c SliceCursor[T]) Read() T { return c.items[c.pos] }

func (c SliceCursor[T]) StepForward() SliceCursor[T] {
	c.pos++
	return c
}

func (c SliceCursor[T]) StepBackward() SliceCursor[T] {
	c.pos--
	return c
}

func (c SliceCursor[T]) Offset(n int) SliceCursor[T] {
	c.pos += n
	return c
}

func (c SliceCursor[T]) Equal(other SliceCursor[T]) bool { return c.pos == other.pos }

func (c SliceCursor[T]) Compare(other SliceCursor[T]) int {
	switch {
	case c.pos < other.pos:
		return -1
	case c.pos > other.pos:
		return 1
	default:
		return 0
	}
}

// UnwrapBase returns c: a slice position has nothing beneath it.
func (c SliceCursor[T]) UnwrapBase() any { return c }

// Index returns the cursor's offset into the slice.
func (c SliceCursor[T]) Index() int { return c.pos }

// Rest returns the unvisited tail of the slice, starting at the cursor.
func (c SliceCursor[T]) Rest() []T { return c.items[c.pos:] }
