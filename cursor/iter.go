package cursor

// Iter is a mutable handle over a Forward cursor.
type Iter[T any, C Forward[T, C]] struct {
	pos C
}

// New returns a handle positioned at c.
func New[T any, C Forward[T, C]](c C) *Iter[T, C] {
	return &Iter[T, C]{pos: c}
}

// Get dereferences the current position.
func (it *Iter[T, C]) Get() T { return it.pos.Read() }

// Advance moves one position on and returns the handle (prefix increment).
func (it *Iter[T, C]) Advance() *Iter[T, C] {
	it.pos = it.pos.StepForward()
	return it
}

// PostAdvance moves one position on and returns the prior position (postfix increment).
func (it *Iter[T, C]) PostAdvance() C {
	prev := it.pos
	it.pos = it.pos.StepForward()
	return prev
}

// Equal reports whether the handle is at other.
func (it *Iter[T, C]) Equal(other C) bool { return it.pos.Equal(other) }

// NotEqual is the negation of Equal.
func (it *Iter[T, C]) NotEqual(other C) bool { return !it.pos.Equal(other) }

// Cursor returns a copy of the current position.
func (it *Iter[T, C]) Cursor() C { return it.pos }

// Base returns the innermost cursor beneath the current position.
func (it *Iter[T, C]) Base() any { return it.pos.UnwrapBase() }

// BidiIter is a mutable handle over a Bidirectional cursor.
type BidiIter[T any, C Bidirectional[T, C]] struct {
	Iter[T, C]
}

// NewBidirectional returns a handle positioned at c.
func NewBidirectional[T any, C Bidirectional[T, C]](c C) *BidiIter[T, C] {
	return &BidiIter[T, C]{Iter[T, C]{pos: c}}
}

// Advance moves one position on and returns the handle.
func (it *BidiIter[T, C]) Advance() *BidiIter[T, C] {
	it.pos = it.pos.StepForward()
	return it
}

// Retreat moves one position back and returns the handle (prefix decrement).
func (it *BidiIter[T, C]) Retreat() *BidiIter[T, C] {
	it.pos = it.pos.StepBackward()
	return it
}

// PostRetreat moves one position back and returns the prior position (postfix decrement).
func (it *BidiIter[T, C]) PostRetreat() C {
	prev := it.pos
	it.pos = it.pos.StepBackward()
	return prev
}

// RandomIter is a mutable handle over a RandomAccess cursor.
type RandomIter[T any, C RandomAccess[T, C]] struct {
	BidiIter[T, C]
}

// NewRandomAccess returns a handle positioned at c.
func NewRandomAccess[T any, C RandomAccess[T, C]](c C) *RandomIter[T, C] {
	return &RandomIter[T, C]{BidiIter[T, C]{Iter[T, C]{pos: c}}}
}

// Advance moves one position on and returns the handle.
func (it *RandomIter[T, C]) Advance() *RandomIter[T, C] {
	it.pos = it.pos.StepForward()
	return it
}

// Retreat moves one position back and returns the handle.
func (it *RandomIter[T, C]) Retreat() *RandomIter[T, C] {
	it.pos = it.pos.StepBackward()
	return it
}

// Jump moves n positions (+= for positive n, -= for negative) and returns the handle.
func (it *RandomIter[T, C]) Jump(n int) *RandomIter[T, C] {
	it.pos = it.pos.Offset(n)
	return it
}

// Plus returns the position n steps on, leaving the handle where it is.
func (it *RandomIter[T, C]) Plus(n int) C { return it.pos.Offset(n) }

// Minus returns the position n steps back, leaving the handle where it is.
func (it *RandomIter[T, C]) Minus(n int) C { return it.pos.Offset(-n) }

// At reads the element n positions away.
func (it *RandomIter[T, C]) At(n int) T { return it.pos.Offset(n).Read() }

// Less, LessEqual, Greater and GreaterEqual order the handle against other.
func (it *RandomIter[T, C]) Less(other C) bool { return it.pos.Compare(other) < 0 }
func (it *RandomIter[T, C]) LessEqual(other C) bool { return it.pos.Compare(other) <= 0 }
func (it *RandomIter[T, C]) Greater(other C) bool { return it.pos.Compare(other) > 0 }
func (it *RandomIter[T, C]) GreaterEqual(other C) bool { return it.pos.Compare(other) >= 0 }
