package cursor

// Forward is satisfied by cursors that can be read and moved one position on.
// C is the cursor's own type; methods take and return values of it, so a
// moved cursor never shares position state with the one it came from.
type Forward[T, C any] interface {
	// Read returns the current element. The cursor must not equal its end.
	Read() T
	// StepForward returns the cursor one position on. The cursor must not
	// equal its end.
	StepForward() C
	// Equal reports whether both cursors denote the same position.
	Equal(other C) bool
	// UnwrapBase returns the innermost cursor beneath this one, or the cursor
	// itself when nothing lies beneath it.
	UnwrapBase() any
}

// Bidirectional cursors can also move one position back.
type Bidirectional[T, C any] interface {
	Forward[T, C]
	// StepBackward returns the cursor one position back. The cursor must not
	// be at its start.
	StepBackward() C
}

// RandomAccess cursors can also jump and be ordered.
type RandomAccess[T, C any] interface {
	Bidirectional[T, C]
	// Offset returns the cursor moved n positions; n may be negative.
	Offset(n int) C
	// Compare returns -1, 0 or +1 as the cursor is before, at or after other.
	Compare(other C) int
}

// BaseAs unwraps c to its innermost cursor and asserts its type.
func BaseAs[B any](c interface{ UnwrapBase() any }) (B, bool) {
	b, ok := c.UnwrapBase().(B)
	return b, ok
}
