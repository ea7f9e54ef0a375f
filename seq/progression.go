package seq

import (
	"golang.org/x/exp/constraints"

	"github.com/kbukum/fiter/capability"
)

// Number is the element constraint of a progression.
type Number interface {
	constraints.Integer | constraints.Float
}

// ProgressionSeq is the unbounded arithmetic progression start, start+step,
// start+2*step, ...
//
// Its end cursor never equals a live cursor, so ranging over it directly
// never terminates. Bound it with Take or TakeWhile.
type ProgressionSeq[T Number] struct {
	start T
	step  T
}

// Progression counts from start by step.
func Progression[T Number](start, step T) ProgressionSeq[T] {
	return ProgressionSeq[T]{start: start, step: step}
}

// Count counts from start by one.
func Count[T Number](start T) ProgressionSeq[T] {
	return ProgressionSeq[T]{start: start, step: 1}
}

// Naturals counts 0, 1, 2, ...
func Naturals() ProgressionSeq[int] {
	return Count(0)
}

func (s ProgressionSeq[T]) Start() ProgressionCursor[T] {
	return ProgressionCursor[T]{current: s.start, step: s.step}
}

func (s ProgressionSeq[T]) End() ProgressionCursor[T] {
	return ProgressionCursor[T]{current: s.start, step: s.step, end: true}
}

func (s ProgressionSeq[T]) Tier() capability.Tier { return capability.Forward }

// ProgressionCursor is a position within a ProgressionSeq.
type ProgressionCursor[T Number] struct {
	current T
	step    T
	end     bool
}

func (c ProgressionCursor[T]) Read() T { return c.current }

func (c ProgressionCursor[T]) StepForward() ProgressionCursor[T] {
	c.current += c.step
	return c
}

// Equal never matches a live cursor against the end sentinel.
func (c ProgressionCursor[T]) Equal(other ProgressionCursor[T]) bool {
	return c.end == other.end && c.current == other.current
}

func (c ProgressionCursor[T]) UnwrapBase() any { return c }
