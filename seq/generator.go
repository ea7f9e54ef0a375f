package seq

import (
	"iter"

	"github.com/kbukum/fiter/capability"
)

// GeneratorSeq is a single-pass sequence over a pull function. All cursors
// spawned from one GeneratorSeq share the generator: advancing any of them
// advances every copy, and Start resumes wherever the generator is.
type GeneratorSeq[T any] struct {
	state *pullState[T]
}

// FromFunc returns a single-pass sequence that calls next for each element
// until it reports false. next is not called until Start is.
func FromFunc[T any](next func() (T, bool)) GeneratorSeq[T] {
	return GeneratorSeq[T]{state: &pullState[T]{next: next}}
}

func (s GeneratorSeq[T]) Start() GeneratorCursor[T] {
	s.state.prime()
	return GeneratorCursor[T]{state: s.state, pos: s.state.pos}
}

func (s GeneratorSeq[T]) End() GeneratorCursor[T] {
	return GeneratorCursor[T]{state: s.state, end: true}
}

func (s GeneratorSeq[T]) Tier() capability.Tier { return capability.SinglePass }

type pullState[T any] struct {
	next   func() (T, bool)
	cur    T
	pos    int
	primed bool
	done   bool
}

func (p *pullState[T]) prime() {
	if p.primed {
		return
	}
	p.primed = true
	p.pull()
}

func (p *pullState[T]) pull() {
	v, ok := p.next()
	if !ok {
		var zero T
		p.cur, p.done = zero, true
		return
	}
	p.cur = v
}

// GeneratorCursor is a position within a GeneratorSeq.
type GeneratorCursor[T any] struct {
	state *pullState[T]
	pos   int
	end   bool
}

func (c GeneratorCursor[T]) Read() T { return c.state.cur }

func (c GeneratorCursor[T]) StepForward() GeneratorCursor[T] {
	c.state.pos++
	c.state.pull()
	c.pos = c.state.pos
	return c
}

// Equal compares pull counts. A live cursor matches the end sentinel once
// the generator is exhausted.
func (c GeneratorCursor[T]) Equal(other GeneratorCursor[T]) bool {
	switch {
	case c.end && other.end:
		return true
	case other.end:
		return c.state.done
	case c.end:
		return other.state.done
	default:
		return c.pos == other.pos
	}
}

func (c GeneratorCursor[T]) UnwrapBase() any { return c }

// FromIter adapts a Go iterator into a single-pass sequence. The returned
// stop function releases the iterator and must be called if the sequence is
// not traversed to its end.
func FromIter[T any](it iter.Seq[T]) (GeneratorSeq[T], func()) {
	next, stop := iter.Pull(it)
	return FromFunc(next), stop
}
