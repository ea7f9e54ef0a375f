package seq

import (
	"github.com/kbukum/fiter/capability"
	"github.com/kbukum/fiter/cursor"
)

// Map never changes where a sequence ends or how its cursors move, so it
// keeps its source's tier. Go cannot add methods conditionally, so there is
// one constructor per tier: Map for forward sources, MapBidirectional and
// MapRandomAccess for sources whose cursors support more.
//
// The transform runs on every Read. Reading the same cursor twice calls it
// twice, side effects included.

// MapSeq applies a transform to each element of a forward source.
type MapSeq[I, O any, C cursor.Forward[I, C]] struct {
	src Sequence[I, C]
	fn  func(I) O
}

// Map returns src with fn applied to each element.
func Map[I, O any, C cursor.Forward[I, C]](src Sequence[I, C], fn func(I) O) MapSeq[I, O, C] {
	return MapSeq[I, O, C]{src: src, fn: fn}
}

func (s MapSeq[I, O, C]) Start() MapCursor[I, O, C] {
	return MapCursor[I, O, C]{cur: s.src.Start(), fn: s.fn}
}

func (s MapSeq[I, O, C]) End() MapCursor[I, O, C] {
	return MapCursor[I, O, C]{cur: s.src.End(), fn: s.fn}
}

func (s MapSeq[I, O, C]) Tier() capability.Tier {
	return capability.Cap(s.src.Tier(), capability.Forward)
}

// MapCursor is a position within a MapSeq.
type MapCursor[I, O any, C cursor.Forward[I, C]] struct {
	cur C
	fn  func(I) O
}

func (c MapCursor[I, O, C]) Read() O { return c.fn(c.cur.Read()) }

func (c MapCursor[I, O, C]) StepForward() MapCursor[I, O, C] {
	c.cur = c.cur.StepForward()
	return c
}

func (c MapCursor[I, O, C]) Equal(other MapCursor[I, O, C]) bool { return c.cur.Equal(other.cur) }

func (c MapCursor[I, O, C]) UnwrapBase() any { return c.cur.UnwrapBase() }

// MapBidiSeq applies a transform to each element of a bidirectional source.
type MapBidiSeq[I, O any, C cursor.Bidirectional[I, C]] struct {
	src Sequence[I, C]
	fn  func(I) O
}

// MapBidirectional returns src with fn applied to each element, keeping
// backward traversal.
func MapBidirectional[I, O any, C cursor.Bidirectional[I, C]](src Sequence[I, C], fn func(I) O) MapBidiSeq[I, O, C] {
	return MapBidiSeq[I, O, C]{src: src, fn: fn}
}

func (s MapBidiSeq[I, O, C]) Start() MapBidiCursor[I, O, C] {
	return MapBidiCursor[I, O, C]{cur: s.src.Start(), fn: s.fn}
}

func (s MapBidiSeq[I, O, C]) End() MapBidiCursor[I, O, C] {
	return MapBidiCursor[I, O, C]{cur: s.src.End(), fn: s.fn}
}

func (s MapBidiSeq[I, O, C]) Tier() capability.Tier {
	return capability.Cap(s.src.Tier(), capability.Bidirectional)
}

// MapBidiCursor is a position within a MapBidiSeq.
type MapBidiCursor[I, O any, C cursor.Bidirectional[I, C]] struct {
	cur C
	fn  func(I) O
}

func (c MapBidiCursor[I, O, C]) Read() O { return c.fn(c.cur.Read()) }

func (c MapBidiCursor[I, O, C]) StepForward() MapBidiCursor[I, O, C] {
	c.cur = c.cur.StepForward()
	return c
}

func (c MapBidiCursor[I, O, C]) StepBackward() MapBidiCursor[I, O, C] {
	c.cur = c.cur.StepBackward()
	return c
}

func (c MapBidiCursor[I, O, C]) Equal(other MapBidiCursor[I, O, C]) bool {
	return c.cur.Equal(other.cur)
}

func (c MapBidiCursor[I, O, C]) UnwrapBase() any { return c.cur.UnwrapBase() }

// MapRandomSeq applies a transform to each element of a random-access source.
type MapRandomSeq[I, O any, C cursor.RandomAccess[I, C]] struct {
	src Sequence[I, C]
	fn  func(I) O
}

// MapRandomAccess returns src with fn applied to each element, keeping
// offsets and ordering.
func MapRandomAccess[I, O any, C cursor.RandomAccess[I, C]](src Sequence[I, C], fn func(I) O) MapRandomSeq[I, O, C] {
	return MapRandomSeq[I, O, C]{src: src, fn: fn}
}

func (s MapRandomSeq[I, O, C]) Start() MapRandomCursor[I, O, C] {
	return MapRandomCursor[I, O, C]{cur: s.src.Start(), fn: s.fn}
}

func (s MapRandomSeq[I, O, C]) End() MapRandomCursor[I, O, C] {
	return MapRandomCursor[I, O, C]{cur: s.src.End(), fn: s.fn}
}

func (s MapRandomSeq[I, O, C]) Tier() capability.Tier { return s.src.Tier() }

// MapRandomCursor is a position within a MapRandomSeq.
type MapRandomCursor[I, O any, C cursor.RandomAccess[I, C]] struct {
	cur C
	fn  func(I) O
}

func (c MapRandomCursor[I, O, C]) Read() O { return c.fn(c.cur.Read()) }

func (c MapRandomCursor[I, O, C]) StepForward() MapRandomCursor[I, O, C] {
	c.cur = c.cur.StepForward()
	return c
}

func (c MapRandomCursor[I, O, C]) StepBackward() MapRandomCursor[I, O, C] {
	c.cur = c.cur.StepBackward()
	return c
}

func (c MapRandomCursor[I, O, C]) Offset(n int) MapRandomCursor[I, O, C] {
	c.cur = c.cur.Offset(n)
	return c
}

func (c MapRandomCursor[I, O, C]) Equal(other MapRandomCursor[I, O, C]) bool {
	return c.cur.Equal(other.cur)
}

func (c MapRandomCursor[I, O, C]) Compare(other MapRandomCursor[I, O, C]) int {
	return c.cur.Compare(other.cur)
}

func (c MapRandomCursor[I, O, C]) UnwrapBase() any { return c.cur.UnwrapBase() }
