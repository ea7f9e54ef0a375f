// Package cursor defines the protocol shared by every sequence position.
//
// A cursor is a small value. Adaptors implement only a handful of primitive
// methods (Read, StepForward, Equal, UnwrapBase, plus StepBackward or
// Offset/Compare at higher tiers); the handles in this package derive the
// rest: prefix and postfix advance, dereference, inequality, and the
// ordering operators of random-access cursors.
//
// Capability tiers are constraints, so an operation the weakest link of a
// pipeline cannot perform is rejected at compile time:
//
//	it := cursor.New(s.Start())              // any Forward cursor
//	bi := cursor.NewBidirectional(s.Start()) // only compiles for Bidirectional cursors
//
// # Base unwrap
//
// UnwrapBase returns the innermost cursor beneath a stack of adaptors. Use
// BaseAs to recover its concrete type:
//
//	base, ok := cursor.BaseAs[seq.SliceCursor[int]](filtered.Start())
package cursor
