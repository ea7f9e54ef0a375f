// Package seq provides lazily evaluated, composable sequence adaptors.
//
// A Sequence is an immutable view that hands out a start cursor and an end
// cursor. Adaptors wrap one or two sequences together with a parameter (a
// predicate, a transform, a count or another sequence) and are themselves
// sequences, so pipelines nest without materializing anything:
//
//	nums := seq.FromSlice(values)
//	mod6 := seq.Filter(seq.Filter(nums, mod3), mod2)
//	for v := range seq.All(mod6) {
//	    fmt.Println(v)
//	}
//
// # Adaptors
//
//   - Map: transform each element (Map, MapBidirectional, MapRandomAccess)
//   - Filter: keep elements matching a predicate
//   - TakeWhile / DropWhile: split at the first element failing a predicate
//   - Take / Drop: split at a count
//   - Chain: one sequence followed by another
//   - Zip: pairs from two sequences, ending with the shorter one
//
// # Sources
//
//   - FromSlice / Of: random-access view over a slice
//   - FromFunc: single-pass generator
//   - Progression / Count / Naturals: unbounded arithmetic progressions
//
// # Capability tiers
//
// Map keeps the tier of its source (pick the constructor matching the
// operations you need); every other adaptor caps at Forward, and Chain and
// Zip take the weaker of their two sources. Tier() reports the result.
//
// # Laziness
//
// Constructing an adaptor performs no traversal. Drop and DropWhile skip
// their prefix each time Start is called. Filter skips rejected elements
// when a cursor is created and after each step.
//
// Reading or advancing a cursor that equals its end is a contract
// violation with an undefined result; wrap a sequence with guard.Guard to
// trap it instead. Predicates and transforms are called as given: a panic
// inside one propagates to the caller.
package seq
