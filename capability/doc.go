// Package capability models the traversal tiers a sequence can support.
//
// Tiers are ordered: SinglePass < Forward < Bidirectional < RandomAccess.
// Composing sequences never widens a tier: the result of combining two
// sources is the weaker of the two, and an adaptor that cannot reverse or
// jump caps its source at Forward.
//
// # Usage
//
//	tier := capability.Cap(src.Tier(), capability.Forward)
//	if tier.Supports(capability.Bidirectional) {
//	    // never true for a capped sequence
//	}
package capability
