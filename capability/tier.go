package capability

import (
	"strings"

	"github.com/kbukum/fiter/errors"
)

// Tier is a traversal capability level.
type Tier int

const (
	// SinglePass cursors can be read and advanced, but copies share position state.
	SinglePass Tier = iota
	// Forward cursors can be copied and advanced independently.
	Forward
	// Bidirectional cursors can also step backward.
	Bidirectional
	// RandomAccess cursors can also jump by an offset and be ordered.
	RandomAccess
)

var tierNames = map[Tier]string{
	SinglePass:    "single-pass",
	Forward:       "forward",
	Bidirectional: "bidirectional",
	RandomAccess:  "random-access",
}

// String returns the tier's name.
func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether t is one of the defined tiers.
func (t Tier) Valid() bool {
	_, ok := tierNames[t]
	return ok
}

// Supports reports whether a sequence of tier t offers every operation of required.
func (t Tier) Supports(required Tier) bool {
	return t >= required
}

// Min returns the combined tier of two sources.
func Min(a, b Tier) Tier {
	if a < b {
		return a
	}
	return b
}

// Cap returns the effective tier of a source under an adaptor's own ceiling.
func Cap(src, ceiling Tier) Tier {
	return Min(src, ceiling)
}

// Parse converts a tier name into a Tier. Matching ignores case, and
// underscores may be used in place of hyphens.
func Parse(s string) (Tier, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for tier, n := range tierNames {
		if n == name {
			return tier, nil
		}
	}
	return SinglePass, errors.InvalidInput("tier", "unknown tier "+s)
}
