package capability

import (
	"testing"

	"github.com/kbukum/fiter/errors"
)

func TestMin(t *testing.T) {
	tiers := []Tier{SinglePass, Forward, Bidirectional, RandomAccess}
	for _, a := range tiers {
		for _, b := range tiers {
			got := Min(a, b)
			want := a
			if b < a {
				want = b
			}
			if got != want {
				t.Errorf("Min(%s, %s) = %s, want %s", a, b, got, want)
			}
			if Min(b, a) != got {
				t.Errorf("Min is not symmetric for %s, %s", a, b)
			}
		}
	}
}

func TestCap(t *testing.T) {
	tests := []struct {
		src, ceiling, want Tier
	}{
		{RandomAccess, Forward, Forward},
		{Bidirectional, Forward, Forward},
		{Forward, Forward, Forward},
		{SinglePass, Forward, SinglePass},
		{RandomAccess, RandomAccess, RandomAccess},
		{Bidirectional, RandomAccess, Bidirectional},
	}
	for _, tc := range tests {
		if got := Cap(tc.src, tc.ceiling); got != tc.want {
			t.Errorf("Cap(%s, %s) = %s, want %s", tc.src, tc.ceiling, got, tc.want)
		}
	}
}

func TestSupports(t *testing.T) {
	if !RandomAccess.Supports(Bidirectional) {
		t.Error("random-access should support bidirectional")
	}
	if Forward.Supports(Bidirectional) {
		t.Error("forward should not support bidirectional")
	}
	if !SinglePass.Supports(SinglePass) {
		t.Error("a tier should support itself")
	}
}

func TestString(t *testing.T) {
	tests := map[Tier]string{
		SinglePass:    "single-pass",
		Forward:       "forward",
		Bidirectional: "bidirectional",
		RandomAccess:  "random-access",
		Tier(42):      "unknown",
	}
	for tier, want := range tests {
		if got := tier.String(); got != want {
			t.Errorf("Tier(%d).String() = %q, want %q", int(tier), got, want)
		}
	}
	if Tier(-1).Valid() {
		t.Error("expected Tier(-1) to be invalid")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Tier
		wantErr bool
	}{
		{"forward", Forward, false},
		{"Random_Access", RandomAccess, false},
		{" bidirectional ", Bidirectional, false},
		{"single-pass", SinglePass, false},
		{"sideways", SinglePass, true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !errors.HasCode(err, errors.ErrCodeInvalidInput) {
					t.Errorf("expected INVALID_INPUT, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}
