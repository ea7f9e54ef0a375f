package guard

import (
	"slices"
	"testing"

	"github.com/kbukum/fiter/capability"
	"github.com/kbukum/fiter/errors"
	"github.com/kbukum/fiter/seq"
)

func TestGuard_PassThrough(t *testing.T) {
	g := Guard(seq.Of(1, 2, 3), Config{Checked: true, MaxSteps: 3})
	var got []int
	err := Recover(func() {
		got = slices.Collect(seq.All(g))
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("got %v, want [1 2 3]", got)
	}
}

func TestGuard_PastEnd(t *testing.T) {
	tests := []struct {
		name string
		op   func(c Cursor[int, seq.SliceCursor[int]])
		want string
	}{
		{name: "read", op: func(c Cursor[int, seq.SliceCursor[int]]) { c.Read() }, want: "Read"},
		{name: "step", op: func(c Cursor[int, seq.SliceCursor[int]]) { c.StepForward() }, want: "StepForward"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Guard(seq.Of(1), Config{Checked: true})
			end := g.Start().StepForward()

			err := Recover(func() { tt.op(end) })
			if !errors.HasCode(err, errors.ErrCodeContractViolation) {
				t.Fatalf("expected CONTRACT_VIOLATION, got %v", err)
			}
			appErr, _ := errors.AsAppError(err)
			if appErr.Details["operation"] != tt.want {
				t.Errorf("operation = %v, want %s", appErr.Details["operation"], tt.want)
			}
		})
	}
}

func TestGuard_StepLimit(t *testing.T) {
	g := Guard(seq.Naturals(), Config{MaxSteps: 5})
	var got []int
	err := Recover(func() {
		for v := range seq.All(g) {
			got = append(got, v)
		}
	})
	if !errors.HasCode(err, errors.ErrCodeStepLimitExceeded) {
		t.Fatalf("expected STEP_LIMIT_EXCEEDED, got %v", err)
	}
	if !slices.Equal(got, []int{0, 1, 2, 3, 4, 5}) {
		t.Errorf("got %v before the limit, want [0 1 2 3 4 5]", got)
	}
}

func TestGuard_StepsPerCopy(t *testing.T) {
	g := Guard(seq.Naturals(), Config{MaxSteps: 2})
	a := g.Start().StepForward().StepForward()
	b := g.Start()
	if a.Steps() != 2 || b.Steps() != 0 {
		t.Errorf("steps = %d and %d, want 2 and 0", a.Steps(), b.Steps())
	}
	if err := Recover(func() { b.StepForward() }); err != nil {
		t.Errorf("fresh cursor should not hit the limit: %v", err)
	}
	if err := Recover(func() { a.StepForward() }); err == nil {
		t.Error("expected the third step to panic")
	}
}

func TestGuard_UncheckedIsTransparent(t *testing.T) {
	g := Guard(seq.Of("a"), Config{})
	if (Config{}).Enabled() {
		t.Error("zero config should not be enabled")
	}
	end := g.End()
	if !g.Start().StepForward().Equal(end) {
		t.Error("guarded cursor should reach the end")
	}
}

func TestGuard_Tier(t *testing.T) {
	if got := Guard(seq.Of(1), Config{}).Tier(); got != capability.Forward {
		t.Errorf("got %v, want forward", got)
	}
	gen := seq.FromFunc(func() (int, bool) { return 0, false })
	if got := Guard(gen, Config{}).Tier(); got != capability.SinglePass {
		t.Errorf("got %v, want single-pass", got)
	}
}

func TestGuard_UnwrapBase(t *testing.T) {
	g := Guard(seq.Of(1, 2), Config{Checked: true})
	base, ok := g.Start().StepForward().UnwrapBase().(seq.SliceCursor[int])
	if !ok || base.Index() != 1 {
		t.Errorf("unexpected base %v", base)
	}
}

func TestRecover_RepanicsForeignValues(t *testing.T) {
	defer func() {
		if r := recover(); r != "boom" {
			t.Errorf("recovered %v, want boom", r)
		}
	}()
	_ = Recover(func() { panic("boom") })
	t.Error("expected Recover to re-panic")
}

func TestRecover_NoPanic(t *testing.T) {
	if err := Recover(func() {}); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}
