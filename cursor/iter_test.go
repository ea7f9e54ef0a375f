package cursor

import "testing"

// idx is a minimal random-access cursor over a fixed slice.
type idx struct {
	items []string
	pos   int
}

func (c idx) Read() string { return c.items[c.pos] }
func (c idx) StepForward() idx { c.pos++; return c }
func (c idx) StepBackward() idx { c.pos--; return c }
func (c idx) Offset(n int) idx { c.pos += n; return c }
func (c idx) Equal(other idx) bool { return c.pos == other.pos }
func (c idx) UnwrapBase() any { return c }
func (c idx) Compare(other idx) int {
	switch {
	case c.pos < other.pos:
		return -1
	case c.pos > other.pos:
		return 1
	default:
		return 0
	}
}

// wrap is a forward-only adaptor cursor over idx.
type wrap struct {
	inner idx
}

func (w wrap) Read() string { return w.inner.Read() + "!" }
func (w wrap) StepForward() wrap { return wrap{w.inner.StepForward()} }
func (w wrap) Equal(other wrap) bool { return w.inner.Equal(other.inner) }
func (w wrap) UnwrapBase() any { return w.inner.UnwrapBase() }

var letters = []string{"a", "b", "c", "d"}

func TestIter_AdvanceAndGet(t *testing.T) {
	end := idx{items: letters, pos: len(letters)}
	it := New(idx{items: letters})

	var got []string
	for ; it.NotEqual(end); it.Advance() {
		got = append(got, it.Get())
	}
	if len(got) != 4 || got[0] != "a" || got[3] != "d" {
		t.Errorf("got %v, want %v", got, letters)
	}
	if !it.Equal(end) {
		t.Error("expected handle to finish at end")
	}
}

func TestIter_PostAdvance(t *testing.T) {
	it := New(idx{items: letters})
	prev := it.PostAdvance()
	if prev.Read() != "a" {
		t.Errorf("postfix advance should return prior position, got %q", prev.Read())
	}
	if it.Get() != "b" {
		t.Errorf("expected handle at b, got %q", it.Get())
	}
	if it.Cursor().pos != 1 {
		t.Errorf("expected cursor position 1, got %d", it.Cursor().pos)
	}
}

func TestIter_CopiesAreIndependent(t *testing.T) {
	it := New(idx{items: letters})
	saved := it.Cursor()
	it.Advance().Advance()
	if saved.Read() != "a" {
		t.Errorf("saved cursor moved with handle, reads %q", saved.Read())
	}
}

func TestBidiIter(t *testing.T) {
	it := NewBidirectional(idx{items: letters, pos: 3})
	if it.Retreat().Get() != "c" {
		t.Errorf("expected c after retreat, got %q", it.Get())
	}
	prev := it.PostRetreat()
	if prev.Read() != "c" || it.Get() != "b" {
		t.Errorf("postfix retreat: prev %q, now %q", prev.Read(), it.Get())
	}
	if it.Advance().Get() != "c" {
		t.Errorf("expected c after advance, got %q", it.Get())
	}
}

func TestRandomIter(t *testing.T) {
	it := NewRandomAccess(idx{items: letters})
	if it.At(2) != "c" {
		t.Errorf("At(2) = %q, want c", it.At(2))
	}
	if it.Jump(3).Get() != "d" {
		t.Errorf("expected d after Jump(3), got %q", it.Get())
	}
	if it.Jump(-2).Get() != "b" {
		t.Errorf("expected b after Jump(-2), got %q", it.Get())
	}
	if it.Plus(1).Read() != "c" || it.Minus(1).Read() != "a" {
		t.Error("Plus/Minus returned the wrong positions")
	}
	if it.Get() != "b" {
		t.Error("Plus/Minus must not move the handle")
	}

	start := idx{items: letters}
	end := idx{items: letters, pos: len(letters)}
	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"Less(end)", it.Less(end), true},
		{"Less(start)", it.Less(start), false},
		{"LessEqual(current)", it.LessEqual(it.Cursor()), true},
		{"Greater(start)", it.Greater(start), true},
		{"GreaterEqual(end)", it.GreaterEqual(end), false},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Errorf("%s = %v, want %v", tc.name, tc.got, tc.want)
		}
	}
	if it.Advance().Retreat().Get() != "b" {
		t.Error("advance then retreat should return to b")
	}
}

func TestBaseAs(t *testing.T) {
	w := wrap{idx{items: letters, pos: 2}}
	base, ok := BaseAs[idx](w)
	if !ok {
		t.Fatal("expected base to be an idx")
	}
	if base.pos != 2 {
		t.Errorf("expected base at position 2, got %d", base.pos)
	}
	if _, ok := BaseAs[wrap](w); ok {
		t.Error("base of a wrapper should not be the wrapper")
	}

	it := New(w)
	if it.Get() != "c!" {
		t.Errorf("expected c!, got %q", it.Get())
	}
	if b, _ := it.Base().(idx); b.pos != 2 {
		t.Errorf("Base() returned position %d, want 2", b.pos)
	}
}
