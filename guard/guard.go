package guard

import (
	"github.com/kbukum/fiter/capability"
	"github.com/kbukum/fiter/cursor"
	"github.com/kbukum/fiter/errors"
	"github.com/kbukum/fiter/seq"
)

// Config controls which violations a guarded sequence traps.
type Config struct {
	// Checked panics on Read or StepForward at the end.
	Checked bool `yaml:"checked" mapstructure:"checked"`
	// MaxSteps panics when one cursor is advanced more than this many times.
	// Zero means no limit.
	MaxSteps int `yaml:"max_steps" mapstructure:"max_steps" validate:"gte=0"`
}

// Enabled reports whether the config traps anything.
func (c Config) Enabled() bool { return c.Checked || c.MaxSteps > 0 }

// Seq is a forward pass-through over a source sequence with contract checks.
type Seq[T any, C cursor.Forward[T, C]] struct {
	src seq.Sequence[T, C]
	cfg Config
}

// Guard wraps src with the checks enabled in cfg.
func Guard[T any, C cursor.Forward[T, C]](src seq.Sequence[T, C], cfg Config) Seq[T, C] {
	return Seq[T, C]{src: src, cfg: cfg}
}

func (s Seq[T, C]) Start() Cursor[T, C] {
	return Cursor[T, C]{cur: s.src.Start(), end: s.src.End(), cfg: s.cfg}
}

func (s Seq[T, C]) End() Cursor[T, C] {
	end := s.src.End()
	return Cursor[T, C]{cur: end, end: end, cfg: s.cfg}
}

func (s Seq[T, C]) Tier() capability.Tier {
	return capability.Cap(s.src.Tier(), capability.Forward)
}

// Cursor is a position within a guarded sequence. Copies count their steps
// independently.
type Cursor[T any, C cursor.Forward[T, C]] struct {
	cur   C
	end   C
	cfg   Config
	steps int
}

// Steps returns how many times this cursor has been advanced.
func (c Cursor[T, C]) Steps() int { return c.steps }

func (c Cursor[T, C]) Read() T {
	if c.cfg.Checked && c.cur.Equal(c.end) {
		panic(errors.PastEnd("Read"))
	}
	return c.cur.Read()
}

func (c Cursor[T, C]) StepForward() Cursor[T, C] {
	if c.cfg.Checked && c.cur.Equal(c.end) {
		panic(errors.PastEnd("StepForward"))
	}
	if c.cfg.MaxSteps > 0 && c.steps >= c.cfg.MaxSteps {
		panic(errors.StepLimitExceeded(c.cfg.MaxSteps))
	}
	c.cur = c.cur.StepForward()
	c.steps++
	return c
}

func (c Cursor[T, C]) Equal(other Cursor[T, C]) bool { return c.cur.Equal(other.cur) }

func (c Cursor[T, C]) UnwrapBase() any { return c.cur.UnwrapBase() }

// Recover runs fn and returns the *errors.AppError it panicked with, if any.
// Panics with any other value are re-raised.
func Recover(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		appErr, ok := r.(*errors.AppError)
		if !ok {
			panic(r)
		}
		err = appErr
	}()
	fn()
	return nil
}
