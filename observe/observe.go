package observe

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/fiter/capability"
	"github.com/kbukum/fiter/cursor"
	"github.com/kbukum/fiter/logger"
	"github.com/kbukum/fiter/seq"
)

// SpanName is the name of the span recorded for each traversal.
const SpanName = "fiter.traverse"

// Hooks are the instruments an observed sequence reports to. Nil members are
// skipped.
type Hooks struct {
	Log     *logger.Logger
	Metrics *Metrics
	Tracer  trace.Tracer
}

func (h Hooks) empty() bool {
	return h.Log == nil && h.Metrics == nil && h.Tracer == nil
}

// Seq is a forward pass-through over a source sequence that reports cursor
// activity to its hooks.
type Seq[T any, C cursor.Forward[T, C]] struct {
	src   seq.Sequence[T, C]
	name  string
	hooks Hooks
	ctx   context.Context
	attrs metric.MeasurementOption
}

// Instrument wraps src, reporting under name to the given hooks.
func Instrument[T any, C cursor.Forward[T, C]](src seq.Sequence[T, C], name string, hooks Hooks) Seq[T, C] {
	return Seq[T, C]{
		src:   src,
		name:  name,
		hooks: hooks,
		ctx:   context.Background(),
		attrs: metric.WithAttributes(attribute.String(logger.FieldSequence, name)),
	}
}

// Logged wraps src with debug step logging. A nil log uses the logger
// registered as "fiter".
func Logged[T any, C cursor.Forward[T, C]](src seq.Sequence[T, C], log *logger.Logger, name string) Seq[T, C] {
	if log == nil {
		log = logger.Get("fiter")
	}
	return Instrument(src, name, Hooks{Log: log})
}

// Metered wraps src with start, step and read counters.
func Metered[T any, C cursor.Forward[T, C]](src seq.Sequence[T, C], m *Metrics, name string) Seq[T, C] {
	return Instrument(src, name, Hooks{Metrics: m})
}

// Traced wraps src so each traversal records one span, ended when its cursor
// reaches the end. Traversals abandoned early leave their span open.
func Traced[T any, C cursor.Forward[T, C]](src seq.Sequence[T, C], tracer trace.Tracer, name string) Seq[T, C] {
	return Instrument(src, name, Hooks{Tracer: tracer})
}

// WithContext returns a copy whose spans and measurements use ctx.
func (s Seq[T, C]) WithContext(ctx context.Context) Seq[T, C] {
	s.ctx = ctx
	return s
}

// Start returns an instrumented cursor at the first element and records
// the start.
func (s Seq[T, C]) Start() Cursor[T, C] {
	c := Cursor[T, C]{cur: s.src.Start(), end: s.src.End(), seq: &s}
	if s.hooks.empty() {
		return c
	}
	c.id = uuid.NewString()
	if s.hooks.Log != nil {
		s.hooks.Log.Debug("cursor started", logger.Fields(
			logger.FieldSequence, s.name,
			logger.FieldCursorID, c.id,
			logger.FieldTier, s.src.Tier().String(),
		))
	}
	if s.hooks.Metrics != nil {
		s.hooks.Metrics.recordStart(s.ctx, s.attrs)
	}
	if s.hooks.Tracer != nil {
		_, c.span = s.hooks.Tracer.Start(s.ctx, SpanName, trace.WithAttributes(
			attribute.String(logger.FieldSequence, s.name),
			attribute.String(logger.FieldCursorID, c.id),
		))
	}
	c.finishIfDone()
	return c
}

// End returns the sentinel. Nothing is recorded for it.
func (s Seq[T, C]) End() Cursor[T, C] {
	end := s.src.End()
	return Cursor[T, C]{cur: end, end: end, seq: &s}
}

func (s Seq[T, C]) Tier() capability.Tier {
	return capability.Cap(s.src.Tier(), capability.Forward)
}

// Cursor is a position within an observed sequence.
type Cursor[T any, C cursor.Forward[T, C]] struct {
	cur  C
	end  C
	seq  *Seq[T, C]
	id   string
	step int
	span trace.Span
}

// ID returns the cursor's traversal id, or "" for end sentinels and
// uninstrumented sequences.
func (c Cursor[T, C]) ID() string { return c.id }

func (c Cursor[T, C]) Read() T {
	if m := c.seq.hooks.Metrics; m != nil {
		m.recordRead(c.seq.ctx, c.seq.attrs)
	}
	return c.cur.Read()
}

func (c Cursor[T, C]) StepForward() Cursor[T, C] {
	c.cur = c.cur.StepForward()
	c.step++
	if log := c.seq.hooks.Log; log != nil {
		log.Debug("cursor advanced", logger.Fields(
			logger.FieldSequence, c.seq.name,
			logger.FieldCursorID, c.id,
			logger.FieldStep, c.step,
		))
	}
	if m := c.seq.hooks.Metrics; m != nil {
		m.recordStep(c.seq.ctx, c.seq.attrs)
	}
	c.finishIfDone()
	return c
}

func (c Cursor[T, C]) Equal(other Cursor[T, C]) bool { return c.cur.Equal(other.cur) }

func (c Cursor[T, C]) UnwrapBase() any { return c.cur.UnwrapBase() }

// finishIfDone logs and ends the span once the cursor reaches the end.
func (c Cursor[T, C]) finishIfDone() {
	log := c.seq.hooks.Log
	if log == nil && c.span == nil {
		return
	}
	if !c.cur.Equal(c.end) {
		return
	}
	if log != nil {
		log.Debug("cursor finished", logger.Fields(
			logger.FieldSequence, c.seq.name,
			logger.FieldCursorID, c.id,
			logger.FieldStep, c.step,
		))
	}
	if c.span != nil {
		c.span.SetAttributes(attribute.Int(logger.FieldStep, c.step))
		c.span.End()
	}
}
