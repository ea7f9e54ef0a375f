package observe

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Counter names recorded by Metrics.
const (
	MetricStarts = "fiter.cursor.starts"
	MetricSteps  = "fiter.cursor.steps"
	MetricReads  = "fiter.cursor.reads"
)

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Tracer returns a named tracer from the global provider.
func Tracer(name string) trace.Tracer {
	return otel.Tracer(name)
}

// Metrics holds the cursor counters.
type Metrics struct {
	starts metric.Int64Counter
	steps  metric.Int64Counter
	reads  metric.Int64Counter
}

// NewMetrics creates the cursor counters on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	starts, err := meter.Int64Counter(MetricStarts,
		metric.WithDescription("Cursors created by Start"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricStarts, err)
	}

	steps, err := meter.Int64Counter(MetricSteps,
		metric.WithDescription("Cursor advances"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricSteps, err)
	}

	reads, err := meter.Int64Counter(MetricReads,
		metric.WithDescription("Element reads"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricReads, err)
	}

	return &Metrics{starts: starts, steps: steps, reads: reads}, nil
}

func (m *Metrics) recordStart(ctx context.Context, attrs metric.AddOption) {
	m.starts.Add(ctx, 1, attrs)
}

func (m *Metrics) recordStep(ctx context.Context, attrs metric.AddOption) {
	m.steps.Add(ctx, 1, attrs)
}

func (m *Metrics) recordRead(ctx context.Context, attrs metric.AddOption) {
	m.reads.Add(ctx, 1, attrs)
}
