// Package observe instruments sequence traversal.
//
// An instrumented sequence passes elements through untouched and reports
// what its cursors do: step logs through package logger, counters through
// an OpenTelemetry meter, and one span per traversal through an
// OpenTelemetry tracer. Every cursor returned by Start gets its own uuid so
// log lines and spans from interleaved traversals can be told apart.
//
// Instruments fire from cursor methods, which take no context. Use
// Seq.WithContext to parent spans and measurements.
//
// # Configuration
//
//	observe:
//	  log_steps: true
//	  metrics: true
//	  spans: false
//	  instrumentation_name: "github.com/kbukum/fiter"
//
// # Usage
//
//	hooks, err := observe.NewHooks(cfg.Observe)
//	if err != nil {
//	    return err
//	}
//	evens := observe.Instrument(seq.Filter(nums, isEven), "evens", hooks)
//	for v := range seq.All(evens) {
//	    use(v)
//	}
package observe
