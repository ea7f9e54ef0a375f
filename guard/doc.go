// Package guard traps cursor contract violations.
//
// Reading or advancing a cursor that equals its end is undefined for the
// adaptors in package seq. Wrapping a sequence with Guard turns those
// mistakes into panics carrying an *errors.AppError, and can cap how far any
// one cursor may travel, which keeps an unbounded progression from running
// forever in tests.
//
// # Configuration
//
//	guard:
//	  checked: true
//	  max_steps: 10000
//
// # Usage
//
//	safe := guard.Guard(seq.Naturals(), guard.Config{MaxSteps: 1000})
//	err := guard.Recover(func() {
//	    for v := range seq.All(safe) {
//	        use(v)
//	    }
//	})
//	if errors.HasCode(err, errors.ErrCodeStepLimitExceeded) {
//	    // the loop never terminated on its own
//	}
package guard
