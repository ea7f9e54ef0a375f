// Package errors provides the structured error type used across fiter.
//
// Traversal has no recoverable error taxonomy: advancing or reading past the
// end of a sequence is a contract violation. Code that chooses to trap such
// violations (see package guard) panics with an *AppError so the failure
// carries a machine-readable code. Configuration and parsing failures are
// returned as ordinary *AppError values.
package errors
