package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Contract errors
const (
	// ErrCodeContractViolation indicates a cursor precondition was broken,
	// e.g. reading a cursor that compares equal to its end.
	ErrCodeContractViolation ErrorCode = "CONTRACT_VIOLATION"
	// ErrCodeStepLimitExceeded indicates a guarded cursor advanced past its step budget.
	ErrCodeStepLimitExceeded ErrorCode = "STEP_LIMIT_EXCEEDED"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidFormat indicates a field has an invalid format.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected internal failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// contractCodes lists the codes raised by panics rather than returned.
var contractCodes = map[ErrorCode]bool{
	ErrCodeContractViolation: true,
	ErrCodeStepLimitExceeded: true,
}

// IsContractCode reports whether code marks a broken traversal precondition.
func IsContractCode(code ErrorCode) bool {
	return contractCodes[code]
}
