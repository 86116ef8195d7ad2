package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Run-control errors
const (
	// ErrCodeCanceled indicates the run was canceled by its caller.
	ErrCodeCanceled ErrorCode = "CANCELED"
	// ErrCodeTimeout indicates the run hit its deadline.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeStepLimitExceeded indicates the run took more driving steps than allowed.
	ErrCodeStepLimitExceeded ErrorCode = "STEP_LIMIT_EXCEEDED"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeInvalidFormat indicates a field has an invalid format.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// I/O and internal errors
const (
	// ErrCodeIO indicates reading or writing stream data failed.
	ErrCodeIO ErrorCode = "IO_ERROR"
	// ErrCodeNotFound indicates a named resource such as a config file does not exist.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeInternal indicates a broken invariant inside a pipeline.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeTimeout: true,
	ErrCodeIO:      true,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}

// exitCodes maps codes to process exit statuses, following sysexits(3) where one fits.
var exitCodes = map[ErrorCode]int{
	ErrCodeInvalidInput:      64,
	ErrCodeInvalidFormat:     65,
	ErrCodeNotFound:          66,
	ErrCodeInternal:          70,
	ErrCodeIO:                74,
	ErrCodeTimeout:           75,
	ErrCodeStepLimitExceeded: 75,
	ErrCodeCanceled:          130,
}

// ExitCodeFor returns the process exit status for code, or 1 for unknown codes.
func ExitCodeFor(code ErrorCode) int {
	if c, ok := exitCodes[code]; ok {
		return c
	}
	return 1
}
