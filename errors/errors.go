package errors

import (
	"fmt"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// ExitCode is the recommended process exit status for this error.
	ExitCode int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// Is matches another *AppError with the same code, so errors.Is(err, Canceled("")) works.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any, len(details))
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with retryable and exit code filled in from code.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
		ExitCode:  ExitCodeFor(code),
	}
}

// Wrap is New with a cause.
func Wrap(cause error, code ErrorCode, message string) *AppError {
	return New(code, message).WithCause(cause)
}

// --- Common Error Constructors ---

// Canceled creates an AppError for a run stopped by context cancellation.
func Canceled(operation string) *AppError {
	return New(ErrCodeCanceled, fmt.Sprintf("%s was canceled", operation)).
		WithDetail("operation", operation)
}

// Timeout creates an AppError for a run that hit its deadline.
func Timeout(operation string) *AppError {
	return New(ErrCodeTimeout, fmt.Sprintf("%s did not finish before its deadline", operation)).
		WithDetail("operation", operation)
}

// StepLimitExceeded creates an AppError for a run that exceeded max driving steps.
func StepLimitExceeded(limit int64) *AppError {
	return New(ErrCodeStepLimitExceeded, fmt.Sprintf("step limit of %d exceeded", limit)).
		WithDetail("max_steps", limit)
}

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	e := New(ErrCodeInvalidInput, fmt.Sprintf("invalid input: %s", reason))
	if field != "" {
		e.WithDetail("field", field)
	}
	return e
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return New(ErrCodeInvalidInput, message)
}

// InvalidFormat creates a new AppError for an invalid field format.
func InvalidFormat(field, expectedFormat string) *AppError {
	return New(ErrCodeInvalidFormat, fmt.Sprintf("invalid format for %s, expected %s", field, expectedFormat)).
		WithDetails(map[string]any{"field": field, "expected_format": expectedFormat})
}

// NotFound creates a new AppError for a resource that was not found.
func NotFound(resource, name string) *AppError {
	e := New(ErrCodeNotFound, fmt.Sprintf("%s not found", resource)).WithDetail("resource", resource)
	if name != "" {
		e.WithDetail("name", name)
	}
	return e
}

// IO creates an AppError for a failed read or write.
func IO(operation string, cause error) *AppError {
	return New(ErrCodeIO, fmt.Sprintf("%s failed", operation)).
		WithDetail("operation", operation).
		WithCause(cause)
}

// Internal creates a new AppError for a broken invariant.
func Internal(cause error) *AppError {
	return New(ErrCodeInternal, "an unexpected error occurred").WithCause(cause)
}
