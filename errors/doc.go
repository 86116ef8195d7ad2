// Package errors provides the structured error type used outside the
// conduit core: a machine-readable code, a message, retryable detection,
// free-form details and a recommended process exit status.
//
// The core itself has no failure channel. Errors from iterators and readers
// travel through a pipeline as values, and only the runner and the CLI turn
// them into an AppError.
package errors
