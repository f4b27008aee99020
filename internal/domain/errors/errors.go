package errors

import (
	"fmt"
	"net/http"

	"tablescout/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// WithCause attaches the underlying cause. errors.Is matches both e and cause.
func (e *BaseError) WithCause(cause error) error {
	if cause == nil {
		return e
	}

	return fmt.Errorf("%w: %w", e, cause)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Predefined error types
var (
	// Upstream provider errors
	ErrUpstreamUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"UPSTREAM_UNAVAILABLE",
		"upstream provider is unavailable",
		"",
	)

	ErrUpstreamTimeout = NewBaseError(
		http.StatusGatewayTimeout,
		"UPSTREAM_TIMEOUT",
		"upstream provider timed out, try again later",
		"",
	)

	// Place-related errors
	ErrPlaceNotFound = NewBaseError(
		http.StatusNotFound,
		"PLACE_NOT_FOUND",
		"place not found",
		"",
	)

	ErrInconsistentOverlay = NewBaseError(
		http.StatusBadGateway,
		"INCONSISTENT_OVERLAY",
		"claimed place could not be repaired",
		"",
	)

	ErrInvalidQuery = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUERY",
		"invalid search query",
		"",
	)

	ErrClaimConflict = NewBaseError(
		http.StatusConflict,
		"CLAIM_CONFLICT",
		"place is claimed by another operator",
		"",
	)

	// Quota-related errors
	ErrQuotaExhausted = NewBaseError(
		http.StatusPaymentRequired,
		"QUOTA_EXHAUSTED",
		"AI scoring quota exhausted, upgrade to premium for unlimited scoring",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap returns the underlying driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
