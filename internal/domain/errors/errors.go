package errors

import (
	"net/http"

	"secondchance/internal/errors"
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

// WithDetails returns a copy carrying detailed error information.
// The copy still matches the original with errors.Is.
func (e *BaseError) WithDetails(details string) error {
	return &detailedError{
		BaseError: &BaseError{
			httpCode:  e.httpCode,
			errorCode: e.errorCode,
			message:   e.message,
			details:   details,
		},
		origin: e,
	}
}

type detailedError struct {
	*BaseError
	origin *BaseError
}

func (e *detailedError) Is(target error) bool {
	return target == e.origin
}

// Predefined error types
var (
	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Request input is missing or malformed",
		"",
	)

	ErrDuplicateCredential = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_CREDENTIAL",
		"Email id already exists",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not exists",
		"",
	)

	ErrInvalidCredential = NewBaseError(
		http.StatusNotFound,
		"INVALID_CREDENTIAL",
		"Wrong password",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Missing or invalid bearer token",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// InternalError carries the cause of an unexpected failure for logging while
// presenting only the generic ErrInternalError message to callers.
type InternalError struct {
	cause   error
	context string
}

// NewInternalError wraps an unexpected storage, hashing or signing failure.
func NewInternalError(cause error, context string) AppError {
	return &InternalError{cause: cause, context: context}
}

// Error returns the diagnostic message, including the cause. It is meant for logs only.
func (e *InternalError) Error() string {
	if e.cause == nil {
		return e.context
	}

	return e.context + ": " + e.cause.Error()
}

// Unwrap exposes the cause to errors.Is / errors.As.
func (e *InternalError) Unwrap() error {
	return e.cause
}

// Is makes every InternalError match ErrInternalError.
func (e *InternalError) Is(target error) bool {
	return target == ErrInternalError
}

// HTTPCode returns the HTTP status code
func (e *InternalError) HTTPCode() int {
	return ErrInternalError.HTTPCode()
}

// ErrorCode returns the business error code
func (e *InternalError) ErrorCode() string {
	return ErrInternalError.ErrorCode()
}

// Message returns the generic message; the cause never reaches the caller.
func (e *InternalError) Message() string {
	return ErrInternalError.Message()
}

// Details is always empty for internal errors.
func (e *InternalError) Details() string {
	return ""
}
