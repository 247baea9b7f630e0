package errors

import (
	"net/http"
	"strings"

	"agrox/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() any      // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   any
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string, details any) *BaseError {
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
func (e *BaseError) Details() any {
	return e.details
}

// WithDetails returns a copy carrying details. The copy still matches the
// original with errors.Is.
func (e *BaseError) WithDetails(details any) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches BaseErrors by business code so WithDetails copies compare equal.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Session and user errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		nil,
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"An account with this email already exists",
		nil,
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		nil,
	)

	ErrNotLoggedIn = NewBaseError(
		http.StatusUnauthorized,
		"NOT_LOGGED_IN",
		"Please log in to continue",
		nil,
	)

	ErrInvalidRole = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ROLE",
		"Unknown account type",
		nil,
	)

	// Listing errors
	ErrListingNotFound = NewBaseError(
		http.StatusNotFound,
		"LISTING_NOT_FOUND",
		"Listing not found",
		nil,
	)

	// Request errors
	ErrRequestNotFound = NewBaseError(
		http.StatusNotFound,
		"REQUEST_NOT_FOUND",
		"Request not found",
		nil,
	)

	ErrInvalidStatusTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_STATUS_TRANSITION",
		"Request has already been answered",
		nil,
	)

	ErrChatUnavailable = NewBaseError(
		http.StatusConflict,
		"CHAT_UNAVAILABLE",
		"Chat is available once the request is approved",
		nil,
	)

	ErrProviderNotFound = NewBaseError(
		http.StatusUnprocessableEntity,
		"PROVIDER_NOT_FOUND",
		"The owner of this offering has no matching provider account",
		nil,
	)

	// Facility and service errors
	ErrFacilityNotFound = NewBaseError(
		http.StatusNotFound,
		"FACILITY_NOT_FOUND",
		"Facility not found",
		nil,
	)

	ErrServiceNotFound = NewBaseError(
		http.StatusNotFound,
		"SERVICE_NOT_FOUND",
		"Service not found",
		nil,
	)

	// Notification errors
	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"Notification not found",
		nil,
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Please correct the highlighted fields",
		nil,
	)

	// Storage errors
	ErrStorageUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"STORAGE_UNAVAILABLE",
		"Storage is unavailable, changes could not be saved",
		nil,
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal error",
		nil,
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		nil,
	)
)

// NewValidationError wraps ordered field messages in ErrValidationFailed.
func NewValidationError(messages []string) error {
	return ErrValidationFailed.WithDetails(messages)
}

// ValidationMessages extracts the ordered field messages from a validation error.
func ValidationMessages(err error) ([]string, bool) {
	appErr, ok := errors.AsType[*BaseError](err)
	if !ok || appErr.ErrorCode() != ErrValidationFailed.ErrorCode() {
		return nil, false
	}
	messages, ok := appErr.Details().([]string)

	return messages, ok
}

// StorageExecuteError represents a failed key-value operation, implementing the AppError interface
type StorageExecuteError struct {
	err error
	op  string
	key string
}

// NewStorageExecuteError creates a storage-related error
func NewStorageExecuteError(err error, op, key string) AppError {
	return &StorageExecuteError{
		err: err,
		op:  op,
		key: key,
	}
}

// Error implements the error interface
func (e *StorageExecuteError) Error() string {
	return errors.Wrapf(e.err, "storage %s %q failed", e.op, e.key).Error()
}

// Unwrap exposes the backend error
func (e *StorageExecuteError) Unwrap() error {
	return e.err
}

// Is reports ErrStorageUnavailable as a match.
func (e *StorageExecuteError) Is(target error) bool {
	return target == ErrStorageUnavailable
}

// HTTPCode returns the HTTP status code
func (e *StorageExecuteError) HTTPCode() int {
	return ErrStorageUnavailable.HTTPCode()
}

// ErrorCode returns the business error code
func (e *StorageExecuteError) ErrorCode() string {
	return ErrStorageUnavailable.ErrorCode()
}

// Message returns the user-friendly error message
func (e *StorageExecuteError) Message() string {
	return ErrStorageUnavailable.Message()
}

// Details returns the failed operation
func (e *StorageExecuteError) Details() any {
	return strings.TrimSpace(e.op + " " + e.key)
}
