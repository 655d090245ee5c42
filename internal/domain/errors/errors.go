package errors

import (
	"net/http"

	"dispatch/internal/errors"
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

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrUnknownProducts = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_PRODUCTS",
		"Some items reference unknown or inactive products",
		"",
	)

	// Lookup errors
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrAgentNotFound = NewBaseError(
		http.StatusNotFound,
		"AGENT_NOT_FOUND",
		"Agent not found",
		"",
	)

	ErrRestaurantNotFound = NewBaseError(
		http.StatusNotFound,
		"RESTAURANT_NOT_FOUND",
		"Restaurant not found",
		"",
	)

	ErrChangeRequestNotFound = NewBaseError(
		http.StatusNotFound,
		"CHANGE_REQUEST_NOT_FOUND",
		"Change request not found",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"Category not found for this restaurant",
		"",
	)

	// Authorization errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Caller identity is missing",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrPermissionDenied = NewBaseError(
		http.StatusForbidden,
		"PERMISSION_DENIED",
		"The restaurant lacks the permission for this action",
		"",
	)

	ErrAgentInactive = NewBaseError(
		http.StatusForbidden,
		"AGENT_INACTIVE",
		"Agent is not active",
		"",
	)

	// Concurrency errors
	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource was modified concurrently, refetch and retry",
		"",
	)

	ErrEarningAlreadyPosted = NewBaseError(
		http.StatusConflict,
		"EARNING_ALREADY_POSTED",
		"Earning has already been posted for this order",
		"",
	)

	ErrOrderAlreadyRated = NewBaseError(
		http.StatusConflict,
		"ORDER_ALREADY_RATED",
		"Order has already been rated",
		"",
	)

	ErrChangeRequestReviewed = NewBaseError(
		http.StatusConflict,
		"CHANGE_REQUEST_ALREADY_REVIEWED",
		"Change request has already been reviewed",
		"",
	)

	ErrAgentAtCapacity = NewBaseError(
		http.StatusConflict,
		"AGENT_AT_CAPACITY",
		"Agent cannot take more orders",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// TransitionError is returned when a lifecycle guard rejects a requested transition.
// It carries the order's current status so callers can refetch and decide whether to retry.
type TransitionError struct {
	current string
	action  string
}

// NewTransitionError creates an invalid-transition error for the given current status and action.
func NewTransitionError(current, action string) *TransitionError {
	return &TransitionError{current: current, action: action}
}

// Error implements the error interface
func (e *TransitionError) Error() string {
	return "invalid transition: " + e.action + " not allowed from status " + e.current
}

// CurrentStatus returns the order status at the time the guard failed.
func (e *TransitionError) CurrentStatus() string {
	return e.current
}

// Action returns the rejected lifecycle action.
func (e *TransitionError) Action() string {
	return e.action
}

// HTTPCode returns the HTTP status code
func (e *TransitionError) HTTPCode() int {
	return http.StatusConflict
}

// ErrorCode returns the business error code
func (e *TransitionError) ErrorCode() string {
	return "INVALID_TRANSITION"
}

// Message returns the user-friendly error message
func (e *TransitionError) Message() string {
	return "Order cannot move to the requested status from " + e.current
}

// Details returns detailed error information
func (e *TransitionError) Details() string {
	return e.current
}

// IsValidation reports whether err is a validation-class AppError (HTTP 400).
func IsValidation(err error) bool {
	return hasHTTPCode(err, http.StatusBadRequest)
}

// IsNotFound reports whether err is a not-found-class AppError (HTTP 404).
func IsNotFound(err error) bool {
	return hasHTTPCode(err, http.StatusNotFound)
}

// IsForbidden reports whether err is a forbidden-class AppError (HTTP 403).
func IsForbidden(err error) bool {
	return hasHTTPCode(err, http.StatusForbidden)
}

// IsConflict reports whether err is a conflict-class AppError other than an invalid transition.
func IsConflict(err error) bool {
	if IsInvalidTransition(err) {
		return false
	}

	return hasHTTPCode(err, http.StatusConflict)
}

// IsInvalidTransition reports whether err is a TransitionError.
func IsInvalidTransition(err error) bool {
	_, ok := errors.AsType[*TransitionError](err)

	return ok
}

func hasHTTPCode(err error, code int) bool {
	appErr, ok := errors.AsType[AppError](err)

	return ok && appErr.HTTPCode() == code
}

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
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
