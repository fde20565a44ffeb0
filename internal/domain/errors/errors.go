// Package errors defines the application error contract shared by the
// routing core, the usecases and the HTTP boundary.
package errors

import (
	"net/http"

	"github.com/AmbientEg/navigation-service/internal/errors"
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

// Is matches on the business error code, so values derived through
// WithDetails still compare equal to their sentinel under errors.Is.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// Routing errors. Each kind stays a distinct value so the boundary can map it
// to a specific status code without re-wrapping, and so callers can test
// against it with errors.Is.
var (
	// ErrNoWaypointFound signals that no eligible waypoint exists near the
	// requested origin on the given floor.
	ErrNoWaypointFound = NewBaseError(
		http.StatusNotFound,
		"NO_WAYPOINT_FOUND",
		"no routing waypoint found near the requested position",
		"",
	)

	// ErrUnknownWaypoint signals that a referenced waypoint identity is absent
	// from the built graph. Indicates a caller/data mismatch.
	ErrUnknownWaypoint = NewBaseError(
		http.StatusNotFound,
		"UNKNOWN_WAYPOINT",
		"referenced waypoint does not exist in the routing graph",
		"",
	)

	// ErrNoPathFound signals that no path exists between origin and destination
	// under the active accessibility filter.
	ErrNoPathFound = NewBaseError(
		http.StatusNotFound,
		"NO_PATH_FOUND",
		"no route exists between start and destination",
		"",
	)

	// ErrInvalidSegmentCost signals a segment with negative traversal cost.
	// Rejected at graph build time, never clamped.
	ErrInvalidSegmentCost = NewBaseError(
		http.StatusUnprocessableEntity,
		"INVALID_SEGMENT_COST",
		"routing segment has a negative traversal cost",
		"",
	)

	// ErrInvalidFloorTransition signals a cross-floor segment whose category is
	// not stairs, elevator or escalator.
	ErrInvalidFloorTransition = NewBaseError(
		http.StatusUnprocessableEntity,
		"INVALID_FLOOR_TRANSITION",
		"cross-floor segment must be stairs, elevator or escalator",
		"",
	)
)

// Metadata errors surfaced by the building/floor/POI read APIs.
var (
	ErrBuildingNotFound = NewBaseError(
		http.StatusNotFound,
		"BUILDING_NOT_FOUND",
		"building not found",
		"",
	)

	ErrFloorNotFound = NewBaseError(
		http.StatusNotFound,
		"FLOOR_NOT_FOUND",
		"floor not found",
		"",
	)

	ErrPOINotFound = NewBaseError(
		http.StatusNotFound,
		"POI_NOT_FOUND",
		"destination POI not found",
		"",
	)
)

// General errors
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"request validation failed",
		"",
	)

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
