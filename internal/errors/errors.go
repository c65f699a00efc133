package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUnauthorized is returned when the caller has no valid session or lacks the required role.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrEmployeeNotFound is returned when an employee record is not found.
	ErrEmployeeNotFound = errors.New("employee not found")
	// ErrEmailTaken is returned when the email is already registered.
	ErrEmailTaken = errors.New("user already exists")
	// ErrNoActiveSession is returned when checking out with no open attendance record.
	ErrNoActiveSession = errors.New("no active session to check out")
	// ErrLeaveNotFound is returned when a leave request is not found.
	ErrLeaveNotFound = errors.New("leave request not found")
	// ErrInvalidLeaveSpan is returned when a leave request ends before it starts.
	ErrInvalidLeaveSpan = errors.New("leave end date is before start date")
	// ErrLeaveAlreadyDecided is returned when deciding a request that is no longer pending.
	ErrLeaveAlreadyDecided = errors.New("leave request already decided")
	// ErrSkillNotFound is returned when removing a skill that does not exist.
	ErrSkillNotFound = errors.New("skill not found")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrUnauthorized:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHORIZED")
	case ErrEmployeeNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "EMPLOYEE_NOT_FOUND")
	case ErrEmailTaken:
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case ErrNoActiveSession:
		return NewHTTPError(http.StatusNotFound, err.Error(), "NO_ACTIVE_SESSION")
	case ErrLeaveNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "LEAVE_NOT_FOUND")
	case ErrInvalidLeaveSpan:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_LEAVE_SPAN")
	case ErrLeaveAlreadyDecided:
		return NewHTTPError(http.StatusConflict, err.Error(), "LEAVE_ALREADY_DECIDED")
	case ErrSkillNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "SKILL_NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
