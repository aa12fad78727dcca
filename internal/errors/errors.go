package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUserExists is returned when creating a user with a taken username or email.
	ErrUserExists = errors.New("user already exists")
	// ErrNotFound is returned when a referenced record is absent.
	ErrNotFound = errors.New("record not found")
	// ErrForbidden is returned when a valid identity lacks permission.
	ErrForbidden = errors.New("access denied")
	// ErrChatPaused is returned when messages are posted while chat is paused.
	ErrChatPaused = errors.New("chat is paused")
	// ErrTrackingExists is returned when a tracking record for (user, date) already exists.
	ErrTrackingExists = errors.New("tracking record already exists for this date")
	// ErrInvalidAssignees is returned when a calendar event targets nobody.
	ErrInvalidAssignees = errors.New("event must be assigned to users or marked for all users")
	// ErrInvalidDate is returned when a date is not an ISO date string.
	ErrInvalidDate = errors.New("date must be in YYYY-MM-DD format")
)

// ErrorResponse is the wire shape of every error body.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Message: e.Message}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors become a
// generic 500; the detail stays server-side.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrForbidden), errors.Is(err, ErrChatPaused):
		return NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrUserExists), errors.Is(err, ErrTrackingExists):
		return NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, ErrInvalidAssignees), errors.Is(err, ErrInvalidDate):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
