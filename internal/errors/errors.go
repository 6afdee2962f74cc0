package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrMemberNotFound is returned when no member matches the requested id.
	ErrMemberNotFound = errors.New("member not found")
	// ErrMemberExists is returned when registering an email that is already taken.
	ErrMemberExists = errors.New("member already exists")
	// ErrInvalidCredentials is returned for both unknown email and wrong password,
	// so the two cases are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidPlan is returned when the plan is not on the fixed price list.
	ErrInvalidPlan = errors.New("invalid membership plan")
	// ErrMembershipActive is returned when the membership is already active.
	ErrMembershipActive = errors.New("membership already active")
	// ErrInvalidPurchase is returned when a supplement purchase is malformed.
	ErrInvalidPurchase = errors.New("invalid purchase request")
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
	case ErrMemberNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "MEMBER_NOT_FOUND")
	case ErrMemberExists:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MEMBER_EXISTS")
	case ErrInvalidCredentials:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case ErrInvalidPlan:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_PLAN")
	case ErrMembershipActive:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MEMBERSHIP_ACTIVE")
	case ErrInvalidPurchase:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_PURCHASE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
