package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound        = errors.New("resource not found")
	ErrConflict        = errors.New("resource conflict")
	ErrInvalidInput    = errors.New("invalid input")
	ErrAuthRequired    = errors.New("authentication required")
	ErrAuthInvalid     = errors.New("authentication invalid")
	ErrForbidden       = errors.New("forbidden")
	ErrSessionExpired  = errors.New("session expired")
	ErrUpstreamFailure = errors.New("record store failure")
)

// AppError represents application error with HTTP status
type AppError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

func Conflict(message string) *AppError {
	return NewAppError(http.StatusConflict, message, ErrConflict)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrInvalidInput)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrAuthInvalid)
}

func AuthRequired(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrAuthRequired)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, message, ErrForbidden)
}

func Upstream(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "record store request failed", errors.Join(ErrUpstreamFailure, err))
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "internal server error", err)
}
