package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies an application error
type ErrorCode int

const (
	ErrInvalidCredentials ErrorCode = iota + 1000
	ErrUnauthorized
	ErrInvalidToken
	ErrForbidden
	ErrNotFound
	ErrValidation
	ErrInternal
)

// AppError represents an application error
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the error code to the status sent to the caller.
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case ErrInvalidCredentials, ErrUnauthorized, ErrInvalidToken:
		return http.StatusUnauthorized
	case ErrForbidden:
		return http.StatusForbidden
	case ErrNotFound:
		return http.StatusNotFound
	case ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Error constructors
func InvalidCredentials() *AppError {
	return &AppError{Code: ErrInvalidCredentials, Message: "invalid credentials"}
}

func Unauthorized(message string) *AppError {
	return &AppError{Code: ErrUnauthorized, Message: message}
}

func InvalidToken(err error) *AppError {
	return &AppError{Code: ErrInvalidToken, Message: "invalid token", Err: err}
}

func Forbidden() *AppError {
	return &AppError{Code: ErrForbidden, Message: "forbidden"}
}

func NotFound(resource string) *AppError {
	return &AppError{Code: ErrNotFound, Message: fmt.Sprintf("%s not found", resource)}
}

func Validation(message string, err error) *AppError {
	return &AppError{Code: ErrValidation, Message: message, Err: err}
}

func Internal(err error) *AppError {
	return &AppError{Code: ErrInternal, Message: "internal server error", Err: err}
}

// As unwraps err into an *AppError if it is one.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	ok := errors.As(err, &appErr)
	return appErr, ok
}
