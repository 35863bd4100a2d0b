package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates a missing, invalid or expired credential.
var ErrUnauthorized = errors.New("unauthorized")

// ErrTimeout indicates the store did not answer before the caller's deadline. Retryable.
var ErrTimeout = errors.New("operation timed out")

// Ledger errors surfaced to callers as-is.
var (
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrStatementNotFound  = errors.New("statement not found")
)

// AppError is an error carrying an HTTP status hint for the adapter boundary.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode maps an error from any layer to the HTTP status it should surface as.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrStatementNotFound), errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUserAlreadyExists), errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrInsufficientFunds):
		return http.StatusBadRequest
	case errors.Is(err, ErrTimeout):
		return http.StatusServiceUnavailable
	}
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		return appErr.Code
	}
	return http.StatusInternalServerError
}

// IsRetryable reports whether the caller may retry the operation unchanged.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrTimeout)
}
