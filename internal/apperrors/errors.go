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

// ErrInvalidArgument indicates that an operation received the wrong combination of arguments.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrExternalDependency indicates that a remote collaborator (rate provider, peer service) failed.
var ErrExternalDependency = errors.New("external dependency failure")

// AppError carries an HTTP-ish status code and a user facing message alongside the cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates a 404 error that matches ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

// NewValidationError creates a 400 error that matches ErrValidation.
func NewValidationError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrValidation)
}

// NewInvalidArgumentError creates a 400 error that matches ErrInvalidArgument.
func NewInvalidArgumentError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrInvalidArgument)
}

// NewConflictError creates a 409 error that matches ErrDuplicate.
func NewConflictError(message string) *AppError {
	return NewAppError(http.StatusConflict, message, ErrDuplicate)
}

// NewExternalError creates a 502 error that matches ErrExternalDependency and keeps cause in the chain.
func NewExternalError(message string, cause error) *AppError {
	return NewAppError(http.StatusBadGateway, message, errors.Join(ErrExternalDependency, cause))
}

// StatusCode maps an error chain to the HTTP status used by the handlers.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrExternalDependency):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the user facing message for err.
// AppError messages are surfaced as-is, anything else is reported generically.
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	if StatusCode(err) == http.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}
