package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode represents a unique error code
type ErrorCode int

// Common error codes
const (
	ErrNotFound ErrorCode = iota + 1000
	ErrInvalidInput
	ErrSlotConflict
	ErrInvalidTransition
	ErrStore
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

// StatusCode maps the error code to an HTTP status for the error middleware.
func (e *AppError) StatusCode() int {
	switch e.Code {
	case ErrNotFound:
		return http.StatusNotFound
	case ErrInvalidInput:
		return http.StatusBadRequest
	case ErrSlotConflict, ErrInvalidTransition:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error constructors
func NotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    ErrNotFound,
		Message: fmt.Sprintf("%s not found", resource),
		Err:     err,
	}
}

func InvalidInput(message string, err error) *AppError {
	return &AppError{
		Code:    ErrInvalidInput,
		Message: message,
		Err:     err,
	}
}

func SlotConflict(message string) *AppError {
	return &AppError{
		Code:    ErrSlotConflict,
		Message: message,
	}
}

func InvalidTransition(message string) *AppError {
	return &AppError{
		Code:    ErrInvalidTransition,
		Message: message,
	}
}

func Store(err error) *AppError {
	return &AppError{
		Code:    ErrStore,
		Message: "storage failure",
		Err:     err,
	}
}

func hasCode(err error, code ErrorCode) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

func IsNotFound(err error) bool          { return hasCode(err, ErrNotFound) }
func IsInvalidInput(err error) bool      { return hasCode(err, ErrInvalidInput) }
func IsSlotConflict(err error) bool      { return hasCode(err, ErrSlotConflict) }
func IsInvalidTransition(err error) bool { return hasCode(err, ErrInvalidTransition) }
func IsStore(err error) bool             { return hasCode(err, ErrStore) }
