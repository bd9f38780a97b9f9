package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")

	// ErrStore marks durable-write failures; fatal to the current run.
	ErrStore = errors.New("store error")
	// ErrTransient marks rate-limit/timeout/5xx failures; retried with pacing.
	ErrTransient = errors.New("transient service error")
	// ErrValidation marks model replies that cannot be coerced to the loan
	// schema; recorded as ERROR without retry.
	ErrValidation = errors.New("validation failed")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// IsTransient reports whether err should be retried under the pacing delay.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransient)
}

// IsValidation reports whether err is a schema-coercion failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
