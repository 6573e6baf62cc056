// internal/model/error.go
package model

import (
	"errors"
	"fmt"
)

var (
	ErrNotInitialized = errors.New("store not initialized")
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrPartialWrite   = errors.New("partial write")
	ErrConflict       = errors.New("resource conflict")
	ErrInternalServer = errors.New("internal server error")
)

// PartialWriteError reports that a review could not be appended after the
// item state write had been issued. Callers should re-read the state instead
// of retrying the review, which would count the rating twice.
type PartialWriteError struct {
	Key ItemStateKey
	// StateRolledBack is true when the state write was undone together with the review.
	StateRolledBack bool
	Err             error
}

func NewPartialWriteError(key ItemStateKey, err error, rolledBack bool) *PartialWriteError {
	return &PartialWriteError{Key: key, StateRolledBack: rolledBack, Err: err}
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("partial write for %s (state rolled back: %t): %v", e.Key, e.StateRolledBack, e.Err)
}

func (e *PartialWriteError) Unwrap() []error {
	return []error{ErrPartialWrite, e.Err}
}

// AppError carries a client-facing code and message alongside the cause.
type AppError struct {
	Detail ErrorDetail
	Err    error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{Code: code, Message: message, Field: field},
		Err:    err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Detail.Code, e.Detail.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Detail.Code, e.Detail.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ErrorDetail is the error payload of the API.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse wraps ErrorDetail for JSON responses.
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
