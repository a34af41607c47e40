package service

import (
	"errors"
	"fmt"
)

var (
	// ErrTaskNotFound reports an id that matches no stored task.
	ErrTaskNotFound = errors.New("task not found")
	// ErrEmptyTaskID reports a blank id where one is required. It is kept
	// distinct from ErrTaskNotFound so callers can prompt for an id instead
	// of reporting a missing record.
	ErrEmptyTaskID = errors.New("task id is required")
)

// ValidationError reports input that fails a range or required-field check.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func validationErrorf(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// ExternalServiceError reports a failure in a dependency outside this
// process (the AI backend or the notification channel). The wrapped error
// carries the detail needed for diagnosis.
type ExternalServiceError struct {
	Service string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Service, e.Err)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}
