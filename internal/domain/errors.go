// Package domain defines the passenger table, filter criteria, and errors
// shared by the dashboard's loaders, pipeline, and delivery surfaces.
package domain

import "fmt"

// NotFoundError indicates a resource was not found.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// ValidationError indicates invalid input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// DataUnavailableError indicates the passenger dataset could not be opened,
// read, or interpreted. The dashboard cannot render without data, so callers
// treat it as fatal at startup.
type DataUnavailableError struct {
	Message string
	Err     error
}

func (e *DataUnavailableError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *DataUnavailableError) Unwrap() error { return e.Err }

// ErrNotFound creates a NotFoundError with a formatted message.
func ErrNotFound(format string, args ...interface{}) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// ErrValidation creates a ValidationError with a formatted message.
func ErrValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ErrDataUnavailable creates a DataUnavailableError wrapping cause (which may be nil).
func ErrDataUnavailable(cause error, format string, args ...interface{}) *DataUnavailableError {
	return &DataUnavailableError{Message: fmt.Sprintf(format, args...), Err: cause}
}
