// Package apperror defines the business error taxonomy shared by the service
// layer and the HTTP boundary. Every constructor carries the HTTP status and
// a machine-readable code so handlers can map errors without inspecting
// messages.
package apperror

import (
	"fmt"
	"net/http"
)

// Machine-readable error codes surfaced in the response envelope.
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeConflict   = "CONFLICT"
	CodeCapacity   = "CAPACITY_EXCEEDED"
	CodeNotFound   = "NOT_FOUND"
	CodeStorage    = "STORAGE_ERROR"
)

// Error is a business-rule failure raised at the point of detection and
// propagated unchanged to the boundary.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Validation reports malformed or out-of-range input.
func Validation(format string, args ...interface{}) *Error {
	return &Error{
		Status:  http.StatusBadRequest,
		Code:    CodeValidation,
		Message: fmt.Sprintf(format, args...),
	}
}

// Conflict reports a duplicate extension value.
func Conflict(format string, args ...interface{}) *Error {
	return &Error{
		Status:  http.StatusConflict,
		Code:    CodeConflict,
		Message: fmt.Sprintf(format, args...),
	}
}

// Capacity reports that a bounded set is already full.
func Capacity(format string, args ...interface{}) *Error {
	return &Error{
		Status:  http.StatusBadRequest,
		Code:    CodeCapacity,
		Message: fmt.Sprintf(format, args...),
	}
}

// NotFound reports a missing identifier or extension value.
func NotFound(format string, args ...interface{}) *Error {
	return &Error{
		Status:  http.StatusNotFound,
		Code:    CodeNotFound,
		Message: fmt.Sprintf(format, args...),
	}
}

// Storage reports a disk or database failure. The message is the generic
// text shown to the caller; the underlying detail must be logged where the
// failure occurred.
func Storage(format string, args ...interface{}) *Error {
	return &Error{
		Status:  http.StatusInternalServerError,
		Code:    CodeStorage,
		Message: fmt.Sprintf(format, args...),
	}
}
