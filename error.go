package lexdoc

import (
	"errors"
	"fmt"
)

// Application error codes. These map domain failures to transport-agnostic
// categories; the HTTP layer translates them to status codes.
const (
	EINVALID    = "invalid"    // malformed or rejected input
	ENOTFOUND   = "not_found"  // referenced entity does not exist
	EPROCESSING = "processing" // OCR, correction, keyword or inference failure
	ESTORAGE    = "storage"    // transaction failure; nothing was persisted
	EINTERNAL   = "internal"   // anything else
)

// Error represents an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	// Code is one of the application error code constants.
	Code string

	// Message is safe to show to an end user.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("lexdoc error: code=%s message=%s", e.Code, e.Message)
}

// Errorf returns a new Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps err and returns its code. Returns EINTERNAL for
// non-application errors and an empty string for nil.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	}
	if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps err and returns its message. Non-application errors
// yield a generic message so internals never leak across the boundary.
// Returns an empty string for nil.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	}
	if errors.As(err, &e) {
		return e.Message
	}
	return "An internal error has occurred."
}
