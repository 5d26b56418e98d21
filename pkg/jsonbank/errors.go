package jsonbank

import (
	"errors"
	"fmt"
)

// Client-side and well-known server error codes.
const (
	CodeBadRequest       = "bad_request"
	CodeInvalidJSON      = "invalid_json_content"
	CodeFileNotFound     = "file_not_found"
	CodeInvalidFile      = "invalid_file"
	CodeNotAuthenticated = "not_authenticated"

	// Reported by the server.
	CodeNameExists = "name.exists"
	CodeNotFound   = "notFound"

	// CodeDefault is used for transport and decode failures.
	CodeDefault = "500"
)

// Error is returned by every fallible client operation.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

// GoString includes the code, which Error omits.
func (e *Error) GoString() string {
	return fmt.Sprintf("jsonbank.Error{Code: %q, Message: %q}", e.Code, e.Message)
}

func newError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// ErrorCode returns the code of err if it is (or wraps) an *Error, otherwise "".
func ErrorCode(err error) string {
	var jsbErr *Error
	if errors.As(err, &jsbErr) {
		return jsbErr.Code
	}
	return ""
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code string) bool {
	return err != nil && ErrorCode(err) == code
}

func errInvalidJSON() *Error {
	return newError(CodeInvalidJSON, "Content is not a valid JSON string")
}

func errNotAuthenticated() *Error {
	return newError(CodeNotAuthenticated, "Not authenticated")
}
