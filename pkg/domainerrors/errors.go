// Package domainerrors defines the coded error taxonomy surfaced to callers.
// Stores return pkg/sentinel facts; services wrap them into these so the
// transport layer can emit a distinct, user-visible message per failure point.
// The distinction matters for issuance: a failure before the insert means
// nothing was stored, a failure after it means the record exists without a
// tag image and must not be re-submitted.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies a category of failure.
type Code string

const (
	CodeValidation      Code = "validation_error"
	CodeDuplicate       Code = "duplicate_key"
	CodeNotFound        Code = "not_found"
	CodeTemplateMissing Code = "template_missing"
	CodeEncoding        Code = "encoding_error"
	CodeIO              Code = "io_error"
	CodeDatabase        Code = "database_error"
	CodeBadRequest      Code = "bad_request"
	CodeInternal        Code = "internal_error"
)

// Error carries a code, a user-facing message and an optional cause.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// New builds a coded error with a user-facing message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap builds a coded error that keeps the underlying cause available to
// errors.Is/errors.As chains.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

// Is reports whether err carries the given code anywhere in its chain.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// ToHTTPStatus maps a code to the HTTP status used by the transport layer.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeValidation:
		return http.StatusUnprocessableEntity
	case CodeDuplicate:
		return http.StatusConflict
	case CodeNotFound:
		return http.StatusNotFound
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeTemplateMissing, CodeEncoding, CodeIO, CodeDatabase, CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
