// Package apperr defines the error kinds the API surfaces to callers.
// Every recoverable failure carries a machine-readable code so clients can
// tell "insufficient funds" apart from "already completed".
package apperr

import "errors"

const (
	CodeNotFound          = "not_found"
	CodeConflict          = "conflict"
	CodeInsufficientFunds = "insufficient_funds"
	CodeInvalid           = "invalid"
)

type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

func NotFound(msg string) *Error          { return &Error{Code: CodeNotFound, Message: msg} }
func Conflict(msg string) *Error          { return &Error{Code: CodeConflict, Message: msg} }
func InsufficientFunds(msg string) *Error { return &Error{Code: CodeInsufficientFunds, Message: msg} }
func Invalid(msg string) *Error           { return &Error{Code: CodeInvalid, Message: msg} }

// CodeOf returns the taxonomy code for err, or "" when err is not an *Error.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Is reports whether err is an *Error with the given code.
func Is(err error, code string) bool { return CodeOf(err) == code }
