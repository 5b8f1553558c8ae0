// Package apperr defines the error codes touchp reports on stderr and in logs.
package apperr

import (
	"errors"
	"fmt"
)

// Code classifies an error for exit-status handling and log filtering.
type Code string

const (
	// CodeArgument covers command-line misuse not already rejected by flag
	// parsing, such as an empty path operand.
	CodeArgument Code = "INVALID_ARGUMENT"

	// CodeInvalidDate means the --date value could not be parsed.
	CodeInvalidDate Code = "INVALID_DATE_FORMAT"

	// CodeInvalidStamp means the --stamp value is not a valid
	// [[CC]YY]MMDDhhmm[.ss] timestamp.
	CodeInvalidStamp Code = "INVALID_TIMESTAMP_FORMAT"

	// CodeReferenceNotFound means the --reference file could not be inspected.
	CodeReferenceNotFound Code = "REFERENCE_NOT_FOUND"

	// CodePermission marks a create, timestamp or write attempt denied by
	// file permissions.
	CodePermission Code = "PERMISSION_DENIED"

	// CodeFilesystem covers every other I/O failure on a target file.
	CodeFilesystem Code = "FILESYSTEM_ERROR"

	// CodeNoTerminal means the paste editor could not start because stdin or
	// stdout is not a terminal.
	CodeNoTerminal Code = "NOT_A_TERMINAL"
)

// Error is a classified touchp error. It wraps the underlying cause, if any,
// so callers can still match with errors.Is against sentinel values such as
// fs.ErrNotExist.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a classified error without an underlying cause.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(code Code, err error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// Is reports whether err's classification is the given code. Only the
// outermost classified error in the chain counts; wrapping an error with a
// new code reclassifies it.
func Is(err error, code Code) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// CodeOf returns the outermost classification of err, or CodeFilesystem when
// err has no classification.
func CodeOf(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeFilesystem
}
