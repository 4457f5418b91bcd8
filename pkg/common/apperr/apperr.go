package apperr

import (
	"fmt"

	"github.com/pkg/errors"
)

// AppError is an error carrying a stable numeric code and the HTTP status
// it maps to when surfaced through the introspection server.
type AppError struct {
	Code       int
	Message    string
	HTTPStatus int
	Cause      error
}

// New creates an AppError. The cause, if any, is annotated with a stack trace.
func New(code int, msg string, httpStatus int, cause error) *AppError {
	if cause != nil {
		cause = errors.WithStack(cause)
	}
	return &AppError{
		Code:       code,
		Message:    msg,
		HTTPStatus: httpStatus,
		Cause:      cause,
	}
}

// Wrap wraps err with a code and message. Returns nil if err is nil.
func Wrap(err error, code int, msg string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    msg,
		HTTPStatus: httpStatus,
		Cause:      errors.Wrap(err, msg),
	}
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, errors.Cause(e.Cause))
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches another AppError by code, so sentinel values compare equal to
// wrapped copies carrying a different message or cause.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// CodeOf returns the code of the first AppError in err's chain, or 0.
func CodeOf(err error) int {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return 0
}
