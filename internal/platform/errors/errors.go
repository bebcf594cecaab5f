// Package errors is the project error type: a code for machines, a message for people
// and an optional field naming the offending input
package errors

// Import as perr (platform/errors) so it never shadows the standard library

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies an error. Values go over the wire, never renumber them
type ErrorCode uint16

const (
	ErrorCodeUnknown         ErrorCode = iota // unclassified
	ErrorCodePanic                            // recovered from a panicking handler or worker
	ErrorCodeUnavailable                      // cancelled or transient, retry may succeed
	ErrorCodeTooManyRequests                  // shed by a limiter
	ErrorCodeInvalidArgument                  // malformed dictionary entry
	ErrorCodeValidation                       // request or dictionary failed validation
	ErrorCodeJSON                             // body is not the JSON we expect
	ErrorCodeNotFound
	ErrorCodeTooLarge // expansion would exceed the result cap
)

var httpStatus = map[ErrorCode]int{
	ErrorCodeUnavailable:     http.StatusServiceUnavailable,
	ErrorCodeTooManyRequests: http.StatusTooManyRequests,
	ErrorCodeInvalidArgument: http.StatusUnprocessableEntity,
	ErrorCodeValidation:      http.StatusBadRequest,
	ErrorCodeJSON:            http.StatusBadRequest,
	ErrorCodeNotFound:        http.StatusNotFound,
	ErrorCodeTooLarge:        http.StatusRequestEntityTooLarge,
}

// HTTPStatusCode maps c to a response status; anything unmapped is a 500
func HTTPStatusCode(c ErrorCode) int {
	if s, ok := httpStatus[c]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// Error carries a code, a message, an optional field and op label, and the wrapped cause
type Error struct {
	code  ErrorCode
	msg   string
	field string
	op    string
	cause error
}

// Wire is the JSON shape of an error inside a response envelope
type Wire struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.cause != nil:
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	default:
		return e.msg
	}
}

// Unwrap exposes the cause to errors.Is and errors.As
func (e *Error) Unwrap() error { return e.cause }

// Code returns the error code
func (e *Error) Code() ErrorCode { return e.code }

// Field returns the offending input field or dictionary key, if any
func (e *Error) Field() string { return e.field }

// Op returns the operation label, if any
func (e *Error) Op() string { return e.op }

// As finds the first *Error in err's chain
func As(err error) (*Error, bool) {
	var e *Error
	ok := stderrs.As(err, &e)
	return e, ok
}

// CodeOf returns err's code, Unknown for foreign errors
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err carries code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// HTTPStatus maps any error to a response status
func HTTPStatus(err error) int { return HTTPStatusCode(CodeOf(err)) }

// WireFrom renders err for a response body. The cause stays out of the message
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return Wire{Code: e.code, Message: e.msg, Field: e.field}
	}
	return Wire{Code: ErrorCodeUnknown, Message: err.Error()}
}

// WithField returns a copy of err naming field; foreign errors pass through untouched
func WithField(err error, field string) error {
	return edit(err, func(c *Error) { c.field = field })
}

// WithOp returns a copy of err tagged with op; foreign errors pass through untouched
func WithOp(err error, op string) error {
	return edit(err, func(c *Error) { c.op = op })
}

func edit(err error, fn func(*Error)) error {
	e, ok := As(err)
	if !ok {
		return err
	}
	c := *e
	fn(&c)
	return &c
}

// New returns an error with code and msg
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf is New with a format
func Newf(code ErrorCode, format string, a ...any) error {
	return New(code, fmt.Sprintf(format, a...))
}

// Wrap returns an error with code and msg caused by cause
func Wrap(cause error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, cause: cause}
}

// InvalidArgf builds an InvalidArgument error
func InvalidArgf(format string, a ...any) error { return Newf(ErrorCodeInvalidArgument, format, a...) }

// Validationf builds a Validation error
func Validationf(format string, a ...any) error { return Newf(ErrorCodeValidation, format, a...) }

// TooLargef builds a TooLarge error
func TooLargef(format string, a ...any) error { return Newf(ErrorCodeTooLarge, format, a...) }

// JSONErrf builds a JSON error
func JSONErrf(format string, a ...any) error { return Newf(ErrorCodeJSON, format, a...) }

// PanicErrf builds a Panic error
func PanicErrf(format string, a ...any) error { return Newf(ErrorCodePanic, format, a...) }
