package jsonrt

import (
	"errors"
	"fmt"
)

// Failure kinds of a generated deserializer. Match them with errors.Is.
var (
	ErrMalformedFieldName   = errors.New("malformed field name")
	ErrMissingSeparator     = errors.New("missing ':' separator")
	ErrUnknownField         = errors.New("unknown field")
	ErrFieldValue           = errors.New("field value parse failure")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrUnexpectedChar       = errors.New("unexpected character")
	ErrUnexpectedEOF        = errors.New("unexpected end of input")
	ErrTrailingData         = errors.New("trailing data after object")
)

// Error is the failure outcome of an object deserializer. Its message is
// the literal message chosen at generation time.
type Error struct {
	// Kind is one of the Err* sentinels.
	Kind error
	// Msg is the human-readable message returned by Error.
	Msg string
	// Field is the JSON member name involved, if any.
	Field string
	// Offset is the cursor position when the failure was detected.
	Offset int
	// Cause is the primitive parser error, if any.
	Cause error
}

// NewError creates an Error of the given kind.
func NewError(kind error, offset int, msg string) *Error {
	return &Error{Kind: kind, Msg: msg, Offset: offset}
}

// WithField records the JSON member name the failure relates to.
func (e *Error) WithField(name string) *Error {
	e.Field = name
	return e
}

// WithCause records the underlying primitive error.
func (e *Error) WithCause(err error) *Error {
	e.Cause = err
	return e
}

// Error returns the literal message.
func (e *Error) Error() string {
	return e.Msg
}

// Unwrap exposes both the kind sentinel and the cause.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}

	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}

	return errs
}

// SyntaxError is returned by the primitive value parsers.
type SyntaxError struct {
	Msg    string
	Offset int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Msg, e.Offset)
}

func syntaxErrorf(offset int, format string, args ...any) *SyntaxError {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...), Offset: offset}
}
