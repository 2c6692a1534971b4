package godeck

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the failures this library reports. Callers match on
// the kind rather than on message text.
type ErrorKind int

const (
	// ErrInvalidInput means the caller violated a documented model constraint,
	// such as a gradient with fewer than two stops or a scatter series length
	// mismatch.
	ErrInvalidInput ErrorKind = iota
	// ErrOverlap means merge regions or sections collide.
	ErrOverlap
	// ErrMissingAsset means a referenced file could not be read.
	ErrMissingAsset
	// ErrUnsupportedFormat means an image or media format is not recognized.
	ErrUnsupportedFormat
	// ErrIo means the output could not be written.
	ErrIo
	// ErrInternal means a post-condition failed while composing the package.
	// An internal error is a bug in this library.
	ErrInternal
)

func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidInput:
		return "invalid input"
	case ErrOverlap:
		return "overlap"
	case ErrMissingAsset:
		return "missing asset"
	case ErrUnsupportedFormat:
		return "unsupported format"
	case ErrIo:
		return "io"
	case ErrInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Error is the error type returned by all library operations.
type Error struct {
	kind ErrorKind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.kind, e.msg, e.err)
	}
	return fmt.Sprintf("%s: %s", e.kind, e.msg)
}

// Kind returns the error classification.
func (e *Error) Kind() ErrorKind {
	return e.kind
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.err
}

func newError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

func wrapError(kind ErrorKind, err error, format string, args ...interface{}) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...), err: err}
}

// KindOf extracts the ErrorKind from err. Errors that did not originate in
// this library report ErrInternal, ok=false.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.kind, true
	}
	return ErrInternal, false
}
