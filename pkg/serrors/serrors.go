// Package serrors provides semantic error kinds for the outer surfaces of the
// converter (CLI and HTTP). The converter itself never fails; these kinds
// describe bad radix names, malformed requests and internal failures so that
// front ends can map them to status codes and exit codes.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a sentinel). Kinds are
// comparable and match through errors.Is/As on an *Error.
func NewKind(name string) Kind { return kind{s: name} }

var (
	// ErrBadRequest indicates the caller sent unusable data, e.g. an unknown radix.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrNotFound indicates the addressed resource does not exist.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrInternal indicates an unexpected failure.
	ErrInternal = NewKind("INTERNAL")
)

// Error is a semantic error carrying a kind, an optional wrapped cause and an
// optional message.
//
// errors.Is and errors.As match either the kind or the wrapped cause.
// Error() renders "<msg>: <err>", "<msg>", "<err>" or the kind name,
// whichever parts are set.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a semantic error of kind k with a formatted message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a semantic error of kind k around err with a formatted message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.err }

// Is matches target against the kind first, then the wrapped cause.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}

	return e.err != nil && errors.Is(e.err, target)
}

// As assigns the kind or the wrapped cause to target, kind first.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}

	return e.err != nil && errors.As(e.err, target)
}

// Kind returns the kind of e, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to e.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause, which may be nil.
func (e *Error) Cause() error { return e.err }

// KindOf returns the first semantic kind found in err's chain, or nil when err
// carries none. A bare Kind sentinel is returned as is.
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return nil
}

// MessageOf returns the message of the outermost *Error in err's chain, or
// the empty string.
func MessageOf(err error) string {
	var se *Error
	if errors.As(err, &se) {
		return se.msg
	}

	return ""
}
