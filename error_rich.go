// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !zcio_minimal

package zcio

import (
	"errors"
	"fmt"
	"io"
	"syscall"

	pkgerrors "github.com/pkg/errors"
)

// Rich reports whether the package was built with the rich runtime.
const Rich = true

// Error is the failure type of Reader and Writer operations.
//
// In the rich build an Error is a Kind plus either a static message or a
// cause. A cause may be a host error (see FromHost) or a boxed payload
// created by Errorf. Errors compare with errors.Is against the host
// sentinel of their Kind, so callers that only know the io package keep
// working.
type Error struct {
	kind  Kind
	cause error
	msg   string
}

// NewError creates an error from a kind and a static message.
//
// This is the construction path that compiles in both build modes. The
// minimal build drops kind.
func NewError(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

// Wrap creates an error of the given kind around an arbitrary cause.
// A nil cause yields the same value as FromKind(kind).
func Wrap(kind Kind, cause error) *Error {
	return &Error{kind: kind, cause: cause}
}

// Other creates an error of KindOther around cause.
func Other(cause error) *Error { return Wrap(KindOther, cause) }

// Errorf creates an error with a formatted message. The message is boxed
// with a stack trace, which %+v prints.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{kind: kind, cause: pkgerrors.Errorf(format, args...)}
}

// FromKind creates an error that carries only a classification.
// Its text is kind.String().
func FromKind(kind Kind) *Error { return &Error{kind: kind} }

// FromRawOSError creates an error from an OS error number.
func FromRawOSError(code int) *Error {
	errno := syscall.Errno(code)
	return &Error{kind: hostKind(errno), cause: errno}
}

// FromHost converts a host error into an *Error.
//
// nil stays nil and an *Error is returned as is. Any other error becomes
// the cause of a new *Error whose kind is KindOf(err); nothing is lost.
func FromHost(err error) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	return &Error{kind: KindOf(err), cause: err}
}

// Kind returns the classification of e.
func (e *Error) Kind() Kind { return e.kind }

// Cause returns the wrapped error, or nil. It makes Error a causer for
// github.com/pkg/errors.Cause.
func (e *Error) Cause() error { return e.cause }

// Unwrap returns the wrapped error, or nil.
func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target is the host sentinel for e's kind, or a
// classification-only *Error of the same kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return t.cause == nil && t.msg == "" && t.kind == e.kind
	}
	s := hostSentinel(e.kind)
	return s != nil && s == target
}

// RawOSError returns the OS error number e was built from, if any.
func (e *Error) RawOSError() (int, bool) {
	var errno syscall.Errno
	if errors.As(e.cause, &errno) {
		return int(errno), true
	}
	return 0, false
}

func (e *Error) Error() string {
	switch {
	case e.msg != "":
		return e.msg
	case e.cause != nil:
		return e.cause.Error()
	default:
		return e.kind.String()
	}
}

// GoString implements fmt.GoStringer.
func (e *Error) GoString() string {
	if e.cause != nil {
		return fmt.Sprintf("zcio.Error{kind: %q, cause: %#v}", e.kind, e.cause)
	}
	return fmt.Sprintf("zcio.Error{kind: %q, message: %q}", e.kind, e.Error())
}

// Format implements fmt.Formatter. %+v prints the cause in detail,
// including a stack trace when the cause has one.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('#') {
			_, _ = io.WriteString(s, e.GoString())
			return
		}
		if s.Flag('+') && e.cause != nil {
			_, _ = fmt.Fprintf(s, "%s: %+v", e.kind, e.cause)
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = io.WriteString(s, e.Error())
	}
}

// isInterrupted reports whether err asks for a transparent retry.
func isInterrupted(err error) bool {
	return err != nil && KindOf(err) == KindInterrupted
}
