// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build zcio_minimal

package zcio

import "strconv"

// Rich reports whether the package was built with the rich runtime.
const Rich = false

// Error is the failure type of Reader and Writer operations.
//
// In the minimal build an Error is only a message. There is no Kind and no
// cause chain; two errors built from the same message print the same.
type Error struct {
	msg string
}

// NewError creates an error from a static message. kind is accepted so
// that call sites compile in both build modes, and is discarded.
func NewError(_ Kind, msg string) *Error {
	return &Error{msg: msg}
}

// FromHost converts a host error into an *Error by keeping its text.
func FromHost(err error) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	return &Error{msg: err.Error()}
}

func (e *Error) Error() string { return e.msg }

// GoString implements fmt.GoStringer.
func (e *Error) GoString() string {
	return "zcio.Error{message: " + strconv.Quote(e.msg) + "}"
}

// Interruption cannot be told apart without a Kind.
func isInterrupted(error) bool { return false }
