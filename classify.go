// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !zcio_minimal

package zcio

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"syscall"
)

// KindOf classifies any error.
//
// An error in the chain that has a Kind() Kind method (including *Error)
// decides. Otherwise the host error is matched against the io, io/fs and
// os sentinels and the common errno values. Everything else, including a
// nil err, is KindOther.
func KindOf(err error) Kind {
	if err == nil {
		return KindOther
	}
	var k interface{ Kind() Kind }
	if errors.As(err, &k) {
		return k.Kind()
	}
	return hostKind(err)
}

// IsKind reports whether err is classified as kind.
func IsKind(err error, kind Kind) bool { return err != nil && KindOf(err) == kind }

var hostKinds = []struct {
	target error
	kind   Kind
}{
	{io.EOF, KindUnexpectedEOF},
	{io.ErrUnexpectedEOF, KindUnexpectedEOF},
	{io.ErrShortWrite, KindWriteZero},
	{io.ErrClosedPipe, KindBrokenPipe},
	{io.ErrShortBuffer, KindInvalidInput},
	{fs.ErrNotExist, KindNotFound},
	{fs.ErrPermission, KindPermissionDenied},
	{fs.ErrExist, KindAlreadyExists},
	{fs.ErrInvalid, KindInvalidInput},
	{os.ErrDeadlineExceeded, KindTimedOut},
	{errors.ErrUnsupported, KindUnsupported},
	{syscall.EINTR, KindInterrupted},
	{syscall.EAGAIN, KindWouldBlock},
	{syscall.EPIPE, KindBrokenPipe},
	{syscall.ECONNREFUSED, KindConnectionRefused},
	{syscall.ECONNRESET, KindConnectionReset},
	{syscall.ECONNABORTED, KindConnectionAborted},
	{syscall.ENOTCONN, KindNotConnected},
	{syscall.EADDRINUSE, KindAddrInUse},
	{syscall.EADDRNOTAVAIL, KindAddrNotAvailable},
	{syscall.ENOMEM, KindOutOfMemory},
}

func hostKind(err error) Kind {
	for _, hk := range hostKinds {
		if errors.Is(err, hk.target) {
			return hk.kind
		}
	}
	var timeout interface{ Timeout() bool }
	if errors.As(err, &timeout) && timeout.Timeout() {
		return KindTimedOut
	}
	return KindOther
}

// hostSentinel returns the host error that an *Error of kind matches with
// errors.Is, or nil.
func hostSentinel(kind Kind) error {
	switch kind {
	case KindUnexpectedEOF:
		return io.ErrUnexpectedEOF
	case KindWriteZero:
		return io.ErrShortWrite
	case KindBrokenPipe:
		return io.ErrClosedPipe
	case KindNotFound:
		return fs.ErrNotExist
	case KindPermissionDenied:
		return fs.ErrPermission
	case KindAlreadyExists:
		return fs.ErrExist
	case KindTimedOut:
		return os.ErrDeadlineExceeded
	case KindUnsupported:
		return errors.ErrUnsupported
	default:
		return nil
	}
}
