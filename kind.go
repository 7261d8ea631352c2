// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package zcio

// Kind classifies an I/O failure.
//
// Kind exists in both build modes so that NewError call sites compile
// unchanged; only the rich build keeps it inside the *Error.
type Kind uint8

const (
	KindOther Kind = iota
	KindNotFound
	KindPermissionDenied
	KindConnectionRefused
	KindConnectionReset
	KindConnectionAborted
	KindNotConnected
	KindAddrInUse
	KindAddrNotAvailable
	KindBrokenPipe
	KindAlreadyExists
	KindWouldBlock
	KindInvalidInput
	KindInvalidData
	KindTimedOut
	KindWriteZero
	KindInterrupted
	KindUnsupported
	KindUnexpectedEOF
	KindOutOfMemory
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "entity not found"
	case KindPermissionDenied:
		return "permission denied"
	case KindConnectionRefused:
		return "connection refused"
	case KindConnectionReset:
		return "connection reset"
	case KindConnectionAborted:
		return "connection aborted"
	case KindNotConnected:
		return "not connected"
	case KindAddrInUse:
		return "address in use"
	case KindAddrNotAvailable:
		return "address not available"
	case KindBrokenPipe:
		return "broken pipe"
	case KindAlreadyExists:
		return "entity already exists"
	case KindWouldBlock:
		return "operation would block"
	case KindInvalidInput:
		return "invalid input parameter"
	case KindInvalidData:
		return "invalid data"
	case KindTimedOut:
		return "timed out"
	case KindWriteZero:
		return "write zero"
	case KindInterrupted:
		return "operation interrupted"
	case KindUnsupported:
		return "unsupported"
	case KindUnexpectedEOF:
		return "unexpected end of file"
	case KindOutOfMemory:
		return "out of memory"
	default:
		return "other error"
	}
}
