// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package zcio

// Failures reported by the implementations in this package. An *Error is
// never mutated after construction, so these values are shared.
//
// Each is built with NewError and therefore reads the same in both build
// modes; in the rich build it also carries the Kind it was built with.
var (
	errReadByte     = NewError(KindUnexpectedEOF, "failed to read byte")
	errReadSlice    = NewError(KindUnexpectedEOF, "failed to read slice")
	errReadArray    = NewError(KindUnexpectedEOF, "failed to read array")
	errFillBuffer   = NewError(KindUnexpectedEOF, "failed to fill whole buffer")
	errWriteWhole   = NewError(KindWriteZero, "failed to write whole buffer")
	errNegativeRead = NewError(KindInvalidInput, "negative read length")
	errInvalidWrite = NewError(KindInvalidData, "writer returned invalid count from Write")
	errInvalidRead  = NewError(KindInvalidData, "reader returned invalid count from Read")
	errNoProgress   = NewError(KindOther, "multiple Read calls return no data or error")
	errUnsupported  = NewError(KindUnsupported, "operation not supported by the host stream")
)

// maxConsecutiveEmptyReads bounds how many (0, nil) reads a host stream may
// return in a row before a full read gives up.
const maxConsecutiveEmptyReads = 100
