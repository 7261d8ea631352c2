// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !zcio_minimal

package instrument

// Op identifies the zcio operation an observation belongs to.
type Op uint8

const (
	OpReadNext Op = iota
	OpReadSlice
	OpReadArray

	OpWrite
	OpFlush
	OpWriteAll
)

func (op Op) String() string {
	switch op {
	case OpReadNext:
		return "ReadNext"
	case OpReadSlice:
		return "ReadSlice"
	case OpReadArray:
		return "ReadArray"
	case OpWrite:
		return "Write"
	case OpFlush:
		return "Flush"
	case OpWriteAll:
		return "WriteAll"
	default:
		return "Op(unknown)"
	}
}

// IsRead reports whether op is a Reader operation.
func (op Op) IsRead() bool { return op <= OpReadArray }
