// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package zcio

// Reader reads bytes from a source, borrowing them when it can.
//
// Types implementing Reader are zero-copy readers. Not every source can
// lend out its storage, which is why ReadSlice returns a View.
//
// Every method reads exactly what was asked or fails:
//   - An interruption is retried inside the call and never returned.
//   - If the source ends first the error is of KindUnexpectedEOF.
//   - Any other failure returns immediately.
//
// After an error it is unspecified how much of the source was consumed.
// Implementations must not panic on later calls.
//
// A Reader is not safe for concurrent use. A pointer to an implementation
// and an interface value holding it behave identically: every call goes to
// the same value.
type Reader interface {
	// ReadNext reads one byte.
	ReadNext() (byte, error)

	// ReadSlice reads n bytes, borrowing them from the source if possible.
	// On success the View has exactly n bytes. A negative n is
	// KindInvalidInput; n == 0 succeeds without touching the source.
	ReadSlice(n int) (View, error)

	// ReadArray fills p completely, always copying. It is the fixed-size
	// counterpart of ReadSlice: pass arr[:] for a [N]byte.
	ReadArray(p []byte) error
}

// Array is the set of fixed-size results ReadArrayOf supports.
type Array interface {
	~[1]byte | ~[2]byte | ~[4]byte | ~[8]byte | ~[16]byte | ~[32]byte | ~[64]byte
}

// ReadArrayOf reads len(A) bytes from r into a new array.
//
// From a *SliceReader the bytes are copied straight from the source and
// nothing is allocated. Other readers fill a temporary slice through
// ReadArray first.
//
//	hdr, err := zcio.ReadArrayOf[[4]byte](r)
func ReadArrayOf[A Array](r Reader) (A, error) {
	var a A
	var src []byte
	if sr, ok := r.(*SliceReader); ok {
		s := *sr
		if len(s) < len(a) {
			return a, errReadArray
		}
		src = s[:len(a)]
		*sr = s[len(a):]
	} else {
		src = make([]byte, len(a))
		if err := r.ReadArray(src); err != nil {
			return a, err
		}
	}
	for i := range src {
		a[i] = src[i]
	}
	return a, nil
}
