// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package zcio

// SliceWriter writes into a fixed-size byte slice, overwriting it.
//
// Each write copies what fits and moves the start of the slice past it, so
// the SliceWriter always holds the part that is still unwritten. Once the
// slice is used up, Write returns 0 and WriteAll fails with KindWriteZero.
//
//	buf := make([]byte, 64)
//	w := zcio.NewSliceWriter(buf)
//	err := zcio.WriteAll(w, payload)
//	used := buf[:len(buf)-w.Available()]
type SliceWriter []byte

// NewSliceWriter returns a SliceWriter over b.
func NewSliceWriter(b []byte) *SliceWriter {
	w := SliceWriter(b)
	return &w
}

// Available returns how many bytes can still be written.
func (w *SliceWriter) Available() int { return len(*w) }

// Write implements Writer. It never fails; a full slice yields a short
// count.
func (w *SliceWriter) Write(p []byte) (int, error) {
	s := *w
	n := copy(s, p)
	*w = s[n:]
	return n, nil
}

// Flush implements Writer. There is nothing to flush.
func (w *SliceWriter) Flush() error { return nil }

// WriteAll implements AllWriter. If p does not fit, the prefix that does
// is written and the error is of KindWriteZero.
func (w *SliceWriter) WriteAll(p []byte) error {
	if n, _ := w.Write(p); n != len(p) {
		return errWriteWhole
	}
	return nil
}
