// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package zcio

import "io"

// SliceReader reads from an in-memory byte slice without copying.
//
// The slice header shrinks from the front on every successful read and
// never grows. Views returned by ReadSlice borrow the underlying array, so
// they stay valid for as long as that array is left untouched.
//
//	r := zcio.NewSliceReader(buf)
//	v, err := r.ReadSlice(4) // v.Bytes() aliases buf[:4]
type SliceReader []byte

// NewSliceReader returns a SliceReader over b. b is not copied.
func NewSliceReader(b []byte) *SliceReader {
	r := SliceReader(b)
	return &r
}

// Len returns the number of unread bytes.
func (r *SliceReader) Len() int { return len(*r) }

// Remaining returns the unread bytes without consuming them.
func (r *SliceReader) Remaining() []byte { return *r }

// ReadNext implements Reader.
func (r *SliceReader) ReadNext() (byte, error) {
	s := *r
	if len(s) == 0 {
		return 0, errReadByte
	}
	*r = s[1:]
	return s[0], nil
}

// ReadSlice implements Reader. The View is always borrowed.
func (r *SliceReader) ReadSlice(n int) (View, error) {
	if n < 0 {
		return View{}, errNegativeRead
	}
	s := *r
	if len(s) < n {
		return View{}, errReadSlice
	}
	// Cap the view so appends by the caller cannot reach unread bytes.
	*r = s[n:]
	return Borrow(s[:n:n]), nil
}

// ReadArray implements Reader.
func (r *SliceReader) ReadArray(p []byte) error {
	s := *r
	n := len(p)
	if len(s) < n {
		return errReadArray
	}
	copy(p, s[:n])
	*r = s[n:]
	return nil
}

// Read implements io.Reader so a SliceReader can feed host code.
func (r *SliceReader) Read(p []byte) (int, error) {
	s := *r
	if len(s) == 0 {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}
	n := copy(p, s)
	*r = s[n:]
	return n, nil
}

// ReadByte implements io.ByteReader.
func (r *SliceReader) ReadByte() (byte, error) {
	s := *r
	if len(s) == 0 {
		return 0, io.EOF
	}
	*r = s[1:]
	return s[0], nil
}
