// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package zcio

// View is the result of Reader.ReadSlice: either a borrowed sub-range of
// the source's storage or a copy owned by the caller.
//
// A borrowed View is only valid while its source is: the caller must not
// keep it after the source's backing buffer is reused or modified, and must
// not write through it. Use Owned or Clone to keep the bytes beyond that.
// An owned View belongs to the caller outright.
//
// The zero View is an empty borrowed view.
type View struct {
	b     []byte
	owned bool
}

// Borrow returns a View that borrows b.
func Borrow(b []byte) View { return View{b: b} }

// Own returns a View that takes ownership of b.
func Own(b []byte) View { return View{b: b, owned: true} }

// Bytes returns the viewed bytes. For a borrowed View the slice aliases the
// source's storage.
func (v View) Bytes() []byte { return v.b }

// Len returns the number of bytes in v.
func (v View) Len() int { return len(v.b) }

// IsBorrowed reports whether v aliases the source's storage.
func (v View) IsBorrowed() bool { return !v.owned }

// IsOwned reports whether v is an independent copy.
func (v View) IsOwned() bool { return v.owned }

// Owned returns v's bytes as a slice the caller owns, copying only when v
// is borrowed.
func (v View) Owned() []byte {
	if v.owned {
		return v.b
	}
	return v.Clone()
}

// Clone always returns a fresh copy of v's bytes.
func (v View) Clone() []byte {
	if v.b == nil {
		return nil
	}
	out := make([]byte, len(v.b))
	copy(out, v.b)
	return out
}

// String returns the viewed bytes as a string (always a copy).
func (v View) String() string { return string(v.b) }
