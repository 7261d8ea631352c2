// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package zcio

// Buffer is a growable sink that appends everything written to it.
//
// Writes always succeed in full. The zero Buffer is empty and ready to use.
type Buffer struct {
	buf []byte
}

// NewBuffer returns a Buffer that appends to b.
func NewBuffer(b []byte) *Buffer { return &Buffer{buf: b} }

// Bytes returns the written bytes. The slice aliases the Buffer's storage
// until the next write or Reset.
func (b *Buffer) Bytes() []byte { return b.buf }

// Len returns the number of written bytes.
func (b *Buffer) Len() int { return len(b.buf) }

// String returns the written bytes as a string.
func (b *Buffer) String() string { return string(b.buf) }

// Reset empties the Buffer but keeps its storage.
func (b *Buffer) Reset() { b.buf = b.buf[:0] }

// Write implements Writer and io.Writer.
func (b *Buffer) Write(p []byte) (int, error) {
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// Flush implements Writer. There is nothing to flush.
func (b *Buffer) Flush() error { return nil }

// WriteAll implements AllWriter.
func (b *Buffer) WriteAll(p []byte) error {
	b.buf = append(b.buf, p...)
	return nil
}

// WriteByte implements io.ByteWriter.
func (b *Buffer) WriteByte(c byte) error {
	b.buf = append(b.buf, c)
	return nil
}

// WriteString implements io.StringWriter.
func (b *Buffer) WriteString(s string) (int, error) {
	b.buf = append(b.buf, s...)
	return len(s), nil
}
