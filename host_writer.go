// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package zcio

import "io"

// HostWriter adapts any io.Writer to Writer.
//
// Write and Flush forward to the wrapped stream and translate its errors
// with FromHost. Flush is a no-op for streams without a Flush() error
// method. No buffering is added.
//
// Like HostReader, HostWriter forwards the wrapped stream's own io
// capabilities (WriteString, WriteByte, ReadFrom, Seek, WriteAt, Sync,
// Close) with host errors.
type HostWriter[W io.Writer] struct {
	inner W
}

// NewHostWriter returns a HostWriter that owns w.
func NewHostWriter[W io.Writer](w W) *HostWriter[W] {
	return &HostWriter[W]{inner: w}
}

// Inner returns the wrapped stream.
func (w *HostWriter[W]) Inner() W { return w.inner }

// InnerPtr returns a pointer to the wrapped stream, for streams held by
// value.
func (w *HostWriter[W]) InnerPtr() *W { return &w.inner }

// Write implements Writer with a single call to the wrapped stream.
func (w *HostWriter[W]) Write(p []byte) (int, error) {
	n, err := w.inner.Write(p)
	if n < 0 || n > len(p) {
		return 0, errInvalidWrite
	}
	return n, FromHost(err)
}

// Flush implements Writer.
func (w *HostWriter[W]) Flush() error {
	if f, ok := any(w.inner).(Flusher); ok {
		return FromHost(f.Flush())
	}
	return nil
}

// WriteAll implements AllWriter.
func (w *HostWriter[W]) WriteAll(p []byte) error {
	for len(p) > 0 {
		n, err := w.inner.Write(p)
		if n < 0 || n > len(p) {
			return errInvalidWrite
		}
		p = p[n:]
		if err != nil {
			if isInterrupted(err) {
				continue
			}
			return FromHost(err)
		}
		if n == 0 {
			return errWriteWhole
		}
	}
	return nil
}

// WriteString forwards to the wrapped stream's io.StringWriter, or writes
// the bytes of s.
func (w *HostWriter[W]) WriteString(s string) (int, error) {
	return io.WriteString(w.inner, s)
}

// WriteByte forwards to the wrapped stream's io.ByteWriter, or writes one
// byte.
func (w *HostWriter[W]) WriteByte(c byte) error {
	if bw, ok := any(w.inner).(io.ByteWriter); ok {
		return bw.WriteByte(c)
	}
	_, err := w.inner.Write([]byte{c})
	return err
}

// ReadFrom forwards to the wrapped stream's io.ReaderFrom, or copies.
func (w *HostWriter[W]) ReadFrom(src io.Reader) (int64, error) {
	if rf, ok := any(w.inner).(io.ReaderFrom); ok {
		return rf.ReadFrom(src)
	}
	return io.Copy(w.inner, src)
}

// Seek forwards to the wrapped stream's io.Seeker.
func (w *HostWriter[W]) Seek(offset int64, whence int) (int64, error) {
	if s, ok := any(w.inner).(io.Seeker); ok {
		return s.Seek(offset, whence)
	}
	return 0, errUnsupported
}

// WriteAt forwards to the wrapped stream's io.WriterAt.
func (w *HostWriter[W]) WriteAt(p []byte, off int64) (int, error) {
	if wa, ok := any(w.inner).(io.WriterAt); ok {
		return wa.WriteAt(p, off)
	}
	return 0, errUnsupported
}

// Sync forwards to the wrapped stream's Sync. Streams without one have
// nothing to sync.
func (w *HostWriter[W]) Sync() error {
	if s, ok := any(w.inner).(Syncer); ok {
		return s.Sync()
	}
	return nil
}

// Close closes the wrapped stream if it is an io.Closer.
func (w *HostWriter[W]) Close() error {
	if c, ok := any(w.inner).(io.Closer); ok {
		return c.Close()
	}
	return nil
}
