// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package zcio

import "io"

// HostReader adapts any io.Reader to Reader.
//
// A host stream has no addressable backing storage, so ReadSlice always
// returns an owned View. HostReader adds no buffering: every call goes
// straight to the wrapped stream.
//
// HostReader also forwards the wrapped stream's own io capabilities (Read,
// ReadByte, UnreadByte, Peek, Discard, WriteTo, Seek, ReadAt, Close), so
// adopting the zero-copy interface does not hide what the host stream can
// do. Those methods speak host errors. A capability the stream lacks
// reports an error that matches errors.ErrUnsupported in the rich build.
type HostReader[R io.Reader] struct {
	inner R
}

// NewHostReader returns a HostReader that owns r.
func NewHostReader[R io.Reader](r R) *HostReader[R] {
	return &HostReader[R]{inner: r}
}

// Inner returns the wrapped stream.
func (r *HostReader[R]) Inner() R { return r.inner }

// InnerPtr returns a pointer to the wrapped stream, for streams held by
// value.
func (r *HostReader[R]) InnerPtr() *R { return &r.inner }

// ReadNext implements Reader.
func (r *HostReader[R]) ReadNext() (byte, error) {
	if br, ok := any(r.inner).(io.ByteReader); ok {
		for {
			b, err := br.ReadByte()
			if err == nil {
				return b, nil
			}
			if isInterrupted(err) {
				continue
			}
			return 0, hostReadError(err)
		}
	}
	var b [1]byte
	if err := r.readFull(b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadSlice implements Reader. The View is always owned.
func (r *HostReader[R]) ReadSlice(n int) (View, error) {
	if n < 0 {
		return View{}, errNegativeRead
	}
	if n == 0 {
		return Own(nil), nil
	}
	buf := make([]byte, n)
	if err := r.readFull(buf); err != nil {
		return View{}, err
	}
	return Own(buf), nil
}

// ReadArray implements Reader.
func (r *HostReader[R]) ReadArray(p []byte) error {
	return r.readFull(p)
}

// readFull reads exactly len(p) bytes from the host stream.
func (r *HostReader[R]) readFull(p []byte) error {
	empty := 0
	for len(p) > 0 {
		n, err := r.inner.Read(p)
		if n < 0 || n > len(p) {
			return errInvalidRead
		}
		p = p[n:]
		if len(p) == 0 {
			return nil
		}
		if err != nil {
			if isInterrupted(err) {
				continue
			}
			return hostReadError(err)
		}
		if n > 0 {
			empty = 0
			continue
		}
		empty++
		if empty >= maxConsecutiveEmptyReads {
			return errNoProgress
		}
	}
	return nil
}

// hostReadError translates a host read failure. Running out of input in
// the middle of a request is reported as end-of-data.
func hostReadError(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return errFillBuffer
	}
	return FromHost(err)
}

// Read forwards to the wrapped stream.
func (r *HostReader[R]) Read(p []byte) (int, error) { return r.inner.Read(p) }

// ReadByte forwards to the wrapped stream's io.ByteReader, or reads one
// byte with Read.
func (r *HostReader[R]) ReadByte() (byte, error) {
	if br, ok := any(r.inner).(io.ByteReader); ok {
		return br.ReadByte()
	}
	var b [1]byte
	if _, err := io.ReadFull(r.inner, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// UnreadByte forwards to the wrapped stream's io.ByteScanner.
func (r *HostReader[R]) UnreadByte() error {
	if bs, ok := any(r.inner).(io.ByteScanner); ok {
		return bs.UnreadByte()
	}
	return errUnsupported
}

// Peek forwards to the wrapped stream's Peek.
func (r *HostReader[R]) Peek(n int) ([]byte, error) {
	if p, ok := any(r.inner).(Peeker); ok {
		return p.Peek(n)
	}
	return nil, errUnsupported
}

// Discard forwards to the wrapped stream's Discard, or reads and drops n
// bytes.
func (r *HostReader[R]) Discard(n int) (int, error) {
	if d, ok := any(r.inner).(Discarder); ok {
		return d.Discard(n)
	}
	if n <= 0 {
		return 0, nil
	}
	m, err := io.CopyN(io.Discard, r.inner, int64(n))
	return int(m), err
}

// WriteTo forwards to the wrapped stream's io.WriterTo, or copies.
func (r *HostReader[R]) WriteTo(w io.Writer) (int64, error) {
	if wt, ok := any(r.inner).(io.WriterTo); ok {
		return wt.WriteTo(w)
	}
	return io.Copy(w, r.inner)
}

// Seek forwards to the wrapped stream's io.Seeker.
func (r *HostReader[R]) Seek(offset int64, whence int) (int64, error) {
	if s, ok := any(r.inner).(io.Seeker); ok {
		return s.Seek(offset, whence)
	}
	return 0, errUnsupported
}

// ReadAt forwards to the wrapped stream's io.ReaderAt.
func (r *HostReader[R]) ReadAt(p []byte, off int64) (int, error) {
	if ra, ok := any(r.inner).(io.ReaderAt); ok {
		return ra.ReadAt(p, off)
	}
	return 0, errUnsupported
}

// Close closes the wrapped stream if it is an io.Closer.
func (r *HostReader[R]) Close() error {
	if c, ok := any(r.inner).(io.Closer); ok {
		return c.Close()
	}
	return nil
}
