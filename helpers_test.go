// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package zcio_test

import (
	"code.hybscloud.com/zcio"
)

// step is one scripted result: copy b into the caller's buffer (or count
// len(b) as accepted for writers) and return err.
type step struct {
	b   []byte
	err error
}

// scriptedReader is a host io.Reader that replays steps, then returns EOF.
type scriptedReader struct {
	steps []step
	i     int
	calls int
}

func (s *scriptedReader) Read(p []byte) (int, error) {
	s.calls++
	if s.i >= len(s.steps) {
		return 0, zcio.EOF
	}
	st := s.steps[s.i]
	s.i++
	n := copy(p, st.b)
	return n, st.err
}

// scriptedWriter is a zcio.Writer that accepts up to limits[i] bytes on the
// i-th call and returns errs[i]. It records everything it accepted.
type scriptedWriter struct {
	limits []int
	errs   []error
	calls  int
	data   []byte
}

func (w *scriptedWriter) Write(p []byte) (int, error) {
	i := w.calls
	w.calls++
	if i >= len(w.limits) {
		return 0, nil
	}
	n := min(w.limits[i], len(p))
	w.data = append(w.data, p[:n]...)
	var err error
	if i < len(w.errs) {
		err = w.errs[i]
	}
	return n, err
}

func (w *scriptedWriter) Flush() error { return nil }

// plainWriter is a host io.Writer with no optional capabilities.
type plainWriter struct{ data []byte }

func (w *plainWriter) Write(p []byte) (int, error) {
	w.data = append(w.data, p...)
	return len(p), nil
}

// plainReader hides every optional capability of the wrapped reader.
type plainReader struct{ r interface{ Read([]byte) (int, error) } }

func (r plainReader) Read(p []byte) (int, error) { return r.r.Read(p) }

// flushCounter is a host io.Writer with Flush() error.
type flushCounter struct {
	plainWriter
	flushes int
	err     error
}

func (f *flushCounter) Flush() error {
	f.flushes++
	return f.err
}

var (
	errBoom        = zcio.NewError(zcio.KindOther, "boom")
	errInterrupted = zcio.NewError(zcio.KindInterrupted, "interrupted")
)
