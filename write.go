// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package zcio

// Writer is a simplified byte sink.
//
// Write makes at most one attempt to write p and returns how many bytes
// were accepted, 0 <= n <= len(p). Unlike io.Writer, a short count with a
// nil error is allowed: 0 usually means the sink is full for good, or that
// p was empty. An interruption may be reported as an error of
// KindInterrupted; callers that want everything written use WriteAll.
//
// Flush pushes buffered bytes to their destination. An error means data
// may have been lost.
//
// A Writer is not safe for concurrent use.
type Writer interface {
	Write(p []byte) (int, error)
	Flush() error
}

// AllWriter is a Writer with its own WriteAll. WriteAll uses it when
// present, in the same way a copy loop prefers io.ReaderFrom.
type AllWriter interface {
	Writer
	WriteAll(p []byte) error
}

// WriteAll writes all of p to w.
//
// Write is called until p is consumed. Interruptions are retried. A call
// that accepts 0 bytes of a non-empty p fails with KindWriteZero. Any
// other error is returned at once, and nothing past the failing Write is
// attempted. An empty p succeeds without calling Write.
func WriteAll(w Writer, p []byte) error {
	if aw, ok := w.(AllWriter); ok {
		return aw.WriteAll(p)
	}
	return writeAll(w, p)
}

func writeAll(w Writer, p []byte) error {
	for len(p) > 0 {
		n, err := w.Write(p)
		if n < 0 || n > len(p) {
			return errInvalidWrite
		}
		if err != nil {
			if isInterrupted(err) {
				p = p[n:]
				continue
			}
			return err
		}
		if n == 0 {
			return errWriteWhole
		}
		p = p[n:]
	}
	return nil
}
