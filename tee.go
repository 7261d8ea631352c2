// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package zcio

// TeeReader returns a Reader that writes to w everything it reads from r.
//
// Each successful read is passed to WriteAll(w, ...) before it is returned.
// If that fails, the write error is returned and the bytes are not. Views
// keep their kind: a borrowed View from r is still borrowed.
func TeeReader(r Reader, w Writer) Reader {
	return &teeReader{r: r, w: w}
}

type teeReader struct {
	r   Reader
	w   Writer
	buf [1]byte
}

func (t *teeReader) ReadNext() (byte, error) {
	b, err := t.r.ReadNext()
	if err != nil {
		return 0, err
	}
	t.buf[0] = b
	if err := WriteAll(t.w, t.buf[:]); err != nil {
		return 0, err
	}
	return b, nil
}

func (t *teeReader) ReadSlice(n int) (View, error) {
	v, err := t.r.ReadSlice(n)
	if err != nil {
		return View{}, err
	}
	if err := WriteAll(t.w, v.Bytes()); err != nil {
		return View{}, err
	}
	return v, nil
}

func (t *teeReader) ReadArray(p []byte) error {
	if err := t.r.ReadArray(p); err != nil {
		return err
	}
	return WriteAll(t.w, p)
}

// TeeWriter returns a Writer that duplicates writes to primary and tee.
//
// Write makes one attempt on primary; whatever primary accepted is then
// written in full to tee with WriteAll, so tee never falls behind. The count
// is primary's. Flush flushes primary, then tee.
func TeeWriter(primary Writer, tee Writer) Writer {
	return &teeWriter{w: primary, tee: tee}
}

type teeWriter struct {
	w   Writer
	tee Writer
}

func (t *teeWriter) Write(p []byte) (int, error) {
	n, err := t.w.Write(p)
	if n < 0 || n > len(p) {
		return 0, errInvalidWrite
	}
	if n > 0 {
		if err2 := WriteAll(t.tee, p[:n]); err2 != nil {
			return n, err2
		}
	}
	return n, err
}

func (t *teeWriter) Flush() error {
	if err := t.w.Flush(); err != nil {
		return err
	}
	return t.tee.Flush()
}
