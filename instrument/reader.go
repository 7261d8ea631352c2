// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !zcio_minimal

package instrument

import (
	"github.com/go-kit/log"

	"code.hybscloud.com/zcio"
)

// Reader is an instrumented zcio.Reader.
type Reader struct {
	next zcio.Reader
	m    *Metrics
	fl   failureLogger
}

// NewReader wraps r. m and logger may be nil.
func NewReader(r zcio.Reader, m *Metrics, logger log.Logger, cfg Config) *Reader {
	return &Reader{next: r, m: m, fl: newFailureLogger(logger, cfg)}
}

// Unwrap returns the wrapped Reader.
func (r *Reader) Unwrap() zcio.Reader { return r.next }

// ReadNext implements zcio.Reader.
func (r *Reader) ReadNext() (byte, error) {
	b, err := r.next.ReadNext()
	r.done(OpReadNext, ViewCopied, 1, err)
	return b, err
}

// ReadSlice implements zcio.Reader. The View is returned untouched.
func (r *Reader) ReadSlice(n int) (zcio.View, error) {
	v, err := r.next.ReadSlice(n)
	view := ViewOwned
	if v.IsBorrowed() {
		view = ViewBorrowed
	}
	r.done(OpReadSlice, view, n, err)
	return v, err
}

// ReadArray implements zcio.Reader.
func (r *Reader) ReadArray(p []byte) error {
	err := r.next.ReadArray(p)
	r.done(OpReadArray, ViewCopied, len(p), err)
	return err
}

func (r *Reader) done(op Op, view string, n int, err error) {
	r.m.count(op, err)
	if err == nil {
		r.m.add(op, view, n)
	}
	r.fl.log(op, n, err)
}
