// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !zcio_minimal

package instrument

import (
	"github.com/go-kit/log"

	"code.hybscloud.com/zcio"
)

// Writer is an instrumented zcio.Writer.
//
// Writer implements zcio.AllWriter by calling zcio.WriteAll on the wrapped
// Writer, so the wrapped Writer's own WriteAll is still used.
type Writer struct {
	next zcio.Writer
	m    *Metrics
	fl   failureLogger
}

// NewWriter wraps w. m and logger may be nil.
func NewWriter(w zcio.Writer, m *Metrics, logger log.Logger, cfg Config) *Writer {
	return &Writer{next: w, m: m, fl: newFailureLogger(logger, cfg)}
}

// Unwrap returns the wrapped Writer.
func (w *Writer) Unwrap() zcio.Writer { return w.next }

// Write implements zcio.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	n, err := w.next.Write(p)
	// Bytes accepted before a failure were still written.
	w.m.add(OpWrite, ViewCopied, n)
	w.m.count(OpWrite, err)
	w.fl.log(OpWrite, len(p), err)
	return n, err
}

// Flush implements zcio.Writer.
func (w *Writer) Flush() error {
	err := w.next.Flush()
	w.m.count(OpFlush, err)
	w.fl.log(OpFlush, 0, err)
	return err
}

// WriteAll implements zcio.AllWriter.
func (w *Writer) WriteAll(p []byte) error {
	err := zcio.WriteAll(w.next, p)
	w.m.count(OpWriteAll, err)
	if err == nil {
		w.m.add(OpWriteAll, ViewCopied, len(p))
	}
	w.fl.log(OpWriteAll, len(p), err)
	return err
}
