// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package zcio_test

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/zcio"
)

// hostScript is a host io.Writer that accepts up to limits[i] bytes on the
// i-th call.
type hostScript struct {
	limits []int
	errs   []error
	calls  int
	data   []byte
}

func (h *hostScript) Write(p []byte) (int, error) {
	i := h.calls
	h.calls++
	if i >= len(h.limits) {
		return 0, nil
	}
	n := min(h.limits[i], len(p))
	h.data = append(h.data, p[:n]...)
	var err error
	if i < len(h.errs) {
		err = h.errs[i]
	}
	return n, err
}

func TestHostWriter_WriteAll(t *testing.T) {
	h := &hostScript{limits: []int{2, 2, 10}}
	w := zcio.NewHostWriter(h)

	require.NoError(t, zcio.WriteAll(w, []byte("hello")))
	assert.Equal(t, "hello", string(h.data))
	assert.Equal(t, 3, h.calls)
}

func TestHostWriter_WriteAllZero(t *testing.T) {
	h := &hostScript{limits: []int{1, 0}}
	w := zcio.NewHostWriter(h)

	err := w.WriteAll([]byte("abc"))
	require.Error(t, err)
	assert.Equal(t, "failed to write whole buffer", err.Error())
	assert.Equal(t, "a", string(h.data))
}

func TestHostWriter_WriteAllEmpty(t *testing.T) {
	h := &hostScript{}
	w := zcio.NewHostWriter(h)
	require.NoError(t, w.WriteAll(nil))
	assert.Zero(t, h.calls)
}

func TestHostWriter_Interrupted(t *testing.T) {
	h := &hostScript{limits: []int{1, 10}, errs: []error{errInterrupted}}
	w := zcio.NewHostWriter(h)

	err := w.WriteAll([]byte("abc"))
	if zcio.Rich {
		require.NoError(t, err)
		assert.Equal(t, "abc", string(h.data))
		return
	}
	assert.Equal(t, "interrupted", err.Error())
	assert.Equal(t, 1, h.calls)
}

func TestHostWriter_FlushPassthrough(t *testing.T) {
	var sink bytes.Buffer
	bw := bufio.NewWriter(&sink)
	w := zcio.NewHostWriter(bw)

	require.NoError(t, w.WriteAll([]byte("buffered")))
	assert.Zero(t, sink.Len())
	require.NoError(t, w.Flush())
	assert.Equal(t, "buffered", sink.String())

	fc := &flushCounter{err: errBoom}
	fw := zcio.NewHostWriter(fc)
	assert.Same(t, errBoom, fw.Flush())
	assert.Equal(t, 1, fc.flushes)
}

func TestHostWriter_FlushWithoutFlusher(t *testing.T) {
	pw := &plainWriter{}
	w := zcio.NewHostWriter(pw)
	require.NoError(t, w.Flush())
	require.NoError(t, w.Sync())
	require.NoError(t, w.Close())
}

func TestHostWriter_Passthrough(t *testing.T) {
	pw := &plainWriter{}
	w := zcio.NewHostWriter(pw)

	_, err := w.WriteString("ab")
	require.NoError(t, err)
	require.NoError(t, w.WriteByte('c'))
	n, err := w.ReadFrom(strings.NewReader("de"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Equal(t, "abcde", string(pw.data))

	_, err = w.Seek(0, io.SeekStart)
	assert.Error(t, err)
	_, err = w.WriteAt([]byte("x"), 0)
	assert.Error(t, err)
}

func TestHostWriter_File(t *testing.T) {
	fs := afero.NewMemMapFs()
	f, err := fs.Create("/out.bin")
	require.NoError(t, err)

	w := zcio.NewHostWriter(f)
	require.NoError(t, zcio.WriteAll(w, []byte("0123456789")))
	_, err = w.WriteAt([]byte("AB"), 2)
	require.NoError(t, err)
	_, err = w.Seek(0, io.SeekEnd)
	require.NoError(t, err)
	require.NoError(t, w.WriteAll([]byte("!")))
	require.NoError(t, w.Sync())
	require.NoError(t, w.Close())

	got, err := afero.ReadFile(fs, "/out.bin")
	require.NoError(t, err)
	assert.Equal(t, "01AB456789!", string(got))
}

func TestHostWriter_Inner(t *testing.T) {
	pw := &plainWriter{}
	w := zcio.NewHostWriter(pw)
	assert.Same(t, pw, w.Inner())

	next := &plainWriter{}
	*w.InnerPtr() = next
	require.NoError(t, w.WriteAll([]byte("z")))
	assert.Empty(t, pw.data)
	assert.Equal(t, "z", string(next.data))
}
