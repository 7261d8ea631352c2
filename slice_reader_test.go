// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package zcio_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/zcio"
)

func TestSliceReader_Sequence(t *testing.T) {
	r := zcio.NewSliceReader([]byte{1, 2, 3, 4})

	b, err := r.ReadNext()
	require.NoError(t, err)
	assert.Equal(t, byte(1), b)

	v, err := r.ReadSlice(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 3}, v.Bytes())
	assert.True(t, v.IsBorrowed())

	arr, err := zcio.ReadArrayOf[[1]byte](r)
	require.NoError(t, err)
	assert.Equal(t, [1]byte{4}, arr)

	_, err = r.ReadNext()
	require.Error(t, err)
	assert.Equal(t, "failed to read byte", err.Error())
	assert.Zero(t, r.Len())
}

func TestSliceReader_ReadSliceBorrowsSource(t *testing.T) {
	src := []byte("hello world")
	r := zcio.NewSliceReader(src)

	v, err := r.ReadSlice(5)
	require.NoError(t, err)
	require.Equal(t, "hello", v.String())
	assert.Same(t, &src[0], &v.Bytes()[0])
	assert.Equal(t, 5, cap(v.Bytes()), "view must not reach unread bytes")
	assert.Equal(t, []byte(" world"), r.Remaining())
}

func TestSliceReader_ReadSliceTooLong(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		n    int
	}{
		{"empty", nil, 1},
		{"one short", []byte{1, 2, 3}, 4},
		{"far past end", []byte{1}, 1 << 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := zcio.NewSliceReader(tt.data)
			require.NotPanics(t, func() {
				_, err := r.ReadSlice(tt.n)
				require.Error(t, err)
				assert.Equal(t, "failed to read slice", err.Error())
			})
			assert.Equal(t, len(tt.data), r.Len(), "failed read must not consume")
		})
	}
}

func TestSliceReader_ReadSliceZeroAndNegative(t *testing.T) {
	r := zcio.NewSliceReader([]byte{9})

	v, err := r.ReadSlice(0)
	require.NoError(t, err)
	assert.Zero(t, v.Len())
	assert.Equal(t, 1, r.Len())

	_, err = r.ReadSlice(-1)
	require.Error(t, err)
	assert.Equal(t, "negative read length", err.Error())
	assert.Equal(t, 1, r.Len())
}

func TestSliceReader_ReadArray(t *testing.T) {
	data := []byte{0xde, 0xad, 0xbe, 0xef, 0x01}
	r := zcio.NewSliceReader(data)

	var word [4]byte
	require.NoError(t, r.ReadArray(word[:]))
	assert.Equal(t, [4]byte{0xde, 0xad, 0xbe, 0xef}, word)

	data[0] = 0
	assert.Equal(t, byte(0xde), word[0], "ReadArray copies")

	_, err := zcio.ReadArrayOf[[2]byte](r)
	require.Error(t, err)
	assert.Equal(t, "failed to read array", err.Error())
	assert.Equal(t, 1, r.Len())
}

func TestSliceReader_ReadArrayOfSizes(t *testing.T) {
	data := make([]byte, 64)
	for i := range data {
		data[i] = byte(i)
	}

	a8, err := zcio.ReadArrayOf[[8]byte](zcio.NewSliceReader(data))
	require.NoError(t, err)
	assert.Equal(t, data[:8], a8[:])

	a64, err := zcio.ReadArrayOf[[64]byte](zcio.NewSliceReader(data))
	require.NoError(t, err)
	assert.Equal(t, data, a64[:])

	type digest [32]byte
	d, err := zcio.ReadArrayOf[digest](zcio.NewSliceReader(data))
	require.NoError(t, err)
	assert.Equal(t, data[:32], d[:])
}

// Reading the whole input piecewise yields the input, in order.
func TestSliceReader_ConcatenationOfReads(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	for _, sizes := range [][]int{{1}, {2, 3}, {7}, {5, 1, 0, 8}} {
		r := zcio.NewSliceReader(data)
		var got []byte
		for i := 0; r.Len() > 0; i++ {
			n := min(sizes[i%len(sizes)], r.Len())
			switch i % 3 {
			case 0:
				v, err := r.ReadSlice(n)
				require.NoError(t, err)
				got = append(got, v.Bytes()...)
			case 1:
				p := make([]byte, n)
				require.NoError(t, r.ReadArray(p))
				got = append(got, p...)
			default:
				b, err := r.ReadNext()
				require.NoError(t, err)
				got = append(got, b)
			}
		}
		assert.Equal(t, data, got, "sizes %v", sizes)
	}
}

func TestSliceReader_HostRead(t *testing.T) {
	r := zcio.NewSliceReader([]byte("abc"))

	n, err := r.Read(nil)
	require.NoError(t, err)
	assert.Zero(t, n)

	b, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(b))

	_, err = r.ReadByte()
	assert.Equal(t, io.EOF, err)
}

func TestSliceReader_ReadArrayDoesNotAllocate(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	r := zcio.NewSliceReader(data)
	var arr [8]byte

	allocs := testing.AllocsPerRun(1000, func() {
		*r = data
		if err := r.ReadArray(arr[:]); err != nil {
			t.Fatal(err)
		}
	})
	assert.Zero(t, allocs, "ReadArray")

	var got [8]byte
	allocs = testing.AllocsPerRun(1000, func() {
		*r = data
		a, err := zcio.ReadArrayOf[[8]byte](r)
		if err != nil {
			t.Fatal(err)
		}
		got = a
	})
	assert.Zero(t, allocs, "ReadArrayOf")
	assert.Equal(t, [8]byte{1, 2, 3, 4, 5, 6, 7, 8}, got)
}
