// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package zcio

// CopyChunk is the largest View CopyN asks a source for at once.
const CopyChunk = 32 * 1024

// CopyN moves exactly n bytes from src to dst.
//
// Bytes are read with ReadSlice and handed to WriteAll, so a source that
// lends its storage (SliceReader) is copied only once, into the sink. Reads
// are at most CopyChunk bytes long to bound the memory an owning source
// allocates.
//
// written counts the bytes handed to dst by successful WriteAll calls;
// written == n if and only if err == nil. A source that ends early fails
// with end-of-data, as in ReadSlice.
func CopyN(dst Writer, src Reader, n int64) (written int64, err error) {
	if n < 0 {
		return 0, errNegativeRead
	}
	for written < n {
		chunk := n - written
		if chunk > CopyChunk {
			chunk = CopyChunk
		}
		v, err := src.ReadSlice(int(chunk))
		if err != nil {
			return written, err
		}
		if err := WriteAll(dst, v.Bytes()); err != nil {
			return written, err
		}
		written += chunk
	}
	return written, nil
}
