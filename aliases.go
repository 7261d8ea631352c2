// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package zcio

import (
	"io"
)

// Host stream interfaces.
//
// HostReader and HostWriter wrap plain io streams. The aliases below name
// the optional io capabilities they forward when the wrapped stream has
// them; the non-alias interfaces cover methods the io package has no name
// for (bufio.Reader.Peek, bufio.Writer.Flush, os.File.Sync, ...).

// ByteReader is an alias of io.ByteReader.
type ByteReader = io.ByteReader

// ByteScanner is an alias of io.ByteScanner.
type ByteScanner = io.ByteScanner

// ByteWriter is an alias of io.ByteWriter.
type ByteWriter = io.ByteWriter

// StringWriter is an alias of io.StringWriter.
type StringWriter = io.StringWriter

// Seeker is an alias of io.Seeker.
type Seeker = io.Seeker

// ReaderAt is an alias of io.ReaderAt.
type ReaderAt = io.ReaderAt

// WriterAt is an alias of io.WriterAt.
type WriterAt = io.WriterAt

// WriterTo is an alias of io.WriterTo.
type WriterTo = io.WriterTo

// ReaderFrom is an alias of io.ReaderFrom.
type ReaderFrom = io.ReaderFrom

// Closer is an alias of io.Closer.
type Closer = io.Closer

// Flusher is implemented by host writers that buffer internally, such as
// *bufio.Writer or a compressor.
type Flusher interface {
	Flush() error
}

// Syncer is implemented by host writers backed by storage, such as *os.File.
type Syncer interface {
	Sync() error
}

// Peeker is implemented by buffered host readers, such as *bufio.Reader.
// Peek returns the next n bytes without advancing.
type Peeker interface {
	Peek(n int) ([]byte, error)
}

// Discarder is implemented by buffered host readers, such as *bufio.Reader.
// Discard skips the next n bytes.
type Discarder interface {
	Discard(n int) (int, error)
}

// Host sentinel errors re-exported for convenience. The adapters translate
// them on the way in (see FromHost); they are listed here so callers that
// implement host streams for HostReader and HostWriter stay in one
// namespace.
var (
	// EOF is returned by a host Read when no more input is available.
	EOF = io.EOF

	// ErrUnexpectedEOF means the host stream ended mid-record.
	ErrUnexpectedEOF = io.ErrUnexpectedEOF

	// ErrShortWrite means a host Write accepted fewer bytes than requested.
	ErrShortWrite = io.ErrShortWrite

	// ErrNoProgress reports a host Reader that keeps returning (0, nil).
	ErrNoProgress = io.ErrNoProgress
)
