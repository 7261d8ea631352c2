// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package zcio provides a zero-copy Reader and a simplified Writer for byte
// streams, usable both with the full runtime and in constrained builds.
//
// Zero-copy reads
//   - Reader.ReadSlice returns a View. A View either borrows a sub-range of
//     the source's backing storage or owns a fresh copy; the caller handles
//     both the same way and only asks when it needs to keep the bytes.
//   - SliceReader always borrows. HostReader (over any io.Reader) always owns.
//   - Reader.ReadArray and ReadArrayOf always copy into fixed-size storage.
//
// Writes
//   - Writer.Write is a single best-effort attempt; a short count is not an
//     error. WriteAll loops until done and reports a sink that stops
//     accepting bytes as a write-zero failure.
//
// Build modes
//
// By default the rich runtime is used: *Error carries a Kind, an optional
// cause, and converts to and from host errors (errors.Is/As, KindOf). Build
// with the zcio_minimal tag to get the constrained form, where an *Error is
// a message and nothing else. NewError is the construction path that works
// in both modes; Kind, Wrap, KindOf and the classification helpers only
// exist in the rich build.
//
// Interrupted operations (KindInterrupted) are retried inside every read and
// inside WriteAll. No other failure is retried.
package zcio
