// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !zcio_minimal

// Package instrument wraps zcio readers and writers to record Prometheus
// metrics and go-kit logs for every operation.
//
// The wrappers are transparent: each call is forwarded unchanged to the
// wrapped value and its result is returned as is. Views keep their kind, so
// a borrowed View read through an instrumented SliceReader is still
// borrowed.
//
// The package needs error classification and is therefore only available
// in the rich build.
package instrument
