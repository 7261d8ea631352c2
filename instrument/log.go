// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !zcio_minimal

package instrument

import (
	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"code.hybscloud.com/zcio"
)

type failureLogger struct {
	logger       log.Logger
	logEndOfData bool
}

func newFailureLogger(logger log.Logger, cfg Config) failureLogger {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return failureLogger{logger: logger, logEndOfData: cfg.LogEndOfData}
}

// log records a failed operation. End-of-data is logged at debug level and
// only when enabled; everything else is a warning.
func (l failureLogger) log(op Op, requested int, err error) {
	if err == nil {
		return
	}
	lvl := level.Warn
	if zcio.IsEndOfData(err) {
		if !l.logEndOfData {
			return
		}
		lvl = level.Debug
	}
	var size any = requested
	if requested >= 0 {
		size = humanize.IBytes(uint64(requested))
	}
	_ = lvl(l.logger).Log(
		"msg", "zcio operation failed",
		"op", op,
		"kind", zcio.KindOf(err),
		"requested", size,
		"err", err,
	)
}
