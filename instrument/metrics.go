// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !zcio_minimal

package instrument

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"code.hybscloud.com/zcio"
)

// Values of the "view" label of the bytes counter.
const (
	ViewBorrowed = "borrowed"
	ViewOwned    = "owned"
	ViewCopied   = "copied"
)

// Metrics holds the counters shared by instrumented readers and writers.
type Metrics struct {
	Operations *prometheus.CounterVec
	Bytes      *prometheus.CounterVec
}

// NewMetrics creates the counters and registers them with reg. A nil reg
// skips registration.
func NewMetrics(reg prometheus.Registerer, cfg Config) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Operations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "operations_total",
			Help:      "Total number of zcio operations by outcome.",
		}, []string{"op", "outcome"}),
		Bytes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "bytes_total",
			Help:      "Total number of bytes moved by successful zcio operations, by how they were delivered.",
		}, []string{"op", "view"}),
	}
}

// count records one finished operation.
func (m *Metrics) count(op Op, err error) {
	if m == nil {
		return
	}
	m.Operations.WithLabelValues(op.String(), zcio.Classify(err).String()).Inc()
}

// add records n delivered bytes.
func (m *Metrics) add(op Op, view string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.Bytes.WithLabelValues(op.String(), view).Add(float64(n))
}
