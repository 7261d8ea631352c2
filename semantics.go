// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !zcio_minimal

package zcio

// Outcome classifies an operation result by what the caller can do next.
//
// OutcomeOK:          success.
// OutcomeTransient:   interrupted; retrying is expected to work. Reads and
//                     WriteAll absorb this themselves, so callers of this
//                     package normally never see it.
// OutcomeEndOfData:   the source ran out before the request was satisfied.
//                     Supply more data or stop.
// OutcomeCapacity:    the sink no longer accepts bytes. Terminal for it.
// OutcomeFailure:     any other error.
type Outcome uint8

const (
	OutcomeFailure Outcome = iota
	OutcomeOK
	OutcomeTransient
	OutcomeEndOfData
	OutcomeCapacity
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "OK"
	case OutcomeTransient:
		return "Transient"
	case OutcomeEndOfData:
		return "EndOfData"
	case OutcomeCapacity:
		return "Capacity"
	default:
		return "Failure"
	}
}

// IsTransient reports whether err is an interruption.
func IsTransient(err error) bool { return IsKind(err, KindInterrupted) }

// IsEndOfData reports whether err means the source was exhausted.
// Host io.EOF and io.ErrUnexpectedEOF count.
func IsEndOfData(err error) bool { return IsKind(err, KindUnexpectedEOF) }

// IsCapacity reports whether err means the sink cannot take more bytes.
// Host io.ErrShortWrite counts.
func IsCapacity(err error) bool { return IsKind(err, KindWriteZero) }

// Classify maps err to an Outcome.
func Classify(err error) Outcome {
	if err == nil {
		return OutcomeOK
	}
	switch KindOf(err) {
	case KindInterrupted:
		return OutcomeTransient
	case KindUnexpectedEOF:
		return OutcomeEndOfData
	case KindWriteZero:
		return OutcomeCapacity
	default:
		return OutcomeFailure
	}
}
