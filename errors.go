package hmi

import "errors"

// Error kinds returned by the trend data model. All of them are recoverable:
// the call that produced the error applies no mutation, and a render frame
// never aborts because of one. Callers match with errors.Is.
var (
	// ErrInvalidSample reports a sample whose value is NaN or infinite.
	ErrInvalidSample = errors.New("hmi: invalid sample value")

	// ErrOutOfOrderSample reports a sample whose timestamp is not strictly
	// greater than the last stored timestamp. Equal timestamps count as
	// regressions; the caller may drop the sample or Clear() and restart.
	ErrOutOfOrderSample = errors.New("hmi: out-of-order sample timestamp")

	// ErrDuplicateSeries reports an AddSeries call with an id that already
	// exists.
	ErrDuplicateSeries = errors.New("hmi: duplicate series id")

	// ErrUnknownSeries reports an operation on a series id that does not
	// exist.
	ErrUnknownSeries = errors.New("hmi: unknown series id")

	// ErrMalformedMeta reports display metadata a series cannot be drawn
	// with, such as a fully transparent color. The series is skipped for
	// the frame and surfaced in the render outcome.
	ErrMalformedMeta = errors.New("hmi: malformed display meta")

	// ErrInvalidWindow reports a time window whose start is not strictly
	// before its end.
	ErrInvalidWindow = errors.New("hmi: invalid time window")
)
