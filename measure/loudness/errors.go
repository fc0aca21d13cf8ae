package loudness

import "errors"

var (
	// ErrInvalidChannels indicates a channel count below one.
	ErrInvalidChannels = errors.New("loudness: channel count must be >= 1")
	// ErrInvalidSampleRate indicates a sample rate that cannot host the
	// K-weighting filter.
	ErrInvalidSampleRate = errors.New("loudness: invalid sample rate")
	// ErrInvalidLayout indicates a channel layout that does not match the
	// channel count.
	ErrInvalidLayout = errors.New("loudness: invalid channel layout")
	// ErrInvalidBuffer indicates input that is not made of whole frames.
	ErrInvalidBuffer = errors.New("loudness: invalid sample buffer")
	// ErrFormatMismatch indicates a buffer whose format differs from the
	// meter configuration.
	ErrFormatMismatch = errors.New("loudness: buffer format mismatch")
	// ErrFinalized indicates ingestion after a result query.
	ErrFinalized = errors.New("loudness: meter already finalized")
)
