package loudness

import (
	"github.com/cwbudde/algo-loudness/dsp/core"
	"github.com/cwbudde/algo-loudness/dsp/resample"
)

// GateMode selects which windows the short-term and momentary sequences
// report.
type GateMode int

const (
	// GateAbsolute drops windows below the -70 LKFS absolute gate.
	GateAbsolute GateMode = iota
	// GateNone reports every window, including silent ones as -Inf.
	GateNone
)

// String returns the gate mode name.
func (g GateMode) String() string {
	switch g {
	case GateAbsolute:
		return "absolute"
	case GateNone:
		return "none"
	default:
		return "unknown"
	}
}

// ParseGateMode converts a gate mode name to a GateMode.
func ParseGateMode(s string) (GateMode, bool) {
	switch s {
	case "absolute":
		return GateAbsolute, true
	case "none":
		return GateNone, true
	default:
		return GateAbsolute, false
	}
}

const defaultOversampling = 4

// MeterConfig defines configuration for the loudness meter.
//
// SampleRate in the embedded ProcessorConfig is set by NewMeter from its
// positional argument; BlockSize bounds the number of frames processed per
// internal chunk.
type MeterConfig struct {
	core.ProcessorConfig

	// Layout assigns a role to each channel. Nil selects DefaultLayout.
	Layout []Channel
	// SequenceGate selects the gate applied to ShortTerm and Momentary.
	SequenceGate GateMode
	// Oversampling is the true-peak interpolation factor. 1 disables
	// interpolation and reports sample peaks.
	Oversampling int
	// TruePeakQuality selects the interpolation filter profile.
	TruePeakQuality resample.Quality
}

// MeterOption mutates a MeterConfig.
type MeterOption func(*MeterConfig)

// DefaultMeterConfig returns sensible defaults.
func DefaultMeterConfig() MeterConfig {
	return MeterConfig{
		ProcessorConfig: core.DefaultProcessorConfig(),
		SequenceGate:    GateAbsolute,
		Oversampling:    defaultOversampling,
		TruePeakQuality: resample.QualityBalanced,
	}
}

// WithChannelLayout overrides the channel roles. The layout length must
// match the channel count passed to NewMeter.
func WithChannelLayout(layout ...Channel) MeterOption {
	return func(cfg *MeterConfig) {
		if len(layout) > 0 {
			cfg.Layout = append([]Channel(nil), layout...)
		}
	}
}

// WithSequenceGate selects the gate applied to the short-term and
// momentary sequences.
func WithSequenceGate(mode GateMode) MeterOption {
	return func(cfg *MeterConfig) {
		if mode == GateAbsolute || mode == GateNone {
			cfg.SequenceGate = mode
		}
	}
}

// WithOversampling sets the true-peak interpolation factor.
func WithOversampling(factor int) MeterOption {
	return func(cfg *MeterConfig) {
		if factor >= 1 {
			cfg.Oversampling = factor
		}
	}
}

// WithTruePeakQuality selects the true-peak interpolation filter profile.
func WithTruePeakQuality(q resample.Quality) MeterOption {
	return func(cfg *MeterConfig) {
		cfg.TruePeakQuality = q
	}
}

// WithBlockSize sets the number of frames processed per internal chunk.
func WithBlockSize(frames int) MeterOption {
	return func(cfg *MeterConfig) {
		core.WithBlockSize(frames)(&cfg.ProcessorConfig)
	}
}

// ApplyMeterOptions applies zero or more options to the default config.
func ApplyMeterOptions(opts ...MeterOption) MeterConfig {
	cfg := DefaultMeterConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
