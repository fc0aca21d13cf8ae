package loudness

import (
	"fmt"
	"iter"
	"math"
	"time"

	"github.com/cwbudde/algo-loudness/dsp/core"
	"github.com/cwbudde/algo-loudness/dsp/filter/biquad"
	"github.com/cwbudde/algo-loudness/dsp/filter/weighting"
)

// Meter measures BS.1770 loudness and true peak of one multichannel stream.
//
// A Meter is not safe for concurrent use. Distinct meters share no state.
type Meter struct {
	sampleRate float64
	channels   int
	cfg        MeterConfig

	filters *kWeighting
	acc     *accumulator
	peaks   *peakDetector

	frames    int64
	finalized bool

	planes  [][]float64 // per-channel chunk scratch
	convert []float64   // interleaved conversion scratch for IngestBuffer
}

// NewMeter creates a meter for channels interleaved channels at sampleRate.
func NewMeter(sampleRate float64, channels int, opts ...MeterOption) (*Meter, error) {
	if channels < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidChannels, channels)
	}

	if !core.IsFinite(sampleRate) || !weighting.ValidSampleRate(sampleRate) {
		return nil, fmt.Errorf("%w: %v Hz (must exceed %.0f Hz)",
			ErrInvalidSampleRate, sampleRate, weighting.MinSampleRate)
	}

	cfg := ApplyMeterOptions(opts...)
	cfg.SampleRate = sampleRate

	if cfg.Layout == nil {
		cfg.Layout = DefaultLayout(channels)
	}

	if len(cfg.Layout) != channels {
		return nil, fmt.Errorf("%w: %d roles for %d channels", ErrInvalidLayout, len(cfg.Layout), channels)
	}

	for i, ch := range cfg.Layout {
		if !ch.valid() {
			return nil, fmt.Errorf("%w: channel %d has unknown role %d", ErrInvalidLayout, i, int(ch))
		}
	}

	peaks, err := newPeakDetector(channels, cfg.Oversampling, cfg.TruePeakQuality)
	if err != nil {
		return nil, err
	}

	m := &Meter{
		sampleRate: sampleRate,
		channels:   channels,
		cfg:        cfg,
		filters:    newKWeighting(sampleRate, channels),
		acc:        newAccumulator(sampleRate, cfg.Layout),
		peaks:      peaks,
		planes:     make([][]float64, channels),
	}

	for c := range m.planes {
		m.planes[c] = make([]float64, cfg.BlockSize)
	}

	return m, nil
}

// Reset returns the meter to its freshly constructed state, keeping its
// configuration. A finalized meter accepts input again after Reset.
func (m *Meter) Reset() {
	m.filters.reset()
	m.acc = newAccumulator(m.sampleRate, m.cfg.Layout)
	m.peaks.reset()
	m.frames = 0
	m.finalized = false
}

// SampleRate returns the sample rate in Hz.
func (m *Meter) SampleRate() float64 {
	return m.sampleRate
}

// Channels returns the channel count.
func (m *Meter) Channels() int {
	return m.channels
}

// Layout returns a copy of the channel roles.
func (m *Meter) Layout() []Channel {
	return append([]Channel(nil), m.cfg.Layout...)
}

// Frames returns the number of frames ingested so far.
func (m *Meter) Frames() int64 {
	return m.frames
}

// Duration returns the ingested stream length.
func (m *Meter) Duration() time.Duration {
	return seconds(float64(m.frames) / m.sampleRate)
}

// FilterState returns a snapshot of the K-weighting filter memory of
// channel ch, one entry per stage.
func (m *Meter) FilterState(ch int) []biquad.State {
	return m.filters.state(ch)
}

// Ingest feeds interleaved frames. len(samples) must be a multiple of the
// channel count.
func (m *Meter) Ingest(samples []float64) error {
	if m.finalized {
		return ErrFinalized
	}

	if len(samples)%m.channels != 0 {
		return fmt.Errorf("%w: %d samples do not form whole %d-channel frames",
			ErrInvalidBuffer, len(samples), m.channels)
	}

	m.ingestInterleaved(samples)

	return nil
}

// IngestPlanar feeds one slice per channel. All planes must have the same
// length. The planes are not modified.
func (m *Meter) IngestPlanar(planes [][]float64) error {
	if m.finalized {
		return ErrFinalized
	}

	if len(planes) != m.channels {
		return fmt.Errorf("%w: %d planes for %d channels", ErrInvalidBuffer, len(planes), m.channels)
	}

	n := len(planes[0])
	for c, p := range planes {
		if len(p) != n {
			return fmt.Errorf("%w: plane %d has %d frames, want %d", ErrInvalidBuffer, c, len(p), n)
		}
	}

	bs := m.cfg.BlockSize
	for start := 0; start < n; start += bs {
		end := min(start+bs, n)
		for c, p := range planes {
			m.planes[c] = m.planes[c][:end-start]
			copy(m.planes[c], p[start:end])
		}

		m.processChunk(end - start)
	}

	return nil
}

func (m *Meter) ingestInterleaved(samples []float64) {
	step := m.cfg.BlockSize * m.channels
	for start := 0; start < len(samples); start += step {
		end := min(start+step, len(samples))
		frames := (end - start) / m.channels

		for c := range m.planes {
			m.planes[c] = m.planes[c][:frames]
		}

		core.Deinterleave(m.planes, samples[start:end])
		m.processChunk(frames)
	}
}

// processChunk runs the chunk held in m.planes through the peak detector,
// the K-weighting filters and the accumulator.
func (m *Meter) processChunk(frames int) {
	if frames == 0 {
		return
	}

	for c, p := range m.planes {
		m.peaks.process(c, p)
		m.filters.processBlock(c, p)
	}

	m.acc.add(m.planes)
	m.frames += int64(frames)
}

// Integrated returns the gated integrated loudness in LUFS. ok is false
// when no 400 ms block reaches the absolute gate, for instance for silence
// or streams shorter than 400 ms.
func (m *Meter) Integrated() (lufs float64, ok bool) {
	m.finalized = true

	return integratedLoudness(m.acc.momentary)
}

// LoudnessRange returns the EBU Tech 3342 loudness range in LU, computed
// from the complete 3 s short-term windows. ok is false with fewer than two
// gated windows.
func (m *Meter) LoudnessRange() (lu float64, ok bool) {
	m.finalized = true

	return loudnessRange(m.acc.fullShortTerm())
}

// ShortTerm returns the 3 s short-term loudness series, one entry per
// 100 ms hop, keyed by the stream time at the end of the window. Windows
// that begin before the stream are zero-padded.
func (m *Meter) ShortTerm() iter.Seq2[time.Duration, float64] {
	m.finalized = true

	return m.sequence(m.acc.shortTerm, 0)
}

// Momentary returns the 400 ms momentary loudness series, one entry per
// 100 ms hop from 400 ms on, keyed by the stream time at the end of the
// block.
func (m *Meter) Momentary() iter.Seq2[time.Duration, float64] {
	m.finalized = true

	return m.sequence(m.acc.momentary, momentaryHops-1)
}

func (m *Meter) sequence(energies []float64, firstHop int) iter.Seq2[time.Duration, float64] {
	gate := m.cfg.SequenceGate

	return func(yield func(time.Duration, float64) bool) {
		for i, z := range energies {
			l := energyToLoudness(z)
			if gate == GateAbsolute && belowGate(l, absoluteGate) {
				continue
			}

			if !yield(seconds(m.acc.hopEnd(firstHop+i, m.sampleRate)), l) {
				return
			}
		}
	}
}

// TruePeaks returns the per-channel true peak in dBTP. A channel that has
// only seen zeros reports -Inf.
func (m *Meter) TruePeaks() []float64 {
	m.finalized = true

	return peaksToDB(m.peaks.truePeak)
}

// SamplePeaks returns the per-channel sample peak in dBFS.
func (m *Meter) SamplePeaks() []float64 {
	m.finalized = true

	return peaksToDB(m.peaks.samplePeak)
}

func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}
