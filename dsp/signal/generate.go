// Package signal generates deterministic reference signals for metering:
// sine tones at a given dBFS level, white noise, silence and tone-burst
// sequences such as the EBU Tech 3341 test cases.
package signal

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-loudness/dsp/core"
)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{
		cfg:  core.ApplyProcessorOptions(opts...),
		seed: 1,
	}
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := NewGenerator(coreOpts...)
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// SetSeed changes the noise seed.
func (g *Generator) SetSeed(seed int64) {
	g.seed = seed
}

// Samples converts a duration to a sample count at the generator rate,
// rounded to the nearest sample.
func (g *Generator) Samples(d time.Duration) int {
	return int(math.Round(d.Seconds() * g.cfg.SampleRate))
}

// Sine generates a sine wave with the given peak amplitude.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	if freqHz < 0 || freqHz > g.cfg.SampleRate/2 {
		return nil, fmt.Errorf("sine frequency must be in [0, %g]: %f", g.cfg.SampleRate/2, freqHz)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = math.Sin(step * float64(i))
	}
	vecmath.ScaleBlockInPlace(out, amplitude)
	return out, nil
}

// SineDBFS generates a sine wave whose peak sits at levelDB dBFS.
func (g *Generator) SineDBFS(freqHz, levelDB float64, samples int) ([]float64, error) {
	return g.Sine(freqHz, core.DBToLinear(levelDB), samples)
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}
	vecmath.ScaleBlockInPlace(out, amplitude)
	return out, nil
}

// Silence returns samples zeros.
func (g *Generator) Silence(samples int) ([]float64, error) {
	if samples < 0 {
		return nil, fmt.Errorf("silence samples must be >= 0: %d", samples)
	}
	return make([]float64, samples), nil
}

// Segment is one tone burst of a sequence. A LevelDB of -Inf yields silence.
type Segment struct {
	Freq     float64
	LevelDB  float64
	Duration time.Duration
}

// Tones concatenates sine bursts. Every segment restarts at phase zero.
func (g *Generator) Tones(segments ...Segment) ([]float64, error) {
	var out []float64
	for i, s := range segments {
		n := g.Samples(s.Duration)
		if n <= 0 {
			return nil, fmt.Errorf("segment %d: duration %v is shorter than one sample", i, s.Duration)
		}
		if math.IsInf(s.LevelDB, -1) {
			out = append(out, make([]float64, n)...)
			continue
		}
		burst, err := g.SineDBFS(s.Freq, s.LevelDB, n)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		out = append(out, burst...)
	}
	return out, nil
}

// Gain scales data in place by gainDB decibels.
func Gain(data []float64, gainDB float64) {
	vecmath.ScaleBlockInPlace(data, core.DBToLinear(gainDB))
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	out := make([]float64, len(data))
	maxAbs := vecmath.MaxAbs(data)
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	vecmath.ScaleBlock(out, data, targetPeak/maxAbs)
	return out, nil
}

// Duplicate interleaves copies of mono into an n-channel frame sequence.
func Duplicate(mono []float64, channels int) []float64 {
	planes := make([][]float64, channels)
	for i := range planes {
		planes[i] = mono
	}
	return core.Interleave(nil, planes)
}
