package resample

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

var (
	// ErrInvalidFactor indicates an oversampling factor below 1.
	ErrInvalidFactor = errors.New("resample: invalid oversampling factor")
	// ErrShortBuffer indicates a destination too small for the output.
	ErrShortBuffer = errors.New("resample: destination buffer too short")
)

// Quality controls default interpolation filter settings.
type Quality int

const (
	// QualityFast prioritizes lower CPU usage.
	QualityFast Quality = iota
	// QualityBalanced is the default quality/performance trade-off.
	QualityBalanced
	// QualityBest prioritizes passband flatness and image rejection.
	QualityBest
)

// Profile exposes default filter parameters for each quality mode.
type Profile struct {
	TapsPerPhase int
	CutoffScale  float64
	KaiserBeta   float64
}

// QualityProfile returns the default profile used by quality mode q.
func QualityProfile(q Quality) Profile {
	switch q {
	case QualityFast:
		return Profile{TapsPerPhase: 8, CutoffScale: 0.90, KaiserBeta: 4}
	case QualityBest:
		return Profile{TapsPerPhase: 32, CutoffScale: 0.95, KaiserBeta: 8}
	default:
		return Profile{TapsPerPhase: 12, CutoffScale: 0.95, KaiserBeta: 5}
	}
}

type config struct {
	quality      Quality
	tapsPerPhase int
	cutoffScale  float64
	kaiserBeta   float64
}

// Option configures the oversampler.
type Option func(*config)

// WithQuality selects a predefined filter quality mode.
func WithQuality(q Quality) Option {
	return func(cfg *config) {
		cfg.quality = q
	}
}

// WithTapsPerPhase overrides taps per polyphase branch.
func WithTapsPerPhase(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.tapsPerPhase = n
		}
	}
}

// WithCutoffScale overrides normalized cutoff scaling in range (0, 1].
// 1.0 places the cutoff at the input Nyquist frequency.
func WithCutoffScale(v float64) Option {
	return func(cfg *config) {
		if v > 0 && v <= 1 {
			cfg.cutoffScale = v
		}
	}
}

// WithKaiserBeta overrides the Kaiser window beta parameter.
func WithKaiserBeta(beta float64) Option {
	return func(cfg *config) {
		if beta >= 0 {
			cfg.kaiserBeta = beta
		}
	}
}

func defaultConfig() config {
	return config{
		quality:    QualityBalanced,
		kaiserBeta: -1,
	}
}

func (c config) finalized() config {
	p := QualityProfile(c.quality)
	if c.tapsPerPhase <= 0 {
		c.tapsPerPhase = p.TapsPerPhase
	}

	if c.cutoffScale <= 0 || c.cutoffScale > 1 {
		c.cutoffScale = p.CutoffScale
	}

	if c.kaiserBeta < 0 {
		c.kaiserBeta = p.KaiserBeta
	}

	return c
}

// Oversampler interpolates a stream by an integer factor using a polyphase
// FIR. Each input sample produces exactly Factor output samples.
//
// Output sample n*L+p is the dot product of phase p with the most recent
// TapsPerPhase inputs, newest first. The delay line is primed with zeros.
type Oversampler struct {
	factor  int
	quality Quality

	taps   []float64
	phases [][]float64

	// history holds the delay line twice so that history[pos:pos+n] is
	// always a contiguous newest-first window.
	history []float64
	pos     int
}

// NewOversampler creates an oversampler for the given factor.
func NewOversampler(factor int, opts ...Option) (*Oversampler, error) {
	if factor < 1 {
		return nil, ErrInvalidFactor
	}

	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	cfg = cfg.finalized()

	taps, phases, err := designPolyphaseFIR(factor, cfg)
	if err != nil {
		return nil, err
	}

	return &Oversampler{
		factor:  factor,
		quality: cfg.quality,
		taps:    taps,
		phases:  phases,
		history: make([]float64, 2*cfg.tapsPerPhase),
	}, nil
}

// Reset clears the delay line.
func (o *Oversampler) Reset() {
	clear(o.history)
	o.pos = 0
}

// ProcessSample pushes one input sample and writes Factor interpolated
// samples to dst, which must hold at least Factor values.
func (o *Oversampler) ProcessSample(dst []float64, x float64) {
	n := len(o.phases[0])

	o.pos--
	if o.pos < 0 {
		o.pos = n - 1
	}

	o.history[o.pos] = x
	o.history[o.pos+n] = x

	recent := o.history[o.pos : o.pos+n]
	for p, phase := range o.phases {
		dst[p] = vecmath.DotProduct(phase, recent)
	}
}

// ProcessTo interpolates src into dst and returns the number of samples
// written, len(src)*Factor.
func (o *Oversampler) ProcessTo(dst, src []float64) (int, error) {
	need := len(src) * o.factor
	if len(dst) < need {
		return 0, ErrShortBuffer
	}

	for i, x := range src {
		o.ProcessSample(dst[i*o.factor:(i+1)*o.factor], x)
	}

	return need, nil
}

// Process interpolates src into a newly allocated slice.
func (o *Oversampler) Process(src []float64) []float64 {
	if len(src) == 0 {
		return nil
	}

	out := make([]float64, len(src)*o.factor)
	_, _ = o.ProcessTo(out, src)

	return out
}

// Peak pushes src through the oversampler using scratch for the output
// and returns the largest absolute interpolated value. scratch must hold
// len(src)*Factor values. NaN input yields NaN.
func (o *Oversampler) Peak(scratch, src []float64) (float64, error) {
	n, err := o.ProcessTo(scratch, src)
	if err != nil {
		return 0, err
	}

	out := scratch[:n]
	for _, v := range out {
		if math.IsNaN(v) {
			return v, nil
		}
	}

	return vecmath.MaxAbs(out), nil
}

// Factor returns the oversampling factor.
func (o *Oversampler) Factor() int {
	return o.factor
}

// Quality returns the configured quality mode.
func (o *Oversampler) Quality() Quality {
	return o.quality
}

// TapsPerPhase returns taps in each polyphase branch.
func (o *Oversampler) TapsPerPhase() int {
	return len(o.phases[0])
}

// Latency returns the group delay of the interpolation filter in output
// samples.
func (o *Oversampler) Latency() float64 {
	return 0.5 * float64(len(o.taps)-1)
}

// Prototype returns a copy of the underlying prototype FIR taps.
func (o *Oversampler) Prototype() []float64 {
	out := make([]float64, len(o.taps))
	copy(out, o.taps)

	return out
}
