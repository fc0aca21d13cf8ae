package loudness

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-loudness/dsp/core"
	"github.com/cwbudde/algo-loudness/dsp/resample"
)

// peakDetector tracks per-channel sample and interpolated peaks as linear
// magnitudes. Both only grow; NaN is sticky.
type peakDetector struct {
	oversamplers []*resample.Oversampler // nil when interpolation is off
	scratch      []float64
	samplePeak   []float64
	truePeak     []float64
}

func newPeakDetector(channels, factor int, quality resample.Quality) (*peakDetector, error) {
	d := &peakDetector{
		samplePeak: make([]float64, channels),
		truePeak:   make([]float64, channels),
	}

	if factor <= 1 {
		return d, nil
	}

	d.oversamplers = make([]*resample.Oversampler, channels)
	for i := range d.oversamplers {
		o, err := resample.NewOversampler(factor, resample.WithQuality(quality))
		if err != nil {
			return nil, fmt.Errorf("loudness: true-peak oversampler: %w", err)
		}

		d.oversamplers[i] = o
	}

	return d, nil
}

// process updates the peaks of channel ch with raw (unweighted) samples.
func (d *peakDetector) process(ch int, raw []float64) {
	if len(raw) == 0 {
		return
	}

	sp := d.samplePeak[ch]
	for _, v := range raw {
		sp = max(sp, math.Abs(v))
	}

	d.samplePeak[ch] = sp
	tp := max(d.truePeak[ch], sp)

	if d.oversamplers != nil {
		o := d.oversamplers[ch]
		d.scratch = core.EnsureLen(d.scratch, len(raw)*o.Factor())

		// scratch is sized for the chunk, so Peak cannot fail.
		p, _ := o.Peak(d.scratch, raw)
		tp = max(tp, p)
	}

	d.truePeak[ch] = tp
}

func (d *peakDetector) reset() {
	for _, o := range d.oversamplers {
		o.Reset()
	}

	clear(d.samplePeak)
	clear(d.truePeak)
}

func peaksToDB(peaks []float64) []float64 {
	out := make([]float64, len(peaks))
	for i, p := range peaks {
		out[i] = core.LinearToDB(p)
	}

	return out
}
