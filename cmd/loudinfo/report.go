package main

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-loudness/dsp/core"
	"github.com/cwbudde/algo-loudness/dsp/resample"
	"github.com/cwbudde/algo-loudness/measure/loudness"
)

const referenceFactor = 4

type report struct {
	source     string
	duration   time.Duration
	sampleRate float64
	layout     []loudness.Channel

	integrated, lra     float64
	integratedOK, lraOK bool
	maxMomentary        float64
	maxShortTerm        float64
	samplePeaks         []float64
	truePeaks           []float64
	referencePeaks      []float64 // nil unless requested
}

func run(opts options, w io.Writer) error {
	gate, ok := loudness.ParseGateMode(opts.gate)
	if !ok {
		return fmt.Errorf("unknown gate %q (want absolute or none)", opts.gate)
	}

	meterOpts := []loudness.MeterOption{loudness.WithSequenceGate(gate)}

	var (
		m      *loudness.Meter
		planes [][]float64
		source string
		err    error
	)

	if opts.in != "" {
		m, planes, err = meterWAV(opts.in, opts.reference, meterOpts...)
		if err != nil {
			return err
		}

		source = opts.in
	} else {
		planes, err = synthesize(opts)
		if err != nil {
			return err
		}

		if opts.out != "" {
			if err := writeWAV(opts.out, planes, opts.rate); err != nil {
				return err
			}
		}

		m, err = loudness.NewMeter(opts.rate, len(planes), meterOpts...)
		if err != nil {
			return err
		}

		if err := m.IngestPlanar(planes); err != nil {
			return err
		}

		source = describeSignal(opts)
	}

	r, err := measure(m, source, planes, opts.reference)
	if err != nil {
		return err
	}

	return r.print(w)
}

func describeSignal(opts options) string {
	switch opts.signal {
	case "sine":
		return fmt.Sprintf("sine %g Hz @ %g dBFS", opts.freq, opts.level)
	case "noise":
		return fmt.Sprintf("noise @ %g dBFS", opts.level)
	default:
		return opts.signal
	}
}

func measure(m *loudness.Meter, source string, planes [][]float64, reference bool) (report, error) {
	r := report{
		source:       source,
		duration:     m.Duration(),
		sampleRate:   m.SampleRate(),
		layout:       m.Layout(),
		maxMomentary: math.Inf(-1),
		maxShortTerm: math.Inf(-1),
	}

	r.integrated, r.integratedOK = m.Integrated()
	r.lra, r.lraOK = m.LoudnessRange()

	for _, l := range m.Momentary() {
		r.maxMomentary = max(r.maxMomentary, l)
	}

	for _, l := range m.ShortTerm() {
		r.maxShortTerm = max(r.maxShortTerm, l)
	}

	r.samplePeaks = m.SamplePeaks()
	r.truePeaks = m.TruePeaks()

	if reference {
		r.referencePeaks = make([]float64, len(planes))
		for c, p := range planes {
			peak, err := referencePeak(p)
			if err != nil {
				return r, fmt.Errorf("reference peak channel %d: %w", c, err)
			}

			r.referencePeaks[c] = peak
		}
	}

	return r, nil
}

// referencePeak returns the true peak in dBTP estimated by FFT
// interpolation of the whole channel.
func referencePeak(x []float64) (float64, error) {
	up, err := resample.SpectralUpsample(x, referenceFactor)
	if err != nil {
		return 0, err
	}

	peak := 0.0
	for _, v := range up {
		peak = max(peak, math.Abs(v))
	}

	for _, v := range x {
		peak = max(peak, math.Abs(v))
	}

	return core.LinearToDB(peak), nil
}

func formatLevel(v float64, ok bool, unit string) string {
	if !ok || math.IsInf(v, -1) {
		return "n/a"
	}

	return fmt.Sprintf("%.1f %s", v, unit)
}

func formatPeak(v float64) string {
	if math.IsInf(v, -1) {
		return "-inf"
	}

	return fmt.Sprintf("%.2f", v)
}

func (r report) print(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	rows := [][2]string{
		{"Source", r.source},
		{"Format", fmt.Sprintf("%d ch, %g Hz, %v", len(r.layout), r.sampleRate, r.duration)},
		{"Integrated", formatLevel(r.integrated, r.integratedOK, "LUFS")},
		{"Loudness range", formatLevel(r.lra, r.lraOK, "LU")},
		{"Max momentary", formatLevel(r.maxMomentary, true, "LUFS")},
		{"Max short-term", formatLevel(r.maxShortTerm, true, "LUFS")},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1]); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}

	header := "\nChannel\tRole\tSample peak [dBFS]\tTrue peak [dBTP]"
	rule := "-------\t----\t------------------\t----------------"

	if r.referencePeaks != nil {
		header += "\tReference [dBTP]"
		rule += "\t----------------"
	}

	if _, err := fmt.Fprintf(tw, "%s\n%s\n", header, rule); err != nil {
		return fmt.Errorf("failed to write peak header: %w", err)
	}

	for c := range r.truePeaks {
		line := fmt.Sprintf("%d\t%s\t%s\t%s", c+1, r.layout[c], formatPeak(r.samplePeaks[c]), formatPeak(r.truePeaks[c]))
		if r.referencePeaks != nil {
			line += "\t" + formatPeak(r.referencePeaks[c])
		}

		if _, err := fmt.Fprintln(tw, line); err != nil {
			return fmt.Errorf("failed to write peak row: %w", err)
		}
	}

	return tw.Flush()
}
