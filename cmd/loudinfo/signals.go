package main

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/cwbudde/algo-loudness/dsp/core"
	"github.com/cwbudde/algo-loudness/dsp/signal"
)

type signalEntry struct {
	name  string
	about string
	build func(g *signal.Generator, opts options) ([]float64, error)
}

func tone(level float64, d time.Duration) signal.Segment {
	return signal.Segment{Freq: 1000, LevelDB: level, Duration: d}
}

var registry = []signalEntry{
	{"sine", "sine at -freq and -level for -duration", func(g *signal.Generator, o options) ([]float64, error) {
		return g.SineDBFS(o.freq, o.level, g.Samples(o.duration))
	}},
	{"noise", "white noise peaking at -level for -duration", func(g *signal.Generator, o options) ([]float64, error) {
		return g.WhiteNoise(core.DBToLinear(o.level), g.Samples(o.duration))
	}},
	{"silence", "digital silence for -duration", func(g *signal.Generator, o options) ([]float64, error) {
		return g.Silence(g.Samples(o.duration))
	}},
	{"ebu3341-1", "1 kHz at -23 dBFS for 20 s (expect -23.0 LUFS)", func(g *signal.Generator, _ options) ([]float64, error) {
		return g.Tones(tone(-23, 20*time.Second))
	}},
	{"ebu3341-2", "1 kHz at -33 dBFS for 20 s (expect -33.0 LUFS)", func(g *signal.Generator, _ options) ([]float64, error) {
		return g.Tones(tone(-33, 20*time.Second))
	}},
	{"ebu3341-3", "1 kHz at -36/-23/-36 dBFS for 10/60/10 s (expect -23.0 LUFS)", func(g *signal.Generator, _ options) ([]float64, error) {
		return g.Tones(tone(-36, 10*time.Second), tone(-23, 60*time.Second), tone(-36, 10*time.Second))
	}},
	{"ebu3341-4", "1 kHz at -72/-36/-23/-36/-72 dBFS (expect -23.0 LUFS)", func(g *signal.Generator, _ options) ([]float64, error) {
		return g.Tones(
			tone(-72, 10*time.Second), tone(-36, 10*time.Second), tone(-23, 60*time.Second),
			tone(-36, 10*time.Second), tone(-72, 10*time.Second),
		)
	}},
	{"ebu3342-1", "1 kHz at -20 then -30 dBFS, 20 s each (expect 10 LU range)", func(g *signal.Generator, _ options) ([]float64, error) {
		return g.Tones(tone(-20, 20*time.Second), tone(-30, 20*time.Second))
	}},
	{"ebu3342-2", "1 kHz at -20 then -15 dBFS, 20 s each (expect 5 LU range)", func(g *signal.Generator, _ options) ([]float64, error) {
		return g.Tones(tone(-20, 20*time.Second), tone(-15, 20*time.Second))
	}},
}

func printList(w io.Writer) {
	entries := append([]signalEntry(nil), registry...)
	sort.Slice(entries, func(i, j int) bool { return entries[i].name < entries[j].name })

	for _, e := range entries {
		fmt.Fprintf(w, "%-10s  %s\n", e.name, e.about)
	}
}

func lookupSignal(name string) (signalEntry, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, e := range registry {
		if e.name == name {
			return e, true
		}
	}

	return signalEntry{}, false
}

// synthesize builds the selected signal and returns one plane per channel.
func synthesize(opts options) ([][]float64, error) {
	e, ok := lookupSignal(opts.signal)
	if !ok {
		return nil, fmt.Errorf("unknown signal %q (use -list to see available)", opts.signal)
	}

	if opts.channels < 1 {
		return nil, fmt.Errorf("channels must be >= 1: %d", opts.channels)
	}

	if !(opts.rate > 0) || math.IsInf(opts.rate, 0) {
		return nil, fmt.Errorf("sample rate must be > 0: %v", opts.rate)
	}

	g := signal.NewGenerator(core.WithSampleRate(opts.rate))

	mono, err := e.build(g, opts)
	if err != nil {
		return nil, fmt.Errorf("signal %s: %w", e.name, err)
	}

	planes := make([][]float64, opts.channels)
	for c := range planes {
		planes[c] = mono
	}

	return planes, nil
}
