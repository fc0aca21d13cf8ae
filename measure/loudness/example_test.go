package loudness_test

import (
	"fmt"
	"time"

	"github.com/cwbudde/algo-loudness/dsp/core"
	"github.com/cwbudde/algo-loudness/dsp/signal"
	"github.com/cwbudde/algo-loudness/measure/loudness"
)

func ExampleMeter() {
	// EBU Tech 3341 case 1: stereo 1 kHz at -23 dBFS for 20 s.
	g := signal.NewGenerator(core.WithSampleRate(48000))

	tone, err := g.Tones(signal.Segment{Freq: 1000, LevelDB: -23, Duration: 20 * time.Second})
	if err != nil {
		panic(err)
	}

	m, err := loudness.NewMeter(48000, 2)
	if err != nil {
		panic(err)
	}

	if err := m.Ingest(signal.Duplicate(tone, 2)); err != nil {
		panic(err)
	}

	integrated, _ := m.Integrated()
	lra, _ := m.LoudnessRange()
	peaks := m.TruePeaks()

	fmt.Printf("Integrated: %.1f LUFS\n", integrated)
	fmt.Printf("Range: %.1f LU\n", lra)
	fmt.Printf("True peak: %.1f / %.1f dBTP\n", peaks[0], peaks[1])

	// Output:
	// Integrated: -23.0 LUFS
	// Range: 0.0 LU
	// True peak: -23.0 / -23.0 dBTP
}

func ExampleMeter_ShortTerm() {
	g := signal.NewGenerator(core.WithSampleRate(48000))

	tone, err := g.SineDBFS(1000, -20, g.Samples(10*time.Second))
	if err != nil {
		panic(err)
	}

	m, err := loudness.NewMeter(48000, 1)
	if err != nil {
		panic(err)
	}

	if err := m.Ingest(tone); err != nil {
		panic(err)
	}

	// The first windows are padded with silence until 3 s have been seen.
	for at, lufs := range m.ShortTerm() {
		if at%time.Second == 0 && at <= 4*time.Second {
			fmt.Printf("%v: %.1f LUFS\n", at, lufs)
		}
	}

	// Output:
	// 1s: -27.8 LUFS
	// 2s: -24.8 LUFS
	// 3s: -23.0 LUFS
	// 4s: -23.0 LUFS
}
