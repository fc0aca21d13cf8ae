package signal_test

import (
	"fmt"
	"math"
	"time"

	"github.com/cwbudde/algo-loudness/dsp/core"
	"github.com/cwbudde/algo-loudness/dsp/signal"
)

func ExampleGenerator_Sine() {
	g := signal.NewGenerator(core.WithSampleRate(1000))
	x, err := g.Sine(250, 1, 5)
	if err != nil {
		panic(err)
	}
	for i := range x {
		if math.Abs(x[i]) < 1e-12 {
			x[i] = 0
		}
	}

	fmt.Printf("%.0f %.0f %.0f %.0f %.0f\n", x[0], x[1], x[2], x[3], x[4])

	// Output:
	// 0 1 0 -1 0
}

func ExampleGenerator_Tones() {
	// EBU Tech 3341 case 3 layout: -36, -23, -36 dBFS at 1 kHz.
	g := signal.NewGenerator(core.WithSampleRate(48000))
	x, err := g.Tones(
		signal.Segment{Freq: 1000, LevelDB: -36, Duration: 10 * time.Second},
		signal.Segment{Freq: 1000, LevelDB: -23, Duration: 60 * time.Second},
		signal.Segment{Freq: 1000, LevelDB: -36, Duration: 10 * time.Second},
	)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%d samples, %.0f s\n", len(x), float64(len(x))/48000)

	// Output:
	// 3840000 samples, 80 s
}

func ExampleNormalize() {
	x, err := signal.Normalize([]float64{-0.5, 0.25, 1}, 0.8)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.2f %.2f %.2f\n", x[0], x[1], x[2])

	// Output:
	// -0.40 0.20 0.80
}
