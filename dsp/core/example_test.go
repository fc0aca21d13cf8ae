package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-loudness/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(44100),
		core.WithBlockSize(256),
	)

	fmt.Printf("sampleRate=%.0f blockSize=%d\n", cfg.SampleRate, cfg.BlockSize)

	// Output:
	// sampleRate=44100 blockSize=256
}

func ExampleDeinterleave() {
	stereo := []float64{0.1, -0.1, 0.2, -0.2, 0.3, -0.3}
	planes := [][]float64{make([]float64, 3), make([]float64, 3)}

	frames := core.Deinterleave(planes, stereo)
	fmt.Println(frames, planes[0], planes[1])

	// Output:
	// 3 [0.1 0.2 0.3] [-0.1 -0.2 -0.3]
}

func ExampleLinearPowerToDB() {
	fmt.Printf("%.2f dB\n", core.LinearPowerToDB(0.5))
	fmt.Println(core.LinearPowerToDB(0))

	// Output:
	// -3.01 dB
	// -Inf
}
