package resample

import (
	"errors"
	"math"
	"testing"
)

func TestSpectralUpsampleValidation(t *testing.T) {
	for _, factor := range []int{0, 3, 6, -2} {
		if _, err := SpectralUpsample([]float64{1, 2}, factor); !errors.Is(err, ErrInvalidFactor) {
			t.Fatalf("factor=%d: err = %v, want ErrInvalidFactor", factor, err)
		}
	}

	out, err := SpectralUpsample(nil, 4)
	if err != nil || out != nil {
		t.Fatalf("empty input: got %v, %v", out, err)
	}
}

func TestSpectralUpsampleFactorOne(t *testing.T) {
	in := []float64{1, -2, 3}

	out, err := SpectralUpsample(in, 1)
	if err != nil {
		t.Fatal(err)
	}

	out[0] = 42
	if in[0] != 1 {
		t.Fatal("factor 1 must return a copy")
	}
}

// Band-limited interpolation passes exactly through the original samples.
func TestSpectralUpsampleKeepsOriginalSamples(t *testing.T) {
	in := make([]float64, 100)

	seed := uint32(12345)
	for i := range in {
		seed = seed*1664525 + 1013904223
		in[i] = float64(seed)/float64(math.MaxUint32)*2 - 1
	}

	out, err := SpectralUpsample(in, 4)
	if err != nil {
		t.Fatal(err)
	}

	if len(out) != 400 {
		t.Fatalf("len(out) = %d, want 400", len(out))
	}

	for i, want := range in {
		if got := out[4*i]; math.Abs(got-want) > 1e-9 {
			t.Fatalf("out[%d] = %v, want %v", 4*i, got, want)
		}
	}
}

func TestSpectralUpsamplePeriodicSine(t *testing.T) {
	// Four whole cycles in 64 samples: the continuous sine is recovered.
	const n = 64

	in := make([]float64, n)
	for i := range in {
		in[i] = math.Sin(2*math.Pi*float64(i)/16 + 0.3)
	}

	out, err := SpectralUpsample(in, 4)
	if err != nil {
		t.Fatal(err)
	}

	for j, got := range out {
		want := math.Sin(2*math.Pi*float64(j)/64 + 0.3)
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("out[%d] = %v, want %v", j, got, want)
		}
	}
}
