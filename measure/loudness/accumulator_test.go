package loudness

import (
	"math"
	"slices"
	"testing"

	"github.com/cwbudde/algo-loudness/internal/testutil"
)

func TestHopSize(t *testing.T) {
	for _, tt := range []struct {
		rate float64
		want int
	}{
		{48000, 4800},
		{44100, 4410},
		{96000, 9600},
		{22050, 2205},
		{8000, 800},
		{11025, 1103},
	} {
		if got := hopSize(tt.rate); got != tt.want {
			t.Errorf("hopSize(%v) = %d, want %d", tt.rate, got, tt.want)
		}
	}
}

func TestAccumulatorWindows(t *testing.T) {
	a := newAccumulator(1000, []Channel{ChannelLeft})
	a.add([][]float64{testutil.DC(1, 450)})

	if a.hops != 4 || a.fill != 50 {
		t.Fatalf("hops=%d fill=%d, want 4 and 50", a.hops, a.fill)
	}

	if len(a.momentary) != 1 {
		t.Fatalf("momentary blocks = %d, want 1", len(a.momentary))
	}

	testutil.RequireNearlyEqual(t, "momentary", a.momentary[0], 1, 1e-15)

	// Short-term windows are zero-padded to 3 s before the stream starts.
	if len(a.shortTerm) != 4 {
		t.Fatalf("short-term windows = %d, want 4", len(a.shortTerm))
	}

	for i, z := range a.shortTerm {
		testutil.RequireNearlyEqual(t, "short-term", z, float64(i+1)/30, 1e-15)
	}

	if got := a.fullShortTerm(); got != nil {
		t.Fatalf("fullShortTerm = %v, want none before 3 s", got)
	}
}

func TestAccumulatorFullShortTerm(t *testing.T) {
	a := newAccumulator(1000, []Channel{ChannelLeft})
	a.add([][]float64{testutil.DC(0.5, 3500)})

	full := a.fullShortTerm()
	if len(full) != 6 {
		t.Fatalf("full windows = %d, want 6", len(full))
	}

	for _, z := range full {
		testutil.RequireNearlyEqual(t, "short-term", z, 0.25, 1e-15)
	}

	testutil.RequireNearlyEqual(t, "window end", a.hopEnd(29, 1000), 3, 0)
}

func TestAccumulatorChannelWeights(t *testing.T) {
	layout := []Channel{ChannelLeft, ChannelLeftSurround, ChannelUnused, ChannelDualMono}
	a := newAccumulator(1000, layout)

	nan := testutil.DC(math.NaN(), 400)
	ones := testutil.DC(1, 400)
	a.add([][]float64{ones, ones, nan, ones})

	testutil.RequireNearlyEqual(t, "weighted energy", a.momentary[0], 1+1.41+2, 1e-12)
}

func TestAccumulatorChunkInvariance(t *testing.T) {
	const rate = 1000

	left := testutil.DeterministicNoise(1, 0.5, 5321)
	right := testutil.DeterministicNoise(2, 0.25, 5321)
	layout := []Channel{ChannelLeft, ChannelRight}

	whole := newAccumulator(rate, layout)
	whole.add([][]float64{left, right})

	split := newAccumulator(rate, layout)
	for start, i := 0, 0; start < len(left); i++ {
		end := min(start+[]int{1, 99, 100, 101, 37, 1000}[i%6], len(left))
		split.add([][]float64{left[start:end], right[start:end]})
		start = end
	}

	if !slices.Equal(whole.momentary, split.momentary) {
		t.Fatal("momentary series depends on chunking")
	}

	if !slices.Equal(whole.shortTerm, split.shortTerm) {
		t.Fatal("short-term series depends on chunking")
	}
}
