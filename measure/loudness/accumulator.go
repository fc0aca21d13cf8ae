package loudness

import (
	"math"

	"github.com/cwbudde/algo-loudness/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

const (
	hopDuration    = 0.1
	momentaryHops  = 4
	shortTermHops  = 30
	minHopSamples  = 1
	loudnessOffset = -0.691
)

// accumulator turns K-weighted samples into per-hop channel energies and
// derives the momentary block and short-term window series from them.
//
// Only the sums of the last shortTermHops hops are kept per channel.
// Samples are summed one at a time in arrival order so the series do not
// depend on how the input was chunked.
type accumulator struct {
	hop     int
	weights []float64

	partial []float64   // running sum of squares of the open hop
	fill    int         // samples in the open hop
	ring    [][]float64 // closed hop sums per channel
	ringPos int
	hops    int // closed hops

	squares []float64

	momentary []float64 // 400 ms block energies, one per hop from the 4th
	shortTerm []float64 // 3 s window energies, one per hop
}

func hopSize(sampleRate float64) int {
	return max(int(math.Round(hopDuration*sampleRate)), minHopSamples)
}

func newAccumulator(sampleRate float64, layout []Channel) *accumulator {
	a := &accumulator{
		hop:     hopSize(sampleRate),
		weights: make([]float64, len(layout)),
		partial: make([]float64, len(layout)),
		ring:    make([][]float64, len(layout)),
	}

	for c, ch := range layout {
		a.weights[c] = ch.Weight()
		a.ring[c] = make([]float64, shortTermHops)
	}

	return a
}

// add accumulates one chunk of K-weighted planes. All planes have the same
// length.
func (a *accumulator) add(planes [][]float64) {
	if len(planes) == 0 {
		return
	}

	n := len(planes[0])

	for start := 0; start < n; {
		take := min(n-start, a.hop-a.fill)
		a.squares = core.EnsureLen(a.squares, take)
		sq := a.squares[:take]

		for c, plane := range planes {
			seg := plane[start : start+take]
			vecmath.MulBlock(sq, seg, seg)

			sum := a.partial[c]
			for _, v := range sq {
				sum += v
			}

			a.partial[c] = sum
		}

		a.fill += take
		start += take

		if a.fill == a.hop {
			a.closeHop()
		}
	}
}

func (a *accumulator) closeHop() {
	for c := range a.partial {
		a.ring[c][a.ringPos] = a.partial[c]
		a.partial[c] = 0
	}

	a.ringPos = (a.ringPos + 1) % shortTermHops
	a.fill = 0
	a.hops++

	if a.hops >= momentaryHops {
		a.momentary = append(a.momentary, a.windowEnergy(momentaryHops))
	}

	a.shortTerm = append(a.shortTerm, a.windowEnergy(shortTermHops))
}

// windowEnergy returns the weighted channel energy of the last k hops.
// Hops before the start of the stream count as silence.
func (a *accumulator) windowEnergy(k int) float64 {
	avail := min(k, a.hops)
	length := float64(k * a.hop)
	z := 0.0

	for c, w := range a.weights {
		if w == 0 {
			continue
		}

		sum := 0.0
		for i := avail - 1; i >= 0; i-- {
			sum += a.ring[c][(a.ringPos-1-i+shortTermHops)%shortTermHops]
		}

		z += w * (sum / length)
	}

	return z
}

// fullShortTerm returns the short-term energies whose window lies entirely
// inside the stream.
func (a *accumulator) fullShortTerm() []float64 {
	if len(a.shortTerm) < shortTermHops {
		return nil
	}

	return a.shortTerm[shortTermHops-1:]
}

// hopEnd returns the stream time at the end of hop i (zero based).
func (a *accumulator) hopEnd(i int, sampleRate float64) float64 {
	return float64((i+1)*a.hop) / sampleRate
}

// energyToLoudness converts a weighted block energy to LKFS. Zero energy
// maps to -Inf.
func energyToLoudness(z float64) float64 {
	return loudnessOffset + 10*math.Log10(z)
}
