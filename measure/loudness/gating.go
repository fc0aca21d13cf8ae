package loudness

import (
	"math"
	"slices"
)

const (
	absoluteGate    = -70.0 // LKFS
	relativeGate    = -10.0 // LU below the absolute-gated mean
	rangeRelGate    = -20.0 // LU below the absolute-gated mean
	rangeLowerPerc  = 0.10
	rangeUpperPerc  = 0.95
	minRangeWindows = 2
)

// belowGate reports whether a block at loudness l is removed by a gate at
// threshold. NaN is never removed.
func belowGate(l, threshold float64) bool {
	return l < threshold
}

// absoluteGated returns the energies whose loudness reaches the absolute
// gate, together with their energy-domain mean.
func absoluteGated(energies []float64) ([]float64, float64) {
	kept := make([]float64, 0, len(energies))
	sum := 0.0

	for _, z := range energies {
		if belowGate(energyToLoudness(z), absoluteGate) {
			continue
		}

		kept = append(kept, z)
		sum += z
	}

	if len(kept) == 0 {
		return nil, 0
	}

	return kept, sum / float64(len(kept))
}

// integratedLoudness applies the two-stage BS.1770 gate to the 400 ms block
// energies. ok is false when no block passes the absolute gate.
func integratedLoudness(energies []float64) (float64, bool) {
	kept, mean := absoluteGated(energies)
	if len(kept) == 0 {
		return 0, false
	}

	threshold := energyToLoudness(mean) + relativeGate
	sum := 0.0
	count := 0

	for _, z := range kept {
		if belowGate(energyToLoudness(z), threshold) {
			continue
		}

		sum += z
		count++
	}

	// The mean always passes its own relative gate, so count > 0 for
	// finite input.
	if count == 0 {
		return 0, false
	}

	return energyToLoudness(sum / float64(count)), true
}

// loudnessRange computes the EBU Tech 3342 loudness range from short-term
// window energies: absolute gate at -70 LKFS, relative gate 20 LU below the
// absolute-gated mean, then the spread between the 10th and 95th
// percentile. ok is false with fewer than two gated windows.
func loudnessRange(energies []float64) (float64, bool) {
	kept, mean := absoluteGated(energies)
	if len(kept) < minRangeWindows {
		return 0, false
	}

	threshold := energyToLoudness(mean) + rangeRelGate
	levels := make([]float64, 0, len(kept))

	for _, z := range kept {
		l := energyToLoudness(z)
		if belowGate(l, threshold) {
			continue
		}

		levels = append(levels, l)
	}

	if len(levels) < minRangeWindows {
		return 0, false
	}

	for _, l := range levels {
		if math.IsNaN(l) {
			return math.NaN(), true
		}
	}

	slices.Sort(levels)

	last := float64(len(levels) - 1)
	lo := levels[int(math.Round(last*rangeLowerPerc))]
	hi := levels[int(math.Round(last*rangeUpperPerc))]

	return hi - lo, true
}
