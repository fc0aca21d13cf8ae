package resample

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-loudness/dsp/window"
)

// designPolyphaseFIR builds the interpolation prototype for factor up and
// splits it so that phases[p][k] = h[p + k*up].
func designPolyphaseFIR(up int, cfg config) ([]float64, [][]float64, error) {
	if up <= 0 {
		return nil, nil, ErrInvalidFactor
	}

	if cfg.tapsPerPhase <= 0 {
		return nil, nil, errors.New("resample: taps per phase must be > 0")
	}

	if cfg.cutoffScale <= 0 || cfg.cutoffScale > 1 {
		return nil, nil, errors.New("resample: cutoff scale must be in (0,1]")
	}

	nTaps := cfg.tapsPerPhase * up

	fc := (0.5 / float64(up)) * cfg.cutoffScale
	if fc <= 0 || fc > 0.5 {
		return nil, nil, fmt.Errorf("resample: invalid cutoff %.6f", fc)
	}

	taps := make([]float64, nTaps)

	center := 0.5 * float64(nTaps-1)
	for n := range nTaps {
		t := float64(n) - center
		taps[n] = 2 * fc * sinc(2*fc*t)
	}

	win, err := window.Kaiser(nTaps, cfg.kaiserBeta)
	if err != nil {
		return nil, nil, fmt.Errorf("resample: %w", err)
	}

	if err := window.ApplyCoefficientsInPlace(taps, win); err != nil {
		return nil, nil, fmt.Errorf("resample: %w", err)
	}

	var sum float64
	for _, v := range taps {
		sum += v
	}

	if sum == 0 {
		return nil, nil, errors.New("resample: designed zero-sum filter")
	}

	scale := float64(up) / sum
	for i := range taps {
		taps[i] *= scale
	}

	phases := make([][]float64, up)
	for p := range up {
		phase := make([]float64, cfg.tapsPerPhase)
		for k := range phase {
			phase[k] = taps[p+k*up]
		}

		phases[p] = phase
	}

	return taps, phases, nil
}

func sinc(x float64) float64 {
	if math.Abs(x) < 1e-12 {
		return 1
	}

	pix := math.Pi * x

	return math.Sin(pix) / pix
}
