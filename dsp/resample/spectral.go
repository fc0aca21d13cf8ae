package resample

import (
	"fmt"

	algofft "github.com/cwbudde/algo-fft"
)

// SpectralUpsample interpolates x by factor by zero-padding its spectrum.
// The signal is zero-extended to a power-of-two length and treated as one
// period, so samples near both ends see wrap-around. factor must be a power
// of two.
func SpectralUpsample(x []float64, factor int) ([]float64, error) {
	if factor < 1 || factor&(factor-1) != 0 {
		return nil, fmt.Errorf("%w: %d is not a power of two", ErrInvalidFactor, factor)
	}

	if len(x) == 0 {
		return nil, nil
	}

	if factor == 1 {
		return append([]float64(nil), x...), nil
	}

	n := nextPowerOfTwo(max(len(x), minSpectralSize))
	m := n * factor

	fwd, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("resample: failed to create FFT plan: %w", err)
	}

	inv, err := algofft.NewPlan64(m)
	if err != nil {
		return nil, fmt.Errorf("resample: failed to create FFT plan: %w", err)
	}

	timeIn := make([]complex128, n)
	for i, v := range x {
		timeIn[i] = complex(v, 0)
	}

	spec := make([]complex128, n)
	if err := fwd.Forward(spec, timeIn); err != nil {
		return nil, fmt.Errorf("resample: forward FFT failed: %w", err)
	}

	half := n / 2
	padded := make([]complex128, m)
	copy(padded[:half], spec[:half])
	copy(padded[m-half+1:], spec[half+1:])

	// Split the Nyquist bin between both halves to keep the result real.
	padded[half] = spec[half] / 2
	padded[m-half] = spec[half] / 2

	timeOut := make([]complex128, m)
	if err := inv.Inverse(timeOut, padded); err != nil {
		return nil, fmt.Errorf("resample: inverse FFT failed: %w", err)
	}

	out := make([]float64, len(x)*factor)
	for i := range out {
		out[i] = real(timeOut[i]) * float64(factor)
	}

	return out, nil
}

const minSpectralSize = 16

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p *= 2
	}

	return p
}
