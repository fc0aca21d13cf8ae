package weighting

import (
	"math"

	"github.com/cwbudde/algo-loudness/dsp/filter/biquad"
)

// BS.1770 K-weighting analog prototype parameters.
const (
	shelfFreq = 1681.974450955533 // pre-filter shelf centre (Hz)
	shelfGain = 3.999843853973347 // pre-filter high-frequency gain (dB)
	shelfQ    = 0.7071752369554196
	// shelfBandExp relates the band gain Vb to the high-frequency gain Vh.
	shelfBandExp = 0.4996667741545416

	highpassFreq = 38.13547087602444 // RLB high-pass corner (Hz)
	highpassQ    = 0.5003270373238773
)

// MinSampleRate is the exclusive lower bound on sample rates that can host
// the pre-filter shelf: the shelf centre must lie below Nyquist.
const MinSampleRate = 2 * shelfFreq

// Type identifies a frequency weighting curve.
type Type int

const (
	// TypeK is the BS.1770 K-weighting: a high-shelf pre-filter followed
	// by the revised low-frequency B-curve (RLB) high-pass.
	TypeK Type = iota

	// TypeZ applies no frequency weighting (unity gain at all frequencies).
	TypeZ
)

// String returns a human-readable name for the weighting type.
func (t Type) String() string {
	switch t {
	case TypeK:
		return "K"
	case TypeZ:
		return "Z"
	default:
		return "Unknown"
	}
}

// ValidSampleRate reports whether sampleRate is finite and above
// [MinSampleRate].
func ValidSampleRate(sampleRate float64) bool {
	return !math.IsNaN(sampleRate) && !math.IsInf(sampleRate, 0) && sampleRate > MinSampleRate
}

// New returns a [biquad.Chain] configured for the given weighting curve
// at the specified sample rate. K-weighting is not renormalized: it has
// its characteristic gain of about +0.69 dB at 1 kHz.
//
// Panics if the sample rate is not valid for the curve.
func New(t Type, sampleRate float64) *biquad.Chain {
	switch t {
	case TypeK:
		k := K(sampleRate)
		return biquad.NewChain(k[:])
	case TypeZ:
		if !(sampleRate > 0) {
			panic("weighting: sample rate must be positive")
		}

		return biquad.NewChain([]biquad.Coefficients{{B0: 1}})
	default:
		panic("weighting: unknown type")
	}
}

// K returns the two K-weighting stages for sampleRate, pre-filter first.
//
// Panics if sampleRate is not valid (see [ValidSampleRate]).
func K(sampleRate float64) [2]biquad.Coefficients {
	return [2]biquad.Coefficients{KPreFilter(sampleRate), KHighpass(sampleRate)}
}

// KPreFilter returns the stage 1 high-shelf that models the acoustic effect
// of the head.
//
// With Vh = 10^(G/20), Vb = Vh^0.49967 and K = tan(pi*f0/fs):
//
//	a0 = 1 + K/Q + K^2
//	B0 = (Vh + Vb*K/Q + K^2)/a0, B1 = 2*(K^2 - Vh)/a0, B2 = (Vh - Vb*K/Q + K^2)/a0
//	A1 = 2*(K^2 - 1)/a0,         A2 = (1 - K/Q + K^2)/a0
//
// Panics if sampleRate is not valid (see [ValidSampleRate]).
func KPreFilter(sampleRate float64) biquad.Coefficients {
	mustValidRate(sampleRate)

	k := math.Tan(math.Pi * shelfFreq / sampleRate)
	k2 := k * k
	vh := math.Pow(10, shelfGain/20)
	vb := math.Pow(vh, shelfBandExp)
	a0 := 1 + k/shelfQ + k2

	return biquad.Coefficients{
		B0: (vh + vb*k/shelfQ + k2) / a0,
		B1: 2 * (k2 - vh) / a0,
		B2: (vh - vb*k/shelfQ + k2) / a0,
		A1: 2 * (k2 - 1) / a0,
		A2: (1 - k/shelfQ + k2) / a0,
	}
}

// KHighpass returns the stage 2 RLB high-pass. The numerator is kept at
// 1, -2, 1 as in the published 48 kHz coefficients, so the passband gain
// sits slightly above unity.
//
// Panics if sampleRate is not valid (see [ValidSampleRate]).
func KHighpass(sampleRate float64) biquad.Coefficients {
	mustValidRate(sampleRate)

	k := math.Tan(math.Pi * highpassFreq / sampleRate)
	k2 := k * k
	d := 1 + k/highpassQ + k2

	return biquad.Coefficients{
		B0: 1,
		B1: -2,
		B2: 1,
		A1: 2 * (k2 - 1) / d,
		A2: (1 - k/highpassQ + k2) / d,
	}
}

func mustValidRate(sampleRate float64) {
	if !ValidSampleRate(sampleRate) {
		panic("weighting: sample rate must exceed twice the shelf frequency")
	}
}
