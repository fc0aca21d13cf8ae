package loudness

import (
	"github.com/cwbudde/algo-loudness/dsp/filter/biquad"
	"github.com/cwbudde/algo-loudness/dsp/filter/weighting"
)

// kWeighting holds one two-stage K-weighting cascade per channel.
type kWeighting struct {
	chains []*biquad.Chain
}

func newKWeighting(sampleRate float64, channels int) *kWeighting {
	coeffs := weighting.K(sampleRate)

	k := &kWeighting{chains: make([]*biquad.Chain, channels)}
	for i := range k.chains {
		k.chains[i] = biquad.NewChain(coeffs[:])
	}

	return k
}

// processBlock filters buf in place with the filter of channel ch.
func (k *kWeighting) processBlock(ch int, buf []float64) {
	k.chains[ch].ProcessBlock(buf)
}

// state returns a snapshot of the filter memory of channel ch.
func (k *kWeighting) state(ch int) []biquad.State {
	return k.chains[ch].State()
}

func (k *kWeighting) reset() {
	for _, c := range k.chains {
		c.Reset()
	}
}
