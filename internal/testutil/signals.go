package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// SineDBFS generates a sine wave whose peak sits at levelDB dBFS.
func SineDBFS(freqHz, sampleRate, levelDB float64, length int) []float64 {
	return DeterministicSine(freqHz, sampleRate, math.Pow(10, levelDB/20), length)
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Concat joins signals end to end.
func Concat(parts ...[]float64) []float64 {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]float64, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// Interleave merges equal-length channel signals into frames.
// Shorter channels are zero-extended to the longest one.
func Interleave(channels ...[]float64) []float64 {
	frames := 0
	for _, c := range channels {
		frames = max(frames, len(c))
	}
	out := make([]float64, frames*len(channels))
	for ch, c := range channels {
		for i, v := range c {
			out[i*len(channels)+ch] = v
		}
	}
	return out
}

// SplitFrames cuts interleaved data into chunks whose frame counts cycle
// through sizes. The last chunk holds whatever remains.
func SplitFrames(data []float64, channels int, sizes ...int) [][]float64 {
	var out [][]float64
	if len(sizes) == 0 {
		return [][]float64{data}
	}
	for i, pos := 0, 0; pos < len(data); i++ {
		n := sizes[i%len(sizes)] * channels
		end := min(pos+n, len(data))
		out = append(out, data[pos:end])
		pos = end
	}
	return out
}
