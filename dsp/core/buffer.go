package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}

// Deinterleave splits frames of interleaved samples into one slice per
// channel. dst must hold len(dst) channels, each with room for
// len(src)/len(dst) frames. It returns the number of frames written.
func Deinterleave(dst [][]float64, src []float64) int {
	channels := len(dst)
	if channels == 0 {
		return 0
	}

	frames := len(src) / channels
	for ch, plane := range dst {
		plane = plane[:frames]
		for i := range plane {
			plane[i] = src[i*channels+ch]
		}
	}

	return frames
}

// Interleave merges per-channel slices of equal length into dst, frame by
// frame. It returns dst resized to hold all samples.
func Interleave(dst []float64, planes [][]float64) []float64 {
	if len(planes) == 0 {
		return dst[:0]
	}

	frames := len(planes[0])
	channels := len(planes)
	dst = EnsureLen(dst, frames*channels)

	for ch, plane := range planes {
		for i, v := range plane[:frames] {
			dst[i*channels+ch] = v
		}
	}

	return dst
}
