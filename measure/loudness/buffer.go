package loudness

import (
	"fmt"

	"github.com/go-audio/audio"
)

const (
	defaultIntBitDepth = 16
	maxIntBitDepth     = 32
)

// IngestBuffer feeds a decoded PCM buffer. Float64 and float32 buffers are
// taken as full-scale 1.0; integer buffers are scaled by their source bit
// depth (16 bit when unset, at most 32 bit). A buffer format, when present, must match the
// meter's channel count and sample rate.
func (m *Meter) IngestBuffer(buf audio.Buffer) error {
	if m.finalized {
		return ErrFinalized
	}

	if buf == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidBuffer)
	}

	if err := m.checkFormat(buf.PCMFormat()); err != nil {
		return err
	}

	switch b := buf.(type) {
	case *audio.FloatBuffer:
		return m.Ingest(b.Data)
	case *audio.Float32Buffer:
		return m.ingestConverted(len(b.Data), func(dst []float64, off int) {
			for i := range dst {
				dst[i] = float64(b.Data[off+i])
			}
		})
	case *audio.IntBuffer:
		depth := b.SourceBitDepth
		if depth <= 0 {
			depth = defaultIntBitDepth
		}

		if depth > maxIntBitDepth {
			return fmt.Errorf("%w: source bit depth %d exceeds %d", ErrInvalidBuffer, depth, maxIntBitDepth)
		}

		scale := 1 / float64(int64(1)<<(depth-1))

		return m.ingestConverted(len(b.Data), func(dst []float64, off int) {
			for i := range dst {
				dst[i] = float64(b.Data[off+i]) * scale
			}
		})
	default:
		fb := buf.AsFloatBuffer()
		if fb == nil {
			return fmt.Errorf("%w: unsupported buffer type %T", ErrInvalidBuffer, buf)
		}

		return m.Ingest(fb.Data)
	}
}

func (m *Meter) checkFormat(f *audio.Format) error {
	if f == nil {
		return nil
	}

	if f.NumChannels != 0 && f.NumChannels != m.channels {
		return fmt.Errorf("%w: buffer has %d channels, meter %d", ErrFormatMismatch, f.NumChannels, m.channels)
	}

	if f.SampleRate != 0 && float64(f.SampleRate) != m.sampleRate {
		return fmt.Errorf("%w: buffer at %d Hz, meter at %v Hz", ErrFormatMismatch, f.SampleRate, m.sampleRate)
	}

	return nil
}

// ingestConverted converts n interleaved samples chunk by chunk into float64
// scratch through fill and ingests them.
func (m *Meter) ingestConverted(n int, fill func(dst []float64, off int)) error {
	if n%m.channels != 0 {
		return fmt.Errorf("%w: %d samples do not form whole %d-channel frames",
			ErrInvalidBuffer, n, m.channels)
	}

	step := m.cfg.BlockSize * m.channels
	if len(m.convert) < step {
		m.convert = make([]float64, step)
	}

	for off := 0; off < n; off += step {
		chunk := m.convert[:min(step, n-off)]
		fill(chunk, off)
		m.ingestInterleaved(chunk)
	}

	return nil
}
