package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/cwbudde/algo-loudness/measure/loudness"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	wavReadFrames = 4096
	wavOutDepth   = 24
	wavFormatPCM  = 1
	wavFormatIEEE = 3
)

// meterWAV streams a PCM WAV file through a new meter. When keep is set the
// decoded channels are also returned as planes for reference analysis.
func meterWAV(path string, keep bool, meterOpts ...loudness.MeterOption) (*loudness.Meter, [][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	d := wav.NewDecoder(f)
	if !d.IsValidFile() {
		return nil, nil, fmt.Errorf("%s: not a valid PCM WAV file", path)
	}

	if d.WavAudioFormat == wavFormatIEEE {
		return nil, nil, fmt.Errorf("%s: floating-point WAV is not supported", path)
	}

	channels := int(d.NumChans)
	depth := int(d.BitDepth)

	m, err := loudness.NewMeter(float64(d.SampleRate), channels, meterOpts...)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	var planes [][]float64
	if keep {
		planes = make([][]float64, channels)
	}

	buf := &audio.IntBuffer{Format: d.Format(), Data: make([]int, wavReadFrames*channels)}

	var pending []int
	for {
		n, err := d.PCMBuffer(buf)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: decode: %w", path, err)
		}

		if n == 0 {
			break
		}

		pending = append(pending, buf.Data[:n]...)
		whole := len(pending) - len(pending)%channels

		if depth == 8 {
			for i := range pending[:whole] {
				pending[i] -= 128
			}
		}

		chunk := &audio.IntBuffer{Format: buf.Format, Data: pending[:whole], SourceBitDepth: depth}
		if err := m.IngestBuffer(chunk); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", path, err)
		}

		if keep {
			appendPlanes(planes, pending[:whole], depth)
		}

		pending = append(pending[:0], pending[whole:]...)
	}

	return m, planes, nil
}

func appendPlanes(planes [][]float64, data []int, depth int) {
	scale := 1 / float64(int64(1)<<(depth-1))
	for i, v := range data {
		c := i % len(planes)
		planes[c] = append(planes[c], float64(v)*scale)
	}
}

// writeWAV writes planes as 24-bit PCM, clipping at full scale.
func writeWAV(path string, planes [][]float64, sampleRate float64) (err error) {
	if len(planes) == 0 {
		return errors.New("no channels to write")
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	channels := len(planes)
	frames := len(planes[0])
	full := float64(int64(1)<<(wavOutDepth-1)) - 1

	data := make([]int, frames*channels)
	for c, p := range planes {
		for i, v := range p {
			data[i*channels+c] = int(math.Round(math.Max(-1, math.Min(1, v)) * full))
		}
	}

	enc := wav.NewEncoder(f, int(sampleRate), wavOutDepth, channels, wavFormatPCM)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: int(sampleRate)},
		Data:           data,
		SourceBitDepth: wavOutDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("%s: encode: %w", path, err)
	}

	return enc.Close()
}
