// Package pdmwav writes PDM bitstreams as PCM WAV files so that the output of
// an ideal one-bit DAC can be inspected or auditioned with ordinary tools.
package pdmwav

import (
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-pdm/dsp/pdm"
)

const (
	defaultSampleRate = 48000
	defaultBitDepth   = 16
	pcmFormat         = 1
)

// Config holds WAV export parameters. Zero values select the defaults
// (48000 Hz, 16 bit).
type Config struct {
	SampleRate int
	BitDepth   int
}

func normalizeConfig(cfg Config) (Config, error) {
	if cfg.SampleRate == 0 {
		cfg.SampleRate = defaultSampleRate
	}
	if cfg.BitDepth == 0 {
		cfg.BitDepth = defaultBitDepth
	}

	if cfg.SampleRate < 0 {
		return cfg, fmt.Errorf("pdmwav: sample rate must be > 0: %d", cfg.SampleRate)
	}

	switch cfg.BitDepth {
	case 16, 24, 32:
	default:
		return cfg, fmt.Errorf("pdmwav: bit depth must be 16, 24 or 32: %d", cfg.BitDepth)
	}

	return cfg, nil
}

// FullScale returns the sample value written for a 1-bit at the given depth.
// A 0-bit is written as its negation.
func FullScale(bitDepth int) int {
	return 1<<(bitDepth-1) - 1
}

// Write encodes stream as a mono PCM WAV file, one sample per modulation bit.
func Write(w io.WriteSeeker, stream []byte, cfg Config) error {
	cfg, err := normalizeConfig(cfg)
	if err != nil {
		return err
	}

	peak := FullScale(cfg.BitDepth)
	bits := pdm.Unpack(stream)
	data := make([]int, len(bits))
	for i, b := range bits {
		if b == 1 {
			data[i] = peak
		} else {
			data[i] = -peak
		}
	}

	enc := wav.NewEncoder(w, cfg.SampleRate, cfg.BitDepth, 1, pcmFormat)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: cfg.SampleRate},
		Data:           data,
		SourceBitDepth: cfg.BitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("pdmwav: write samples: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("pdmwav: finalize header: %w", err)
	}

	return nil
}
