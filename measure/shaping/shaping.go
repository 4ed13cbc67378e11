// Package shaping measures how a PDM bitstream distributes its quantization
// noise over frequency.
//
// A first-order delta-sigma modulator pushes quantization noise towards high
// frequencies. Analyze splits the spectrum of the decoded one-bit levels at
// the band edge implied by an oversampling ratio and reports the signal power
// and the noise power on either side of it.
package shaping

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-pdm/dsp/pdm"
)

const (
	defaultOversamplingRatio = 64
	defaultCaptureBins       = 3
)

// Config holds analysis parameters. Zero values select the defaults.
type Config struct {
	// OversamplingRatio is the ratio of the PDM bit rate to twice the signal
	// bandwidth. Default 64.
	OversamplingRatio int
	// CaptureBins is the number of bins on each side of the strongest in-band
	// bin attributed to the signal. Default 3 (Hann main lobe plus margin).
	CaptureBins int
}

// Result holds noise-shaping measurement results. Powers are mean-square
// values normalized so that a sine of amplitude A contributes about A*A/2.
//
//nolint:revive
type Result struct {
	FFTSize        int
	BandEdgeBin    int
	SignalBin      int
	SignalPower    float64
	InBandNoise    float64
	OutOfBandNoise float64
	SNR_dB         float64
}

func normalizeConfig(cfg Config) (Config, error) {
	if cfg.OversamplingRatio == 0 {
		cfg.OversamplingRatio = defaultOversamplingRatio
	}
	if cfg.CaptureBins == 0 {
		cfg.CaptureBins = defaultCaptureBins
	}

	if cfg.OversamplingRatio < 1 {
		return cfg, fmt.Errorf("shaping: oversampling ratio must be >= 1: %d", cfg.OversamplingRatio)
	}
	if cfg.CaptureBins < 0 {
		return cfg, fmt.Errorf("shaping: capture bins must be >= 0: %d", cfg.CaptureBins)
	}

	return cfg, nil
}

// Analyze decodes stream to one-bit levels and measures its spectrum.
func Analyze(stream []byte, cfg Config) (Result, error) {
	cfg, err := normalizeConfig(cfg)
	if err != nil {
		return Result{}, err
	}

	if len(stream) == 0 {
		return Result{}, errors.New("shaping: stream must not be empty")
	}

	power, err := PowerSpectrum(stream)
	if err != nil {
		return Result{}, err
	}

	fftSize := 2 * (len(power) - 1)
	edge := (fftSize / 2) / cfg.OversamplingRatio
	if edge < 1 {
		return Result{}, fmt.Errorf("shaping: stream of %d bits too short for oversampling ratio %d",
			8*len(stream), cfg.OversamplingRatio)
	}

	res := Result{FFTSize: fftSize, BandEdgeBin: edge, SignalBin: 1}
	for k := 2; k <= edge; k++ {
		if power[k] > power[res.SignalBin] {
			res.SignalBin = k
		}
	}

	lo := max(1, res.SignalBin-cfg.CaptureBins)
	hi := min(edge, res.SignalBin+cfg.CaptureBins)

	for k := 1; k < len(power); k++ {
		switch {
		case k > edge:
			res.OutOfBandNoise += power[k]
		case k >= lo && k <= hi:
			res.SignalPower += power[k]
		default:
			res.InBandNoise += power[k]
		}
	}

	switch {
	case res.InBandNoise > 0:
		res.SNR_dB = 10 * math.Log10(res.SignalPower/res.InBandNoise)
	case res.SignalPower > 0:
		res.SNR_dB = math.Inf(1)
	}

	return res, nil
}

// PowerSpectrum returns the one-sided power spectrum of the decoded levels of
// stream, bins [0..FFTSize/2]. The levels have their mean removed and are
// Hann-windowed; the FFT size is the next power of two of the bit count.
func PowerSpectrum(stream []byte) ([]float64, error) {
	levels := pdm.Levels(stream)
	n := len(levels)
	if n == 0 {
		return nil, errors.New("shaping: stream must not be empty")
	}

	mean := pdm.Mean(stream)
	for i := range levels {
		levels[i] -= mean
	}

	win := hann(n)
	vecmath.MulBlockInPlace(levels, win)

	winEnergy := 0.0
	for _, w := range win {
		winEnergy += w * w
	}

	fftSize := nextPowerOf2(n)

	in := make([]complex128, fftSize)
	for i, v := range levels {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("shaping: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("shaping: fft: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	power := make([]float64, bins)
	vecmath.Power(power, re, im)

	// One-sided scaling: interior bins carry their negative-frequency twin.
	scale := 1 / (float64(fftSize) * winEnergy)
	for k := range power {
		if k > 0 && k < bins-1 {
			power[k] *= 2 * scale
		} else {
			power[k] *= scale
		}
	}

	return power, nil
}

func hann(n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = 1
		return out
	}

	for i := range out {
		out[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n))
	}

	return out
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
