//go:build !pdm_nomath

package shaping

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-pdm/dsp/pdm"
	"github.com/cwbudde/algo-pdm/internal/testutil"
)

const (
	testBits   = 4096
	testPeriod = 512 // 8 cycles, FFT bin 8
)

func sineStream(amp float64) []byte {
	return pdm.Encode(testBits, pdm.Scale(pdm.Sine(testPeriod), amp))
}

func TestAnalyzeSine(t *testing.T) {
	res, err := Analyze(sineStream(0.5), Config{})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if res.FFTSize != testBits {
		t.Fatalf("FFTSize = %d, want %d", res.FFTSize, testBits)
	}
	if res.BandEdgeBin != testBits/2/defaultOversamplingRatio {
		t.Fatalf("BandEdgeBin = %d, want %d", res.BandEdgeBin, testBits/2/defaultOversamplingRatio)
	}
	if res.SignalBin != testBits/testPeriod {
		t.Fatalf("SignalBin = %d, want %d", res.SignalBin, testBits/testPeriod)
	}

	testutil.RequireFinite(t, res.SignalPower, res.InBandNoise, res.OutOfBandNoise, res.SNR_dB)
	testutil.RequireNear(t, "SignalPower", res.SignalPower, 0.125, 0.01)

	if res.SNR_dB < 25 {
		t.Fatalf("SNR = %.2f dB, want >= 25 dB", res.SNR_dB)
	}
}

func TestAnalyzeNoiseIsShapedUpwards(t *testing.T) {
	res, err := Analyze(sineStream(0.5), Config{})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	inBandBins := float64(res.BandEdgeBin - (2*defaultCaptureBins + 1))
	outBandBins := float64(res.FFTSize/2 - res.BandEdgeBin)

	inDensity := res.InBandNoise / inBandBins
	outDensity := res.OutOfBandNoise / outBandBins
	if inDensity*100 > outDensity {
		t.Fatalf("in-band noise density %.3g not well below out-of-band %.3g", inDensity, outDensity)
	}
}

func TestAnalyzeHigherOversamplingImprovesSNR(t *testing.T) {
	stream := sineStream(0.5)

	low, err := Analyze(stream, Config{OversamplingRatio: 16})
	if err != nil {
		t.Fatalf("Analyze(OSR 16) error = %v", err)
	}
	high, err := Analyze(stream, Config{OversamplingRatio: 128})
	if err != nil {
		t.Fatalf("Analyze(OSR 128) error = %v", err)
	}

	if high.SNR_dB <= low.SNR_dB {
		t.Fatalf("SNR(OSR 128) = %.2f dB, want > SNR(OSR 16) = %.2f dB", high.SNR_dB, low.SNR_dB)
	}
}

func TestPowerSpectrumParseval(t *testing.T) {
	power, err := PowerSpectrum(sineStream(0.5))
	if err != nil {
		t.Fatalf("PowerSpectrum() error = %v", err)
	}

	if len(power) != testBits/2+1 {
		t.Fatalf("len = %d, want %d", len(power), testBits/2+1)
	}

	// One-bit levels have unit mean square; removing the (near zero) mean
	// barely changes that.
	total := 0.0
	for _, p := range power {
		if p < 0 || math.IsNaN(p) {
			t.Fatalf("invalid power value %v", p)
		}
		total += p
	}
	testutil.RequireNear(t, "total power", total, 1, 0.02)
}
