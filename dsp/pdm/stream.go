package pdm

import "math/bits"

// Unpack returns the modulation bits of stream in emission order,
// most significant bit of each byte first.
func Unpack(stream []byte) []uint8 {
	out := make([]uint8, 0, 8*len(stream))
	for _, b := range stream {
		for shift := 7; shift >= 0; shift-- {
			out = append(out, b>>shift&1)
		}
	}

	return out
}

// Levels returns the bits of stream mapped to -1.0 (bit 0) and +1.0 (bit 1),
// which is what an ideal one-bit DAC would output.
func Levels(stream []byte) []float64 {
	out := make([]float64, 0, 8*len(stream))
	for _, bit := range Unpack(stream) {
		out = append(out, float64(2*int(bit)-1))
	}

	return out
}

// Ones returns the number of 1-bits in stream.
func Ones(stream []byte) int {
	n := 0
	for _, b := range stream {
		n += bits.OnesCount8(b)
	}

	return n
}

// Density returns the fraction of 1-bits in stream, or 0 for an empty stream.
func Density(stream []byte) float64 {
	if len(stream) == 0 {
		return 0
	}

	return float64(Ones(stream)) / float64(8*len(stream))
}

// Mean returns the DC level decoded from stream, 2*Density-1. For a curve in
// [-1, 1] encoded over N samples it differs from the curve mean by at most 1/N.
func Mean(stream []byte) float64 {
	if len(stream) == 0 {
		return 0
	}

	return 2*Density(stream) - 1
}
