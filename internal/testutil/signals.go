package testutil

import (
	"fmt"
	"math/rand"
)

// PatternCurve returns a curve that drives a fresh first-order modulator to
// emit exactly the bits in pattern ('0' and '1'; spaces and underscores are
// ignored). The curve yields +1 for a 1-bit and -1 for a 0-bit, which returns
// the accumulator to exactly zero after every sample.
func PatternCurve(pattern string) func(int) float64 {
	levels := make([]float64, 0, len(pattern))
	for _, r := range pattern {
		switch r {
		case '0':
			levels = append(levels, -1)
		case '1':
			levels = append(levels, 1)
		case ' ', '_':
		default:
			panic(fmt.Sprintf("testutil: invalid bit %q in pattern", r))
		}
	}

	return func(index int) float64 {
		return levels[index%len(levels)]
	}
}

// NoiseCurve returns a curve of deterministic uniform noise in
// [-amplitude, amplitude] for indices in [0, length).
func NoiseCurve(seed int64, amplitude float64, length int) func(int) float64 {
	values := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range values {
		values[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return func(index int) float64 {
		return values[index]
	}
}

// DC returns a curve that is constant at value.
func DC(value float64) func(int) float64 {
	return func(int) float64 { return value }
}

// CurveMean returns the mean of curve over indices [0, n).
func CurveMean(curve func(int) float64, n int) float64 {
	if n <= 0 {
		return 0
	}

	sum := 0.0
	for i := range n {
		sum += curve(i)
	}

	return sum / float64(n)
}
