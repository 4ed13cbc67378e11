//go:build !pdm_nomath

package pdm

import (
	"fmt"
	"math"
)

// Sine returns sin(2*pi*index/period).
func Sine(period int) Curve {
	if period <= 0 {
		panic(fmt.Sprintf("pdm: sine period must be > 0: %d", period))
	}

	p := float64(period)

	return func(index int) float64 {
		// Operation order matches the published test vectors bit for bit.
		return math.Sin(float64(index) / p * 2.0 * math.Pi)
	}
}
