package pdm

import "fmt"

// Square returns a square wave with the given period in samples. It is -1 for
// the first half of each period and +1 for the second half.
func Square(period int) Curve {
	if period <= 0 {
		panic(fmt.Sprintf("pdm: square period must be > 0: %d", period))
	}

	half := period / 2

	return func(index int) float64 {
		if index%period < half {
			return -1.0
		}

		return 1.0
	}
}

// Scale returns a curve whose values are those of c multiplied by gain.
// No clamping is applied.
func Scale(c Curve, gain float64) Curve {
	return func(index int) float64 {
		return gain * c(index)
	}
}
