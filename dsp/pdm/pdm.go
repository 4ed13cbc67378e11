package pdm

import "fmt"

// Curve maps a sample index to a target amplitude, nominally in [-1, 1].
//
// Values outside that range are accepted but let the accumulator drift
// instead of tracking the curve.
type Curve func(index int) float64

// Encode samples curve at n points and returns the packed PDM bitstream of
// exactly n/8 bytes. Bit 7 of byte 0 is the first modulation bit.
//
// n must be a non-negative multiple of 8; anything else is a programming
// error and panics. Encode allocates only the returned slice.
func Encode(n int, curve Curve) []byte {
	if n < 0 || n%8 != 0 {
		panic(fmt.Sprintf("pdm: sample count must be a non-negative multiple of 8: %d", n))
	}

	out := make([]byte, n/8)
	EncodeInto(out, curve)

	return out
}

// EncodeInto encodes 8*len(dst) samples of curve into dst without
// allocating. The sample count is implied by the buffer length.
func EncodeInto(dst []byte, curve Curve) {
	var m Modulator
	m.EncodeInto(dst, curve)
}
