package pdm

// Modulator holds the quantization error accumulator of a first-order
// delta-sigma modulator. The zero value is ready to use.
//
// A Modulator is not safe for concurrent use. Independent encodings should
// each own their own Modulator.
type Modulator struct {
	qe float64
}

// Step feeds one sample into the accumulator and returns the emitted bit.
// The decision is strictly qe > 0; an accumulator of exactly zero emits 0.
func (m *Modulator) Step(v float64) uint8 {
	m.qe += v
	if m.qe > 0.0 {
		m.qe -= 1.0
		return 1
	}

	m.qe += 1.0

	return 0
}

// Error returns the current accumulator value.
func (m *Modulator) Error() float64 { return m.qe }

// Reset clears the accumulator.
func (m *Modulator) Reset() {
	m.qe = 0
}

// EncodeInto encodes 8*len(dst) samples of curve into dst, continuing from
// the current accumulator state. Curve indices start at 0 on every call, so
// long signals can be streamed block by block with an index-shifted curve.
func (m *Modulator) EncodeInto(dst []byte, curve Curve) {
	idx := 0
	for i := range dst {
		var b byte
		for range 8 {
			b = b<<1 ^ m.Step(curve(idx))
			idx++
		}

		dst[i] = b
	}
}
