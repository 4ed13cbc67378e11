// Package pdm converts sampled curves into pulse-density modulated (PDM)
// bitstreams for one-bit DACs and similar PDM consumers.
//
// The encoder is a first-order delta-sigma quantizer: a single accumulator
// collects the quantization error and feeds it back into the next decision,
// so the local density of 1-bits follows the curve amplitude. Bits are packed
// eight per byte, first bit in the most significant position.
//
// The sine curve depends on math.Sin and is left out when building with the
// pdm_nomath tag. Square and caller-supplied curves are always available.
package pdm
