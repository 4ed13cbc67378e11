//go:build !pdm_nomath

package main

import "github.com/cwbudde/algo-pdm/dsp/pdm"

func init() {
	registry = append(registry, curveEntry{"sine", pdm.Sine})
}
