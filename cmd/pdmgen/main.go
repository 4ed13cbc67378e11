// Command pdmgen encodes a stock curve as a PDM bitstream and prints the
// packed bytes.
//
// Usage:
//
//	pdmgen [flags]
//
// Examples:
//
//	pdmgen -curve square -n 32 -period 6
//	pdmgen -curve sine -n 256 -period 64 -format go
//	pdmgen -curve sine -n 65536 -period 512 -gain 0.5 -wav out.wav
//	pdmgen -list
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-pdm/dsp/pdm"
	"github.com/cwbudde/algo-pdm/dsp/pdm/pdmwav"
)

type curveEntry struct {
	name string
	build func(period int) pdm.Curve
}

var registry = []curveEntry{
	{"square", pdm.Square},
}

func main() {
	curveName := flag.String("curve", "square", "curve to encode (see -list)")
	n := flag.Int("n", 64, "number of samples, a multiple of 8")
	period := flag.Int("period", 16, "curve period in samples")
	gain := flag.Float64("gain", 1, "amplitude scale applied to the curve")
	format := flag.String("format", "table", "output format: table, hex or go")
	wavPath := flag.String("wav", "", "also write the one-bit levels to this WAV file")
	rate := flag.Int("rate", 48000, "WAV sample rate in Hz")
	list := flag.Bool("list", false, "list available curve names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pdmgen [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Encodes a curve as a pulse-density modulated bitstream.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pdmgen -curve square -n 32 -period 6\n")
		fmt.Fprintf(os.Stderr, "  pdmgen -curve sine -n 256 -period 64 -format go\n")
		fmt.Fprintf(os.Stderr, "  pdmgen -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	if err := run(*curveName, *n, *period, *gain, *format, *wavPath, *rate); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(curveName string, n, period int, gain float64, format, wavPath string, rate int) error {
	if n < 0 || n%8 != 0 {
		return fmt.Errorf("-n must be a non-negative multiple of 8: %d", n)
	}
	if period <= 0 {
		return fmt.Errorf("-period must be > 0: %d", period)
	}

	entry, ok := lookup(curveName)
	if !ok {
		return fmt.Errorf("unknown curve %q (use -list to see available)", curveName)
	}

	curve := entry.build(period)
	if gain != 1 {
		curve = pdm.Scale(curve, gain)
	}

	stream := pdm.Encode(n, curve)

	if err := printStream(os.Stdout, stream, format); err != nil {
		return err
	}

	if wavPath == "" {
		return nil
	}

	return writeWAV(wavPath, stream, rate)
}

func lookup(name string) (curveEntry, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, e := range registry {
		if e.name == name {
			return e, true
		}
	}

	return curveEntry{}, false
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func writeWAV(path string, stream []byte, rate int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := pdmwav.Write(f, stream, pdmwav.Config{SampleRate: rate}); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func printStream(w io.Writer, stream []byte, format string) error {
	switch format {
	case "table":
		return printTable(w, stream)
	case "hex":
		_, err := fmt.Fprintf(w, "% x\n", stream)
		return err
	case "go":
		_, err := fmt.Fprintln(w, goLiteral(stream))
		return err
	default:
		return fmt.Errorf("unknown format %q (table, hex or go)", format)
	}
}

func printTable(w io.Writer, stream []byte) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Byte\tHex\tBits\n----\t---\t----\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for i, b := range stream {
		if _, err := fmt.Fprintf(tw, "%d\t0x%02x\t%08b\n", i, b, b); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}

	if _, err := fmt.Fprintf(tw, "\nones\t%d/%d\tmean %.4f\n", pdm.Ones(stream), 8*len(stream), pdm.Mean(stream)); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	return tw.Flush()
}

func goLiteral(stream []byte) string {
	var sb strings.Builder
	sb.WriteString("[]byte{")
	for i, b := range stream {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "0b%08b", b)
	}
	sb.WriteString("}")

	return sb.String()
}
