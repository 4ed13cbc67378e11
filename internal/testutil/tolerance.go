package testutil

import (
	"math"
	"strings"
	"testing"
)

// RequireNear fails t if got and want differ by more than eps.
func RequireNear(t *testing.T, name string, got, want, eps float64) {
	t.Helper()
	if diff := math.Abs(got - want); diff > eps {
		t.Fatalf("%s = %v, want %v (diff %v > eps %v)", name, got, want, diff, eps)
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data ...float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireBytes fails t if got and want differ, printing both in binary.
func RequireBytes(t *testing.T, got, want []byte) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("byte %d: got %08b, want %08b\n got  %s\n want %s",
				i, got[i], want[i], FormatBits(got), FormatBits(want))
		}
	}
}

// FormatBits renders bytes as space-separated 8-bit binary groups.
func FormatBits(data []byte) string {
	var sb strings.Builder
	for i, b := range data {
		if i > 0 {
			sb.WriteByte(' ')
		}
		for shift := 7; shift >= 0; shift-- {
			sb.WriteByte('0' + b>>shift&1)
		}
	}

	return sb.String()
}
