package pdm

import "testing"

func TestUnpack(t *testing.T) {
	got := Unpack([]byte{0b10110000, 0x01})
	want := []uint8{1, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("bit %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestUnpackInvertsEncode(t *testing.T) {
	pattern := []uint8{1, 1, 0, 1, 0, 0, 0, 1, 0, 1, 1, 1, 0, 0, 1, 0}
	curve := func(i int) float64 { return float64(2*int(pattern[i]) - 1) }

	got := Unpack(Encode(len(pattern), curve))
	for i := range pattern {
		if got[i] != pattern[i] {
			t.Fatalf("bit %d = %d, want %d", i, got[i], pattern[i])
		}
	}
}

func TestLevels(t *testing.T) {
	got := Levels([]byte{0b10000001})
	want := []float64{1, -1, -1, -1, -1, -1, -1, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("level %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestOnesDensityMean(t *testing.T) {
	stream := []byte{0xFF, 0x0F, 0x00, 0x81}

	if got := Ones(stream); got != 14 {
		t.Fatalf("Ones = %d, want 14", got)
	}
	if got := Density(stream); got != 14.0/32 {
		t.Fatalf("Density = %v, want %v", got, 14.0/32)
	}
	if got := Mean(stream); got != 2*14.0/32-1 {
		t.Fatalf("Mean = %v, want %v", got, 2*14.0/32-1)
	}
}

func TestStreamHelpersEmpty(t *testing.T) {
	if len(Unpack(nil)) != 0 || len(Levels(nil)) != 0 {
		t.Fatal("expected empty results for empty stream")
	}
	if Ones(nil) != 0 || Density(nil) != 0 || Mean(nil) != 0 {
		t.Fatal("expected zero counts for empty stream")
	}
}
