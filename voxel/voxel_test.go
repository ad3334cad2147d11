package voxel

import "testing"

func TestUnpackPackRoundTrip(t *testing.T) {
	for _, c := range []uint32{0x000000, 0xFFFFFF, 0xEF4444, 0x0EA5E9, 0x8B5CF6} {
		if got := Unpack(c).Pack(); got != c {
			t.Fatalf("round trip %06x: got %06x", c, got)
		}
	}
}

func TestDistance(t *testing.T) {
	red := Unpack(0xFF0000)
	blue := Unpack(0x0000FF)
	if d := Distance(red, red); d != 0 {
		t.Fatalf("self distance = %v", d)
	}
	d := Distance(red, blue)
	if d < 1.414 || d > 1.415 {
		t.Fatalf("red/blue distance = %v, want sqrt(2)", d)
	}
	if Distance(red, blue) != Distance(blue, red) {
		t.Fatalf("distance not symmetric")
	}
}

func TestBounds(t *testing.T) {
	if _, _, ok := Bounds(nil); ok {
		t.Fatalf("empty dataset reported bounds")
	}
	lo, hi, ok := Bounds(Dataset{{X: 1, Y: -2, Z: 3}, {X: -4, Y: 5, Z: 0}})
	if !ok {
		t.Fatalf("expected bounds")
	}
	if lo != [3]int{-4, -2, 0} || hi != [3]int{1, 5, 3} {
		t.Fatalf("bounds = %v..%v", lo, hi)
	}
}

func TestHistogram(t *testing.T) {
	h := Histogram(Dataset{{Color: 1}, {Color: 2}, {Color: 1}})
	if h[1] != 2 || h[2] != 1 || len(h) != 2 {
		t.Fatalf("histogram = %v", h)
	}
}
