// Package voxel defines the immutable voxel datasets exchanged between shape
// generators and the simulation.
package voxel

import "math"

// Datum is one colored unit cube on the integer grid.
type Datum struct {
	X, Y, Z int
	Color   uint32 // 0xRRGGBB
}

// Dataset is an ordered collection of cells. Order is significant: rebuild
// assignment visits targets in dataset order.
type Dataset []Datum

// RGB is a resolved display color with channels in [0,1].
type RGB struct {
	R, G, B float32
}

// Unpack resolves a packed 0xRRGGBB color.
func Unpack(c uint32) RGB {
	return RGB{
		R: float32((c>>16)&0xFF) / 255,
		G: float32((c>>8)&0xFF) / 255,
		B: float32(c&0xFF) / 255,
	}
}

// Pack converts back to 0xRRGGBB, clamping and rounding each channel.
func (c RGB) Pack() uint32 {
	return uint32(channel8(c.R))<<16 | uint32(channel8(c.G))<<8 | uint32(channel8(c.B))
}

// Bytes returns the color as 8-bit channels.
func (c RGB) Bytes() (r, g, b uint8) {
	return channel8(c.R), channel8(c.G), channel8(c.B)
}

func channel8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xFF
	}
	return uint8(v*255 + 0.5)
}

// Distance is the Euclidean distance between two colors in RGB space.
func Distance(a, b RGB) float32 {
	dr := a.R - b.R
	dg := a.G - b.G
	db := a.B - b.B
	return float32(math.Sqrt(float64(dr*dr + dg*dg + db*db)))
}

// Bounds returns the inclusive grid extent of ds. ok is false for an empty dataset.
func Bounds(ds Dataset) (lo, hi [3]int, ok bool) {
	if len(ds) == 0 {
		return lo, hi, false
	}
	lo = [3]int{ds[0].X, ds[0].Y, ds[0].Z}
	hi = lo
	for _, d := range ds[1:] {
		p := [3]int{d.X, d.Y, d.Z}
		for i := 0; i < 3; i++ {
			if p[i] < lo[i] {
				lo[i] = p[i]
			}
			if p[i] > hi[i] {
				hi[i] = p[i]
			}
		}
	}
	return lo, hi, true
}

// Histogram counts cells per packed color.
func Histogram(ds Dataset) map[uint32]int {
	h := make(map[uint32]int)
	for _, d := range ds {
		h[d.Color]++
	}
	return h
}
