package quarkgl

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color     { return Color{R: r, G: g, B: b, A: 0xFF} }
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

// Hex converts a packed 0xRRGGBB value.
func Hex(rgb uint32) Color {
	return RGB(uint8(rgb>>16), uint8(rgb>>8), uint8(rgb))
}

// RGBf converts normalized channels; values outside 0..1 are clamped.
func RGBf(r, g, b float32) Color {
	return RGB(unit8(r), unit8(g), unit8(b))
}

func unit8(v float32) uint8 {
	return uint8(Clamp01(v)*255 + 0.5)
}

func (c Color) MulScalar(s Scalar) Color {
	t := uint32(Clamp01(s) * 255)
	mul := func(ch uint8) uint8 {
		return uint8((uint32(ch) * t) / 255)
	}
	return Color{R: mul(c.R), G: mul(c.G), B: mul(c.B), A: c.A}
}

// Modulate multiplies two colors channel by channel.
func (c Color) Modulate(o Color) Color {
	mul := func(a, b uint8) uint8 { return uint8((uint32(a) * uint32(b)) / 255) }
	return Color{R: mul(c.R, o.R), G: mul(c.G, o.G), B: mul(c.B, o.B), A: mul(c.A, o.A)}
}

// Blend mixes c over dst by c.A.
func (c Color) Blend(dst Color) Color {
	if c.A == 0xFF {
		return c
	}
	a := uint32(c.A)
	mix := func(s, d uint8) uint8 { return uint8((uint32(s)*a + uint32(d)*(255-a)) / 255) }
	return Color{R: mix(c.R, dst.R), G: mix(c.G, dst.G), B: mix(c.B, dst.B), A: 0xFF}
}

func (c Color) WithAlpha(a uint8) Color { c.A = a; return c }
