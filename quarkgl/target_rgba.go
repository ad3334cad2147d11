package quarkgl

// RGBATarget renders into a packed 8-bit RGBA buffer (4 bytes per pixel,
// no row padding), the layout ebiten's WritePixels expects.
type RGBATarget struct {
	Pix []byte
	W   int
	H   int
}

// NewRGBATarget allocates a w x h target.
func NewRGBATarget(w, h int) *RGBATarget {
	t := &RGBATarget{}
	t.Resize(w, h)
	return t
}

// Resize changes the target size, reusing the buffer when it is large enough.
// Pixel contents are undefined afterwards.
func (t *RGBATarget) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	n := w * h * 4
	if cap(t.Pix) < n {
		t.Pix = make([]byte, n)
	}
	t.Pix = t.Pix[:n]
	t.W, t.H = w, h
}

func (t *RGBATarget) Size() (w, h int) { return t.W, t.H }

func (t *RGBATarget) Clear(c Color) {
	if t == nil || len(t.Pix) < t.W*t.H*4 {
		return
	}
	for off := 0; off+3 < len(t.Pix); off += 4 {
		t.Pix[off] = c.R
		t.Pix[off+1] = c.G
		t.Pix[off+2] = c.B
		t.Pix[off+3] = 0xFF
	}
}

func (t *RGBATarget) SetPixel(x, y int, c Color) {
	if t == nil || x < 0 || y < 0 || x >= t.W || y >= t.H {
		return
	}
	off := (y*t.W + x) * 4
	if off+3 >= len(t.Pix) {
		return
	}
	t.Pix[off] = c.R
	t.Pix[off+1] = c.G
	t.Pix[off+2] = c.B
	t.Pix[off+3] = c.A
}

func (t *RGBATarget) At(x, y int) Color {
	if t == nil || x < 0 || y < 0 || x >= t.W || y >= t.H {
		return Color{}
	}
	off := (y*t.W + x) * 4
	if off+3 >= len(t.Pix) {
		return Color{}
	}
	return Color{R: t.Pix[off], G: t.Pix[off+1], B: t.Pix[off+2], A: t.Pix[off+3]}
}
