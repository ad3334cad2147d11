package hud

import (
	"image/color"

	"tinygo.org/x/drivers"

	"voxport/quarkgl"
)

// frameDisplay lets tinyfont draw straight onto a render target.
type frameDisplay struct {
	t quarkgl.Target
}

func (d frameDisplay) Size() (x, y int16) {
	if d.t == nil {
		return 0, 0
	}
	w, h := d.t.Size()
	return int16(w), int16(h)
}

func (d frameDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.t == nil {
		return
	}
	d.t.SetPixel(int(x), int(y), quarkgl.RGBA(c.R, c.G, c.B, 0xFF))
}

func (d frameDisplay) Display() error { return nil }

// stripDisplay is the console's offscreen RGB565 strip. tinyterm scrolls it
// the way it scrolls panels with a hardware start line: rows are never moved,
// only the line shown at the top changes.
type stripDisplay struct {
	fb     *quarkgl.RGB565Target
	scroll int
}

func newStripDisplay(w, h int) *stripDisplay {
	return &stripDisplay{fb: &quarkgl.RGB565Target{
		Buf:    make([]byte, w*h*2),
		Stride: w * 2,
		W:      w,
		H:      h,
	}}
}

func (d *stripDisplay) Size() (x, y int16) {
	return int16(d.fb.W), int16(d.fb.H)
}

func (d *stripDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.fb.SetPixel(int(x), int(y), quarkgl.RGB(c.R, c.G, c.B))
}

func (d *stripDisplay) Display() error { return nil }

func (d *stripDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	w, h := d.fb.W, d.fb.H
	x0 := clampInt(int(x), 0, w)
	y0 := clampInt(int(y), 0, h)
	x1 := clampInt(int(x)+int(width), 0, w)
	y1 := clampInt(int(y)+int(height), 0, h)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	pixel := quarkgl.RGB565(quarkgl.RGB(c.R, c.G, c.B))
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for py := y0; py < y1; py++ {
		row := py * d.fb.Stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			d.fb.Buf[off] = lo
			d.fb.Buf[off+1] = hi
		}
	}
	return nil
}

func (d *stripDisplay) SetScroll(line int16) {
	if d.fb.H <= 0 {
		d.scroll = 0
		return
	}
	d.scroll = ((int(line) % d.fb.H) + d.fb.H) % d.fb.H
}

func (d *stripDisplay) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

// row maps a visible row to the strip row holding it.
func (d *stripDisplay) row(y int) int {
	return (y + d.scroll) % d.fb.H
}

// lit reports whether the strip pixel differs from the terminal background.
func (d *stripDisplay) lit(x, y int) bool {
	off := y*d.fb.Stride + x*2
	return d.fb.Buf[off] != 0 || d.fb.Buf[off+1] != 0
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func rgba(c quarkgl.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}
