package app

import (
	"fmt"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"voxport/hal"
	"voxport/hud"
	"voxport/quarkgl"
)

// guard turns a panic in step into an error after logging it and painting
// a panic screen.
func guard(h hal.HAL, step func() error) func() error {
	return func() (err error) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			stack := debug.Stack()
			reportPanic(h, v, stack)
			err = fmt.Errorf("voxport panic: %v", v)
		}()
		return step()
	}
}

func reportPanic(h hal.HAL, v any, stack []byte) {
	var lines []string
	lines = append(lines, "voxport panic:", fmt.Sprintf("panic: %v", v))
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			lines = append(lines, line)
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}

	if l := h.Logger(); l != nil {
		for _, line := range lines {
			l.WriteLineString(line)
		}
	}

	disp := h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil || fb.Format() != hal.PixelFormatRGBA8888 {
		return
	}
	fb.ClearRGB(255, 255, 255)

	t := fbTarget{fb: fb}
	o := hud.NewOverlay()
	o.Shadow.A = 0
	w, ht := t.Size()
	cols := max(w/max(o.TextWidth("0"), 1), 1)
	rows := max((ht-hud.Height(0))/(hud.Height(1)-hud.Height(0)), 1)

	var wrapped []string
	for _, line := range lines {
		for len(line) > 0 && len(wrapped) < rows {
			chunk, rest := takeRunes(line, cols)
			wrapped = append(wrapped, chunk)
			line = strings.TrimLeft(rest, " ")
		}
	}
	o.DrawLines(t, 0, 0, wrapped)
	_ = fb.Present()
}

// fbTarget draws into an RGBA host framebuffer.
type fbTarget struct {
	fb hal.Framebuffer
}

func (t fbTarget) Size() (w, h int) { return t.fb.Width(), t.fb.Height() }

func (t fbTarget) SetPixel(x, y int, c quarkgl.Color) {
	buf := t.fb.Buffer()
	if x < 0 || y < 0 || x >= t.fb.Width() || y >= t.fb.Height() {
		return
	}
	off := y*t.fb.StrideBytes() + x*4
	if off < 0 || off+3 >= len(buf) {
		return
	}
	buf[off] = c.R
	buf[off+1] = c.G
	buf[off+2] = c.B
	buf[off+3] = 0xFF
}

func (t fbTarget) Clear(c quarkgl.Color) { t.fb.ClearRGB(c.R, c.G, c.B) }

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
