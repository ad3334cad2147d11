// Package hud draws text over the rendered portrait: a status overlay and a
// scrolling event console.
package hud

import (
	"fmt"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"voxport/quarkgl"
)

const (
	lineHeight = 10
	baseline   = 8
	margin     = 4
)

// Status is what the overlay reports.
type Status struct {
	Phase      string
	Voxels     int
	Model      string
	AutoRotate bool
	Build      string
	Help       string
}

// Lines formats s top to bottom.
func (s Status) Lines() []string {
	rot := "off"
	if s.AutoRotate {
		rot = "on"
	}
	lines := []string{
		fmt.Sprintf("%s  %d voxels", s.Phase, s.Voxels),
		fmt.Sprintf("model %s  rotate %s", s.Model, rot),
	}
	if s.Help != "" {
		lines = append(lines, s.Help)
	}
	if s.Build != "" {
		lines = append(lines, s.Build)
	}
	return lines
}

// Overlay writes status text in the top-left corner of a frame.
type Overlay struct {
	Color  quarkgl.Color
	Shadow quarkgl.Color // zero alpha disables the shadow
	font   tinyfont.Fonter
}

func NewOverlay() *Overlay {
	return &Overlay{
		Color:  quarkgl.Hex(0x0F172A),
		Shadow: quarkgl.Hex(0xFFFFFF),
		font:   &proggy.TinySZ8pt7b,
	}
}

// Draw writes the status lines onto t.
func (o *Overlay) Draw(t quarkgl.Target, s Status) {
	o.DrawLines(t, margin, margin, s.Lines())
}

// DrawLines writes lines starting at (x, y), one lineHeight apart.
func (o *Overlay) DrawLines(t quarkgl.Target, x, y int, lines []string) {
	if t == nil {
		return
	}
	d := frameDisplay{t: t}
	fg := rgba(o.Color)
	for i, line := range lines {
		by := int16(y + i*lineHeight + baseline)
		if o.Shadow.A != 0 {
			tinyfont.WriteLine(d, o.font, int16(x)+1, by+1, line, rgba(o.Shadow))
		}
		tinyfont.WriteLine(d, o.font, int16(x), by, line, fg)
	}
}

// Height is the pixel height n overlay lines take.
func Height(n int) int { return n*lineHeight + margin }

// TextWidth is the pixel width of s in the overlay font.
func (o *Overlay) TextWidth(s string) int {
	_, w := tinyfont.LineWidth(o.font, s)
	return int(w)
}
