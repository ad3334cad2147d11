package hud

import (
	"fmt"

	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"

	"voxport/quarkgl"
)

const (
	consoleFontHeight = 10
	consoleFontOffset = 6
	consoleHistory    = 64
)

// Console is a small scrolling event log. Text goes through a tinyterm
// terminal into an offscreen strip which Blit composites over the frame.
type Console struct {
	Text  quarkgl.Color
	Panel quarkgl.Color // alpha sets the panel opacity

	rows    int
	strip   *stripDisplay
	term    *tinyterm.Terminal
	history []string
	used    bool // the cursor line holds text
}

// NewConsole returns a console width pixels wide showing the last rows lines.
func NewConsole(width, rows int) *Console {
	if rows < 1 {
		rows = 1
	}
	c := &Console{
		Text:  quarkgl.Hex(0x0F172A),
		Panel: quarkgl.Hex(0xF1F5F9).WithAlpha(0xB0),
		rows:  rows,
	}
	c.configure(width)
	return c
}

func (c *Console) configure(width int) {
	if width < 8 {
		width = 8
	}
	c.strip = newStripDisplay(width, c.rows*consoleFontHeight)
	c.term = tinyterm.NewTerminal(c.strip)
	c.term.Configure(&tinyterm.Config{
		Font:       &proggy.TinySZ8pt7b,
		FontHeight: consoleFontHeight,
		FontOffset: consoleFontOffset,
	})
	c.used = false
}

// Size is the pixel size of the console strip.
func (c *Console) Size() (w, h int) { return c.strip.fb.W, c.strip.fb.H }

// Resize reflows the console to a new width, replaying the visible history.
func (c *Console) Resize(width int) {
	if width == c.strip.fb.W {
		return
	}
	c.configure(width)
	start := max(len(c.history)-c.rows, 0)
	for _, line := range c.history[start:] {
		c.write(line)
	}
}

// Printf appends one line.
func (c *Console) Printf(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	c.history = append(c.history, line)
	if len(c.history) > consoleHistory {
		c.history = append(c.history[:0], c.history[len(c.history)-consoleHistory:]...)
	}
	c.write(line)
}

func (c *Console) write(line string) {
	if c.used {
		_, _ = c.term.Write([]byte{'\n'})
	}
	c.used = true
	_, _ = c.term.Write([]byte(line))
	_ = c.strip.Display()
}

// Lines returns up to n of the most recent lines, oldest first.
func (c *Console) Lines(n int) []string {
	if n > len(c.history) {
		n = len(c.history)
	}
	out := make([]string, n)
	copy(out, c.history[len(c.history)-n:])
	return out
}

// Blit composites the console onto t with its top-left corner at (x, y).
func (c *Console) Blit(t quarkgl.Target, x, y int) {
	if t == nil {
		return
	}
	tw, th := t.Size()
	rd, _ := t.(quarkgl.PixelReader)
	w, h := c.Size()
	for sy := 0; sy < h; sy++ {
		dy := y + sy
		if dy < 0 || dy >= th {
			continue
		}
		row := c.strip.row(sy)
		for sx := 0; sx < w; sx++ {
			dx := x + sx
			if dx < 0 || dx >= tw {
				continue
			}
			if c.strip.lit(sx, row) {
				t.SetPixel(dx, dy, c.Text)
				continue
			}
			if c.Panel.A == 0 {
				continue
			}
			p := c.Panel
			if rd != nil && p.A < 0xFF {
				p = p.Blend(rd.At(dx, dy))
			}
			t.SetPixel(dx, dy, p)
		}
	}
}
