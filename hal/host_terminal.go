package hal

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
)

// upperHalf paints the top pixel of a cell in the foreground color and the
// bottom pixel in the background color.
const upperHalf = '▀'

// RunTerminal renders the framebuffer into the terminal with two pixels per
// character cell. The framebuffer follows the terminal size.
func RunTerminal(ctx context.Context, newApp App, cfg Config) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	var logw io.Writer = io.Discard
	if cfg.LogPath != "" {
		f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("terminal log: %w", err)
		}
		defer f.Close()
		logw = f
	}

	var aud Audio = nullAudio{}
	if !cfg.Mute {
		aud = newSpeakerAudio()
	}
	defer aud.Close()

	return runTerminal(ctx, s, newApp, cfg, logw, aud)
}

func runTerminal(ctx context.Context, s tcell.Screen, newApp App, cfg Config, logw io.Writer, aud Audio) error {
	cfg = cfg.withDefaults()
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid terminal hz: %d", cfg.Hz)
	}

	s.HideCursor()
	cols, rows := s.Size()
	cfg.Width, cfg.Height = max(cols, 1), max(rows*2, 1)
	h := newHost(cfg, logw, aud)
	step := newApp(h)

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	var scratch []byte
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				c, r := ev.Size()
				h.fb.resize(c, r*2)
				s.Sync()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				if ke, ok := translateKey(ev); ok {
					h.kbd.emit(ke)
				}
			}

		case <-t.C:
			h.t.step()
			stop, err := runStep(step)
			if err != nil || stop {
				return err
			}
			scratch = h.fb.snapshot(scratch)
			drawHalfBlocks(s, scratch, h.fb.Width(), h.fb.Height())
			s.Show()

			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

func translateKey(ev *tcell.EventKey) (KeyEvent, bool) {
	return translate(ev.Key(), ev.Rune())
}

// translate maps a terminal key to a KeyEvent. Terminals report presses only.
func translate(k tcell.Key, r rune) (KeyEvent, bool) {
	switch k {
	case tcell.KeyRune:
		return KeyEvent{Press: true, Rune: r}, true
	case tcell.KeyUp:
		return KeyEvent{Code: KeyUp, Press: true}, true
	case tcell.KeyDown:
		return KeyEvent{Code: KeyDown, Press: true}, true
	case tcell.KeyLeft:
		return KeyEvent{Code: KeyLeft, Press: true}, true
	case tcell.KeyRight:
		return KeyEvent{Code: KeyRight, Press: true}, true
	case tcell.KeyEnter:
		return KeyEvent{Code: KeyEnter, Press: true}, true
	case tcell.KeyEscape:
		return KeyEvent{Code: KeyEscape, Press: true}, true
	}
	return KeyEvent{}, false
}

// drawHalfBlocks writes an RGBA buffer of w x h pixels into the screen, one
// cell per two rows.
func drawHalfBlocks(s tcell.Screen, buf []byte, w, h int) {
	if len(buf) < w*h*4 {
		return
	}
	stride := w * 4
	cols, rows := s.Size()
	for cy := 0; cy < rows && cy*2 < h; cy++ {
		for cx := 0; cx < cols && cx < w; cx++ {
			tr, tg, tb := rgbAt(buf, stride, cx, cy*2)
			style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(tr), int32(tg), int32(tb)))
			if cy*2+1 < h {
				br, bg, bb := rgbAt(buf, stride, cx, cy*2+1)
				style = style.Background(tcell.NewRGBColor(int32(br), int32(bg), int32(bb)))
			}
			s.SetContent(cx, cy, upperHalf, nil, style)
		}
	}
}
