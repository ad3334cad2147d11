//go:build cgo

package hal

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"voxport/internal/buildinfo"
)

// RunWindow opens a desktop window that displays the framebuffer and forwards
// keyboard input. The framebuffer follows the window size divided by
// cfg.Scale. It blocks until the window closes or the app quits.
func RunWindow(newApp App, cfg Config) error {
	cfg = cfg.withDefaults()
	var aud Audio = nullAudio{}
	if !cfg.Mute {
		aud = newEbitenAudio()
	}
	h := newHost(cfg, os.Stdout, aud)
	defer aud.Close()
	step := newApp(h)

	g := &hostGame{h: h, step: step, scale: cfg.Scale, limit: cfg.Ticks}
	ebiten.SetWindowTitle(cfg.Title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Hz)

	err := ebiten.RunGame(g)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

type hostGame struct {
	h       *hostHAL
	fbImg   *ebiten.Image
	scratch []byte
	scale   int
	ticks   uint64
	limit   uint64
	step    func() error
}

func (g *hostGame) Update() error {
	g.h.kbd.pollEbiten()
	g.h.t.step()
	stop, err := runStep(g.step)
	if err != nil {
		return err
	}
	g.ticks++
	if stop || (g.limit > 0 && g.ticks >= g.limit) {
		return ebiten.Termination
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	g.scratch = fb.snapshot(g.scratch)
	w, h := fb.Width(), fb.Height()
	if g.fbImg == nil || g.fbImg.Bounds().Dx() != w || g.fbImg.Bounds().Dy() != h {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(w, h)
	}
	if len(g.scratch) != w*h*4 {
		// Resized between snapshot and size read; next frame catches up.
		return
	}
	g.fbImg.WritePixels(g.scratch)
	screen.DrawImage(g.fbImg, nil)
}

// Layout resizes the framebuffer to the window; the app sees the new size on
// its next step.
func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := max(outsideWidth/g.scale, 1)
	h := max(outsideHeight/g.scale, 1)
	g.h.fb.resize(w, h)
	return w, h
}
