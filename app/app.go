// Package app wires the portrait together: it owns the engine, the shape
// registry, the HUD and the host devices, and steps them once per frame.
package app

import (
	"fmt"
	"math/rand"
	"time"

	"voxport/config"
	"voxport/engine"
	"voxport/hal"
	"voxport/hud"
	"voxport/internal/buildinfo"
	"voxport/quarkgl"
	"voxport/shapes"
	"voxport/sim"
)

const (
	consoleRows = 4
	hudMargin   = 4
	helpLine    = "d dismantle  1-9 rebuild  n next  r rotate  arrows +/- camera  h help  q quit"
)

// Options configure the app. A nil Registry uses the built-in shapes.
type Options struct {
	Config   config.Config
	Registry *shapes.Registry
	Model    string // overrides Config.Scene.InitialModel
	Seed     int64  // overrides Config.Scene.Seed
}

type App struct {
	h     hal.HAL
	log   hal.Logger
	fb    hal.Framebuffer
	keys  <-chan hal.KeyEvent
	ticks <-chan uint64
	audio hal.Audio

	clock  *tickClock
	frames *engine.FrameQueue
	eng    *engine.Engine
	reg    *shapes.Registry

	overlay *hud.Overlay
	console *hud.Console

	model    int    // registry slot of the current scene
	shape    string // what the voxels currently form
	phase    sim.Kind
	loading  bool
	showHelp bool
	quit     bool
}

// New builds the app on h. Shapes from the configured directory are
// registered after the built-ins.
func New(h hal.HAL, opts Options) (*App, error) {
	cfg := opts.Config
	reg := opts.Registry
	if reg == nil {
		reg = shapes.Builtins()
	}
	if dir := cfg.Scene.ShapesDir; dir != "" {
		names, err := shapes.LoadDir(reg, dir)
		if err != nil {
			return nil, fmt.Errorf("shapes: %w", err)
		}
		for _, n := range names {
			h.Logger().WriteLineString("shapes: loaded " + n)
		}
	}
	if reg.Len() == 0 {
		return nil, fmt.Errorf("shapes: registry is empty")
	}
	bg, err := cfg.Scene.BackgroundColor()
	if err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = cfg.Scene.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	a := &App{
		h:        h,
		log:      h.Logger(),
		audio:    h.Audio(),
		clock:    newTickClock(time.Now()),
		frames:   &engine.FrameQueue{},
		reg:      reg,
		overlay:  hud.NewOverlay(),
		showHelp: true,
		phase:    sim.KindStable,
	}
	if d := h.Display(); d != nil {
		a.fb = d.Framebuffer()
	}
	if in := h.Input(); in != nil && in.Keyboard() != nil {
		a.keys = in.Keyboard().Events()
	}
	if t := h.Time(); t != nil {
		a.ticks = t.Ticks()
	}

	w, ht := cfg.Display.Width, cfg.Display.Height
	if a.fb != nil {
		w, ht = a.fb.Width(), a.fb.Height()
	}
	params := cfg.Params()
	atmosphere := cfg.Scene.Atmosphere
	if atmosphere == 0 {
		atmosphere = -1
	}
	a.eng = engine.New(a, engine.Options{
		Width:     w,
		Height:    ht,
		Params:    &params,
		Clock:     a.clock,
		Scheduler: a.frames,
		Rand:      rand.New(rand.NewSource(seed)),
		Camera: engine.CameraOptions{
			FOVDeg:          cfg.Camera.FOVDeg,
			Distance:        cfg.Camera.Distance,
			AutoRotateSpeed: cfg.Camera.AutoRotateSpeed,
			NoAutoRotate:    !cfg.Camera.AutoRotate,
		},
		Scene: engine.SceneOptions{
			Background:      bg,
			AtmosphereCount: atmosphere,
		},
	})
	a.console = hud.NewConsole(max(w/2, 160), consoleRows)

	model := opts.Model
	if model == "" {
		model = cfg.Scene.InitialModel
	}
	if !a.Load(model) {
		a.log.WriteLineString("load: unknown model " + model + ", using " + reg.Names()[0])
		a.loadSlot(0)
	}
	a.log.WriteLineString("voxport " + buildinfo.Short() + " ready")
	return a, nil
}

// Factory adapts New to the runner signature. Construction errors end the
// run on the first frame.
func Factory(opts Options) hal.App {
	return func(h hal.HAL) func() error {
		a, err := New(h, opts)
		if err != nil {
			return func() error { return err }
		}
		return guard(h, a.Step)
	}
}

// Engine exposes the engine for tests and tools.
func (a *App) Engine() *engine.Engine { return a.eng }

// Model is the name of the shape the voxels currently form or move toward.
func (a *App) Model() string { return a.shape }

// Console returns the event console.
func (a *App) Console() *hud.Console { return a.console }

// Load replaces the scene with the named shape. Unknown names do nothing.
func (a *App) Load(name string) bool {
	i := a.reg.IndexOf(name)
	if i < 0 {
		return false
	}
	a.loadSlot(i)
	return true
}

func (a *App) loadSlot(i int) {
	name, gen, ok := a.reg.At(i)
	if !ok {
		return
	}
	a.model = i
	a.shape = name
	a.loading = true
	a.eng.LoadInitialModel(gen())
	a.loading = false
	a.play(hal.CueLoad)
}

// RebuildInto reassembles the current voxels into the shape at 1-based
// index n. Unknown indices and rejected commands do nothing.
func (a *App) RebuildInto(n int) bool {
	name, gen, ok := a.reg.At(n - 1)
	if !ok {
		return false
	}
	if !a.eng.Rebuild(gen()) {
		return false
	}
	a.shape = name
	st := a.eng.Stats()
	line := fmt.Sprintf("rebuild: %s claimed=%d rubble=%d dropped=%d", name, st.Claimed, st.Rubble, st.Dropped)
	a.log.WriteLineString(line)
	a.console.Printf("%s: %d placed, %d rubble", name, st.Claimed, st.Rubble)
	return true
}

// PhaseChanged implements sim.Observer.
func (a *App) PhaseChanged(k sim.Kind) {
	prev := a.phase
	a.phase = k
	if a.loading {
		return
	}
	a.log.WriteLineString("phase: " + k.String())
	a.console.Printf("phase %s", k)
	switch k {
	case sim.KindDismantling:
		a.play(hal.CueDismantle)
	case sim.KindRebuilding:
		a.play(hal.CueRebuild)
	case sim.KindStable:
		if prev == sim.KindRebuilding {
			a.play(hal.CueSettle)
		}
	}
}

// CountChanged implements sim.Observer.
func (a *App) CountChanged(n int) {
	a.log.WriteLineString(fmt.Sprintf("load: %s (%d voxels)", a.shape, n))
	a.console.Printf("loaded %s, %d voxels", a.shape, n)
}

// Step runs one frame: input, resize, simulation and render, HUD, present.
func (a *App) Step() error {
	a.drainTicks()
	a.drainKeys()
	if a.quit {
		a.eng.Cleanup()
		return hal.ErrQuit
	}
	a.syncSize()

	a.frames.Fire()

	tg := a.eng.Target()
	if tg == nil {
		return nil
	}
	a.drawHUD(tg)
	return a.present(tg)
}

func (a *App) play(c hal.Cue) {
	if a.audio != nil {
		a.audio.Play(c)
	}
}

func (a *App) drainTicks() {
	for {
		select {
		case ms := <-a.ticks:
			a.clock.set(ms)
		default:
			return
		}
	}
}

func (a *App) drainKeys() {
	for {
		select {
		case ev := <-a.keys:
			a.HandleKey(ev)
		default:
			return
		}
	}
}

func (a *App) syncSize() {
	if a.fb == nil {
		return
	}
	w, h := a.fb.Width(), a.fb.Height()
	tw, th := a.eng.Target().Size()
	if w == tw && h == th {
		return
	}
	a.eng.HandleResize(w, h)
	a.console.Resize(max(w/2, 160))
	a.log.WriteLineString(fmt.Sprintf("resize: %dx%d", w, h))
}

func (a *App) drawHUD(tg *quarkgl.RGBATarget) {
	st := a.eng.Stats()
	status := hud.Status{
		Phase:      st.Kind.String(),
		Voxels:     st.Voxels,
		Model:      a.shape,
		AutoRotate: a.eng.AutoRotate(),
	}
	if a.showHelp {
		status.Help = helpLine
		status.Build = "build " + buildinfo.Short()
	}
	a.overlay.Draw(tg, status)

	_, h := tg.Size()
	_, ch := a.console.Size()
	a.console.Blit(tg, hudMargin, h-ch-hudMargin)
}

func (a *App) present(tg *quarkgl.RGBATarget) error {
	if a.fb == nil {
		return nil
	}
	buf := a.fb.Buffer()
	if a.fb.Format() != hal.PixelFormatRGBA8888 || len(buf) != len(tg.Pix) || a.fb.StrideBytes() != tg.W*4 {
		// The host resized after syncSize; the next frame catches up.
		return nil
	}
	copy(buf, tg.Pix)
	return a.fb.Present()
}
