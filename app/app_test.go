package app

import (
	"errors"
	"strings"
	"testing"
	"time"

	"voxport/config"
	"voxport/hal"
	"voxport/shapes"
	"voxport/sim"
	"voxport/voxel"
)

type fakeLog struct{ lines []string }

func (l *fakeLog) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *fakeLog) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func (l *fakeLog) has(prefix string) bool {
	for _, s := range l.lines {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

type fakeFB struct {
	w, h     int
	buf      []byte
	presents int
}

func newFakeFB(w, h int) *fakeFB { return &fakeFB{w: w, h: h, buf: make([]byte, w*h*4)} }

func (f *fakeFB) Width() int              { return f.w }
func (f *fakeFB) Height() int             { return f.h }
func (f *fakeFB) Format() hal.PixelFormat { return hal.PixelFormatRGBA8888 }
func (f *fakeFB) StrideBytes() int        { return f.w * 4 }
func (f *fakeFB) Buffer() []byte          { return f.buf }
func (f *fakeFB) Present() error          { f.presents++; return nil }
func (f *fakeFB) ClearRGB(r, g, b uint8) {
	for i := 0; i+3 < len(f.buf); i += 4 {
		f.buf[i], f.buf[i+1], f.buf[i+2], f.buf[i+3] = r, g, b, 0xFF
	}
}

func (f *fakeFB) resize(w, h int) {
	f.w, f.h = w, h
	f.buf = make([]byte, w*h*4)
}

type fakeAudio struct{ cues []hal.Cue }

func (a *fakeAudio) Play(c hal.Cue) { a.cues = append(a.cues, c) }
func (a *fakeAudio) Close() error   { return nil }

type fakeHAL struct {
	log   *fakeLog
	fb    *fakeFB
	keys  chan hal.KeyEvent
	ticks chan uint64
	audio *fakeAudio
}

func (h *fakeHAL) Logger() hal.Logger           { return h.log }
func (h *fakeHAL) Display() hal.Display         { return h }
func (h *fakeHAL) Framebuffer() hal.Framebuffer { return h.fb }
func (h *fakeHAL) Input() hal.Input             { return h }
func (h *fakeHAL) Keyboard() hal.Keyboard       { return h }
func (h *fakeHAL) Events() <-chan hal.KeyEvent  { return h.keys }
func (h *fakeHAL) Audio() hal.Audio             { return h.audio }
func (h *fakeHAL) Time() hal.Time               { return h }
func (h *fakeHAL) Ticks() <-chan uint64         { return h.ticks }

func newFakeHAL() *fakeHAL {
	return &fakeHAL{
		log:   &fakeLog{},
		fb:    newFakeFB(64, 48),
		keys:  make(chan hal.KeyEvent, 16),
		ticks: make(chan uint64, 16),
		audio: &fakeAudio{},
	}
}

func (h *fakeHAL) press(r rune) { h.keys <- hal.KeyEvent{Press: true, Rune: r} }

func testConfig() config.Config {
	cfg := config.Defaults()
	cfg.Display.Width, cfg.Display.Height = 64, 48
	cfg.Scene.Atmosphere = 0
	cfg.Scene.Seed = 5
	return cfg
}

func newTestApp(t *testing.T) (*App, *fakeHAL) {
	t.Helper()
	h := newFakeHAL()
	a, err := New(h, Options{Config: testConfig()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a, h
}

// run steps the app n times, advancing the tick clock 16ms per frame.
func run(t *testing.T, a *App, h *fakeHAL, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		h.ticks <- a.clock.ms + 16
		if err := a.Step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
}

func TestNewLoadsInitialModel(t *testing.T) {
	a, h := newTestApp(t)
	if a.Model() != "Avatar" {
		t.Fatalf("model = %q", a.Model())
	}
	if !h.log.has("load: Avatar (") {
		t.Fatalf("no load line in %v", h.log.lines)
	}
	if h.log.has("phase:") {
		t.Fatalf("load logged a phase change: %v", h.log.lines)
	}
	if len(h.audio.cues) != 1 || h.audio.cues[0] != hal.CueLoad {
		t.Fatalf("cues = %v", h.audio.cues)
	}
	if a.Engine().Stats().Voxels != len(shapes.Avatar()) {
		t.Fatalf("voxels = %d", a.Engine().Stats().Voxels)
	}
}

func TestUnknownInitialModelFallsBack(t *testing.T) {
	h := newFakeHAL()
	a, err := New(h, Options{Config: testConfig(), Model: "Nope"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if a.Model() != "Avatar" || !h.log.has("load: unknown model Nope") {
		t.Fatalf("model=%q log=%v", a.Model(), h.log.lines)
	}
}

func TestEmptyRegistryFails(t *testing.T) {
	_, err := New(newFakeHAL(), Options{Config: testConfig(), Registry: shapes.NewRegistry()})
	if err == nil {
		t.Fatalf("empty registry accepted")
	}
	step := Factory(Options{Config: testConfig(), Registry: shapes.NewRegistry()})(newFakeHAL())
	if step() == nil {
		t.Fatalf("factory step swallowed the construction error")
	}
}

func TestStepPresentsFrame(t *testing.T) {
	a, h := newTestApp(t)
	run(t, a, h, 2)
	if h.fb.presents != 2 {
		t.Fatalf("presents = %d", h.fb.presents)
	}
	if a.Engine().Frames() != 2 {
		t.Fatalf("frames = %d", a.Engine().Frames())
	}
	blank := true
	for _, b := range h.fb.buf {
		if b != 0 {
			blank = false
			break
		}
	}
	if blank {
		t.Fatalf("framebuffer left blank")
	}
}

func TestDismantleRebuildKeys(t *testing.T) {
	a, h := newTestApp(t)
	h.press('d')
	run(t, a, h, 30)
	if a.Engine().Stats().Kind != sim.KindDismantling {
		t.Fatalf("kind = %v", a.Engine().Stats().Kind)
	}

	h.press('3')
	run(t, a, h, 1)
	if a.Model() != "Skills" {
		t.Fatalf("model = %q", a.Model())
	}
	if !h.log.has("rebuild: Skills claimed=") {
		t.Fatalf("no rebuild line in %v", h.log.lines)
	}

	for i := 0; i < 2000 && a.Engine().Stats().Kind != sim.KindStable; i++ {
		run(t, a, h, 1)
	}
	if a.Engine().Stats().Kind != sim.KindStable {
		t.Fatalf("rebuild never settled")
	}
	want := []hal.Cue{hal.CueLoad, hal.CueDismantle, hal.CueRebuild, hal.CueSettle}
	if len(h.audio.cues) != len(want) {
		t.Fatalf("cues = %v, want %v", h.audio.cues, want)
	}
	for i := range want {
		if h.audio.cues[i] != want[i] {
			t.Fatalf("cues = %v, want %v", h.audio.cues, want)
		}
	}
	for _, p := range []string{"phase: DISMANTLING", "phase: REBUILDING", "phase: STABLE"} {
		if !h.log.has(p) {
			t.Fatalf("missing %q in %v", p, h.log.lines)
		}
	}
	if len(a.Console().Lines(8)) == 0 {
		t.Fatalf("console is empty")
	}
}

func TestRebuildIndexOutOfRange(t *testing.T) {
	a, h := newTestApp(t)
	h.press('9')
	run(t, a, h, 1)
	if a.Model() != "Avatar" || a.Engine().Stats().Kind != sim.KindStable {
		t.Fatalf("model=%q kind=%v", a.Model(), a.Engine().Stats().Kind)
	}
}

func TestCameraKeys(t *testing.T) {
	a, h := newTestApp(t)
	h.press('r')
	run(t, a, h, 1)
	if a.Engine().AutoRotate() {
		t.Fatalf("r did not stop the orbit")
	}
	pos := a.Engine().Camera().Position
	h.keys <- hal.KeyEvent{Code: hal.KeyLeft, Press: true}
	h.keys <- hal.KeyEvent{Code: hal.KeyRight} // release
	run(t, a, h, 1)
	if a.Engine().Camera().Position == pos {
		t.Fatalf("left arrow did not orbit")
	}
	h.press('h')
	run(t, a, h, 1)
	if a.showHelp {
		t.Fatalf("h did not hide the help line")
	}
}

func TestNextModel(t *testing.T) {
	a, h := newTestApp(t)
	h.press('n')
	run(t, a, h, 1)
	if a.Model() != "About" {
		t.Fatalf("model = %q", a.Model())
	}
	if !h.log.has("load: About (") {
		t.Fatalf("no load line in %v", h.log.lines)
	}
}

func TestCustomRegistry(t *testing.T) {
	reg := shapes.NewRegistry()
	reg.Register("dot", func() voxel.Dataset { return voxel.Dataset{{Color: 0xFF0000}} })
	h := newFakeHAL()
	a, err := New(h, Options{Config: testConfig(), Registry: reg, Model: "dot"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if a.Engine().Stats().Voxels != 1 {
		t.Fatalf("voxels = %d", a.Engine().Stats().Voxels)
	}
}

func TestResizeFollowsFramebuffer(t *testing.T) {
	a, h := newTestApp(t)
	run(t, a, h, 1)
	h.fb.resize(80, 30)
	run(t, a, h, 1)
	if w, ht := a.Engine().Target().Size(); w != 80 || ht != 30 {
		t.Fatalf("target = %dx%d", w, ht)
	}
	if !h.log.has("resize: 80x30") {
		t.Fatalf("no resize line in %v", h.log.lines)
	}
	if h.fb.presents != 2 {
		t.Fatalf("presents = %d", h.fb.presents)
	}
}

func TestQuit(t *testing.T) {
	a, h := newTestApp(t)
	h.keys <- hal.KeyEvent{Code: hal.KeyEscape, Press: true}
	if err := a.Step(); !errors.Is(err, hal.ErrQuit) {
		t.Fatalf("err = %v, want ErrQuit", err)
	}
	if !a.Engine().Closed() {
		t.Fatalf("engine not cleaned up")
	}
}

func TestGuardRecoversPanic(t *testing.T) {
	h := newFakeHAL()
	step := guard(h, func() error { panic("boom") })
	err := step()
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("err = %v", err)
	}
	if !h.log.has("panic: boom") {
		t.Fatalf("panic not logged: %v", h.log.lines)
	}
	if h.fb.presents != 1 {
		t.Fatalf("panic screen not presented")
	}
	dark := false
	for i := 0; i+3 < len(h.fb.buf); i += 4 {
		if h.fb.buf[i] < 0x80 {
			dark = true
			break
		}
	}
	if !dark {
		t.Fatalf("panic screen has no text")
	}

	ok := guard(h, func() error { return nil })
	if err := ok(); err != nil {
		t.Fatalf("err = %v", err)
	}
}

func TestTakeRunes(t *testing.T) {
	p, r := takeRunes("héllo", 2)
	if p != "hé" || r != "llo" {
		t.Fatalf("got %q %q", p, r)
	}
	if p, r := takeRunes("ab", 5); p != "ab" || r != "" {
		t.Fatalf("got %q %q", p, r)
	}
}

func TestTickClockKeepsLatest(t *testing.T) {
	c := newTickClock(testStart)
	c.set(40)
	c.set(20)
	if got := c.Now().Sub(testStart); got.Milliseconds() != 40 {
		t.Fatalf("elapsed = %v", got)
	}
}

var testStart = time.Unix(1700000000, 0)
