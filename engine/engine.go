// Package engine drives the voxel portrait: it owns the simulation, the
// software-rendered scene and the frame loop, and exposes the command surface
// used by the presentation layer.
package engine

import (
	"math/rand"
	"time"

	"voxport/quarkgl"
	"voxport/sim"
	"voxport/voxel"
)

const (
	defaultWidth  = 640
	defaultHeight = 400

	// voxelSize is the rendered cube edge; the gap shows the grid.
	voxelSize = 0.95
)

// Options configure an Engine. Zero values select defaults.
type Options struct {
	Width, Height int

	Params    *sim.Params
	Clock     Clock
	Scheduler Scheduler // defaults to a private FrameQueue, see Scheduler()
	Rand      *rand.Rand

	Camera CameraOptions
	Scene  SceneOptions
}

// Engine is the facade over simulation, scene and frame loop. All methods
// must be called from the goroutine that fires the scheduler.
type Engine struct {
	sim      *sim.Sim
	scene    *quarkgl.Scene
	renderer *quarkgl.Renderer
	target   *quarkgl.RGBATarget
	orbit    quarkgl.OrbitController

	sched Scheduler
	clock Clock
	frame FrameID

	voxelMesh int // instanced id, -1 before the first load
	colors    []quarkgl.Color

	atmosphere    int
	atmosphereRot quarkgl.Scalar
	atmosphereRPF quarkgl.Scalar

	frames uint64
	closed bool
}

// New builds the engine and requests its first frame. obs receives phase and
// count notifications and may be nil.
func New(obs sim.Observer, opts Options) *Engine {
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = defaultHeight
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.Scheduler == nil {
		opts.Scheduler = &FrameQueue{}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	e := &Engine{
		sim:       sim.New(obs, sim.Options{Params: opts.Params, Clock: opts.Clock, Rand: opts.Rand}),
		target:    quarkgl.NewRGBATarget(opts.Width, opts.Height),
		renderer:  quarkgl.NewRenderer(opts.Width, opts.Height, true),
		sched:     opts.Scheduler,
		clock:     opts.Clock,
		voxelMesh: -1,
	}
	e.buildScene(opts.Camera.withDefaults(), opts.Scene.withDefaults(), opts.Rand)
	e.frame = e.sched.Request(e.animate)
	return e
}

// Scheduler returns the scheduler that drives the frame loop.
func (e *Engine) Scheduler() Scheduler { return e.sched }

// Sim exposes the simulation for reading.
func (e *Engine) Sim() *sim.Sim { return e.sim }

// Stats summarizes the simulation.
func (e *Engine) Stats() sim.Stats { return e.sim.Stats() }

// Target is the framebuffer the last frame was rendered into. It is nil after
// Cleanup.
func (e *Engine) Target() *quarkgl.RGBATarget {
	if e.closed {
		return nil
	}
	return e.target
}

// Frames counts rendered frames.
func (e *Engine) Frames() uint64 { return e.frames }

// Closed reports whether Cleanup has run.
func (e *Engine) Closed() bool { return e.closed }

// LoadInitialModel replaces the scene's voxels with ds. The instanced buffer
// is released and reallocated for the new count.
func (e *Engine) LoadInitialModel(ds voxel.Dataset) {
	if e.closed {
		return
	}
	if e.voxelMesh >= 0 {
		e.scene.RemoveInstanced(e.voxelMesh)
	}
	cube := quarkgl.CubeMesh(voxelSize, quarkgl.RGB(0xFF, 0xFF, 0xFF))
	e.voxelMesh = e.scene.AddInstanced(cube, len(ds))

	e.colors = e.colors[:0]
	for _, d := range ds {
		e.colors = append(e.colors, quarkgl.Hex(d.Color))
	}

	e.sim.Load(ds)
	e.draw()
}

// Dismantle starts the collapse. It reports whether the command was accepted.
func (e *Engine) Dismantle() bool {
	if e.closed {
		return false
	}
	return e.sim.Dismantle()
}

// Rebuild reassembles the current voxels into ds. It reports whether the
// command was accepted.
func (e *Engine) Rebuild(ds voxel.Dataset) bool {
	if e.closed {
		return false
	}
	return e.sim.Rebuild(ds)
}

// SetAutoRotate toggles the camera's slow orbit.
func (e *Engine) SetAutoRotate(on bool) { e.orbit.AutoRotate = on }

// AutoRotate reports whether the camera orbits on its own.
func (e *Engine) AutoRotate() bool { return e.orbit.AutoRotate }

// Orbit turns the camera around its target by yaw and pitch radians.
func (e *Engine) Orbit(dYaw, dPitch float32) {
	if e.closed {
		return
	}
	e.orbit.Rotate(dYaw, dPitch)
	e.orbit.Apply(&e.scene.Camera)
}

// Zoom moves the camera toward (negative) or away from its target, within
// the orbit limits.
func (e *Engine) Zoom(delta float32) {
	if e.closed {
		return
	}
	e.orbit.Zoom(delta)
	e.orbit.Apply(&e.scene.Camera)
}

// Camera returns the current camera.
func (e *Engine) Camera() quarkgl.Camera { return e.scene.Camera }

// HandleResize resizes the framebuffer and depth buffer. The projection
// aspect follows the framebuffer on the next frame. Non-positive sizes are
// ignored.
func (e *Engine) HandleResize(w, h int) {
	if e.closed || w <= 0 || h <= 0 {
		return
	}
	e.target.Resize(w, h)
	e.renderer.EnableDepth(true, w, h)
}

// Cleanup stops the frame loop and releases rendering resources. An
// in-flight rebuild is abandoned. Further calls do nothing.
func (e *Engine) Cleanup() {
	if e.closed {
		return
	}
	e.closed = true
	e.sched.Cancel(e.frame)
	e.frame = 0
	e.renderer.Release()
	e.scene.Clear()
	e.voxelMesh = -1
	e.colors = nil
	e.target.Resize(0, 0)
}

// animate is one frame: schedule the next one, move the camera, step the
// simulation, push instances and render.
func (e *Engine) animate() {
	if e.closed {
		return
	}
	e.frame = e.sched.Request(e.animate)

	if t, ok := e.clock.(Ticker); ok {
		t.Tick()
	}
	e.orbit.Update()
	e.orbit.Apply(&e.scene.Camera)
	e.sim.Step()

	e.atmosphereRot += e.atmosphereRPF
	e.scene.UpdatePointsTransform(e.atmosphere, quarkgl.Mat4RotateY(e.atmosphereRot))

	e.draw()
	e.renderer.Render(e.target, e.scene)
	e.frames++
}

// draw copies every voxel's pose and color into the instanced buffer.
func (e *Engine) draw() {
	if e.voxelMesh < 0 {
		return
	}
	for i, v := range e.sim.Voxels() {
		m := quarkgl.Mat4Compose(
			quarkgl.V3(float32(v.X), float32(v.Y), float32(v.Z)),
			quarkgl.V3(float32(v.RX), float32(v.RY), float32(v.RZ)),
			1,
		)
		e.scene.SetInstance(e.voxelMesh, i, m, e.colors[i])
	}
}
