package engine

import (
	"math/rand"

	"voxport/quarkgl"
)

// CameraOptions place the orbit camera.
type CameraOptions struct {
	Position quarkgl.Vec3
	Target   quarkgl.Vec3
	FOVDeg   float32
	// Distance overrides the orbit radius when positive, keeping the
	// direction of Position from Target.
	Distance float32

	AutoRotateSpeed float32
	NoAutoRotate    bool // the camera orbits unless set
}

// DefaultCamera is the portrait framing: slightly above and to the side,
// looking at the middle of the figure.
func DefaultCamera() CameraOptions {
	return CameraOptions{
		Position:        quarkgl.V3(40, 40, 70),
		Target:          quarkgl.V3(0, 5, 0),
		FOVDeg:          45,
		AutoRotateSpeed: 0.5,
	}
}

func (c CameraOptions) withDefaults() CameraOptions {
	d := DefaultCamera()
	if c.Position == (quarkgl.Vec3{}) {
		c.Position = d.Position
		if c.Target == (quarkgl.Vec3{}) {
			c.Target = d.Target
		}
	}
	if c.FOVDeg <= 0 {
		c.FOVDeg = d.FOVDeg
	}
	if c.AutoRotateSpeed == 0 {
		c.AutoRotateSpeed = d.AutoRotateSpeed
	}
	return c
}

// SceneOptions control the surroundings of the voxels.
type SceneOptions struct {
	Background uint32 // 0xRRGGBB
	FogNear    float32
	FogFar     float32

	AtmosphereCount int // negative disables the atmosphere
	AtmosphereSpin  float32 // radians per frame around Y
}

// DefaultScene is the bright studio look.
func DefaultScene() SceneOptions {
	return SceneOptions{
		Background:      0xF8FAFC,
		FogNear:         70,
		FogFar:          180,
		AtmosphereCount: 300,
		AtmosphereSpin:  0.001,
	}
}

func (s SceneOptions) withDefaults() SceneOptions {
	d := DefaultScene()
	if s.Background == 0 {
		s.Background = d.Background
	}
	if s.FogFar <= s.FogNear {
		s.FogNear, s.FogFar = d.FogNear, d.FogFar
	}
	if s.AtmosphereCount == 0 {
		s.AtmosphereCount = d.AtmosphereCount
	}
	if s.AtmosphereSpin == 0 {
		s.AtmosphereSpin = d.AtmosphereSpin
	}
	return s
}

const (
	minOrbit = 20
	maxOrbit = 300

	floorColor      = 0xFFFFFF
	gridColor       = 0xD1D5DB
	atmosphereColor = 0x0EA5E9
)

func (e *Engine) buildScene(cam CameraOptions, opts SceneOptions, rng *rand.Rand) {
	floorY := float32(e.sim.Params().Floor)
	bg := quarkgl.Hex(opts.Background)
	e.renderer.ClearColor = bg

	s := quarkgl.CreateScene(2)
	s.Camera.Position = cam.Position
	s.Camera.Target = cam.Target
	s.Camera.FOVYRad = quarkgl.Deg(cam.FOVDeg)
	s.Camera.Near = 0.1
	s.Camera.Far = 1000

	s.Light.Mode = quarkgl.LightAmbientDirectional
	s.Light.Ambient = 0.55
	s.Light.Dir = quarkgl.Normalize(quarkgl.V3(-0.3, -1, -0.4))
	s.Light.DirAmount = 0.5

	s.Fog = quarkgl.Fog{Enabled: true, Color: bg, Near: opts.FogNear, Far: opts.FogFar}

	floor := quarkgl.PlaneMesh(240, 240, 12, quarkgl.Hex(floorColor))
	floor.Material.Opacity = 0xCC
	floor.Transform = quarkgl.Mat4Translate(quarkgl.V3(0, floorY, 0))
	s.AddMesh(floor)

	grid := quarkgl.GridMesh(240, 36, quarkgl.Hex(gridColor))
	grid.Transform = quarkgl.Mat4Translate(quarkgl.V3(0, floorY+0.01, 0))
	s.AddMesh(grid)

	if opts.AtmosphereCount > 0 {
		pts := make([]quarkgl.Vec3, opts.AtmosphereCount)
		for i := range pts {
			pts[i] = quarkgl.V3(
				(rng.Float32()-0.5)*200,
				(rng.Float32()-0.5)*200,
				(rng.Float32()-0.5)*200,
			)
		}
		e.atmosphere = s.AddPoints(quarkgl.Points{
			Positions: pts,
			Color:     quarkgl.Hex(atmosphereColor).WithAlpha(0x66),
			Size:      2,
		})
	} else {
		e.atmosphere = -1
	}
	e.atmosphereRPF = opts.AtmosphereSpin

	e.scene = s
	e.orbit = quarkgl.OrbitFrom(s.Camera)
	if cam.Distance > 0 {
		e.orbit.Radius = cam.Distance
	}
	e.orbit.MinRadius = minOrbit
	e.orbit.MaxRadius = maxOrbit
	e.orbit.AutoRotate = !cam.NoAutoRotate
	e.orbit.AutoRotateSpeed = cam.AutoRotateSpeed
	e.orbit.Apply(&e.scene.Camera)
}
