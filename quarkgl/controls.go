package quarkgl

import "math"

// autoRotateStep is the yaw change per frame at speed 1: one turn every
// 60 seconds at 60 frames per second.
const autoRotateStep = 2 * math.Pi / 60 / 60

// maxPitch keeps the camera off the poles where the up vector degenerates.
const maxPitch = math.Pi/2 - 0.01

// OrbitController provides orbit/zoom interactions and auto-rotation for a
// camera circling a target.
//
// It does not depend on any input system.
type OrbitController struct {
	Target Vec3
	Yaw    Scalar // azimuth around +Y, 0 looks down -Z from +Z
	Pitch  Scalar // positive values lower the camera
	Radius Scalar

	MinRadius Scalar
	MaxRadius Scalar

	AutoRotate      bool
	AutoRotateSpeed Scalar
}

// OrbitFrom derives yaw, pitch and radius from the camera's current position
// around its target.
func OrbitFrom(cam Camera) OrbitController {
	o := cam.Position.Sub(cam.Target)
	r := o.Len()
	c := OrbitController{Target: cam.Target, Radius: r, AutoRotateSpeed: 2}
	if r == 0 {
		return c
	}
	c.Pitch = Scalar(-math.Asin(float64(o[1] / r)))
	c.Yaw = Scalar(math.Atan2(float64(o[0]), float64(o[2])))
	return c
}

func (c *OrbitController) Apply(cam *Camera) {
	if cam == nil {
		return
	}
	r := c.Radius
	if r == 0 {
		r = Scalar(3)
	}
	if c.MinRadius != 0 && r < c.MinRadius {
		r = c.MinRadius
	}
	if c.MaxRadius != 0 && r > c.MaxRadius {
		r = c.MaxRadius
	}

	m := Mat4Mul(Mat4RotateY(c.Yaw), Mat4RotateX(c.Pitch))
	p := Mat4MulV4(m, Vec4{0, 0, r, 1})

	cam.Position = c.Target.Add(p.Vec3())
	cam.Target = c.Target
	if cam.Up == (Vec3{}) {
		cam.Up = V3(0, 1, 0)
	}
}

// Update advances auto-rotation by one frame. It reports whether the view
// changed.
func (c *OrbitController) Update() bool {
	if !c.AutoRotate || c.AutoRotateSpeed == 0 {
		return false
	}
	c.Yaw -= autoRotateStep * c.AutoRotateSpeed
	if c.Yaw < -math.Pi {
		c.Yaw += 2 * math.Pi
	}
	return true
}

func (c *OrbitController) Rotate(deltaYaw, deltaPitch Scalar) {
	c.Yaw += deltaYaw
	c.Pitch += deltaPitch
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
}

func (c *OrbitController) Zoom(delta Scalar) {
	c.Radius += delta
	if c.MinRadius != 0 && c.Radius < c.MinRadius {
		c.Radius = c.MinRadius
	}
	if c.MaxRadius != 0 && c.Radius > c.MaxRadius {
		c.Radius = c.MaxRadius
	}
}
