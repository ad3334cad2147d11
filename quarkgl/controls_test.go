package quarkgl

import "testing"

func TestOrbitFromRoundTrip(t *testing.T) {
	cam := Camera{Position: V3(40, 40, 70), Target: V3(0, 5, 0), Up: V3(0, 1, 0)}
	c := OrbitFrom(cam)

	var got Camera
	c.Apply(&got)
	for i := 0; i < 3; i++ {
		if !approx(got.Position[i], cam.Position[i], 1e-3) {
			t.Fatalf("position = %v, want %v", got.Position, cam.Position)
		}
	}
	if got.Target != cam.Target || got.Up != V3(0, 1, 0) {
		t.Fatalf("target/up = %v/%v", got.Target, got.Up)
	}
}

func TestAutoRotateStep(t *testing.T) {
	c := OrbitController{Radius: 10, AutoRotateSpeed: 0.5}
	if c.Update() {
		t.Fatalf("update rotated with auto-rotate off")
	}
	c.AutoRotate = true
	if !c.Update() {
		t.Fatalf("update did not rotate")
	}
	want := Scalar(-autoRotateStep * 0.5)
	if !approx(c.Yaw, want, 1e-7) {
		t.Fatalf("yaw = %v, want %v", c.Yaw, want)
	}
}

func TestAutoRotateKeepsRadius(t *testing.T) {
	c := OrbitController{Target: V3(0, 5, 0), Radius: 20, AutoRotate: true, AutoRotateSpeed: 30}
	var cam Camera
	for i := 0; i < 500; i++ {
		c.Update()
		c.Apply(&cam)
		if d := cam.Position.Sub(cam.Target).Len(); !approx(d, 20, 1e-3) {
			t.Fatalf("frame %d: distance %v", i, d)
		}
	}
	if c.Yaw < -3.1416 || c.Yaw > 3.1416 {
		t.Fatalf("yaw not wrapped: %v", c.Yaw)
	}
}

func TestZoomClamps(t *testing.T) {
	c := OrbitController{Radius: 10, MinRadius: 5, MaxRadius: 50}
	c.Zoom(-100)
	if c.Radius != 5 {
		t.Fatalf("radius = %v", c.Radius)
	}
	c.Zoom(1000)
	if c.Radius != 50 {
		t.Fatalf("radius = %v", c.Radius)
	}
}
