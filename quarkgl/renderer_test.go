package quarkgl

import "testing"

var clearColor = RGB(0xF8, 0xFA, 0xFC)

func frontScene() *Scene {
	s := CreateScene(4)
	s.Camera.Position = V3(0, 0, 5)
	s.Camera.Target = V3(0, 0, 0)
	s.Light.Mode = LightOff
	return s
}

func newTestRenderer() *Renderer {
	r := NewRenderer(32, 32, true)
	r.ClearColor = clearColor
	return r
}

func TestRenderCubeCenter(t *testing.T) {
	s := frontScene()
	s.AddMesh(CubeMesh(2, RGB(255, 0, 0)))
	tgt := NewRGBATarget(32, 32)
	r := newTestRenderer()
	r.Render(tgt, s)

	if c := tgt.At(16, 16); c != RGB(255, 0, 0) {
		t.Fatalf("center = %+v, want red", c)
	}
	if c := tgt.At(0, 0); c != clearColor {
		t.Fatalf("corner = %+v, want clear color", c)
	}
	if r.Stats.Triangles != 2 || r.Stats.Culled != 10 {
		t.Fatalf("stats = %+v, want 2 drawn and 10 culled", r.Stats)
	}
}

func TestRenderWithoutCulling(t *testing.T) {
	s := frontScene()
	s.AddMesh(CubeMesh(2, RGB(255, 0, 0)))
	r := newTestRenderer()
	r.CullBack = false
	r.Render(NewRGBATarget(32, 32), s)
	if r.Stats.Culled != 0 || r.Stats.Triangles != 12 {
		t.Fatalf("stats = %+v", r.Stats)
	}
}

func TestRenderDepthOrder(t *testing.T) {
	s := frontScene()
	id := s.AddInstanced(CubeMesh(1, RGB(0, 0, 0)), 2)
	s.SetInstance(id, 0, Mat4Translate(V3(0, 0, 1.5)), RGB(0, 255, 0))
	s.SetInstance(id, 1, Mat4Translate(V3(0, 0, -3)), RGB(0, 0, 255))

	tgt := NewRGBATarget(32, 32)
	newTestRenderer().Render(tgt, s)
	if c := tgt.At(16, 16); c != RGB(0, 255, 0) {
		t.Fatalf("center = %+v, want the near green cube", c)
	}
}

func TestRenderBehindCameraIsClipped(t *testing.T) {
	s := frontScene()
	id := s.AddInstanced(CubeMesh(1, RGB(0, 0, 0)), 1)
	s.SetInstance(id, 0, Mat4Translate(V3(0, 0, 10)), RGB(255, 0, 0))
	tgt := NewRGBATarget(32, 32)
	r := newTestRenderer()
	r.Render(tgt, s)
	if r.Stats.Triangles != 0 {
		t.Fatalf("drew %d triangles behind the camera", r.Stats.Triangles)
	}
	if c := tgt.At(16, 16); c != clearColor {
		t.Fatalf("center = %+v", c)
	}
}

func TestRenderLighting(t *testing.T) {
	s := frontScene()
	s.Light = Light{Mode: LightAmbientDirectional, Ambient: 0.5, Dir: V3(0, 0, -1), DirAmount: 0.5}
	s.AddMesh(CubeMesh(2, RGB(200, 200, 200)))
	tgt := NewRGBATarget(32, 32)
	newTestRenderer().Render(tgt, s)
	if c := tgt.At(16, 16); c.R != 200 {
		t.Fatalf("lit face = %+v, want full intensity", c)
	}

	s.Light.Dir = V3(0, 0, 1)
	newTestRenderer().Render(tgt, s)
	if c := tgt.At(16, 16); c.R < 95 || c.R > 105 {
		t.Fatalf("unlit face = %+v, want ambient only", c)
	}
}

func TestRenderPoints(t *testing.T) {
	s := frontScene()
	s.AddPoints(Points{Positions: []Vec3{{0, 0, 0}}, Color: RGB(1, 2, 3), Size: 3})
	tgt := NewRGBATarget(32, 32)
	r := newTestRenderer()
	r.Render(tgt, s)
	if r.Stats.Points != 1 {
		t.Fatalf("points = %d", r.Stats.Points)
	}
	if c := tgt.At(16, 16); c != RGB(1, 2, 3) {
		t.Fatalf("center = %+v", c)
	}
	if c := tgt.At(19, 16); c != clearColor {
		t.Fatalf("point larger than its size: %+v", c)
	}
}

func TestRenderTranslucentBlends(t *testing.T) {
	s := frontScene()
	m := CubeMesh(2, RGB(0, 0, 0))
	m.Material.Opacity = 128
	id := s.AddInstanced(m, 1)
	s.SetInstance(id, 0, Mat4Identity(), RGB(0, 0, 0))
	tgt := NewRGBATarget(32, 32)
	newTestRenderer().Render(tgt, s)
	c := tgt.At(16, 16)
	if c.R == 0 || c.R == clearColor.R || c.A != 0xFF {
		t.Fatalf("center = %+v, want a blend of black over the clear color", c)
	}
}

func TestRGB565RoundTrip(t *testing.T) {
	tgt := &RGB565Target{Buf: make([]byte, 4*4*2), Stride: 8, W: 4, H: 4}
	tgt.Clear(RGB(0, 0, 0))
	tgt.SetPixel(1, 2, RGB(0xFF, 0x80, 0x00))
	if c := tgt.At(1, 2); c.R != 0xFF || c.G < 0x7C || c.G > 0x84 || c.B != 0 {
		t.Fatalf("pixel = %+v", c)
	}
	tgt.SetPixel(9, 9, RGB(1, 1, 1))
	if c := tgt.At(9, 9); c != (Color{}) {
		t.Fatalf("out of bounds read = %+v", c)
	}
}

func TestRGBATargetResize(t *testing.T) {
	tgt := NewRGBATarget(4, 4)
	tgt.Resize(2, 3)
	if w, h := tgt.Size(); w != 2 || h != 3 || len(tgt.Pix) != 24 {
		t.Fatalf("size = %dx%d, %d bytes", w, h, len(tgt.Pix))
	}
}

func TestRenderClipsAtNearPlane(t *testing.T) {
	s := frontScene()
	floor := PlaneMesh(200, 200, 4, RGB(10, 20, 30))
	floor.Transform = Mat4Translate(V3(0, -1, 0))
	s.AddMesh(floor)

	tgt := NewRGBATarget(32, 32)
	r := newTestRenderer()
	r.Render(tgt, s)
	// Tiles wholly behind the camera are dropped; the ones crossing the near
	// plane are cut and still drawn.
	if r.Stats.Clipped == 0 || r.Stats.Triangles < 2 {
		t.Fatalf("stats = %+v, want the floor cut at the near plane", r.Stats)
	}
	if c := tgt.At(16, 31); c != RGB(10, 20, 30) {
		t.Fatalf("bottom center = %+v, want floor", c)
	}
	if c := tgt.At(16, 0); c != clearColor {
		t.Fatalf("top center = %+v, want clear color", c)
	}
}

func TestRenderFog(t *testing.T) {
	s := frontScene()
	s.Fog = Fog{Enabled: true, Color: RGB(9, 9, 9), Near: 0, Far: 1}
	s.AddMesh(CubeMesh(2, RGB(255, 0, 0)))
	tgt := NewRGBATarget(32, 32)
	newTestRenderer().Render(tgt, s)
	if c := tgt.At(16, 16); c != RGB(9, 9, 9) {
		t.Fatalf("center = %+v, want fog color", c)
	}
}

func TestRenderGridLines(t *testing.T) {
	s := frontScene()
	s.Camera.Position = V3(0, 10, 0.01)
	s.AddMesh(GridMesh(4, 2, RGB(1, 1, 1)))
	tgt := NewRGBATarget(32, 32)
	newTestRenderer().Render(tgt, s)
	for y := 15; y <= 17; y++ {
		for x := 15; x <= 17; x++ {
			if tgt.At(x, y) == RGB(1, 1, 1) {
				return
			}
		}
	}
	t.Fatalf("grid center lines missing")
}
