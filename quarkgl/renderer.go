package quarkgl

// nearW is the clip plane: geometry with w below it is cut away.
const nearW = 1e-3

// Stats counts the work of the last Render call.
type Stats struct {
	Triangles int // rasterized, after clipping
	Culled    int // back-facing
	Clipped   int // entirely behind the near plane
	Points    int
}

// Renderer is a fixed-pipeline software renderer.
//
// Create it once and reuse it to avoid allocations.
type Renderer struct {
	Mode       RenderMode
	Depth      bool
	CullBack   bool
	ClearColor Color

	Stats Stats

	depthBuf []float32
	eye      Vec3
	fog      Fog
}

// NewRenderer creates a renderer for a given maximum target size.
//
// If enableDepth is true, a depth buffer of size w*h is allocated.
func NewRenderer(w, h int, enableDepth bool) *Renderer {
	r := &Renderer{
		Mode:       RenderSolidFlat,
		Depth:      enableDepth,
		CullBack:   true,
		ClearColor: RGB(0, 0, 0),
	}
	if enableDepth && w > 0 && h > 0 {
		r.depthBuf = make([]float32, w*h)
	}
	return r
}

func (r *Renderer) SetRenderMode(m RenderMode) { r.Mode = m }

// DepthLen is the number of depth buffer cells, 0 when none is allocated.
func (r *Renderer) DepthLen() int { return len(r.depthBuf) }

func (r *Renderer) EnableDepth(on bool, w, h int) {
	r.Depth = on
	if !on {
		r.depthBuf = nil
		return
	}
	if w <= 0 || h <= 0 {
		r.depthBuf = nil
		return
	}
	if cap(r.depthBuf) < w*h {
		r.depthBuf = make([]float32, w*h)
	} else {
		r.depthBuf = r.depthBuf[:w*h]
	}
}

// Release drops the depth buffer. The renderer can still be used; the buffer
// is reallocated on the next Render with depth enabled.
func (r *Renderer) Release() {
	if r == nil {
		return
	}
	r.depthBuf = nil
}

func (r *Renderer) clearDepth() {
	for i := range r.depthBuf {
		r.depthBuf[i] = 1e9
	}
}

// Render renders a scene into the target: plain meshes in slot order, then
// instanced meshes, then point clouds.
func (r *Renderer) Render(t Target, s *Scene) {
	if r == nil || t == nil || s == nil {
		return
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}
	r.Stats = Stats{}
	r.eye = s.Camera.Position
	r.fog = s.Fog
	t.Clear(r.ClearColor)

	if r.Depth {
		r.EnableDepth(true, w, h)
		r.clearDepth()
	}

	aspect := Scalar(w) / Scalar(h)
	viewProj := Mat4Mul(s.Camera.Projection(aspect), s.Camera.View())

	s.eachMesh(func(m *Mesh) {
		if !m.Enabled {
			return
		}
		r.renderMesh(t, w, h, viewProj, m.Transform, m, m.Material.BaseColor, s.Light)
	})
	for _, in := range s.instanced {
		if in == nil || !in.Enabled {
			continue
		}
		for i := range in.transforms {
			model := Mat4Mul(in.transforms[i], in.Mesh.Transform)
			r.renderMesh(t, w, h, viewProj, model, &in.Mesh, in.colors[i], s.Light)
		}
	}
	for _, p := range s.points {
		if p == nil || !p.Enabled {
			continue
		}
		r.renderPoints(t, w, h, viewProj, p)
	}
}

// clipVertex is a vertex in clip space with its interpolated attributes.
type clipVertex struct {
	pos   Vec4
	color Color
}

func lerpClip(a, b clipVertex, k Scalar) clipVertex {
	mix := func(x, y uint8) uint8 { return uint8(Scalar(x) + (Scalar(y)-Scalar(x))*k + 0.5) }
	return clipVertex{
		pos: a.pos.Add(b.pos.Sub(a.pos).Mul(k)),
		color: Color{
			R: mix(a.color.R, b.color.R),
			G: mix(a.color.G, b.color.G),
			B: mix(a.color.B, b.color.B),
			A: mix(a.color.A, b.color.A),
		},
	}
}

// clipNear cuts a convex polygon against w >= nearW (Sutherland-Hodgman
// with a single plane). out must have room for len(in)+1 vertices.
func clipNear(in []clipVertex, out []clipVertex) []clipVertex {
	out = out[:0]
	for i := range in {
		a := in[i]
		b := in[(i+1)%len(in)]
		aIn := a.pos[3] >= nearW
		bIn := b.pos[3] >= nearW
		if aIn {
			out = append(out, a)
		}
		if aIn != bIn {
			k := (nearW - a.pos[3]) / (b.pos[3] - a.pos[3])
			out = append(out, lerpClip(a, b, k))
		}
	}
	return out
}

type screenVertex struct {
	x, y  int
	z     float32
	color Color
}

func toScreen(v clipVertex, w, h int) screenVertex {
	inv := 1 / v.pos[3]
	x, y := ndcToScreen(v.pos[0]*inv, v.pos[1]*inv, w, h)
	return screenVertex{x: x, y: y, z: v.pos[2] * inv, color: v.color}
}

func (r *Renderer) renderMesh(t Target, w, h int, viewProj, model Mat4, m *Mesh, base Color, light Light) {
	if len(m.Vertices) == 0 {
		return
	}
	if model == (Mat4{}) {
		model = Mat4Identity()
	}
	alpha := m.Material.Opacity

	if m.Primitive == Lines {
		for i := 0; i+1 < len(m.Indices); i += 2 {
			i0, i1 := int(m.Indices[i]), int(m.Indices[i+1])
			if i0 >= len(m.Vertices) || i1 >= len(m.Vertices) {
				continue
			}
			a := model.Mul4x1(m.Vertices[i0].Pos.Vec4(1))
			b := model.Mul4x1(m.Vertices[i1].Pos.Vec4(1))
			ca := clipVertex{pos: viewProj.Mul4x1(a)}
			cb := clipVertex{pos: viewProj.Mul4x1(b)}
			switch {
			case ca.pos[3] < nearW && cb.pos[3] < nearW:
				r.Stats.Clipped++
				continue
			case ca.pos[3] < nearW:
				ca = lerpClip(ca, cb, (nearW-ca.pos[3])/(cb.pos[3]-ca.pos[3]))
			case cb.pos[3] < nearW:
				cb = lerpClip(cb, ca, (nearW-cb.pos[3])/(ca.pos[3]-cb.pos[3]))
			}
			mid := a.Add(b).Mul(0.5).Vec3()
			c := r.fog.apply(base, mid.Sub(r.eye).Len()).WithAlpha(alpha)
			r.drawLine(t, w, h, toScreen(ca, w, h), toScreen(cb, w, h), c)
		}
		return
	}

	var poly [3]clipVertex
	var clipped [4]clipVertex
	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0 := int(m.Indices[i+0])
		i1 := int(m.Indices[i+1])
		i2 := int(m.Indices[i+2])
		if i0 >= len(m.Vertices) || i1 >= len(m.Vertices) || i2 >= len(m.Vertices) {
			continue
		}

		w0 := model.Mul4x1(m.Vertices[i0].Pos.Vec4(1))
		w1 := model.Mul4x1(m.Vertices[i1].Pos.Vec4(1))
		w2 := model.Mul4x1(m.Vertices[i2].Pos.Vec4(1))
		poly[0] = clipVertex{pos: viewProj.Mul4x1(w0), color: m.Vertices[i0].Color}
		poly[1] = clipVertex{pos: viewProj.Mul4x1(w1), color: m.Vertices[i1].Color}
		poly[2] = clipVertex{pos: viewProj.Mul4x1(w2), color: m.Vertices[i2].Color}

		vs := poly[:]
		if poly[0].pos[3] < nearW || poly[1].pos[3] < nearW || poly[2].pos[3] < nearW {
			vs = clipNear(poly[:], clipped[:])
			if len(vs) < 3 {
				r.Stats.Clipped++
				continue
			}
		}

		a, b, c3 := w0.Vec3(), w1.Vec3(), w2.Vec3()
		c := base
		if light.Mode == LightAmbientDirectional {
			c = c.MulScalar(lightIntensity(light, triangleNormal(a, b, c3)))
		}
		centroid := a.Add(b).Add(c3).Mul(Scalar(1) / 3)
		c = r.fog.apply(c, centroid.Sub(r.eye).Len())
		c.A = alpha

		s0 := toScreen(vs[0], w, h)
		for k := 1; k+1 < len(vs); k++ {
			r.rasterize(t, w, h, s0, toScreen(vs[k], w, h), toScreen(vs[k+1], w, h), c)
		}
	}
}

func (r *Renderer) rasterize(t Target, w, h int, v0, v1, v2 screenVertex, c Color) {
	area := edgeFn(v0.x, v0.y, v1.x, v1.y, v2.x, v2.y)
	if area == 0 {
		return
	}
	if area < 0 {
		if r.CullBack {
			r.Stats.Culled++
			return
		}
		v1, v2 = v2, v1
	}
	r.Stats.Triangles++

	switch r.Mode {
	case RenderWireframe:
		r.drawLine(t, w, h, v0, v1, c)
		r.drawLine(t, w, h, v1, v2, c)
		r.drawLine(t, w, h, v2, v0, c)
	case RenderSolidVertexColor:
		r.fillTriangle(t, w, h, v0, v1, v2, c, true)
	default:
		r.fillTriangle(t, w, h, v0, v1, v2, c, false)
	}
}

func (r *Renderer) renderPoints(t Target, w, h int, viewProj Mat4, p *Points) {
	half := p.Size / 2
	for _, pos := range p.Positions {
		world := p.Transform.Mul4x1(pos.Vec4(1))
		cv := clipVertex{pos: viewProj.Mul4x1(world)}
		if cv.pos[3] < nearW {
			continue
		}
		v := toScreen(cv, w, h)
		if v.z < -1 || v.z > 1 {
			continue
		}
		r.Stats.Points++
		c := r.fog.apply(p.Color, world.Vec3().Sub(r.eye).Len())
		for y := v.y - half; y < v.y-half+p.Size; y++ {
			for x := v.x - half; x < v.x-half+p.Size; x++ {
				if x < 0 || y < 0 || x >= w || y >= h {
					continue
				}
				if !r.depthTest(w, x, y, v.z, c.A == 0xFF) {
					continue
				}
				plot(t, x, y, c)
			}
		}
	}
}

// plot writes c, blending with the existing pixel when c is translucent and
// the target can be read back.
func plot(t Target, x, y int, c Color) {
	if c.A != 0xFF {
		if rd, ok := t.(PixelReader); ok {
			c = c.Blend(rd.At(x, y))
		}
		c.A = 0xFF
	}
	t.SetPixel(x, y, c)
}

func ndcToScreen(nx, ny float32, w, h int) (x, y int) {
	sx := (nx*0.5 + 0.5) * float32(w-1)
	sy := (1 - (ny*0.5 + 0.5)) * float32(h-1)
	return int(sx + 0.5), int(sy + 0.5)
}

func triangleNormal(a, b, c Vec3) Vec3 {
	return Normalize(b.Sub(a).Cross(c.Sub(a)))
}

func lightIntensity(l Light, n Vec3) Scalar {
	amb := Clamp01(l.Ambient)
	dir := Clamp01(l.DirAmount)
	ld := Normalize(l.Dir)
	if ld == (Vec3{}) {
		return amb
	}
	d := n.Dot(ld.Mul(-1))
	if d < 0 {
		d = 0
	}
	return Clamp01(amb + d*dir)
}

// depthTest compares z against the buffer and stores it when write is set
// and the test passes.
func (r *Renderer) depthTest(w int, x, y int, z float32, write bool) bool {
	if !r.Depth || r.depthBuf == nil {
		return true
	}
	if x < 0 || y < 0 || x >= w {
		return false
	}
	idx := y*w + x
	if idx < 0 || idx >= len(r.depthBuf) {
		return false
	}
	// NDC z is in [-1,1]. Map to [0,1].
	d := clampF32(z*0.5+0.5, 0, 1)
	if d >= r.depthBuf[idx] {
		return false
	}
	if write {
		r.depthBuf[idx] = d
	}
	return true
}

// drawLine rasterizes a segment, depth tested against solid geometry but
// not written, so later triangles can still cover it.
func (r *Renderer) drawLine(t Target, w, h int, a, b screenVertex, c Color) {
	x0, y0, x1, y1 := a.x, a.y, b.x, b.y
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	steps := max(dx, -dy)
	n := 0
	err := dx + dy
	for {
		if x0 >= 0 && y0 >= 0 && x0 < w && y0 < h {
			z := a.z
			if steps > 0 {
				z += (b.z - a.z) * float32(n) / float32(steps)
			}
			if r.depthTest(w, x0, y0, z-1e-4, false) {
				plot(t, x0, y0, c)
			}
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		n++
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (r *Renderer) fillTriangle(t Target, w, h int, v0, v1, v2 screenVertex, c Color, vertexColor bool) {
	minX, maxX := min(v0.x, v1.x, v2.x), max(v0.x, v1.x, v2.x)
	minY, maxY := min(v0.y, v1.y, v2.y), max(v0.y, v1.y, v2.y)
	minX, minY = max(minX, 0), max(minY, 0)
	maxX, maxY = min(maxX, w-1), min(maxY, h-1)
	if minX > maxX || minY > maxY {
		return
	}

	area := edgeFn(v0.x, v0.y, v1.x, v1.y, v2.x, v2.y)
	if area == 0 {
		return
	}
	invArea := 1.0 / float32(area)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(v1.x, v1.y, v2.x, v2.y, x, y)
			w1 := edgeFn(v2.x, v2.y, v0.x, v0.y, x, y)
			w2 := edgeFn(v0.x, v0.y, v1.x, v1.y, x, y)
			if (w0 | w1 | w2) < 0 {
				continue
			}
			a0 := float32(w0) * invArea
			a1 := float32(w1) * invArea
			a2 := float32(w2) * invArea
			z := a0*v0.z + a1*v1.z + a2*v2.z
			if !r.depthTest(w, x, y, z, c.A == 0xFF) {
				continue
			}
			px := c
			if vertexColor {
				px = Color{
					R: uint8(clampF32(a0*float32(v0.color.R)+a1*float32(v1.color.R)+a2*float32(v2.color.R), 0, 255)),
					G: uint8(clampF32(a0*float32(v0.color.G)+a1*float32(v1.color.G)+a2*float32(v2.color.G), 0, 255)),
					B: uint8(clampF32(a0*float32(v0.color.B)+a1*float32(v1.color.B)+a2*float32(v2.color.B), 0, 255)),
					A: c.A,
				}
			}
			plot(t, x, y, px)
		}
	}
}

func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampF32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
