package quarkgl

// CubeMesh returns an axis-aligned cube of edge length size centered on the
// origin. Faces wind counter-clockwise seen from outside.
func CubeMesh(size Scalar, c Color) Mesh {
	h := size / 2
	pos := [8]Vec3{
		{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h},
		{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h},
	}
	m := Mesh{
		Vertices: make([]Vertex, len(pos)),
		Indices: []uint16{
			4, 5, 6, 4, 6, 7, // +Z
			1, 0, 3, 1, 3, 2, // -Z
			5, 1, 2, 5, 2, 6, // +X
			0, 4, 7, 0, 7, 3, // -X
			7, 6, 2, 7, 2, 3, // +Y
			0, 1, 5, 0, 5, 4, // -Y
		},
		Material: Material{BaseColor: c, Opacity: 0xFF},
	}
	for i, p := range pos {
		m.Vertices[i] = Vertex{Pos: p, Normal: Normalize(p), Color: c}
	}
	return m
}

// PlaneMesh returns a horizontal w x d plane at y=0 facing +Y, split into
// segments x segments tiles so fog and clipping work per tile.
func PlaneMesh(w, d Scalar, segments int, c Color) Mesh {
	if segments < 1 {
		segments = 1
	}
	up := V3(0, 1, 0)
	m := Mesh{Material: Material{BaseColor: c, Opacity: 0xFF}}
	n := segments + 1
	for iz := 0; iz < n; iz++ {
		z := -d/2 + d*Scalar(iz)/Scalar(segments)
		for ix := 0; ix < n; ix++ {
			x := -w/2 + w*Scalar(ix)/Scalar(segments)
			m.Vertices = append(m.Vertices, Vertex{Pos: V3(x, 0, z), Normal: up, Color: c})
		}
	}
	for iz := 0; iz < segments; iz++ {
		for ix := 0; ix < segments; ix++ {
			a := uint16(iz*n + ix) // -x, -z corner
			b := a + 1
			cc := a + uint16(n) + 1
			dd := a + uint16(n)
			m.Indices = append(m.Indices, dd, cc, b, dd, b, a)
		}
	}
	return m
}

// GridMesh returns a line grid of size x size on the y=0 plane with
// divisions cells per side.
func GridMesh(size Scalar, divisions int, c Color) Mesh {
	if divisions < 1 {
		divisions = 1
	}
	half := size / 2
	step := size / Scalar(divisions)
	m := Mesh{
		Primitive: Lines,
		Material:  Material{BaseColor: c, Opacity: 0xFF},
	}
	for i := 0; i <= divisions; i++ {
		o := -half + Scalar(i)*step
		base := uint16(len(m.Vertices))
		m.Vertices = append(m.Vertices,
			Vertex{Pos: V3(o, 0, -half), Color: c},
			Vertex{Pos: V3(o, 0, half), Color: c},
			Vertex{Pos: V3(-half, 0, o), Color: c},
			Vertex{Pos: V3(half, 0, o), Color: c},
		)
		m.Indices = append(m.Indices, base, base+1, base+2, base+3)
	}
	return m
}
