package quarkgl

// Material is a minimal surface description.
type Material struct {
	BaseColor Color
	Opacity   uint8 // 0..255. 255 means opaque.
}

// LightMode defines minimal lighting options.
type LightMode uint8

const (
	LightOff LightMode = iota
	LightAmbientDirectional
)

// Light is a minimal light setup.
type Light struct {
	Mode      LightMode
	Ambient   Scalar // 0..1
	Dir       Vec3   // direction *towards* the scene
	DirAmount Scalar // 0..1
}

// Fog fades geometry linearly into Color between Near and Far, measured as
// distance from the camera.
type Fog struct {
	Enabled bool
	Color   Color
	Near    Scalar
	Far     Scalar
}

func (f Fog) apply(c Color, dist Scalar) Color {
	if !f.Enabled || f.Far <= f.Near || dist <= f.Near {
		return c
	}
	k := Clamp01((dist - f.Near) / (f.Far - f.Near))
	lerp := func(a, b uint8) uint8 { return uint8(Scalar(a) + (Scalar(b)-Scalar(a))*k + 0.5) }
	return Color{R: lerp(c.R, f.Color.R), G: lerp(c.G, f.Color.G), B: lerp(c.B, f.Color.B), A: c.A}
}

// CameraType selects camera projection.
type CameraType uint8

const (
	CameraPerspective CameraType = iota
	CameraOrtho
)

// Camera describes the viewing transform.
type Camera struct {
	Type CameraType

	Position Vec3
	Target   Vec3
	Up       Vec3

	// Perspective.
	FOVYRad Scalar

	// Orthographic (half-height).
	OrthoSize Scalar

	Near Scalar
	Far  Scalar
}

// View returns the camera view matrix.
func (c Camera) View() Mat4 {
	up := c.Up
	if up == (Vec3{}) {
		up = V3(0, 1, 0)
	}
	return Mat4LookAt(c.Position, c.Target, up)
}

// Projection returns the projection matrix for a target aspect.
func (c Camera) Projection(aspect Scalar) Mat4 {
	switch c.Type {
	case CameraOrtho:
		size := c.OrthoSize
		if size == 0 {
			size = 1
		}
		right := size * aspect
		return Mat4Ortho(-right, right, -size, size, c.Near, c.Far)
	default:
		fov := c.FOVYRad
		if fov == 0 {
			fov = Scalar(1.0)
		}
		return Mat4Perspective(fov, aspect, c.Near, c.Far)
	}
}

// Vertex is a mesh vertex.
type Vertex struct {
	Pos    Vec3
	Normal Vec3
	Color  Color
}

// Primitive selects how a mesh's index list is read.
type Primitive uint8

const (
	Triangles Primitive = iota // three indices per triangle
	Lines                      // two indices per segment
)

// Mesh is an indexed mesh with an object transform.
type Mesh struct {
	Enabled bool

	Primitive Primitive
	Vertices  []Vertex
	Indices   []uint16

	Transform Mat4
	Material  Material
}

// Instanced draws one mesh many times, each copy with its own transform and
// color. The instance color replaces the material color.
type Instanced struct {
	Enabled bool
	Mesh    Mesh

	transforms []Mat4
	colors     []Color
}

// Count is the number of instances.
func (in *Instanced) Count() int { return len(in.transforms) }

// Transform returns the transform of instance i, or the zero matrix when i
// is out of range.
func (in *Instanced) Transform(i int) Mat4 {
	if i < 0 || i >= len(in.transforms) {
		return Mat4{}
	}
	return in.transforms[i]
}

// Color returns the color of instance i.
func (in *Instanced) Color(i int) Color {
	if i < 0 || i >= len(in.colors) {
		return Color{}
	}
	return in.colors[i]
}

// Points is a cloud of square sprites of Size pixels.
type Points struct {
	Enabled   bool
	Positions []Vec3
	Color     Color // A below 255 blends with what is already drawn
	Size      int
	Transform Mat4
}

// Scene is a collection of objects to render.
type Scene struct {
	Camera Camera
	Light  Light
	Fog    Fog

	meshes []Mesh
	alive  []bool

	instanced []*Instanced
	points    []*Points
}

// CreateScene allocates a scene with a fixed mesh capacity. Instanced meshes
// and point clouds are not bounded by it.
func CreateScene(maxMeshes int) *Scene {
	if maxMeshes < 0 {
		maxMeshes = 0
	}
	return &Scene{
		Camera: Camera{
			Type:      CameraPerspective,
			Position:  V3(0, 0, 3),
			Target:    V3(0, 0, 0),
			Up:        V3(0, 1, 0),
			FOVYRad:   Scalar(1.0),
			Near:      Scalar(0.05),
			Far:       Scalar(100),
			OrthoSize: Scalar(1),
		},
		Light: Light{
			Mode:      LightAmbientDirectional,
			Ambient:   Scalar(0.25),
			Dir:       Normalize(V3(1, 1, 1)),
			DirAmount: Scalar(0.75),
		},
		meshes: make([]Mesh, maxMeshes),
		alive:  make([]bool, maxMeshes),
	}
}

func normalizeMesh(m *Mesh) {
	if m.Transform == (Mat4{}) {
		m.Transform = Mat4Identity()
	}
	if m.Material.Opacity == 0 {
		m.Material.Opacity = 0xFF
	}
	if m.Material.BaseColor == (Color{}) {
		m.Material.BaseColor = RGB(0xCC, 0xCC, 0xCC)
	}
}

// AddMesh adds a mesh to the scene and returns its id or -1 if full.
func (s *Scene) AddMesh(m Mesh) int {
	if s == nil {
		return -1
	}
	for i := range s.meshes {
		if s.alive[i] {
			continue
		}
		normalizeMesh(&m)
		m.Enabled = true
		s.meshes[i] = m
		s.alive[i] = true
		return i
	}
	return -1
}

// RemoveMesh removes a mesh by id.
func (s *Scene) RemoveMesh(id int) {
	if s == nil || id < 0 || id >= len(s.meshes) {
		return
	}
	s.alive[id] = false
	s.meshes[id] = Mesh{}
}

// SetMeshEnabled enables/disables a mesh by id.
func (s *Scene) SetMeshEnabled(id int, enabled bool) {
	if s == nil || id < 0 || id >= len(s.meshes) || !s.alive[id] {
		return
	}
	s.meshes[id].Enabled = enabled
}

// UpdateMeshTransform updates a mesh transform by id.
func (s *Scene) UpdateMeshTransform(id int, m Mat4) {
	if s == nil || id < 0 || id >= len(s.meshes) || !s.alive[id] {
		return
	}
	s.meshes[id].Transform = m
}

// AddInstanced adds count copies of m. All instances start at the identity
// transform with the material color. It returns the instanced id.
func (s *Scene) AddInstanced(m Mesh, count int) int {
	if s == nil {
		return -1
	}
	if count < 0 {
		count = 0
	}
	normalizeMesh(&m)
	m.Enabled = true
	in := &Instanced{
		Enabled:    true,
		Mesh:       m,
		transforms: make([]Mat4, count),
		colors:     make([]Color, count),
	}
	for i := range in.transforms {
		in.transforms[i] = Mat4Identity()
		in.colors[i] = m.Material.BaseColor
	}
	for i, old := range s.instanced {
		if old == nil {
			s.instanced[i] = in
			return i
		}
	}
	s.instanced = append(s.instanced, in)
	return len(s.instanced) - 1
}

// Instanced returns the instanced mesh with the given id, or nil.
func (s *Scene) Instanced(id int) *Instanced {
	if s == nil || id < 0 || id >= len(s.instanced) {
		return nil
	}
	return s.instanced[id]
}

// SetInstance sets the transform and color of instance i.
func (s *Scene) SetInstance(id, i int, m Mat4, c Color) {
	in := s.Instanced(id)
	if in == nil || i < 0 || i >= len(in.transforms) {
		return
	}
	in.transforms[i] = m
	in.colors[i] = c
}

// RemoveInstanced releases an instanced mesh and its buffers.
func (s *Scene) RemoveInstanced(id int) {
	if s.Instanced(id) == nil {
		return
	}
	s.instanced[id] = nil
}

// AddPoints adds a point cloud and returns its id.
func (s *Scene) AddPoints(p Points) int {
	if s == nil {
		return -1
	}
	if p.Transform == (Mat4{}) {
		p.Transform = Mat4Identity()
	}
	if p.Size <= 0 {
		p.Size = 1
	}
	p.Enabled = true
	s.points = append(s.points, &p)
	return len(s.points) - 1
}

// UpdatePointsTransform sets the world transform of a point cloud.
func (s *Scene) UpdatePointsTransform(id int, m Mat4) {
	if s == nil || id < 0 || id >= len(s.points) {
		return
	}
	s.points[id].Transform = m
}

// Clear drops every object while keeping camera and light.
func (s *Scene) Clear() {
	if s == nil {
		return
	}
	for i := range s.meshes {
		s.alive[i] = false
		s.meshes[i] = Mesh{}
	}
	s.instanced = nil
	s.points = nil
}

func (s *Scene) eachMesh(fn func(m *Mesh)) {
	for i := range s.meshes {
		if !s.alive[i] {
			continue
		}
		fn(&s.meshes[i])
	}
}
