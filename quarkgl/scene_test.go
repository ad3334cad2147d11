package quarkgl

import "testing"

func TestInstancedSlotsAreReused(t *testing.T) {
	s := CreateScene(0)
	a := s.AddInstanced(CubeMesh(1, RGB(1, 2, 3)), 4)
	b := s.AddInstanced(CubeMesh(1, RGB(1, 2, 3)), 2)
	if a != 0 || b != 1 {
		t.Fatalf("ids = %d, %d", a, b)
	}
	if n := s.Instanced(a).Count(); n != 4 {
		t.Fatalf("count = %d", n)
	}

	s.RemoveInstanced(a)
	if s.Instanced(a) != nil {
		t.Fatalf("removed instanced still reachable")
	}
	if c := s.AddInstanced(CubeMesh(1, RGB(1, 2, 3)), 8); c != a {
		t.Fatalf("slot not reused: %d", c)
	}
	if n := s.Instanced(a).Count(); n != 8 {
		t.Fatalf("count = %d", n)
	}
}

func TestSetInstanceBounds(t *testing.T) {
	s := CreateScene(0)
	id := s.AddInstanced(CubeMesh(1, RGB(9, 9, 9)), 1)
	in := s.Instanced(id)
	if in.colors[0] != RGB(9, 9, 9) || in.transforms[0] != Mat4Identity() {
		t.Fatalf("instances not initialized")
	}

	s.SetInstance(id, 5, Mat4Translate(V3(1, 0, 0)), RGB(1, 1, 1))
	s.SetInstance(id+3, 0, Mat4Translate(V3(1, 0, 0)), RGB(1, 1, 1))
	s.SetInstance(id, 0, Mat4Translate(V3(2, 0, 0)), RGB(7, 7, 7))
	if in.colors[0] != RGB(7, 7, 7) || in.transforms[0] != Mat4Translate(V3(2, 0, 0)) {
		t.Fatalf("set instance not applied")
	}
}

func TestMeshCapacity(t *testing.T) {
	s := CreateScene(1)
	if id := s.AddMesh(PlaneMesh(1, 1, 1, RGB(1, 1, 1))); id != 0 {
		t.Fatalf("id = %d", id)
	}
	if id := s.AddMesh(PlaneMesh(1, 1, 1, RGB(1, 1, 1))); id != -1 {
		t.Fatalf("full scene accepted mesh: %d", id)
	}
	s.Clear()
	if id := s.AddMesh(GridMesh(10, 10, RGB(1, 1, 1))); id != 0 {
		t.Fatalf("clear did not free slot: %d", id)
	}
}

func TestGridMeshShape(t *testing.T) {
	m := GridMesh(10, 5, RGB(0, 0, 0))
	if m.Primitive != Lines || len(m.Vertices) != 24 || len(m.Indices) != 24 {
		t.Fatalf("grid = %d vertices, %d indices", len(m.Vertices), len(m.Indices))
	}
}

func TestInstanceAccessors(t *testing.T) {
	s := CreateScene(0)
	id := s.AddInstanced(CubeMesh(1, RGB(9, 9, 9)), 2)
	s.SetInstance(id, 1, Mat4Translate(V3(0, 3, 0)), RGB(4, 5, 6))
	in := s.Instanced(id)
	if in.Transform(1) != Mat4Translate(V3(0, 3, 0)) || in.Color(1) != RGB(4, 5, 6) {
		t.Fatalf("instance 1 = %v %v", in.Transform(1), in.Color(1))
	}
	if in.Transform(2) != (Mat4{}) || in.Color(-1) != (Color{}) {
		t.Fatalf("out of range instance not zero")
	}
}

func TestRendererDepthLen(t *testing.T) {
	r := NewRenderer(4, 3, true)
	if r.DepthLen() != 12 {
		t.Fatalf("depth = %d", r.DepthLen())
	}
	r.EnableDepth(true, 5, 5)
	if r.DepthLen() != 25 {
		t.Fatalf("depth after resize = %d", r.DepthLen())
	}
	r.Release()
	if r.DepthLen() != 0 {
		t.Fatalf("depth after release = %d", r.DepthLen())
	}
}
