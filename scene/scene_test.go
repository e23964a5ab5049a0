package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func vecNear(a, b mgl32.Vec3) bool {
	return near(a.X(), b.X()) && near(a.Y(), b.Y()) && near(a.Z(), b.Z())
}

func worldPos(n *Node) mgl32.Vec3 {
	return n.GetWorldMatrix().Col(3).Vec3()
}

func TestNodeWorldMatrixPropagation(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	parent.AddChild(child)

	parent.SetPosition(mgl32.Vec3{1, 2, 3})
	child.SetPosition(mgl32.Vec3{10, 0, 0})

	if got := worldPos(child); !vecNear(got, mgl32.Vec3{11, 2, 3}) {
		t.Errorf("child world position: expected (11,2,3), got %v", got)
	}

	// Moving the parent must invalidate the child's cached world matrix.
	parent.SetPosition(mgl32.Vec3{0, 0, 0})
	if got := worldPos(child); !vecNear(got, mgl32.Vec3{10, 0, 0}) {
		t.Errorf("child world position after parent move: expected (10,0,0), got %v", got)
	}
}

func TestNodeWorldMatrixScale(t *testing.T) {
	parent := NewNode("parent")
	parent.SetScale(mgl32.Vec3{2, 2, 2})

	child := NewNode("child")
	child.SetPosition(mgl32.Vec3{1, 0, 0})
	parent.AddChild(child)

	if got := worldPos(child); !vecNear(got, mgl32.Vec3{2, 0, 0}) {
		t.Errorf("scaled child world position: expected (2,0,0), got %v", got)
	}
}

func TestNodeReparentRefreshesWorldMatrix(t *testing.T) {
	n := NewNode("n")
	// Prime the cache while the node is still a root.
	if got := worldPos(n); !vecNear(got, mgl32.Vec3{0, 0, 0}) {
		t.Errorf("root world position: expected origin, got %v", got)
	}

	parent := NewNode("parent")
	parent.SetPosition(mgl32.Vec3{5, 0, 0})
	parent.AddChild(n)

	if got := worldPos(n); !vecNear(got, mgl32.Vec3{5, 0, 0}) {
		t.Errorf("reparented world position: expected (5,0,0), got %v", got)
	}
}

func TestNodeFindAndRemove(t *testing.T) {
	root := NewNode("root")
	a := NewNode("a")
	b := NewNode("b")
	deep := NewNode("deep")
	root.AddChild(a)
	root.AddChild(b)
	b.AddChild(deep)

	if found := root.Find("deep"); found != deep {
		t.Errorf("Find(deep): expected %v, got %v", deep, found)
	}
	if found := root.Find("missing"); found != nil {
		t.Errorf("Find(missing): expected nil, got %v", found)
	}

	root.RemoveChild(b)
	if b.Parent != nil {
		t.Errorf("removed child parent: expected nil, got %v", b.Parent)
	}
	if found := root.Find("deep"); found != nil {
		t.Errorf("Find after remove: expected nil, got %v", found)
	}
}

func TestSceneVisibleNodes(t *testing.T) {
	s := NewScene()

	shown := NewNode("shown")
	shown.Mesh = CreateCube(1)
	s.AddNode(shown)

	hidden := NewNode("hidden")
	hidden.Mesh = CreateCube(1)
	hidden.Visible = false
	s.AddNode(hidden)

	empty := NewNode("empty")
	s.AddNode(empty)

	visible := s.GetVisibleNodes()
	if len(visible) != 1 {
		t.Fatalf("visible count: expected 1, got %d", len(visible))
	}
	if visible[0] != shown {
		t.Errorf("visible node: expected %q, got %q", shown.Name, visible[0].Name)
	}
}

func TestSceneFogEnabled(t *testing.T) {
	s := NewScene()
	if s.FogEnabled() {
		t.Errorf("FogEnabled with default range: expected false, got true")
	}
	s.FogEnd = 100
	if !s.FogEnabled() {
		t.Errorf("FogEnabled with end 100: expected true, got false")
	}
	s.FogStart = 100
	if s.FogEnabled() {
		t.Errorf("FogEnabled with equal start/end: expected false, got true")
	}
}

func TestCameraLookAt(t *testing.T) {
	cam := NewCamera(mgl32.DegToRad(60), 16.0/9.0, 0.1, 1000)
	cam.SetPosition(mgl32.Vec3{0, 0, 5})
	cam.LookAt(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})

	if got := cam.GetForward(); !vecNear(got, mgl32.Vec3{0, 0, -1}) {
		t.Errorf("camera forward: expected (0,0,-1), got %v", got)
	}

	// The target should land on the negative view-space Z axis.
	viewTarget := cam.GetViewMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if !vecNear(viewTarget.Vec3(), mgl32.Vec3{0, 0, -5}) {
		t.Errorf("view-space target: expected (0,0,-5), got %v", viewTarget.Vec3())
	}

	cam.SetPosition(mgl32.Vec3{5, 0, 0})
	cam.LookAt(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	viewTarget = cam.GetViewMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if !vecNear(viewTarget.Vec3(), mgl32.Vec3{0, 0, -5}) {
		t.Errorf("view-space target from +X: expected (0,0,-5), got %v", viewTarget.Vec3())
	}
}

func TestOrbitCameraClampsAndZooms(t *testing.T) {
	cam := NewOrbitCamera(mgl32.Vec3{0, 0, 0}, 8, mgl32.DegToRad(60), 16.0/9.0)

	if d := cam.Position.Len(); !near(d, 8) {
		t.Errorf("orbit distance: expected 8, got %v", d)
	}

	cam.Orbit(0, 10)
	if cam.Pitch != 1.5 {
		t.Errorf("pitch clamp: expected 1.5, got %v", cam.Pitch)
	}

	cam.Zoom(-100)
	if cam.Distance != 0.1 {
		t.Errorf("zoom clamp: expected 0.1, got %v", cam.Distance)
	}
}

func TestPrimitiveIndexBounds(t *testing.T) {
	meshes := []*Mesh{
		CreateTriangle(),
		CreateQuad(),
		CreateCube(2),
		CreateBox(1, 2, 3),
		CreateSphere(1, 8, 6),
		CreateCylinder(1, 2, 8),
		CreateCone(1, 2, 8),
		CreatePlane(10, 10, 2),
		CreatePyramid(1, 2),
	}

	for _, m := range meshes {
		if len(m.Indices) == 0 || len(m.Indices)%3 != 0 {
			t.Errorf("%s: index count %d is not a positive multiple of 3", m.Name, len(m.Indices))
		}
		if m.IndexCount != uint32(len(m.Indices)) {
			t.Errorf("%s: IndexCount %d, expected %d", m.Name, m.IndexCount, len(m.Indices))
		}
		for _, idx := range m.Indices {
			if idx >= uint32(len(m.Vertices)) {
				t.Errorf("%s: index %d out of range (%d vertices)", m.Name, idx, len(m.Vertices))
				break
			}
		}
	}
}

func TestCreateBoxExtents(t *testing.T) {
	m := CreateBox(2, 4, 6)
	var maxX, maxY, maxZ float32
	for _, v := range m.Vertices {
		p := v.Position
		if p.X() > maxX {
			maxX = p.X()
		}
		if p.Y() > maxY {
			maxY = p.Y()
		}
		if p.Z() > maxZ {
			maxZ = p.Z()
		}
	}
	if !near(maxX, 1) || !near(maxY, 2) || !near(maxZ, 3) {
		t.Errorf("box max extent: expected (1,2,3), got (%v,%v,%v)", maxX, maxY, maxZ)
	}
}

func TestSphereNormalsAreUnit(t *testing.T) {
	m := CreateSphere(3, 12, 8)
	for i := 0; i < len(m.Vertices); i += 7 {
		if l := m.Vertices[i].Normal.Len(); !near(l, 1) {
			t.Errorf("vertex %d normal length: expected 1, got %v", i, l)
			break
		}
	}
}
