package scene

import (
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"daynight-engine/core"
)

func buildTestScene() *Scene {
	s := NewScene()
	s.Ambient = core.Color{R: 0.25, G: 0.25, B: 0.5, A: 1}
	s.SkyColor = core.Color{R: 0, G: 0.5, B: 1, A: 1}
	s.FogColor = core.Color{R: 0.5, G: 0.5, B: 0.5, A: 1}
	s.FogStart = 5
	s.FogEnd = 150

	cam := NewCamera(mgl32.DegToRad(60), 1.5, 0.25, 500)
	cam.SetPosition(mgl32.Vec3{0, 2, 10})
	s.SetCamera(cam)

	s.Sun = &Light{
		Direction: mgl32.Vec3{0, -1, 0},
		Color:     core.Color{R: 1, G: 0.5, B: 0.25, A: 1},
		Intensity: 0.75,
	}

	tower := NewNode("Tower")
	tower.SetPosition(mgl32.Vec3{4, 0, -2})
	tower.SetScale(mgl32.Vec3{1, 2, 1})
	tower.Mesh = CreateCube(1)
	tower.Mesh.Material = NewMaterial("brick", core.Color{R: 0.75, G: 0.25, B: 0.25, A: 1})

	face := NewNode("Face")
	face.SetPosition(mgl32.Vec3{0, 3, 0.5})
	face.SetRotation(mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0}))
	tower.AddChild(face)

	s.AddNode(tower)
	return s
}

func TestSceneSaveLoadRoundTrip(t *testing.T) {
	src := buildTestScene()
	path := filepath.Join(t.TempDir(), "scene.json")

	if err := SaveScene(src, path); err != nil {
		t.Fatalf("SaveScene: %v", err)
	}

	data, err := LoadScene(path)
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}

	dst := NewScene()
	data.ApplyToScene(dst)

	if dst.Ambient != src.Ambient {
		t.Errorf("ambient: expected %v, got %v", src.Ambient, dst.Ambient)
	}
	if dst.FogColor != src.FogColor {
		t.Errorf("fog color: expected %v, got %v", src.FogColor, dst.FogColor)
	}
	if dst.FogStart != 5 || dst.FogEnd != 150 {
		t.Errorf("fog range: expected (5,150), got (%v,%v)", dst.FogStart, dst.FogEnd)
	}

	if dst.Camera == nil {
		t.Fatal("camera: expected non-nil after load")
	}
	if !near(dst.Camera.FOV, src.Camera.FOV) {
		t.Errorf("camera FOV: expected %v, got %v", src.Camera.FOV, dst.Camera.FOV)
	}
	if !vecNear(dst.Camera.Position, src.Camera.Position) {
		t.Errorf("camera position: expected %v, got %v", src.Camera.Position, dst.Camera.Position)
	}

	if dst.Sun == nil {
		t.Fatal("sun: expected non-nil after load")
	}
	if !vecNear(dst.Sun.Direction, src.Sun.Direction) {
		t.Errorf("sun direction: expected %v, got %v", src.Sun.Direction, dst.Sun.Direction)
	}
	if dst.Sun.Intensity != 0.75 {
		t.Errorf("sun intensity: expected 0.75, got %v", dst.Sun.Intensity)
	}

	if len(dst.Root.Children) != 1 {
		t.Fatalf("node count: expected 1, got %d", len(dst.Root.Children))
	}
	tower := dst.Root.Children[0]
	if tower.Name != "Tower" {
		t.Errorf("node name: expected Tower, got %q", tower.Name)
	}
	if !vecNear(tower.Transform.Position, mgl32.Vec3{4, 0, -2}) {
		t.Errorf("tower position: expected (4,0,-2), got %v", tower.Transform.Position)
	}
	if !vecNear(tower.Transform.Scale, mgl32.Vec3{1, 2, 1}) {
		t.Errorf("tower scale: expected (1,2,1), got %v", tower.Transform.Scale)
	}

	if tower.Mesh == nil {
		t.Fatal("tower mesh placeholder: expected non-nil")
	}
	if tower.Mesh.Name != "Cube" {
		t.Errorf("mesh name hint: expected Cube, got %q", tower.Mesh.Name)
	}
	if tower.Mesh.Material == nil || tower.Mesh.Material.Name != "brick" {
		t.Errorf("material: expected brick, got %+v", tower.Mesh.Material)
	}
	if got := tower.Mesh.Material.Albedo; got != (core.Color{R: 0.75, G: 0.25, B: 0.25, A: 1}) {
		t.Errorf("material albedo: expected (0.75,0.25,0.25,1), got %v", got)
	}

	if len(tower.Children) != 1 || tower.Children[0].Name != "Face" {
		t.Fatalf("child node: expected one child named Face, got %v", tower.Children)
	}
	face := tower.Children[0]

	srcFace := src.Root.Children[0].Children[0]
	srcRot := srcFace.Transform.Rotation
	gotRot := face.Transform.Rotation
	if !near(gotRot.W, srcRot.W) || !near(gotRot.X(), srcRot.X()) ||
		!near(gotRot.Y(), srcRot.Y()) || !near(gotRot.Z(), srcRot.Z()) {
		t.Errorf("face rotation: expected %v, got %v", srcRot, gotRot)
	}

	// The loaded hierarchy must produce working world matrices.
	got := worldPos(face)
	want := worldPos(srcFace)
	if !vecNear(got, want) {
		t.Errorf("face world position: expected %v, got %v", want, got)
	}
}

func TestLoadSceneMissingFile(t *testing.T) {
	if _, err := LoadScene(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("LoadScene on missing file: expected error, got nil")
	}
}
