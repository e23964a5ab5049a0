package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"daynight-engine/core"
)

// ── JSON data structures ──────────────────────────────────────────────────────

type vec3JSON struct {
	X, Y, Z float32
}

type colorJSON struct {
	R, G, B, A float32
}

type transformJSON struct {
	Position vec3JSON
	Scale    vec3JSON
	// Quaternion stored as (X, Y, Z, W)
	RotX, RotY, RotZ, RotW float32
}

type materialJSON struct {
	Name      string
	Albedo    colorJSON
	Specular  colorJSON
	Shininess float32
	Unlit     bool
}

type nodeJSON struct {
	ID        uint32
	Name      string
	Transform transformJSON
	Visible   bool
	MeshName  string // hint for re-attaching meshes; not used during load
	Material  *materialJSON
	Children  []nodeJSON
}

type lightJSON struct {
	Direction vec3JSON
	Color     colorJSON
	Intensity float32
}

type cameraJSON struct {
	Position    vec3JSON
	FOV         float32
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32
}

type sceneJSON struct {
	Version  int
	SkyColor colorJSON
	Ambient  colorJSON
	FogColor colorJSON
	FogStart float32
	FogEnd   float32
	Camera   *cameraJSON
	Sun      *lightJSON
	Nodes    []nodeJSON
}

// ── Save ──────────────────────────────────────────────────────────────────────

// SaveScene serialises the scene (transforms, sun, fog, camera, materials)
// to a JSON file at path. Mesh geometry is not stored; re-attach meshes
// after loading by matching nodeJSON.MeshName.
func SaveScene(s *Scene, path string) error {
	js := sceneJSON{
		Version:  1,
		SkyColor: colorToJSON(s.SkyColor),
		Ambient:  colorToJSON(s.Ambient),
		FogColor: colorToJSON(s.FogColor),
		FogStart: s.FogStart,
		FogEnd:   s.FogEnd,
	}

	if s.Camera != nil {
		js.Camera = &cameraJSON{
			Position:    vec3ToJSON(s.Camera.Position),
			FOV:         s.Camera.FOV,
			AspectRatio: s.Camera.AspectRatio,
			NearPlane:   s.Camera.NearPlane,
			FarPlane:    s.Camera.FarPlane,
		}
	}

	if s.Sun != nil {
		js.Sun = &lightJSON{
			Direction: vec3ToJSON(s.Sun.Direction),
			Color:     colorToJSON(s.Sun.Color),
			Intensity: s.Sun.Intensity,
		}
	}

	// Serialise the root's direct children (skip the root node itself)
	for _, child := range s.Root.Children {
		js.Nodes = append(js.Nodes, nodeToJSON(child))
	}

	data, err := json.MarshalIndent(js, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene %q: %w", path, err)
	}
	return nil
}

// ── Load ──────────────────────────────────────────────────────────────────────

// SceneData is returned by LoadScene and contains all serialised state.
// Meshes are not stored; re-attach them by iterating Nodes and matching MeshName.
type SceneData struct {
	SkyColor core.Color
	Ambient  core.Color
	FogColor core.Color
	FogStart float32
	FogEnd   float32
	Camera   *Camera
	Sun      *Light
	Nodes    []*Node // fully constructed node hierarchy (no meshes)
}

// LoadScene reads a JSON file saved by SaveScene and reconstructs the scene
// state (nodes, transforms, sun, fog, camera).  Assign meshes afterward.
func LoadScene(path string) (*SceneData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene %q: %w", path, err)
	}
	var js sceneJSON
	if err := json.Unmarshal(data, &js); err != nil {
		return nil, fmt.Errorf("unmarshal scene: %w", err)
	}

	sd := &SceneData{
		SkyColor: jsonToColor(js.SkyColor),
		Ambient:  jsonToColor(js.Ambient),
		FogColor: jsonToColor(js.FogColor),
		FogStart: js.FogStart,
		FogEnd:   js.FogEnd,
	}

	if js.Camera != nil {
		cam := NewCamera(js.Camera.FOV, js.Camera.AspectRatio, js.Camera.NearPlane, js.Camera.FarPlane)
		cam.SetPosition(jsonToVec3(js.Camera.Position))
		sd.Camera = cam
	}

	if js.Sun != nil {
		sd.Sun = &Light{
			Direction: jsonToVec3(js.Sun.Direction),
			Color:     jsonToColor(js.Sun.Color),
			Intensity: js.Sun.Intensity,
		}
	}

	for _, nj := range js.Nodes {
		sd.Nodes = append(sd.Nodes, jsonToNode(nj))
	}

	return sd, nil
}

// ApplyToScene applies SceneData to an existing Scene, replacing camera /
// sun / nodes.  Existing nodes in the scene are removed first.
func (sd *SceneData) ApplyToScene(s *Scene) {
	s.SkyColor = sd.SkyColor
	s.Ambient = sd.Ambient
	s.FogColor = sd.FogColor
	s.FogStart = sd.FogStart
	s.FogEnd = sd.FogEnd

	if sd.Camera != nil {
		s.Camera = sd.Camera
	}
	if sd.Sun != nil {
		s.Sun = sd.Sun
	}

	// Clear existing children and re-add
	s.Root.Children = s.Root.Children[:0]
	for _, n := range sd.Nodes {
		s.AddNode(n)
	}
}

// ── conversion helpers ────────────────────────────────────────────────────────

func vec3ToJSON(v mgl32.Vec3) vec3JSON   { return vec3JSON{v.X(), v.Y(), v.Z()} }
func jsonToVec3(v vec3JSON) mgl32.Vec3   { return mgl32.Vec3{v.X, v.Y, v.Z} }
func colorToJSON(c core.Color) colorJSON { return colorJSON{c.R, c.G, c.B, c.A} }
func jsonToColor(c colorJSON) core.Color { return core.Color{R: c.R, G: c.G, B: c.B, A: c.A} }

func transformToJSON(t core.Transform) transformJSON {
	return transformJSON{
		Position: vec3ToJSON(t.Position),
		Scale:    vec3ToJSON(t.Scale),
		RotX:     t.Rotation.X(),
		RotY:     t.Rotation.Y(),
		RotZ:     t.Rotation.Z(),
		RotW:     t.Rotation.W,
	}
}

func jsonToTransform(tj transformJSON) core.Transform {
	t := core.NewTransform()
	t.Position = jsonToVec3(tj.Position)
	t.Scale = jsonToVec3(tj.Scale)
	t.Rotation = mgl32.Quat{W: tj.RotW, V: mgl32.Vec3{tj.RotX, tj.RotY, tj.RotZ}}
	return t
}

func matToJSON(m *Material) *materialJSON {
	if m == nil {
		return nil
	}
	return &materialJSON{
		Name:      m.Name,
		Albedo:    colorToJSON(m.Albedo),
		Specular:  colorToJSON(m.Specular),
		Shininess: m.Shininess,
		Unlit:     m.Unlit,
	}
}

func jsonToMat(mj *materialJSON) *Material {
	if mj == nil {
		return nil
	}
	return &Material{
		Name:      mj.Name,
		Albedo:    jsonToColor(mj.Albedo),
		Specular:  jsonToColor(mj.Specular),
		Shininess: mj.Shininess,
		Unlit:     mj.Unlit,
	}
}

func nodeToJSON(n *Node) nodeJSON {
	nj := nodeJSON{
		ID:        n.Id,
		Name:      n.Name,
		Transform: transformToJSON(n.Transform),
		Visible:   n.Visible,
	}
	if n.Mesh != nil {
		nj.MeshName = n.Mesh.Name
		nj.Material = matToJSON(n.Mesh.Material)
	}
	for _, child := range n.Children {
		nj.Children = append(nj.Children, nodeToJSON(child))
	}
	return nj
}

func jsonToNode(nj nodeJSON) *Node {
	n := NewNode(nj.Name)
	n.Transform = jsonToTransform(nj.Transform)
	n.Visible = nj.Visible
	n.MarkWorldMatrixDirty()

	// Meshes are not serialised, the caller must re-attach them.
	// MeshName is kept as a hint on a transient Mesh placeholder.
	if nj.MeshName != "" {
		placeholder := NewMesh(nj.MeshName)
		placeholder.Material = jsonToMat(nj.Material)
		n.Mesh = placeholder
	}

	for _, childJSON := range nj.Children {
		n.AddChild(jsonToNode(childJSON))
	}
	return n
}
