package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"daynight-engine/core"
)

// Scene manages a collection of nodes, the active camera and the
// global lighting state (one directional sun, ambient term, fog).
type Scene struct {
	Root   *Node
	Camera *Camera
	Sun    *Light

	Ambient  core.Color
	SkyColor core.Color

	// Distance fog. Disabled while FogEnd <= FogStart.
	FogColor core.Color
	FogStart float32
	FogEnd   float32
}

// Light is a directional light source.
type Light struct {
	Direction mgl32.Vec3
	Color     core.Color
	Intensity float32
}

func NewScene() *Scene {
	return &Scene{
		Root: NewNode("Root"),
		Sun: &Light{
			Direction: mgl32.Vec3{0.5, -1, -0.5}.Normalize(),
			Color:     core.ColorWhite,
			Intensity: 1,
		},
		Ambient:  core.Color{R: 0.2, G: 0.2, B: 0.2, A: 1},
		SkyColor: core.Color{R: 0.5, G: 0.7, B: 1, A: 1},
		FogColor: core.Color{R: 0.5, G: 0.7, B: 1, A: 1},
		FogStart: 10,
	}
}

func (s *Scene) SetCamera(camera *Camera) {
	s.Camera = camera
}

func (s *Scene) AddNode(node *Node) {
	s.Root.AddChild(node)
}

func (s *Scene) RemoveNode(node *Node) {
	s.Root.RemoveChild(node)
}

// FogEnabled reports whether the fog range is usable.
func (s *Scene) FogEnabled() bool {
	return s.FogEnd > s.FogStart
}

// GetVisibleNodes returns all nodes with meshes that are visible.
func (s *Scene) GetVisibleNodes() []*Node {
	var visible []*Node

	s.Root.Traverse(func(node *Node) {
		if node.Visible && node.Mesh != nil {
			visible = append(visible, node)
		}
	})

	return visible
}

// Find returns the first node with the given name, or nil.
func (s *Scene) Find(name string) *Node {
	return s.Root.Find(name)
}
