package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"daynight-engine/core"
)

// DrawMode controls the GL primitive type used when rendering a mesh.
type DrawMode int

const (
	DrawTriangles DrawMode = iota // gl.TRIANGLES (default)
	DrawLines                     // gl.LINES, pairs of indices form segments
	DrawPoints                    // gl.POINTS
)

// Mesh holds CPU-side vertex/index data.
// GPU upload is managed by the renderer backend.
type Mesh struct {
	Name       string
	Vertices   []core.Vertex
	Indices    []uint32
	IndexCount uint32
	DrawMode   DrawMode

	// Material holds surface shading properties. If nil, DefaultMaterial() is used.
	Material *Material

	// GPUData is set by the renderer backend (e.g. *opengl.GPUMesh).
	// Do not access directly; use the renderer's API.
	GPUData interface{}
}

func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]core.Vertex, 0),
		Indices:  make([]uint32, 0),
	}
}

func CreateMeshFromData(name string, vertices []core.Vertex, indices []uint32) *Mesh {
	return &Mesh{
		Name:       name,
		Vertices:   vertices,
		Indices:    indices,
		IndexCount: uint32(len(indices)),
	}
}

// Primitive generation helpers

func CreateTriangle() *Mesh {
	vertices := []core.Vertex{
		{Position: mgl32.Vec3{0, -0.5, 0}, Normal: mgl32.Vec3{0, 0, 1}, UV: mgl32.Vec2{0.5, 0}, Color: core.ColorRed},
		{Position: mgl32.Vec3{0.5, 0.5, 0}, Normal: mgl32.Vec3{0, 0, 1}, UV: mgl32.Vec2{1, 1}, Color: core.ColorGreen},
		{Position: mgl32.Vec3{-0.5, 0.5, 0}, Normal: mgl32.Vec3{0, 0, 1}, UV: mgl32.Vec2{0, 1}, Color: core.ColorBlue},
	}
	indices := []uint32{0, 1, 2}
	return CreateMeshFromData("Triangle", vertices, indices)
}

func CreateQuad() *Mesh {
	vertices := []core.Vertex{
		{Position: mgl32.Vec3{-0.5, -0.5, 0}, Normal: mgl32.Vec3{0, 0, 1}, UV: mgl32.Vec2{0, 0}, Color: core.ColorWhite},
		{Position: mgl32.Vec3{0.5, -0.5, 0}, Normal: mgl32.Vec3{0, 0, 1}, UV: mgl32.Vec2{1, 0}, Color: core.ColorWhite},
		{Position: mgl32.Vec3{0.5, 0.5, 0}, Normal: mgl32.Vec3{0, 0, 1}, UV: mgl32.Vec2{1, 1}, Color: core.ColorWhite},
		{Position: mgl32.Vec3{-0.5, 0.5, 0}, Normal: mgl32.Vec3{0, 0, 1}, UV: mgl32.Vec2{0, 1}, Color: core.ColorWhite},
	}
	indices := []uint32{0, 1, 2, 2, 3, 0}
	return CreateMeshFromData("Quad", vertices, indices)
}

func CreateCube(size float32) *Mesh {
	s := size / 2

	vertices := []core.Vertex{
		// Front face
		{Position: mgl32.Vec3{-s, -s, s}, Normal: mgl32.Vec3{0, 0, 1}, UV: mgl32.Vec2{0, 0}, Color: core.ColorWhite},
		{Position: mgl32.Vec3{s, -s, s}, Normal: mgl32.Vec3{0, 0, 1}, UV: mgl32.Vec2{1, 0}, Color: core.ColorWhite},
		{Position: mgl32.Vec3{s, s, s}, Normal: mgl32.Vec3{0, 0, 1}, UV: mgl32.Vec2{1, 1}, Color: core.ColorWhite},
		{Position: mgl32.Vec3{-s, s, s}, Normal: mgl32.Vec3{0, 0, 1}, UV: mgl32.Vec2{0, 1}, Color: core.ColorWhite},
		// Back face
		{Position: mgl32.Vec3{-s, -s, -s}, Normal: mgl32.Vec3{0, 0, -1}, UV: mgl32.Vec2{1, 0}, Color: core.ColorWhite},
		{Position: mgl32.Vec3{s, -s, -s}, Normal: mgl32.Vec3{0, 0, -1}, UV: mgl32.Vec2{0, 0}, Color: core.ColorWhite},
		{Position: mgl32.Vec3{s, s, -s}, Normal: mgl32.Vec3{0, 0, -1}, UV: mgl32.Vec2{0, 1}, Color: core.ColorWhite},
		{Position: mgl32.Vec3{-s, s, -s}, Normal: mgl32.Vec3{0, 0, -1}, UV: mgl32.Vec2{1, 1}, Color: core.ColorWhite},
		// Top face
		{Position: mgl32.Vec3{-s, s, -s}, Normal: mgl32.Vec3{0, 1, 0}, UV: mgl32.Vec2{0, 0}, Color: core.ColorWhite},
		{Position: mgl32.Vec3{s, s, -s}, Normal: mgl32.Vec3{0, 1, 0}, UV: mgl32.Vec2{1, 0}, Color: core.ColorWhite},
		{Position: mgl32.Vec3{s, s, s}, Normal: mgl32.Vec3{0, 1, 0}, UV: mgl32.Vec2{1, 1}, Color: core.ColorWhite},
		{Position: mgl32.Vec3{-s, s, s}, Normal: mgl32.Vec3{0, 1, 0}, UV: mgl32.Vec2{0, 1}, Color: core.ColorWhite},
		// Bottom face
		{Position: mgl32.Vec3{-s, -s, -s}, Normal: mgl32.Vec3{0, -1, 0}, UV: mgl32.Vec2{0, 1}, Color: core.ColorWhite},
		{Position: mgl32.Vec3{s, -s, -s}, Normal: mgl32.Vec3{0, -1, 0}, UV: mgl32.Vec2{1, 1}, Color: core.ColorWhite},
		{Position: mgl32.Vec3{s, -s, s}, Normal: mgl32.Vec3{0, -1, 0}, UV: mgl32.Vec2{1, 0}, Color: core.ColorWhite},
		{Position: mgl32.Vec3{-s, -s, s}, Normal: mgl32.Vec3{0, -1, 0}, UV: mgl32.Vec2{0, 0}, Color: core.ColorWhite},
		// Right face
		{Position: mgl32.Vec3{s, -s, -s}, Normal: mgl32.Vec3{1, 0, 0}, UV: mgl32.Vec2{0, 0}, Color: core.ColorWhite},
		{Position: mgl32.Vec3{s, -s, s}, Normal: mgl32.Vec3{1, 0, 0}, UV: mgl32.Vec2{1, 0}, Color: core.ColorWhite},
		{Position: mgl32.Vec3{s, s, s}, Normal: mgl32.Vec3{1, 0, 0}, UV: mgl32.Vec2{1, 1}, Color: core.ColorWhite},
		{Position: mgl32.Vec3{s, s, -s}, Normal: mgl32.Vec3{1, 0, 0}, UV: mgl32.Vec2{0, 1}, Color: core.ColorWhite},
		// Left face
		{Position: mgl32.Vec3{-s, -s, -s}, Normal: mgl32.Vec3{-1, 0, 0}, UV: mgl32.Vec2{1, 0}, Color: core.ColorWhite},
		{Position: mgl32.Vec3{-s, -s, s}, Normal: mgl32.Vec3{-1, 0, 0}, UV: mgl32.Vec2{0, 0}, Color: core.ColorWhite},
		{Position: mgl32.Vec3{-s, s, s}, Normal: mgl32.Vec3{-1, 0, 0}, UV: mgl32.Vec2{0, 1}, Color: core.ColorWhite},
		{Position: mgl32.Vec3{-s, s, -s}, Normal: mgl32.Vec3{-1, 0, 0}, UV: mgl32.Vec2{1, 1}, Color: core.ColorWhite},
	}

	indices := []uint32{
		0, 1, 2, 2, 3, 0,
		4, 5, 6, 6, 7, 4,
		8, 9, 10, 10, 11, 8,
		12, 13, 14, 14, 15, 12,
		16, 17, 18, 18, 19, 16,
		20, 21, 22, 22, 23, 20,
	}

	return CreateMeshFromData("Cube", vertices, indices)
}

// CreateBox returns an axis-aligned box with the given extents, useful for
// walls, hands and other non-uniform blocks.
func CreateBox(width, height, depth float32) *Mesh {
	m := CreateCube(1)
	for i := range m.Vertices {
		p := m.Vertices[i].Position
		m.Vertices[i].Position = mgl32.Vec3{p.X() * width, p.Y() * height, p.Z() * depth}
	}
	m.Name = "Box"
	return m
}
