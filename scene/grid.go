package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"daynight-engine/core"
)

// CreateGrid builds a flat grid mesh rendered as GL_LINES. size is the total
// world-space extent (the grid spans -size/2 to +size/2) and divisions is the
// number of cells along each axis. The X-axis centre line is red, the Z-axis
// centre line is blue, and all other lines are dark gray.
func CreateGrid(size float32, divisions int) *Mesh {
	if divisions < 1 {
		divisions = 1
	}

	half := size / 2.0
	step := size / float32(divisions)
	up := mgl32.Vec3{0, 1, 0}

	gray := core.Color{R: 0.35, G: 0.35, B: 0.35, A: 1}
	red := core.Color{R: 0.8, G: 0.15, B: 0.15, A: 1}  // X axis
	blue := core.Color{R: 0.15, G: 0.35, B: 0.9, A: 1} // Z axis

	var vertices []core.Vertex
	var indices []uint32

	addLine := func(a, b mgl32.Vec3, c core.Color) {
		base := uint32(len(vertices))
		vertices = append(vertices,
			core.Vertex{Position: a, Normal: up, Color: c},
			core.Vertex{Position: b, Normal: up, Color: c},
		)
		indices = append(indices, base, base+1)
	}

	// Lines parallel to Z (vary X)
	for i := 0; i <= divisions; i++ {
		x := -half + float32(i)*step
		c := gray
		if i == divisions/2 {
			c = blue // Z axis at x=0
		}
		addLine(mgl32.Vec3{x, 0, -half}, mgl32.Vec3{x, 0, half}, c)
	}

	// Lines parallel to X (vary Z)
	for i := 0; i <= divisions; i++ {
		z := -half + float32(i)*step
		c := gray
		if i == divisions/2 {
			c = red // X axis at z=0
		}
		addLine(mgl32.Vec3{-half, 0, z}, mgl32.Vec3{half, 0, z}, c)
	}

	m := CreateMeshFromData("Grid", vertices, indices)
	m.DrawMode = DrawLines

	unlitMat := DefaultMaterial()
	unlitMat.Name = "GridMaterial"
	unlitMat.Unlit = true
	m.Material = unlitMat

	return m
}
