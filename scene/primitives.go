package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"daynight-engine/core"
)

var primitiveGray = core.Color{R: 0.8, G: 0.8, B: 0.8, A: 1}

// CreateSphere generates a UV-sphere mesh.
func CreateSphere(radius float32, segments, rings int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}

	var vertices []core.Vertex
	var indices []uint32

	for ring := 0; ring <= rings; ring++ {
		phi := float64(ring) * math.Pi / float64(rings)
		sinPhi := float32(math.Sin(phi))
		cosPhi := float32(math.Cos(phi))

		for seg := 0; seg <= segments; seg++ {
			theta := float64(seg) * 2.0 * math.Pi / float64(segments)
			sinTheta := float32(math.Sin(theta))
			cosTheta := float32(math.Cos(theta))

			normal := mgl32.Vec3{sinPhi * cosTheta, cosPhi, sinPhi * sinTheta}
			position := normal.Mul(radius)
			uv := mgl32.Vec2{float32(seg) / float32(segments), float32(ring) / float32(rings)}

			vertices = append(vertices, core.Vertex{
				Position: position,
				Normal:   normal,
				UV:       uv,
				Color:    primitiveGray,
			})
		}
	}

	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			current := uint32(ring*(segments+1) + seg)
			next := current + uint32(segments+1)

			indices = append(indices, current, next, current+1)
			indices = append(indices, current+1, next, next+1)
		}
	}

	return CreateMeshFromData("Sphere", vertices, indices)
}

// CreateCylinder generates a capped cylinder mesh.
func CreateCylinder(radius, height float32, segments int) *Mesh {
	if segments < 3 {
		segments = 3
	}

	var vertices []core.Vertex
	var indices []uint32
	halfHeight := height / 2.0

	for i := 0; i <= segments; i++ {
		theta := float64(i) * 2.0 * math.Pi / float64(segments)
		cosT := float32(math.Cos(theta))
		sinT := float32(math.Sin(theta))
		normal := mgl32.Vec3{cosT, 0, sinT}
		u := float32(i) / float32(segments)

		vertices = append(vertices, core.Vertex{
			Position: mgl32.Vec3{cosT * radius, -halfHeight, sinT * radius},
			Normal:   normal,
			UV:       mgl32.Vec2{u, 0},
			Color:    primitiveGray,
		})
		vertices = append(vertices, core.Vertex{
			Position: mgl32.Vec3{cosT * radius, halfHeight, sinT * radius},
			Normal:   normal,
			UV:       mgl32.Vec2{u, 1},
			Color:    primitiveGray,
		})
	}

	for i := 0; i < segments; i++ {
		base := uint32(i * 2)
		indices = append(indices, base, base+1, base+2)
		indices = append(indices, base+2, base+1, base+3)
	}

	up := mgl32.Vec3{0, 1, 0}
	down := mgl32.Vec3{0, -1, 0}

	topCenter := uint32(len(vertices))
	vertices = append(vertices, core.Vertex{
		Position: mgl32.Vec3{0, halfHeight, 0},
		Normal:   up,
		UV:       mgl32.Vec2{0.5, 0.5},
		Color:    primitiveGray,
	})

	for i := 0; i < segments; i++ {
		theta := float64(i) * 2.0 * math.Pi / float64(segments)
		nextTheta := float64(i+1) * 2.0 * math.Pi / float64(segments)
		cosT := float32(math.Cos(theta))
		sinT := float32(math.Sin(theta))
		cosN := float32(math.Cos(nextTheta))
		sinN := float32(math.Sin(nextTheta))

		v1 := uint32(len(vertices))
		vertices = append(vertices, core.Vertex{
			Position: mgl32.Vec3{cosT * radius, halfHeight, sinT * radius},
			Normal:   up,
			UV:       mgl32.Vec2{cosT*0.5 + 0.5, sinT*0.5 + 0.5},
			Color:    primitiveGray,
		})
		v2 := uint32(len(vertices))
		vertices = append(vertices, core.Vertex{
			Position: mgl32.Vec3{cosN * radius, halfHeight, sinN * radius},
			Normal:   up,
			UV:       mgl32.Vec2{cosN*0.5 + 0.5, sinN*0.5 + 0.5},
			Color:    primitiveGray,
		})
		indices = append(indices, topCenter, v1, v2)
	}

	botCenter := uint32(len(vertices))
	vertices = append(vertices, core.Vertex{
		Position: mgl32.Vec3{0, -halfHeight, 0},
		Normal:   down,
		UV:       mgl32.Vec2{0.5, 0.5},
		Color:    primitiveGray,
	})

	for i := 0; i < segments; i++ {
		theta := float64(i) * 2.0 * math.Pi / float64(segments)
		nextTheta := float64(i+1) * 2.0 * math.Pi / float64(segments)
		cosT := float32(math.Cos(theta))
		sinT := float32(math.Sin(theta))
		cosN := float32(math.Cos(nextTheta))
		sinN := float32(math.Sin(nextTheta))

		v1 := uint32(len(vertices))
		vertices = append(vertices, core.Vertex{
			Position: mgl32.Vec3{cosT * radius, -halfHeight, sinT * radius},
			Normal:   down,
			UV:       mgl32.Vec2{cosT*0.5 + 0.5, sinT*0.5 + 0.5},
			Color:    primitiveGray,
		})
		v2 := uint32(len(vertices))
		vertices = append(vertices, core.Vertex{
			Position: mgl32.Vec3{cosN * radius, -halfHeight, sinN * radius},
			Normal:   down,
			UV:       mgl32.Vec2{cosN*0.5 + 0.5, sinN*0.5 + 0.5},
			Color:    primitiveGray,
		})
		indices = append(indices, botCenter, v2, v1)
	}

	return CreateMeshFromData("Cylinder", vertices, indices)
}

// CreateCone generates a cone mesh.
func CreateCone(radius, height float32, segments int) *Mesh {
	if segments < 3 {
		segments = 3
	}

	var vertices []core.Vertex
	var indices []uint32
	halfHeight := height / 2.0

	tipIdx := uint32(0)
	vertices = append(vertices, core.Vertex{
		Position: mgl32.Vec3{0, halfHeight, 0},
		Normal:   mgl32.Vec3{0, 1, 0},
		UV:       mgl32.Vec2{0.5, 0},
		Color:    primitiveGray,
	})

	slopeAngle := math.Atan2(float64(radius), float64(height))
	ny := float32(math.Cos(slopeAngle))
	nr := float32(math.Sin(slopeAngle))

	for i := 0; i <= segments; i++ {
		theta := float64(i) * 2.0 * math.Pi / float64(segments)
		cosT := float32(math.Cos(theta))
		sinT := float32(math.Sin(theta))

		normal := mgl32.Vec3{cosT * nr, ny, sinT * nr}.Normalize()

		vertices = append(vertices, core.Vertex{
			Position: mgl32.Vec3{cosT * radius, -halfHeight, sinT * radius},
			Normal:   normal,
			UV:       mgl32.Vec2{float32(i) / float32(segments), 1},
			Color:    primitiveGray,
		})
	}

	for i := 0; i < segments; i++ {
		indices = append(indices, tipIdx, uint32(i+1), uint32(i+2))
	}

	down := mgl32.Vec3{0, -1, 0}
	botCenter := uint32(len(vertices))
	vertices = append(vertices, core.Vertex{
		Position: mgl32.Vec3{0, -halfHeight, 0},
		Normal:   down,
		UV:       mgl32.Vec2{0.5, 0.5},
		Color:    primitiveGray,
	})

	for i := 0; i < segments; i++ {
		theta := float64(i) * 2.0 * math.Pi / float64(segments)
		nextTheta := float64(i+1) * 2.0 * math.Pi / float64(segments)
		cosT := float32(math.Cos(theta))
		sinT := float32(math.Sin(theta))
		cosN := float32(math.Cos(nextTheta))
		sinN := float32(math.Sin(nextTheta))

		v1 := uint32(len(vertices))
		vertices = append(vertices, core.Vertex{
			Position: mgl32.Vec3{cosT * radius, -halfHeight, sinT * radius},
			Normal:   down,
			UV:       mgl32.Vec2{cosT*0.5 + 0.5, sinT*0.5 + 0.5},
			Color:    primitiveGray,
		})
		v2 := uint32(len(vertices))
		vertices = append(vertices, core.Vertex{
			Position: mgl32.Vec3{cosN * radius, -halfHeight, sinN * radius},
			Normal:   down,
			UV:       mgl32.Vec2{cosN*0.5 + 0.5, sinN*0.5 + 0.5},
			Color:    primitiveGray,
		})
		indices = append(indices, botCenter, v2, v1)
	}

	return CreateMeshFromData("Cone", vertices, indices)
}

// CreatePlane generates a flat plane mesh on the XZ axes, facing up.
func CreatePlane(width, depth float32, subdivisions int) *Mesh {
	if subdivisions < 1 {
		subdivisions = 1
	}

	var vertices []core.Vertex
	var indices []uint32

	halfW := width / 2.0
	halfD := depth / 2.0
	up := mgl32.Vec3{0, 1, 0}

	for z := 0; z <= subdivisions; z++ {
		for x := 0; x <= subdivisions; x++ {
			u := float32(x) / float32(subdivisions)
			v := float32(z) / float32(subdivisions)

			vertices = append(vertices, core.Vertex{
				Position: mgl32.Vec3{-halfW + u*width, 0, -halfD + v*depth},
				Normal:   up,
				UV:       mgl32.Vec2{u, v},
				Color:    primitiveGray,
			})
		}
	}

	for z := 0; z < subdivisions; z++ {
		for x := 0; x < subdivisions; x++ {
			topLeft := uint32(z*(subdivisions+1) + x)
			topRight := topLeft + 1
			bottomLeft := topLeft + uint32(subdivisions+1)
			bottomRight := bottomLeft + 1

			indices = append(indices, topLeft, bottomLeft, topRight)
			indices = append(indices, topRight, bottomLeft, bottomRight)
		}
	}

	return CreateMeshFromData("Plane", vertices, indices)
}

// CreatePyramid generates a pyramid mesh with a square base.
func CreatePyramid(width, height float32) *Mesh {
	var vertices []core.Vertex
	var indices []uint32

	halfW := width / 2.0
	halfH := height / 2.0
	down := mgl32.Vec3{0, -1, 0}
	tip := mgl32.Vec3{0, halfH, 0}

	base := [4]mgl32.Vec3{
		{-halfW, -halfH, -halfW},
		{halfW, -halfH, -halfW},
		{halfW, -halfH, halfW},
		{-halfW, -halfH, halfW},
	}
	baseUV := [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	for i := 0; i < 4; i++ {
		vertices = append(vertices, core.Vertex{
			Position: base[i],
			Normal:   down,
			UV:       baseUV[i],
			Color:    primitiveGray,
		})
	}
	indices = append(indices, 0, 2, 1, 0, 3, 2)

	// Side faces, one normal per face.
	sideNormals := [4]mgl32.Vec3{
		mgl32.Vec3{0, 0.5, -1}.Normalize(),
		mgl32.Vec3{1, 0.5, 0}.Normalize(),
		mgl32.Vec3{0, 0.5, 1}.Normalize(),
		mgl32.Vec3{-1, 0.5, 0}.Normalize(),
	}

	for i := 0; i < 4; i++ {
		a := base[i]
		b := base[(i+1)%4]
		n := sideNormals[i]

		v0 := uint32(len(vertices))
		vertices = append(vertices,
			core.Vertex{Position: a, Normal: n, UV: mgl32.Vec2{0, 0}, Color: primitiveGray},
			core.Vertex{Position: b, Normal: n, UV: mgl32.Vec2{1, 0}, Color: primitiveGray},
			core.Vertex{Position: tip, Normal: n, UV: mgl32.Vec2{0.5, 1}, Color: primitiveGray},
		)
		indices = append(indices, v0, v0+2, v0+1)
	}

	return CreateMeshFromData("Pyramid", vertices, indices)
}
