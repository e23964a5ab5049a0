// Package skytex generates procedural sky cubemap faces so the skybox works
// without any asset files. All generators are deterministic for a given seed.
package skytex

import (
	"math"
	"math/rand"

	perlin "github.com/aquilax/go-perlin"

	"daynight-engine/core"
)

// Cubemap holds six RGBA8 faces in GL order: +X, -X, +Y, -Y, +Z, -Z.
type Cubemap struct {
	Size  int
	Faces [6][]byte
}

func newCubemap(size int) *Cubemap {
	if size < 1 {
		size = 1
	}
	c := &Cubemap{Size: size}
	for i := range c.Faces {
		c.Faces[i] = make([]byte, size*size*4)
	}
	return c
}

// CreateDay generates a daytime sky: a zenith-to-horizon gradient with
// Perlin-noise cloud wisps. Noise is sampled along the texel direction,
// so the pattern is continuous across face seams.
func CreateDay(size int, seed int64) *Cubemap {
	c := newCubemap(size)
	noise := perlin.NewPerlin(2, 2, 3, seed)

	zenith := core.Color{R: 0.17, G: 0.38, B: 0.82, A: 1}
	horizon := core.Color{R: 0.66, G: 0.80, B: 0.94, A: 1}
	cloud := core.Color{R: 0.97, G: 0.97, B: 1.0, A: 1}

	c.fill(func(dir [3]float64) core.Color {
		elevation := clamp01(dir[1])
		col := horizon.Lerp(zenith, float32(math.Pow(elevation, 0.65)))

		n := noise.Noise3D(dir[0]*2.4, dir[1]*2.4, dir[2]*2.4)
		cover := smoothstep(0.08, 0.55, n) * clamp01(dir[1]+0.15)
		return col.Lerp(cloud, float32(cover*0.8))
	})
	return c
}

// CreateNight generates a night sky: a dark indigo gradient with a faint
// Perlin haze standing in for high cloud and airglow.
func CreateNight(size int, seed int64) *Cubemap {
	c := newCubemap(size)
	noise := perlin.NewPerlin(2, 2, 3, seed)

	zenith := core.Color{R: 0.012, G: 0.02, B: 0.06, A: 1}
	horizon := core.Color{R: 0.05, G: 0.07, B: 0.14, A: 1}
	haze := core.Color{R: 0.10, G: 0.12, B: 0.22, A: 1}

	c.fill(func(dir [3]float64) core.Color {
		elevation := clamp01(dir[1])
		col := horizon.Lerp(zenith, float32(math.Pow(elevation, 0.7)))

		n := noise.Noise3D(dir[0]*1.8, dir[1]*1.8, dir[2]*1.8)
		return col.Lerp(haze, float32(clamp01(n*0.5+0.5)*0.25))
	})
	return c
}

// CreateStars generates a star field: count points scattered uniformly on
// the sphere, black elsewhere. Brighter stars bleed into their four pixel
// neighbours so they survive filtering at small cubemap sizes.
func CreateStars(size int, seed int64, count int) *Cubemap {
	c := newCubemap(size)
	rng := rand.New(rand.NewSource(seed))

	for i := 0; i < count; i++ {
		// Uniform direction on the unit sphere.
		z := rng.Float64()*2 - 1
		theta := rng.Float64() * 2 * math.Pi
		r := math.Sqrt(1 - z*z)
		dir := [3]float64{r * math.Cos(theta), z, r * math.Sin(theta)}

		brightness := 0.35 + rng.Float64()*0.65
		face, x, y := c.project(dir)
		c.addPixel(face, x, y, brightness)
		if brightness > 0.8 {
			half := brightness * 0.45
			c.addPixel(face, x+1, y, half)
			c.addPixel(face, x-1, y, half)
			c.addPixel(face, x, y+1, half)
			c.addPixel(face, x, y-1, half)
		}
	}
	return c
}

// fill evaluates shade for every texel direction of every face.
func (c *Cubemap) fill(shade func(dir [3]float64) core.Color) {
	for face := 0; face < 6; face++ {
		pixels := c.Faces[face]
		for y := 0; y < c.Size; y++ {
			for x := 0; x < c.Size; x++ {
				u := 2*(float64(x)+0.5)/float64(c.Size) - 1
				v := 2*(float64(y)+0.5)/float64(c.Size) - 1
				dir := normalize(faceDirection(face, u, v))

				col := shade(dir)
				i := (y*c.Size + x) * 4
				pixels[i] = toByte(col.R)
				pixels[i+1] = toByte(col.G)
				pixels[i+2] = toByte(col.B)
				pixels[i+3] = 255
			}
		}
	}
}

// faceDirection maps face-local (u, v) in [-1, 1] to a world direction,
// following the GL cubemap convention.
func faceDirection(face int, u, v float64) [3]float64 {
	switch face {
	case 0: // +X
		return [3]float64{1, -v, -u}
	case 1: // -X
		return [3]float64{-1, -v, u}
	case 2: // +Y
		return [3]float64{u, 1, v}
	case 3: // -Y
		return [3]float64{u, -1, -v}
	case 4: // +Z
		return [3]float64{u, -v, 1}
	default: // -Z
		return [3]float64{-u, -v, -1}
	}
}

// project is the inverse of faceDirection: world direction to (face, x, y).
func (c *Cubemap) project(dir [3]float64) (face, x, y int) {
	ax := math.Abs(dir[0])
	ay := math.Abs(dir[1])
	az := math.Abs(dir[2])

	var u, v float64
	switch {
	case ax >= ay && ax >= az:
		if dir[0] > 0 {
			face, u, v = 0, -dir[2]/ax, -dir[1]/ax
		} else {
			face, u, v = 1, dir[2]/ax, -dir[1]/ax
		}
	case ay >= az:
		if dir[1] > 0 {
			face, u, v = 2, dir[0]/ay, dir[2]/ay
		} else {
			face, u, v = 3, dir[0]/ay, -dir[2]/ay
		}
	default:
		if dir[2] > 0 {
			face, u, v = 4, dir[0]/az, -dir[1]/az
		} else {
			face, u, v = 5, -dir[0]/az, -dir[1]/az
		}
	}

	x = clampInt(int((u+1)/2*float64(c.Size)), 0, c.Size-1)
	y = clampInt(int((v+1)/2*float64(c.Size)), 0, c.Size-1)
	return face, x, y
}

// addPixel brightens one texel additively, saturating at white.
func (c *Cubemap) addPixel(face, x, y int, brightness float64) {
	if x < 0 || y < 0 || x >= c.Size || y >= c.Size {
		return
	}
	pixels := c.Faces[face]
	i := (y*c.Size + x) * 4
	add := toByte(float32(brightness))
	for ch := 0; ch < 3; ch++ {
		v := int(pixels[i+ch]) + int(add)
		if v > 255 {
			v = 255
		}
		pixels[i+ch] = byte(v)
	}
	pixels[i+3] = 255
}

func normalize(d [3]float64) [3]float64 {
	l := math.Sqrt(d[0]*d[0] + d[1]*d[1] + d[2]*d[2])
	if l == 0 {
		return d
	}
	return [3]float64{d[0] / l, d[1] / l, d[2] / l}
}

func smoothstep(edge0, edge1, x float64) float64 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := clamp01((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func toByte(v float32) byte {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return byte(v*255 + 0.5)
}
