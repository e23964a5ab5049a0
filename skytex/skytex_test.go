package skytex

import (
	"bytes"
	"testing"
)

func TestFacesHaveExpectedSize(t *testing.T) {
	c := CreateDay(16, 1)
	if c.Size != 16 {
		t.Errorf("size: expected 16, got %d", c.Size)
	}
	for i, face := range c.Faces {
		if len(face) != 16*16*4 {
			t.Errorf("face %d: expected %d bytes, got %d", i, 16*16*4, len(face))
		}
	}
}

func TestGeneratorsAreDeterministic(t *testing.T) {
	type gen struct {
		name string
		make func() *Cubemap
	}
	gens := []gen{
		{"day", func() *Cubemap { return CreateDay(16, 7) }},
		{"night", func() *Cubemap { return CreateNight(16, 7) }},
		{"stars", func() *Cubemap { return CreateStars(16, 7, 200) }},
	}

	for _, g := range gens {
		a := g.make()
		b := g.make()
		for i := range a.Faces {
			if !bytes.Equal(a.Faces[i], b.Faces[i]) {
				t.Errorf("%s face %d: same seed produced different pixels", g.name, i)
			}
		}
	}
}

func TestSeedChangesStars(t *testing.T) {
	a := CreateStars(16, 1, 300)
	b := CreateStars(16, 2, 300)

	same := true
	for i := range a.Faces {
		if !bytes.Equal(a.Faces[i], b.Faces[i]) {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical star fields")
	}
}

func TestStarsAreSparseAndPresent(t *testing.T) {
	c := CreateStars(32, 3, 150)

	lit := 0
	total := 0
	for _, face := range c.Faces {
		for i := 0; i < len(face); i += 4 {
			total++
			if face[i] > 0 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Fatal("star field has no lit pixels")
	}
	if lit > total/4 {
		t.Errorf("star field too dense: %d of %d pixels lit", lit, total)
	}
}

func TestDaySkyGradient(t *testing.T) {
	c := CreateDay(16, 1)

	// Face +Y center looks straight up: blue should dominate red.
	up := c.Faces[2]
	i := ((c.Size/2)*c.Size + c.Size/2) * 4
	if up[i+2] <= up[i] {
		t.Errorf("zenith: expected blue > red, got r=%d b=%d", up[i], up[i+2])
	}

	// Night sky must be darker than day sky at the zenith.
	n := CreateNight(16, 1)
	if n.Faces[2][i+2] >= up[i+2] {
		t.Errorf("night zenith blue %d not darker than day %d", n.Faces[2][i+2], up[i+2])
	}
}

func TestProjectInvertsFaceDirection(t *testing.T) {
	c := newCubemap(16)
	texels := [][2]int{{0, 0}, {3, 7}, {15, 15}, {8, 2}}

	for face := 0; face < 6; face++ {
		for _, tx := range texels {
			u := 2*(float64(tx[0])+0.5)/float64(c.Size) - 1
			v := 2*(float64(tx[1])+0.5)/float64(c.Size) - 1
			dir := normalize(faceDirection(face, u, v))

			gotFace, gotX, gotY := c.project(dir)
			if gotFace != face || gotX != tx[0] || gotY != tx[1] {
				t.Errorf("project(faceDirection(%d,%v,%v)): expected (%d,%d,%d), got (%d,%d,%d)",
					face, u, v, face, tx[0], tx[1], gotFace, gotX, gotY)
			}
		}
	}
}
