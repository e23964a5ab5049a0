package opengl

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"

	"daynight-engine/core"
	"daynight-engine/daynight"
)

// SkyMaterial is the GL-backed implementation of daynight.SkyMaterial. Sets
// write straight into the skybox program via glProgramUniform (core since
// GL 4.1), so no bind is needed and the running shader always reflects the
// most recent write, whichever instance it came from.
//
// Uniform locations are resolved lazily and cached in a map shared by all
// clones. Names the shader does not declare resolve to -1 once and are
// ignored from then on.
type SkyMaterial struct {
	prog uint32
	locs map[string]int32
}

func newSkyMaterial(prog uint32) *SkyMaterial {
	return &SkyMaterial{
		prog: prog,
		locs: make(map[string]int32),
	}
}

func (m *SkyMaterial) location(name string) int32 {
	if loc, ok := m.locs[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(m.prog, gl.Str(name+"\x00"))
	m.locs[name] = loc
	return loc
}

// SetFloat writes a float uniform. Unknown names are ignored.
func (m *SkyMaterial) SetFloat(name string, value float32) {
	if loc := m.location(name); loc >= 0 {
		gl.ProgramUniform1f(m.prog, loc, value)
	}
}

// SetColor writes a vec4 color uniform. Unknown names are ignored.
func (m *SkyMaterial) SetColor(name string, value core.Color) {
	if loc := m.location(name); loc >= 0 {
		gl.ProgramUniform4f(m.prog, loc, value.R, value.G, value.B, value.A)
	}
}

// Clone returns a fresh handle onto the same shader program, sharing the
// location cache.
func (m *SkyMaterial) Clone() daynight.SkyMaterial {
	return &SkyMaterial{prog: m.prog, locs: m.locs}
}

// Release is a no-op: the shader program belongs to the Skybox and this
// handle owns nothing else. Safe to call more than once.
func (m *SkyMaterial) Release() {}
