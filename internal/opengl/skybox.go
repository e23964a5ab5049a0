package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"daynight-engine/core"
	"daynight-engine/daynight"
	"daynight-engine/skytex"
)

// Skybox blends a day and a night cubemap on an inverted unit cube, with an
// additive star layer that twinkles. The cube vertex shader uses the xyww
// trick (gl_Position.z = gl_Position.w) so every fragment lands at NDC depth
// 1.0, always behind scene geometry.
//
// All look parameters live on the Material: the day/night mix, tint,
// exposure, star settings and the horizon fog window are shader uniforms
// written through SkyMaterial.SetFloat/SetColor.
type Skybox struct {
	vao  uint32
	vbo  uint32
	prog uint32

	vpLoc   int32
	timeLoc int32

	dayTex   uint32
	nightTex uint32
	starTex  uint32

	material *SkyMaterial
}

// ── Shaders ───────────────────────────────────────────────────────────────────

// skyVertSrc transforms cube vertices with a view matrix that has its
// translation stripped, then forces depth = 1.0 via the xyww trick.
const skyVertSrc = `
#version 410 core
layout(location = 0) in vec3 inPosition;

uniform mat4 skyVP;

out vec3 fragDir;

void main() {
    fragDir = inPosition;
    vec4 pos = skyVP * vec4(inPosition, 1.0);
    // xyww → after perspective divide: z/w = w/w = 1.0 (far plane)
    gl_Position = pos.xyww;
}
` + "\x00"

// skyFragSrc is the day/night cubemap blend plus stars and horizon fog.
//
// Stars fade in on a second ramp of _Transition between _StarMinTransition
// and _StarMaxTransition, each star twinkling with a phase hashed from its
// view direction. The horizon fog treats abs(dir.y) as a pseudo-distance
// ramped between _FogStart and _FogEnd and sharpened by pow(1/_FogDensity);
// a density of zero collapses the fog to the exact horizon line.
const skyFragSrc = `
#version 410 core
in vec3 fragDir;
out vec4 outColor;

uniform samplerCube _DayTexture;
uniform samplerCube _NightTexture;
uniform samplerCube _StarTexture;

uniform float _Transition;
uniform vec4  _Tint;
uniform float _Exposure;

uniform float _StarIntensity;
uniform float _StarMinTransition;
uniform float _StarMaxTransition;
uniform vec4  _StarColor;
uniform float _StarScale;
uniform float _StarSize;
uniform float _TwinkleSpeed;
uniform float _TwinkleIntensity;

uniform vec4  _FogColor;
uniform float _FogDensity;
uniform float _FogStart;
uniform float _FogEnd;

uniform float time;

float dirHash(vec3 dir) {
    return fract(sin(dot(dir, vec3(12.9898, 78.233, 45.164))) * 43758.5453);
}

void main() {
    vec3 dir = normalize(fragDir);

    float t = clamp(_Transition, 0.0, 1.0);
    vec3 sky = mix(texture(_DayTexture, dir).rgb,
                   texture(_NightTexture, dir).rgb, t);

    // Star visibility ramps from min to max transition
    float starVis = clamp((t - _StarMinTransition) /
                          max(_StarMaxTransition - _StarMinTransition, 0.0001),
                          0.0, 1.0);

    float glow    = texture(_StarTexture, dir * _StarScale).r;
    float mask    = smoothstep(1.0 - _StarSize, 1.0, glow);
    float twinkle = 1.0 + _TwinkleIntensity *
                    sin(_TwinkleSpeed * time * dirHash(dir) * 6.2831853);
    vec3 stars = _StarColor.rgb * mask * twinkle * _StarIntensity * starVis;

    vec3 color = (sky + stars) * _Tint.rgb * _Exposure;

    // Horizon fog: abs(dir.y) as pseudo-distance, density as inverse exponent
    float fogF = clamp((_FogEnd - abs(dir.y)) /
                       max(_FogEnd - _FogStart, 0.0001), 0.0, 1.0);
    fogF  = pow(fogF, 1.0 / max(_FogDensity, 0.0001));
    color = mix(color, _FogColor.rgb, fogF);

    outColor = vec4(color, 1.0);
}
` + "\x00"

// ── Cube geometry ─────────────────────────────────────────────────────────────

// 36 positions (xyz) for a unit cube, CCW winding seen from the outside.
// Face culling is disabled during draw so we see the inside faces.
var skyboxVerts = []float32{
	// -Z face
	-1, -1, -1, 1, 1, -1, 1, -1, -1,
	1, 1, -1, -1, -1, -1, -1, 1, -1,
	// +Z face
	-1, -1, 1, 1, -1, 1, 1, 1, 1,
	1, 1, 1, -1, 1, 1, -1, -1, 1,
	// -X face
	-1, 1, 1, -1, 1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, 1, -1, 1, 1,
	// +X face
	1, 1, 1, 1, -1, -1, 1, 1, -1,
	1, -1, -1, 1, 1, 1, 1, -1, 1,
	// -Y face
	-1, -1, -1, 1, -1, -1, 1, -1, 1,
	1, -1, 1, -1, -1, 1, -1, -1, -1,
	// +Y face
	-1, 1, -1, 1, 1, 1, 1, 1, -1,
	1, 1, 1, -1, 1, -1, -1, 1, 1,
}

// ── Constructor ───────────────────────────────────────────────────────────────

// NewSkybox compiles the blend shader, uploads the three cubemaps and the
// cube geometry, and seeds the material with daytime defaults: transition 0
// (full day), white tint, exposure 1 and the sky fog collapsed to the
// horizon line.
func NewSkybox(day, night, stars *skytex.Cubemap) (*Skybox, error) {
	prog, err := newProgram(skyVertSrc, skyFragSrc)
	if err != nil {
		return nil, fmt.Errorf("skybox shader: %w", err)
	}

	sb := &Skybox{
		prog:    prog,
		vpLoc:   gl.GetUniformLocation(prog, gl.Str("skyVP\x00")),
		timeLoc: gl.GetUniformLocation(prog, gl.Str("time\x00")),
	}

	if sb.dayTex, err = UploadCubemap(day); err != nil {
		return nil, fmt.Errorf("day cubemap: %w", err)
	}
	if sb.nightTex, err = UploadCubemap(night); err != nil {
		return nil, fmt.Errorf("night cubemap: %w", err)
	}
	if sb.starTex, err = UploadCubemap(stars); err != nil {
		return nil, fmt.Errorf("star cubemap: %w", err)
	}

	// Bind cubemap samplers: day=0, night=1, stars=2
	gl.UseProgram(prog)
	gl.Uniform1i(gl.GetUniformLocation(prog, gl.Str(daynight.UniformDayTexture+"\x00")), 0)
	gl.Uniform1i(gl.GetUniformLocation(prog, gl.Str(daynight.UniformNightTexture+"\x00")), 1)
	gl.Uniform1i(gl.GetUniformLocation(prog, gl.Str(daynight.UniformStarTexture+"\x00")), 2)

	sb.material = newSkyMaterial(prog)
	sb.material.SetFloat(daynight.UniformTransition, 0)
	sb.material.SetColor(daynight.UniformTint, core.ColorWhite)
	sb.material.SetFloat(daynight.UniformExposure, 1)
	sb.material.SetFloat(daynight.UniformStarIntensity, 1)
	sb.material.SetFloat(daynight.UniformStarMinTransition, 0.4)
	sb.material.SetFloat(daynight.UniformStarMaxTransition, 0.9)
	sb.material.SetColor(daynight.UniformStarColor, core.ColorWhite)
	sb.material.SetFloat(daynight.UniformStarScale, 1)
	sb.material.SetFloat(daynight.UniformStarSize, 0.9)
	sb.material.SetFloat(daynight.UniformTwinkleSpeed, 2)
	sb.material.SetFloat(daynight.UniformTwinkleIntensity, 0.3)
	sb.material.SetColor(daynight.UniformFogColor, core.Color{R: 0.7, G: 0.7, B: 0.75, A: 1})
	sb.material.SetFloat(daynight.UniformFogDensity, 0)
	sb.material.SetFloat(daynight.UniformFogStart, 0)
	sb.material.SetFloat(daynight.UniformFogEnd, 0.35)

	gl.GenVertexArrays(1, &sb.vao)
	gl.GenBuffers(1, &sb.vbo)
	gl.BindVertexArray(sb.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, sb.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(skyboxVerts)*4, gl.Ptr(skyboxVerts), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 12, gl.PtrOffset(0))
	gl.BindVertexArray(0)

	return sb, nil
}

// Material returns the skybox's base material. Callers that animate the sky
// should work on a Clone and leave the base values untouched.
func (sb *Skybox) Material() *SkyMaterial { return sb.material }

// ── Draw ──────────────────────────────────────────────────────────────────────

// Draw renders the sky. skyVP must be the combined proj×(view-without-translation)
// matrix; the caller is responsible for stripping the translation from view.
// timeSec is the running clock feeding the star twinkle.
func (sb *Skybox) Draw(skyVP mgl32.Mat4, timeSec float32) {
	// Depth LEQUAL so depth=1.0 fragments pass against the cleared depth value (1.0).
	// Depth mask off so 1.0 is never written into the depth buffer.
	gl.DepthFunc(gl.LEQUAL)
	gl.DepthMask(false)

	gl.UseProgram(sb.prog)
	gl.UniformMatrix4fv(sb.vpLoc, 1, false, &skyVP[0])
	gl.Uniform1f(sb.timeLoc, timeSec)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, sb.dayTex)
	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, sb.nightTex)
	gl.ActiveTexture(gl.TEXTURE2)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, sb.starTex)

	gl.BindVertexArray(sb.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 36)
	gl.BindVertexArray(0)

	// Restore depth state for scene geometry
	gl.DepthMask(true)
	gl.DepthFunc(gl.LESS)
}

// Destroy frees all GPU resources owned by this skybox.
func (sb *Skybox) Destroy() {
	gl.DeleteVertexArrays(1, &sb.vao)
	gl.DeleteBuffers(1, &sb.vbo)
	gl.DeleteTextures(1, &sb.dayTex)
	gl.DeleteTextures(1, &sb.nightTex)
	gl.DeleteTextures(1, &sb.starTex)
	gl.DeleteProgram(sb.prog)
}
