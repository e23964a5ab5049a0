package daynight

import (
	"daynight-engine/core"
)

// SkyMaterial is the uniform surface of the skybox shader. The GL backend
// implements it; tests plug in an in-memory fake. Unknown names are
// ignored by implementations so configs and shaders can evolve
// independently.
type SkyMaterial interface {
	SetFloat(name string, value float32)
	SetColor(name string, value core.Color)

	// Clone returns an independent copy sharing the underlying shader.
	// The Visualizer works on a clone so the original material keeps its
	// authored values.
	Clone() SkyMaterial

	// Release frees resources owned by this instance. Only clones get
	// released by the Visualizer.
	Release()
}

// Skybox shader uniform names. Textures are bound by the render backend;
// everything else is written by the Visualizer.
const (
	UniformTransition        = "_Transition"
	UniformFogColor          = "_FogColor"
	UniformFogDensity        = "_FogDensity"
	UniformDayTexture        = "_DayTexture"
	UniformNightTexture      = "_NightTexture"
	UniformStarTexture       = "_StarTexture"
	UniformTint              = "_Tint"
	UniformExposure          = "_Exposure"
	UniformStarIntensity     = "_StarIntensity"
	UniformStarMinTransition = "_StarMinTransition"
	UniformStarMaxTransition = "_StarMaxTransition"
	UniformStarColor         = "_StarColor"
	UniformStarScale         = "_StarScale"
	UniformStarSize          = "_StarSize"
	UniformTwinkleSpeed      = "_TwinkleSpeed"
	UniformTwinkleIntensity  = "_TwinkleIntensity"
	UniformFogStart          = "_FogStart"
	UniformFogEnd            = "_FogEnd"
)
