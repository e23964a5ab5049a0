package daynight

// Visualizer samples the visual config at the clock's normalized time and
// pushes the results to the lighting sink and the sky material. It owns a
// private clone of the sky material so the authored asset is never written
// to.
type Visualizer struct {
	cfg  *VisualConfig
	sink LightingSink
	base SkyMaterial // shared asset, cloned but never mutated
	sky  SkyMaterial // owned clone, freed by Release
}

// NewVisualizer wires cfg to sink and base. base is cloned immediately;
// the clone is freed by Release. Any of the three may be nil: a nil cfg
// disables all visuals, a nil sink or base skips just that half.
func NewVisualizer(cfg *VisualConfig, sink LightingSink, base SkyMaterial) *Visualizer {
	v := &Visualizer{cfg: cfg, sink: sink, base: base}
	v.acquireMaterial()
	return v
}

// SetConfig replaces the visual configuration at runtime. The owned
// material clone is released before a fresh one is acquired, so swapping
// configs never accumulates GPU resources.
func (v *Visualizer) SetConfig(cfg *VisualConfig) {
	v.Release()
	v.cfg = cfg
	v.acquireMaterial()
}

// Config returns the active visual configuration, nil when none is set.
func (v *Visualizer) Config() *VisualConfig { return v.cfg }

func (v *Visualizer) acquireMaterial() {
	if v.base == nil {
		return
	}
	v.sky = v.base.Clone()
	if v.cfg != nil {
		v.pushStaticUniforms()
	}
}

// pushStaticUniforms writes the uniforms that do not change over the day.
// Disabled stars force intensity to zero and disabled sky fog forces
// density to zero, once, so the clone does not keep the asset's authored
// values for features that are off.
func (v *Visualizer) pushStaticUniforms() {
	c := v.cfg
	v.sky.SetColor(UniformTint, c.Tint)
	v.sky.SetFloat(UniformExposure, c.Exposure)
	v.sky.SetFloat(UniformFogStart, c.SkyFogStart)
	v.sky.SetFloat(UniformFogEnd, c.SkyFogEnd)

	intensity := c.Stars.Intensity
	if !c.Stars.Enabled {
		intensity = 0
	}
	v.sky.SetFloat(UniformStarIntensity, intensity)
	v.sky.SetFloat(UniformStarMinTransition, c.Stars.MinTransition)
	v.sky.SetFloat(UniformStarMaxTransition, c.Stars.MaxTransition)
	v.sky.SetColor(UniformStarColor, c.Stars.Color)
	v.sky.SetFloat(UniformStarScale, c.Stars.Scale)
	v.sky.SetFloat(UniformStarSize, c.Stars.Size)
	v.sky.SetFloat(UniformTwinkleSpeed, c.Stars.TwinkleSpeed)
	v.sky.SetFloat(UniformTwinkleIntensity, c.Stars.TwinkleIntensity)

	if !c.ApplySkyFog {
		v.sky.SetFloat(UniformFogDensity, 0)
	}
}

// Apply pushes the interpolated state for normalized time t, where 0 is
// midnight and 0.5 is noon. Concerns toggled off in the config are
// skipped, leaving whatever state they last wrote; the sun rotation is not
// gated and tracks the clock whenever a sink is attached.
func (v *Visualizer) Apply(t float64) {
	if v.cfg == nil {
		return
	}
	if v.sink != nil {
		if v.cfg.ApplyColors {
			v.sink.SetAmbientLight(v.cfg.AmbientColors.Sample(t))
			v.sink.SetSunLight(v.cfg.SunColors.Sample(t))
			v.sink.SetFogColor(v.cfg.FogColors.Sample(t))
		}
		if v.cfg.ApplyFog {
			v.sink.SetFogEnd(v.cfg.FogEndDistances.Sample(t))
		}
		v.sink.SetSunRotation(SunRotation(t, v.cfg.SunAzimuth))
	}
	if v.sky != nil {
		if v.cfg.ApplySkyFog {
			v.sky.SetColor(UniformFogColor, v.cfg.FogColors.Sample(t))
			v.sky.SetFloat(UniformFogDensity, v.cfg.SkyFogDensities.Sample(t))
		}
		if v.cfg.ApplySky {
			v.sky.SetFloat(UniformTransition, v.cfg.SkyTransitions.Sample(t))
		}
	}
}

// Release frees the cloned sky material. Safe to call more than once.
func (v *Visualizer) Release() {
	if v.sky != nil {
		v.sky.Release()
		v.sky = nil
	}
}
