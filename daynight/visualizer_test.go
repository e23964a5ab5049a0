package daynight

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"daynight-engine/core"
)

type recordingSink struct {
	ambient, sun, fogColor core.Color
	rotation               mgl32.Quat
	fogEnd                 float32

	colorCalls    int
	fogCalls      int
	rotationCalls int
}

func (s *recordingSink) SetAmbientLight(c core.Color) { s.ambient = c; s.colorCalls++ }
func (s *recordingSink) SetSunLight(c core.Color)     { s.sun = c; s.colorCalls++ }
func (s *recordingSink) SetSunRotation(q mgl32.Quat)  { s.rotation = q; s.rotationCalls++ }
func (s *recordingSink) SetFogColor(c core.Color)     { s.fogColor = c; s.colorCalls++ }
func (s *recordingSink) SetFogEnd(d float32)          { s.fogEnd = d; s.fogCalls++ }

type recordingMaterial struct {
	floats map[string]float32
	colors map[string]core.Color

	clones    int
	releases  int
	lastClone *recordingMaterial
}

func newRecordingMaterial() *recordingMaterial {
	return &recordingMaterial{floats: map[string]float32{}, colors: map[string]core.Color{}}
}

func (m *recordingMaterial) SetFloat(name string, v float32)    { m.floats[name] = v }
func (m *recordingMaterial) SetColor(name string, c core.Color) { m.colors[name] = c }

func (m *recordingMaterial) Clone() SkyMaterial {
	m.clones++
	m.lastClone = newRecordingMaterial()
	return m.lastClone
}

func (m *recordingMaterial) Release() { m.releases++ }

func TestVisualizerClonesMaterial(t *testing.T) {
	base := newRecordingMaterial()
	v := NewVisualizer(DefaultVisualConfig(), nil, base)

	if base.clones != 1 {
		t.Errorf("Clone: expected 1 clone, got %v", base.clones)
	}
	clone := base.lastClone

	// Static uniforms land on the clone, never on the asset.
	if clone.floats[UniformExposure] != 1 {
		t.Errorf("exposure: expected 1 on clone, got %v", clone.floats[UniformExposure])
	}
	if clone.colors[UniformTint] != core.ColorWhite {
		t.Errorf("tint: expected white on clone, got %v", clone.colors[UniformTint])
	}
	if clone.floats[UniformStarIntensity] != 1 {
		t.Errorf("star intensity: expected 1, got %v", clone.floats[UniformStarIntensity])
	}
	if len(base.floats) != 0 || len(base.colors) != 0 {
		t.Error("base material: expected no writes on the shared asset")
	}

	// Teardown is idempotent.
	v.Release()
	v.Release()
	if clone.releases != 1 {
		t.Errorf("Release: expected exactly 1 release, got %v", clone.releases)
	}
	if base.releases != 0 {
		t.Errorf("Release: expected the asset untouched, got %v releases", base.releases)
	}
}

func TestVisualizerStarsDisabled(t *testing.T) {
	cfg := DefaultVisualConfig()
	cfg.Stars.Enabled = false
	cfg.Stars.Intensity = 5

	base := newRecordingMaterial()
	NewVisualizer(cfg, nil, base)

	if got := base.lastClone.floats[UniformStarIntensity]; got != 0 {
		t.Errorf("star intensity: expected 0 when disabled, got %v", got)
	}
}

func TestVisualizerSkyFogDisabledZeroesDensity(t *testing.T) {
	cfg := DefaultVisualConfig()
	cfg.ApplySkyFog = false

	base := newRecordingMaterial()
	v := NewVisualizer(cfg, nil, base)
	clone := base.lastClone

	if got := clone.floats[UniformFogDensity]; got != 0 {
		t.Errorf("fog density: expected zeroed once at setup, got %v", got)
	}

	// Ticking must not resurrect the disabled fog.
	v.Apply(0.5)
	if got := clone.floats[UniformFogDensity]; got != 0 {
		t.Errorf("fog density: expected to stay 0, got %v", got)
	}
	if _, ok := clone.colors[UniformFogColor]; ok {
		t.Error("fog color: expected no write while sky fog is off")
	}
}

func TestVisualizerAppliesInterpolatedState(t *testing.T) {
	cfg := DefaultVisualConfig()
	sink := &recordingSink{}
	base := newRecordingMaterial()
	v := NewVisualizer(cfg, sink, base)

	v.Apply(0.5) // noon

	if sink.ambient != cfg.AmbientColors.Sample(0.5) {
		t.Errorf("ambient: expected %v, got %v", cfg.AmbientColors.Sample(0.5), sink.ambient)
	}
	if sink.sun != cfg.SunColors.Sample(0.5) {
		t.Errorf("sun: expected %v, got %v", cfg.SunColors.Sample(0.5), sink.sun)
	}
	if sink.fogEnd != 160 {
		t.Errorf("fog end: expected 160 at noon, got %v", sink.fogEnd)
	}

	clone := base.lastClone
	if got := clone.floats[UniformTransition]; got != 0 {
		t.Errorf("transition: expected 0 at noon, got %v", got)
	}
	if got := clone.floats[UniformFogDensity]; got != 0.8 {
		t.Errorf("sky fog density: expected 0.8 at noon, got %v", got)
	}
	if clone.colors[UniformFogColor] != cfg.FogColors.Sample(0.5) {
		t.Errorf("sky fog color: expected %v, got %v", cfg.FogColors.Sample(0.5), clone.colors[UniformFogColor])
	}
}

func TestVisualizerTogglesSkipWrites(t *testing.T) {
	cfg := DefaultVisualConfig()
	cfg.ApplyColors = false
	cfg.ApplyFog = false
	cfg.ApplySkyFog = false
	cfg.ApplySky = false

	sink := &recordingSink{}
	base := newRecordingMaterial()
	v := NewVisualizer(cfg, sink, base)

	v.Apply(0.25)

	if sink.colorCalls != 0 || sink.fogCalls != 0 {
		t.Errorf("toggles: expected no color/fog writes, got %v/%v", sink.colorCalls, sink.fogCalls)
	}
	// The sun keeps tracking the clock regardless of toggles.
	if sink.rotationCalls != 1 {
		t.Errorf("rotation: expected 1 call, got %v", sink.rotationCalls)
	}
	if _, ok := base.lastClone.floats[UniformTransition]; ok {
		t.Error("transition: expected no write while the sky step is off")
	}
}

func TestVisualizerNilConfig(t *testing.T) {
	sink := &recordingSink{}
	base := newRecordingMaterial()
	v := NewVisualizer(nil, sink, base)

	v.Apply(0.5)

	if sink.colorCalls != 0 || sink.fogCalls != 0 || sink.rotationCalls != 0 {
		t.Error("nil config: expected no sink writes at all")
	}
	if len(base.lastClone.floats) != 0 {
		t.Error("nil config: expected no material writes")
	}

	v.Release()
	if base.lastClone.releases != 1 {
		t.Errorf("Release: expected the clone freed, got %v", base.lastClone.releases)
	}
}

func TestVisualizerNilSinkAndMaterial(t *testing.T) {
	v := NewVisualizer(DefaultVisualConfig(), nil, nil)

	// Nothing attached: applying and releasing are quiet no-ops.
	v.Apply(0.3)
	v.Release()
}

func TestVisualizerSetConfigSwapsMaterial(t *testing.T) {
	base := newRecordingMaterial()
	v := NewVisualizer(DefaultVisualConfig(), nil, base)
	first := base.lastClone

	next := DefaultVisualConfig()
	next.Exposure = 2
	v.SetConfig(next)

	if first.releases != 1 {
		t.Errorf("SetConfig: expected the old clone released, got %v", first.releases)
	}
	if base.clones != 2 {
		t.Errorf("SetConfig: expected a fresh clone, got %v total", base.clones)
	}
	if got := base.lastClone.floats[UniformExposure]; got != 2 {
		t.Errorf("SetConfig: expected exposure 2 on the new clone, got %v", got)
	}
	if v.Config() != next {
		t.Error("Config: expected the new configuration")
	}
}

func TestSunDirection(t *testing.T) {
	tolerance := 1e-4

	near := func(v mgl32.Vec3, x, y, z float64) bool {
		return math.Abs(float64(v.X())-x) < tolerance &&
			math.Abs(float64(v.Y())-y) < tolerance &&
			math.Abs(float64(v.Z())-z) < tolerance
	}

	// Noon points straight down regardless of azimuth.
	if dir := SunDirection(0.5, 0); !near(dir, 0, -1, 0) {
		t.Errorf("noon: expected (0,-1,0), got %v", dir)
	}
	if dir := SunDirection(0.5, 137); !near(dir, 0, -1, 0) {
		t.Errorf("noon azimuth 137: expected (0,-1,0), got %v", dir)
	}

	// Sunrise and sunset sit on the horizon.
	if dir := SunDirection(0.25, 0); !near(dir, 0, 0, 1) {
		t.Errorf("sunrise: expected (0,0,1), got %v", dir)
	}
	if dir := SunDirection(0.75, 0); !near(dir, 0, 0, -1) {
		t.Errorf("sunset: expected (0,0,-1), got %v", dir)
	}

	// Midnight points straight up.
	if dir := SunDirection(0, 0); !near(dir, 0, 1, 0) {
		t.Errorf("midnight: expected (0,1,0), got %v", dir)
	}

	// Azimuth yaws the arc around the vertical axis.
	if dir := SunDirection(0.25, 90); !near(dir, 1, 0, 0) {
		t.Errorf("sunrise azimuth 90: expected (1,0,0), got %v", dir)
	}
}

func TestManagerDrivesVisualizer(t *testing.T) {
	m := NewManager(720, 0) // frozen at noon
	cfg := DefaultVisualConfig()
	sink := &recordingSink{}
	m.SetVisualizer(NewVisualizer(cfg, sink, nil))

	m.Tick(0)
	if sink.rotationCalls != 1 {
		t.Errorf("Tick: expected visuals applied once, got %v", sink.rotationCalls)
	}
	if sink.ambient != cfg.AmbientColors.Sample(0.5) {
		t.Errorf("Tick: expected noon ambient, got %v", sink.ambient)
	}

	// Mutators stay silent; the next tick applies the new time.
	m.SetNormalizedTime(0)
	if sink.rotationCalls != 1 {
		t.Errorf("SetNormalizedTime: expected no visual push, got %v calls", sink.rotationCalls)
	}
	m.Tick(0)
	if sink.rotationCalls != 2 {
		t.Errorf("Tick: expected a second push, got %v", sink.rotationCalls)
	}
	if sink.ambient != cfg.AmbientColors.Sample(0) {
		t.Errorf("Tick: expected midnight ambient, got %v", sink.ambient)
	}
}

func TestLimitTickAppliesVisualsOnce(t *testing.T) {
	m := NewManager(700, 1)
	m.SetTimeLimit(720)
	sink := &recordingSink{}
	m.SetVisualizer(NewVisualizer(DefaultVisualConfig(), sink, nil))

	m.Tick(30) // clamp to the limit, push visuals for it
	if sink.rotationCalls != 1 {
		t.Errorf("limit tick: expected 1 push, got %v", sink.rotationCalls)
	}

	m.Tick(30) // latched: nothing moves, nothing is pushed
	if sink.rotationCalls != 1 {
		t.Errorf("latched tick: expected no further pushes, got %v", sink.rotationCalls)
	}
}
