package daynight

import (
	"encoding/json"
	"fmt"
	"os"

	"cloudeng.io/datetime"

	"daynight-engine/core"
)

// Config is the JSON-loadable clock setup. Clock strings use the
// "HH[:MM[:SS]][am|pm]" formats accepted by cloudeng.io/datetime, e.g.
// "18:30" or "6:30pm".
type Config struct {
	StartTime string  `json:"startTime"`           // empty means midnight
	TimeScale float64 `json:"timeScale"`           // simulated minutes per real second
	TimeLimit string  `json:"timeLimit,omitempty"` // empty means no limit
}

// DefaultConfig starts at 08:00 with one simulated minute per real second.
func DefaultConfig() Config {
	return Config{StartTime: "08:00", TimeScale: 1}
}

// NewManagerFromConfig builds a Manager from cfg, arming the time limit
// when one is given.
func NewManagerFromConfig(cfg Config) (*Manager, error) {
	start := 0.0
	if cfg.StartTime != "" {
		v, err := parseClock(cfg.StartTime)
		if err != nil {
			return nil, fmt.Errorf("start time: %w", err)
		}
		start = v
	}
	m := NewManager(start, cfg.TimeScale)
	if cfg.TimeLimit != "" {
		v, err := parseClock(cfg.TimeLimit)
		if err != nil {
			return nil, fmt.Errorf("time limit: %w", err)
		}
		m.SetTimeLimit(v)
	}
	return m, nil
}

// LoadConfig reads a Config from a JSON file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read clock config %q: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal clock config %q: %w", path, err)
	}
	return cfg, nil
}

// parseClock converts a clock string into minutes since midnight.
func parseClock(s string) (float64, error) {
	var tod datetime.TimeOfDay
	if err := tod.Parse(s); err != nil {
		return 0, fmt.Errorf("parse clock %q: %w", s, err)
	}
	return float64(tod.Hour()*60+tod.Minute()) + float64(tod.Second())/60.0, nil
}

// VisualConfig holds every sample set and static setting the Visualizer
// pushes. Sample sets are keyed over the normalized day: index 0 is
// midnight, the middle is noon, the last key is midnight again so the
// cycle closes seamlessly.
type VisualConfig struct {
	// Per-concern switches. A switched-off concern is skipped, not reset:
	// whatever it last wrote stays. Hand-written JSON configs must set
	// these explicitly since absent fields decode as off.
	ApplyColors bool `json:"applyColors"` // ambient + sun + fog color
	ApplyFog    bool `json:"applyFog"`    // scene fog end distance
	ApplySkyFog bool `json:"applySkyFog"` // skybox horizon fog
	ApplySky    bool `json:"applySky"`    // skybox day/night transition

	AmbientColors Gradient `json:"ambientColors"`
	SunColors     Gradient `json:"sunColors"`
	FogColors     Gradient `json:"fogColors"`

	FogEndDistances Curve `json:"fogEndDistances"` // world units
	SkyTransitions  Curve `json:"skyTransitions"`  // 0 day, 1 night
	SkyFogDensities Curve `json:"skyFogDensities"`

	// SunAzimuth is the yaw of the sun's arc in degrees; 0 rises exactly
	// east of +Z.
	SunAzimuth float32 `json:"sunAzimuth"`

	Tint        core.Color `json:"tint"`
	Exposure    float32    `json:"exposure"`
	SkyFogStart float32    `json:"skyFogStart"` // horizon fog ramp, |dir.y|
	SkyFogEnd   float32    `json:"skyFogEnd"`

	Stars StarConfig `json:"stars"`
}

// StarConfig drives the star layer of the skybox shader. Disabled stars
// are pushed as zero intensity.
type StarConfig struct {
	Enabled          bool       `json:"enabled"`
	Intensity        float32    `json:"intensity"`
	MinTransition    float32    `json:"minTransition"` // stars fade in from here
	MaxTransition    float32    `json:"maxTransition"` // fully visible here
	Color            core.Color `json:"color"`
	Scale            float32    `json:"scale"`
	Size             float32    `json:"size"`
	TwinkleSpeed     float32    `json:"twinkleSpeed"`
	TwinkleIntensity float32    `json:"twinkleIntensity"`
}

// DefaultVisualConfig returns a dusk-to-dawn palette tuned for the demo
// scene: nine keys, one every three hours starting at midnight.
func DefaultVisualConfig() *VisualConfig {
	return &VisualConfig{
		ApplyColors: true,
		ApplyFog:    true,
		ApplySkyFog: true,
		ApplySky:    true,
		AmbientColors: Gradient{
			{R: 0.03, G: 0.04, B: 0.09, A: 1}, // 00:00
			{R: 0.03, G: 0.04, B: 0.09, A: 1}, // 03:00
			{R: 0.09, G: 0.10, B: 0.17, A: 1}, // 06:00
			{R: 0.14, G: 0.16, B: 0.24, A: 1}, // 09:00
			{R: 0.16, G: 0.18, B: 0.26, A: 1}, // 12:00
			{R: 0.14, G: 0.16, B: 0.24, A: 1}, // 15:00
			{R: 0.10, G: 0.12, B: 0.20, A: 1}, // 18:00
			{R: 0.06, G: 0.07, B: 0.14, A: 1}, // 21:00
			{R: 0.03, G: 0.04, B: 0.09, A: 1}, // 24:00
		},
		SunColors: Gradient{
			{R: 0.05, G: 0.05, B: 0.08, A: 1},
			{R: 0.05, G: 0.05, B: 0.08, A: 1},
			{R: 0.70, G: 0.42, B: 0.20, A: 1},
			{R: 1.00, G: 0.92, B: 0.80, A: 1},
			{R: 1.00, G: 0.98, B: 0.92, A: 1},
			{R: 1.00, G: 0.92, B: 0.80, A: 1},
			{R: 0.90, G: 0.52, B: 0.22, A: 1},
			{R: 0.08, G: 0.08, B: 0.12, A: 1},
			{R: 0.05, G: 0.05, B: 0.08, A: 1},
		},
		FogColors: Gradient{
			{R: 0.03, G: 0.03, B: 0.06, A: 1},
			{R: 0.03, G: 0.03, B: 0.06, A: 1},
			{R: 0.75, G: 0.40, B: 0.20, A: 1},
			{R: 0.58, G: 0.72, B: 0.90, A: 1},
			{R: 0.62, G: 0.78, B: 0.95, A: 1},
			{R: 0.58, G: 0.72, B: 0.90, A: 1},
			{R: 0.85, G: 0.55, B: 0.25, A: 1},
			{R: 0.20, G: 0.12, B: 0.16, A: 1},
			{R: 0.03, G: 0.03, B: 0.06, A: 1},
		},
		FogEndDistances: Curve{60, 60, 90, 140, 160, 140, 100, 70, 60},
		SkyTransitions:  Curve{1, 1, 0.55, 0.05, 0, 0.05, 0.55, 1, 1},
		SkyFogDensities: Curve{1.2, 1.2, 1.8, 1.0, 0.8, 1.0, 1.8, 1.4, 1.2},
		SunAzimuth:      30,
		Tint:            core.ColorWhite,
		Exposure:        1.0,
		SkyFogStart:     0.0,
		SkyFogEnd:       0.4,
		Stars: StarConfig{
			Enabled:          true,
			Intensity:        1.0,
			MinTransition:    0.4,
			MaxTransition:    0.9,
			Color:            core.Color{R: 0.90, G: 0.95, B: 1.00, A: 1},
			Scale:            1.0,
			Size:             0.6,
			TwinkleSpeed:     8.0,
			TwinkleIntensity: 0.4,
		},
	}
}

// LoadVisualConfig reads a VisualConfig from a JSON file.
func LoadVisualConfig(path string) (*VisualConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read visual config %q: %w", path, err)
	}
	var cfg VisualConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal visual config %q: %w", path, err)
	}
	return &cfg, nil
}

// SaveVisualConfig writes cfg as indented JSON, the same shape
// LoadVisualConfig reads.
func SaveVisualConfig(cfg *VisualConfig, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal visual config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write visual config %q: %w", path, err)
	}
	return nil
}
