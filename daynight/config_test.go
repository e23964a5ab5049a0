package daynight

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewManagerFromConfig(t *testing.T) {
	m, err := NewManagerFromConfig(Config{StartTime: "18:30", TimeScale: 2})
	if err != nil {
		t.Fatalf("NewManagerFromConfig: unexpected error %v", err)
	}

	if m.TimeOfDay() != 1110 {
		t.Errorf("start time: expected 1110, got %v", m.TimeOfDay())
	}
	if m.TimeScale() != 2 {
		t.Errorf("time scale: expected 2, got %v", m.TimeScale())
	}
	if _, ok := m.TimeLimit(); ok {
		t.Error("time limit: expected none")
	}
}

func TestConfigClockFormats(t *testing.T) {
	cases := []struct {
		clock    string
		expected float64
	}{
		{"18:30", 1110},
		{"6:30pm", 1110},
		{"08", 480},
		{"08:00:30", 480.5},
		{"00:00", 0},
	}
	for _, c := range cases {
		m, err := NewManagerFromConfig(Config{StartTime: c.clock, TimeScale: 1})
		if err != nil {
			t.Errorf("StartTime %q: unexpected error %v", c.clock, err)
			continue
		}
		if m.TimeOfDay() != c.expected {
			t.Errorf("StartTime %q: expected %v, got %v", c.clock, c.expected, m.TimeOfDay())
		}
	}
}

func TestConfigTimeLimit(t *testing.T) {
	m, err := NewManagerFromConfig(Config{StartTime: "23:50", TimeScale: 1, TimeLimit: "00:10"})
	if err != nil {
		t.Fatalf("NewManagerFromConfig: unexpected error %v", err)
	}

	// The limit sits across midnight from the start time.
	m.Tick(30)
	if m.TimeOfDay() != 10 {
		t.Errorf("Tick: expected clamp to 10, got %v", m.TimeOfDay())
	}
	if !m.LimitReached() {
		t.Error("LimitReached: expected true")
	}
}

func TestConfigRejectsBadClock(t *testing.T) {
	if _, err := NewManagerFromConfig(Config{StartTime: "25:00", TimeScale: 1}); err == nil {
		t.Error("StartTime 25:00: expected an error")
	}
	if _, err := NewManagerFromConfig(Config{StartTime: "08:00", TimeScale: 1, TimeLimit: "nope"}); err == nil {
		t.Error("TimeLimit nope: expected an error")
	}
}

func TestDefaultConfig(t *testing.T) {
	m, err := NewManagerFromConfig(DefaultConfig())
	if err != nil {
		t.Fatalf("DefaultConfig: unexpected error %v", err)
	}

	if m.TimeOfDay() != 480 {
		t.Errorf("default start: expected 480, got %v", m.TimeOfDay())
	}
	if m.TimeScale() != 1 {
		t.Errorf("default scale: expected 1, got %v", m.TimeScale())
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clock.json")
	raw := `{"startTime": "06:15", "timeScale": 4, "timeLimit": "22:00"}`
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: unexpected error %v", err)
	}
	if cfg.StartTime != "06:15" || cfg.TimeScale != 4 || cfg.TimeLimit != "22:00" {
		t.Errorf("LoadConfig: unexpected config %+v", cfg)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("LoadConfig: expected an error for a missing file")
	}
}

func TestVisualConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visual.json")
	cfg := DefaultVisualConfig()
	cfg.SunAzimuth = 42

	if err := SaveVisualConfig(cfg, path); err != nil {
		t.Fatalf("SaveVisualConfig: unexpected error %v", err)
	}
	loaded, err := LoadVisualConfig(path)
	if err != nil {
		t.Fatalf("LoadVisualConfig: unexpected error %v", err)
	}

	if loaded.SunAzimuth != 42 {
		t.Errorf("sun azimuth: expected 42, got %v", loaded.SunAzimuth)
	}
	if !loaded.ApplySky || !loaded.ApplyColors {
		t.Error("toggles: expected the saved switches to survive the round trip")
	}
	if !loaded.Stars.Enabled {
		t.Error("stars: expected enabled")
	}
	if len(loaded.AmbientColors) != len(cfg.AmbientColors) {
		t.Errorf("ambient keys: expected %v, got %v", len(cfg.AmbientColors), len(loaded.AmbientColors))
	}
	if got := loaded.FogEndDistances.Sample(0.5); got != 160 {
		t.Errorf("fog end at noon: expected 160, got %v", got)
	}
}
