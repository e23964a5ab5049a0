package daynight

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestStateRoundTrip(t *testing.T) {
	m := NewManager(480, 1)
	m.SetDay(3)
	m.SetNormalizedTime(0.7)
	want := m.TimeOfDay()

	path := filepath.Join(t.TempDir(), "clock_state.json")
	if err := SaveState(m, path); err != nil {
		t.Fatalf("SaveState: unexpected error %v", err)
	}

	restored := NewManager(0, 1)
	if err := LoadState(restored, path); err != nil {
		t.Fatalf("LoadState: unexpected error %v", err)
	}

	if restored.Day() != 3 {
		t.Errorf("Day: expected 3, got %v", restored.Day())
	}
	if restored.TimeOfDay() != want {
		t.Errorf("TimeOfDay: expected %v, got %v", want, restored.TimeOfDay())
	}

	// A restored clock reports its hour on the next tick.
	var hours []int
	restored.OnHourChanged(func(h int) { hours = append(hours, h) })
	restored.Tick(0)
	if len(hours) != 1 {
		t.Errorf("OnHourChanged after restore: expected one event, got %v", hours)
	}
}

func TestStateJSONShape(t *testing.T) {
	m := NewManager(615, 1)
	m.SetDay(2)

	path := filepath.Join(t.TempDir(), "clock_state.json")
	if err := SaveState(m, path); err != nil {
		t.Fatalf("SaveState: unexpected error %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	// The on-disk shape is part of the contract.
	if len(raw) != 2 {
		t.Errorf("state keys: expected exactly 2, got %v (%v)", len(raw), raw)
	}
	if raw["dayIndex"] != float64(2) {
		t.Errorf("dayIndex: expected 2, got %v", raw["dayIndex"])
	}
	if raw["timeOfDayMinutes"] != float64(615) {
		t.Errorf("timeOfDayMinutes: expected 615, got %v", raw["timeOfDayMinutes"])
	}
}

func TestRestoreSanitizes(t *testing.T) {
	m := NewManager(0, 1)

	m.Restore(State{DayIndex: -2, TimeOfDayMinutes: 2000})

	if m.Day() != 0 {
		t.Errorf("Restore: expected day clamped to 0, got %v", m.Day())
	}
	if m.TimeOfDay() != 560 {
		t.Errorf("Restore: expected time wrapped to 560, got %v", m.TimeOfDay())
	}
}

func TestLoadStateMissingFile(t *testing.T) {
	m := NewManager(0, 1)

	if err := LoadState(m, filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("LoadState: expected an error for a missing file")
	}
}
