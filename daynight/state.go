package daynight

import (
	"encoding/json"
	"fmt"
	"os"
)

// State is the serializable snapshot of the clock: the two fields that
// survive between sessions.
type State struct {
	DayIndex         int     `json:"dayIndex"`
	TimeOfDayMinutes float64 `json:"timeOfDayMinutes"`
}

// State captures the current clock.
func (m *Manager) State() State {
	return State{DayIndex: m.dayIndex, TimeOfDayMinutes: m.timeOfDayMinutes}
}

// Restore applies a snapshot. Out-of-range values are sanitized the same
// way the mutators sanitize them: the day clamps at 0 and the time wraps
// into [0,1440). The hour memory resets so the next Tick re-emits, and a
// reached limit latch is cleared.
func (m *Manager) Restore(s State) {
	day := s.DayIndex
	if day < 0 {
		day = 0
	}
	m.dayIndex = day
	m.timeOfDayMinutes = wrapMinutes(s.TimeOfDayMinutes)
	m.lastEmittedHour = -1
	m.limitReached = false
}

// SaveState writes the clock snapshot to path as indented JSON.
func SaveState(m *Manager, path string) error {
	data, err := json.MarshalIndent(m.State(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal clock state: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write clock state %q: %w", path, err)
	}
	return nil
}

// LoadState reads a snapshot written by SaveState and applies it to m.
func LoadState(m *Manager, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read clock state %q: %w", path, err)
	}
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("unmarshal clock state %q: %w", path, err)
	}
	m.Restore(s)
	return nil
}
