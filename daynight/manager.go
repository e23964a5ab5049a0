// Package daynight simulates a 24-hour day/night cycle: a wrapping clock
// that drives scene lighting, fog and the skybox through a pluggable sink,
// with hour/day/limit events for gameplay code.
package daynight

import (
	"errors"
	"fmt"
	"math"
)

// MinutesPerDay is the length of one simulated day.
const MinutesPerDay = 1440.0

// NoTimeLimit is the sentinel value of an unset time limit.
const NoTimeLimit = -1.0

// ErrHourOutOfRange is returned by SetHour for hours outside [0,23].
var ErrHourOutOfRange = errors.New("hour out of range [0,23]")

// Manager owns the simulated clock. Minutes since midnight stay in
// [0,1440); wrapping past midnight rolls the day index. Manager is not
// safe for concurrent use: tick it from the thread that owns the frame
// loop.
type Manager struct {
	timeOfDayMinutes float64
	dayIndex         int
	timeScale        float64 // simulated minutes per real second
	timeLimitMinutes float64 // NoTimeLimit when unset
	limitReached     bool
	startTimeMinutes float64
	lastEmittedHour  int // -1 until the first hour event

	visualizer *Visualizer

	hourEvent  intEvent
	dayEvent   intEvent
	limitEvent floatEvent
}

// NewManager returns a Manager starting at startTimeMinutes (wrapped into
// [0,1440)) on day 0. timeScale is simulated minutes per real second; zero
// freezes the clock and negative values run it backwards.
func NewManager(startTimeMinutes, timeScale float64) *Manager {
	m := &Manager{
		timeScale:        timeScale,
		timeLimitMinutes: NoTimeLimit,
		lastEmittedHour:  -1,
	}
	m.startTimeMinutes = wrapMinutes(startTimeMinutes)
	m.timeOfDayMinutes = m.startTimeMinutes
	return m
}

// SetVisualizer attaches the visualizer that Tick pushes interpolated
// lighting through. nil detaches it; the clock keeps running either way.
func (m *Manager) SetVisualizer(v *Visualizer) {
	m.visualizer = v
}

// Tick advances the clock by dtSeconds of real time and never fails.
//
// If the step crosses a configured time limit, the clock clamps exactly to
// the limit, visuals are applied once, the limit event fires and the latch
// sets: every Tick after that is a no-op until ResetLimit, ClearTimeLimit
// or SetTimeLimit clears it. Otherwise the clock wraps, the hour event
// fires if the hour changed since the last emission (only the final hour
// when a large step skips several), the day event follows when the wrap
// rolled the day over, and visuals are applied last.
func (m *Manager) Tick(dtSeconds float64) {
	if m.limitReached {
		return
	}
	previous := m.timeOfDayMinutes
	next := wrapMinutes(previous + dtSeconds*m.timeScale)

	// A tick that starts exactly on the limit may move off it; otherwise
	// ResetLimit could never release a clamped clock.
	if m.timeLimitMinutes != NoTimeLimit && previous != m.timeLimitMinutes &&
		CrossedClock(previous, next, m.timeLimitMinutes) {
		m.timeOfDayMinutes = m.timeLimitMinutes
		m.limitReached = true
		m.applyVisuals()
		m.limitEvent.emit(m.timeLimitMinutes)
		return
	}

	m.timeOfDayMinutes = next

	if hour := m.Hour(); hour != m.lastEmittedHour {
		m.lastEmittedHour = hour
		m.hourEvent.emit(hour)
	}
	// Wrapped time landing behind the previous time is the day rollover.
	if next < previous {
		m.dayIndex++
		m.dayEvent.emit(m.dayIndex)
	}
	m.applyVisuals()
}

func (m *Manager) applyVisuals() {
	if m.visualizer != nil {
		m.visualizer.Apply(m.NormalizedTime())
	}
}

// ── Mutators ────────────────────────────────────────────────────────────
//
// Mutators only move state: they never emit events and never touch the
// visualizer. Mutators that move the clock also clear the hour memory, so
// the next Tick freshly reports the hour it lands in.

// SetNormalizedTime jumps the clock to normalized time t, wrapped into
// [0,1): 0 is midnight, 0.5 is noon.
func (m *Manager) SetNormalizedTime(t float64) {
	t -= math.Floor(t)
	m.timeOfDayMinutes = t * MinutesPerDay
	m.lastEmittedHour = -1
}

// SetTime jumps the clock to minutes since midnight, wrapped into [0,1440).
func (m *Manager) SetTime(minutes float64) {
	m.timeOfDayMinutes = wrapMinutes(minutes)
	m.lastEmittedHour = -1
}

// SetHour jumps the clock to the start of hour h. It is the only mutator
// that validates its input: h outside [0,23] returns ErrHourOutOfRange and
// changes nothing.
func (m *Manager) SetHour(h int) error {
	if h < 0 || h > 23 {
		return fmt.Errorf("set hour %d: %w", h, ErrHourOutOfRange)
	}
	m.timeOfDayMinutes = float64(h * 60)
	m.lastEmittedHour = -1
	return nil
}

// SetDay sets the day index; negative values clamp to 0.
func (m *Manager) SetDay(day int) {
	if day < 0 {
		day = 0
	}
	m.dayIndex = day
}

// SetTimeScale sets the simulated minutes that pass per real second. Any
// value is legal: zero freezes the clock, negative runs it backwards.
func (m *Manager) SetTimeScale(scale float64) {
	m.timeScale = scale
}

// SetTimeLimit arms a halt at the given clock position, wrapped into
// [0,1440). An already reached latch is cleared so the clock can run into
// the new limit.
func (m *Manager) SetTimeLimit(minutes float64) {
	m.timeLimitMinutes = wrapMinutes(minutes)
	m.limitReached = false
}

// ClearTimeLimit removes the limit and clears the latch.
func (m *Manager) ClearTimeLimit() {
	m.timeLimitMinutes = NoTimeLimit
	m.limitReached = false
}

// ResetLimit clears the reached latch but keeps the configured limit, so
// the clock runs until it crosses the limit again.
func (m *Manager) ResetLimit() {
	m.limitReached = false
}

// Reset restores the start time on day 0 and clears both the limit latch
// and the hour memory, as if the manager were freshly built.
func (m *Manager) Reset() {
	m.timeOfDayMinutes = m.startTimeMinutes
	m.dayIndex = 0
	m.lastEmittedHour = -1
	m.limitReached = false
}

// ── Events ──────────────────────────────────────────────────────────────

// OnHourChanged registers fn, called with the new hour whenever Tick lands
// in a different hour than the last emission. The returned function
// unsubscribes.
func (m *Manager) OnHourChanged(fn func(hour int)) func() {
	return m.hourEvent.subscribe(fn)
}

// OnDayChanged registers fn, called with the new day index when the clock
// rolls past midnight. The returned function unsubscribes.
func (m *Manager) OnDayChanged(fn func(day int)) func() {
	return m.dayEvent.subscribe(fn)
}

// OnTimeLimitReached registers fn, called with the limit position when a
// tick clamps onto it. The returned function unsubscribes.
func (m *Manager) OnTimeLimitReached(fn func(limitMinutes float64)) func() {
	return m.limitEvent.subscribe(fn)
}

// ── Queries ─────────────────────────────────────────────────────────────

// TimeOfDay returns minutes since midnight in [0,1440).
func (m *Manager) TimeOfDay() float64 { return m.timeOfDayMinutes }

// NormalizedTime returns the time of day in [0,1): 0 is midnight, 0.5 is
// noon.
func (m *Manager) NormalizedTime() float64 { return m.timeOfDayMinutes / MinutesPerDay }

// Day returns the day index, starting at 0.
func (m *Manager) Day() int { return m.dayIndex }

// Hour returns the current hour in [0,23].
func (m *Manager) Hour() int { return int(m.timeOfDayMinutes) / 60 }

// Minute returns the minute within the current hour in [0,59].
func (m *Manager) Minute() int { return int(m.timeOfDayMinutes) % 60 }

// TimeScale returns the simulated minutes per real second.
func (m *Manager) TimeScale() float64 { return m.timeScale }

// TimeLimit returns the armed limit in minutes and whether one is set.
func (m *Manager) TimeLimit() (float64, bool) {
	return m.timeLimitMinutes, m.timeLimitMinutes != NoTimeLimit
}

// LimitReached reports whether the clock is halted on a reached limit.
func (m *Manager) LimitReached() bool { return m.limitReached }

// Clock returns the time of day as "HH:MM" on a 24-hour dial.
func (m *Manager) Clock() string {
	return fmt.Sprintf("%02d:%02d", m.Hour(), m.Minute())
}

// IsWithinWindow reports whether the current time of day lies on the
// clockwise arc from fromHour to toHour; the window may span midnight.
func (m *Manager) IsWithinWindow(fromHour, toHour float64) bool {
	return CrossedClock(fromHour*60, toHour*60, m.timeOfDayMinutes)
}

// CrossedClock reports whether target lies on the clockwise arc from
// `from` to `to` on a wrapping 24-hour dial, all in minutes. Both
// endpoints are inclusive. When from == to the arc is empty and nothing is
// crossed; when from > to the arc spans midnight.
func CrossedClock(from, to, target float64) bool {
	if from == to {
		return false
	}
	if from < to {
		return target >= from && target <= to
	}
	return target >= from || target <= to
}

func wrapMinutes(v float64) float64 {
	v = math.Mod(v, MinutesPerDay)
	if v < 0 {
		v += MinutesPerDay
	}
	return v
}
