package progress

import "math"

// DefaultMax is the maximum used when none is configured.
const DefaultMax = 100

// State is a progress value bounded by [0, max].
type State struct {
	value int
	max   int
}

// NewState returns a State with max coerced to be non-negative and
// value clamped into [0, max].
func NewState(value, max int) State {
	if max < 0 {
		max = 0
	}
	return State{value: Clamp(value, 0, max), max: max}
}

// Value returns the current value.
func (s State) Value() int { return s.value }

// Max returns the upper bound.
func (s State) Max() int { return s.max }

// Set stores v clamped into [0, max] and reports whether the value changed.
func (s *State) Set(v int) bool {
	v = Clamp(v, 0, s.max)
	if v == s.value {
		return false
	}
	s.value = v
	return true
}

// Ratio returns the value as a percentage of max, rounded half up.
// A zero max has ratio 0.
func (s State) Ratio() int {
	if s.max == 0 {
		return 0
	}
	return Round(float64(s.value) * 100 / float64(s.max))
}

// ValueAt converts an angle in degrees to a value in [0, max].
func (s State) ValueAt(angle float64) int {
	return Clamp(Round(angle*float64(s.max)/360), 0, s.max)
}

// Sweep returns the arc in whole degrees covered by the value.
func (s State) Sweep() int {
	if s.max == 0 {
		return 0
	}
	return s.value * 360 / s.max
}

// AtMax reports whether the value is pinned at max.
func (s State) AtMax() bool { return s.value == s.max }

// AtMin reports whether the value is pinned at 0.
func (s State) AtMin() bool { return s.value == 0 }

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Round rounds x half up.
func Round(x float64) int {
	return int(math.Floor(x + 0.5))
}
