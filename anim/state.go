// Package anim selects and times the character's pose from physics signals.
package anim

import "math"

// State is the closed set of poses.
type State uint8

const (
	Idle State = iota
	Walk
	Jump
)

// States lists every pose in declaration order.
var States = [...]State{Idle, Walk, Jump}

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Walk:
		return "walk"
	case Jump:
		return "jump"
	default:
		return "unknown"
	}
}

// ParseState maps a clip name back to its pose.
func ParseState(name string) (State, bool) {
	for _, s := range States {
		if s.String() == name {
			return s, true
		}
	}
	return Idle, false
}

// Select picks the pose for the given signals: airborne always jumps, then
// walk above walkThreshold, otherwise idle.
func Select(grounded bool, vx, walkThreshold float64) State {
	if !grounded {
		return Jump
	}
	if math.Abs(vx) > walkThreshold {
		return Walk
	}
	return Idle
}
