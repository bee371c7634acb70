// Package axe resolves axe swings against trees. A swing is only tested
// once the blade is fully extended, and every swing is processed exactly
// once.
package axe

import (
	"chosenoffset.com/ark/internal/collision"
	"chosenoffset.com/ark/internal/core/geom"
)

// State is the lifecycle stage of a swing
type State int

const (
	Swinging State = iota
	FullyExtended
	Processed
)

// String returns a short name for the state
func (s State) String() string {
	switch s {
	case Swinging:
		return "swinging"
	case FullyExtended:
		return "fully_extended"
	case Processed:
		return "processed"
	default:
		return "unknown"
	}
}

// Swing is one axe stroke. The blade box is fixed when the swing starts.
type Swing struct {
	Blade   geom.Box
	state   State
	elapsed float64
	extend  float64
}

// NewSwing starts a swing that reaches full extension after extend seconds.
// A non-positive extend makes the swing fully extended immediately.
func NewSwing(blade geom.Box, extend float64) *Swing {
	s := &Swing{Blade: blade, extend: extend}
	if extend <= 0 {
		s.state = FullyExtended
	}
	return s
}

// State returns the current lifecycle stage
func (s *Swing) State() State {
	return s.state
}

// Advance moves the swing forward by dt seconds
func (s *Swing) Advance(dt float64) {
	if s.state != Swinging {
		return
	}
	s.elapsed += dt
	if s.elapsed >= s.extend {
		s.state = FullyExtended
	}
}

// Progress returns how far the blade has extended, in [0, 1]
func (s *Swing) Progress() float64 {
	if s.state != Swinging || s.extend <= 0 {
		return 1
	}
	return s.elapsed / s.extend
}

func (s *Swing) markProcessed() {
	s.state = Processed
}

// BladeBox returns the square blade area of the given size placed reach
// units in front of center.
func BladeBox(center geom.Point, facing collision.Direction, reach, size float64) geom.Box {
	dx, dy := facing.Delta()
	return geom.BoxAt(center.Add(dx*reach, dy*reach), size, size)
}
