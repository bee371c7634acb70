// Package collision implements the tile-constrained movement engine: movement
// requests, the directional resolver, the tree detector and the registry of
// movable colliders that is simulated once per tick.
package collision

import "math"

// Direction is one of the four cardinal directions of travel
type Direction int

const (
	DirInvalid Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// String returns a lowercase name for the direction
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "invalid"
	}
}

// Valid reports whether d is one of the four cardinal directions
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// Delta returns the unit vector for the direction in screen space
func (d Direction) Delta() (dx, dy float64) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirInvalid
	}
}

// Movement is a single intended displacement. It is consumed by one
// resolution pass and has no identity beyond its values.
type Movement struct {
	Direction Direction
	Distance  float64
}

// NewMovement builds a movement request
func NewMovement(dir Direction, distance float64) Movement {
	return Movement{Direction: dir, Distance: distance}
}

// Valid reports whether the request can be resolved
func (m Movement) Valid() bool {
	if !m.Direction.Valid() {
		return false
	}
	if math.IsNaN(m.Distance) || math.IsInf(m.Distance, 0) {
		return false
	}
	return m.Distance >= 0
}
