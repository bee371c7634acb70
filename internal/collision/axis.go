package collision

import "chosenoffset.com/ark/internal/core/geom"

// axis describes a direction of travel as a primary axis and a sign.
// Spans "along" the axis are expressed in travel space, where larger values
// are further ahead: for Up and Left the world coordinates are negated. Spans
// "across" the axis stay in world coordinates.
type axis struct {
	vertical bool
	sign     float64
}

func axisOf(d Direction) (axis, bool) {
	switch d {
	case DirUp:
		return axis{vertical: true, sign: -1}, true
	case DirDown:
		return axis{vertical: true, sign: 1}, true
	case DirLeft:
		return axis{vertical: false, sign: -1}, true
	case DirRight:
		return axis{vertical: false, sign: 1}, true
	default:
		return axis{}, false
	}
}

// along returns the trailing and leading edge of b in travel space
func (a axis) along(b geom.Box) (trailing, leading float64) {
	lo, hi := b.Left, b.Right()
	if a.vertical {
		lo, hi = b.Top, b.Bottom()
	}
	if a.sign > 0 {
		return lo, hi
	}
	return -hi, -lo
}

// across returns the world-space span of b on the perpendicular axis
func (a axis) across(b geom.Box) (lo, hi float64) {
	if a.vertical {
		return b.Left, b.Right()
	}
	return b.Top, b.Bottom()
}

// middleAlong returns the center of b in travel space
func (a axis) middleAlong(b geom.Box) float64 {
	lo, hi := a.along(b)
	return (lo + hi) / 2
}

// middleAcross returns the center of b on the perpendicular axis
func (a axis) middleAcross(b geom.Box) float64 {
	lo, hi := a.across(b)
	return (lo + hi) / 2
}

// point converts a travel-space coordinate s and a perpendicular world
// coordinate p into a world point.
func (a axis) point(s, p float64) geom.Point {
	if a.vertical {
		return geom.Point{X: p, Y: s * a.sign}
	}
	return geom.Point{X: s * a.sign, Y: p}
}

// advance moves b forward by d in the direction of travel
func (a axis) advance(b geom.Box, d float64) geom.Box {
	if a.vertical {
		return b.Translate(0, a.sign*d)
	}
	return b.Translate(a.sign*d, 0)
}
