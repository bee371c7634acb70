package collision

import (
	"math"

	"chosenoffset.com/ark/internal/core/geom"
)

// Detector decides whether an obstacle lies in the path of a moving box.
//
// A plain intersection test is not enough: a box can already overlap an
// obstacle's shrunk bounds after grazing past it without moving into it.
// An obstacle blocks only when the leading edge, advanced by one probe step,
// would cross the obstacle's near face while the mover's center has not yet
// passed that face, and the mover's center is within the perpendicular
// tolerance of the obstacle's center.
type Detector struct {
	Margin    float64 // inset applied to every side of an obstacle box
	Tolerance float64 // fraction of the obstacle's cross size
	Probe     float64 // look-ahead along the direction of travel
}

// NewDetector builds a detector from the shared tuning
func NewDetector(t Tuning) Detector {
	t = t.normalized()
	return Detector{
		Margin:    t.ObstacleMargin,
		Tolerance: t.PerpendicularTolerance,
		Probe:     t.MinStep,
	}
}

// Detect reports whether an obstacle near box blocks one probe step in dir.
// The returned box is the shrunk bounds of the blocking obstacle.
func (d Detector) Detect(box geom.Box, dir Direction, obstacles ObstacleProvider) (bool, geom.Box) {
	ax, ok := axisOf(dir)
	if !ok || obstacles == nil {
		return false, geom.Box{}
	}
	region := box.Union(ax.advance(box, d.Probe))
	hit := d.scan(box, ax, obstacles.ObstaclesNear(region))
	return hit.blocked, hit.bounds
}

// Scan tests box against an explicit candidate list. Besides the block flag
// it returns the clearance to the nearest obstacle in the path, or +Inf
// when nothing is in the path.
func (d Detector) Scan(box geom.Box, dir Direction, candidates []Obstacle) (blocked bool, bounds geom.Box, clearance float64) {
	ax, ok := axisOf(dir)
	if !ok {
		return false, geom.Box{}, math.Inf(1)
	}
	hit := d.scan(box, ax, candidates)
	return hit.blocked, hit.bounds, hit.clearance
}

type scanResult struct {
	blocked   bool
	bounds    geom.Box
	clearance float64
}

func (d Detector) scan(box geom.Box, ax axis, candidates []Obstacle) scanResult {
	res := scanResult{clearance: math.Inf(1)}
	_, lead := ax.along(box)
	mid := ax.middleAlong(box)
	cross := ax.middleAcross(box)

	for _, o := range candidates {
		if o == nil {
			continue
		}
		shrunk := o.Bounds().Shrink(d.Margin)
		if shrunk.Empty() {
			continue
		}

		near, _ := ax.along(shrunk)
		if mid > near {
			// already past the near face
			continue
		}

		lo, hi := ax.across(shrunk)
		if math.Abs(cross-(lo+hi)/2) > (hi-lo)*d.Tolerance {
			continue
		}

		if gap := near - lead; gap < res.clearance {
			res.clearance = gap
			res.bounds = shrunk
		}
	}

	res.blocked = res.clearance < d.Probe
	return res
}
