package collision

import (
	"math"

	"chosenoffset.com/ark/internal/core/geom"
)

// StopReason explains why a resolution pass ended
type StopReason int

const (
	StopComplete    StopReason = iota // full distance covered
	StopWorldEdge                     // a sample landed where no tile is loaded
	StopBlockedTile                   // a sampled tile is not walkable
	StopObstacle                      // the detector reported a blocking obstacle
	StopInvalid                       // malformed request, nothing moved
)

// String returns a short name for the stop reason
func (s StopReason) String() string {
	switch s {
	case StopComplete:
		return "complete"
	case StopWorldEdge:
		return "world_edge"
	case StopBlockedTile:
		return "blocked_tile"
	case StopObstacle:
		return "obstacle"
	case StopInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Resolution is the outcome of resolving one movement request
type Resolution struct {
	Box   geom.Box   // final box
	Moved float64    // distance actually covered
	Steps int        // loop iterations performed
	Stop  StopReason // why the loop ended
}

// Center returns the final center position
func (r Resolution) Center() geom.Point {
	return r.Box.Center()
}

// Resolver advances boxes tile by tile until the requested distance is
// covered or something blocks them. A single large step could skip over a
// one-tile-wide wall or a tree, so the box never moves further than the far
// boundary of the tile ahead in one iteration.
type Resolver struct {
	tuning   Tuning
	detector Detector
}

// NewResolver creates a resolver with the given thresholds
func NewResolver(t Tuning) *Resolver {
	t = t.normalized()
	return &Resolver{tuning: t, detector: NewDetector(t)}
}

// Tuning returns the thresholds in effect
func (r *Resolver) Tuning() Tuning {
	return r.tuning
}

// Detector returns the tree detector used by the resolver
func (r *Resolver) Detector() Detector {
	return r.detector
}

// Resolve returns the new center of box after applying mv
func (r *Resolver) Resolve(box geom.Box, mv Movement, tiles TileProvider, obstacles ObstacleProvider) geom.Point {
	return r.ResolveBox(box, mv, tiles, obstacles).Center()
}

// ResolveBox applies mv to box and reports how far it got and why it stopped.
// It never panics in release builds; a malformed request leaves the box
// where it was.
func (r *Resolver) ResolveBox(box geom.Box, mv Movement, tiles TileProvider, obstacles ObstacleProvider) Resolution {
	res := Resolution{Box: box, Stop: StopComplete}

	ax, ok := axisOf(mv.Direction)
	if !ok || !mv.Valid() {
		assertf(false, "collision: malformed movement %s/%v", mv.Direction, mv.Distance)
		res.Stop = StopInvalid
		return res
	}

	remaining := mv.Distance
	if remaining > 0 && tiles == nil {
		res.Stop = StopWorldEdge
		return res
	}

	for remaining > 0 {
		res.Steps++

		span, stop := r.probeTiles(res.Box, ax, tiles)
		if stop != StopComplete {
			// the tile ahead is closed but the rest of the current one is not
			span = r.roomInTile(res.Box, ax, tiles)
			if span <= 0 {
				res.Stop = stop
				return res
			}
		}

		if obstacles != nil {
			reach := math.Min(remaining, span)
			if stop == StopComplete {
				reach = math.Max(reach, r.tuning.MinStep)
			}
			swept := res.Box.Union(ax.advance(res.Box, reach))
			hit := r.detector.scan(res.Box, ax, obstacles.ObstaclesNear(swept))
			if hit.blocked {
				res.Stop = StopObstacle
				return res
			}
			span = math.Min(span, hit.clearance)
		}

		if remaining <= span {
			res.Box = ax.advance(res.Box, remaining)
			res.Moved += remaining
			return res
		}

		if stop != StopComplete {
			res.Box = ax.advance(res.Box, span)
			res.Moved += span
			res.Stop = stop
			return res
		}

		step := math.Min(math.Max(span, r.tuning.MinStep), remaining)
		res.Box = ax.advance(res.Box, step)
		res.Moved += step
		remaining -= step
	}

	return res
}

// edgeEpsilon moves a sample off the leading edge into the tile the edge
// lies on, so an edge sitting on a boundary reads the tile ahead of it.
const edgeEpsilon = 1e-6

// samples returns the three cross-axis sample coordinates of the leading
// edge: two inset corners and the center.
func (r *Resolver) samples(box geom.Box, ax axis) [3]float64 {
	lo, hi := ax.across(box)
	inset := (hi - lo) * r.tuning.CornerInset
	return [3]float64{lo + inset, (lo + hi) / 2, hi - inset}
}

// probeTiles samples the three leading-edge points one probe step ahead, so
// the minimum step never lands on an unchecked tile, and returns the
// distance from the leading edge to the far boundary of the tile under the
// center sample.
func (r *Resolver) probeTiles(box geom.Box, ax axis, tiles TileProvider) (float64, StopReason) {
	_, lead := ax.along(box)
	ahead := lead + r.tuning.MinStep

	var found [3]Tile
	for i, p := range r.samples(box, ax) {
		tile, ok := tiles.TileAt(ax.point(ahead, p))
		if !ok {
			return 0, StopWorldEdge
		}
		found[i] = tile
	}

	for _, tile := range found {
		if !tile.Walkable {
			return 0, StopBlockedTile
		}
	}

	_, far := ax.along(found[1].Box)
	return far - lead, StopComplete
}

// roomInTile returns how far the leading edge can advance without leaving
// the walkable tiles it lies on. It is zero when the edge sits on a closed
// boundary.
func (r *Resolver) roomInTile(box geom.Box, ax axis, tiles TileProvider) float64 {
	_, lead := ax.along(box)
	room := math.Inf(1)
	for _, p := range r.samples(box, ax) {
		tile, ok := tiles.TileAt(ax.point(lead+edgeEpsilon, p))
		if !ok || !tile.Walkable {
			return 0
		}
		_, far := ax.along(tile.Box)
		room = math.Min(room, far-lead)
	}
	return math.Max(room, 0)
}
