package collision

import (
	"math"

	"chosenoffset.com/ark/internal/core/geom"
)

// gridWorld is a uniform tile grid used as both providers in tests. A
// bounded grid reports no tile outside cols x rows; an unbounded one
// (cols == 0) covers the whole plane.
type gridWorld struct {
	size             float64
	originX, originY float64
	cols, rows       int
	blocked          func(col, row int) bool
	obstacles        []Obstacle
	queries          []geom.Box
}

func newGrid(size float64, cols, rows int) *gridWorld {
	return &gridWorld{size: size, cols: cols, rows: rows}
}

func (g *gridWorld) TileAt(p geom.Point) (Tile, bool) {
	col := int(math.Floor((p.X - g.originX) / g.size))
	row := int(math.Floor((p.Y - g.originY) / g.size))
	if g.cols > 0 && (col < 0 || col >= g.cols || row < 0 || row >= g.rows) {
		return Tile{}, false
	}
	box := geom.Box{
		Left:   g.originX + float64(col)*g.size,
		Top:    g.originY + float64(row)*g.size,
		Width:  g.size,
		Height: g.size,
	}
	walkable := g.blocked == nil || !g.blocked(col, row)
	return Tile{Box: box, Walkable: walkable}, true
}

func (g *gridWorld) ObstaclesNear(region geom.Box) []Obstacle {
	g.queries = append(g.queries, region)
	return g.obstacles
}

// tree is an obstacle with fixed bounds
type tree geom.Box

func (t tree) Bounds() geom.Box { return geom.Box(t) }

func treeAt(c geom.Point, w, h float64) tree {
	return tree(geom.BoxAt(c, w, h))
}

func near(a, b float64) bool {
	return math.Abs(a-b) <= 1e-6*math.Max(1, math.Abs(a)+math.Abs(b))
}

func malformedMovements() []Movement {
	return []Movement{
		{Direction: DirInvalid, Distance: 10},
		{Direction: Direction(42), Distance: 10},
		{Direction: DirUp, Distance: -5},
		{Direction: DirUp, Distance: math.NaN()},
	}
}
