package collision

//go:generate go tool mockgen -source=provider.go -destination=mocks/mock_provider.go -package=mocks

import "chosenoffset.com/ark/internal/core/geom"

// Tile is one grid cell as seen by the resolver
type Tile struct {
	Box      geom.Box
	Walkable bool
}

// TileProvider answers walkability queries in world coordinates.
// The second return value is false when no tile is loaded at p.
type TileProvider interface {
	TileAt(p geom.Point) (Tile, bool)
}

// Obstacle is a solid object with its own collision footprint
type Obstacle interface {
	Bounds() geom.Box
}

// ObstacleProvider returns candidate obstacles that may intersect region.
// Implementations scope the query to the single tile map holding the
// region's center.
type ObstacleProvider interface {
	ObstaclesNear(region geom.Box) []Obstacle
}
