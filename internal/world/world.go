// Package world groups tile maps into a playable area (the overworld or
// the ark interior) and routes collision queries to the right map.
package world

import (
	"errors"
	"fmt"

	"chosenoffset.com/ark/internal/collision"
	"chosenoffset.com/ark/internal/core/geom"
	"chosenoffset.com/ark/internal/world/object"
	"chosenoffset.com/ark/internal/world/tilemap"
)

// ErrNoMaps is returned when a world would contain no tile maps
var ErrNoMaps = errors.New("world has no maps")

// Kind distinguishes the two areas of the game
type Kind string

const (
	KindOverworld Kind = "overworld"
	KindArk       Kind = "ark"
)

// World is a set of non-overlapping tile maps in world coordinates
type World struct {
	Name  string
	Kind  Kind
	maps  []*tilemap.TileMap
	start *tilemap.TileMap
}

// New builds a world from maps. The first map holds the player spawn.
func New(name string, kind Kind, maps ...*tilemap.TileMap) (*World, error) {
	if len(maps) == 0 {
		return nil, ErrNoMaps
	}
	for i, a := range maps {
		if a == nil {
			return nil, fmt.Errorf("map %d is nil", i)
		}
		for _, b := range maps[:i] {
			if a.Bounds().Intersects(b.Bounds()) {
				return nil, fmt.Errorf("map %s overlaps map %s", a.Name(), b.Name())
			}
		}
	}
	return &World{Name: name, Kind: kind, maps: maps, start: maps[0]}, nil
}

// Maps returns the tile maps of the world
func (w *World) Maps() []*tilemap.TileMap { return w.maps }

// StartMap returns the map the player spawns on
func (w *World) StartMap() *tilemap.TileMap { return w.start }

// PlayerSpawn returns the spawn point of the start map
func (w *World) PlayerSpawn() geom.Point { return w.start.PlayerSpawn() }

// Bounds returns the smallest box containing every map
func (w *World) Bounds() geom.Box {
	b := w.maps[0].Bounds()
	for _, m := range w.maps[1:] {
		b = b.Union(m.Bounds())
	}
	return b
}

// MapAt returns the map containing p
func (w *World) MapAt(p geom.Point) (*tilemap.TileMap, bool) {
	for _, m := range w.maps {
		if m.Contains(p) {
			return m, true
		}
	}
	return nil, false
}

// TileAt implements collision.TileProvider
func (w *World) TileAt(p geom.Point) (collision.Tile, bool) {
	m, ok := w.MapAt(p)
	if !ok {
		return collision.Tile{}, false
	}
	return m.TileAt(p)
}

// ObstaclesNear implements collision.ObstacleProvider. Only the map holding
// the region's center is searched, so a tree just across a map seam is not
// reported.
func (w *World) ObstaclesNear(region geom.Box) []collision.Obstacle {
	m, ok := w.MapAt(region.Center())
	if !ok {
		return nil
	}
	return m.ObstaclesNear(region)
}

// TreesNear returns trees near region on the map holding its center
func (w *World) TreesNear(region geom.Box) []*object.Tree {
	m, ok := w.MapAt(region.Center())
	if !ok {
		return nil
	}
	return m.TreesNear(region)
}

// RemoveTree takes t off whichever map holds it
func (w *World) RemoveTree(t *object.Tree) bool {
	for _, m := range w.maps {
		if m.RemoveTree(t) {
			return true
		}
	}
	return false
}

// SpawnWoodLog drops a log on the map containing p
func (w *World) SpawnWoodLog(p geom.Point) *object.WoodLog {
	m, ok := w.MapAt(p)
	if !ok {
		return nil
	}
	return m.SpawnWoodLog(p)
}

// SpawnDustCloud starts a dust cloud on the map containing p
func (w *World) SpawnDustCloud(p geom.Point, lifetime float64) *object.DustCloud {
	m, ok := w.MapAt(p)
	if !ok {
		return nil
	}
	return m.SpawnDustCloud(p, lifetime)
}

// CollectLogs picks up logs touching box on the map holding its center
func (w *World) CollectLogs(box geom.Box) []*object.WoodLog {
	m, ok := w.MapAt(box.Center())
	if !ok {
		return nil
	}
	return m.CollectLogs(box)
}

// CollectPickups picks up the pickups touching box that take accepts, on
// the map holding its center
func (w *World) CollectPickups(box geom.Box, take func(*object.Pickup) bool) []*object.Pickup {
	m, ok := w.MapAt(box.Center())
	if !ok {
		return nil
	}
	return m.CollectPickups(box, take)
}

// Update advances every map
func (w *World) Update(dt float64) {
	for _, m := range w.maps {
		m.Update(dt)
	}
}

// AnyShaking reports whether a tree anywhere in the world is shaking
func (w *World) AnyShaking() bool {
	for _, m := range w.maps {
		if m.AnyShaking() {
			return true
		}
	}
	return false
}
