// Package tilemap holds a single rectangular tile map placed in world
// coordinates together with the objects living on it. It answers the tile
// and obstacle queries of the collision engine.
package tilemap

import (
	"fmt"
	"math"
	"math/rand"

	"chosenoffset.com/ark/internal/collision"
	"chosenoffset.com/ark/internal/core/geom"
	"chosenoffset.com/ark/internal/world/atlas"
	"chosenoffset.com/ark/internal/world/object"
)

// TileMap is a grid of atlas tiles with trees, logs, pickups and dust clouds
// on top
type TileMap struct {
	Data  *MapData
	Atlas *atlas.Atlas

	origin geom.Point
	size   float64
	defs   [][]*atlas.TileDefinition // [y][x]

	trees   []*object.Tree
	logs    []*object.WoodLog
	pickups []*object.Pickup
	dust    []*object.DustCloud
}

// New builds a map from parsed data. Every tile name must exist in the
// atlas; trees on unwalkable tiles are rejected.
func New(data *MapData, a *atlas.Atlas, treeHP int) (*TileMap, error) {
	if err := validateMapData(data); err != nil {
		return nil, err
	}
	if a == nil {
		return nil, fmt.Errorf("atlas is required")
	}

	defs := make([][]*atlas.TileDefinition, data.Height)
	for y, row := range data.Tiles {
		defs[y] = make([]*atlas.TileDefinition, data.Width)
		for x, name := range row {
			def, ok := a.GetTile(name)
			if !ok {
				return nil, fmt.Errorf("tile not found in atlas: %s at (%d, %d)", name, x, y)
			}
			defs[y][x] = def
		}
	}

	m := &TileMap{
		Data:   data,
		Atlas:  a,
		origin: geom.Point{X: data.OriginX, Y: data.OriginY},
		size:   float64(a.Config.TileSize),
		defs:   defs,
	}

	for i, spawn := range data.Trees {
		hp := spawn.HP
		if hp <= 0 {
			hp = treeHP
		}
		if !m.AddTree(object.NewTree(m.TileCenter(spawn.X, spawn.Y), m.treeSize(), m.treeSize(), hp)) {
			return nil, fmt.Errorf("tree %d placed on unwalkable tile (%d, %d)", i, spawn.X, spawn.Y)
		}
	}

	for i, spawn := range data.Pickups {
		if !m.AddPickup(object.NewPickup(spawn.Item, m.TileCenter(spawn.X, spawn.Y))) {
			return nil, fmt.Errorf("pickup %d placed on unwalkable tile (%d, %d)", i, spawn.X, spawn.Y)
		}
	}

	return m, nil
}

// Name returns the map name
func (m *TileMap) Name() string { return m.Data.Name }

// TileSize returns the edge length of a tile in world units
func (m *TileMap) TileSize() float64 { return m.size }

// Bounds returns the area the map covers in world coordinates
func (m *TileMap) Bounds() geom.Box {
	return geom.Box{
		Left:   m.origin.X,
		Top:    m.origin.Y,
		Width:  float64(m.Data.Width) * m.size,
		Height: float64(m.Data.Height) * m.size,
	}
}

// Contains reports whether p lies on the map
func (m *TileMap) Contains(p geom.Point) bool {
	return m.Bounds().Contains(p)
}

// GridAt converts a world position to tile coordinates
func (m *TileMap) GridAt(p geom.Point) (x, y int, ok bool) {
	x = int(math.Floor((p.X - m.origin.X) / m.size))
	y = int(math.Floor((p.Y - m.origin.Y) / m.size))
	if x < 0 || x >= m.Data.Width || y < 0 || y >= m.Data.Height {
		return 0, 0, false
	}
	return x, y, true
}

// TileBox returns the world box of tile (x, y)
func (m *TileMap) TileBox(x, y int) geom.Box {
	return geom.Box{
		Left:   m.origin.X + float64(x)*m.size,
		Top:    m.origin.Y + float64(y)*m.size,
		Width:  m.size,
		Height: m.size,
	}
}

// TileCenter returns the world center of tile (x, y)
func (m *TileMap) TileCenter(x, y int) geom.Point {
	return m.TileBox(x, y).Center()
}

// TileDefAt returns the definition of tile (x, y)
func (m *TileMap) TileDefAt(x, y int) (*atlas.TileDefinition, bool) {
	if x < 0 || x >= m.Data.Width || y < 0 || y >= m.Data.Height {
		return nil, false
	}
	return m.defs[y][x], true
}

// IsWalkable returns whether the tile at the given coordinates is walkable
func (m *TileMap) IsWalkable(x, y int) bool {
	def, ok := m.TileDefAt(x, y)
	if !ok {
		return false
	}
	return def.Walkable()
}

// TileAt implements collision.TileProvider
func (m *TileMap) TileAt(p geom.Point) (collision.Tile, bool) {
	x, y, ok := m.GridAt(p)
	if !ok {
		return collision.Tile{}, false
	}
	return collision.Tile{Box: m.TileBox(x, y), Walkable: m.defs[y][x].Walkable()}, true
}

// ObstaclesNear implements collision.ObstacleProvider
func (m *TileMap) ObstaclesNear(region geom.Box) []collision.Obstacle {
	var out []collision.Obstacle
	for _, t := range m.trees {
		if t.Bounds().Intersects(region) {
			out = append(out, t)
		}
	}
	return out
}

// PlayerSpawn returns the spawn point in world coordinates. Maps without
// one spawn the player at their center.
func (m *TileMap) PlayerSpawn() geom.Point {
	if m.Data.PlayerSpawn == nil {
		return m.Bounds().Center()
	}
	return geom.Point{
		X: m.origin.X + m.Data.PlayerSpawn.X*m.size,
		Y: m.origin.Y + m.Data.PlayerSpawn.Y*m.size,
	}
}

func (m *TileMap) treeSize() float64 {
	return math.Min(object.TreeWidth, m.size)
}

// Trees returns the standing trees
func (m *TileMap) Trees() []*object.Tree { return m.trees }

// Logs returns the wood logs lying on the map
func (m *TileMap) Logs() []*object.WoodLog { return m.logs }

// Pickups returns the items waiting to be picked up
func (m *TileMap) Pickups() []*object.Pickup { return m.pickups }

// DustClouds returns the active dust clouds
func (m *TileMap) DustClouds() []*object.DustCloud { return m.dust }

// TreesNear returns trees whose bounds intersect region
func (m *TileMap) TreesNear(region geom.Box) []*object.Tree {
	var out []*object.Tree
	for _, t := range m.trees {
		if t.Bounds().Intersects(region) {
			out = append(out, t)
		}
	}
	return out
}

// AddTree places t on the map. Trees must stand on a walkable tile.
func (m *TileMap) AddTree(t *object.Tree) bool {
	x, y, ok := m.GridAt(t.Trunk())
	if !ok || !m.IsWalkable(x, y) {
		return false
	}
	m.trees = append(m.trees, t)
	return true
}

// RemoveTree takes t off the map
func (m *TileMap) RemoveTree(t *object.Tree) bool {
	for i, other := range m.trees {
		if other == t {
			m.trees = append(m.trees[:i], m.trees[i+1:]...)
			return true
		}
	}
	return false
}

// SpawnWoodLog drops a log at p
func (m *TileMap) SpawnWoodLog(p geom.Point) *object.WoodLog {
	l := object.NewWoodLog(p)
	m.logs = append(m.logs, l)
	return l
}

// SpawnDustCloud starts a dust cloud at p
func (m *TileMap) SpawnDustCloud(p geom.Point, lifetime float64) *object.DustCloud {
	d := object.NewDustCloud(p, lifetime)
	m.dust = append(m.dust, d)
	return d
}

// CollectLogs removes and returns every log touching box
func (m *TileMap) CollectLogs(box geom.Box) []*object.WoodLog {
	var collected []*object.WoodLog
	m.logs, collected = collect(m.logs, box, nil)
	return collected
}

// AddPickup places p on the map. Pickups must lie on a walkable tile.
func (m *TileMap) AddPickup(p *object.Pickup) bool {
	x, y, ok := m.GridAt(p.Position)
	if !ok || !m.IsWalkable(x, y) {
		return false
	}
	m.pickups = append(m.pickups, p)
	return true
}

// CollectPickups removes and returns the pickups touching box that take
// accepts. Refused pickups stay on the map.
func (m *TileMap) CollectPickups(box geom.Box, take func(*object.Pickup) bool) []*object.Pickup {
	var collected []*object.Pickup
	m.pickups, collected = collect(m.pickups, box, take)
	return collected
}

// collect splits items into those kept and those touching box that take
// accepts. A nil take accepts everything. The kept slice reuses items.
func collect[T interface{ Bounds() geom.Box }](items []T, box geom.Box, take func(T) bool) (kept, collected []T) {
	kept = items[:0]
	for _, it := range items {
		if it.Bounds().Intersects(box) && (take == nil || take(it)) {
			collected = append(collected, it)
			continue
		}
		kept = append(kept, it)
	}
	var zero T
	for i := len(kept); i < len(items); i++ {
		items[i] = zero
	}
	return kept, collected
}

// Update ages shaking trees and dust clouds, dropping expired clouds
func (m *TileMap) Update(dt float64) {
	for _, t := range m.trees {
		t.Update(dt)
	}

	kept := m.dust[:0]
	for _, d := range m.dust {
		d.Update(dt)
		if !d.Expired() {
			kept = append(kept, d)
		}
	}
	for i := len(kept); i < len(m.dust); i++ {
		m.dust[i] = nil
	}
	m.dust = kept
}

// AnyShaking reports whether at least one tree is shaking
func (m *TileMap) AnyShaking() bool {
	for _, t := range m.trees {
		if t.Shaking() {
			return true
		}
	}
	return false
}

// ScatterTrees plants trees on free walkable tiles with the given
// probability per tile, keeping the spawn tile, its neighbours and pickup
// tiles clear.
// It returns the number of trees planted.
func (m *TileMap) ScatterTrees(rng *rand.Rand, density float64, hp int) int {
	if rng == nil || density <= 0 {
		return 0
	}

	spawnX, spawnY, hasSpawn := m.GridAt(m.PlayerSpawn())
	occupied := make(map[[2]int]bool, len(m.trees))
	for _, t := range m.trees {
		if x, y, ok := m.GridAt(t.Trunk()); ok {
			occupied[[2]int{x, y}] = true
		}
	}
	for _, p := range m.pickups {
		if x, y, ok := m.GridAt(p.Position); ok {
			occupied[[2]int{x, y}] = true
		}
	}

	planted := 0
	for y := 0; y < m.Data.Height; y++ {
		for x := 0; x < m.Data.Width; x++ {
			if rng.Float64() >= density {
				continue
			}
			if !m.IsWalkable(x, y) || occupied[[2]int{x, y}] {
				continue
			}
			if hasSpawn && abs(x-spawnX) <= 1 && abs(y-spawnY) <= 1 {
				continue
			}
			if m.AddTree(object.NewTree(m.TileCenter(x, y), m.treeSize(), m.treeSize(), hp)) {
				occupied[[2]int{x, y}] = true
				planted++
			}
		}
	}
	return planted
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
