package game

import (
	"log"

	"chosenoffset.com/ark/internal/collision"
	"chosenoffset.com/ark/internal/core/geom"
	"chosenoffset.com/ark/internal/world"
)

const (
	spawnAttemptsPerAnimal = 50
	minRestSeconds         = 0.5
	maxExtraRestSeconds    = 1.5
)

var headings = []collision.Direction{
	collision.DirInvalid, collision.DirUp, collision.DirDown, collision.DirLeft, collision.DirRight,
}

// spawnAnimals places up to n animals on free walkable tiles of the
// overworld start map, away from the player
func (g *Game) spawnAnimals(n int) int {
	m := g.Worlds[world.KindOverworld].StartMap()
	size := g.Config.Movement.AnimalSize
	keepOut := m.TileSize() * 2

	spawned := 0
	for attempt := 0; spawned < n && attempt < n*spawnAttemptsPerAnimal; attempt++ {
		x := g.rng.Intn(m.Data.Width)
		y := g.rng.Intn(m.Data.Height)
		if !m.IsWalkable(x, y) || len(m.TreesNear(m.TileBox(x, y))) > 0 {
			continue
		}
		center := m.TileCenter(x, y)
		if geom.Distance(center, g.Player.Pos) < keepOut || g.animalAt(center) {
			continue
		}

		a := &Animal{
			Species: species[g.rng.Intn(len(species))],
			Pos:     center,
			Size:    size,
		}
		h, err := g.track(center, size, size, a)
		if err != nil {
			log.Printf("Failed to spawn %s: %v", a.Species, err)
			return spawned
		}
		a.Handle = h
		g.Animals = append(g.Animals, a)
		spawned++
	}
	return spawned
}

func (g *Game) animalAt(p geom.Point) bool {
	for _, a := range g.Animals {
		if a.Box().Contains(p) {
			return true
		}
	}
	return false
}

// wander moves every animal along its heading and picks a new heading or a
// rest when its timer runs out
func (g *Game) wander(dt float64) {
	speed := g.Config.Movement.AnimalSpeed
	for _, a := range g.Animals {
		a.Timer -= dt
		if a.Timer <= 0 {
			a.Heading = headings[g.rng.Intn(len(headings))]
			a.Timer = minRestSeconds + g.rng.Float64()*maxExtraRestSeconds
		}
		if !a.Heading.Valid() {
			continue
		}
		g.Registry.Request(a.Handle, collision.NewMovement(a.Heading, speed*dt))
	}
}
