package axe

import (
	"chosenoffset.com/ark/internal/core/geom"
	"chosenoffset.com/ark/internal/world/object"
)

// Forest is the part of the world an axe can act on
type Forest interface {
	TreesNear(region geom.Box) []*object.Tree
	RemoveTree(t *object.Tree) bool
	SpawnWoodLog(p geom.Point) *object.WoodLog
	SpawnDustCloud(p geom.Point, lifetime float64) *object.DustCloud
}

// Config holds the effect durations applied on a hit
type Config struct {
	ShakeSeconds     float64
	DustCloudSeconds float64
}

// DefaultConfig returns the shipped effect durations
func DefaultConfig() Config {
	return Config{
		ShakeSeconds:     0.4,
		DustCloudSeconds: 2.0,
	}
}

// Hit describes what one swing did to one tree
type Hit struct {
	Tree   *object.Tree
	Felled bool
	Log    *object.WoodLog   // set when the tree fell
	Dust   *object.DustCloud // set when the tree fell
}

// Handler queues swings and resolves them once they are fully extended
type Handler struct {
	forest Forest
	config Config
	swings []*Swing
}

// NewHandler creates a handler acting on forest
func NewHandler(forest Forest, config Config) *Handler {
	return &Handler{forest: forest, config: config}
}

// SetForest switches the world the handler acts on
func (h *Handler) SetForest(f Forest) {
	h.forest = f
}

// Add queues a swing. Processed and nil swings are rejected.
func (h *Handler) Add(s *Swing) bool {
	if s == nil || s.state == Processed {
		return false
	}
	for _, q := range h.swings {
		if q == s {
			return false
		}
	}
	h.swings = append(h.swings, s)
	return true
}

// Pending returns the number of queued swings
func (h *Handler) Pending() int {
	return len(h.swings)
}

// Advance moves every queued swing forward by dt seconds
func (h *Handler) Advance(dt float64) {
	for _, s := range h.swings {
		s.Advance(dt)
	}
}

// Update resolves every fully extended swing against the first tree its
// blade touches, marks it processed and drops it. Swings still extending
// stay queued. It returns the hits that landed.
func (h *Handler) Update() []Hit {
	var hits []Hit
	kept := h.swings[:0]
	for _, s := range h.swings {
		switch s.state {
		case Swinging:
			kept = append(kept, s)
			continue
		case FullyExtended:
			if hit, ok := h.strike(s); ok {
				hits = append(hits, hit)
			}
			s.markProcessed()
		}
	}
	for i := len(kept); i < len(h.swings); i++ {
		h.swings[i] = nil
	}
	h.swings = kept
	return hits
}

func (h *Handler) strike(s *Swing) (Hit, bool) {
	if h.forest == nil {
		return Hit{}, false
	}

	var target *object.Tree
	for _, t := range h.forest.TreesNear(s.Blade) {
		if t != nil && !t.Felled() && t.Bounds().Intersects(s.Blade) {
			target = t
			break
		}
	}
	if target == nil {
		return Hit{}, false
	}

	hit := Hit{Tree: target}
	if !target.Hit() {
		target.Shake(h.config.ShakeSeconds)
		return hit, true
	}

	hit.Felled = true
	h.forest.RemoveTree(target)
	hit.Log = h.forest.SpawnWoodLog(target.Trunk())
	hit.Dust = h.forest.SpawnDustCloud(target.Trunk(), h.config.DustCloudSeconds)
	return hit, true
}
