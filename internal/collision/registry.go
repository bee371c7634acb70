package collision

import (
	"sync"

	"chosenoffset.com/ark/internal/core/geom"
)

// Handle is a stable reference to a collider slot. A handle goes stale when
// its owner destroys the collider; the generation detects slot reuse.
type Handle struct {
	index      uint32
	generation uint32
}

// IsZero reports whether h was never issued by a registry
func (h Handle) IsZero() bool {
	return h.generation == 0
}

type slot struct {
	generation uint32
	collider   *Collider
	tracked    bool
}

type pendingAnchor struct {
	anchor Anchor
	center geom.Point
}

// Registry owns the collider arena and a list of non-owning handles that
// are simulated every tick. Owners keep their handle and call Destroy when
// the game object goes away; the registry notices on its next prune.
//
// Add, Destroy, PruneExpired and SimulateMovement are serialized by one
// mutex so iteration and mutation never interleave. Colliders returned by
// Get must only be touched from the tick goroutine.
type Registry struct {
	mu        sync.Mutex
	resolver  *Resolver
	tiles     TileProvider
	obstacles ObstacleProvider

	slots   []slot
	free    []uint32
	tracked []Handle
}

// NewRegistry creates a registry resolving against the given providers
func NewRegistry(resolver *Resolver, tiles TileProvider, obstacles ObstacleProvider) *Registry {
	if resolver == nil {
		resolver = NewResolver(DefaultTuning())
	}
	return &Registry{
		resolver:  resolver,
		tiles:     tiles,
		obstacles: obstacles,
	}
}

// SetWorld switches the providers used by subsequent ticks
func (r *Registry) SetWorld(tiles TileProvider, obstacles ObstacleProvider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tiles = tiles
	r.obstacles = obstacles
}

// CreateBoxCollider allocates a collider centered on center. It returns a
// zero handle and false when width or height is not positive.
func (r *Registry) CreateBoxCollider(center geom.Point, width, height float64) (Handle, bool) {
	if !(width > 0) || !(height > 0) {
		return Handle{}, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	c := &Collider{box: geom.BoxAt(center, width, height)}

	if n := len(r.free); n > 0 {
		idx := r.free[n-1]
		r.free = r.free[:n-1]
		s := &r.slots[idx]
		s.collider = c
		s.tracked = false
		return Handle{index: idx, generation: s.generation}, true
	}

	r.slots = append(r.slots, slot{generation: 1, collider: c})
	return Handle{index: uint32(len(r.slots) - 1), generation: 1}, true
}

// Add starts simulating the collider behind h. It returns false for stale
// handles and for handles that are already tracked.
func (r *Registry) Add(h Handle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.slotLocked(h)
	if s == nil || s.tracked {
		return false
	}
	s.tracked = true
	r.tracked = append(r.tracked, h)
	return true
}

// Destroy releases the collider behind h. Every copy of h becomes stale.
func (r *Registry) Destroy(h Handle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.slotLocked(h)
	if s == nil {
		return false
	}
	s.collider = nil
	s.tracked = false
	s.generation++
	if s.generation == 0 {
		// never hand out the zero generation
		s.generation = 1
	}
	r.free = append(r.free, h.index)
	return true
}

// Get returns the live collider behind h
func (r *Registry) Get(h Handle) (*Collider, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.slotLocked(h)
	if s == nil {
		return nil, false
	}
	return s.collider, true
}

// Alive reports whether h still refers to a live collider
func (r *Registry) Alive(h Handle) bool {
	_, ok := r.Get(h)
	return ok
}

// Request stores a movement request on the collider behind h
func (r *Registry) Request(h Handle, mv Movement) bool {
	c, ok := r.Get(h)
	if !ok {
		return false
	}
	return c.Request(mv)
}

// Len returns the number of tracked handles, stale ones included
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tracked)
}

// SimulateMovement resolves every pending request on live tracked colliders
// and writes the results back, then prunes stale handles. Anchors are
// notified after the registry lock is released. It returns the number of
// requests resolved.
func (r *Registry) SimulateMovement() int {
	r.mu.Lock()

	var notify []pendingAnchor
	resolved := 0
	for _, h := range r.tracked {
		s := r.slotLocked(h)
		if s == nil {
			continue
		}
		c := s.collider
		mv, ok := c.take()
		if !ok {
			continue
		}

		c.last = r.resolver.ResolveBox(c.box, mv, r.tiles, r.obstacles)
		c.box = c.last.Box
		resolved++

		if c.anchor != nil {
			notify = append(notify, pendingAnchor{anchor: c.anchor, center: c.box.Center()})
		}
	}

	r.pruneLocked()
	r.mu.Unlock()

	for _, n := range notify {
		n.anchor.SetCenter(n.center)
	}
	return resolved
}

// PruneExpired drops tracked handles whose collider has been destroyed and
// returns how many were removed.
func (r *Registry) PruneExpired() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pruneLocked()
}

func (r *Registry) pruneLocked() int {
	kept := r.tracked[:0]
	for _, h := range r.tracked {
		if r.slotLocked(h) != nil {
			kept = append(kept, h)
		}
	}
	removed := len(r.tracked) - len(kept)
	for i := len(kept); i < len(r.tracked); i++ {
		r.tracked[i] = Handle{}
	}
	r.tracked = kept
	return removed
}

func (r *Registry) slotLocked(h Handle) *slot {
	if h.IsZero() || int(h.index) >= len(r.slots) {
		return nil
	}
	s := &r.slots[h.index]
	if s.generation != h.generation || s.collider == nil {
		return nil
	}
	return s
}
