package object

import "chosenoffset.com/ark/internal/core/geom"

// Tree is a choppable obstacle. Its collision box is centered on the trunk.
type Tree struct {
	ID    string
	trunk geom.Point
	box   geom.Box
	hp    int
	shake float64 // seconds of shaking left
}

// NewTree creates a tree rooted at trunk. Hit points below one are raised
// to one so every tree can be felled.
func NewTree(trunk geom.Point, width, height float64, hp int) *Tree {
	if hp < 1 {
		hp = 1
	}
	return &Tree{
		ID:    newID(),
		trunk: trunk,
		box:   geom.BoxAt(trunk, width, height),
		hp:    hp,
	}
}

// Bounds returns the collision footprint
func (t *Tree) Bounds() geom.Box {
	return t.box
}

// Trunk returns the point where logs and dust spawn
func (t *Tree) Trunk() geom.Point {
	return t.trunk
}

// HP returns the remaining hit points
func (t *Tree) HP() int {
	return t.hp
}

// Felled reports whether the tree has no hit points left
func (t *Tree) Felled() bool {
	return t.hp <= 0
}

// Hit removes one hit point and returns true when that felled the tree.
// Hitting a felled tree does nothing.
func (t *Tree) Hit() bool {
	if t.hp <= 0 {
		return false
	}
	t.hp--
	return t.hp == 0
}

// Shake starts (or restarts) the shaking animation for d seconds
func (t *Tree) Shake(d float64) {
	if d > t.shake {
		t.shake = d
	}
}

// Shaking reports whether the shake animation is running
func (t *Tree) Shaking() bool {
	return t.shake > 0
}

// Update ages the shake timer
func (t *Tree) Update(dt float64) {
	if t.shake > 0 {
		t.shake -= dt
		if t.shake < 0 {
			t.shake = 0
		}
	}
}

// Kind returns KindTree
func (t *Tree) Kind() Kind { return KindTree }
