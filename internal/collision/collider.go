package collision

import "chosenoffset.com/ark/internal/core/geom"

// Anchor is a position shared with something outside the collision system,
// typically a sprite. It is told the new center after every resolution.
type Anchor interface {
	SetCenter(c geom.Point)
}

// Collider is the spatial representation of a movable game object. It holds
// its box and at most one pending movement request.
type Collider struct {
	box        geom.Box
	pending    Movement
	hasPending bool
	anchor     Anchor
	last       Resolution
}

// Box returns the current bounding box
func (c *Collider) Box() geom.Box {
	return c.box
}

// Center returns the current center
func (c *Collider) Center() geom.Point {
	return c.box.Center()
}

// SetCenter teleports the collider without collision checks
func (c *Collider) SetCenter(p geom.Point) {
	c.box = c.box.MoveCenterTo(p)
}

// SetAnchor attaches a shared position reference (nil detaches)
func (c *Collider) SetAnchor(a Anchor) {
	c.anchor = a
}

// Request stores mv as the pending movement, replacing any earlier request.
// Invalid requests are rejected and leave the pending state untouched.
func (c *Collider) Request(mv Movement) bool {
	if !mv.Valid() {
		return false
	}
	c.pending = mv
	c.hasPending = true
	return true
}

// Pending returns the outstanding request, if any
func (c *Collider) Pending() (Movement, bool) {
	return c.pending, c.hasPending
}

// Clear discards the outstanding request
func (c *Collider) Clear() {
	c.pending = Movement{}
	c.hasPending = false
}

// LastResolution returns the outcome of the most recent resolved request
func (c *Collider) LastResolution() Resolution {
	return c.last
}

// take consumes the pending request so it is not replayed next tick
func (c *Collider) take() (Movement, bool) {
	mv, ok := c.pending, c.hasPending
	c.Clear()
	return mv, ok
}
