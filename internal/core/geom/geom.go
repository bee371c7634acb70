// Package geom provides the world-space primitives shared by the collision
// engine, the tile maps and the renderers. Y grows downward (screen space).
package geom

import "math"

// Point represents a 2D point in world space
type Point struct {
	X, Y float64
}

// Add returns p offset by (dx, dy)
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Distance calculates the Euclidean distance between two points
func Distance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Box is an axis-aligned rectangle in world coordinates.
// Width and Height are never negative for boxes built through BoxAt.
type Box struct {
	Left, Top     float64
	Width, Height float64
}

// BoxAt builds a box of the given size centered on c
func BoxAt(c Point, width, height float64) Box {
	return Box{
		Left:   c.X - width/2,
		Top:    c.Y - height/2,
		Width:  width,
		Height: height,
	}
}

// Right returns the x coordinate of the right edge
func (b Box) Right() float64 { return b.Left + b.Width }

// Bottom returns the y coordinate of the bottom edge
func (b Box) Bottom() float64 { return b.Top + b.Height }

// Center returns the center point of the box
func (b Box) Center() Point {
	return Point{X: b.Left + b.Width/2, Y: b.Top + b.Height/2}
}

// TopLeft returns the top-left corner
func (b Box) TopLeft() Point { return Point{X: b.Left, Y: b.Top} }

// TopRight returns the top-right corner
func (b Box) TopRight() Point { return Point{X: b.Right(), Y: b.Top} }

// BottomLeft returns the bottom-left corner
func (b Box) BottomLeft() Point { return Point{X: b.Left, Y: b.Bottom()} }

// BottomRight returns the bottom-right corner
func (b Box) BottomRight() Point { return Point{X: b.Right(), Y: b.Bottom()} }

// Empty reports whether the box has no area
func (b Box) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Translate returns the box moved by (dx, dy)
func (b Box) Translate(dx, dy float64) Box {
	b.Left += dx
	b.Top += dy
	return b
}

// MoveCenterTo returns the box re-centered on c, keeping its size
func (b Box) MoveCenterTo(c Point) Box {
	return BoxAt(c, b.Width, b.Height)
}

// Shrink insets every edge by margin. A margin larger than half a
// dimension collapses that dimension to zero around the center.
func (b Box) Shrink(margin float64) Box {
	c := b.Center()
	w := math.Max(b.Width-2*margin, 0)
	h := math.Max(b.Height-2*margin, 0)
	return BoxAt(c, w, h)
}

// Contains reports whether p lies inside the box. The left and top edges
// are inclusive, the right and bottom edges exclusive, so a grid of boxes
// assigns every point to exactly one cell.
func (b Box) Contains(p Point) bool {
	return p.X >= b.Left && p.X < b.Right() && p.Y >= b.Top && p.Y < b.Bottom()
}

// Intersects reports whether two boxes overlap with positive area
func (b Box) Intersects(o Box) bool {
	return b.Left < o.Right() && b.Right() > o.Left &&
		b.Top < o.Bottom() && b.Bottom() > o.Top
}

// Union returns the smallest box containing both boxes
func (b Box) Union(o Box) Box {
	left := math.Min(b.Left, o.Left)
	top := math.Min(b.Top, o.Top)
	right := math.Max(b.Right(), o.Right())
	bottom := math.Max(b.Bottom(), o.Bottom())
	return Box{Left: left, Top: top, Width: right - left, Height: bottom - top}
}
