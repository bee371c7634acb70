package geom

import (
	"math"
	"testing"
)

func TestBoxAtAccessors(t *testing.T) {
	b := BoxAt(Point{X: 100, Y: 100}, 16, 8)

	if b.Left != 92 || b.Top != 96 {
		t.Fatalf("Expected top-left (92, 96), got (%v, %v)", b.Left, b.Top)
	}
	if b.Right() != 108 || b.Bottom() != 104 {
		t.Errorf("Expected right/bottom (108, 104), got (%v, %v)", b.Right(), b.Bottom())
	}
	if c := b.Center(); c.X != 100 || c.Y != 100 {
		t.Errorf("Expected center (100, 100), got %+v", c)
	}
	if br := b.BottomRight(); br.X != 108 || br.Y != 104 {
		t.Errorf("Expected bottom-right (108, 104), got %+v", br)
	}
}

func TestShrink(t *testing.T) {
	b := Box{Left: 108, Top: 92, Width: 16, Height: 16}.Shrink(2)

	if b.Left != 110 || b.Right() != 122 {
		t.Errorf("Expected x span [110, 122], got [%v, %v]", b.Left, b.Right())
	}
	if b.Top != 94 || b.Bottom() != 106 {
		t.Errorf("Expected y span [94, 106], got [%v, %v]", b.Top, b.Bottom())
	}

	collapsed := Box{Left: 0, Top: 0, Width: 3, Height: 10}.Shrink(2)
	if collapsed.Width != 0 {
		t.Errorf("Expected collapsed width 0, got %v", collapsed.Width)
	}
	if c := collapsed.Center(); c.X != 1.5 || c.Y != 5 {
		t.Errorf("Expected collapsed box to keep its center, got %+v", c)
	}
}

func TestContainsIsHalfOpen(t *testing.T) {
	tile := Box{Left: 16, Top: 16, Width: 16, Height: 16}

	if !tile.Contains(Point{X: 16, Y: 16}) {
		t.Error("Expected top-left corner to be inside")
	}
	if tile.Contains(Point{X: 32, Y: 20}) {
		t.Error("Expected right edge to be outside")
	}
	if tile.Contains(Point{X: 20, Y: 32}) {
		t.Error("Expected bottom edge to be outside")
	}
}

func TestIntersectsAndUnion(t *testing.T) {
	a := Box{Left: 0, Top: 0, Width: 10, Height: 10}
	b := Box{Left: 10, Top: 0, Width: 10, Height: 10}
	c := Box{Left: 5, Top: 5, Width: 10, Height: 10}

	if a.Intersects(b) {
		t.Error("Expected touching boxes not to intersect")
	}
	if !a.Intersects(c) {
		t.Error("Expected overlapping boxes to intersect")
	}

	u := a.Union(b)
	if u.Left != 0 || u.Width != 20 || u.Height != 10 {
		t.Errorf("Unexpected union %+v", u)
	}
}

func TestDistance(t *testing.T) {
	d := Distance(Point{X: 0, Y: 0}, Point{X: 3, Y: 4})
	if math.Abs(d-5) > 1e-9 {
		t.Errorf("Expected distance 5, got %v", d)
	}
}
