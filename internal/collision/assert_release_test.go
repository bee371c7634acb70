//go:build !debug

package collision

import (
	"testing"

	"chosenoffset.com/ark/internal/core/geom"
)

func TestResolveMalformedMovementIsNoop(t *testing.T) {
	grid := newGrid(16, 0, 0)
	r := NewResolver(DefaultTuning())
	box := geom.BoxAt(geom.Point{X: 50, Y: 50}, 10, 10)

	for _, mv := range malformedMovements() {
		res := r.ResolveBox(box, mv, grid, grid)
		if res.Box != box || res.Stop != StopInvalid {
			t.Errorf("%+v: expected no-op with %s, got %+v", mv, StopInvalid, res)
		}
	}
}
