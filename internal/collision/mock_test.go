package collision_test

import (
	"testing"

	"chosenoffset.com/ark/internal/collision"
	"chosenoffset.com/ark/internal/collision/mocks"
	"chosenoffset.com/ark/internal/core/geom"
	"go.uber.org/mock/gomock"
)

func TestResolverChecksEveryLeadingSample(t *testing.T) {
	ctrl := gomock.NewController(t)
	tiles := mocks.NewMockTileProvider(ctrl)

	box := geom.BoxAt(geom.Point{X: 100, Y: 100}, 16, 16)
	blocked := collision.Tile{Box: geom.Box{Left: 96, Top: 76, Width: 16, Height: 16}}
	open := collision.Tile{Box: geom.Box{Left: 80, Top: 76, Width: 16, Height: 16}, Walkable: true}

	// samples one unit above the top edge at 25%, 50% and 75% of the width
	tiles.EXPECT().TileAt(geom.Point{X: 96, Y: 91}).Return(open, true)
	tiles.EXPECT().TileAt(geom.Point{X: 100, Y: 91}).Return(open, true)
	tiles.EXPECT().TileAt(geom.Point{X: 104, Y: 91}).Return(blocked, true)
	// the top edge sits on the blocked row's boundary, so no room is left
	tiles.EXPECT().TileAt(gomock.Any()).Return(open, true).Times(2)
	tiles.EXPECT().TileAt(gomock.Any()).Return(blocked, true)

	r := collision.NewResolver(collision.DefaultTuning())
	res := r.ResolveBox(box, collision.NewMovement(collision.DirUp, 20), tiles, nil)

	if res.Stop != collision.StopBlockedTile {
		t.Errorf("Expected %s, got %s", collision.StopBlockedTile, res.Stop)
	}
	if res.Box != box {
		t.Errorf("Expected no movement, got %+v", res.Box)
	}
}

func TestResolverStopsAtMissingTileBeforeWalkability(t *testing.T) {
	ctrl := gomock.NewController(t)
	tiles := mocks.NewMockTileProvider(ctrl)

	blocked := collision.Tile{Box: geom.Box{Left: 0, Top: 0, Width: 32, Height: 32}}
	tiles.EXPECT().TileAt(gomock.Any()).Return(blocked, true)
	tiles.EXPECT().TileAt(gomock.Any()).Return(collision.Tile{}, false)
	tiles.EXPECT().TileAt(gomock.Any()).Return(blocked, true)

	r := collision.NewResolver(collision.DefaultTuning())
	box := geom.BoxAt(geom.Point{X: 16, Y: 16}, 8, 8)
	res := r.ResolveBox(box, collision.NewMovement(collision.DirLeft, 4), tiles, nil)

	if res.Stop != collision.StopWorldEdge {
		t.Errorf("Expected %s, got %s", collision.StopWorldEdge, res.Stop)
	}
}

func TestResolverQueriesObstaclesAlongTheStep(t *testing.T) {
	ctrl := gomock.NewController(t)
	tiles := mocks.NewMockTileProvider(ctrl)
	obstacles := mocks.NewMockObstacleProvider(ctrl)
	tree := mocks.NewMockObstacle(ctrl)

	tile := collision.Tile{Box: geom.Box{Left: 96, Top: 96, Width: 32, Height: 32}, Walkable: true}
	tiles.EXPECT().TileAt(gomock.Any()).Return(tile, true).Times(3)

	tree.EXPECT().Bounds().Return(geom.BoxAt(geom.Point{X: 112, Y: 100}, 16, 16))

	box := geom.BoxAt(geom.Point{X: 100, Y: 100}, 10, 10)
	obstacles.EXPECT().ObstaclesNear(gomock.Any()).DoAndReturn(func(region geom.Box) []collision.Obstacle {
		if region.Left != box.Left || region.Right() < box.Right()+1 {
			t.Errorf("Expected the query to cover the swept step, got %+v", region)
		}
		return []collision.Obstacle{tree}
	})

	r := collision.NewResolver(collision.DefaultTuning())
	res := r.ResolveBox(box, collision.NewMovement(collision.DirRight, 1), tiles, obstacles)

	// shrunk tree face at 106 is one unit ahead of the leading edge at 105
	if res.Stop != collision.StopComplete || res.Box.Right() != 106 {
		t.Errorf("Expected to reach 106, got %v (%s)", res.Box.Right(), res.Stop)
	}
}

func TestRegistryRunsAgainstProviders(t *testing.T) {
	ctrl := gomock.NewController(t)
	tiles := mocks.NewMockTileProvider(ctrl)
	obstacles := mocks.NewMockObstacleProvider(ctrl)

	tile := collision.Tile{Box: geom.Box{Left: 0, Top: 0, Width: 64, Height: 64}, Walkable: true}
	tiles.EXPECT().TileAt(gomock.Any()).Return(tile, true).AnyTimes()
	obstacles.EXPECT().ObstaclesNear(gomock.Any()).Return(nil).MinTimes(1)

	reg := collision.NewRegistry(nil, tiles, obstacles)
	h, ok := reg.CreateBoxCollider(geom.Point{X: 20, Y: 20}, 8, 8)
	if !ok || !reg.Add(h) {
		t.Fatal("Expected to create and track a collider")
	}
	reg.Request(h, collision.NewMovement(collision.DirDown, 12))
	reg.SimulateMovement()

	c, _ := reg.Get(h)
	if got := c.Center(); got != (geom.Point{X: 20, Y: 32}) {
		t.Errorf("Expected (20, 32), got %+v", got)
	}
}
