package game

import (
	"errors"
	"image/color"
	"math/rand"
	"strings"
	"testing"

	"chosenoffset.com/ark/internal/collision"
	"chosenoffset.com/ark/internal/core/geom"
	"chosenoffset.com/ark/internal/inventory"
	"chosenoffset.com/ark/internal/render"
	"chosenoffset.com/ark/internal/simulation"
	"chosenoffset.com/ark/internal/world"
	"chosenoffset.com/ark/internal/world/atlas"
	"chosenoffset.com/ark/internal/world/object"
	"chosenoffset.com/ark/internal/world/tilemap"
)

type fakeInput struct {
	held map[render.Key]bool
	just map[render.Key]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{held: make(map[render.Key]bool), just: make(map[render.Key]bool)}
}

func (f *fakeInput) IsKeyPressed(k render.Key) bool     { return f.held[k] }
func (f *fakeInput) IsKeyJustPressed(k render.Key) bool { return f.just[k] }

func (f *fakeInput) tap(k render.Key) { f.just[k] = true }

type fakeSound struct {
	rustling bool
	chops    int
	falls    int
	pickups  int
}

func (s *fakeSound) SetRustling(on bool) { s.rustling = on }
func (s *fakeSound) PlayChop()           { s.chops++ }
func (s *fakeSound) PlayFall()           { s.falls++ }
func (s *fakeSound) PlayPickup()         { s.pickups++ }

func testWorld(t *testing.T, name string, kind world.Kind, size int, spawn *tilemap.SpawnPoint, trees []tilemap.TreeSpawn) *world.World {
	t.Helper()
	a, err := atlas.NewAtlas(&atlas.AtlasConfig{
		Name:     "test",
		TileSize: 16,
		Tiles: []atlas.TileDefinition{
			{Name: "grass", Properties: map[string]interface{}{"color": "darkgreen"}},
		},
	})
	if err != nil {
		t.Fatalf("Failed to build atlas: %v", err)
	}
	tiles := make([][]string, size)
	for y := range tiles {
		tiles[y] = make([]string, size)
		for x := range tiles[y] {
			tiles[y][x] = "grass"
		}
	}
	m, err := tilemap.New(&tilemap.MapData{
		Name:        name,
		Width:       size,
		Height:      size,
		AtlasPath:   "test.json",
		PlayerSpawn: spawn,
		Trees:       trees,
		Tiles:       tiles,
	}, a, 3)
	if err != nil {
		t.Fatalf("Failed to build map: %v", err)
	}
	w, err := world.New(name, kind, m)
	if err != nil {
		t.Fatalf("Failed to build world: %v", err)
	}
	return w
}

type harness struct {
	game  *Game
	input *fakeInput
	sound *fakeSound
}

// newHarness builds a 10x10 meadow with the player at (88, 88) and no
// animals unless the config asks for them
func newHarness(t *testing.T, cfg *simulation.Config, trees []tilemap.TreeSpawn, withArk bool) *harness {
	t.Helper()
	if cfg == nil {
		cfg = simulation.DefaultConfig()
		cfg.World.Animals = 0
	}
	h := &harness{input: newFakeInput(), sound: &fakeSound{}}
	opts := Options{
		Config:    cfg,
		Overworld: testWorld(t, "meadow", world.KindOverworld, 10, &tilemap.SpawnPoint{X: 5.5, Y: 5.5}, trees),
		Input:     h.input,
		Sound:     h.sound,
		Rand:      rand.New(rand.NewSource(7)),
	}
	if withArk {
		opts.Ark = testWorld(t, "ark", world.KindArk, 4, nil, nil)
	}
	g, err := New(opts)
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}
	h.game = g
	return h
}

// tick runs n updates; taps only last for the first one
func (h *harness) tick(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := h.game.Update(); err != nil {
			t.Fatalf("Unexpected update error: %v", err)
		}
		clear(h.input.just)
	}
}

func TestNewRequiresWorldAndInput(t *testing.T) {
	if _, err := New(Options{Input: newFakeInput()}); err == nil {
		t.Error("Expected an error without an overworld")
	}
	w := testWorld(t, "meadow", world.KindOverworld, 4, nil, nil)
	if _, err := New(Options{Overworld: w}); err == nil {
		t.Error("Expected an error without an input manager")
	}
}

func TestNewPlacesPlayerAtSpawn(t *testing.T) {
	h := newHarness(t, nil, nil, false)
	g := h.game

	if g.Player.Pos != (geom.Point{X: 88, Y: 88}) {
		t.Errorf("Expected player at (88, 88), got %v", g.Player.Pos)
	}
	if !g.Registry.Alive(g.Player.Handle) {
		t.Error("Expected the player collider to be alive")
	}
	if g.Registry.Len() != 1 {
		t.Errorf("Expected 1 tracked collider, got %d", g.Registry.Len())
	}
	if g.Inventory == nil || g.Inventory.TotalItems() != 0 {
		t.Error("Expected an empty inventory")
	}
}

func TestHeldKeyMovesPlayer(t *testing.T) {
	h := newHarness(t, nil, nil, false)
	h.input.held[render.KeyD] = true
	h.tick(t, 1)

	want := 88 + h.game.Config.Movement.PlayerSpeed/render.TicksPerSecond
	if d := h.game.Player.Pos.X - want; d > 1e-9 || d < -1e-9 {
		t.Errorf("Expected x %v, got %v", want, h.game.Player.Pos.X)
	}
	if h.game.Player.Pos.Y != 88 {
		t.Errorf("Expected y unchanged, got %v", h.game.Player.Pos.Y)
	}

	h.input.held[render.KeyD] = false
	h.input.held[render.KeyUp] = true
	h.tick(t, 1)
	if h.game.Player.Facing.String() != "up" {
		t.Errorf("Expected to face up, got %v", h.game.Player.Facing)
	}
	if h.game.Player.Pos.Y >= 88 {
		t.Errorf("Expected to move up, got y %v", h.game.Player.Pos.Y)
	}
}

func TestPlayerStopsAtTree(t *testing.T) {
	// trunk at (120, 88), collision box 114..126 after the margin
	h := newHarness(t, nil, []tilemap.TreeSpawn{{X: 7, Y: 5}}, false)
	h.input.held[render.KeyD] = true
	h.tick(t, 60)

	right := h.game.Player.Box().Right()
	if right > 114+1e-9 {
		t.Errorf("Expected to stop before the tree at 114, right edge %v", right)
	}
	if right < 113 {
		t.Errorf("Expected to walk up to the tree, right edge %v", right)
	}
}

func TestPlayerStopsAtWorldEdge(t *testing.T) {
	h := newHarness(t, nil, nil, false)
	h.input.held[render.KeyA] = true
	h.tick(t, 120)

	// the resolver probes one step ahead, so the edge stops within a step
	if left := h.game.Player.Box().Left; left < 0 || left >= 1 {
		t.Errorf("Expected to stop at the world edge, left %v", left)
	}
}

// swingUntilHit taps Space and ticks until the swing resolves
func (h *harness) swingUntilHit(t *testing.T) {
	t.Helper()
	h.input.tap(render.KeySpace)
	h.tick(t, 1)
	if h.game.Player.Swing == nil {
		t.Fatal("Expected a swing in flight")
	}
	for i := 0; i < 30 && h.game.Player.Swinging(); i++ {
		h.tick(t, 1)
	}
	if h.game.Player.Swinging() {
		t.Fatal("Expected the swing to resolve")
	}
}

func TestChoppingFellsTreeAndDropsLog(t *testing.T) {
	// trunk at (104, 88), blade reaches x 95..105 from the spawn
	h := newHarness(t, nil, []tilemap.TreeSpawn{{X: 6, Y: 5}}, false)
	h.game.Player.Facing = collision.DirRight
	m := h.game.World().StartMap()
	tree := m.Trees()[0]

	h.swingUntilHit(t)
	if tree.HP() != 2 {
		t.Errorf("Expected HP 2 after one hit, got %d", tree.HP())
	}
	if h.sound.chops != 1 {
		t.Errorf("Expected 1 chop sound, got %d", h.sound.chops)
	}
	if !h.sound.rustling {
		t.Error("Expected the shaking tree to rustle")
	}

	h.swingUntilHit(t)
	h.swingUntilHit(t)
	if !tree.Felled() || len(m.Trees()) != 0 {
		t.Fatal("Expected the tree to be felled and removed")
	}
	if h.sound.falls != 1 {
		t.Errorf("Expected 1 fall sound, got %d", h.sound.falls)
	}
	if len(m.Logs()) != 1 || len(m.DustClouds()) != 1 {
		t.Fatalf("Expected a log and a dust cloud, got %d and %d", len(m.Logs()), len(m.DustClouds()))
	}

	// walk onto the log
	h.input.held[render.KeyRight] = true
	h.tick(t, 10)
	if got := h.game.Inventory.GetItemCount(inventory.Wood); got != 1 {
		t.Errorf("Expected 1 wood, got %d", got)
	}
	if len(m.Logs()) != 0 {
		t.Error("Expected the log to be picked up")
	}
	if h.sound.pickups != 1 {
		t.Errorf("Expected 1 pickup sound, got %d", h.sound.pickups)
	}
}

func TestPlayerHoldsStillWhileSwinging(t *testing.T) {
	h := newHarness(t, nil, nil, false)
	h.input.tap(render.KeySpace)
	h.input.held[render.KeyD] = true
	h.tick(t, 1)

	if !h.game.Player.Swinging() {
		t.Fatal("Expected a swing in flight")
	}
	if h.game.Player.Pos.X != 88 {
		t.Errorf("Expected no movement while swinging, got x %v", h.game.Player.Pos.X)
	}
	if h.game.SwingAxe() {
		t.Error("Expected a second swing to be refused")
	}
}

func TestWoodStackLimit(t *testing.T) {
	h := newHarness(t, nil, nil, false)
	h.game.Inventory.RegisterItem(&inventory.Item{Name: inventory.Wood, MaxStack: 1})
	h.game.Inventory.AddItem(inventory.Wood, 1)

	h.game.World().SpawnWoodLog(geom.Point{X: 88, Y: 88})
	h.tick(t, 1)

	if got := h.game.Inventory.GetItemCount(inventory.Wood); got != 1 {
		t.Errorf("Expected wood to stay at the stack limit, got %d", got)
	}
	if len(h.game.Messages) == 0 || !strings.Contains(h.game.Messages[0].Text, "carry") {
		t.Errorf("Expected a full-stack message, got %v", h.game.Messages)
	}
}

func TestPlayerCollectsPickups(t *testing.T) {
	h := newHarness(t, nil, nil, false)
	m := h.game.World().StartMap()
	m.AddPickup(object.NewPickup(inventory.Scripture, m.TileCenter(5, 5)))
	m.AddPickup(object.NewPickup(inventory.Food, m.TileCenter(6, 5)))

	// the scripture lies under the spawn
	h.tick(t, 1)
	if got := h.game.Inventory.GetItemCount(inventory.Scripture); got != 1 {
		t.Fatalf("Expected 1 scripture after the first tick, got %d", got)
	}
	if len(m.Pickups()) != 1 {
		t.Errorf("Expected the food to remain, got %d pickups", len(m.Pickups()))
	}

	h.input.held[render.KeyD] = true
	h.tick(t, 10)

	if got := h.game.Inventory.GetItemCount(inventory.Food); got != 1 {
		t.Errorf("Expected 1 food, got %d", got)
	}
	if len(m.Pickups()) != 0 {
		t.Errorf("Expected no pickups left, got %d", len(m.Pickups()))
	}
	if h.sound.pickups != 2 {
		t.Errorf("Expected 2 pickup sounds, got %d", h.sound.pickups)
	}
}

func TestFullStackLeavesPickup(t *testing.T) {
	h := newHarness(t, nil, nil, false)
	h.game.Inventory.RegisterItem(&inventory.Item{Name: inventory.Food, DisplayName: "Food", MaxStack: 1})
	h.game.Inventory.AddItem(inventory.Food, 1)
	m := h.game.World().StartMap()
	m.AddPickup(object.NewPickup(inventory.Food, m.TileCenter(5, 5)))

	h.tick(t, 5)

	if got := h.game.Inventory.GetItemCount(inventory.Food); got != 1 {
		t.Errorf("Expected food to stay at the stack limit, got %d", got)
	}
	if len(m.Pickups()) != 1 {
		t.Errorf("Expected the food to stay on the map, got %d pickups", len(m.Pickups()))
	}
	if len(h.game.Messages) != 1 || h.game.Messages[0].Text != "Can't carry more Food" {
		t.Errorf("Expected one full-stack message, got %v", h.game.Messages)
	}
}

func TestSwitchWorld(t *testing.T) {
	h := newHarness(t, nil, nil, true)
	g := h.game

	h.input.tap(render.KeyTab)
	h.tick(t, 1)
	if g.Current != world.KindArk {
		t.Fatalf("Expected to be in the ark, got %v", g.Current)
	}
	if g.Player.Pos != (geom.Point{X: 32, Y: 32}) {
		t.Errorf("Expected the ark spawn (32, 32), got %v", g.Player.Pos)
	}

	// the registry now resolves against the ark's walls
	h.input.held[render.KeyD] = true
	h.tick(t, 60)
	if right := g.Player.Box().Right(); right > 64 || right <= 63 {
		t.Errorf("Expected to stop at the ark wall 64, got %v", right)
	}
	h.input.held[render.KeyD] = false

	h.input.tap(render.KeyTab)
	h.tick(t, 1)
	if g.Current != world.KindOverworld {
		t.Fatalf("Expected to be back outside, got %v", g.Current)
	}
	if g.Player.Pos != (geom.Point{X: 88, Y: 88}) {
		t.Errorf("Expected to return to (88, 88), got %v", g.Player.Pos)
	}
}

func TestSwitchWorldWithoutArk(t *testing.T) {
	h := newHarness(t, nil, nil, false)
	if h.game.SwitchWorld() {
		t.Error("Expected no switch without an ark")
	}
	if len(h.game.Messages) != 1 {
		t.Errorf("Expected one message, got %d", len(h.game.Messages))
	}
}

func TestAnimalsSpawnAndWander(t *testing.T) {
	cfg := simulation.DefaultConfig()
	cfg.World.Animals = 4
	h := newHarness(t, cfg, nil, false)
	g := h.game

	if len(g.Animals) != 4 {
		t.Fatalf("Expected 4 animals, got %d", len(g.Animals))
	}
	if g.Registry.Len() != 5 {
		t.Errorf("Expected 5 tracked colliders, got %d", g.Registry.Len())
	}
	for _, a := range g.Animals {
		if geom.Distance(a.Pos, g.Player.Pos) < 32 {
			t.Errorf("Expected %s to spawn away from the player, at %v", a.Species, a.Pos)
		}
	}

	start := make([]geom.Point, len(g.Animals))
	for i, a := range g.Animals {
		start[i] = a.Pos
	}
	h.tick(t, 240)

	bounds := g.World().Bounds()
	moved := false
	for i, a := range g.Animals {
		b := a.Box()
		if b.Left < bounds.Left || b.Top < bounds.Top || b.Right() > bounds.Right() || b.Bottom() > bounds.Bottom() {
			t.Errorf("Expected %s to stay inside the world, box %v", a.Species, b)
		}
		if a.Pos != start[i] {
			moved = true
		}
	}
	if !moved {
		t.Error("Expected at least one animal to wander")
	}
}

func TestCollectAnimal(t *testing.T) {
	h := newHarness(t, nil, nil, false)
	g := h.game

	a := &Animal{Species: "goat", Pos: geom.Point{X: 100, Y: 88}, Size: 10, Timer: 100}
	handle, err := g.track(a.Pos, a.Size, a.Size, a)
	if err != nil {
		t.Fatalf("Failed to track animal: %v", err)
	}
	a.Handle = handle
	g.Animals = append(g.Animals, a)

	h.input.tap(render.KeyE)
	h.tick(t, 1)

	if len(g.Animals) != 0 {
		t.Error("Expected the animal to be collected")
	}
	if g.Inventory.GetItemCount(inventory.Animal) != 1 {
		t.Errorf("Expected 1 animal in the inventory, got %d", g.Inventory.GetItemCount(inventory.Animal))
	}
	if g.Registry.Alive(handle) {
		t.Error("Expected the animal's handle to be stale")
	}
	// the stale handle lingers until the next tick prunes it
	if g.Registry.Len() != 2 {
		t.Errorf("Expected the stale handle to linger, got %d tracked", g.Registry.Len())
	}
	h.tick(t, 1)
	if g.Registry.Len() != 1 {
		t.Errorf("Expected the stale handle to be pruned, got %d tracked", g.Registry.Len())
	}
}

func TestCollectAnimalOutOfReach(t *testing.T) {
	h := newHarness(t, nil, nil, false)
	g := h.game

	a := &Animal{Species: "ox", Pos: geom.Point{X: 140, Y: 88}, Size: 10, Timer: 100}
	a.Handle, _ = g.track(a.Pos, a.Size, a.Size, a)
	g.Animals = append(g.Animals, a)

	if g.CollectAnimal() {
		t.Error("Expected a distant animal to stay put")
	}
}

func TestEscapeQuits(t *testing.T) {
	h := newHarness(t, nil, nil, false)
	h.input.tap(render.KeyEscape)
	if err := h.game.Update(); !errors.Is(err, render.ErrQuit) {
		t.Errorf("Expected ErrQuit, got %v", err)
	}
}

func TestMessagesExpire(t *testing.T) {
	h := newHarness(t, nil, nil, false)
	h.game.ShowMessage("hello")
	h.tick(t, int(messageSeconds*render.TicksPerSecond)+1)
	if len(h.game.Messages) != 0 {
		t.Errorf("Expected the message to expire, got %v", h.game.Messages)
	}
}

func TestCameraAxis(t *testing.T) {
	tests := []struct {
		name                       string
		focus, view, start, extent float64
		want                       float64
	}{
		{"centered", 88, 80, 0, 160, 48},
		{"clamped low", 10, 80, 0, 160, 0},
		{"clamped high", 155, 80, 0, 160, 80},
		{"small world centered", 50, 320, 0, 160, -80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cameraAxis(tt.focus, tt.view, tt.start, tt.extent); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

type recordingSurface struct {
	w, h  int
	rects int
	texts []string
}

func (s *recordingSurface) Size() (int, int)   { return s.w, s.h }
func (s *recordingSurface) Fill(c color.Color) {}
func (s *recordingSurface) FillRect(x, y, w, h float32, c color.Color) {
	s.rects++
}
func (s *recordingSurface) StrokeRect(x, y, w, h, sw float32, c color.Color) {}
func (s *recordingSurface) FillCircle(x, y, r float32, c color.Color)        {}
func (s *recordingSurface) DrawText(text string, x, y int, c color.Color) {
	s.texts = append(s.texts, text)
}

func TestDrawShowsWorldAndHUD(t *testing.T) {
	h := newHarness(t, nil, nil, false)
	h.game.Glyphs = true
	s := &recordingSurface{w: 80, h: 80}
	h.game.Draw(s)

	if h.game.Camera.X != 48 || h.game.Camera.Y != 48 {
		t.Errorf("Expected camera at (48, 48), got %+v", h.game.Camera)
	}
	if s.rects == 0 {
		t.Error("Expected tiles and the player to be drawn")
	}

	hud := false
	glyph := false
	for _, text := range s.texts {
		if strings.HasPrefix(text, "meadow | ") {
			hud = true
		}
		if text == "." {
			glyph = true
		}
	}
	if !hud {
		t.Errorf("Expected the HUD status line, got %v", s.texts)
	}
	if !glyph {
		t.Error("Expected tile glyphs to be drawn")
	}
}
