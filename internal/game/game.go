package game

import (
	"errors"
	"fmt"
	"log"
	"math/rand"

	"chosenoffset.com/ark/internal/axe"
	"chosenoffset.com/ark/internal/collision"
	"chosenoffset.com/ark/internal/core/geom"
	"chosenoffset.com/ark/internal/inventory"
	"chosenoffset.com/ark/internal/render"
	"chosenoffset.com/ark/internal/simulation"
	"chosenoffset.com/ark/internal/world"
	"chosenoffset.com/ark/internal/world/object"
)

const messageSeconds = 3.0

var species = []string{"sheep", "goat", "ox", "deer", "camel", "dove"}

// Options configures a new Game
type Options struct {
	Config       *simulation.Config
	Overworld    *world.World
	Ark          *world.World // optional interior reached with Tab
	Input        render.InputManager
	Sound        SoundPlayer          // optional
	Inventory    *inventory.Inventory // optional, a fresh one is created
	Rand         *rand.Rand           // animal placement and wandering
	ScreenWidth  int
	ScreenHeight int
	Glyphs       bool // draw tile glyphs on top of tile colors
}

// Game holds all game state and logic.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	Config       *simulation.Config
	InputMgr     render.InputManager
	Sound        SoundPlayer
	Glyphs       bool

	Worlds  map[world.Kind]*world.World
	Current world.Kind
	// Where the player left each world
	returnPoints map[world.Kind]geom.Point

	Registry  *collision.Registry
	Axe       *axe.Handler
	Inventory *inventory.Inventory

	Player  Player
	Animals []*Animal
	Camera  Camera

	// UI state
	Messages []Message

	rng *rand.Rand

	// Debug
	FrameCount int
}

// New creates a game with the player at the overworld spawn
func New(opts Options) (*Game, error) {
	if opts.Overworld == nil {
		return nil, errors.New("overworld is required")
	}
	if opts.Input == nil {
		return nil, errors.New("input manager is required")
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = simulation.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if opts.Sound == nil {
		opts.Sound = silentSound{}
	}
	if opts.Inventory == nil {
		opts.Inventory = inventory.New()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(1))
	}

	g := &Game{
		ScreenWidth:  opts.ScreenWidth,
		ScreenHeight: opts.ScreenHeight,
		Config:       cfg,
		InputMgr:     opts.Input,
		Sound:        opts.Sound,
		Glyphs:       opts.Glyphs,
		Worlds:       map[world.Kind]*world.World{world.KindOverworld: opts.Overworld},
		Current:      world.KindOverworld,
		returnPoints: make(map[world.Kind]geom.Point),
		Inventory:    opts.Inventory,
		rng:          opts.Rand,
	}
	if opts.Ark != nil {
		g.Worlds[world.KindArk] = opts.Ark
	}

	resolver := collision.NewResolver(cfg.Movement.Collision)
	g.Registry = collision.NewRegistry(resolver, opts.Overworld, opts.Overworld)
	g.Axe = axe.NewHandler(opts.Overworld, cfg.AxeHandlerConfig())

	g.Player = Player{
		Pos:    opts.Overworld.PlayerSpawn(),
		Width:  cfg.Movement.PlayerWidth,
		Height: cfg.Movement.PlayerHeight,
		Facing: collision.DirDown,
	}
	h, err := g.track(g.Player.Pos, g.Player.Width, g.Player.Height, &g.Player)
	if err != nil {
		return nil, fmt.Errorf("failed to create player collider: %w", err)
	}
	g.Player.Handle = h

	spawned := g.spawnAnimals(cfg.World.Animals)
	log.Printf("Game ready: %s with %d animals", opts.Overworld.Name, spawned)
	return g, nil
}

// track creates and registers a collider anchored to a
func (g *Game) track(center geom.Point, width, height float64, a collision.Anchor) (collision.Handle, error) {
	h, ok := g.Registry.CreateBoxCollider(center, width, height)
	if !ok {
		return collision.Handle{}, fmt.Errorf("bad collider size %vx%v", width, height)
	}
	c, _ := g.Registry.Get(h)
	c.SetAnchor(a)
	g.Registry.Add(h)
	return h, nil
}

// World returns the world the player is in
func (g *Game) World() *world.World {
	return g.Worlds[g.Current]
}

// Update handles game logic updates.
func (g *Game) Update() error {
	dt := 1.0 / render.TicksPerSecond

	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return render.ErrQuit
	}

	// Update message timers
	g.updateMessages(dt)

	if g.InputMgr.IsKeyJustPressed(render.KeyTab) {
		g.SwitchWorld()
	}

	g.handleMovementInput(dt)

	if g.InputMgr.IsKeyJustPressed(render.KeySpace) {
		g.SwingAxe()
	}

	if g.Current == world.KindOverworld {
		g.wander(dt)
	}

	g.Registry.SimulateMovement()

	g.updateAxe(dt)

	w := g.World()
	w.Update(dt)
	g.collectLogs()
	g.collectPickups()

	if g.InputMgr.IsKeyJustPressed(render.KeyE) {
		g.CollectAnimal()
	}

	g.Sound.SetRustling(w.AnyShaking())

	g.FrameCount++
	return nil
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.ScreenWidth <= 0 || g.ScreenHeight <= 0 {
		return outsideWidth, outsideHeight
	}
	return g.ScreenWidth, g.ScreenHeight
}

// heldDirection returns the first held movement key's direction
func (g *Game) heldDirection() collision.Direction {
	switch {
	case g.InputMgr.IsKeyPressed(render.KeyW) || g.InputMgr.IsKeyPressed(render.KeyUp):
		return collision.DirUp
	case g.InputMgr.IsKeyPressed(render.KeyS) || g.InputMgr.IsKeyPressed(render.KeyDown):
		return collision.DirDown
	case g.InputMgr.IsKeyPressed(render.KeyA) || g.InputMgr.IsKeyPressed(render.KeyLeft):
		return collision.DirLeft
	case g.InputMgr.IsKeyPressed(render.KeyD) || g.InputMgr.IsKeyPressed(render.KeyRight):
		return collision.DirRight
	default:
		return collision.DirInvalid
	}
}

// handleMovementInput turns held keys into a movement request. The player
// stands still while the axe is out.
func (g *Game) handleMovementInput(dt float64) {
	if g.Player.Swinging() {
		return
	}
	dir := g.heldDirection()
	if !dir.Valid() {
		return
	}
	g.Player.Facing = dir
	g.Registry.Request(g.Player.Handle, collision.NewMovement(dir, g.Config.Movement.PlayerSpeed*dt))
}

// SwingAxe starts a swing in front of the player. It returns false while
// a previous swing is still in flight.
func (g *Game) SwingAxe() bool {
	if g.Player.Swinging() {
		return false
	}
	ac := g.Config.Axe
	blade := axe.BladeBox(g.Player.Pos, g.Player.Facing, ac.Reach, ac.BladeSize)
	s := axe.NewSwing(blade, ac.ExtendSeconds)
	if !g.Axe.Add(s) {
		return false
	}
	g.Player.Swing = s
	return true
}

func (g *Game) updateAxe(dt float64) {
	g.Axe.Advance(dt)
	for _, hit := range g.Axe.Update() {
		if hit.Felled {
			g.Sound.PlayFall()
			g.ShowMessage("Timber!")
			continue
		}
		g.Sound.PlayChop()
	}
	if g.Player.Swing != nil && !g.Player.Swinging() {
		g.Player.Swing = nil
	}
}

// collectLogs moves every wood log under the player into the inventory
func (g *Game) collectLogs() {
	logs := g.World().CollectLogs(g.Player.Box())
	if len(logs) == 0 {
		return
	}
	added := g.Inventory.AddItem(inventory.Wood, len(logs))
	if added < len(logs) {
		g.ShowMessage(fmt.Sprintf("Can't carry more %s", g.Inventory.DisplayName(inventory.Wood)))
	}
	if added > 0 {
		g.Sound.PlayPickup()
	}
}

// collectPickups moves the pickups under the player into the inventory. A
// pickup whose stack is full stays where it lies.
func (g *Game) collectPickups() {
	full := ""
	taken := g.World().CollectPickups(g.Player.Box(), func(p *object.Pickup) bool {
		if g.Inventory.AddItem(p.Item, 1) == 1 {
			return true
		}
		full = p.Item
		return false
	})
	for _, p := range taken {
		g.ShowMessage(fmt.Sprintf("You found %s", g.Inventory.DisplayName(p.Item)))
	}
	if len(taken) > 0 {
		g.Sound.PlayPickup()
	}
	if full != "" {
		g.showOnce(fmt.Sprintf("Can't carry more %s", g.Inventory.DisplayName(full)))
	}
}

// CollectAnimal leads the nearest animal within reach onto the ark. Its
// collider is destroyed; the registry forgets the handle on its next tick.
func (g *Game) CollectAnimal() bool {
	if g.Current != world.KindOverworld {
		return false
	}
	reach := g.Config.Axe.Reach
	area := geom.BoxAt(g.Player.Pos, g.Player.Width+2*reach, g.Player.Height+2*reach)

	best := -1
	bestDist := 0.0
	for i, a := range g.Animals {
		if !a.Box().Intersects(area) {
			continue
		}
		d := geom.Distance(a.Pos, g.Player.Pos)
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return false
	}

	a := g.Animals[best]
	g.Registry.Destroy(a.Handle)
	g.Animals = append(g.Animals[:best], g.Animals[best+1:]...)
	g.Inventory.AddItem(inventory.Animal, 1)
	g.Sound.PlayPickup()
	g.ShowMessage(fmt.Sprintf("The %s follows you to the ark", a.Species))
	return true
}

// SwitchWorld moves the player between the overworld and the ark. The
// registry and axe handler are pointed at the new world and the player
// returns to where they last stood in it.
func (g *Game) SwitchWorld() bool {
	target := world.KindArk
	if g.Current == world.KindArk {
		target = world.KindOverworld
	}
	next, ok := g.Worlds[target]
	if !ok {
		g.ShowMessage("There is no ark yet")
		return false
	}
	if g.Player.Swinging() {
		return false
	}

	g.returnPoints[g.Current] = g.Player.Pos
	pos, ok := g.returnPoints[target]
	if !ok {
		pos = next.PlayerSpawn()
	}

	g.Registry.SetWorld(next, next)
	g.Axe.SetForest(next)
	if c, ok := g.Registry.Get(g.Player.Handle); ok {
		c.Clear()
		c.SetCenter(pos)
	}
	g.Player.Pos = pos
	g.Current = target
	g.Sound.SetRustling(false)

	if target == world.KindArk {
		g.ShowMessage("You step inside the ark")
	} else {
		g.ShowMessage("You step back outside")
	}
	return true
}

// showOnce shows text unless it is already on screen
func (g *Game) showOnce(text string) {
	for _, msg := range g.Messages {
		if msg.Text == text {
			return
		}
	}
	g.ShowMessage(text)
}

func (g *Game) updateMessages(dt float64) {
	var active []Message
	for _, msg := range g.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	g.Messages = active
}

// ShowMessage adds a new message to be displayed on screen.
func (g *Game) ShowMessage(text string) {
	g.Messages = append(g.Messages, Message{
		Text:     text,
		TimeLeft: messageSeconds,
		MaxTime:  messageSeconds,
	})

	log.Printf("Message: %s", text)
}
