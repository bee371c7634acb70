package game

import (
	"fmt"
	"image/color"
	"math"

	"golang.org/x/image/colornames"

	"chosenoffset.com/ark/internal/core/geom"
	"chosenoffset.com/ark/internal/inventory"
	"chosenoffset.com/ark/internal/render"
	"chosenoffset.com/ark/internal/world"
	"chosenoffset.com/ark/internal/world/atlas"
	"chosenoffset.com/ark/internal/world/tilemap"
)

const hudLineHeight = 16

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Surface) {
	w, h := screen.Size()
	g.UpdateCamera(w, h)

	screen.Fill(colornames.Black)

	view := geom.Box{Left: g.Camera.X, Top: g.Camera.Y, Width: float64(w), Height: float64(h)}
	for _, m := range g.World().Maps() {
		if !m.Bounds().Intersects(view) {
			continue
		}
		g.drawTiles(screen, m, view)
		g.drawObjects(screen, m)
	}
	g.drawAnimals(screen)
	g.drawPlayer(screen)
	g.drawHUD(screen)
}

// UpdateCamera centers the camera on the player, clamped to the world
// bounds. A world smaller than the view is centered instead.
func (g *Game) UpdateCamera(viewWidth, viewHeight int) {
	bounds := g.World().Bounds()
	g.Camera.X = cameraAxis(g.Player.Pos.X, float64(viewWidth), bounds.Left, bounds.Width)
	g.Camera.Y = cameraAxis(g.Player.Pos.Y, float64(viewHeight), bounds.Top, bounds.Height)
}

func cameraAxis(focus, view, start, extent float64) float64 {
	if extent <= view {
		return start - (view-extent)/2
	}
	c := focus - view/2
	if c < start {
		c = start
	}
	if c > start+extent-view {
		c = start + extent - view
	}
	return c
}

// toScreen converts a world box into screen coordinates
func (g *Game) toScreen(b geom.Box) (x, y, w, h float32) {
	return float32(b.Left - g.Camera.X), float32(b.Top - g.Camera.Y), float32(b.Width), float32(b.Height)
}

func (g *Game) fillBox(screen render.Surface, b geom.Box, clr color.Color) {
	x, y, w, h := g.toScreen(b)
	screen.FillRect(x, y, w, h, clr)
}

func (g *Game) drawTiles(screen render.Surface, m *tilemap.TileMap, view geom.Box) {
	for y := 0; y < m.Data.Height; y++ {
		for x := 0; x < m.Data.Width; x++ {
			box := m.TileBox(x, y)
			if !box.Intersects(view) {
				continue
			}
			def, ok := m.TileDefAt(x, y)
			if !ok {
				continue
			}
			g.fillBox(screen, box, tileColor(def))
			if g.Glyphs {
				c := box.Center()
				screen.DrawText(string(def.Glyph()), int(c.X-g.Camera.X), int(c.Y-g.Camera.Y), colornames.Lightgray)
			}
		}
	}
}

// tileColor looks up the tile's named color, falling back on walkability
func tileColor(def *atlas.TileDefinition) color.Color {
	if c, ok := colornames.Map[def.Color()]; ok {
		return c
	}
	if def.Walkable() {
		return colornames.Darkolivegreen
	}
	return colornames.Dimgray
}

func (g *Game) drawObjects(screen render.Surface, m *tilemap.TileMap) {
	for _, d := range m.DustClouds() {
		c := d.Bounds().Center()
		r := float32(d.Bounds().Width/2) * float32(0.5+0.5*d.Progress())
		screen.FillCircle(float32(c.X-g.Camera.X), float32(c.Y-g.Camera.Y), r, colornames.Tan)
	}

	for _, l := range m.Logs() {
		g.fillBox(screen, l.Bounds(), colornames.Sienna)
	}

	for _, p := range m.Pickups() {
		g.fillBox(screen, p.Bounds(), pickupColor(p.Item))
	}

	for _, t := range m.Trees() {
		b := t.Bounds()
		if t.Shaking() {
			// jiggle sideways every few frames
			b = b.Translate(math.Copysign(1, float64(g.FrameCount%6)-2.5), 0)
		}
		trunk := geom.BoxAt(b.Center(), b.Width/4, b.Height/2)
		c := b.Center()
		screen.FillCircle(float32(c.X-g.Camera.X), float32(c.Y-g.Camera.Y), float32(b.Width/2), colornames.Forestgreen)
		g.fillBox(screen, trunk, colornames.Saddlebrown)
	}
}

func pickupColor(item string) color.Color {
	switch item {
	case inventory.Food:
		return colornames.Gold
	case inventory.Scripture:
		return colornames.Ivory
	default:
		return colornames.Orchid
	}
}

func (g *Game) drawAnimals(screen render.Surface) {
	if g.Current != world.KindOverworld {
		return
	}
	for _, a := range g.Animals {
		g.fillBox(screen, a.Box(), colornames.Bisque)
	}
}

func (g *Game) drawPlayer(screen render.Surface) {
	g.fillBox(screen, g.Player.Box(), colornames.Royalblue)

	// facing marker on the leading edge
	dx, dy := g.Player.Facing.Delta()
	marker := geom.BoxAt(g.Player.Pos.Add(dx*g.Player.Width/2, dy*g.Player.Height/2), 4, 4)
	g.fillBox(screen, marker, colornames.White)

	if g.Player.Swinging() {
		x, y, w, h := g.toScreen(g.Player.Swing.Blade)
		screen.StrokeRect(x, y, w, h, 1, colornames.Silver)
	}
}

func (g *Game) drawHUD(screen render.Surface) {
	status := fmt.Sprintf("%s | %s", g.World().Name, g.Inventory.Summary())
	screen.DrawText(status, 4, 4, colornames.White)

	for i, msg := range g.Messages {
		screen.DrawText(msg.Text, 4, 4+(i+1)*hudLineHeight, colornames.Yellow)
	}
}
