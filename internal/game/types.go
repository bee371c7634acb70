package game

import (
	"chosenoffset.com/ark/internal/axe"
	"chosenoffset.com/ark/internal/collision"
	"chosenoffset.com/ark/internal/core/geom"
)

// Player represents the player's physical state in the world. The collider
// in the registry is authoritative; Pos mirrors it through the anchor.
type Player struct {
	Handle collision.Handle
	Pos    geom.Point
	Width  float64
	Height float64
	Facing collision.Direction
	Swing  *axe.Swing
}

// SetCenter receives the resolved collider center
func (p *Player) SetCenter(c geom.Point) {
	p.Pos = c
}

// Box returns the player's footprint
func (p *Player) Box() geom.Box {
	return geom.BoxAt(p.Pos, p.Width, p.Height)
}

// Swinging reports whether an axe swing is still in flight
func (p *Player) Swinging() bool {
	return p.Swing != nil && p.Swing.State() != axe.Processed
}

// Animal is a wandering creature that can be led onto the ark.
type Animal struct {
	Handle  collision.Handle
	Species string
	Pos     geom.Point
	Size    float64
	Heading collision.Direction // DirInvalid while resting
	Timer   float64             // Seconds until the next heading change
}

// SetCenter receives the resolved collider center
func (a *Animal) SetCenter(c geom.Point) {
	a.Pos = c
}

// Box returns the animal's footprint
func (a *Animal) Box() geom.Box {
	return geom.BoxAt(a.Pos, a.Size, a.Size)
}

// Camera tracks the viewport position for scrolling large worlds.
type Camera struct {
	X, Y float64 // Camera position (top-left corner of viewport in world coords)
}

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}

// SoundPlayer is the subset of the audio player the game drives
type SoundPlayer interface {
	SetRustling(on bool)
	PlayChop()
	PlayFall()
	PlayPickup()
}

type silentSound struct{}

func (silentSound) SetRustling(bool) {}
func (silentSound) PlayChop()        {}
func (silentSound) PlayFall()        {}
func (silentSound) PlayPickup()      {}
