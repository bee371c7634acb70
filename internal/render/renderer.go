package render

import (
	"errors"
	"image/color"
)

// ErrQuit is returned from Game.Update to end the game loop cleanly
var ErrQuit = errors.New("quit")

// Surface is the drawing target handed to Game.Draw. Coordinates are
// logical pixels; backends with coarser output (terminal cells) map them
// onto their own grid.
type Surface interface {
	// Size returns the logical size in pixels
	Size() (width, height int)

	// Fill fills the whole surface
	Fill(clr color.Color)

	// Shape operations
	FillRect(x, y, width, height float32, clr color.Color)
	StrokeRect(x, y, width, height, strokeWidth float32, clr color.Color)
	FillCircle(x, y, radius float32, clr color.Color)

	// DrawText draws a line of text with its top-left corner at (x, y)
	DrawText(text string, x, y int, clr color.Color)
}

// InputManager handles input from the user (keyboard).
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the game uses
const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyE // Collect key
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace // Axe swing
	KeyTab   // World switch
	KeyEscape
	keyCount
)

// Keys returns every key the game uses
func Keys() []Key {
	keys := make([]Key, 0, keyCount)
	for k := KeyW; k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

// Game represents the game interface that the engine will call.
// This is typically implemented by the main game struct.
type Game interface {
	// Update updates the game logic. It is called every tick (typically 60 times per second).
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Surface)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}

// TicksPerSecond is the fixed update rate every engine drives Game.Update at
const TicksPerSecond = 60
