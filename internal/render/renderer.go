// Package render defines the backend-neutral surface the game draws to and
// the input it reads. Backends live in subpackages.
package render

import (
	"errors"
	"image"
)

// ErrTerminated is returned from Game.Update to end the run cleanly.
var ErrTerminated = errors.New("render: terminated")

// Image is the presentation surface handed to Game.Draw. The game renders
// into its own RGBA frame and uploads it once per tick.
type Image interface {
	Bounds() image.Rectangle
	Size() (width, height int)

	// WritePixels replaces the surface contents with premultiplied RGBA
	// pixels laid out like image.RGBA.Pix.
	WritePixels(pix []byte)
}

// InputManager handles input from the user (keyboard, mouse, etc).
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
	CursorPosition() (x, y int)
	IsMouseButtonPressed(button MouseButton) bool
	IsMouseButtonJustPressed(button MouseButton) bool

	// SetCursorCaptured hides and locks the cursor for mouse look.
	SetCursorCaptured(captured bool)
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the game binds.
const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyE // shoot
	KeyQ // dash
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyShift
	KeyControl
	KeyEqual
	KeyMinus
	KeyEnter
	KeySpace
	KeyEscape
	keyCount
)

// Keys lists every bindable key.
func Keys() []Key {
	keys := make([]Key, keyCount)
	for i := range keys {
		keys[i] = Key(i)
	}
	return keys
}

// MouseButton represents a mouse button.
type MouseButton int

// Mouse button constants
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// Game represents the game interface that the engine will call.
type Game interface {
	// Update advances the game by one tick. Returning ErrTerminated ends
	// the run without error.
	Update() error

	// Draw presents the current frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)
	SetWindowResizable(resizable bool)

	// SetTPS changes how many times per second Update is called.
	SetTPS(tps int)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
