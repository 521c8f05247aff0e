// Package ebiten presents frames in a desktop window through Ebitengine.
package ebiten

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"chosenoffset.com/raymaze/internal/render"
)

// EbitenImage wraps an ebiten.Image to implement the render.Image interface.
type EbitenImage struct {
	img *ebiten.Image
}

// Bounds returns the bounds of the image.
func (i *EbitenImage) Bounds() image.Rectangle {
	return i.img.Bounds()
}

// Size returns the width and height of the image.
func (i *EbitenImage) Size() (width, height int) {
	return i.img.Bounds().Dx(), i.img.Bounds().Dy()
}

// WritePixels uploads pix to the image.
func (i *EbitenImage) WritePixels(pix []byte) {
	i.img.WritePixels(pix)
}

// EbitenInputManager implements the InputManager interface using Ebiten.
type EbitenInputManager struct{}

// NewInputManager creates a new Ebiten-based input manager.
func NewInputManager() render.InputManager {
	return &EbitenInputManager{}
}

// IsKeyPressed returns whether the specified key is currently pressed.
func (m *EbitenInputManager) IsKeyPressed(key render.Key) bool {
	for _, k := range keyToEbitenKeys(key) {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// IsKeyJustPressed returns whether the specified key was just pressed this frame.
func (m *EbitenInputManager) IsKeyJustPressed(key render.Key) bool {
	for _, k := range keyToEbitenKeys(key) {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// CursorPosition returns the current cursor position.
func (m *EbitenInputManager) CursorPosition() (x, y int) {
	return ebiten.CursorPosition()
}

// IsMouseButtonPressed returns whether the specified mouse button is currently pressed.
func (m *EbitenInputManager) IsMouseButtonPressed(button render.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(mouseButtonToEbiten(button))
}

// IsMouseButtonJustPressed returns whether the button went down this frame.
func (m *EbitenInputManager) IsMouseButtonJustPressed(button render.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(mouseButtonToEbiten(button))
}

// SetCursorCaptured locks the cursor to the window for mouse look.
func (m *EbitenInputManager) SetCursorCaptured(captured bool) {
	if captured {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
}

// keyToEbitenKeys converts a render.Key to the ebiten keys that trigger it.
func keyToEbitenKeys(key render.Key) []ebiten.Key {
	switch key {
	case render.KeyW:
		return []ebiten.Key{ebiten.KeyW}
	case render.KeyA:
		return []ebiten.Key{ebiten.KeyA}
	case render.KeyS:
		return []ebiten.Key{ebiten.KeyS}
	case render.KeyD:
		return []ebiten.Key{ebiten.KeyD}
	case render.KeyE:
		return []ebiten.Key{ebiten.KeyE}
	case render.KeyQ:
		return []ebiten.Key{ebiten.KeyQ}
	case render.KeyUp:
		return []ebiten.Key{ebiten.KeyArrowUp}
	case render.KeyDown:
		return []ebiten.Key{ebiten.KeyArrowDown}
	case render.KeyLeft:
		return []ebiten.Key{ebiten.KeyArrowLeft}
	case render.KeyRight:
		return []ebiten.Key{ebiten.KeyArrowRight}
	case render.KeyShift:
		return []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight}
	case render.KeyControl:
		return []ebiten.Key{ebiten.KeyControlLeft, ebiten.KeyControlRight, ebiten.KeyMetaLeft, ebiten.KeyMetaRight}
	case render.KeyEqual:
		return []ebiten.Key{ebiten.KeyEqual, ebiten.KeyNumpadAdd}
	case render.KeyMinus:
		return []ebiten.Key{ebiten.KeyMinus, ebiten.KeyNumpadSubtract}
	case render.KeyEnter:
		return []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}
	case render.KeySpace:
		return []ebiten.Key{ebiten.KeySpace}
	case render.KeyEscape:
		return []ebiten.Key{ebiten.KeyEscape}
	default:
		return nil
	}
}

// mouseButtonToEbiten converts a render.MouseButton to an ebiten.MouseButton.
func mouseButtonToEbiten(button render.MouseButton) ebiten.MouseButton {
	switch button {
	case render.MouseButtonLeft:
		return ebiten.MouseButtonLeft
	case render.MouseButtonRight:
		return ebiten.MouseButtonRight
	case render.MouseButtonMiddle:
		return ebiten.MouseButtonMiddle
	default:
		return ebiten.MouseButtonLeft
	}
}

// EbitenEngine implements the Engine interface using Ebiten.
type EbitenEngine struct{}

// NewEngine creates a new Ebiten-based game engine.
func NewEngine() render.Engine {
	return &EbitenEngine{}
}

// SetWindowSize sets the window size in pixels.
func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// SetWindowResizable enables or disables window resizing.
func (e *EbitenEngine) SetWindowResizable(resizable bool) {
	if resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
}

// SetTPS sets how many updates run per second.
func (e *EbitenEngine) SetTPS(tps int) {
	ebiten.SetTPS(tps)
}

// RunGame runs the game loop with the provided game. The screen keeps its
// contents between frames, since games redraw only after an update.
func (e *EbitenEngine) RunGame(game render.Game) error {
	ebiten.SetScreenClearedEveryFrame(false)
	return ebiten.RunGame(&gameAdapter{game: game})
}

// gameAdapter adapts a render.Game to ebiten.Game interface.
type gameAdapter struct {
	game render.Game
}

// Update implements ebiten.Game.
func (a *gameAdapter) Update() error {
	err := a.game.Update()
	if errors.Is(err, render.ErrTerminated) {
		return ebiten.Termination
	}
	return err
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&EbitenImage{img: screen})
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
