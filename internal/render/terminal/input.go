package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/raymaze/internal/render"
)

// holdWindow is how long a key counts as held after its last event.
// Terminals report presses and auto-repeat but never releases.
const holdWindow = 180 * time.Millisecond

// Input turns tcell key and mouse events into per-tick key state.
type Input struct {
	now func() time.Time

	lastSeen map[render.Key]time.Time
	just     map[render.Key]bool

	cellX, cellY   int
	scaleX, scaleY float64
	buttons        tcell.ButtonMask
	justButtons    tcell.ButtonMask
}

// NewInput returns an Input with no keys held.
func NewInput() *Input {
	return &Input{
		now:      time.Now,
		lastSeen: make(map[render.Key]time.Time),
		just:     make(map[render.Key]bool),
		scaleX:   1,
		scaleY:   2,
	}
}

// Handle applies one event. It reports true when the user asked to quit.
func (in *Input) Handle(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return true
		}
		for _, k := range keysFor(ev) {
			in.press(k)
		}
	case *tcell.EventMouse:
		in.cellX, in.cellY = ev.Position()
		b := ev.Buttons()
		in.justButtons |= b &^ in.buttons
		in.buttons = b
	}
	return false
}

func (in *Input) press(k render.Key) {
	if !in.IsKeyPressed(k) {
		in.just[k] = true
	}
	in.lastSeen[k] = in.now()
}

// EndTick clears the edge-triggered state of the tick that just ran.
func (in *Input) EndTick() {
	clear(in.just)
	in.justButtons = 0
}

// setScale records how many frame pixels one terminal cell covers.
func (in *Input) setScale(sx, sy float64) {
	in.scaleX, in.scaleY = sx, sy
}

// IsKeyPressed reports whether k had an event within the hold window.
func (in *Input) IsKeyPressed(k render.Key) bool {
	t, ok := in.lastSeen[k]
	return ok && in.now().Sub(t) < holdWindow
}

// IsKeyJustPressed reports whether k went down during this tick.
func (in *Input) IsKeyJustPressed(k render.Key) bool {
	return in.just[k]
}

// CursorPosition returns the mouse position in frame pixels.
func (in *Input) CursorPosition() (x, y int) {
	return int(float64(in.cellX) * in.scaleX), int(float64(in.cellY) * in.scaleY)
}

// IsMouseButtonPressed reports whether button is down.
func (in *Input) IsMouseButtonPressed(button render.MouseButton) bool {
	return in.buttons&buttonMask(button) != 0
}

// IsMouseButtonJustPressed reports whether button went down during this tick.
func (in *Input) IsMouseButtonJustPressed(button render.MouseButton) bool {
	return in.justButtons&buttonMask(button) != 0
}

// SetCursorCaptured is a no-op; the terminal cursor is always hidden.
func (in *Input) SetCursorCaptured(bool) {}

func buttonMask(b render.MouseButton) tcell.ButtonMask {
	switch b {
	case render.MouseButtonRight:
		return tcell.Button2
	case render.MouseButtonMiddle:
		return tcell.Button3
	default:
		return tcell.Button1
	}
}

// keysFor maps one key event to the keys it holds down. Terminals cannot
// report Ctrl with '=' or '-', so '+' and '_' stand in for those chords.
func keysFor(ev *tcell.EventKey) []render.Key {
	var keys []render.Key
	if ev.Modifiers()&tcell.ModShift != 0 {
		keys = append(keys, render.KeyShift)
	}
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		keys = append(keys, render.KeyControl)
	}

	switch ev.Key() {
	case tcell.KeyUp:
		return append(keys, render.KeyUp)
	case tcell.KeyDown:
		return append(keys, render.KeyDown)
	case tcell.KeyLeft:
		return append(keys, render.KeyLeft)
	case tcell.KeyRight:
		return append(keys, render.KeyRight)
	case tcell.KeyEnter:
		return append(keys, render.KeyEnter)
	case tcell.KeyEscape:
		return append(keys, render.KeyEscape)
	case tcell.KeyRune:
	default:
		return keys
	}

	r := ev.Rune()
	if r >= 'A' && r <= 'Z' {
		keys = append(keys, render.KeyShift)
		r += 'a' - 'A'
	}
	switch r {
	case 'w':
		keys = append(keys, render.KeyW)
	case 'a':
		keys = append(keys, render.KeyA)
	case 's':
		keys = append(keys, render.KeyS)
	case 'd':
		keys = append(keys, render.KeyD)
	case 'e':
		keys = append(keys, render.KeyE)
	case 'q':
		keys = append(keys, render.KeyQ)
	case ' ':
		keys = append(keys, render.KeySpace)
	case '=':
		keys = append(keys, render.KeyEqual)
	case '-':
		keys = append(keys, render.KeyMinus)
	case '+':
		keys = append(keys, render.KeyControl, render.KeyEqual)
	case '_':
		keys = append(keys, render.KeyControl, render.KeyMinus)
	}
	return keys
}
