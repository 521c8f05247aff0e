package game

import (
	"image"

	"chosenoffset.com/raymaze/internal/render"
	"chosenoffset.com/raymaze/internal/ui/menu"
)

// readControls samples the input manager for one tick.
func (g *Game) readControls() Controls {
	in := g.input
	if in == nil {
		return Controls{}
	}
	ctrl := in.IsKeyPressed(render.KeyControl)
	c := Controls{
		Forward:    in.IsKeyPressed(render.KeyW),
		Back:       in.IsKeyPressed(render.KeyS),
		Left:       in.IsKeyPressed(render.KeyA),
		Right:      in.IsKeyPressed(render.KeyD),
		TurnLeft:   in.IsKeyPressed(render.KeyLeft),
		TurnRight:  in.IsKeyPressed(render.KeyRight),
		Sprint:     in.IsKeyPressed(render.KeyShift),
		Shoot:      in.IsKeyJustPressed(render.KeyE),
		Dash:       in.IsKeyJustPressed(render.KeyQ),
		ZoomIn:     ctrl && in.IsKeyJustPressed(render.KeyEqual),
		ZoomOut:    ctrl && in.IsKeyJustPressed(render.KeyMinus),
		ToggleMenu: in.IsKeyJustPressed(render.KeyEscape),
	}
	// Zoom chords are not general activity; every other key press is.
	if !c.ZoomIn && !c.ZoomOut {
		for _, k := range render.Keys() {
			if in.IsKeyJustPressed(k) {
				c.AnyKey = true
				break
			}
		}
	}

	x, y := in.CursorPosition()
	cur := image.Pt(x, y)
	if g.haveCursor && !g.menu.Open() {
		c.MouseDX = float64(cur.X - g.lastCursor.X)
	}
	g.lastCursor = cur
	g.haveCursor = true

	c.Pointer = menu.Pointer{
		X:           x,
		Y:           y,
		Pressed:     in.IsMouseButtonPressed(render.MouseButtonLeft),
		JustPressed: in.IsMouseButtonJustPressed(render.MouseButtonLeft),
	}
	return c
}
