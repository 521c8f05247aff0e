package game

import (
	"image"

	"chosenoffset.com/raymaze/internal/render"
	"chosenoffset.com/raymaze/internal/render/raycast"
	"chosenoffset.com/raymaze/internal/ui/hud"
)

// Draw presents the frame. The scene is re-rendered only when a tick has
// run since the last draw; otherwise the cached frame is uploaded again.
func (g *Game) Draw(screen render.Image) {
	if g.stale {
		g.Render(g.frame)
		g.stale = false
	}
	screen.WritePixels(g.frame.Pix)
}

// Render draws the current state into dst: the raycast scene, sprites,
// minimap, HUD and menu, in that order.
func (g *Game) Render(dst *image.RGBA) {
	pose := g.pose()
	ents := g.entities()
	now := g.lastTick

	g.ray.Render(dst, pose)
	g.ray.DrawEntities(dst, pose, ents, now)
	at := g.minimap.Offset(g.width, g.height, g.renderCfg.MinimapMargin)
	g.minimap.Draw(dst, at, pose, ents, g.zoom)

	p := g.sim.Player
	g.hud.Draw(dst, hud.State{
		Health:    p.Health,
		MaxHealth: p.MaxHealth,
		FPS:       g.fps.fps,
		Crosshair: !g.menu.Open(),
	})
	g.menu.Draw(dst, g.cursor(), g.zoom)
}

func (g *Game) pose() raycast.Pose {
	p := g.sim.Player
	return raycast.Pose{X: p.Pos.X, Y: p.Pos.Y, Angle: p.Angle}
}

func (g *Game) entities() raycast.Entities {
	return raycast.Entities{
		Enemies:           g.sim.Enemies,
		Projectiles:       g.sim.Projectiles,
		Explosions:        g.sim.Explosions,
		ExplosionDuration: g.sim.Config().ExplosionDuration,
	}
}

func (g *Game) cursor() image.Point {
	if g.input == nil {
		return image.Point{}
	}
	x, y := g.input.CursorPosition()
	return image.Pt(x, y)
}
