// Package game is the frame orchestrator: it turns input into player
// actions, steps the simulation, renders the frame and paces the loop by
// how much is going on.
package game

import (
	"image"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/raymaze/internal/assets"
	"chosenoffset.com/raymaze/internal/audio"
	"chosenoffset.com/raymaze/internal/logger"
	"chosenoffset.com/raymaze/internal/render"
	"chosenoffset.com/raymaze/internal/render/raycast"
	"chosenoffset.com/raymaze/internal/sim"
	"chosenoffset.com/raymaze/internal/ui/hud"
	"chosenoffset.com/raymaze/internal/ui/menu"
	"chosenoffset.com/raymaze/internal/world"
)

// minDT keeps dt positive when two ticks read the same clock value.
const minDT = 0.001

// TPSSetter is the part of the engine the pacer drives.
type TPSSetter interface {
	SetTPS(tps int)
}

// Options wires a Game to its settings and collaborators.
type Options struct {
	Width, Height int
	Seed          int64 // simulation rng

	Render raycast.Config
	Sim    sim.Config
	Pacing PacingConfig
	Menu   menu.Config

	Input  render.InputManager
	Engine TPSSetter    // optional
	Audio  audio.Player // optional
	Clock  func() time.Time
}

// Game holds all game state and logic.
type Game struct {
	width, height int
	renderCfg     raycast.Config

	world   *world.Model
	sim     *sim.Simulation
	ray     *raycast.Raycaster
	minimap *raycast.Minimap
	hud     *hud.HUD
	menu    *menu.Menu
	pacer   *Pacer
	fps     fpsMeter
	frame   *image.RGBA
	stale   bool // frame predates the last tick
	zoom    float64

	input    render.InputManager
	engine   TPSSetter
	audio    audio.Player
	clock    func() time.Time
	start    time.Time
	lastTick float64

	captured   bool
	lastCursor image.Point
	haveCursor bool

	log *logrus.Entry
}

// New builds a game over model, drawing with art.
func New(model *world.Model, art *assets.Set, opts Options) *Game {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	ray := raycast.New(opts.Render, opts.Width, opts.Height)
	ray.Configure(model, art.Tile)
	ray.SetSprites(raycast.Sprites{
		Enemy:     art.Enemy,
		Body:      art.Body,
		Trail:     art.Trail,
		Explosion: art.Explosion,
	})

	sx, sy := model.Spawn()
	g := &Game{
		width:     opts.Width,
		height:    opts.Height,
		renderCfg: opts.Render,
		world:     model,
		sim:       sim.New(opts.Sim, model, sim.Vec{X: sx, Y: sy}, opts.Seed, 0),
		ray:       ray,
		minimap:   raycast.NewMinimap(model.Grid(), opts.Render.MinimapTextureScale, opts.Render.MinimapSize),
		hud:       hud.New(opts.Width, opts.Height),
		menu:      menu.New(opts.Menu, opts.Width, opts.Height),
		pacer:     NewPacer(opts.Pacing, 0),
		frame:     image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height)),
		stale:     true,
		zoom:      opts.Render.ZoomDefault,
		input:     opts.Input,
		engine:    opts.Engine,
		audio:     opts.Audio,
		clock:     clock,
		start:     clock(),
		log:       logger.WithComponent("game"),
	}
	if g.engine != nil {
		g.engine.SetTPS(g.pacer.Target())
	}
	if g.input != nil {
		g.input.SetCursorCaptured(true)
		g.captured = true
	}
	return g
}

// Sim exposes the simulation state.
func (g *Game) Sim() *sim.Simulation {
	return g.sim
}

// Menu exposes the settings overlay.
func (g *Game) Menu() *menu.Menu {
	return g.menu
}

// Pacer exposes the frame-rate controller.
func (g *Game) Pacer() *Pacer {
	return g.pacer
}

// Zoom returns the minimap zoom in cells across.
func (g *Game) Zoom() float64 {
	return g.zoom
}

// FPS returns the ticks counted over the last full second.
func (g *Game) FPS() int {
	return g.fps.fps
}

func (g *Game) now() float64 {
	return g.clock().Sub(g.start).Seconds()
}

// Update handles one engine tick.
func (g *Game) Update() error {
	res := g.Tick(g.readControls(), g.now())
	if res.TPSChanged && g.engine != nil {
		g.engine.SetTPS(res.TPS)
	}
	if g.input != nil && g.captured == g.menu.Open() {
		g.captured = !g.menu.Open()
		g.input.SetCursorCaptured(g.captured)
		g.haveCursor = false
	}
	return nil
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Tick advances the game to now (seconds since start) under controls c:
// menu and zoom, player movement, dash and shooting, then one simulation
// step. The activity signal it gathers drives the pacer.
func (g *Game) Tick(c Controls, now float64) TickResult {
	dt := math.Max(now-g.lastTick, minDT)
	g.lastTick = now
	g.stale = true

	var res TickResult
	active := c.AnyKey

	if c.ZoomIn && g.adjustZoom(-g.renderCfg.ZoomStep) {
		active = true
	}
	if c.ZoomOut && g.adjustZoom(g.renderCfg.ZoomStep) {
		active = true
	}
	if c.ToggleMenu {
		g.menu.Toggle()
		active = true
	}
	if g.menu.Update(c.Pointer) {
		active = true
	}

	var moveDir sim.Vec
	if !g.menu.Open() {
		var moved bool
		moveDir, moved = g.movePlayer(c, dt)
		res.Step.Moved = moved
		turned := g.turnPlayer(c, dt)
		if !moveDir.IsZero() || turned {
			active = true
		}
		if c.Dash && g.sim.Dash(moveDir, now) {
			res.Step.Dashed = true
		}
		if c.Shoot && g.sim.Shoot(now) {
			res.Step.Shot = true
			g.play(audio.CueShot)
		}
	}

	step := g.sim.Step(dt, now, g.sim, g.sim)
	res.Step.EnemyShots = step.EnemyShots
	res.Step.Explosions = step.NewExplosions
	res.Step.PlayerHit = step.PlayerHit
	res.Step.Respawned = step.Respawned
	g.playStepCues(step)

	if res.Step.Moved || res.Step.Dashed || res.Step.Shot || step.Active() ||
		g.sim.Busy() || g.menu.Dragging() {
		active = true
	}
	res.Active = active

	res.TPS, res.TPSChanged = g.pacer.Observe(active, now)
	if res.TPSChanged {
		g.log.WithFields(logrus.Fields{
			"tps":  res.TPS,
			"tier": g.pacer.Tier().String(),
			"idle": math.Round(g.pacer.Idle(now)*100) / 100,
		}).Info("adjusting target tick rate")
	}
	if g.fps.tick(now) {
		g.log.WithFields(logrus.Fields{
			"fps":    g.fps.fps,
			"target": g.pacer.Target(),
		}).Debug("frame rate")
	}
	return res
}

// movePlayer applies WASD movement relative to facing and returns the
// normalized intended direction.
func (g *Game) movePlayer(c Controls, dt float64) (sim.Vec, bool) {
	p := &g.sim.Player
	sin, cos := math.Sincos(p.Angle)

	var in sim.Vec
	if c.Forward {
		in = in.Add(sim.Vec{X: cos, Y: sin})
	}
	if c.Back {
		in = in.Sub(sim.Vec{X: cos, Y: sin})
	}
	if c.Left {
		in = in.Add(sim.Vec{X: sin, Y: -cos})
	}
	if c.Right {
		in = in.Add(sim.Vec{X: -sin, Y: cos})
	}
	if in.IsZero() {
		return sim.Vec{}, false
	}

	dir := in.Normalize()
	cfg := g.sim.Config()
	speed := cfg.MoveSpeed * dt
	if c.Sprint {
		speed *= cfg.SprintMultiplier
	}
	return dir, p.Move(dir, speed, g.world)
}

// turnPlayer applies arrow-key and mouse rotation.
func (g *Game) turnPlayer(c Controls, dt float64) bool {
	p := &g.sim.Player
	step := g.sim.Config().RotationSpeed * dt
	turned := false
	if c.TurnLeft {
		p.Rotate(-step)
		turned = true
	}
	if c.TurnRight {
		p.Rotate(step)
		turned = true
	}
	if c.MouseDX != 0 {
		p.Rotate(c.MouseDX * g.menu.Sensitivity())
		turned = true
	}
	return turned
}

// adjustZoom changes the minimap zoom by delta within the configured range
// and reports whether it changed.
func (g *Game) adjustZoom(delta float64) bool {
	z := math.Max(g.renderCfg.ZoomMin, math.Min(g.renderCfg.ZoomMax, g.zoom+delta))
	if math.Abs(z-g.zoom) < 1e-3 {
		return false
	}
	g.zoom = z
	return true
}

func (g *Game) playStepCues(step sim.StepResult) {
	if step.EnemyShots > 0 {
		g.play(audio.CueEnemyShot)
	}
	if step.NewExplosions > 0 {
		g.play(audio.CueExplosion)
	}
	if step.PlayerHit {
		g.play(audio.CueHurt)
	}
}

func (g *Game) play(c audio.Cue) {
	if g.audio != nil {
		g.audio.Play(c)
	}
}
