package sim

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/raymaze/internal/logger"
)

// Simulation owns the player and every transient entity collection.
// The renderer reads the exported slices after Step returns.
type Simulation struct {
	cfg     Config
	terrain Terrain
	rng     *rand.Rand
	log     *logrus.Entry

	Player      Player
	Projectiles []Projectile
	Explosions  []Explosion
	Enemies     []Enemy

	spawn     Vec
	lastSpawn float64
	respawns  int // bumped on every respawn
}

// New creates a simulation with the player at spawn, full health and empty
// entity collections. now is the current clock reading in seconds.
func New(cfg Config, terrain Terrain, spawn Vec, seed int64, now float64) *Simulation {
	s := &Simulation{
		cfg:       cfg,
		terrain:   terrain,
		rng:       rand.New(rand.NewSource(seed)),
		log:       logger.WithComponent("sim"),
		spawn:     spawn,
		lastSpawn: now,
	}
	s.Player = Player{
		Pos:       spawn,
		Health:    cfg.PlayerMaxHealth,
		MaxHealth: cfg.PlayerMaxHealth,
		LastMove:  FromAngle(0),
		LastShot:  now - cfg.ProjectileCooldown,
		LastDash:  now - cfg.DashCooldown,
	}
	return s
}

// Config returns the tuning in use.
func (s *Simulation) Config() Config {
	return s.cfg
}

// Respawns returns how many times the player has respawned.
func (s *Simulation) Respawns() int {
	return s.respawns
}

// SpawnProjectile adds p to the live projectiles.
func (s *Simulation) SpawnProjectile(p Projectile) {
	s.Projectiles = append(s.Projectiles, p)
}

// DamagePlayer subtracts amount from the player's health, clamped at zero.
// Reaching zero respawns the player immediately.
func (s *Simulation) DamagePlayer(amount int) bool {
	if amount < 0 {
		amount = 0
	}
	prev := s.Player.Health
	s.Player.Health = max(0, s.Player.Health-amount)
	hit := s.Player.Health < prev
	if s.Player.Health == 0 {
		s.Respawn()
	}
	return hit
}

// Respawn resets the player to spawn with full health and clears all
// projectiles, explosions and enemies.
func (s *Simulation) Respawn() {
	s.log.WithFields(logrus.Fields{
		"x":        s.spawn.X,
		"y":        s.spawn.Y,
		"respawns": s.respawns + 1,
	}).Info("player down, respawning at spawn")

	s.Player.Pos = s.spawn
	s.Player.Angle = 0
	s.Player.LastMove = FromAngle(0)
	s.Player.Health = s.Player.MaxHealth
	s.Projectiles = nil
	s.Explosions = nil
	s.Enemies = nil
	s.respawns++
}

// Shoot fires a player projectile along the facing direction if the shot
// cooldown has elapsed.
func (s *Simulation) Shoot(now float64) bool {
	if now-s.Player.LastShot < s.cfg.ProjectileCooldown {
		return false
	}
	s.SpawnProjectile(NewProjectile(s.Player.Pos, s.Player.Angle, s.cfg.ProjectileMuzzleOffset,
		s.cfg.ProjectileSpeed, now, OwnerPlayer))
	s.Player.LastShot = now
	return true
}

// Dash moves the player DashDistance along moveDir, falling back to the last
// movement direction and then the facing direction when moveDir is zero.
// The dash is split into small steps, each wall-tested per axis, so walls can
// cut it short. The cooldown restarts even when nothing moved.
func (s *Simulation) Dash(moveDir Vec, now float64) bool {
	if now-s.Player.LastDash < s.cfg.DashCooldown {
		return false
	}
	dir := moveDir
	if dir.IsZero() {
		dir = s.Player.LastMove
	}
	if dir.IsZero() {
		dir = s.Player.Facing()
	}
	dir = dir.Normalize()

	moved := false
	if !dir.IsZero() && s.cfg.DashDistance > 0 {
		steps := 1
		if s.cfg.DashStepDistance > 0 {
			steps = max(1, int(s.cfg.DashDistance/s.cfg.DashStepDistance))
		}
		step := dir.Scale(s.cfg.DashDistance / float64(steps))
		for i := 0; i < steps; i++ {
			if slide(&s.Player.Pos, step, s.terrain) {
				moved = true
			}
		}
		if moved {
			s.Player.LastMove = dir
		}
	}
	s.Player.LastDash = now
	return moved
}

// StepResult reports what happened during one simulation step.
type StepResult struct {
	Spawned       bool
	EnemiesMoved  bool
	EnemyShots    int
	EnemiesHit    int
	NewExplosions int
	PlayerHit     bool
	Respawned     bool
}

// Active reports whether the step changed anything.
func (r StepResult) Active() bool {
	return r.Spawned || r.EnemiesMoved || r.EnemyShots > 0 || r.EnemiesHit > 0 ||
		r.NewExplosions > 0 || r.PlayerHit || r.Respawned
}

// Step advances spawning, enemy AI, projectiles and explosions by dt seconds.
// Enemy shots go to shots and player damage to damage.
func (s *Simulation) Step(dt, now float64, shots ProjectileSink, damage DamageSink) StepResult {
	var res StepResult
	res.Spawned = s.MaybeSpawnEnemy(now)
	res.EnemiesMoved, res.EnemyShots = s.UpdateEnemies(dt, now, shots)

	before := s.respawns
	pr := s.StepProjectiles(dt, now, damage)
	res.EnemiesHit = len(pr.EnemiesHit)
	res.NewExplosions = pr.Explosions
	res.PlayerHit = pr.PlayerHit
	res.Respawned = s.respawns != before

	s.PruneExplosions(now)
	return res
}

// PruneExplosions drops explosions older than ExplosionDuration.
func (s *Simulation) PruneExplosions(now float64) {
	kept := s.Explosions[:0]
	for _, e := range s.Explosions {
		if now-e.Start < s.cfg.ExplosionDuration {
			kept = append(kept, e)
		}
	}
	s.Explosions = kept
}

// Busy reports whether unresolved projectiles or explosions remain.
func (s *Simulation) Busy() bool {
	return len(s.Projectiles) > 0 || len(s.Explosions) > 0
}
