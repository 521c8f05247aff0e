package sim

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// FindSpawnPosition samples up to EnemySpawnAttempts random points inside
// the map margins and returns the first one that is floor, at least
// EnemySpawnDistance from the player and EnemyMinSeparation from every
// enemy.
func (s *Simulation) FindSpawnPosition() (Vec, bool) {
	w, h := s.terrain.Size()
	margin := s.cfg.SpawnMargin
	spanX := float64(w) - 2*margin
	spanY := float64(h) - 2*margin
	if spanX <= 0 || spanY <= 0 {
		return Vec{}, false
	}

	for attempt := 0; attempt < s.cfg.EnemySpawnAttempts; attempt++ {
		c := Vec{margin + s.rng.Float64()*spanX, margin + s.rng.Float64()*spanY}
		if s.terrain.IsWall(c.X, c.Y) {
			continue
		}
		if c.Dist(s.Player.Pos) < s.cfg.EnemySpawnDistance {
			continue
		}
		if s.crowded(c) {
			continue
		}
		return c, true
	}
	return Vec{}, false
}

func (s *Simulation) crowded(c Vec) bool {
	for _, e := range s.Enemies {
		if c.Dist(e.Pos) < s.cfg.EnemyMinSeparation {
			return true
		}
	}
	return false
}

// SpawnEnemy places a new enemy if a valid position exists.
func (s *Simulation) SpawnEnemy(now float64) bool {
	pos, ok := s.FindSpawnPosition()
	if !ok {
		return false
	}
	e := Enemy{ID: uuid.New(), Pos: pos, SpawnTime: now, LastShot: now}
	s.Enemies = append(s.Enemies, e)
	s.log.WithFields(logrus.Fields{
		"id":    e.ID,
		"x":     pos.X,
		"y":     pos.Y,
		"count": len(s.Enemies),
	}).Debug("enemy spawned")
	return true
}

// MaybeSpawnEnemy spawns on the EnemySpawnInterval while below
// EnemyMaxCount. The interval restarts only after a successful spawn, so a
// crowded map keeps retrying every tick.
func (s *Simulation) MaybeSpawnEnemy(now float64) bool {
	if now-s.lastSpawn < s.cfg.EnemySpawnInterval {
		return false
	}
	if len(s.Enemies) >= s.cfg.EnemyMaxCount {
		return false
	}
	if !s.SpawnEnemy(now) {
		return false
	}
	s.lastSpawn = now
	return true
}
