package sim

import "math"

// UpdateEnemies moves each enemy toward the player until it is within
// EnemyStopDistance, sliding along walls axis by axis, and fires at the
// player through shots when in range and off cooldown. It reports whether
// any enemy moved and how many shots were fired.
func (s *Simulation) UpdateEnemies(dt, now float64, shots ProjectileSink) (moved bool, fired int) {
	if shots == nil {
		shots = s
	}
	target := s.Player.Pos
	for i := range s.Enemies {
		e := &s.Enemies[i]
		if s.approach(e, target, dt) {
			moved = true
		}
		to := target.Sub(e.Pos)
		if to.Len() > s.cfg.EnemyFireDistance {
			continue
		}
		if now-e.LastShot < s.cfg.EnemyFireCooldown {
			continue
		}
		shots.SpawnProjectile(NewProjectile(e.Pos, math.Atan2(to.Y, to.X), s.cfg.ProjectileMuzzleOffset,
			s.cfg.EnemyProjectileSpeed, now, OwnerEnemy))
		e.LastShot = now
		fired++
	}
	return moved, fired
}

func (s *Simulation) approach(e *Enemy, target Vec, dt float64) bool {
	to := target.Sub(e.Pos)
	dist := to.Len()
	if dist < nearZero || dist <= s.cfg.EnemyStopDistance {
		return false
	}
	return slide(&e.Pos, to.Scale(s.cfg.EnemyMoveSpeed*dt/dist), s.terrain)
}
