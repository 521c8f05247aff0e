package sim

import "github.com/google/uuid"

// ProjectileResult summarises one projectile pass.
type ProjectileResult struct {
	EnemiesHit []uuid.UUID
	Explosions int
	PlayerHit  bool
}

// StepProjectiles advances every projectile by speed*dt in substeps no longer
// than ProjectileStepDistance. A projectile ends on a wall, on a target or
// once it has travelled ProjectileMaxDistance, leaving an explosion at its
// last position outside any wall. Each enemy is credited to at most one projectile; hit
// enemies are removed after the scan.
//
// Player damage goes through damage. If that respawns the player the pass
// stops at once, leaving the collections cleared by the respawn.
func (s *Simulation) StepProjectiles(dt, now float64, damage DamageSink) ProjectileResult {
	var res ProjectileResult
	if len(s.Projectiles) == 0 {
		return res
	}
	if damage == nil {
		damage = s
	}
	epoch := s.respawns
	hit := make(map[uuid.UUID]struct{})
	kept := make([]Projectile, 0, len(s.Projectiles))

	for _, p := range s.Projectiles {
		travel := p.Speed * dt
		if travel <= 0 {
			kept = append(kept, p)
			continue
		}
		steps := 1
		if s.cfg.ProjectileStepDistance > 0 {
			steps = max(1, int(travel/s.cfg.ProjectileStepDistance))
		}
		step := p.Dir.Scale(travel / float64(steps))
		stepLen := step.Len()

		collided := false
		for i := 0; i < steps && !collided; i++ {
			next := p.Pos.Add(step)
			p.Distance += stepLen
			if s.terrain.IsWall(next.X, next.Y) {
				collided = true
				break
			}
			p.Pos = next
			switch p.Owner {
			case OwnerPlayer:
				for _, e := range s.Enemies {
					if _, done := hit[e.ID]; done {
						continue
					}
					if p.Pos.Dist(e.Pos) <= s.cfg.EnemyHitRadius {
						hit[e.ID] = struct{}{}
						res.EnemiesHit = append(res.EnemiesHit, e.ID)
						collided = true
						break
					}
				}
			case OwnerEnemy:
				if p.Pos.Dist(s.Player.Pos) <= s.cfg.PlayerHitRadius {
					if damage.DamagePlayer(s.cfg.EnemyProjectileDamage) {
						res.PlayerHit = true
					}
					collided = true
				}
			}
		}
		if s.respawns != epoch {
			return res
		}
		if collided || p.Distance >= s.cfg.ProjectileMaxDistance {
			s.Explosions = append(s.Explosions, Explosion{Pos: p.Pos, Start: now})
			res.Explosions++
			continue
		}
		kept = append(kept, p)
	}

	s.Projectiles = kept
	s.removeEnemies(hit)
	return res
}

func (s *Simulation) removeEnemies(ids map[uuid.UUID]struct{}) {
	if len(ids) == 0 {
		return
	}
	kept := s.Enemies[:0]
	for _, e := range s.Enemies {
		if _, gone := ids[e.ID]; !gone {
			kept = append(kept, e)
		}
	}
	s.Enemies = kept
}
