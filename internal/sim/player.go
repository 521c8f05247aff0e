package sim

import "math"

// Player is the controlled actor.
type Player struct {
	Pos       Vec
	Angle     float64 // radians in [0, 2π)
	Health    int
	MaxHealth int
	LastMove  Vec // last non-zero movement direction
	LastShot  float64
	LastDash  float64
}

// Facing returns the unit view direction.
func (p *Player) Facing() Vec {
	return FromAngle(p.Angle)
}

// Rotate turns the player by delta radians, keeping the angle in [0, 2π).
func (p *Player) Rotate(delta float64) {
	p.Angle = wrapAngle(p.Angle + delta)
}

// Move displaces the player by dir*distance, testing each axis against the
// terrain separately so the player slides along walls. It reports whether
// either axis moved.
func (p *Player) Move(dir Vec, distance float64, t Terrain) bool {
	moved := slide(&p.Pos, dir.Scale(distance), t)
	if moved {
		p.LastMove = dir
	}
	return moved
}

// slide applies delta to pos one axis at a time, skipping any axis whose
// destination is a wall.
func slide(pos *Vec, delta Vec, t Terrain) bool {
	moved := false
	if nx := pos.X + delta.X; delta.X != 0 && !t.IsWall(nx, pos.Y) {
		pos.X = nx
		moved = true
	}
	if ny := pos.Y + delta.Y; delta.Y != 0 && !t.IsWall(pos.X, ny) {
		pos.Y = ny
		moved = true
	}
	return moved
}

func wrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	// a tiny negative angle rounds up to exactly 2π
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}
