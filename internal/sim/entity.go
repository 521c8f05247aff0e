package sim

import (
	"math"

	"github.com/google/uuid"
)

// nearZero guards divisions by vector lengths and distances.
const nearZero = 1e-6

// Vec is a 2D world-space vector.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(f float64) Vec { return Vec{v.X * f, v.Y * f} }
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }
func (v Vec) Dist(o Vec) float64 { return math.Hypot(v.X-o.X, v.Y-o.Y) }
func (v Vec) IsZero() bool { return math.Abs(v.X) < nearZero && math.Abs(v.Y) < nearZero }
func (v Vec) Angle() float64 { return math.Atan2(v.Y, v.X) }

// FromAngle returns the unit vector pointing along angle.
func FromAngle(angle float64) Vec { return Vec{math.Cos(angle), math.Sin(angle)} }

// Normalize returns the unit vector, or the zero vector for near-zero input.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l < nearZero {
		return Vec{}
	}
	return Vec{v.X / l, v.Y / l}
}

// Terrain is the static collision geometry.
type Terrain interface {
	IsWall(x, y float64) bool
	Size() (width, height int)
}

// Owner tags who fired a projectile.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

func (o Owner) String() string {
	if o == OwnerEnemy {
		return "enemy"
	}
	return "player"
}

// Projectile is a shot in flight.
type Projectile struct {
	Pos       Vec
	Dir       Vec // unit length
	Speed     float64
	Distance  float64 // total distance travelled
	SpawnTime float64
	Owner     Owner
}

// Explosion is a purely visual effect left where a projectile ended.
type Explosion struct {
	Pos   Vec
	Start float64
}

// Progress returns how far through its lifetime the explosion is, in [0, 1+).
func (e Explosion) Progress(now, duration float64) float64 {
	if duration <= 0 {
		return 1
	}
	return (now - e.Start) / duration
}

// Enemy is a hostile actor. ID is a stable handle used when removing hit
// enemies after a projectile pass.
type Enemy struct {
	ID        uuid.UUID
	Pos       Vec
	SpawnTime float64
	LastShot  float64
}

// ProjectileSink accepts newly fired projectiles.
type ProjectileSink interface {
	SpawnProjectile(p Projectile)
}

// DamageSink applies damage to the player and reports whether health dropped.
type DamageSink interface {
	DamagePlayer(amount int) bool
}

// NewProjectile builds a projectile fired from origin along angle, starting
// offset units ahead of the shooter.
func NewProjectile(origin Vec, angle, offset, speed, now float64, owner Owner) Projectile {
	dir := FromAngle(angle)
	return Projectile{
		Pos:       origin.Add(dir.Scale(offset)),
		Dir:       dir,
		Speed:     speed,
		SpawnTime: now,
		Owner:     owner,
	}
}
