package sim

import (
	"math"
	"testing"

	"github.com/google/uuid"
)

func newID(t *testing.T) uuid.UUID {
	t.Helper()
	id, err := uuid.NewRandom()
	if err != nil {
		t.Fatalf("uuid: %v", err)
	}
	return id
}

func TestVecNormalize(t *testing.T) {
	if got := (Vec{3, 4}).Normalize(); math.Abs(got.Len()-1) > 1e-12 {
		t.Errorf("len = %v, want 1", got.Len())
	}
	if got := (Vec{}).Normalize(); !got.IsZero() {
		t.Errorf("zero vector normalized to %+v", got)
	}
}

func TestExplosionProgress(t *testing.T) {
	e := Explosion{Start: 1}
	if p := e.Progress(1.225, 0.45); math.Abs(p-0.5) > 1e-9 {
		t.Errorf("Progress = %v, want 0.5", p)
	}
	if p := e.Progress(5, 0); p != 1 {
		t.Errorf("Progress with zero duration = %v, want 1", p)
	}
}

func TestNewProjectileOffset(t *testing.T) {
	p := NewProjectile(Vec{1, 1}, math.Pi/2, 0.35, 10, 3, OwnerEnemy)
	if math.Abs(p.Pos.X-1) > 1e-9 || math.Abs(p.Pos.Y-1.35) > 1e-9 {
		t.Errorf("Pos = %+v, want (1, 1.35)", p.Pos)
	}
	if p.Owner.String() != "enemy" || p.SpawnTime != 3 {
		t.Errorf("got %+v", p)
	}
}

func TestRotateKeepsAngleBelowFullTurn(t *testing.T) {
	for _, delta := range []float64{-1e-17, -1e-300, -2 * math.Pi, 2 * math.Pi, -7, 13} {
		var p Player
		p.Rotate(delta)
		if p.Angle < 0 || p.Angle >= 2*math.Pi {
			t.Errorf("Rotate(%g): Angle = %.17g, outside [0, 2π)", delta, p.Angle)
		}
	}
}
