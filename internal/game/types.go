package game

import "chosenoffset.com/raymaze/internal/ui/menu"

// Controls is one tick of player intent, decoupled from any input device.
type Controls struct {
	Forward, Back   bool
	Left, Right     bool // strafe
	TurnLeft        bool
	TurnRight       bool
	Sprint          bool
	Shoot, Dash     bool // edge-triggered
	ZoomIn, ZoomOut bool
	ToggleMenu      bool
	AnyKey          bool    // some key went down this tick
	MouseDX         float64 // horizontal cursor motion in pixels
	Pointer         menu.Pointer
}

// TickResult reports what one tick did.
type TickResult struct {
	Active     bool
	TPS        int
	TPSChanged bool
	Step       StepSummary
}

// StepSummary counts the simulation events of a tick.
type StepSummary struct {
	Moved      bool
	Shot       bool
	Dashed     bool
	EnemyShots int
	Explosions int
	PlayerHit  bool
	Respawned  bool
}
