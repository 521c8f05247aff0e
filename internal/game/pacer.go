package game

import "fmt"

// PacingConfig sets the tick rate per activity tier.
type PacingConfig struct {
	ActiveTPS     int     `yaml:"active_tps"`
	IdleTPS       int     `yaml:"idle_tps"`
	DeepIdleTPS   int     `yaml:"deep_idle_tps"`
	IdleAfter     float64 `yaml:"idle_after"`      // seconds without activity
	DeepIdleAfter float64 `yaml:"deep_idle_after"` // seconds without activity
}

// DefaultPacingConfig returns 240/30/10 TPS with 2s and 5s thresholds.
func DefaultPacingConfig() PacingConfig {
	return PacingConfig{
		ActiveTPS:     240,
		IdleTPS:       30,
		DeepIdleTPS:   10,
		IdleAfter:     2,
		DeepIdleAfter: 5,
	}
}

// Tier is an activity level.
type Tier int

const (
	TierActive Tier = iota
	TierIdle
	TierDeepIdle
)

func (t Tier) String() string {
	switch t {
	case TierActive:
		return "active"
	case TierIdle:
		return "idle"
	case TierDeepIdle:
		return "deep-idle"
	}
	return fmt.Sprintf("tier(%d)", int(t))
}

// Pacer lowers the target tick rate the longer nothing happens. It only
// schedules; simulation dt always comes from the real clock.
type Pacer struct {
	cfg          PacingConfig
	lastActivity float64
	tier         Tier
}

// NewPacer starts in the active tier as if activity just happened at now.
func NewPacer(cfg PacingConfig, now float64) *Pacer {
	return &Pacer{cfg: cfg, lastActivity: now}
}

// Observe records this tick's activity signal and returns the target TPS,
// and whether it differs from the previous target.
func (p *Pacer) Observe(active bool, now float64) (tps int, changed bool) {
	if active {
		p.lastActivity = now
	}
	tier := p.tierFor(p.Idle(now))
	changed = tier != p.tier
	p.tier = tier
	return p.Target(), changed
}

// Idle returns the seconds since the last activity.
func (p *Pacer) Idle(now float64) float64 {
	return now - p.lastActivity
}

// Tier returns the current tier.
func (p *Pacer) Tier() Tier {
	return p.tier
}

// Target returns the TPS of the current tier.
func (p *Pacer) Target() int {
	switch p.tier {
	case TierDeepIdle:
		return p.cfg.DeepIdleTPS
	case TierIdle:
		return p.cfg.IdleTPS
	default:
		return p.cfg.ActiveTPS
	}
}

func (p *Pacer) tierFor(idle float64) Tier {
	switch {
	case idle >= p.cfg.DeepIdleAfter:
		return TierDeepIdle
	case idle >= p.cfg.IdleAfter:
		return TierIdle
	default:
		return TierActive
	}
}

// fpsMeter counts ticks over one-second windows.
type fpsMeter struct {
	windowStart float64
	frames      int
	fps         int
}

// tick counts one frame and reports whether a window just closed.
func (m *fpsMeter) tick(now float64) bool {
	m.frames++
	elapsed := now - m.windowStart
	if elapsed < 1 {
		return false
	}
	m.fps = int(float64(m.frames)/elapsed + 0.5)
	m.frames = 0
	m.windowStart = now
	return true
}
