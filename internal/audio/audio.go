// Package audio synthesizes the short cues played for shots, impacts and
// damage. Nothing is loaded from disk.
package audio

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"

	"chosenoffset.com/raymaze/internal/logger"
)

// Config controls the audio device.
type Config struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"` // linear, 0 mutes
}

// DefaultConfig returns audio on at 44.1kHz, half volume.
func DefaultConfig() Config {
	return Config{Enabled: true, SampleRate: 44100, Volume: 0.5}
}

// Cue names a sound effect.
type Cue int

const (
	CueShot Cue = iota
	CueEnemyShot
	CueExplosion
	CueHurt
)

func (c Cue) String() string {
	switch c {
	case CueShot:
		return "shot"
	case CueEnemyShot:
		return "enemy_shot"
	case CueExplosion:
		return "explosion"
	case CueHurt:
		return "hurt"
	}
	return fmt.Sprintf("cue(%d)", int(c))
}

// Player plays cues. The game depends on this rather than on the speaker.
type Player interface {
	Play(c Cue)
}

// Mixer feeds cues into a single beep mixer attached to the speaker.
type Mixer struct {
	mu          sync.Mutex
	cfg         Config
	rate        beep.SampleRate
	mixer       *beep.Mixer
	rng         *rand.Rand
	initialized bool
	log         *logrus.Entry
}

// NewMixer creates a mixer. Call Init before Play has any effect.
func NewMixer(cfg Config) *Mixer {
	return &Mixer{
		cfg:   cfg,
		rate:  beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
		rng:   rand.New(rand.NewSource(1)),
		log:   logger.WithComponent("audio"),
	}
}

// Init opens the speaker. A disabled config is not an error.
func (m *Mixer) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized || !m.cfg.Enabled {
		return nil
	}
	if err := speaker.Init(m.rate, m.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("open audio device: %w", err)
	}
	speaker.Play(m.mixer)
	m.initialized = true
	m.log.WithField("sample_rate", m.cfg.SampleRate).Info("audio ready")
	return nil
}

// Play queues c. It is a no-op until Init succeeds.
func (m *Mixer) Play(c Cue) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	s, err := m.streamer(c)
	if err != nil {
		m.log.WithError(err).WithField("cue", c).Debug("cue skipped")
		return
	}
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// Close silences everything and releases the device.
func (m *Mixer) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	m.initialized = false
}

func (m *Mixer) streamer(c Cue) (beep.Streamer, error) {
	return Streamer(c, m.rate, m.cfg.Volume, m.rng)
}

// Streamer builds the finite sound for c at the given rate and volume.
func Streamer(c Cue, rate beep.SampleRate, volume float64, rng *rand.Rand) (beep.Streamer, error) {
	var (
		src beep.Streamer
		dur time.Duration
		err error
	)
	switch c {
	case CueShot:
		dur = 70 * time.Millisecond
		src, err = generators.SineTone(rate, 880)
	case CueEnemyShot:
		dur = 110 * time.Millisecond
		src, err = generators.SineTone(rate, 330)
	case CueExplosion:
		dur = 300 * time.Millisecond
		src = noise(rng)
	case CueHurt:
		dur = 160 * time.Millisecond
		src, err = generators.SineTone(rate, 140)
	default:
		return nil, fmt.Errorf("unknown %v", c)
	}
	if err != nil {
		return nil, fmt.Errorf("%v tone: %w", c, err)
	}
	n := rate.N(dur)
	return withVolume(decay(beep.Take(n, src), n), volume), nil
}

func noise(rng *rand.Rand) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := rng.Float64()*2 - 1
			samples[i][0] = v
			samples[i][1] = v
		}
		return len(samples), true
	})
}

// decay fades s linearly to silence over total samples.
func decay(s beep.Streamer, total int) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := 0; i < n; i++ {
			g := 1 - float64(pos)/float64(total)
			if g < 0 {
				g = 0
			}
			samples[i][0] *= g
			samples[i][1] *= g
			pos++
		}
		return n, ok
	})
}

// math.Log2(0) is -Inf, so zero volume is expressed as Silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
