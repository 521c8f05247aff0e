// Package config loads the YAML settings file. Every section starts from
// its package defaults, so a missing file or a partial one is fine.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/raymaze/internal/assets"
	"chosenoffset.com/raymaze/internal/audio"
	"chosenoffset.com/raymaze/internal/game"
	"chosenoffset.com/raymaze/internal/render/raycast"
	"chosenoffset.com/raymaze/internal/sim"
	"chosenoffset.com/raymaze/internal/ui/menu"
	"chosenoffset.com/raymaze/internal/world/gen"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Display is the window setup.
type Display struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Log sets the logger level.
type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // empty logs to stderr
}

// Config holds all settings.
type Config struct {
	Display    Display           `yaml:"display"`
	World      gen.Config        `yaml:"world"`
	Render     raycast.Config    `yaml:"render"`
	Simulation sim.Config        `yaml:"simulation"`
	Pacing     game.PacingConfig `yaml:"pacing"`
	Input      menu.Config       `yaml:"input"`
	Assets     assets.Config     `yaml:"assets"`
	Audio      audio.Config      `yaml:"audio"`
	Log        Log               `yaml:"log"`
}

// Default returns the complete default configuration.
func Default() *Config {
	return &Config{
		Display:    Display{Width: 1200, Height: 800, Title: "Raymaze"},
		World:      gen.DefaultConfig(),
		Render:     raycast.DefaultConfig(),
		Simulation: sim.DefaultConfig(),
		Pacing:     game.DefaultPacingConfig(),
		Input:      menu.DefaultConfig(),
		Assets:     assets.DefaultConfig(),
		Audio:      audio.DefaultConfig(),
		Log:        Log{Level: "info"},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks the values the game cannot run without.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Display.Width > 0 && c.Display.Height > 0, "display size %dx%d", c.Display.Width, c.Display.Height)
	check(c.World.Width >= 16 && c.World.Height >= 16, "world size %dx%d is below 16x16", c.World.Width, c.World.Height)
	check(c.Render.FOVDegrees > 0 && c.Render.FOVDegrees < 180, "fov %v", c.Render.FOVDegrees)
	check(c.Render.FloorPixelStep > 0, "floor pixel step %d", c.Render.FloorPixelStep)
	check(c.Render.MinimapSize > 0 && c.Render.MinimapTextureScale > 0, "minimap size %d scale %d",
		c.Render.MinimapSize, c.Render.MinimapTextureScale)
	check(c.Render.ZoomMin > 0 && c.Render.ZoomMin <= c.Render.ZoomMax, "zoom range [%v, %v]", c.Render.ZoomMin, c.Render.ZoomMax)
	check(c.Render.ZoomDefault >= c.Render.ZoomMin && c.Render.ZoomDefault <= c.Render.ZoomMax,
		"default zoom %v outside [%v, %v]", c.Render.ZoomDefault, c.Render.ZoomMin, c.Render.ZoomMax)
	check(c.Simulation.PlayerMaxHealth > 0, "player max health %d", c.Simulation.PlayerMaxHealth)
	check(c.Simulation.ProjectileStepDistance > 0, "projectile step distance %v", c.Simulation.ProjectileStepDistance)
	check(c.Simulation.EnemySpawnAttempts >= 0 && c.Simulation.EnemyMaxCount >= 0, "negative spawner limits")
	check(c.Pacing.ActiveTPS > 0 && c.Pacing.IdleTPS > 0 && c.Pacing.DeepIdleTPS > 0, "tick rates %d/%d/%d",
		c.Pacing.ActiveTPS, c.Pacing.IdleTPS, c.Pacing.DeepIdleTPS)
	check(c.Pacing.IdleAfter <= c.Pacing.DeepIdleAfter, "idle after %vs exceeds deep idle after %vs",
		c.Pacing.IdleAfter, c.Pacing.DeepIdleAfter)
	check(c.Input.SensitivityMin <= c.Input.SensitivityMax, "sensitivity range [%v, %v]",
		c.Input.SensitivityMin, c.Input.SensitivityMax)
	check(c.Input.DefaultSlider >= 0 && c.Input.DefaultSlider <= 1, "default slider %v outside [0, 1]", c.Input.DefaultSlider)
	check(!c.Audio.Enabled || c.Audio.SampleRate > 0, "audio sample rate %d", c.Audio.SampleRate)

	return errors.Join(errs...)
}
