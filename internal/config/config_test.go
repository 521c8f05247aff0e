package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Display.Width != 1200 || cfg.World.Width != 516 || cfg.Pacing.ActiveTPS != 240 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadOverlaysPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raymaze.yaml")
	data := `
world:
  width: 64
  height: 48
  seed: 7
pacing:
  idle_tps: 20
audio:
  enabled: false
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.World.Width != 64 || cfg.World.Height != 48 || cfg.World.Seed != 7 {
		t.Errorf("world = %+v", cfg.World)
	}
	if cfg.Pacing.IdleTPS != 20 || cfg.Pacing.ActiveTPS != 240 {
		t.Errorf("pacing = %+v, want idle 20 and default active", cfg.Pacing)
	}
	if cfg.Audio.Enabled || cfg.Log.Level != "debug" {
		t.Errorf("audio = %+v log = %+v", cfg.Audio, cfg.Log)
	}
	// Untouched sections keep their defaults.
	if cfg.Render.FOVDegrees != 70 || cfg.Simulation.ProjectileStepDistance != 0.05 {
		t.Errorf("render/simulation defaults lost: %+v %+v", cfg.Render, cfg.Simulation)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("world: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero display", func(c *Config) { c.Display.Width = 0 }},
		{"tiny world", func(c *Config) { c.World.Width = 8 }},
		{"fov", func(c *Config) { c.Render.FOVDegrees = 180 }},
		{"zoom range", func(c *Config) { c.Render.ZoomMin = 200 }},
		{"default zoom", func(c *Config) { c.Render.ZoomDefault = 5 }},
		{"step distance", func(c *Config) { c.Simulation.ProjectileStepDistance = 0 }},
		{"tps", func(c *Config) { c.Pacing.DeepIdleTPS = 0 }},
		{"idle order", func(c *Config) { c.Pacing.IdleAfter = 10 }},
		{"slider", func(c *Config) { c.Input.DefaultSlider = 1.5 }},
		{"sample rate", func(c *Config) { c.Audio.SampleRate = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := Default()
	cfg.World.Seed = 99
	cfg.Assets.Enemy = []string{"enemy/boss.png"}
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.World.Seed != 99 || len(got.Assets.Enemy) != 1 || got.Assets.Enemy[0] != "enemy/boss.png" {
		t.Errorf("reloaded = %+v %+v", got.World, got.Assets)
	}
}
