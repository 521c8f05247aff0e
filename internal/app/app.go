// Package app wires configuration, world, assets, audio and a presentation
// backend into a running game. The cmd packages are thin wrappers around it.
package app

import (
	"flag"
	"fmt"

	"chosenoffset.com/raymaze/internal/assets"
	"chosenoffset.com/raymaze/internal/audio"
	"chosenoffset.com/raymaze/internal/config"
	"chosenoffset.com/raymaze/internal/game"
	"chosenoffset.com/raymaze/internal/logger"
	"chosenoffset.com/raymaze/internal/render"
	"chosenoffset.com/raymaze/internal/world/gen"
)

// Flags are the command-line overrides shared by every entry point.
type Flags struct {
	ConfigPath string
	Seed       int64
	AssetsDir  string
	LogLevel   string
	Width      int
	Height     int
	Mute       bool
}

// Register binds the flags to fs. defaultWidth and defaultHeight of zero
// defer to the config file.
func (f *Flags) Register(fs *flag.FlagSet, defaultWidth, defaultHeight int) {
	fs.StringVar(&f.ConfigPath, "config", "raymaze.yaml", "path to the YAML settings file")
	fs.Int64Var(&f.Seed, "seed", 0, "world seed (0 keeps the configured seed)")
	fs.StringVar(&f.AssetsDir, "assets", "", "asset directory (overrides config)")
	fs.StringVar(&f.LogLevel, "log", "", "log level (overrides config)")
	fs.IntVar(&f.Width, "width", defaultWidth, "logical screen width (0 keeps config)")
	fs.IntVar(&f.Height, "height", defaultHeight, "logical screen height (0 keeps config)")
	fs.BoolVar(&f.Mute, "mute", false, "disable audio")
}

// Config loads the settings file and applies the overrides.
func (f *Flags) Config() (*config.Config, error) {
	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		return nil, err
	}
	if f.Seed != 0 {
		cfg.World.Seed = f.Seed
	}
	if f.AssetsDir != "" {
		cfg.Assets.Dir = f.AssetsDir
	}
	if f.LogLevel != "" {
		cfg.Log.Level = f.LogLevel
	}
	if f.Width > 0 {
		cfg.Display.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Display.Height = f.Height
	}
	if f.Mute {
		cfg.Audio.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}

// Run builds the game described by cfg and blocks until engine returns.
// A zero world seed is resolved in cfg first, so the world and the
// simulation share one seed.
func Run(cfg *config.Config, engine render.Engine, input render.InputManager) error {
	logger.Init(cfg.Log.Level)
	log := logger.WithComponent("app")

	cfg.World.Seed = gen.ResolveSeed(cfg.World.Seed)

	model := game.BuildWorld(cfg.World)
	art := assets.Load(cfg.Assets)

	var sound audio.Player
	if cfg.Audio.Enabled {
		mixer := audio.NewMixer(cfg.Audio)
		if err := mixer.Init(); err != nil {
			log.WithError(err).Warn("audio unavailable, continuing without sound")
		} else {
			defer mixer.Close()
			sound = mixer
		}
	}

	g := game.New(model, art, Options(cfg, engine, input, sound))

	engine.SetWindowSize(cfg.Display.Width, cfg.Display.Height)
	engine.SetWindowTitle(cfg.Display.Title)
	engine.SetWindowResizable(true)

	log.WithField("tps", cfg.Pacing.ActiveTPS).Info("starting game")
	return engine.RunGame(g)
}

// Options maps cfg onto the game's options.
func Options(cfg *config.Config, engine game.TPSSetter, input render.InputManager, sound audio.Player) game.Options {
	return game.Options{
		Width:  cfg.Display.Width,
		Height: cfg.Display.Height,
		Seed:   cfg.World.Seed,
		Render: cfg.Render,
		Sim:    cfg.Simulation,
		Pacing: cfg.Pacing,
		Menu:   cfg.Input,
		Input:  input,
		Engine: engine,
		Audio:  sound,
	}
}
