package main

import (
	"flag"
	"os"

	"chosenoffset.com/raymaze/internal/app"
	"chosenoffset.com/raymaze/internal/logger"
	ebitenrender "chosenoffset.com/raymaze/internal/render/ebiten"
)

func main() {
	os.Exit(run())
}

func run() int {
	var flags app.Flags
	flags.Register(flag.CommandLine, 0, 0)
	flag.Parse()

	cfg, err := flags.Config()
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to load config")
	}
	if cfg.Log.File != "" {
		restore, err := logger.ToFile(cfg.Log.File)
		if err != nil {
			logger.Log.WithError(err).Fatal("failed to open log file")
		}
		defer restore()
	}

	// Initialize the presentation backend (ebiten)
	engine := ebitenrender.NewEngine()
	input := ebitenrender.NewInputManager()

	if err := app.Run(cfg, engine, input); err != nil {
		logger.Log.WithError(err).Error("game exited with error")
		return 1
	}
	return 0
}
