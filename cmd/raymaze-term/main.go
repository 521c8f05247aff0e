package main

import (
	"flag"
	"fmt"
	"os"

	"chosenoffset.com/raymaze/internal/app"
	"chosenoffset.com/raymaze/internal/logger"
	"chosenoffset.com/raymaze/internal/render/terminal"
)

func main() {
	var flags app.Flags
	flags.Register(flag.CommandLine, 600, 400)
	logFile := flag.String("logfile", "raymaze-term.log", "log destination; the terminal is busy drawing")
	flag.Parse()

	cfg, err := flags.Config()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.Log.File != "" {
		*logFile = cfg.Log.File
	}
	restore, err := logger.ToFile(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: open log file: %v\n", err)
		os.Exit(1)
	}

	engine, err := terminal.NewEngine()
	if err != nil {
		restore()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	err = app.Run(cfg, engine, engine.Input())
	restore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
