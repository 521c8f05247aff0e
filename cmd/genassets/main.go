package main

import (
	"flag"
	"fmt"
	"os"

	"chosenoffset.com/raymaze/internal/assets"
	"chosenoffset.com/raymaze/internal/config"
)

func main() {
	configPath := flag.String("config", "raymaze.yaml", "settings file naming the asset files")
	dir := flag.String("dir", "", "output directory (overrides config)")
	flag.Parse()

	fmt.Println("Raymaze Placeholder Asset Generator")
	fmt.Println("===================================")
	fmt.Println()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *dir != "" {
		cfg.Assets.Dir = *dir
	}

	written, err := assets.WriteDefaults(cfg.Assets)
	for _, path := range written {
		fmt.Printf("  wrote %s\n", path)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Done! Placeholder assets are ready to use.")
}
