package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"chosenoffset.com/ark/internal/game"
	"chosenoffset.com/ark/internal/render/terminal"
)

func main() {
	dataDir := flag.String("data", "data", "data directory holding worlds and config")
	configPath := flag.String("config", "", "simulation config (default <data>/simulation.json)")
	logPath := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()

	// the terminal owns stdout once the screen is up
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	engine, err := terminal.NewEngine()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	g, closeAudio, err := game.Bootstrap(context.Background(), game.Setup{
		DataDir:    *dataDir,
		ConfigPath: *configPath,
		Input:      engine.Input(),
		Glyphs:     true,
	})
	if err != nil {
		// RunGame never ran, so the screen is still ours to release
		engine.Close()
		fmt.Fprintf(os.Stderr, "Failed to start game: %v\n", err)
		os.Exit(1)
	}
	defer closeAudio()

	engine.SetWindowTitle("Ark  WASD move  Space chop  E lead animal  Tab ark  Esc quit")
	if err := engine.RunGame(g); err != nil {
		fmt.Fprintf(os.Stderr, "Game error: %v\n", err)
	}
}
