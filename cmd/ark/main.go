package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"chosenoffset.com/ark/internal/game"
	ebitenrender "chosenoffset.com/ark/internal/render/ebiten"
)

func main() {
	dataDir := flag.String("data", "data", "data directory holding worlds and config")
	configPath := flag.String("config", "", "simulation config (default <data>/simulation.json)")
	flag.Parse()

	if err := run(*dataDir, *configPath); err != nil {
		log.Fatal(err)
	}
}

// run returns instead of exiting so the audio device is always released
func run(dataDir, configPath string) error {
	screenWidth := 320
	screenHeight := 240

	// Initialize the renderer backend (ebiten)
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	log.Println("Loading worlds...")
	g, closeAudio, err := game.Bootstrap(context.Background(), game.Setup{
		DataDir:      dataDir,
		ConfigPath:   configPath,
		Input:        inputMgr,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	})
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}
	defer closeAudio()

	// Set up the window
	engine.SetWindowSize(screenWidth*3, screenHeight*3)
	engine.SetWindowTitle("Ark")
	engine.SetWindowResizable(true)

	log.Println("Starting game...")
	return engine.RunGame(g)
}
