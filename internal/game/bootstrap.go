package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"chosenoffset.com/ark/internal/audio"
	"chosenoffset.com/ark/internal/gamescanner"
	"chosenoffset.com/ark/internal/inventory"
	"chosenoffset.com/ark/internal/render"
	"chosenoffset.com/ark/internal/simulation"
	"chosenoffset.com/ark/internal/world"
)

// Setup describes how a front end wants the game built
type Setup struct {
	DataDir      string // Root of worlds, items and simulation config
	ConfigPath   string // Simulation config; empty uses DataDir/simulation.json
	Input        render.InputManager
	ScreenWidth  int
	ScreenHeight int
	Glyphs       bool
}

// Bootstrap loads the config, both worlds and the item library, opens the
// audio device and builds the game. The returned close function releases
// the audio device.
func Bootstrap(ctx context.Context, s Setup) (*Game, func(), error) {
	configPath := s.ConfigPath
	if configPath == "" {
		configPath = filepath.Join(s.DataDir, "simulation.json")
	}
	cfg, err := simulation.LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}

	seed := cfg.World.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("Using world seed %d", seed)

	overworldPath, err := resolveManifest(s.DataDir, cfg.World.Overworld)
	if err != nil {
		return nil, nil, err
	}

	// each world scatters from its own source so load order does not matter
	var overworld, ark *world.World
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		overworld, err = world.Load(gctx, overworldPath, world.LoadOptions{
			TreeHP:      cfg.Axe.TreeHP,
			TreeDensity: cfg.World.TreeDensity,
			Rand:        rand.New(rand.NewSource(seed)),
		})
		return err
	})
	if cfg.World.Ark != "" {
		arkPath := filepath.Join(s.DataDir, cfg.World.Ark)
		if _, err := os.Stat(arkPath); err == nil {
			g.Go(func() error {
				var err error
				ark, err = world.Load(gctx, arkPath, world.LoadOptions{TreeHP: cfg.Axe.TreeHP})
				return err
			})
		} else {
			log.Printf("No ark world at %s, Tab is disabled", arkPath)
		}
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	inv := inventory.New()
	itemsPath := filepath.Join(s.DataDir, "items.json")
	if lib, err := inventory.LoadItemLibrary(itemsPath); err == nil {
		lib.ApplyToInventory(inv)
	} else {
		log.Printf("Using unlimited item stacks: %v", err)
	}

	var sound SoundPlayer
	closeAudio := func() {}
	if cfg.Audio.Enabled {
		player := audio.NewPlayer(audio.Config{
			SampleRate: cfg.Audio.SampleRate,
			Volume:     cfg.Audio.Volume,
		}, rand.New(rand.NewSource(seed+1)))
		if err := player.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			log.Printf("Audio initialization failed: %v", err)
		} else {
			sound = player
			closeAudio = player.Close
		}
	}

	game, err := New(Options{
		Config:       cfg,
		Overworld:    overworld,
		Ark:          ark,
		Input:        s.Input,
		Sound:        sound,
		Inventory:    inv,
		Rand:         rand.New(rand.NewSource(seed + 2)),
		ScreenWidth:  s.ScreenWidth,
		ScreenHeight: s.ScreenHeight,
		Glyphs:       s.Glyphs,
	})
	if err != nil {
		closeAudio()
		return nil, nil, err
	}
	return game, closeAudio, nil
}

// resolveManifest returns the configured manifest path, falling back on
// the first manifest found in the data directory
func resolveManifest(dataDir, rel string) (string, error) {
	path := filepath.Join(dataDir, rel)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("failed to stat world manifest: %w", err)
	}

	worlds, err := gamescanner.ScanDataDirectory(dataDir)
	if err != nil {
		return "", err
	}
	found, ok := gamescanner.FirstManifest(worlds)
	if !ok {
		return "", fmt.Errorf("no world manifest in %s", dataDir)
	}
	log.Printf("World manifest %s not found, using %s", rel, found)
	return filepath.Join(dataDir, found), nil
}
