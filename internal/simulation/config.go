// Package simulation provides configuration for the game simulation rules:
// collision thresholds, movement speeds, axe timings and world population.
// These rules are loaded from data files so they can be tuned without a rebuild.
package simulation

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"chosenoffset.com/ark/internal/axe"
	"chosenoffset.com/ark/internal/collision"
)

// Config holds all simulation rules for a game
type Config struct {
	// Movement rules
	Movement MovementConfig `json:"movement"`

	// Axe and tree rules
	Axe AxeConfig `json:"axe"`

	// World population
	World WorldConfig `json:"world"`

	// Sound
	Audio AudioConfig `json:"audio"`
}

// MovementConfig defines movement mechanics
type MovementConfig struct {
	Collision    collision.Tuning `json:"collision"`     // Resolver and detector thresholds
	PlayerSpeed  float64          `json:"player_speed"`  // World units per second
	PlayerWidth  float64          `json:"player_width"`  // Collider width
	PlayerHeight float64          `json:"player_height"` // Collider height
	AnimalSpeed  float64          `json:"animal_speed"`  // World units per second while wandering
	AnimalSize   float64          `json:"animal_size"`   // Collider edge length
}

// AxeConfig defines chopping mechanics
type AxeConfig struct {
	ExtendSeconds    float64 `json:"extend_seconds"`     // Time until the blade is fully extended
	Reach            float64 `json:"reach"`              // Distance from the player center to the blade center
	BladeSize        float64 `json:"blade_size"`         // Edge length of the blade box
	TreeHP           int     `json:"tree_hp"`            // Hits needed to fell a tree
	ShakeSeconds     float64 `json:"shake_seconds"`      // Shake duration after a non-fatal hit
	DustCloudSeconds float64 `json:"dust_cloud_seconds"` // Lifetime of the dust left by a felled tree
}

// WorldConfig defines how the worlds are populated
type WorldConfig struct {
	Overworld   string  `json:"overworld"`    // Overworld manifest, relative to the data directory
	Ark         string  `json:"ark"`          // Ark interior manifest
	TreeDensity float64 `json:"tree_density"` // Chance per free walkable tile to grow a tree
	Animals     int     `json:"animals"`      // Wandering animals spawned in the overworld
	Seed        int64   `json:"seed"`         // Random seed; 0 picks one from the clock
}

// AudioConfig defines sound output
type AudioConfig struct {
	Enabled    bool    `json:"enabled"`
	SampleRate int     `json:"sample_rate"`
	Volume     float64 `json:"volume"` // Gain in [0, 1]
}

// DefaultConfig returns the shipped rules
func DefaultConfig() *Config {
	return &Config{
		Movement: MovementConfig{
			Collision:    collision.DefaultTuning(),
			PlayerSpeed:  96,
			PlayerWidth:  12,
			PlayerHeight: 12,
			AnimalSpeed:  40,
			AnimalSize:   10,
		},
		Axe: AxeConfig{
			ExtendSeconds:    0.15,
			Reach:            12,
			BladeSize:        10,
			TreeHP:           3,
			ShakeSeconds:     axe.DefaultConfig().ShakeSeconds,
			DustCloudSeconds: axe.DefaultConfig().DustCloudSeconds,
		},
		World: WorldConfig{
			Overworld:   "overworld/overworld.world.json",
			Ark:         "ark/ark.world.json",
			TreeDensity: 0.08,
			Animals:     6,
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0.5,
		},
	}
}

// LoadConfig loads simulation config from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read simulation config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse simulation config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}

	return config, nil
}

// Validate clamps numeric rules into safe bounds and rejects settings that
// cannot be repaired.
func (c *Config) Validate() error {
	if c.World.Overworld == "" {
		return fmt.Errorf("world.overworld manifest is required")
	}

	m := &c.Movement
	m.Collision.CornerInset = clampFloat(m.Collision.CornerInset, 0, 0.5)
	m.Collision.PerpendicularTolerance = clampFloat(m.Collision.PerpendicularTolerance, 0, 1)
	m.Collision.ObstacleMargin = clampFloat(m.Collision.ObstacleMargin, 0, 16)
	m.Collision.MinStep = clampFloat(m.Collision.MinStep, 0.01, 8)
	m.PlayerSpeed = clampFloat(m.PlayerSpeed, 1, 1000)
	m.PlayerWidth = clampFloat(m.PlayerWidth, 1, 256)
	m.PlayerHeight = clampFloat(m.PlayerHeight, 1, 256)
	m.AnimalSpeed = clampFloat(m.AnimalSpeed, 0, 1000)
	m.AnimalSize = clampFloat(m.AnimalSize, 1, 256)

	a := &c.Axe
	a.ExtendSeconds = clampFloat(a.ExtendSeconds, 0, 5)
	a.Reach = clampFloat(a.Reach, 0, 128)
	a.BladeSize = clampFloat(a.BladeSize, 1, 128)
	a.TreeHP = clampInt(a.TreeHP, 1, 100)
	a.ShakeSeconds = clampFloat(a.ShakeSeconds, 0, 10)
	a.DustCloudSeconds = clampFloat(a.DustCloudSeconds, 0, 30)

	c.World.TreeDensity = clampFloat(c.World.TreeDensity, 0, 0.6)
	c.World.Animals = clampInt(c.World.Animals, 0, 64)

	c.Audio.SampleRate = clampInt(c.Audio.SampleRate, 8000, 192000)
	c.Audio.Volume = clampFloat(c.Audio.Volume, 0, 1)

	return nil
}

// AxeHandlerConfig returns the effect durations for the axe handler
func (c *Config) AxeHandlerConfig() axe.Config {
	return axe.Config{
		ShakeSeconds:     c.Axe.ShakeSeconds,
		DustCloudSeconds: c.Axe.DustCloudSeconds,
	}
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

func clampFloat(v, minV, maxV float64) float64 {
	if math.IsNaN(v) {
		return minV
	}
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
