package world

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"chosenoffset.com/ark/internal/world/tilemap"
	"golang.org/x/sync/errgroup"
)

// Manifest lists the tile maps that make up a world
type Manifest struct {
	Name string   `json:"name"`
	Kind Kind     `json:"kind"`
	Maps []string `json:"maps"` // Map files, relative to the manifest; the first holds the spawn
}

// LoadOptions controls how maps are populated
type LoadOptions struct {
	TreeHP      int        // HP for trees without an explicit value
	TreeDensity float64    // Chance per free walkable tile to grow a tree
	Rand        *rand.Rand // Scatter source; nil disables scattering
}

// LoadManifest reads a world manifest
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read world manifest %s: %w", path, err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse world manifest %s: %w", path, err)
	}

	if len(m.Maps) == 0 {
		return nil, fmt.Errorf("invalid world manifest %s: %w", path, ErrNoMaps)
	}
	if m.Kind == "" {
		m.Kind = KindOverworld
	}
	if m.Kind != KindOverworld && m.Kind != KindArk {
		return nil, fmt.Errorf("invalid world manifest %s: unknown kind %q", path, m.Kind)
	}
	return &m, nil
}

// Load reads a manifest and loads its maps concurrently. Every map is fully
// loaded before the world is returned.
func Load(ctx context.Context, manifestPath string, opts LoadOptions) (*World, error) {
	manifest, err := LoadManifest(manifestPath)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(manifestPath)
	maps := make([]*tilemap.TileMap, len(manifest.Maps))

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range manifest.Maps {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := name
			if !filepath.IsAbs(path) {
				path = filepath.Join(dir, path)
			}
			m, err := tilemap.LoadMap(path, opts.TreeHP)
			if err != nil {
				return err
			}
			maps[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load world %s: %w", manifest.Name, err)
	}

	// scatter after loading so the sequence does not depend on goroutine order
	if opts.Rand != nil && opts.TreeDensity > 0 {
		for _, m := range maps {
			m.ScatterTrees(opts.Rand, opts.TreeDensity, opts.TreeHP)
		}
	}

	return New(manifest.Name, manifest.Kind, maps...)
}
