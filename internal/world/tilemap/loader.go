package tilemap

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"chosenoffset.com/ark/internal/world/atlas"
)

// SpawnPoint defines a player or entity spawn location in tile units
type SpawnPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TreeSpawn places a tree on a tile. HP 0 uses the loader default.
type TreeSpawn struct {
	X  int `json:"x"`
	Y  int `json:"y"`
	HP int `json:"hp,omitempty"`
}

// PickupSpawn places an inventory item on a tile
type PickupSpawn struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Item string `json:"item"`
}

// MapData represents the loaded map configuration
type MapData struct {
	Name        string        `json:"name"`
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	OriginX     float64       `json:"origin_x"` // World position of the top-left corner
	OriginY     float64       `json:"origin_y"`
	AtlasPath   string        `json:"atlas"`
	PlayerSpawn *SpawnPoint   `json:"player_spawn,omitempty"`
	Trees       []TreeSpawn   `json:"trees"`
	Pickups     []PickupSpawn `json:"pickups,omitempty"`
	Tiles       [][]string    `json:"tiles"` // 2D array of tile names [y][x]
}

// LoadMap loads a map from a JSON file and its associated atlas. A relative
// atlas path is resolved against the map file's directory.
func LoadMap(mapPath string, treeHP int) (*TileMap, error) {
	data, err := os.ReadFile(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file %s: %w", mapPath, err)
	}

	var mapData MapData
	if err := json.Unmarshal(data, &mapData); err != nil {
		return nil, fmt.Errorf("failed to parse map file %s: %w", mapPath, err)
	}

	if err := validateMapData(&mapData); err != nil {
		return nil, fmt.Errorf("invalid map data in %s: %w", mapPath, err)
	}

	atlasPath := mapData.AtlasPath
	if !filepath.IsAbs(atlasPath) {
		atlasPath = filepath.Join(filepath.Dir(mapPath), atlasPath)
	}
	atlasObj, err := atlas.LoadAtlas(atlasPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load atlas %s: %w", mapData.AtlasPath, err)
	}

	m, err := New(&mapData, atlasObj, treeHP)
	if err != nil {
		return nil, fmt.Errorf("failed to build map %s: %w", mapPath, err)
	}
	return m, nil
}

// validateMapData checks if the map data is valid
func validateMapData(data *MapData) error {
	if data.Width <= 0 || data.Height <= 0 {
		return fmt.Errorf("invalid map dimensions: %dx%d", data.Width, data.Height)
	}

	if data.AtlasPath == "" {
		return fmt.Errorf("atlas path is required")
	}

	// Validate tiles array dimensions
	if len(data.Tiles) != data.Height {
		return fmt.Errorf("tiles array height mismatch: expected %d, got %d", data.Height, len(data.Tiles))
	}

	for y, row := range data.Tiles {
		if len(row) != data.Width {
			return fmt.Errorf("tiles array width mismatch at row %d: expected %d, got %d", y, data.Width, len(row))
		}
	}

	for i, tree := range data.Trees {
		if tree.X < 0 || tree.X >= data.Width || tree.Y < 0 || tree.Y >= data.Height {
			return fmt.Errorf("tree %d out of bounds: (%d, %d)", i, tree.X, tree.Y)
		}
	}

	for i, p := range data.Pickups {
		if p.Item == "" {
			return fmt.Errorf("pickup %d has no item", i)
		}
		if p.X < 0 || p.X >= data.Width || p.Y < 0 || p.Y >= data.Height {
			return fmt.Errorf("pickup %d out of bounds: (%d, %d)", i, p.X, p.Y)
		}
	}

	return nil
}
