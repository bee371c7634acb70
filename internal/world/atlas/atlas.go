// Package atlas loads tile definitions: the named tile kinds a map is built
// from and their properties (walkability, display color, type).
package atlas

import (
	"encoding/json"
	"fmt"
	"os"
)

// TileDefinition defines a single kind of tile
type TileDefinition struct {
	Name       string                 `json:"name"`       // Semantic name (e.g., "grass", "deck_wall")
	Properties map[string]interface{} `json:"properties"` // Custom properties (walkable, color, type)
}

// AtlasConfig defines the JSON configuration for a tile atlas
type AtlasConfig struct {
	Name     string           `json:"name"`
	TileSize int              `json:"tile_size"` // Edge length of a tile in world units
	Tiles    []TileDefinition `json:"tiles"`
}

// Atlas represents a loaded tile atlas
type Atlas struct {
	Config      *AtlasConfig
	TilesByName map[string]*TileDefinition // Quick lookup by name
}

// LoadAtlas loads a tile atlas from a JSON configuration file
func LoadAtlas(configPath string) (*Atlas, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read atlas config %s: %w", configPath, err)
	}

	a, err := ParseAtlas(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse atlas config %s: %w", configPath, err)
	}
	return a, nil
}

// ParseAtlas builds an atlas from raw JSON
func ParseAtlas(data []byte) (*Atlas, error) {
	var config AtlasConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	return NewAtlas(&config)
}

// NewAtlas validates config and builds the name lookup
func NewAtlas(config *AtlasConfig) (*Atlas, error) {
	if config.TileSize <= 0 {
		return nil, fmt.Errorf("invalid tile size: %d", config.TileSize)
	}

	tilesByName := make(map[string]*TileDefinition)
	for i := range config.Tiles {
		tile := &config.Tiles[i]
		if tile.Name == "" {
			return nil, fmt.Errorf("tile %d has no name", i)
		}
		if _, dup := tilesByName[tile.Name]; dup {
			return nil, fmt.Errorf("duplicate tile name: %s", tile.Name)
		}
		tilesByName[tile.Name] = tile
	}

	return &Atlas{
		Config:      config,
		TilesByName: tilesByName,
	}, nil
}

// GetTile returns a tile definition by name
func (a *Atlas) GetTile(name string) (*TileDefinition, bool) {
	tile, ok := a.TilesByName[name]
	return tile, ok
}

// GetTileProperty retrieves a property from a tile definition
func (td *TileDefinition) GetTileProperty(key string) (interface{}, bool) {
	if td.Properties == nil {
		return nil, false
	}
	val, ok := td.Properties[key]
	return val, ok
}

// GetTilePropertyBool retrieves a boolean property
func (td *TileDefinition) GetTilePropertyBool(key string, defaultVal bool) bool {
	val, ok := td.GetTileProperty(key)
	if !ok {
		return defaultVal
	}
	if boolVal, ok := val.(bool); ok {
		return boolVal
	}
	return defaultVal
}

// GetTilePropertyString retrieves a string property
func (td *TileDefinition) GetTilePropertyString(key string, defaultVal string) string {
	val, ok := td.GetTileProperty(key)
	if !ok {
		return defaultVal
	}
	if strVal, ok := val.(string); ok {
		return strVal
	}
	return defaultVal
}

// GetTilePropertyInt retrieves an integer property
func (td *TileDefinition) GetTilePropertyInt(key string, defaultVal int) int {
	val, ok := td.GetTileProperty(key)
	if !ok {
		return defaultVal
	}
	// JSON numbers are float64
	if floatVal, ok := val.(float64); ok {
		return int(floatVal)
	}
	return defaultVal
}

// Walkable reports whether movers may enter the tile. Tiles default to
// walkable.
func (td *TileDefinition) Walkable() bool {
	return td.GetTilePropertyBool("walkable", true)
}

// Color returns the display color name (an x/image colornames key)
func (td *TileDefinition) Color() string {
	return td.GetTilePropertyString("color", "")
}

// Glyph returns the rune used by the terminal renderer
func (td *TileDefinition) Glyph() rune {
	s := td.GetTilePropertyString("glyph", "")
	for _, r := range s {
		return r
	}
	if td.Walkable() {
		return '.'
	}
	return '#'
}
