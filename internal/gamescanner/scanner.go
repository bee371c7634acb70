package gamescanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ManifestSuffix marks world manifest files
const ManifestSuffix = ".world.json"

// WorldEntry represents a directory of the data directory holding worlds
type WorldEntry struct {
	Name      string   // Display name (directory name)
	Dir       string   // Directory path relative to data/
	Manifests []string // World manifest files in the directory
}

// Paths returns the manifest paths relative to the data directory
func (e WorldEntry) Paths() []string {
	paths := make([]string, len(e.Manifests))
	for i, m := range e.Manifests {
		paths[i] = filepath.Join(e.Dir, m)
	}
	return paths
}

// ScanDataDirectory scans the data directory for world manifests.
// Returns one WorldEntry per directory holding at least one manifest,
// sorted by name.
func ScanDataDirectory(dataPath string) ([]WorldEntry, error) {
	entries, err := os.ReadDir(dataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory: %w", err)
	}

	var worlds []WorldEntry

	for _, entry := range entries {
		// Skip non-directories
		if !entry.IsDir() {
			continue
		}

		// Skip special directories
		dirName := entry.Name()
		if dirName == "atlases" || strings.HasPrefix(dirName, ".") {
			continue
		}

		manifests, err := scanManifests(filepath.Join(dataPath, dirName))
		if err != nil {
			// Skip directories that can't be read
			continue
		}

		if len(manifests) > 0 {
			worlds = append(worlds, WorldEntry{
				Name:      dirName,
				Dir:       dirName,
				Manifests: manifests,
			})
		}
	}

	sort.Slice(worlds, func(i, j int) bool { return worlds[i].Name < worlds[j].Name })
	return worlds, nil
}

// FirstManifest returns the first manifest path found, relative to the
// data directory
func FirstManifest(worlds []WorldEntry) (string, bool) {
	for _, w := range worlds {
		if paths := w.Paths(); len(paths) > 0 {
			return paths[0], true
		}
	}
	return "", false
}

// scanManifests finds all world manifest files in a directory
func scanManifests(dirPath string) ([]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, err
	}

	var manifests []string
	for _, entry := range entries {
		// Skip directories
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if strings.HasSuffix(strings.ToLower(name), ManifestSuffix) {
			manifests = append(manifests, name)
		}
	}

	sort.Strings(manifests)
	return manifests, nil
}
