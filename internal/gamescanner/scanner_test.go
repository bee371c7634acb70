package gamescanner

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func TestScanDataDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "overworld", "overworld.world.json"))
	writeFile(t, filepath.Join(dir, "overworld", "meadow.json"))
	writeFile(t, filepath.Join(dir, "ark", "ark.world.json"))
	writeFile(t, filepath.Join(dir, "ark", "deck.json"))
	writeFile(t, filepath.Join(dir, "atlases", "skip.world.json"))
	writeFile(t, filepath.Join(dir, ".hidden", "skip.world.json"))
	writeFile(t, filepath.Join(dir, "empty", "notes.json"))
	writeFile(t, filepath.Join(dir, "simulation.json"))

	worlds, err := ScanDataDirectory(dir)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(worlds) != 2 {
		t.Fatalf("Expected 2 world directories, got %d: %+v", len(worlds), worlds)
	}
	if worlds[0].Name != "ark" || worlds[1].Name != "overworld" {
		t.Errorf("Expected sorted [ark overworld], got [%s %s]", worlds[0].Name, worlds[1].Name)
	}
	if len(worlds[1].Manifests) != 1 || worlds[1].Manifests[0] != "overworld.world.json" {
		t.Errorf("Expected only the manifest, got %v", worlds[1].Manifests)
	}

	want := filepath.Join("ark", "ark.world.json")
	if got, ok := FirstManifest(worlds); !ok || got != want {
		t.Errorf("Expected first manifest %s, got %s", want, got)
	}
}

func TestScanMissingDirectory(t *testing.T) {
	if _, err := ScanDataDirectory(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Expected an error for a missing data directory")
	}
}

func TestFirstManifestEmpty(t *testing.T) {
	if _, ok := FirstManifest(nil); ok {
		t.Error("Expected no manifest")
	}
}
