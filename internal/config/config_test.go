package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Studio != "pca" {
		t.Errorf("expected studio pca, got %s", cfg.Studio)
	}
	if cfg.FPS <= 0 {
		t.Error("fps should be positive")
	}
	if cfg.Lorenz.Steps <= cfg.Lorenz.Discard {
		t.Error("lorenz steps must exceed the discard prefix")
	}
	if cfg.Galton.Bins() != cfg.Galton.Rows+1 {
		t.Errorf("expected %d bins, got %d", cfg.Galton.Rows+1, cfg.Galton.Bins())
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("galton", "tall")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Galton.Rows != 11 {
		t.Errorf("expected 11 rows, got %d", cfg.Galton.Rows)
	}
	if cfg.Studio != "galton" {
		t.Errorf("preset should select its studio, got %s", cfg.Studio)
	}
	// other studios keep their defaults
	if cfg.PCA.Count != DefaultConfig().PCA.Count {
		t.Error("preset leaked into an unrelated studio")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("galton", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "tall"); cfg != nil {
		t.Error("expected nil for nonexistent studio")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("grid")
	if len(presets) == 0 {
		t.Error("expected presets for grid")
	}

	presets = ListPresets("nonexistent")
	if presets != nil {
		t.Error("expected nil for nonexistent studio")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backdrop.yaml")

	cfg := DefaultConfig()
	cfg.Studio = "lorenz"
	cfg.Seed = 42
	cfg.Lorenz.Steps = 12345
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Studio != "lorenz" || loaded.Seed != 42 || loaded.Lorenz.Steps != 12345 {
		t.Errorf("round trip lost fields: %+v", loaded)
	}
	// unset file fields fall back to defaults
	if loaded.Surface.NX != DefaultConfig().Surface.NX {
		t.Error("defaults not preserved through load")
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("studio: markov\nseed: 7\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Studio != "markov" || cfg.Seed != 7 {
		t.Errorf("explicit fields not applied: %+v", cfg)
	}
	if cfg.FPS != DefaultFPS {
		t.Errorf("expected default fps %d, got %d", DefaultFPS, cfg.FPS)
	}
}

// A file that sets only part of one studio's section must load cleanly,
// applying the named keys and keeping defaults for the rest of that section.
func TestLoadSurfaceSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "surface.yaml")
	body := "surface:\n  sigma: 0.9\n  nx: 20\n  nz: 24\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Surface.Sigma != 0.9 {
		t.Errorf("sigma = %v, want 0.9", cfg.Surface.Sigma)
	}
	if cfg.Surface.NX != 20 || cfg.Surface.NZ != 24 {
		t.Errorf("grid = %dx%d, want 20x24", cfg.Surface.NX, cfg.Surface.NZ)
	}
	if cfg.Surface.Extent != DefaultConfig().Surface.Extent {
		t.Error("unset extent should keep its default")
	}
}

func TestOptionsMirror(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 9
	cfg.Network.NodeCount = 100

	o := cfg.Options()
	if o.Seed != 9 {
		t.Errorf("seed = %d", o.Seed)
	}
	if o.Network.NodeCount != 100 {
		t.Errorf("network node count = %d", o.Network.NodeCount)
	}
}
