package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ctoscano/te-studio-poc/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "nope.json"))
	if cfg != Default() {
		t.Error("missing file should yield the defaults")
	}
}

func TestLoadOverridesSingleField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studio.json")
	if err := os.WriteFile(path, []byte(`{"scroll_speed": 0.5}`), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := Load(path)
	if cfg.ScrollSpeed != 0.5 {
		t.Errorf("override not applied: %f", cfg.ScrollSpeed)
	}
	if cfg.GridCycles != Default().GridCycles {
		t.Error("untouched fields should keep their defaults")
	}
}

func TestLoadMalformedFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studio.json")
	if err := os.WriteFile(path, []byte(`{"scroll_speed": `), 0644); err != nil {
		t.Fatal(err)
	}
	if cfg := Load(path); cfg != Default() {
		t.Error("malformed file should yield the defaults")
	}
}
