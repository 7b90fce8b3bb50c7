package layout

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

func TestLoadDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")
	doc := `{
		"panels": [{"id": "A1", "leds": [[0, 1, 2], [3, 4, 5]]}],
		"edges": [{"leds": [[9, 9, 9]]}]
	}`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	ds, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(ds.Panels) != 1 || ds.Panels[0].ID != "A1" || len(ds.Panels[0].LEDs) != 2 {
		t.Errorf("unexpected panels: %+v", ds.Panels)
	}
	if len(ds.Edges) != 1 || len(ds.Edges[0].LEDs) != 1 {
		t.Errorf("unexpected edges: %+v", ds.Edges)
	}
}

func TestLoadDatasetErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("missing file should error")
	}
	path := filepath.Join(t.TempDir(), "bad.json")
	os.WriteFile(path, []byte("{"), 0644)
	if _, err := Load(path); err == nil {
		t.Error("malformed file should error")
	}
}
