package layout

import (
	"encoding/json"
	"os"

	"github.com/ctoscano/te-studio-poc/internal/logger"
	"go.uber.org/zap"
)

// Panel is one physical fixture segment: a named cluster of LED coordinates.
// Edge clusters reuse the same shape without an ID.
type Panel struct {
	ID   string       `json:"id"`
	LEDs [][3]float64 `json:"leds"`
}

// Dataset is the raw fixture layout. It is loaded once and never mutated.
type Dataset struct {
	Panels []Panel `json:"panels"`
	Edges  []Panel `json:"edges"`
}

// Load reads a layout dataset from a JSON file.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, err
	}
	logger.Log.Info("Layout dataset loaded",
		zap.String("path", path),
		zap.Int("panels", len(ds.Panels)),
		zap.Int("edges", len(ds.Edges)))
	return &ds, nil
}
