package config

import (
	"encoding/json"
	"os"

	"github.com/ctoscano/te-studio-poc/internal/logger"
	"go.uber.org/zap"
)

// RenderConfig collects every fixed constant the studio renders with, so
// nothing is referenced as an ambient magic number. An optional overrides
// file can replace individual fields at startup.
type RenderConfig struct {
	// Window
	WindowWidth  int32   `json:"window_width"`
	WindowHeight int32   `json:"window_height"`
	MaxPixelRatio float32 `json:"max_pixel_ratio"` // device pixel ratio cap, bounds GPU cost

	// Layout sampling caps
	MaxPanels    int `json:"max_panels"`
	MaxPerPanel  int `json:"max_per_panel"`
	SkipInterval int `json:"skip_interval"` // keep every Nth LED, 0 or 1 keeps all

	// Layout -> render space transform
	LayoutScale   float32 `json:"layout_scale"`
	LayoutOffsetX float32 `json:"layout_offset_x"`
	LayoutOffsetZ float32 `json:"layout_offset_z"`

	// Point radii per role
	PanelPointSize float32 `json:"panel_point_size"`
	EdgePointSize  float32 `json:"edge_point_size"`

	// Terrain
	ScrollSpeed      float32 `json:"scroll_speed"`       // world units per second along Z
	TerrainSegments  int32   `json:"terrain_segments"`   // subdivisions per plane axis
	DisplaceAmount   float32 `json:"displace_amount"`    // height map displacement scale
	GridCycles       float32 `json:"grid_cycles"`        // grid lines per UV axis
	HeightMapPath    string  `json:"height_map_path"`
	MetalnessMapPath string  `json:"metalness_map_path"`

	// Post-processing
	RGBShiftAmount float32 `json:"rgb_shift_amount"`
	Gamma          float32 `json:"gamma"` // 1.0 = pass-through
	BloomIntensity float32 `json:"bloom_intensity"`
	BloomThreshold float32 `json:"bloom_threshold"`
	BloomRadius    float32 `json:"bloom_radius"`

	// Decorative sun
	SunURL string `json:"sun_url"`
}

// Default returns the constants the studio ships with.
func Default() RenderConfig {
	return RenderConfig{
		WindowWidth:   1280,
		WindowHeight:  720,
		MaxPixelRatio: 2.0,

		MaxPanels:    64,
		MaxPerPanel:  600,
		SkipInterval: 2,

		LayoutScale:   0.012,
		LayoutOffsetX: 2.4,
		LayoutOffsetZ: 1.6,

		PanelPointSize: 3.0,
		EdgePointSize:  6.0,

		ScrollSpeed:      0.15,
		TerrainSegments:  24,
		DisplaceAmount:   0.4,
		GridCycles:       24.0,
		HeightMapPath:    "assets/displacement.png",
		MetalnessMapPath: "assets/metalness.png",

		RGBShiftAmount: 0.0015,
		Gamma:          1.0,
		BloomIntensity: 1.2,
		BloomThreshold: 0.6,
		BloomRadius:    0.8,

		SunURL: "https://assets.te-studio.dev/sun.svg",
	}
}

// Load reads optional overrides from path on top of the defaults. A missing
// file is not an error; a malformed one is logged and ignored.
func Load(path string) RenderConfig {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		logger.Log.Warn("Ignoring malformed config overrides",
			zap.String("path", path), zap.Error(err))
		return Default()
	}
	logger.Log.Info("Loaded config overrides", zap.String("path", path))
	return cfg
}
