package scene

import "math"

// terrainPeriod is the tile length along the scroll axis. The two slots
// stay exactly one period apart so one mesh is always fully in front of
// the camera while the other recycles behind the fog.
const terrainPeriod = 2.0

// TerrainState is the pure scroll phase of the looping terrain. Offsets
// are recomputed from elapsed time every frame; nothing accumulates, so a
// long session never drifts.
type TerrainState struct {
	Speed float64
	slots [2]float64
}

func NewTerrainState(speed float64) *TerrainState {
	t := &TerrainState{Speed: speed}
	t.Advance(0)
	return t
}

// Advance recomputes both slot offsets for elapsed time t (seconds).
// slot0 wraps in [0, period), slot1 trails exactly one period behind.
func (ts *TerrainState) Advance(t float64) {
	phase := math.Mod(t*ts.Speed, terrainPeriod)
	if phase < 0 {
		phase += terrainPeriod
	}
	ts.slots[0] = phase
	ts.slots[1] = phase - terrainPeriod
}

// Offsets returns the two Z offsets, front slot first.
func (ts *TerrainState) Offsets() (float64, float64) {
	return ts.slots[0], ts.slots[1]
}
