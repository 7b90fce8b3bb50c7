package layout

import (
	mgl "github.com/go-gl/mathgl/mgl32"
)

type Role int

const (
	RolePrimary Role = iota
	RoleEdge
)

// Point is one render-ready LED position. Colors are not baked in here;
// they are resolved from the current selection when the point cloud is
// built, so a color edit never forces a resample.
type Point struct {
	Position mgl.Vec3
	PanelID  string
	Role     Role
}

// Caps bounds how much of the dataset is turned into geometry.
type Caps struct {
	MaxPanels    int // records processed across panels+edges, 0 = unlimited
	MaxPerPanel  int // LEDs emitted per record, 0 = unlimited
	SkipInterval int // keep every Nth LED, 0 or 1 keeps all
}

// Transform maps dataset coordinates into the camera-facing render frame:
// dataset Z becomes render X (sign flipped, offset), dataset Y stays up,
// dataset X becomes render Z (sign flipped, offset).
type Transform struct {
	Scale   float32
	OffsetX float32
	OffsetZ float32
}

func (t Transform) Apply(led [3]float64) mgl.Vec3 {
	return mgl.Vec3{
		-float32(led[2])*t.Scale + t.OffsetX,
		float32(led[1]) * t.Scale,
		-float32(led[0])*t.Scale + t.OffsetZ,
	}
}

// Sample flattens the dataset into a bounded point set. A panel record is
// included iff enabled is empty or carries a true entry for its ID; edge
// records are always included. Records with no LED list are skipped without
// consuming a cap slot.
func Sample(ds *Dataset, enabled map[string]bool, caps Caps, tf Transform) []Point {
	if ds == nil {
		return nil
	}
	var out []Point
	records := 0

	emit := func(p Panel, role Role) bool {
		if caps.MaxPanels > 0 && records >= caps.MaxPanels {
			return false
		}
		if len(p.LEDs) == 0 {
			return true // malformed record, skip without consuming the cap
		}
		records++

		limit := len(p.LEDs)
		if caps.MaxPerPanel > 0 && caps.MaxPerPanel < limit {
			limit = caps.MaxPerPanel
		}
		step := caps.SkipInterval
		if step < 1 {
			step = 1
		}
		for i := 0; i < limit; i += step {
			out = append(out, Point{
				Position: tf.Apply(p.LEDs[i]),
				PanelID:  p.ID,
				Role:     role,
			})
		}
		return true
	}

	for _, p := range ds.Panels {
		if len(enabled) > 0 && !enabled[p.ID] {
			continue
		}
		if !emit(p, RolePrimary) {
			return out
		}
	}
	for _, e := range ds.Edges {
		if !emit(e, RoleEdge) {
			return out
		}
	}
	return out
}
