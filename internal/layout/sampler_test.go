package layout

import (
	"math"
	"testing"
)

func testDataset() *Dataset {
	return &Dataset{
		Panels: []Panel{
			{ID: "P1", LEDs: [][3]float64{{0, 0, 0}, {1, 1, 1}, {2, 2, 2}}},
			{ID: "P2", LEDs: [][3]float64{{3, 3, 3}, {4, 4, 4}}},
		},
		Edges: []Panel{
			{LEDs: [][3]float64{{9, 9, 9}}},
		},
	}
}

func TestEmptySelectionEqualsAllEnabled(t *testing.T) {
	ds := testDataset()
	caps := Caps{MaxPanels: 10, MaxPerPanel: 10}
	tf := Transform{Scale: 1}

	all := Sample(ds, nil, caps, tf)
	explicit := Sample(ds, map[string]bool{"P1": true, "P2": true}, caps, tf)

	if len(all) != len(explicit) {
		t.Fatalf("expected same point count, got %d vs %d", len(all), len(explicit))
	}
	for i := range all {
		if all[i] != explicit[i] {
			t.Errorf("point %d differs: %+v vs %+v", i, all[i], explicit[i])
		}
	}
}

func TestSelectionFiltersPanelsButNotEdges(t *testing.T) {
	ds := testDataset()
	pts := Sample(ds, map[string]bool{"P2": true}, Caps{}, Transform{Scale: 1})

	for _, p := range pts {
		if p.Role == RolePrimary && p.PanelID != "P2" {
			t.Errorf("panel %q should be filtered out", p.PanelID)
		}
	}
	edges := 0
	for _, p := range pts {
		if p.Role == RoleEdge {
			edges++
		}
	}
	if edges != 1 {
		t.Errorf("edges must always be included, got %d edge points", edges)
	}
}

func TestSkipIntervalPointCount(t *testing.T) {
	leds := make([][3]float64, 10)
	ds := &Dataset{Panels: []Panel{{ID: "P", LEDs: leds}}}

	for _, k := range []int{1, 2, 3, 4} {
		for _, perPanel := range []int{0, 7, 10, 20} {
			pts := Sample(ds, nil, Caps{MaxPerPanel: perPanel, SkipInterval: k}, Transform{Scale: 1})
			n := len(leds)
			if perPanel > 0 && perPanel < n {
				n = perPanel
			}
			want := int(math.Ceil(float64(n) / float64(k)))
			if len(pts) != want {
				t.Errorf("skip=%d perPanel=%d: got %d points, want %d", k, perPanel, len(pts), want)
			}
		}
	}
}

func TestPerPanelCapDropsTrailingLEDs(t *testing.T) {
	ds := &Dataset{Panels: []Panel{
		{ID: "P1", LEDs: [][3]float64{{0, 0, 0}, {1, 1, 1}, {2, 2, 2}}},
	}}
	tf := Transform{Scale: 1}
	pts := Sample(ds, nil, Caps{MaxPerPanel: 2, SkipInterval: 1}, tf)

	if len(pts) != 2 {
		t.Fatalf("expected 2 points, got %d", len(pts))
	}
	if pts[0].Position != tf.Apply([3]float64{0, 0, 0}) {
		t.Errorf("first point wrong: %v", pts[0].Position)
	}
	if pts[1].Position != tf.Apply([3]float64{1, 1, 1}) {
		t.Errorf("second point wrong: %v", pts[1].Position)
	}
}

func TestMaxPanelsTruncatesRecords(t *testing.T) {
	ds := testDataset()
	pts := Sample(ds, nil, Caps{MaxPanels: 1}, Transform{Scale: 1})

	for _, p := range pts {
		if p.PanelID != "P1" {
			t.Errorf("only the first record should survive, got %q", p.PanelID)
		}
	}
}

func TestMalformedRecordSkippedWithoutConsumingCap(t *testing.T) {
	ds := &Dataset{Panels: []Panel{
		{ID: "broken"},
		{ID: "ok", LEDs: [][3]float64{{1, 2, 3}}},
	}}
	pts := Sample(ds, nil, Caps{MaxPanels: 1}, Transform{Scale: 1})

	if len(pts) != 1 || pts[0].PanelID != "ok" {
		t.Fatalf("malformed record must not consume the record cap: %+v", pts)
	}
}

func TestTransformAxisRemap(t *testing.T) {
	tf := Transform{Scale: 2, OffsetX: 10, OffsetZ: 20}
	got := tf.Apply([3]float64{1, 2, 3})

	if got.X() != -3*2+10 {
		t.Errorf("render X should come from dataset -Z: got %f", got.X())
	}
	if got.Y() != 2*2 {
		t.Errorf("render Y should come from dataset Y: got %f", got.Y())
	}
	if got.Z() != -1*2+20 {
		t.Errorf("render Z should come from dataset -X: got %f", got.Z())
	}
}
