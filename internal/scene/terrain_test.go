package scene

import (
	"math"
	"testing"
)

func TestTerrainOffsetsStayOnePeriodApart(t *testing.T) {
	ts := NewTerrainState(0.15)

	for _, elapsed := range []float64{0, 0.5, 1, 13.337, 100, 9999.9} {
		ts.Advance(elapsed)
		z0, z1 := ts.Offsets()

		if math.Abs((z0-z1)-2.0) > 1e-12 {
			t.Errorf("t=%f: offsets must differ by exactly 2.0, got %f", elapsed, z0-z1)
		}
		if z0 < 0 || z0 >= 2 {
			t.Errorf("t=%f: front slot out of [0,2): %f", elapsed, z0)
		}
		if z1 < -2 || z1 >= 0 {
			t.Errorf("t=%f: back slot out of [-2,0): %f", elapsed, z1)
		}
	}
}

func TestTerrainPhaseIsFunctionOfElapsedTime(t *testing.T) {
	a := NewTerrainState(0.15)
	b := NewTerrainState(0.15)

	a.Advance(1)
	a.Advance(2)
	a.Advance(42.5)
	b.Advance(42.5)

	a0, a1 := a.Offsets()
	b0, b1 := b.Offsets()
	if a0 != b0 || a1 != b1 {
		t.Error("offsets must depend only on elapsed time, not call history")
	}
}

func TestModeSwitchPreservesSelection(t *testing.T) {
	s := NewState(0.15)
	s.Selection.Toggle("P1")
	s.Selection.SetPrimaryColor("#abcdef")
	before := s.Selection

	s.Terrain.Advance(5)

	s.SetMode(ModeDesign)
	s.SetMode(ModeLandscape)

	if s.Selection != before {
		t.Error("selection must be the same object across mode switches")
	}
	if !s.Selection.Enabled("P1") || s.Selection.Colors().Primary != "#abcdef" {
		t.Error("selection contents changed across mode switches")
	}
	z0, _ := s.Terrain.Offsets()
	if z0 != 0 {
		t.Errorf("terrain phase should restart on re-entry, got %f", z0)
	}
}

func TestSetSameModeIsNoOp(t *testing.T) {
	s := NewState(0.15)
	s.Terrain.Advance(5)
	z0Before, _ := s.Terrain.Offsets()

	s.SetMode(ModeLandscape)

	z0After, _ := s.Terrain.Offsets()
	if z0Before != z0After {
		t.Error("setting the current mode must not reset terrain phase")
	}
}
