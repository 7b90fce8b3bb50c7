package renderer

import "testing"

func TestChainSizeRoundTrip(t *testing.T) {
	var s chainSize
	if !s.update(800, 600) {
		t.Fatal("first update should reallocate")
	}
	if s.update(800, 600) {
		t.Error("same size should be a no-op")
	}
	if !s.update(1600, 900) {
		t.Error("growing should reallocate")
	}
	if !s.update(800, 600) {
		t.Error("returning to a previous size should reallocate")
	}
	if s.update(800, 600) {
		t.Error("repeated resize to the current size should be a no-op")
	}
	if s.width != 800 || s.height != 600 {
		t.Errorf("size drifted: %dx%d", s.width, s.height)
	}
}

func TestChainSizeClampsToOne(t *testing.T) {
	var s chainSize
	s.update(0, -5)
	if s.width != 1 || s.height != 1 {
		t.Errorf("degenerate sizes should clamp to 1x1, got %dx%d", s.width, s.height)
	}
}

func TestPassOrder(t *testing.T) {
	want := []string{"render", "rgbshift", "gamma", "bloom"}
	got := PassNames()
	if len(got) != len(want) {
		t.Fatalf("expected %d passes, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pass %d: want %q, got %q", i, want[i], got[i])
		}
	}
}
