package scene

import "testing"

func TestToggleTwiceRestores(t *testing.T) {
	s := NewSelection()

	before := s.Enabled("P1")
	s.Toggle("P1")
	if s.Enabled("P1") == before {
		t.Error("first toggle should flip the entry")
	}
	s.Toggle("P1")
	if s.Enabled("P1") != before {
		t.Error("second toggle should restore the entry")
	}
}

func TestEmptySelectionShowsEverything(t *testing.T) {
	s := NewSelection()

	if !s.Visible("anything") {
		t.Error("empty selection must show all panels")
	}
	s.Toggle("P1")
	if s.Visible("P2") {
		t.Error("once an entry exists, unselected panels hide")
	}
	if !s.Visible("P1") {
		t.Error("toggled panel should be visible")
	}
}

func TestClearPreservesColors(t *testing.T) {
	s := NewSelection()
	s.Toggle("P1")
	s.SetPrimaryColor("#abcdef")

	s.Clear()

	if len(s.EnabledSet()) != 0 {
		t.Error("clear should empty the panel filter")
	}
	if s.Colors().Primary != "#abcdef" {
		t.Errorf("clear must not touch colors, got %q", s.Colors().Primary)
	}
}

func TestClearAndSetColorCommute(t *testing.T) {
	a := NewSelection()
	a.Toggle("P1")
	a.Clear()
	a.SetPrimaryColor("#abcdef")

	b := NewSelection()
	b.Toggle("P1")
	b.SetPrimaryColor("#abcdef")
	b.Clear()

	if a.Colors() != b.Colors() {
		t.Errorf("colors differ: %+v vs %+v", a.Colors(), b.Colors())
	}
	if len(a.EnabledSet()) != 0 || len(b.EnabledSet()) != 0 {
		t.Error("both orders should end with an empty filter")
	}
}

func TestColorEditNeverAffectsVisibility(t *testing.T) {
	s := NewSelection()
	s.SetPrimaryColor("#123456")
	s.SetEdgeColor("#654321")

	if !s.Visible("P1") {
		t.Error("color edits must not start hiding unselected panels")
	}
}

func TestMergePreservesUnrelatedKeys(t *testing.T) {
	s := NewSelection()
	s.Toggle("P1")
	s.SetEdgeColor("#00ff00")

	s.Merge(Partial{Enabled: map[string]bool{"P2": true}, Primary: "#111111"})

	if !s.Enabled("P1") {
		t.Error("merge dropped an existing panel entry")
	}
	if !s.Enabled("P2") {
		t.Error("merge should add the new panel entry")
	}
	if s.Colors().Edge != "#00ff00" {
		t.Error("merge dropped the edge color")
	}
	if s.Colors().Primary != "#111111" {
		t.Error("merge should replace the primary color")
	}
}
