package scene

// Mode selects which sub-scene the composer mounts.
type Mode int

const (
	ModeLandscape Mode = iota
	ModeDesign
)

func (m Mode) String() string {
	if m == ModeDesign {
		return "design"
	}
	return "landscape"
}

// State is the composer's non-GPU state. The selection is the only thing
// that survives a mode switch; terrain phase restarts on every entry into
// the landscape so both transitions are symmetric.
type State struct {
	Mode      Mode
	Selection *Selection
	Terrain   *TerrainState
}

func NewState(scrollSpeed float64) *State {
	return &State{
		Mode:      ModeLandscape,
		Selection: NewSelection(),
		Terrain:   NewTerrainState(scrollSpeed),
	}
}

// SetMode switches the active sub-scene. Re-entering a mode rebuilds it
// from the current selection; no other state is carried across.
func (s *State) SetMode(m Mode) {
	if m == s.Mode {
		return
	}
	s.Mode = m
	s.Terrain = NewTerrainState(s.Terrain.Speed)
}

// ToggleMode flips between landscape and design.
func (s *State) ToggleMode() {
	if s.Mode == ModeLandscape {
		s.SetMode(ModeDesign)
	} else {
		s.SetMode(ModeLandscape)
	}
}
