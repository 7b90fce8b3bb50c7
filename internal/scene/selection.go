package scene

// Colors holds the two user-editable color strings. Values are kept
// verbatim; parsing happens only when a uniform is updated.
type Colors struct {
	Primary string
	Edge    string
}

// Selection is the mutable UI state for the design view: which panels are
// shown and how points are tinted. An empty enabled map means "no filter",
// i.e. every panel is visible. Color edits never affect visibility.
type Selection struct {
	enabled map[string]bool
	colors  Colors
}

func NewSelection() *Selection {
	return &Selection{
		enabled: make(map[string]bool),
		colors:  Colors{Primary: "#ff2d55", Edge: "#2de2e6"},
	}
}

// Toggle flips the entry for id, creating it on first use.
func (s *Selection) Toggle(id string) {
	s.enabled[id] = !s.enabled[id]
}

// Enabled reports the current per-panel entry (absent = false).
func (s *Selection) Enabled(id string) bool {
	return s.enabled[id]
}

// Visible reports whether a panel would be drawn: all panels are visible
// while no entry exists, otherwise only truthy entries are.
func (s *Selection) Visible(id string) bool {
	if len(s.enabled) == 0 {
		return true
	}
	return s.enabled[id]
}

// EnabledSet returns a copy of the filter map for the sampler.
func (s *Selection) EnabledSet() map[string]bool {
	out := make(map[string]bool, len(s.enabled))
	for id, v := range s.enabled {
		out[id] = v
	}
	return out
}

// SetPrimaryColor replaces the primary color string verbatim.
func (s *Selection) SetPrimaryColor(value string) {
	s.colors.Primary = value
}

// SetEdgeColor replaces the edge color string verbatim.
func (s *Selection) SetEdgeColor(value string) {
	s.colors.Edge = value
}

func (s *Selection) Colors() Colors {
	return s.colors
}

// Clear resets the panel filter to "all visible". Colors are untouched.
func (s *Selection) Clear() {
	s.enabled = make(map[string]bool)
}

// Partial is a shallow update applied with Merge. Nil/empty fields leave
// the existing state alone, so one edit never drops unrelated keys.
type Partial struct {
	Enabled map[string]bool
	Primary string
	Edge    string
}

// Merge applies a shallow update: enabled entries are merged key by key,
// color fields replace only when non-empty.
func (s *Selection) Merge(p Partial) {
	for id, v := range p.Enabled {
		s.enabled[id] = v
	}
	if p.Primary != "" {
		s.colors.Primary = p.Primary
	}
	if p.Edge != "" {
		s.colors.Edge = p.Edge
	}
}
