package ripple

// Mode is the caller-owned ripple toggle. It decides whether the command
// layer invokes the calculators at all and which scope it asks for; the
// calculators themselves never consult it, so there is no ambient state to
// coordinate.
type Mode struct {
	enabled   bool
	allTracks bool
}

// NewMode seeds a mode value, typically from editor configuration defaults.
func NewMode(enabled, allTracks bool) Mode {
	return Mode{enabled: enabled, allTracks: allTracks}
}

// Toggle flips the enabled flag and returns the new value.
func (m *Mode) Toggle() bool {
	m.enabled = !m.enabled
	return m.enabled
}

// SetEnabled sets the enabled flag.
func (m *Mode) SetEnabled(enabled bool) {
	m.enabled = enabled
}

// SetAllTracks sets the cross-track propagation flag.
func (m *Mode) SetAllTracks(allTracks bool) {
	m.allTracks = allTracks
}

// Enabled reports whether ripple edits are active.
func (m Mode) Enabled() bool {
	return m.enabled
}

// AllTracks reports whether ripples propagate across every track.
func (m Mode) AllTracks() bool {
	return m.allTracks
}

// Options returns the per-call options this mode implies.
func (m Mode) Options() Options {
	return Options{AllTracks: m.allTracks}
}
