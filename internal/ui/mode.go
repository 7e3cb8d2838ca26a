package ui

import "time"

// Mode identifiers, exposed to the host for mode selection.
const (
	ModeHelix  = "helix"
	ModePaint  = "paint"
	ModeField  = "field"
	ModeFlow   = "flow"
	ModeBars   = "bars"
	ModeWizard = "wizard"
)

// Frame carries one frame's input to the active mode. Update runs before
// Draw; physics and input always precede rendering.
type Frame struct {
	Now      time.Time
	Events   []Event
	Pointers *Pointers
}

// Mode is one of the six presentation modes. Exactly one mode is active at
// any time: Activate is only called after the previous mode's Deactivate,
// and only the active mode receives Update/Draw.
type Mode interface {
	Name() string
	// Activate binds the mode to the shared surface. Per-mode ephemeral
	// state starts fresh here.
	Activate(*Surface)
	// Deactivate releases everything the mode allocated: sessions,
	// particles, geometry. After it returns the mode holds no live state.
	Deactivate()
	Update(*Frame)
	Draw(*Surface)
}

// keyboardCapturer is implemented by modes that consume raw typed input
// (the ritual reflection editor); while capturing, app-level shortcuts are
// suspended.
type keyboardCapturer interface {
	CapturesKeyboard() bool
}
