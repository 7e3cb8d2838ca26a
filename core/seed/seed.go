package seed

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ID names one of the built-in digit sequences.
type ID string

const (
	Pi    ID = "pi"
	Phi   ID = "phi"
	Euler ID = "euler"
	Root2 ID = "root2"
)

// Seed is an immutable digit sequence. Digits are only ever read through
// DigitAt, which wraps the index and clamps the value, so callers never see
// an out-of-range digit even for malformed content.
type Seed struct {
	ID     ID
	Name   string
	Digits []int
}

var registry = []Seed{
	{ID: Pi, Name: "Pi Spiral", Digits: []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5, 8, 9, 7, 9, 3, 2, 3, 8, 4, 6, 2, 6, 4}},
	{ID: Phi, Name: "Golden Thread", Digits: []int{1, 6, 1, 8, 0, 3, 3, 9, 8, 8, 7, 4, 9, 8, 9, 4, 8, 4, 8, 2, 0, 4, 5, 8}},
	{ID: Euler, Name: "Euler Bloom", Digits: []int{2, 7, 1, 8, 2, 8, 1, 8, 2, 8, 4, 5, 9, 0, 4, 5, 2, 3, 5, 3, 6, 0, 2, 8}},
	{ID: Root2, Name: "Silver Root", Digits: []int{1, 4, 1, 4, 2, 1, 3, 5, 6, 2, 3, 7, 3, 0, 9, 5, 0, 4, 8, 8, 0, 1, 6, 8}},
}

// All returns the fixed seed catalog in display order.
func All() []Seed {
	out := make([]Seed, len(registry))
	copy(out, registry)
	return out
}

// Lookup returns the seed for id.
func Lookup(id ID) (Seed, bool) {
	for _, s := range registry {
		if s.ID == id {
			return s, true
		}
	}
	return Seed{}, false
}

// Default is the seed selected before the student picks one.
func Default() Seed { return registry[0] }

// Len reports the digit count. Empty seeds report zero.
func (s Seed) Len() int { return len(s.Digits) }

// DigitAt returns the digit at index i, wrapping the index around the
// sequence and clamping the stored value to 0..9.
func (s Seed) DigitAt(i int) int {
	if len(s.Digits) == 0 {
		return 0
	}
	i %= len(s.Digits)
	if i < 0 {
		i += len(s.Digits)
	}
	return ClampDigit(s.Digits[i])
}

// ClampDigit forces any integer into the 0..9 alphabet.
func ClampDigit(d int) int {
	if d < 0 {
		return 0
	}
	if d > 9 {
		return 9
	}
	return d
}

/* ───────────────────────── palettes ───────────────────────── */

// StructuralColor is drawn on light chrome (bar charts, wizard). It is a
// distinct type from LuminousColor on purpose: mixing the two palettes made
// content invisible against the wrong background once before.
type StructuralColor color.RGBA

// LuminousColor is drawn on dark interactive canvases.
type LuminousColor color.RGBA

var (
	structuralPalette [10]StructuralColor
	luminousPalette   [10]LuminousColor
)

func init() {
	// Ten evenly spaced hues; the structural run is darker and desaturated
	// so it reads against light chrome, the luminous run is near-neon.
	for d := 0; d < 10; d++ {
		hue := float64(d) * 36.0
		sc := colorful.Hsv(hue, 0.55, 0.62)
		lc := colorful.Hsv(hue, 0.85, 1.0)
		sr, sg, sb := sc.RGB255()
		lr, lg, lb := lc.RGB255()
		structuralPalette[d] = StructuralColor{R: sr, G: sg, B: sb, A: 0xff}
		luminousPalette[d] = LuminousColor{R: lr, G: lg, B: lb, A: 0xff}
	}
}

// Structural maps a digit to the light-background palette.
func Structural(d int) StructuralColor { return structuralPalette[ClampDigit(d)] }

// Luminous maps a digit to the dark-canvas palette.
func Luminous(d int) LuminousColor { return luminousPalette[ClampDigit(d)] }

// RGBA lets a StructuralColor be used wherever color.Color is expected.
func (c StructuralColor) RGBA() (r, g, b, a uint32) { return color.RGBA(c).RGBA() }

// RGBA lets a LuminousColor be used wherever color.Color is expected.
func (c LuminousColor) RGBA() (r, g, b, a uint32) { return color.RGBA(c).RGBA() }

// WithAlpha returns the color with its alpha replaced.
func (c LuminousColor) WithAlpha(a uint8) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: a}
}

// Halo returns a dimmer, wider glow shade of the color for two-pass glow
// rendering (halo first, bright core on top).
func (c LuminousColor) Halo() color.RGBA {
	cf := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	h, s, v := cf.Hsv()
	halo := colorful.Hsv(h, s*0.7, v)
	r, g, b := halo.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0x50}
}

/* ───────────────────────── scale ───────────────────────── */

// Note pairs a display name with its frequency in Hz.
type Note struct {
	Name string
	Freq float64
}

// Two octaves of A-minor pentatonic. Digit 0 plays the lowest note, digit 9
// the highest; the mapping is total over all integers via ClampDigit.
var scale = [10]Note{
	{Name: "A3", Freq: 220.00},
	{Name: "C4", Freq: 261.63},
	{Name: "D4", Freq: 293.66},
	{Name: "E4", Freq: 329.63},
	{Name: "G4", Freq: 392.00},
	{Name: "A4", Freq: 440.00},
	{Name: "C5", Freq: 523.25},
	{Name: "D5", Freq: 587.33},
	{Name: "E5", Freq: 659.25},
	{Name: "G5", Freq: 783.99},
}

// NoteFor maps a digit to its note in the fixed ten-note scale.
func NoteFor(d int) Note { return scale[ClampDigit(d)] }

// ScaleSize is the number of notes in the fixed scale.
const ScaleSize = len(scale)

// NoteForRing maps a ring index (any non-negative bucket, e.g. radial
// distance buckets in the paint mode) onto the scale by modulo.
func NoteForRing(ring int) Note {
	if ring < 0 {
		ring = -ring
	}
	return scale[ring%ScaleSize]
}
