package ui

import (
	"time"

	"github.com/seedloom/seedloom/core/seed"
	"github.com/seedloom/seedloom/internal/audio"
)

// Audio triggers route through package vars so tests can count them.
var (
	playTone    = audio.PlayTone
	playShimmer = audio.PlayShimmer
	playChime   = audio.PlayChime
	audioResume = audio.Resume
)

// playDigit triggers the note for a digit at the given volume.
func playDigit(d int, vol float64) {
	n := seed.NoteFor(d)
	playTone(n.Freq, vol)
}

// noteGate rate-limits repeated audio triggers. Zero value is open.
type noteGate struct {
	min  time.Duration
	last time.Time
}

// allow reports whether a trigger may fire now, and records it if so.
func (g *noteGate) allow(now time.Time) bool {
	if !g.last.IsZero() && now.Sub(g.last) < g.min {
		return false
	}
	g.last = now
	return true
}

// reset reopens the gate, as on mode activation.
func (g *noteGate) reset() { g.last = time.Time{} }
