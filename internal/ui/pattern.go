package ui

import "github.com/seedloom/seedloom/core/seed"

// maxPaintDots bounds the painted pattern; once full, the oldest points are
// evicted first.
const maxPaintDots = 6000

// PaintDot is one mirrored stroke point.
type PaintDot struct {
	X, Y float64
	Col  seed.LuminousColor
}

// PaintPattern is the append-only, bounded log of mirrored stroke points.
// It is owned by the app, not the paint mode, so it survives mode switches;
// it only empties on explicit clear.
type PaintPattern struct {
	buf   []PaintDot
	start int
	count int
}

func NewPaintPattern() *PaintPattern {
	return &PaintPattern{buf: make([]PaintDot, maxPaintDots)}
}

// Add appends a point, evicting the oldest when the bound is reached.
func (p *PaintPattern) Add(d PaintDot) {
	if p.count < len(p.buf) {
		p.buf[(p.start+p.count)%len(p.buf)] = d
		p.count++
		return
	}
	p.buf[p.start] = d
	p.start = (p.start + 1) % len(p.buf)
}

// Len returns the number of stored points.
func (p *PaintPattern) Len() int { return p.count }

// Each visits points oldest-first.
func (p *PaintPattern) Each(fn func(PaintDot)) {
	for i := 0; i < p.count; i++ {
		fn(p.buf[(p.start+i)%len(p.buf)])
	}
}

// Clear discards the pattern entirely.
func (p *PaintPattern) Clear() {
	p.start = 0
	p.count = 0
}
