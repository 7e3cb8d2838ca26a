package ui

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/seedloom/seedloom/core/seed"
	"github.com/seedloom/seedloom/internal/config"
	game_log "github.com/seedloom/seedloom/internal/log"
)

const (
	// Minimum spacing between paint-triggered notes.
	paintNoteGap = 95 * time.Millisecond
	// Radial distance buckets used for the note lookup.
	paintRingCount = 12
)

// PaintMode mirrors every stroke point N-fold around the canvas center and
// sonifies points by their radial ring. The painted pattern itself belongs
// to the app and survives mode switches.
type PaintMode struct {
	cfg     *config.Settings
	logger  *game_log.Logger
	pattern *PaintPattern

	surf      *Surface
	gate      noteGate
	t         float64
	clearPrev bool
}

func NewPaintMode(cfg *config.Settings, pattern *PaintPattern, logger *game_log.Logger) *PaintMode {
	return &PaintMode{cfg: cfg, logger: logger, pattern: pattern, gate: noteGate{min: paintNoteGap}}
}

func (m *PaintMode) Name() string { return ModePaint }

func (m *PaintMode) Activate(s *Surface) {
	m.surf = s
	m.gate.reset()
	m.logger.Infof("[PAINT] activated, pattern holds %d points", m.pattern.Len())
}

func (m *PaintMode) Deactivate() {
	// The pattern is deliberately kept; students come back to it.
	m.surf = nil
}

func (m *PaintMode) Update(f *Frame) {
	m.t += 1.0 / 60.0

	if isKeyPressed(ebiten.KeyC) {
		if !m.clearPrev {
			m.logger.Infof("[PAINT] cleared %d points", m.pattern.Len())
			m.pattern.Clear()
		}
		m.clearPrev = true
	} else {
		m.clearPrev = false
	}

	for _, ev := range f.Events {
		if ev.Kind == ContactEnd {
			continue
		}
		m.stroke(ev.S.X, ev.S.Y, f.Now)
	}
}

// stroke appends the N mirrored points for one raw input sample and fires
// the ring note, gated.
func (m *PaintMode) stroke(x, y float64, now time.Time) {
	cx, cy := m.surf.Center()
	n := m.cfg.Harmony
	sd := m.cfg.ActiveSeed()

	dist := math.Hypot(x-cx, y-cy)
	maxR := math.Min(cx, cy)
	ring := ringBucket(dist, maxR)
	col := seed.Luminous(sd.DigitAt(ring))

	for _, pt := range mirrorPoints(cx, cy, x, y, n) {
		m.pattern.Add(PaintDot{X: pt[0], Y: pt[1], Col: col})
	}
	if m.gate.allow(now) {
		note := seed.NoteForRing(ring)
		playTone(note.Freq, 0.5)
	}
}

// mirrorPoints reflects (x,y) around (cx,cy) at n equal angular steps. The
// input point itself is the first entry.
func mirrorPoints(cx, cy, x, y float64, n int) [][2]float64 {
	if n < 1 {
		n = 1
	}
	dx, dy := x-cx, y-cy
	r := math.Hypot(dx, dy)
	base := math.Atan2(dy, dx)
	out := make([][2]float64, 0, n)
	for k := 0; k < n; k++ {
		a := base + float64(k)*2*math.Pi/float64(n)
		out = append(out, [2]float64{cx + r*math.Cos(a), cy + r*math.Sin(a)})
	}
	return out
}

// ringBucket maps a radial distance to one of the fixed note rings.
func ringBucket(dist, maxR float64) int {
	if maxR <= 0 {
		return 0
	}
	ring := int(dist / (maxR / paintRingCount))
	if ring < 0 {
		ring = 0
	}
	if ring >= paintRingCount {
		ring = paintRingCount - 1
	}
	return ring
}

func (m *PaintMode) Draw(s *Surface) {
	s.Fill(asQuad(colCanvasBG))
	m.drawBackdrop(s)
	m.drawGuides(s)
	m.pattern.Each(func(d PaintDot) {
		glowDot(s, d.X, d.Y, 2.4, d.Col, d.Col.Halo())
	})
}

// drawBackdrop renders the static multi-ring decoration, each ring pulsing
// by its position.
func (m *PaintMode) drawBackdrop(s *Surface) {
	cx, cy := s.Center()
	sd := m.cfg.ActiveSeed()
	maxR := math.Min(cx, cy) * 0.92
	step := maxR / float64(sd.Len())
	for i := 0; i < sd.Len(); i++ {
		r := step*float64(i+1) + 3*math.Sin(m.t*2+float64(i)*0.7)
		col := seed.Luminous(sd.DigitAt(i)).WithAlpha(26)
		strokeRing(s, cx, cy, r, 1, col)
	}
}

// drawGuides renders the faint rotating symmetry guide lines.
func (m *PaintMode) drawGuides(s *Surface) {
	cx, cy := s.Center()
	maxR := math.Min(cx, cy)
	n := m.cfg.Harmony
	for k := 0; k < n; k++ {
		a := m.t*0.1 + float64(k)*2*math.Pi/float64(n)
		strokeSeg(s, cx, cy, cx+maxR*math.Cos(a), cy+maxR*math.Sin(a), 1, colGuideLine)
	}
}
