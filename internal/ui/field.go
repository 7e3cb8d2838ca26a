package ui

import (
	"math"
	"math/rand"

	"github.com/seedloom/seedloom/core/seed"
	"github.com/seedloom/seedloom/internal/config"
	game_log "github.com/seedloom/seedloom/internal/log"
)

const (
	minParticles = 100
	maxParticles = 240
	// One particle per this many logical square pixels, before clamping.
	particleAreaDivisor = 4500

	// Pointer attraction only acts within this radius.
	influenceRadius = 160.0
	attractionK     = 28.0
	centeringK      = 0.0006
	velocityDamping = 0.983 // ~1.7% loss per frame
	wallRetention   = 0.88  // 12% energy loss on reflection

	// Two particles below this distance are linked by a constellation line.
	// Keeping the population at or under 240 keeps the O(n^2) pass cheap.
	linkThreshold = 72.0
)

type particle struct {
	x, y   float64
	vx, vy float64
	digit  int
	col    seed.LuminousColor
	size   float64
	mass   float64
}

// FieldMode is the particle-physics field: pointer sessions (or an idle
// figure-eight attractor) stir a population of digit-colored particles that
// link into constellations at close range.
type FieldMode struct {
	cfg    *config.Settings
	logger *game_log.Logger

	surf      *Surface
	gen       int
	builtSeed seed.ID
	particles []particle
	ripples   []ripple
	t         float64
	washed    bool
}

func NewFieldMode(cfg *config.Settings, logger *game_log.Logger) *FieldMode {
	return &FieldMode{cfg: cfg, logger: logger}
}

func (m *FieldMode) Name() string { return ModeField }

func (m *FieldMode) Activate(s *Surface) {
	m.surf = s
	m.t = 0
	m.washed = false
	m.rebuild()
}

func (m *FieldMode) Deactivate() {
	// Particles never outlive the field's active lifetime.
	m.particles = nil
	m.ripples = nil
	m.surf = nil
}

// rebuild repopulates the field for the current surface size.
func (m *FieldMode) rebuild() {
	w, h := m.surf.Size()
	m.gen = m.surf.Generation()
	count := particleCountFor(w, h)
	sd := m.cfg.ActiveSeed()
	m.builtSeed = sd.ID

	m.particles = make([]particle, count)
	for i := range m.particles {
		d := sd.DigitAt(i)
		m.particles[i] = particle{
			x:     rand.Float64() * float64(w),
			y:     rand.Float64() * float64(h),
			vx:    rand.Float64()*1.2 - 0.6,
			vy:    rand.Float64()*1.2 - 0.6,
			digit: d,
			col:   seed.Luminous(d),
			size:  1.6 + float64(d)*0.22,
			mass:  float64(d) + 1, // heavier digits redirect slower
		}
	}
	m.logger.Infof("[FIELD] rebuilt %d particles for %dx%d", count, w, h)
}

// particleCountFor scales the population with surface area, clamped.
func particleCountFor(w, h int) int {
	n := w * h / particleAreaDivisor
	if n < minParticles {
		n = minParticles
	}
	if n > maxParticles {
		n = maxParticles
	}
	return n
}

func (m *FieldMode) Update(f *Frame) {
	m.t += 1.0 / 60.0
	if m.surf.Generation() != m.gen || m.cfg.ActiveSeed().ID != m.builtSeed {
		m.rebuild()
		m.washed = false
	}

	w, h := m.surf.Size()
	sd := m.cfg.ActiveSeed()
	for _, ev := range f.Events {
		if ev.Kind == ContactBegin || ev.Kind == ContactEnd {
			d := digitAtX(sd, ev.S.X, float64(w))
			m.ripples = append(m.ripples, newRipple(ev.S.X, ev.S.Y, seed.Luminous(d), ev.Kind == ContactBegin))
		}
	}

	m.stepPhysics(f, float64(w), float64(h))
	m.ripples = stepRipples(m.ripples)
}

type attractor struct {
	x, y     float64
	strength float64
}

func (m *FieldMode) attractors(f *Frame, w, h float64) []attractor {
	var out []attractor
	f.Pointers.Each(func(s *Session) {
		out = append(out, attractor{x: s.X, y: s.Y, strength: s.Strength(f.Now)})
	})
	if len(out) == 0 {
		// Idle figure-eight sweep so the field is never fully static.
		out = append(out, attractor{
			x:        w/2 + 0.32*w*math.Sin(m.t*0.6),
			y:        h/2 + 0.22*h*math.Sin(m.t*0.6)*math.Cos(m.t*0.6)*2,
			strength: 0.8,
		})
	}
	return out
}

func (m *FieldMode) stepPhysics(f *Frame, w, h float64) {
	resp := m.cfg.Responsive()
	atts := m.attractors(f, w, h)
	cx, cy := w/2, h/2

	for i := range m.particles {
		p := &m.particles[i]
		for _, a := range atts {
			dx, dy := a.x-p.x, a.y-p.y
			d := math.Hypot(dx, dy)
			if d > influenceRadius || d < 1e-6 {
				continue
			}
			if d < 8 {
				d = 8 // cap the inverse law near the contact point
			}
			force := attractionK / d * resp * a.strength
			p.vx += dx / d * force / p.mass
			p.vy += dy / d * force / p.mass
		}

		// weak centering prevents permanent edge-clustering
		p.vx += (cx - p.x) * centeringK
		p.vy += (cy - p.y) * centeringK

		p.vx *= velocityDamping
		p.vy *= velocityDamping
		p.x += p.vx
		p.y += p.vy

		if p.x < 0 {
			p.x = 0
			p.vx = -p.vx * wallRetention
		} else if p.x > w {
			p.x = w
			p.vx = -p.vx * wallRetention
		}
		if p.y < 0 {
			p.y = 0
			p.vy = -p.vy * wallRetention
		} else if p.y > h {
			p.y = h
			p.vy = -p.vy * wallRetention
		}
	}
}

// digitAtX buckets a horizontal position into the seed's digit sequence.
func digitAtX(sd seed.Seed, x, w float64) int {
	if w <= 0 || sd.Len() == 0 {
		return 0
	}
	idx := int(x / w * float64(sd.Len()))
	return sd.DigitAt(idx)
}

// linkAlpha is the constellation line opacity for a pair distance: full at
// zero, fading linearly to nothing at the threshold.
func linkAlpha(dist float64) float64 {
	if dist >= linkThreshold {
		return 0
	}
	return 1 - dist/linkThreshold
}

func (m *FieldMode) Draw(s *Surface) {
	if !m.washed {
		s.Fill(asQuad(colCanvasBG))
		m.washed = true
	}
	// Low-alpha overwrite, not a clear: previous frames linger as trails.
	w, h := s.Size()
	fillBox(s, 0, 0, float64(w), float64(h), colTrailWash)

	// constellation lines under the particles
	for i := 0; i < len(m.particles); i++ {
		for j := i + 1; j < len(m.particles); j++ {
			a, b := &m.particles[i], &m.particles[j]
			d := math.Hypot(a.x-b.x, a.y-b.y)
			alpha := linkAlpha(d)
			if alpha <= 0 {
				continue
			}
			strokeSeg(s, a.x, a.y, b.x, b.y, 1, a.col.WithAlpha(uint8(alpha*90)))
		}
	}

	for i := range m.particles {
		p := &m.particles[i]
		glowDot(s, p.x, p.y, p.size, p.col, p.col.Halo())
	}

	drawRipples(s, m.ripples)
}
