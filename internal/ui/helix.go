package ui

import (
	"math"
	"sort"
	"time"

	"github.com/seedloom/seedloom/core/seed"
	"github.com/seedloom/seedloom/internal/config"
	game_log "github.com/seedloom/seedloom/internal/log"
)

const (
	helixNear   = 220.0 // closest camera distance
	helixFar    = 760.0
	helixFocal  = 420.0
	helixHeight = 340.0 // model-space strand height
	helixRadius = 92.0
	// Per-frame easing of the rotation toward its drag target.
	rotSmoothing = 0.12
	helixTilt    = 0.3
)

type helixSphere struct {
	x, y, z float64 // model space
	digit   int
	radius  float64
}

// helixMaterial is shared by every sphere of one digit; animating the ten
// materials is O(10) per frame no matter how many spheres exist.
type helixMaterial struct {
	col      seed.LuminousColor
	emissive float64
}

type projected struct {
	idx   int
	sx, sy float64
	scale float64
	depth float64
}

// HelixMode renders the seed as a rotating N-strand helix: drag to rotate,
// pinch to zoom, hover to light a sphere and hear its digit.
type HelixMode struct {
	cfg    *config.Settings
	logger *game_log.Logger

	surf      *Surface
	spheres   []helixSphere
	materials [10]helixMaterial

	builtSeed    seed.ID
	builtHarmony int

	rot, rotTarget float64
	dist           float64
	hit            int
	gate           noteGate
	t              float64
}

func NewHelixMode(cfg *config.Settings, logger *game_log.Logger) *HelixMode {
	return &HelixMode{cfg: cfg, logger: logger, hit: -1, dist: 460, gate: noteGate{min: 180 * time.Millisecond}}
}

func (m *HelixMode) Name() string { return ModeHelix }

func (m *HelixMode) Activate(s *Surface) {
	m.surf = s
	m.hit = -1
	m.gate.reset()
	m.ensureGeometry()
}

// Deactivate disposes all generated geometry and material state so repeated
// activations never accumulate resources.
func (m *HelixMode) Deactivate() {
	m.spheres = nil
	m.builtSeed = ""
	m.builtHarmony = 0
	m.hit = -1
	m.surf = nil
	m.logger.Debugf("[HELIX] geometry disposed")
}

// ensureGeometry (re)builds spheres when the (seed, harmony) pair changed.
func (m *HelixMode) ensureGeometry() {
	sd := m.cfg.ActiveSeed()
	arms := m.cfg.Harmony
	if sd.ID == m.builtSeed && arms == m.builtHarmony && m.spheres != nil {
		return
	}
	m.spheres = m.spheres[:0]
	n := sd.Len()
	for a := 0; a < arms; a++ {
		phase := float64(a) * 2 * math.Pi / float64(arms)
		for i := 0; i < n; i++ {
			t := float64(i) / float64(n-1)
			ang := float64(i)*0.45 + phase
			d := sd.DigitAt(i)
			m.spheres = append(m.spheres, helixSphere{
				x:      helixRadius * math.Cos(ang),
				y:      (t - 0.5) * helixHeight,
				z:      helixRadius * math.Sin(ang),
				digit:  d,
				radius: 6.5 + float64(d)*0.6,
			})
		}
	}
	for d := 0; d < 10; d++ {
		m.materials[d] = helixMaterial{col: seed.Luminous(d)}
	}
	m.builtSeed = sd.ID
	m.builtHarmony = arms
	m.hit = -1
	m.logger.Infof("[HELIX] built %d spheres (%s x%d arms)", len(m.spheres), sd.ID, arms)
}

func (m *HelixMode) Update(f *Frame) {
	m.t += 1.0 / 60.0
	m.ensureGeometry()

	switch f.Pointers.Count() {
	case 1:
		f.Pointers.Each(func(s *Session) {
			dx, _ := s.DragDelta()
			m.rotTarget += dx * 0.01
		})
	case 2:
		if a, b, ok := f.Pointers.Two(); ok {
			now := math.Hypot(a.X-b.X, a.Y-b.Y)
			prev := math.Hypot(a.PrevX-b.PrevX, a.PrevY-b.PrevY)
			m.dist -= (now - prev) * 1.4
			if m.dist < helixNear {
				m.dist = helixNear
			}
			if m.dist > helixFar {
				m.dist = helixFar
			}
		}
	}
	m.rot += (m.rotTarget - m.rot) * rotSmoothing

	// shared materials pulse regardless of instance count
	for d := range m.materials {
		m.materials[d].emissive = 0.55 + 0.45*math.Sin(m.t*2+float64(d)*0.33)
	}

	m.pick(f)
}

// pick ray-casts the pointer position and lights the front-most intersected
// sphere. At most one sphere is hit-lit; moving off it restores it.
func (m *HelixMode) pick(f *Frame) {
	px, py := cursorPosition()
	x, y := m.surf.Clamp(float64(px), float64(py))

	best := -1
	bestScale := 0.0
	for _, pr := range m.project() {
		r := m.spheres[pr.idx].radius * pr.scale
		if math.Hypot(pr.sx-x, pr.sy-y) <= r && pr.scale > bestScale {
			best = pr.idx
			bestScale = pr.scale
		}
	}
	if best != m.hit {
		m.hit = best
		if best >= 0 && m.gate.allow(f.Now) {
			playDigit(m.spheres[best].digit, 0.35)
		}
	}
}

// project transforms all spheres into surface space for the current camera.
func (m *HelixMode) project() []projected {
	cx, cy := m.surf.Center()
	sinR, cosR := math.Sin(m.rot), math.Cos(m.rot)
	sinT, cosT := math.Sin(helixTilt), math.Cos(helixTilt)

	out := make([]projected, 0, len(m.spheres))
	for i, sp := range m.spheres {
		// yaw, then tilt
		x := sp.x*cosR + sp.z*sinR
		z := -sp.x*sinR + sp.z*cosR
		y := sp.y*cosT - z*sinT
		z = sp.y*sinT + z*cosT

		depth := z + m.dist
		if depth < 40 {
			continue // behind or hugging the camera plane
		}
		scale := helixFocal / depth
		out = append(out, projected{
			idx: i, sx: cx + x*scale, sy: cy + y*scale,
			scale: scale, depth: depth,
		})
	}
	return out
}

func (m *HelixMode) Draw(s *Surface) {
	s.Fill(asQuad(colCanvasBG))
	pr := m.project()
	// painter's algorithm: far spheres first
	sort.Slice(pr, func(i, j int) bool { return pr[i].depth > pr[j].depth })

	for _, p := range pr {
		sp := m.spheres[p.idx]
		mat := m.materials[sp.digit]
		emissive := mat.emissive
		if p.idx == m.hit {
			emissive += 0.6
		}
		if emissive > 1.2 {
			emissive = 1.2
		}
		alpha := depthAlpha(p.depth)
		core := mat.col.WithAlpha(uint8(alpha * math.Min(emissive, 1) * 255))
		glowDot(s, p.sx, p.sy, sp.radius*p.scale, core, mat.col.Halo())
	}
}

// depthAlpha fades distant spheres so the front of the helix reads clearly.
func depthAlpha(depth float64) float64 {
	a := 1.25 - depth/(helixFar*1.1)
	if a < 0.25 {
		a = 0.25
	}
	if a > 1 {
		a = 1
	}
	return a
}
