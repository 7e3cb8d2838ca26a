package ui

import (
	"math"
	"math/rand"

	"github.com/seedloom/seedloom/core/seed"
)

// Effects are removed by decay, not by a capacity cap: every frame their
// alpha shrinks and anything below the cutoff is dropped.
const effectAlphaCutoff = 0.02

type ripple struct {
	x, y   float64
	r      float64
	growth float64
	alpha  float64
	decay  float64
	width  float64
	col    seed.LuminousColor
}

func newRipple(x, y float64, c seed.LuminousColor, intense bool) ripple {
	rp := ripple{x: x, y: y, r: 6, growth: 2.1, alpha: 0.55, decay: 0.955, width: 2, col: c}
	if intense {
		rp.growth = 3.4
		rp.alpha = 0.9
		rp.width = 3.2
	}
	return rp
}

// stepRipples advances and compacts the slice in place.
func stepRipples(rs []ripple) []ripple {
	out := rs[:0]
	for _, r := range rs {
		r.r += r.growth
		r.alpha *= r.decay
		if r.alpha > effectAlphaCutoff {
			out = append(out, r)
		}
	}
	return out
}

func drawRipples(s *Surface, rs []ripple) {
	for _, r := range rs {
		strokeRing(s, r.x, r.y, r.r, r.width, r.col.WithAlpha(uint8(r.alpha*255)))
	}
}

type spark struct {
	x, y   float64
	vx, vy float64
	size   float64
	alpha  float64
	decay  float64
	col    seed.LuminousColor
}

// sparkBurst scatters n sparks radially from (x,y).
func sparkBurst(x, y float64, n int, c seed.LuminousColor) []spark {
	out := make([]spark, 0, n)
	for i := 0; i < n; i++ {
		ang := rand.Float64() * 2 * math.Pi
		speed := 1.2 + rand.Float64()*2.6
		out = append(out, spark{
			x: x, y: y,
			vx: math.Cos(ang) * speed, vy: math.Sin(ang) * speed,
			size:  1.4 + rand.Float64()*2.2,
			alpha: 0.9,
			decay: 0.93 + rand.Float64()*0.03,
			col:   c,
		})
	}
	return out
}

func stepSparks(sp []spark) []spark {
	out := sp[:0]
	for _, s := range sp {
		s.x += s.vx
		s.y += s.vy
		s.vy += 0.04 // slight drift downward
		s.alpha *= s.decay
		if s.alpha > effectAlphaCutoff {
			out = append(out, s)
		}
	}
	return out
}

func drawSparks(s *Surface, sp []spark) {
	for _, k := range sp {
		glowDot(s, k.x, k.y, k.size, k.col.WithAlpha(uint8(k.alpha*255)), k.col.Halo())
	}
}
