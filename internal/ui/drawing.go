package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Draw helpers take logical coordinates and apply the surface's device
// transform. They are variables so tests can capture draw calls, and they
// no-op when no drawing context is available.

var fillDot = func(s *Surface, x, y, r float64, c color.Color) {
	if s.canvas == nil {
		return
	}
	k := float32(s.ratio)
	vector.DrawFilledCircle(s.canvas, float32(x)*k, float32(y)*k, float32(r)*k, c, true)
}

var strokeRing = func(s *Surface, x, y, r, width float64, c color.Color) {
	if s.canvas == nil {
		return
	}
	k := float32(s.ratio)
	vector.StrokeCircle(s.canvas, float32(x)*k, float32(y)*k, float32(r)*k, float32(width)*k, c, true)
}

var strokeSeg = func(s *Surface, x1, y1, x2, y2, width float64, c color.Color) {
	if s.canvas == nil {
		return
	}
	k := float32(s.ratio)
	vector.StrokeLine(s.canvas, float32(x1)*k, float32(y1)*k, float32(x2)*k, float32(y2)*k, float32(width)*k, c, true)
}

var fillBox = func(s *Surface, x, y, w, h float64, c color.Color) {
	if s.canvas == nil {
		return
	}
	k := float32(s.ratio)
	vector.DrawFilledRect(s.canvas, float32(x)*k, float32(y)*k, float32(w)*k, float32(h)*k, c, true)
}

var strokeBox = func(s *Surface, x, y, w, h, width float64, c color.Color) {
	if s.canvas == nil {
		return
	}
	k := float32(s.ratio)
	vector.StrokeRect(s.canvas, float32(x)*k, float32(y)*k, float32(w)*k, float32(h)*k, float32(width)*k, c, true)
}

var textAt = func(s *Surface, str string, x, y int) {
	if s.canvas == nil {
		return
	}
	ebitenutil.DebugPrintAt(s.canvas, str, int(float64(x)*s.ratio), int(float64(y)*s.ratio))
}

// glowDot renders the two-pass glow: dim wide halo first, bright core on
// top.
func glowDot(s *Surface, x, y, r float64, core color.Color, halo color.RGBA) {
	fillDot(s, x, y, r*2.3, halo)
	fillDot(s, x, y, r, core)
}

func rgba(c [4]uint8) color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

func asQuad(c color.RGBA) [4]uint8 { return [4]uint8{c.R, c.G, c.B, c.A} }
