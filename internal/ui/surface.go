package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	game_log "github.com/seedloom/seedloom/internal/log"
)

const (
	// Degenerate containers are clamped up to this per-axis minimum.
	minSurfaceDim = 240
	// Generous per-axis ceiling: twice a large viewport. Protects against
	// runaway allocation requests.
	maxSurfaceW = 3840
	maxSurfaceH = 2400
	// Device pixel ratios above 2 buy nothing visually and quadruple the
	// backing buffer.
	maxPixelRatio = 2.0
)

// newImage allocates the backing buffer. Tests override it; a nil return
// models an unavailable drawing context and every draw helper no-ops.
var newImage = func(w, h int) *ebiten.Image { return ebiten.NewImage(w, h) }

// Surface owns the drawable buffer for the active mode. The buffer is
// allocated at pixelRatio × logical size; all draw helpers take logical
// coordinates and apply the device transform, which is re-derived on every
// (re)allocation.
type Surface struct {
	logicalW, logicalH int
	ratio              float64
	canvas             *ebiten.Image
	logger             *game_log.Logger
	generation         int
}

func NewSurface(logger *game_log.Logger) *Surface {
	return &Surface{ratio: 1, logger: logger}
}

// Configure sizes the surface for the requested logical dimensions and
// device pixel ratio, reallocating the buffer when anything changed. It
// returns the logical dimensions actually granted.
func (s *Surface) Configure(reqW, reqH int, ratio float64) (int, int) {
	w := clampDim(reqW, minSurfaceDim, maxSurfaceW)
	h := clampDim(reqH, minSurfaceDim, maxSurfaceH)
	if ratio <= 0 {
		ratio = 1
	}
	if ratio > maxPixelRatio {
		ratio = maxPixelRatio
	}
	if w == s.logicalW && h == s.logicalH && ratio == s.ratio && s.canvas != nil {
		return w, h
	}
	s.logicalW, s.logicalH = w, h
	s.ratio = ratio
	// The transform is implied by ratio and must be re-applied by every
	// draw after reallocation; stale-scaled drawing was a real defect mode.
	s.canvas = newImage(int(float64(w)*ratio), int(float64(h)*ratio))
	s.generation++
	if s.logger != nil {
		s.logger.Debugf("[SURFACE] configured logical=%dx%d ratio=%.2f gen=%d", w, h, ratio, s.generation)
	}
	return w, h
}

// Size returns the granted logical dimensions.
func (s *Surface) Size() (int, int) { return s.logicalW, s.logicalH }

// Center returns the logical midpoint.
func (s *Surface) Center() (float64, float64) {
	return float64(s.logicalW) / 2, float64(s.logicalH) / 2
}

// Ratio returns the capped device pixel ratio in effect.
func (s *Surface) Ratio() float64 { return s.ratio }

// Generation increments on every reallocation; renderers compare it to
// re-derive size-dependent state after a resize.
func (s *Surface) Generation() int { return s.generation }

// Ready reports whether a drawing context is available this frame.
func (s *Surface) Ready() bool { return s.canvas != nil }

// Clamp converts client coordinates to surface-local ones bounded to the
// logical rectangle.
func (s *Surface) Clamp(x, y float64) (float64, float64) {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if x > float64(s.logicalW) {
		x = float64(s.logicalW)
	}
	if y > float64(s.logicalH) {
		y = float64(s.logicalH)
	}
	return x, y
}

// Fill floods the whole surface with a color. No-op without a context.
func (s *Surface) Fill(c [4]uint8) {
	if s.canvas == nil {
		return
	}
	s.canvas.Fill(rgba(c))
}

// Present blits the physical buffer back to the screen at 1/ratio so the
// output occupies the logical rectangle.
func (s *Surface) Present(screen *ebiten.Image) {
	if s.canvas == nil || screen == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(1/s.ratio, 1/s.ratio)
	screen.DrawImage(s.canvas, op)
}

func clampDim(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
