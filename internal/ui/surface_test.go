package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigureClampsDegenerateSizes(t *testing.T) {
	s := newTestSurface(t, 10, -50)
	w, h := s.Size()
	assert.Equal(t, minSurfaceDim, w)
	assert.Equal(t, minSurfaceDim, h)
}

func TestConfigureClampsOversizedRequests(t *testing.T) {
	s := newTestSurface(t, 100000, 99999)
	w, h := s.Size()
	assert.Equal(t, maxSurfaceW, w)
	assert.Equal(t, maxSurfaceH, h)
}

func TestConfigureCapsPixelRatio(t *testing.T) {
	s := newTestSurface(t, 800, 600)
	s.Configure(800, 600, 3.5)
	assert.Equal(t, maxPixelRatio, s.Ratio())

	s.Configure(800, 600, -1)
	assert.Equal(t, 1.0, s.Ratio())
}

func TestConfigureBumpsGenerationOnResize(t *testing.T) {
	s := newTestSurface(t, 800, 600)
	g := s.Generation()
	s.Configure(1024, 768, 1)
	assert.Greater(t, s.Generation(), g)
	w, h := s.Size()
	assert.Equal(t, 1024, w)
	assert.Equal(t, 768, h)
}

func TestClampBoundsCoordinates(t *testing.T) {
	s := newTestSurface(t, 800, 600)
	x, y := s.Clamp(-20, 9000)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 600.0, y)
	x, y = s.Clamp(400, 300)
	assert.Equal(t, 400.0, x)
	assert.Equal(t, 300.0, y)
}

func TestDrawingWithoutContextIsNoOp(t *testing.T) {
	s := newTestSurface(t, 800, 600)
	assert.False(t, s.Ready())
	// none of these may panic without a backing buffer
	s.Fill(asQuad(colCanvasBG))
	s.Present(nil)
	fillDot(s, 10, 10, 4, colHUDText)
	strokeRing(s, 10, 10, 4, 1, colHUDText)
	strokeSeg(s, 0, 0, 5, 5, 1, colHUDText)
	fillBox(s, 0, 0, 5, 5, colHUDText)
	strokeBox(s, 0, 0, 5, 5, 1, colHUDText)
	textAt(s, "x", 0, 0)
}

func TestCenterIsLogicalMidpoint(t *testing.T) {
	s := newTestSurface(t, 800, 600)
	cx, cy := s.Center()
	assert.Equal(t, 400.0, cx)
	assert.Equal(t, 300.0, cy)
}
