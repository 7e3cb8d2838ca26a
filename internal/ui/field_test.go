package ui

import (
	"testing"
	"time"

	"github.com/seedloom/seedloom/core/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParticleCountScalesWithAreaWithinBounds(t *testing.T) {
	assert.Equal(t, minParticles, particleCountFor(240, 240))
	assert.Equal(t, maxParticles, particleCountFor(3840, 2400))
	mid := particleCountFor(1280, 720)
	assert.Equal(t, 1280*720/particleAreaDivisor, mid)
	assert.GreaterOrEqual(t, mid, minParticles)
	assert.LessOrEqual(t, mid, maxParticles)
	// more area never means fewer particles
	assert.GreaterOrEqual(t, particleCountFor(1920, 1080), mid)
}

func TestDigitAtXBucketsAcrossWidth(t *testing.T) {
	sd := seed.Default()
	assert.Equal(t, sd.DigitAt(0), digitAtX(sd, 0, 800))
	assert.Equal(t, sd.DigitAt(sd.Len()-1), digitAtX(sd, 799.9, 800))
	assert.Equal(t, 0, digitAtX(sd, 100, 0))
}

func TestLinkAlphaFadesToThreshold(t *testing.T) {
	assert.Equal(t, 1.0, linkAlpha(0))
	assert.Equal(t, 0.0, linkAlpha(linkThreshold))
	assert.Equal(t, 0.0, linkAlpha(linkThreshold*3))
	prev := linkAlpha(0)
	for d := 8.0; d < linkThreshold; d += 8 {
		cur := linkAlpha(d)
		assert.Less(t, cur, prev)
		prev = cur
	}
}

func TestFieldRebuildsOnSurfaceGenerationChange(t *testing.T) {
	quietInput(t)
	m := NewFieldMode(testConfig(), testLogger())
	surf := newTestSurface(t, 800, 600)
	m.Activate(surf)
	require.Len(t, m.particles, particleCountFor(800, 600))

	surf.Configure(1920, 1080, 1)
	m.Update(&Frame{Now: time.Now(), Pointers: NewPointers(testLogger())})
	assert.Len(t, m.particles, particleCountFor(1920, 1080))
}

func TestFieldRebuildsOnLiveSeedChange(t *testing.T) {
	quietInput(t)
	cfg := testConfig()
	cfg.Seed = seed.Pi
	m := NewFieldMode(cfg, testLogger())
	m.Activate(newTestSurface(t, 800, 600))
	require.Equal(t, seed.Pi, m.builtSeed)

	cfg.Seed = seed.Root2
	m.Update(&Frame{Now: time.Now(), Pointers: NewPointers(testLogger())})
	assert.Equal(t, seed.Root2, m.builtSeed)
}

func TestFieldDisposesParticlesOnDeactivate(t *testing.T) {
	m := NewFieldMode(testConfig(), testLogger())
	m.Activate(newTestSurface(t, 800, 600))
	require.NotEmpty(t, m.particles)
	m.Deactivate()
	assert.Nil(t, m.particles)
	assert.Nil(t, m.ripples)
}

func TestPhysicsKeepsParticlesInsideWalls(t *testing.T) {
	quietInput(t)
	m := NewFieldMode(testConfig(), testLogger())
	surf := newTestSurface(t, 800, 600)
	m.Activate(surf)

	// fling one particle hard at a wall
	m.particles[0].x = 2
	m.particles[0].vx = -40

	f := &Frame{Now: time.Now(), Pointers: NewPointers(testLogger())}
	for i := 0; i < 120; i++ {
		m.Update(f)
	}
	for i, p := range m.particles {
		assert.GreaterOrEqual(t, p.x, 0.0, "particle %d x", i)
		assert.LessOrEqual(t, p.x, 800.0, "particle %d x", i)
		assert.GreaterOrEqual(t, p.y, 0.0, "particle %d y", i)
		assert.LessOrEqual(t, p.y, 600.0, "particle %d y", i)
	}
}

func TestContactBeginSpawnsRipple(t *testing.T) {
	quietInput(t)
	m := NewFieldMode(testConfig(), testLogger())
	m.Activate(newTestSurface(t, 800, 600))

	s := &Session{X: 200, Y: 200, Started: time.Now()}
	m.Update(&Frame{Now: time.Now(), Events: []Event{{Kind: ContactBegin, S: s}}, Pointers: NewPointers(testLogger())})
	assert.NotEmpty(t, m.ripples)
}
