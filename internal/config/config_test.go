package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seedloom/seedloom/core/seed"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
}

func TestLoadOverridesAndClamps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seedloom.yaml")
	body := "seed: euler\ntempo: 999\nharmony: 1\nresponsiveness: 150\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, seed.Euler, s.Seed)
	assert.Equal(t, MaxTempo, s.Tempo)
	assert.Equal(t, MinHarmony, s.Harmony)
	assert.Equal(t, MaxResponsiveness, s.Responsiveness)
}

func TestLoadMalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tempo: [not a number"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestClampRejectsUnknownSeed(t *testing.T) {
	s := Defaults()
	s.Seed = "mystery"
	s.Clamp()
	assert.Equal(t, seed.Default().ID, s.Seed)
	assert.Equal(t, seed.Default().ID, s.ActiveSeed().ID)
}

func TestResponsiveFactor(t *testing.T) {
	s := Defaults()
	s.Responsiveness = 0
	assert.Zero(t, s.Responsive())
	s.Responsiveness = 100
	assert.Equal(t, 1.0, s.Responsive())
	s.Responsiveness = 45
	assert.InDelta(t, 0.45, s.Responsive(), 1e-9)
}
