package ui

import (
	"io"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/seedloom/seedloom/internal/config"
	game_log "github.com/seedloom/seedloom/internal/log"
)

func testLogger() *game_log.Logger {
	return game_log.New(io.Discard, game_log.LevelError)
}

func testConfig() *config.Settings {
	cfg := config.Defaults()
	cfg.Clamp()
	return cfg
}

// newTestSurface builds a surface without a drawing context: the backing
// buffer is nil, so Draw paths no-op but sizing and coordinates work.
func newTestSurface(t *testing.T, w, h int) *Surface {
	t.Helper()
	prev := newImage
	newImage = func(int, int) *ebiten.Image { return nil }
	t.Cleanup(func() { newImage = prev })
	s := NewSurface(testLogger())
	s.Configure(w, h, 1)
	return s
}

// audioCounter swaps the audio seams for counting fakes.
type audioCounter struct {
	tones, shimmers, chimes int
	lastFreq, lastVol       float64
}

func (c *audioCounter) install(t *testing.T) {
	t.Helper()
	oldTone, oldShimmer, oldChime, oldResume := playTone, playShimmer, playChime, audioResume
	playTone = func(freq, vol float64, when ...float64) {
		c.tones++
		c.lastFreq, c.lastVol = freq, vol
	}
	playShimmer = func(vol float64, when ...float64) { c.shimmers++ }
	playChime = func(freq, vol float64, when ...float64) {
		c.chimes++
		c.lastFreq = freq
	}
	audioResume = func() {}
	t.Cleanup(func() {
		playTone, playShimmer, playChime, audioResume = oldTone, oldShimmer, oldChime, oldResume
	})
}

// quietInput installs input fakes that report no activity.
func quietInput(t *testing.T) {
	t.Helper()
	restore := SetInputForTest(TestInput{
		Cursor:        func() (int, int) { return 0, 0 },
		Mouse:         func(ebiten.MouseButton) bool { return false },
		Key:           func(ebiten.Key) bool { return false },
		Chars:         func() []rune { return nil },
		Touches:       func() []ebiten.TouchID { return nil },
		TouchPosition: func(ebiten.TouchID) (int, int) { return 0, 0 },
		DeviceScale:   func() float64 { return 1 },
	})
	t.Cleanup(restore)
}
