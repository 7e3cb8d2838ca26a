//go:build !test

package audio

import (
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

const (
	sampleRate          = 44100
	bufferSizeBytes10ms = sampleRate / 100 * 2 // 10ms of 16-bit mono audio
)

var (
	ctx   *oto.Context
	once  sync.Once
	mix   *mixer
	start = time.Now()
)

// Voice generates PCM samples in the range [-1,1].
type Voice interface {
	// Sample returns the next sample and whether the voice has finished.
	Sample() (float64, bool)
}

func initContext() {
	c, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		// leave ctx nil; triggers degrade to no-ops
		return
	}
	<-ready
	ctx = c
	mix = newMixer(c)
}

// PlayTone schedules a plucked sine at freq Hz. The audio context is created
// lazily on the first trigger; until the device is ready every trigger is a
// silent no-op, never an error.
func PlayTone(freq, vol float64, when ...float64) {
	schedule(newToneVoice(freq, vol), when...)
}

// PlayShimmer schedules a soft noise wash used under ripples and sparks.
func PlayShimmer(vol float64, when ...float64) {
	schedule(newShimmerVoice(vol), when...)
}

// PlayChime schedules the seal-celebration chime: a slow three-partial bell
// on the given root frequency.
func PlayChime(freq, vol float64, when ...float64) {
	schedule(newChimeVoice(freq, vol), when...)
}

func schedule(v Voice, when ...float64) {
	once.Do(initContext)
	if ctx == nil {
		return
	}
	_ = ctx.Resume()
	delay := 0
	if len(when) > 0 {
		d := when[0] - Now()
		if d > 0 {
			delay = int(d * sampleRate)
		}
	}
	mix.Schedule(v, delay)
}

// Now returns seconds since program start.
func Now() float64 { return time.Since(start).Seconds() }

// Resume attempts to create/resume the underlying audio context ahead of the
// first trigger.
func Resume() {
	once.Do(initContext)
	if ctx != nil {
		_ = ctx.Resume()
	}
}

// Reset drops the audio context so queued voices are discarded.
func Reset() {
	ctx = nil
	mix = nil
	once = sync.Once{}
}

/* ───────────────────────── mixer ───────────────────────── */

// mixer mixes scheduled voices into a single PCM stream.
type mixer struct {
	mu     sync.Mutex
	voices []*voiceState
	pos    int
	player *oto.Player
}

type voiceState struct {
	start int
	v     Voice
}

func newMixer(c *oto.Context) *mixer {
	m := &mixer{}
	p := c.NewPlayer(m)
	p.SetBufferSize(bufferSizeBytes10ms)
	p.Play()
	m.player = p
	return m
}

// Schedule adds a voice to start after delaySamples have elapsed.
func (m *mixer) Schedule(v Voice, delaySamples int) {
	m.mu.Lock()
	m.voices = append(m.voices, &voiceState{start: m.pos + delaySamples, v: v})
	m.mu.Unlock()
}

// Read implements io.Reader for oto.Player.
func (m *mixer) Read(p []byte) (int, error) {
	samples := len(p) / 2
	for i := 0; i < samples; i++ {
		var sum float64
		m.mu.Lock()
		for idx := 0; idx < len(m.voices); idx++ {
			vs := m.voices[idx]
			if m.pos >= vs.start {
				val, done := vs.v.Sample()
				sum += val
				if done {
					m.voices = append(m.voices[:idx], m.voices[idx+1:]...)
					idx--
				}
			}
		}
		m.mu.Unlock()
		if sum > 1 {
			sum = 1
		} else if sum < -1 {
			sum = -1
		}
		v := int16(sum * 32767)
		p[2*i] = byte(v)
		p[2*i+1] = byte(v >> 8)
		m.pos++
	}
	return len(p), nil
}
