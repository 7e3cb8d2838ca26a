//go:build !test

package audio

import (
	"math"
	"math/rand"
	"time"
)

/* ───────────────────────── tone ───────────────────────── */

// toneVoice is a plucked sine: a few milliseconds of attack, then an
// exponential decay. One voice per triggered note.
type toneVoice struct {
	i, n  int
	sr    float64
	freq  float64
	vol   float64
	phase float64
}

func newToneVoice(freq, vol float64) *toneVoice {
	const dur = 380 * time.Millisecond
	return &toneVoice{
		n:    int(sampleRate * dur.Seconds()),
		sr:   sampleRate,
		freq: clampFreq(freq),
		vol:  clampVol(vol),
	}
}

func (v *toneVoice) Sample() (float64, bool) {
	if v.i >= v.n {
		return 0, true
	}
	t := float64(v.i) / float64(v.n)
	v.phase += 2 * math.Pi * v.freq / v.sr
	env := math.Exp(-5 * t)
	attack := 1.0
	if v.i < 220 { // ~5ms ramp keeps the onset click-free
		attack = float64(v.i) / 220
	}
	v.i++
	return math.Sin(v.phase) * env * attack * v.vol, false
}

/* ───────────────────────── shimmer ───────────────────────── */

// shimmerVoice is low-passed noise with a fast decay, the wash behind
// ripples and sparks.
type shimmerVoice struct {
	i, n int
	vol  float64
	prev float64
}

func newShimmerVoice(vol float64) *shimmerVoice {
	const dur = 160 * time.Millisecond
	return &shimmerVoice{
		n:   int(sampleRate * dur.Seconds()),
		vol: clampVol(vol),
	}
}

func (v *shimmerVoice) Sample() (float64, bool) {
	if v.i >= v.n {
		return 0, true
	}
	t := float64(v.i) / float64(v.n)
	white := rand.Float64()*2 - 1
	// one-pole low-pass tames the hiss
	v.prev += 0.12 * (white - v.prev)
	env := math.Exp(-6 * t)
	v.i++
	return v.prev * env * v.vol, false
}

/* ───────────────────────── chime ───────────────────────── */

// chimeVoice stacks three inharmonic partials with a long decay, struck once
// when a ritual seals.
type chimeVoice struct {
	i, n   int
	sr     float64
	vol    float64
	phases [3]float64
	freqs  [3]float64
}

func newChimeVoice(freq, vol float64) *chimeVoice {
	const dur = 1600 * time.Millisecond
	f := clampFreq(freq)
	return &chimeVoice{
		n:     int(sampleRate * dur.Seconds()),
		sr:    sampleRate,
		vol:   clampVol(vol),
		freqs: [3]float64{f, f * 2.0, f * 2.67},
	}
}

func (v *chimeVoice) Sample() (float64, bool) {
	if v.i >= v.n {
		return 0, true
	}
	t := float64(v.i) / float64(v.n)
	env := math.Exp(-3 * t)
	var sum float64
	gains := [3]float64{0.6, 0.3, 0.15}
	for p := range v.phases {
		v.phases[p] += 2 * math.Pi * v.freqs[p] / v.sr
		sum += math.Sin(v.phases[p]) * gains[p]
	}
	v.i++
	return sum * env * v.vol, false
}

func clampFreq(f float64) float64 {
	if f < 20 {
		return 20
	}
	if f > 8000 {
		return 8000
	}
	return f
}

func clampVol(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
